// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package keywords

import "regexp"

// The term catalogs are immutable reference data compiled once at package
// load. Each entry is a disjunction of synonyms across Korean and English;
// whichever literal matches is the candidate that gets recorded.

// technicalTerms covers technical-domain vocabulary.
var technicalTerms = compileCatalog([]string{
	`인공지능|artificial intelligence|\bAI\b`,
	`머신러닝|기계학습|machine learning`,
	`딥러닝|deep learning`,
	`신경망|neural network`,
	`빅데이터|big data`,
	`데이터 분석|data analysis|data analytics`,
	`블록체인|blockchain`,
	`클라우드|cloud computing`,
	`사물인터넷|internet of things|\bIoT\b`,
	`알고리즘|algorithm`,
	`보안|security|암호화|encryption`,
	`데이터베이스|database`,
	`플랫폼|platform`,
	`자연어 처리|natural language processing|\bNLP\b`,
	`추천 시스템|recommendation system|recommender`,
})

// researchTerms covers research-process vocabulary.
var researchTerms = compileCatalog([]string{
	`연구|research`,
	`분석|analysis`,
	`실험|experiment`,
	`설문|survey|questionnaire`,
	`평가|evaluation`,
	`설계|design`,
	`개발|development`,
	`구현|implementation`,
	`검증|validation|verification`,
	`방법론|methodology`,
	`문헌|literature review`,
	`가설|hypothesis`,
})

// specialTermPattern matches runs of three or more Hangul syllables or four
// or more ASCII letters. Matches still pass the shared 4-15 rune-length
// filter before becoming candidates.
var specialTermPattern = regexp.MustCompile(`[가-힣]{3,}|[A-Za-z]{4,}`)

const (
	specialTermMinLen = 4
	specialTermMaxLen = 15
)

func compileCatalog(patterns []string) []*regexp.Regexp {
	catalog := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		catalog[i] = regexp.MustCompile(`(?i)` + p)
	}
	return catalog
}
