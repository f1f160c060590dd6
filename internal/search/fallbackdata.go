// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import "github.com/Ryunosuke8/Integrated-Manager-sub001/pkg/types"

// fallbackPapers is the offline curated record set. Read-only reference
// data; Search copies a record before setting its relevance score.
var fallbackPapers = []types.PaperRecord{
	{
		Title:      "Attention Is All You Need",
		Authors:    []string{"Ashish Vaswani", "Noam Shazeer", "Niki Parmar"},
		Year:       2017,
		Venue:      "NeurIPS",
		URL:        "https://arxiv.org/abs/1706.03762",
		Abstract:   "We propose the Transformer, a network architecture for sequence transduction based entirely on attention mechanisms, dispensing with recurrence and convolutions. Experiments on machine translation show superior quality.",
		Keywords:   []string{"deep learning", "neural network", "natural language processing"},
		ExternalID: "10.48550/arXiv.1706.03762",
		Provider:   SourceOffline,
	},
	{
		Title:      "Deep Residual Learning for Image Recognition",
		Authors:    []string{"Kaiming He", "Xiangyu Zhang", "Shaoqing Ren", "Jian Sun"},
		Year:       2016,
		Venue:      "CVPR",
		URL:        "https://arxiv.org/abs/1512.03385",
		Abstract:   "We present a residual learning framework to ease the training of deep neural networks, with layers reformulated as learning residual functions.",
		Keywords:   []string{"deep learning", "computer vision", "neural network"},
		ExternalID: "10.1109/CVPR.2016.90",
		Provider:   SourceOffline,
	},
	{
		Title:      "BERT: Pre-training of Deep Bidirectional Transformers for Language Understanding",
		Authors:    []string{"Jacob Devlin", "Ming-Wei Chang", "Kenton Lee", "Kristina Toutanova"},
		Year:       2019,
		Venue:      "NAACL",
		URL:        "https://arxiv.org/abs/1810.04805",
		Abstract:   "We introduce BERT, a language representation model pre-trained on unlabeled text that obtains state-of-the-art results on eleven natural language processing tasks.",
		Keywords:   []string{"natural language processing", "machine learning", "artificial intelligence"},
		ExternalID: "10.18653/v1/N19-1423",
		Provider:   SourceOffline,
	},
	{
		Title:      "A Survey on Recommendation Systems for Research Platforms",
		Authors:    []string{"Jihye Park", "Minsoo Kim"},
		Year:       2021,
		Venue:      "ACM Computing Surveys",
		Abstract:   "A survey of recommendation system design for academic research platforms, covering collaborative filtering, content analysis, and hybrid evaluation methodology.",
		Keywords:   []string{"recommendation system", "survey", "platform"},
		ExternalID: "10.1145/3447549",
		Provider:   SourceOffline,
	},
	{
		Title:      "Bitcoin: A Peer-to-Peer Electronic Cash System",
		Authors:    []string{"Satoshi Nakamoto"},
		Year:       2008,
		URL:        "https://bitcoin.org/bitcoin.pdf",
		Abstract:   "A purely peer-to-peer version of electronic cash would allow online payments without a financial institution, secured by a blockchain of hash-based proof-of-work.",
		Keywords:   []string{"blockchain", "security", "algorithm"},
		Provider:   SourceOffline,
	},
	{
		Title:      "Design Science Research Methodology for Information Systems",
		Authors:    []string{"Ken Peffers", "Tuure Tuunanen"},
		Year:       2007,
		Venue:      "Journal of Management Information Systems",
		Abstract:   "A methodology for conducting design science research in information systems: problem identification, objectives, design and development, demonstration, evaluation.",
		Keywords:   []string{"methodology", "research", "design", "evaluation"},
		ExternalID: "10.2753/MIS0742-1222240302",
		Provider:   SourceOffline,
	},
	{
		Title:      "MapReduce: Simplified Data Processing on Large Clusters",
		Authors:    []string{"Jeffrey Dean", "Sanjay Ghemawat"},
		Year:       2004,
		Venue:      "OSDI",
		Abstract:   "MapReduce is a programming model and implementation for processing large data sets on clusters, hiding the details of parallelization and fault tolerance.",
		Keywords:   []string{"big data", "data analysis", "platform", "algorithm"},
		ExternalID: "10.1145/1327452.1327492",
		Provider:   SourceOffline,
	},
	{
		Title:      "The Anatomy of a Large-Scale Hypertextual Web Search Engine",
		Authors:    []string{"Sergey Brin", "Lawrence Page"},
		Year:       1998,
		Venue:      "Computer Networks",
		Abstract:   "We present Google, a prototype of a large-scale search engine making heavy use of the link structure of the web to improve ranking of search results.",
		Keywords:   []string{"algorithm", "platform", "data analysis"},
		ExternalID: "10.1016/S0169-7552(98)00110-X",
		Provider:   SourceOffline,
	},
	{
		Title:      "Generative Adversarial Networks",
		Authors:    []string{"Ian Goodfellow", "Jean Pouget-Abadie", "Mehdi Mirza"},
		Year:       2014,
		Venue:      "NeurIPS",
		URL:        "https://arxiv.org/abs/1406.2661",
		Abstract:   "We propose a framework for estimating generative models via an adversarial process, training a generative network against a discriminative network.",
		Keywords:   []string{"deep learning", "machine learning", "neural network"},
		Provider:   SourceOffline,
	},
	{
		Title:      "Internet of Things: A Survey on Enabling Technologies, Protocols, and Applications",
		Authors:    []string{"Ala Al-Fuqaha", "Mohsen Guizani"},
		Year:       2015,
		Venue:      "IEEE Communications Surveys & Tutorials",
		Abstract:   "A survey of the Internet of Things covering enabling technologies, protocols, and application issues, with attention to security and big data analytics.",
		Keywords:   []string{"IoT", "survey", "security", "big data"},
		ExternalID: "10.1109/COMST.2015.2444095",
		Provider:   SourceOffline,
	},
	{
		Title:      "Experimentation in Software Engineering: An Introduction",
		Authors:    []string{"Claes Wohlin", "Per Runeson"},
		Year:       2012,
		Venue:      "Springer",
		Abstract:   "An introduction to experiment design, hypothesis testing, and validation in empirical software engineering research.",
		Keywords:   []string{"experiment", "hypothesis", "validation", "methodology"},
		ExternalID: "10.1007/978-3-642-29044-2",
		Provider:   SourceOffline,
	},
	{
		Title:      "Cloud Computing: State-of-the-Art and Research Challenges",
		Authors:    []string{"Qi Zhang", "Lu Cheng", "Raouf Boutaba"},
		Year:       2010,
		Venue:      "Journal of Internet Services and Applications",
		Abstract:   "A survey of cloud computing, its architecture, key technologies such as virtualization, and open research challenges including security and resource management.",
		Keywords:   []string{"cloud computing", "survey", "platform", "security"},
		ExternalID: "10.1007/s13174-010-0007-6",
		Provider:   SourceOffline,
	},
	{
		Title:      "A Few Useful Things to Know About Machine Learning",
		Authors:    []string{"Pedro Domingos"},
		Year:       2012,
		Venue:      "Communications of the ACM",
		Abstract:   "Practical lessons from machine learning research: feature engineering, overfitting, the role of data over algorithm choice, and evaluation pitfalls.",
		Keywords:   []string{"machine learning", "evaluation", "algorithm"},
		ExternalID: "10.1145/2347736.2347755",
		Provider:   SourceOffline,
	},
	{
		Title:      "Natural Language Processing for Requirements Engineering: A Systematic Mapping Study",
		Authors:    []string{"Liping Zhao", "Waad Alhoshan"},
		Year:       2021,
		Venue:      "ACM Computing Surveys",
		Abstract:   "A systematic mapping study of natural language processing applied to requirements engineering, covering literature review protocol, analysis, and evaluation.",
		Keywords:   []string{"natural language processing", "literature review", "analysis"},
		ExternalID: "10.1145/3444689",
		Provider:   SourceOffline,
	},
}
