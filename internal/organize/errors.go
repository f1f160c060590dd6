// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package organize

import "errors"

var (
	// ErrRunInProgress is returned when another run holds the single-permit
	// run slot. The second invocation is rejected, not queued.
	ErrRunInProgress = errors.New("another run is already in progress")

	// ErrNoDocuments is returned when the container holds no readable
	// documents.
	ErrNoDocuments = errors.New("no readable documents in container")

	// ErrNoKeywords is returned when extraction finds no keyword candidates.
	ErrNoKeywords = errors.New("no keywords extracted from documents")
)
