// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package docstore lists, reads, and writes project documents behind a thin
// store contract. The engine treats the store as an external collaborator;
// the filesystem implementation maps a container to a directory.
package docstore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Ryunosuke8/Integrated-Manager-sub001/pkg/types"
)

// FileInfo describes one stored file.
type FileInfo struct {
	ID           string
	Name         string
	MimeType     string
	ModifiedTime time.Time
	Size         int64
}

// Store is the document-store contract.
type Store interface {
	// ListDocuments returns the text documents in the container.
	ListDocuments(ctx context.Context, containerID string) ([]FileInfo, error)

	// ReadContent returns the text of one file.
	ReadContent(ctx context.Context, ref FileInfo) (string, error)

	// WriteTextArtifact writes a text artifact into the container and
	// returns its reference.
	WriteTextArtifact(ctx context.Context, containerID, fileName, content string) (string, error)
}

// ReadDocuments lists the container and reads every document into a
// snapshot. A failed individual read degrades to a placeholder string rather
// than aborting the batch.
func ReadDocuments(ctx context.Context, s Store, containerID string) ([]types.Document, error) {
	files, err := s.ListDocuments(ctx, containerID)
	if err != nil {
		return nil, fmt.Errorf("listing documents in %s: %w", containerID, err)
	}

	docs := make([]types.Document, 0, len(files))
	for _, f := range files {
		content, err := s.ReadContent(ctx, f)
		if err != nil {
			content = fmt.Sprintf("[unreadable: %v]", err)
		}
		docs = append(docs, types.Document{
			ID:           f.ID,
			FileName:     f.Name,
			Content:      content,
			Type:         DetectType(f.Name),
			ModifiedTime: f.ModifiedTime,
		})
	}
	return docs, nil
}

// DetectType derives the document type from the file name.
func DetectType(fileName string) types.DocumentType {
	lower := strings.ToLower(fileName)
	switch {
	case strings.Contains(lower, "main"):
		return types.DocumentMain
	case strings.Contains(lower, "suggestion") || strings.Contains(lower, "제안"):
		return types.DocumentSuggestion
	default:
		return types.DocumentGeneric
	}
}
