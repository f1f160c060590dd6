// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// textExtensions lists the file extensions treated as project text documents.
var textExtensions = map[string]string{
	".md":   "text/markdown",
	".txt":  "text/plain",
	".yaml": "application/yaml",
	".yml":  "application/yaml",
}

// FSStore maps containers to directories on the local filesystem.
type FSStore struct{}

var _ Store = (*FSStore)(nil)

// ListDocuments returns the text files directly inside the container
// directory, skipping dotfiles and subdirectories.
func (s *FSStore) ListDocuments(_ context.Context, containerID string) ([]FileInfo, error) {
	entries, err := os.ReadDir(containerID)
	if err != nil {
		return nil, fmt.Errorf("reading container %s: %w", containerID, err)
	}

	var files []FileInfo
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		mime, ok := textExtensions[strings.ToLower(filepath.Ext(entry.Name()))]
		if !ok {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, FileInfo{
			ID:           filepath.Join(containerID, entry.Name()),
			Name:         entry.Name(),
			MimeType:     mime,
			ModifiedTime: info.ModTime(),
			Size:         info.Size(),
		})
	}
	return files, nil
}

// ReadContent reads the file as text.
func (s *FSStore) ReadContent(_ context.Context, ref FileInfo) (string, error) {
	data, err := os.ReadFile(ref.ID)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", ref.Name, err)
	}
	return string(data), nil
}

// WriteTextArtifact writes content into the container directory, creating
// the directory if needed, and returns the artifact path.
func (s *FSStore) WriteTextArtifact(_ context.Context, containerID, fileName, content string) (string, error) {
	if err := os.MkdirAll(containerID, 0o755); err != nil {
		return "", fmt.Errorf("creating container %s: %w", containerID, err)
	}
	path := filepath.Join(containerID, fileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("writing artifact %s: %w", fileName, err)
	}
	return path, nil
}
