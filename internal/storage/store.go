// Package storage persists appeal evidence files (weight-comparison
// photos, carrier scans, packing documents) behind a small interface so
// handlers never care whether bytes land on local disk or in R2.
package storage

import (
	"context"
	"io"
)

// FileInfo describes a stored evidence file.
type FileInfo struct {
	URL      string `json:"url"`
	FileName string `json:"fileName"`
	FileSize int64  `json:"fileSize"`
	FileType string `json:"fileType"`
}

// Store is the evidence storage backend.
type Store interface {
	// Save persists the file under the given path and returns its metadata.
	Save(ctx context.Context, path string, file io.Reader, contentType string) (*FileInfo, error)

	// Delete removes a stored file. Deleting a missing file is not an error.
	Delete(ctx context.Context, path string) error

	// URL returns the public URL for a stored path.
	URL(path string) string
}
