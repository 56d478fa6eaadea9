package storage

import (
	"context"
	"fmt"
	"io"
)

// ByteReader loads complete file contents from a backend.
// Every call opens the file, reads it to the end and closes it again;
// nothing is cached between calls.
type ByteReader struct {
	backend Backend
}

// NewByteReader creates a reader over the given backend
func NewByteReader(backend Backend) *ByteReader {
	return &ByteReader{backend: backend}
}

// Read returns every byte of the file at path. An empty file yields an
// empty, non-nil slice and no error.
func (r *ByteReader) Read(ctx context.Context, path string) ([]byte, error) {
	rc, err := r.backend.Read(ctx, path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return data, nil
}
