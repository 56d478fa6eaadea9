package storage

import (
	"context"
	"io"
)

// FileInfo represents metadata about a directory entry
type FileInfo struct {
	Name      string
	Size      int64
	IsDir     bool
	IsRegular bool
}

// Backend defines the read-only storage operations the verifier needs.
// Paths are relative to the backend root.
type Backend interface {
	// List returns the top-level entries of the specified directory.
	// Symbolic links are resolved so IsRegular reflects the link target.
	List(ctx context.Context, path string) ([]FileInfo, error)

	// Read opens a file for reading
	Read(ctx context.Context, path string) (io.ReadCloser, error)

	// Stat returns metadata for path, following symbolic links.
	// A missing path yields an error wrapping fs.ErrNotExist.
	Stat(ctx context.Context, path string) (*FileInfo, error)

	// Root returns the absolute root path of the backend
	Root() string

	// Close releases any resources held by the backend
	Close() error
}
