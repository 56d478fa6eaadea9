package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Local is a filesystem-based storage backend
type Local struct {
	fs       afero.Fs
	rootPath string
}

// NewLocal creates a new backend rooted at a directory on the OS filesystem
func NewLocal(rootPath string) (*Local, error) {
	return NewLocalFs(afero.NewOsFs(), rootPath)
}

// NewLocalFs creates a backend rooted at rootPath inside an arbitrary afero filesystem
func NewLocalFs(fsys afero.Fs, rootPath string) (*Local, error) {
	absPath, err := filepath.Abs(rootPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	info, err := fsys.Stat(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to access path: %w", err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", absPath)
	}

	return &Local{fs: fsys, rootPath: absPath}, nil
}

// List returns the entries directly inside path, without descending into subdirectories
func (l *Local) List(ctx context.Context, path string) ([]FileInfo, error) {
	fullPath := filepath.Join(l.rootPath, path)

	infos, err := afero.ReadDir(l.fs, fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}

	files := make([]FileInfo, 0, len(infos))
	for _, info := range infos {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		p := filepath.Join(fullPath, info.Name())

		// Follow symlinks; a dangling link is kept as a non-regular entry
		if info.Mode()&os.ModeSymlink != 0 {
			if target, err := l.fs.Stat(p); err == nil {
				info = target
			}
		}

		files = append(files, newFileInfo(info))
	}

	return files, nil
}

// Read opens a file for reading
func (l *Local) Read(ctx context.Context, path string) (io.ReadCloser, error) {
	fullPath := filepath.Join(l.rootPath, path)

	file, err := l.fs.Open(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	return file, nil
}

// Stat returns file metadata
func (l *Local) Stat(ctx context.Context, path string) (*FileInfo, error) {
	info, err := l.fs.Stat(filepath.Join(l.rootPath, path))
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	fi := newFileInfo(info)
	return &fi, nil
}

// Root returns the absolute root path
func (l *Local) Root() string {
	return l.rootPath
}

// Close releases resources (no-op for local filesystem)
func (l *Local) Close() error {
	return nil
}

func newFileInfo(info os.FileInfo) FileInfo {
	return FileInfo{
		Name:      info.Name(),
		Size:      info.Size(),
		IsDir:     info.IsDir(),
		IsRegular: info.Mode().IsRegular(),
	}
}
