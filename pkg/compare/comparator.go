package compare

import (
	"context"

	"github.com/sdejongh/byteverify/pkg/models"
	"github.com/sdejongh/byteverify/pkg/storage"
)

// Comparison holds the result of comparing an original file with its saved counterpart
type Comparison struct {
	Name         string
	OriginalPath string
	SavedPath    string

	Kind models.ResultKind

	// OriginalSize and SavedSize are only meaningful once both files were read
	OriginalSize int64
	SavedSize    int64

	// MismatchCount is the total number of differing positions
	MismatchCount int64
	// Samples are the first differing positions, ascending
	Samples []models.DiffSample

	Reason string
	Err    error
}

// Comparator defines the interface for file verification algorithms
type Comparator interface {
	// Compare verifies the file called name in originals against the same name in saved
	Compare(ctx context.Context, originals, saved storage.Backend, name string) *Comparison

	// Name returns the name of the comparison method
	Name() string
}

// Result converts the comparison into the report form for entry
func (c *Comparison) Result(entry models.FileEntry) models.FileResult {
	return models.FileResult{
		Entry:         entry,
		Kind:          c.Kind,
		OriginalSize:  c.OriginalSize,
		SavedSize:     c.SavedSize,
		MismatchCount: c.MismatchCount,
		Samples:       c.Samples,
		Reason:        c.Reason,
	}
}
