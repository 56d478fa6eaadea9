package compare

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/sdejongh/byteverify/pkg/models"
	"github.com/sdejongh/byteverify/pkg/storage"
)

// DefaultSampleLimit is the number of differing positions kept for diagnostics
const DefaultSampleLimit = 3

// BinaryComparator compares whole files byte-by-byte in memory.
// Every differing position is counted; only the first few are kept as samples.
type BinaryComparator struct {
	sampleLimit int
}

// NewBinaryComparator creates a new byte-by-byte comparator.
// A non-positive sampleLimit falls back to DefaultSampleLimit.
func NewBinaryComparator(sampleLimit int) *BinaryComparator {
	if sampleLimit <= 0 {
		sampleLimit = DefaultSampleLimit
	}
	return &BinaryComparator{sampleLimit: sampleLimit}
}

// Compare verifies name in originals against the same name in saved
func (c *BinaryComparator) Compare(ctx context.Context, originals, saved storage.Backend, name string) *Comparison {
	comp := &Comparison{
		Name:         name,
		OriginalPath: name,
		SavedPath:    name,
	}

	// A missing counterpart is reported on its own, before any read
	info, err := saved.Stat(ctx, name)
	if errors.Is(err, fs.ErrNotExist) {
		comp.Kind = models.KindMissing
		comp.Reason = "saved file not found"
		return comp
	}
	if err != nil {
		return comp.readError(fmt.Errorf("failed to check saved file: %w", err))
	}
	if info.IsDir {
		return comp.readError(fmt.Errorf("saved path is a directory: %s", name))
	}

	originalBytes, err := storage.NewByteReader(originals).Read(ctx, name)
	if err != nil {
		return comp.readError(fmt.Errorf("failed to read original file: %w", err))
	}

	savedBytes, err := storage.NewByteReader(saved).Read(ctx, name)
	if err != nil {
		return comp.readError(fmt.Errorf("failed to read saved file: %w", err))
	}

	comp.OriginalSize = int64(len(originalBytes))
	comp.SavedSize = int64(len(savedBytes))

	// Different lengths settle it; the content is never scanned
	if comp.OriginalSize != comp.SavedSize {
		comp.Kind = models.KindSizeMismatch
		comp.Reason = fmt.Sprintf("size mismatch: original=%d, saved=%d", comp.OriginalSize, comp.SavedSize)
		return comp
	}

	count, samples := DiffBytes(originalBytes, savedBytes, c.sampleLimit)
	if count == 0 {
		comp.Kind = models.KindMatch
		comp.Reason = fmt.Sprintf("binary content matches (%d bytes)", comp.OriginalSize)
		return comp
	}

	comp.Kind = models.KindByteMismatch
	comp.MismatchCount = count
	comp.Samples = samples
	comp.Reason = fmt.Sprintf("%d bytes differ, first at offset %d", count, samples[0].Offset)
	return comp
}

// Name returns the comparator name
func (c *BinaryComparator) Name() string {
	return "binary"
}

func (c *Comparison) readError(err error) *Comparison {
	c.Kind = models.KindReadError
	c.Err = err
	c.Reason = err.Error()
	return c
}

// DiffBytes walks a and b index by index and returns the number of positions
// that differ together with the first limit of them in ascending order.
// The scan always covers the full overlap; positions beyond the shorter
// slice are not considered.
func DiffBytes(a, b []byte, limit int) (int64, []models.DiffSample) {
	n := min(len(a), len(b))

	var count int64
	var samples []models.DiffSample
	for i := 0; i < n; i++ {
		if a[i] == b[i] {
			continue
		}
		if len(samples) < limit {
			samples = append(samples, models.DiffSample{
				Offset:   int64(i),
				Original: a[i],
				Saved:    b[i],
			})
		}
		count++
	}

	return count, samples
}
