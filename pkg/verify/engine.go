// Package verify drives a verification pass: it enumerates the originals
// directory, pairs every regular file with the same name in the saved
// directory and aggregates the per-file outcomes into a report.
package verify

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/sdejongh/byteverify/pkg/compare"
	"github.com/sdejongh/byteverify/pkg/logging"
	"github.com/sdejongh/byteverify/pkg/models"
	"github.com/sdejongh/byteverify/pkg/output"
	"github.com/sdejongh/byteverify/pkg/storage"
)

// DefaultHiddenPrefix marks names that are never verified
const DefaultHiddenPrefix = "."

// Options controls a verification pass
type Options struct {
	// BaseDir is only used for reporting
	BaseDir string
	// HiddenPrefix skips entries whose name starts with it; empty disables the filter
	HiddenPrefix string
	// ReportAnomalies logs skipped non-regular entries at warn level
	ReportAnomalies bool
	// Output receives formatter output (default os.Stdout)
	Output io.Writer
}

// Engine orchestrates the verification
type Engine struct {
	originals  storage.Backend
	saved      storage.Backend
	comparator compare.Comparator
	formatter  output.Formatter
	logger     logging.Logger
	options    Options
}

// NewEngine creates a new verification engine.
// A nil logger disables logging.
func NewEngine(
	originals, saved storage.Backend,
	comparator compare.Comparator,
	formatter output.Formatter,
	logger logging.Logger,
	options Options,
) *Engine {
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	if options.Output == nil {
		options.Output = os.Stdout
	}
	return &Engine{
		originals:  originals,
		saved:      saved,
		comparator: comparator,
		formatter:  formatter,
		logger:     logger,
		options:    options,
	}
}

// Entries lists the files of the originals directory that take part in
// verification, in listing order. Hidden names, names that are not valid
// UTF-8 and non-regular entries are left out and never counted.
func (e *Engine) Entries(ctx context.Context) ([]models.FileEntry, error) {
	infos, err := e.originals.List(ctx, "")
	if err != nil {
		return nil, err
	}

	entries := make([]models.FileEntry, 0, len(infos))
	for _, info := range infos {
		if e.options.HiddenPrefix != "" && strings.HasPrefix(info.Name, e.options.HiddenPrefix) {
			e.logger.Debug(ctx, "skipping hidden entry", logging.Fields{"name": info.Name})
			continue
		}

		if !utf8.ValidString(info.Name) {
			if e.options.ReportAnomalies {
				e.logger.Warn(ctx, "skipping entry with malformed name", logging.Fields{
					"name": strconv.Quote(info.Name),
				})
			}
			continue
		}

		if !info.IsRegular {
			if e.options.ReportAnomalies {
				e.logger.Warn(ctx, "skipping entry that is not a regular file", logging.Fields{
					"name":   info.Name,
					"is_dir": info.IsDir,
				})
			}
			continue
		}

		entries = append(entries, models.FileEntry{
			Name:         info.Name,
			OriginalPath: info.Name,
			SavedPath:    info.Name,
			Size:         info.Size,
		})
	}

	return entries, nil
}

// Run verifies every entry sequentially. Per-file problems become results;
// only a failure to list the originals directory is returned as an error.
// Cancellation during listing returns the context error with a cancelled report.
func (e *Engine) Run(ctx context.Context) (*models.VerifyReport, error) {
	report := &models.VerifyReport{
		ID:           uuid.New().String(),
		BaseDir:      e.options.BaseDir,
		OriginalsDir: e.originals.Root(),
		SavedDir:     e.saved.Root(),
		StartTime:    time.Now(),
	}

	logger := e.logger.WithFields(logging.Fields{"run_id": report.ID})

	entries, err := e.Entries(ctx)
	if err != nil && ctx.Err() != nil {
		logger.Info(ctx, "verification cancelled before listing completed", nil)
		report.Finalize(true)
		return report, ctx.Err()
	}
	if err != nil {
		err = fmt.Errorf("failed to list originals: %w", err)
		logger.Error(ctx, "verification aborted", err, nil)
		report.Finalize(false)
		report.Status = models.StatusError
		return report, err
	}

	logger.Info(ctx, "verification started", logging.Fields{
		"originals": report.OriginalsDir,
		"saved":     report.SavedDir,
		"files":     len(entries),
		"method":    e.comparator.Name(),
	})

	if err := e.formatter.Start(e.options.Output, e.options.BaseDir, len(entries)); err != nil {
		return report, fmt.Errorf("failed to start output: %w", err)
	}

	cancelled := false
	for i, entry := range entries {
		if ctx.Err() != nil {
			cancelled = true
			break
		}

		comp := e.comparator.Compare(ctx, e.originals, e.saved, entry.Name)
		result := comp.Result(entry)

		report.Results = append(report.Results, result)
		report.Stats.Record(result)
		e.logResult(ctx, logger, comp)

		if err := e.formatter.Result(i+1, result); err != nil {
			return report, fmt.Errorf("failed to write result: %w", err)
		}
	}

	report.Finalize(cancelled)

	logger.Info(ctx, "verification finished", logging.Fields{
		"status":   string(report.Status),
		"total":    report.Stats.Total,
		"passed":   report.Stats.Passed,
		"failed":   report.Stats.Failed,
		"duration": report.Duration.String(),
	})

	if err := e.formatter.Complete(report); err != nil {
		return report, fmt.Errorf("failed to write summary: %w", err)
	}

	return report, nil
}

// logResult records one outcome. Failures are already printed by the
// formatter, so they are logged at info level.
func (e *Engine) logResult(ctx context.Context, logger logging.Logger, comp *compare.Comparison) {
	fields := logging.Fields{"file": comp.Name, "result": string(comp.Kind)}

	switch comp.Kind {
	case models.KindMatch:
		fields["size"] = comp.OriginalSize
		logger.Debug(ctx, "file matched", fields)
	case models.KindSizeMismatch:
		fields["original_size"] = comp.OriginalSize
		fields["saved_size"] = comp.SavedSize
		logger.Info(ctx, "file size differs", fields)
	case models.KindByteMismatch:
		fields["mismatched_bytes"] = comp.MismatchCount
		if len(comp.Samples) > 0 {
			fields["first_offset"] = comp.Samples[0].Offset
		}
		logger.Info(ctx, "file content differs", fields)
	case models.KindMissing:
		logger.Info(ctx, "saved file missing", fields)
	case models.KindReadError:
		fields["error"] = comp.Reason
		logger.Info(ctx, "file could not be read", fields)
	}
}
