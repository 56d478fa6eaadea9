package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sdejongh/byteverify/pkg/models"
)

const separator = "---------------------------------------------------"

// HumanFormatter formats output in human-readable format
type HumanFormatter struct {
	writer     io.Writer
	totalFiles int
	startTime  time.Time
}

// NewHumanFormatter creates a new human-readable formatter
func NewHumanFormatter() *HumanFormatter {
	return &HumanFormatter{}
}

// Start initializes the formatter
func (f *HumanFormatter) Start(writer io.Writer, target string, totalFiles int) error {
	if writer == nil {
		writer = io.Discard
	}
	f.writer = writer
	f.totalFiles = totalFiles
	f.startTime = time.Now()

	fmt.Fprintf(f.writer, "Target Directory: %s\n", target)
	fmt.Fprintln(f.writer, separator)
	return nil
}

// Result prints one line per file plus diagnostics for failures
func (f *HumanFormatter) Result(index int, result models.FileResult) error {
	if f.writer == nil {
		return nil
	}
	writeResult(f.writer, result)
	return nil
}

// Complete prints the summary
func (f *HumanFormatter) Complete(report *models.VerifyReport) error {
	if f.writer == nil {
		f.writer = io.Discard
	}
	writeSummary(f.writer, report)
	return nil
}

// Error reports an error
func (f *HumanFormatter) Error(err error) error {
	if f.writer != nil {
		fmt.Fprintf(f.writer, "Error: %v\n", err)
	}
	return nil
}

// Name returns the formatter name
func (f *HumanFormatter) Name() string {
	return "human"
}

// writeResult writes the PASS/FAIL/SKIP line and its detail lines
func writeResult(w io.Writer, r models.FileResult) {
	switch {
	case r.Kind.Passed():
		fmt.Fprintf(w, "PASS: %s\n", r.Entry.Name)
	case r.Kind.Skipped():
		fmt.Fprintf(w, "SKIP: %s (%s)\n", r.Entry.Name, r.Reason)
	default:
		fmt.Fprintf(w, "FAIL: %s\n", r.Entry.Name)
		for _, line := range DetailLines(r) {
			fmt.Fprintf(w, "   [!] %s\n", line)
		}
	}
}

// DetailLines returns the diagnostic lines for a failed comparison
func DetailLines(r models.FileResult) []string {
	switch r.Kind {
	case models.KindSizeMismatch:
		return []string{fmt.Sprintf("Size mismatch: Original=%d vs Saved=%d", r.OriginalSize, r.SavedSize)}
	case models.KindByteMismatch:
		lines := make([]string, 0, len(r.Samples)+1)
		for _, s := range r.Samples {
			lines = append(lines, fmt.Sprintf("%s mismatch at %s: A=%02x, B=%02x",
				r.Entry.Name, FormatOffset(s.Offset), s.Original, s.Saved))
		}
		return append(lines, fmt.Sprintf("Total mismatched bytes: %d", r.MismatchCount))
	case models.KindMissing, models.KindReadError:
		return []string{r.Reason}
	default:
		return nil
	}
}

// FormatOffset renders a byte offset as zero-padded hexadecimal, e.g. 0x00000001
func FormatOffset(offset int64) string {
	return fmt.Sprintf("0x%08x", offset)
}

func writeSummary(w io.Writer, report *models.VerifyReport) {
	fmt.Fprintln(w, separator)
	fmt.Fprintf(w, "Total: %d\n", report.Stats.Total)
	fmt.Fprintf(w, "Passed: %d\n", report.Stats.Passed)
	fmt.Fprintf(w, "Failed: %d\n", report.Stats.Failed)

	switch report.Status {
	case models.StatusSuccess:
		fmt.Fprintln(w, "All files matched perfectly!")
	case models.StatusCancelled:
		fmt.Fprintln(w, "Verification cancelled before all files were checked.")
	default:
		var parts []string
		if n := report.Stats.SizeMismatches; n > 0 {
			parts = append(parts, fmt.Sprintf("%d size mismatches", n))
		}
		if n := report.Stats.ByteMismatches; n > 0 {
			parts = append(parts, fmt.Sprintf("%d byte mismatches", n))
		}
		if n := report.Stats.Missing; n > 0 {
			parts = append(parts, fmt.Sprintf("%d missing", n))
		}
		if n := report.Stats.ReadErrors; n > 0 {
			parts = append(parts, fmt.Sprintf("%d read errors", n))
		}
		if len(parts) > 0 {
			fmt.Fprintf(w, "  (%s)\n", strings.Join(parts, ", "))
		}
	}

	fmt.Fprintf(w, "Compared %s in %s\n", formatBytes(report.Stats.BytesCompared), report.Duration.Round(time.Millisecond))
}

// formatBytes formats bytes in human-readable format
func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
