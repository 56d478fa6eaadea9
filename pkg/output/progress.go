package output

import (
	"fmt"
	"io"
	"os"

	"github.com/cheggaaa/pb/v3"
	"golang.org/x/term"

	"github.com/sdejongh/byteverify/pkg/models"
)

const progressTemplate = `{{counters . }} {{bar . "[" "=" ">" " " "]"}} {{percent . }} {{string . "file"}}`

// ProgressFormatter shows a progress bar while files are verified and
// prints only the failures and the summary once the run completes
type ProgressFormatter struct {
	writer   io.Writer
	barOut   io.Writer
	bar      *pb.ProgressBar
	failures []models.FileResult
}

// NewProgressFormatter creates a formatter drawing its bar on stderr
func NewProgressFormatter() *ProgressFormatter {
	return &ProgressFormatter{barOut: os.Stderr}
}

// SetBarWriter redirects the progress bar
func (f *ProgressFormatter) SetBarWriter(w io.Writer) {
	f.barOut = w
}

// Start initializes the formatter and starts the bar
func (f *ProgressFormatter) Start(writer io.Writer, target string, totalFiles int) error {
	if writer == nil {
		writer = os.Stdout
	}
	f.writer = writer
	f.failures = nil

	f.bar = pb.ProgressBarTemplate(progressTemplate).New(totalFiles)
	f.bar.SetWriter(f.barOut)
	if file, ok := f.barOut.(*os.File); !ok || !term.IsTerminal(int(file.Fd())) {
		// No redraws when the bar does not go to a terminal
		f.bar.Set(pb.Static, true)
	}
	f.bar.Start()
	return nil
}

// Result advances the bar and keeps failures for the final listing
func (f *ProgressFormatter) Result(index int, result models.FileResult) error {
	if f.bar != nil {
		f.bar.Set("file", result.Entry.Name)
		f.bar.Increment()
	}
	if !result.Kind.Passed() {
		f.failures = append(f.failures, result)
	}
	return nil
}

// Complete stops the bar and prints failures and the summary
func (f *ProgressFormatter) Complete(report *models.VerifyReport) error {
	if f.bar != nil {
		f.bar.Set("file", "")
		f.bar.Finish()
	}
	if f.writer == nil {
		f.writer = io.Discard
	}

	for _, r := range f.failures {
		writeResult(f.writer, r)
	}
	writeSummary(f.writer, report)
	return nil
}

// Error stops the bar and reports the error
func (f *ProgressFormatter) Error(err error) error {
	if f.bar != nil {
		f.bar.Finish()
	}
	if f.writer != nil {
		fmt.Fprintf(f.writer, "Error: %v\n", err)
	}
	return nil
}

// Name returns the formatter name
func (f *ProgressFormatter) Name() string {
	return "progress"
}
