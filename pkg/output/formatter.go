package output

import (
	"io"

	"github.com/sdejongh/byteverify/pkg/models"
)

// Formatter defines the interface for output formatting
// Implementations include human-readable, JSON and progress bar formatters
type Formatter interface {
	// Start initializes the formatter for a verification pass over target
	Start(writer io.Writer, target string, totalFiles int) error

	// Result reports the outcome for the index-th file (1-based)
	Result(index int, result models.FileResult) error

	// Complete finalizes output and displays summary
	Complete(report *models.VerifyReport) error

	// Error reports an error that ended the run
	Error(err error) error

	// Name returns the formatter name
	Name() string
}

// New returns the formatter registered under name
func New(name string, progress bool) (Formatter, error) {
	switch name {
	case "json":
		return NewJSONFormatter(), nil
	case "human", "":
		if progress {
			return NewProgressFormatter(), nil
		}
		return NewHumanFormatter(), nil
	default:
		return nil, &models.ValidationError{Field: "output", Message: "unsupported format " + name + " (use: human, json)"}
	}
}
