package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sdejongh/byteverify/pkg/models"
)

// JSONFormatter formats output as a single JSON document for automation and scripting
type JSONFormatter struct {
	writer  io.Writer
	target  string
	results []JSONFileData
}

// JSONReportData represents the final report document
type JSONReportData struct {
	ID           string         `json:"id"`
	Target       string         `json:"target"`
	OriginalsDir string         `json:"originals_dir"`
	SavedDir     string         `json:"saved_dir"`
	Status       string         `json:"status"`
	Duration     string         `json:"duration"`
	DurationMs   int64          `json:"duration_ms"`
	Stats        JSONStatsData  `json:"stats"`
	Files        []JSONFileData `json:"files"`
	Error        string         `json:"error,omitempty"`
}

// JSONStatsData represents statistics in JSON format
type JSONStatsData struct {
	Total          int   `json:"total"`
	Passed         int   `json:"passed"`
	Failed         int   `json:"failed"`
	SizeMismatches int   `json:"size_mismatches"`
	ByteMismatches int   `json:"byte_mismatches"`
	Missing        int   `json:"missing"`
	ReadErrors     int   `json:"read_errors"`
	BytesCompared  int64 `json:"bytes_compared"`
}

// JSONFileData represents one file outcome
type JSONFileData struct {
	Name          string           `json:"name"`
	Result        string           `json:"result"`
	OriginalSize  *int64           `json:"original_size,omitempty"`
	SavedSize     *int64           `json:"saved_size,omitempty"`
	MismatchCount int64            `json:"mismatch_count,omitempty"`
	Samples       []JSONSampleData `json:"samples,omitempty"`
	Reason        string           `json:"reason,omitempty"`
}

// JSONSampleData represents one differing position, rendered in hexadecimal
type JSONSampleData struct {
	Offset   string `json:"offset"`
	Original string `json:"original"`
	Saved    string `json:"saved"`
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{
		results: make([]JSONFileData, 0),
	}
}

// Start initializes the formatter
func (f *JSONFormatter) Start(writer io.Writer, target string, totalFiles int) error {
	if writer == nil {
		writer = os.Stdout
	}
	f.writer = writer
	f.target = target
	f.results = make([]JSONFileData, 0, totalFiles)
	return nil
}

// Result records a file outcome; nothing is written until Complete
func (f *JSONFormatter) Result(index int, result models.FileResult) error {
	f.results = append(f.results, NewJSONFileData(result))
	return nil
}

// Complete writes the report document
func (f *JSONFormatter) Complete(report *models.VerifyReport) error {
	if f.writer == nil {
		f.writer = io.Discard
	}

	data := JSONReportData{
		ID:           report.ID,
		Target:       report.BaseDir,
		OriginalsDir: report.OriginalsDir,
		SavedDir:     report.SavedDir,
		Status:       string(report.Status),
		Duration:     report.Duration.Round(time.Millisecond).String(),
		DurationMs:   report.Duration.Milliseconds(),
		Stats:        NewJSONStatsData(report.Stats),
		Files:        f.results,
	}

	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// Error writes a minimal document describing the failure
func (f *JSONFormatter) Error(err error) error {
	if f.writer == nil {
		f.writer = os.Stdout
	}
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(JSONReportData{
		Target: f.target,
		Status: string(models.StatusError),
		Files:  f.results,
		Error:  err.Error(),
	})
}

// Name returns the formatter name
func (f *JSONFormatter) Name() string {
	return "json"
}

// NewJSONFileData converts a file result to its JSON form
func NewJSONFileData(r models.FileResult) JSONFileData {
	data := JSONFileData{
		Name:          r.Entry.Name,
		Result:        string(r.Kind),
		MismatchCount: r.MismatchCount,
	}

	// Sizes are only known once both files were read
	if !r.Kind.Skipped() {
		original, saved := r.OriginalSize, r.SavedSize
		data.OriginalSize = &original
		data.SavedSize = &saved
	}

	if !r.Kind.Passed() {
		data.Reason = r.Reason
	}

	for _, s := range r.Samples {
		data.Samples = append(data.Samples, JSONSampleData{
			Offset:   FormatOffset(s.Offset),
			Original: fmt.Sprintf("%02x", s.Original),
			Saved:    fmt.Sprintf("%02x", s.Saved),
		})
	}

	return data
}

// NewJSONStatsData converts statistics to their JSON form
func NewJSONStatsData(s models.Statistics) JSONStatsData {
	return JSONStatsData{
		Total:          s.Total,
		Passed:         s.Passed,
		Failed:         s.Failed,
		SizeMismatches: s.SizeMismatches,
		ByteMismatches: s.ByteMismatches,
		Missing:        s.Missing,
		ReadErrors:     s.ReadErrors,
		BytesCompared:  s.BytesCompared,
	}
}
