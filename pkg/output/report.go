package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sdejongh/byteverify/pkg/models"
)

// WriteReport writes the failures of a run to a file.
// Format can be "human" or "json". No file is created when every file passed.
func WriteReport(report *models.VerifyReport, path string, format string) error {
	if len(report.Failures()) == 0 {
		return nil
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	switch format {
	case "json":
		return writeReportJSON(report, file)
	default: // "human"
		return writeReportHuman(report, file)
	}
}

// writeReportHuman groups failures by kind
func writeReportHuman(report *models.VerifyReport, w io.Writer) error {
	failures := report.Failures()

	fmt.Fprintf(w, "Verification Report\n")
	fmt.Fprintf(w, "===================\n\n")
	fmt.Fprintf(w, "Run: %s\n", report.ID)
	fmt.Fprintf(w, "Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(w, "Originals: %s\n", report.OriginalsDir)
	fmt.Fprintf(w, "Saved: %s\n\n", report.SavedDir)
	fmt.Fprintf(w, "Total Failures: %d of %d files\n\n", len(failures), report.Stats.Total)

	byKind := make(map[models.ResultKind][]models.FileResult)
	for _, r := range failures {
		byKind[r.Kind] = append(byKind[r.Kind], r)
	}

	kindOrder := []models.ResultKind{
		models.KindReadError,
		models.KindMissing,
		models.KindSizeMismatch,
		models.KindByteMismatch,
	}

	kindLabels := map[models.ResultKind]string{
		models.KindReadError:    "Read Errors",
		models.KindMissing:      "Missing in Saved",
		models.KindSizeMismatch: "Size Mismatches",
		models.KindByteMismatch: "Content Mismatches",
	}

	for _, kind := range kindOrder {
		results := byKind[kind]
		if len(results) == 0 {
			continue
		}

		label := fmt.Sprintf("%s (%d files)", kindLabels[kind], len(results))
		fmt.Fprintf(w, "%s\n", label)
		fmt.Fprintf(w, "%s\n", strings.Repeat("-", len(label)))

		for _, r := range results {
			fmt.Fprintf(w, "  %s\n", r.Entry.Name)
			for _, line := range DetailLines(r) {
				fmt.Fprintf(w, "    %s\n", line)
			}
		}

		fmt.Fprintf(w, "\n")
	}

	return nil
}

// writeReportJSON writes failures in JSON format
func writeReportJSON(report *models.VerifyReport, w io.Writer) error {
	failures := report.Failures()

	files := make([]JSONFileData, 0, len(failures))
	for _, r := range failures {
		files = append(files, NewJSONFileData(r))
	}

	output := struct {
		Generated    string         `json:"generated"`
		ID           string         `json:"id"`
		OriginalsDir string         `json:"originals_dir"`
		SavedDir     string         `json:"saved_dir"`
		TotalCount   int            `json:"total_count"`
		Stats        JSONStatsData  `json:"stats"`
		Failures     []JSONFileData `json:"failures"`
	}{
		Generated:    time.Now().Format(time.RFC3339),
		ID:           report.ID,
		OriginalsDir: report.OriginalsDir,
		SavedDir:     report.SavedDir,
		TotalCount:   len(failures),
		Stats:        NewJSONStatsData(report.Stats),
		Failures:     files,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
