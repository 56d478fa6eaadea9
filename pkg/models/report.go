package models

import (
	"time"
)

// VerifyReport represents the results of one verification pass
type VerifyReport struct {
	// Run details
	ID           string
	BaseDir      string
	OriginalsDir string
	SavedDir     string

	// Timing
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration

	// Statistics
	Stats Statistics

	// Results in the order files were verified
	Results []FileResult

	// Overall status
	Status Status
}

// Statistics holds verification counters
type Statistics struct {
	Total  int
	Passed int
	Failed int

	// Breakdown of failures
	SizeMismatches int
	ByteMismatches int
	Missing        int
	ReadErrors     int

	BytesCompared int64
}

// Record adds a file result to the counters
func (s *Statistics) Record(r FileResult) {
	s.Total++
	switch r.Kind {
	case KindMatch:
		s.Passed++
		s.BytesCompared += r.OriginalSize
		return
	case KindSizeMismatch:
		s.SizeMismatches++
	case KindByteMismatch:
		s.ByteMismatches++
		s.BytesCompared += r.OriginalSize
	case KindMissing:
		s.Missing++
	case KindReadError:
		s.ReadErrors++
	}
	s.Failed++
}

// Status represents the overall result
type Status string

const (
	// StatusSuccess indicates every enumerated file matched
	StatusSuccess Status = "success"
	// StatusFailed indicates at least one file failed or was skipped
	StatusFailed Status = "failed"
	// StatusError indicates the run could not complete
	StatusError Status = "error"
	// StatusCancelled indicates the run was cancelled
	StatusCancelled Status = "cancelled"
)

// ExitCode returns the process exit code for the status
func (s Status) ExitCode() int {
	switch s {
	case StatusSuccess:
		return 0
	case StatusFailed:
		return 1
	case StatusError:
		return 2
	case StatusCancelled:
		return 3
	default:
		return 2
	}
}

// Finalize stamps the end time and derives the status from the counters
func (r *VerifyReport) Finalize(cancelled bool) {
	r.EndTime = time.Now()
	r.Duration = r.EndTime.Sub(r.StartTime)

	switch {
	case cancelled:
		r.Status = StatusCancelled
	case r.Stats.Failed > 0:
		r.Status = StatusFailed
	default:
		r.Status = StatusSuccess
	}
}

// Failures returns the results that did not pass
func (r *VerifyReport) Failures() []FileResult {
	var failures []FileResult
	for _, res := range r.Results {
		if !res.Kind.Passed() {
			failures = append(failures, res)
		}
	}
	return failures
}
