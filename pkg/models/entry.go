package models

// FileEntry represents one regular file enumerated from the originals directory
// and the path its saved counterpart is expected at
type FileEntry struct {
	// Name is the exact, case-sensitive file name shared by both sides
	Name string

	// OriginalPath is the path of the file relative to the originals root
	OriginalPath string

	// SavedPath is the path probed in the saved root
	SavedPath string

	// Size of the original file in bytes, as reported by the listing
	Size int64
}

// ResultKind categorizes the outcome of verifying one file
type ResultKind string

const (
	// KindMatch indicates both files hold identical bytes
	KindMatch ResultKind = "match"
	// KindSizeMismatch indicates the files have different lengths
	KindSizeMismatch ResultKind = "size_mismatch"
	// KindByteMismatch indicates equal lengths with differing bytes
	KindByteMismatch ResultKind = "byte_mismatch"
	// KindMissing indicates no counterpart exists in the saved directory
	KindMissing ResultKind = "missing"
	// KindReadError indicates either file could not be opened or read
	KindReadError ResultKind = "read_error"
)

// Passed reports whether the outcome counts as a pass
func (k ResultKind) Passed() bool {
	return k == KindMatch
}

// Skipped reports whether the comparison could not be completed
func (k ResultKind) Skipped() bool {
	return k == KindMissing || k == KindReadError
}

// DiffSample is one recorded position where the two files differ
type DiffSample struct {
	Offset   int64 `json:"offset"`
	Original byte  `json:"original"`
	Saved    byte  `json:"saved"`
}

// FileResult is the reported outcome for one enumerated file
type FileResult struct {
	Entry FileEntry

	Kind ResultKind

	// OriginalSize and SavedSize are set once both files were read
	OriginalSize int64
	SavedSize    int64

	// MismatchCount is the exact number of differing positions (byte mismatches only)
	MismatchCount int64

	// Samples holds the first differing positions in ascending order
	Samples []DiffSample

	// Reason is a human-readable explanation, set for skips
	Reason string
}
