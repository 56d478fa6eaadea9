package platform

import (
	"errors"
	"path/filepath"
	"runtime"
	"testing"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"target_files/", "target_files"},
		{"a//b/../c", filepath.Clean("a/c")},
		{".", "."},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := NormalizePath(tt.input); got != tt.want {
				t.Errorf("NormalizePath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		if err := ValidatePath("target_files"); err != nil {
			t.Errorf("ValidatePath() error = %v", err)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		var perr *PathError
		if err := ValidatePath("  "); !errors.As(err, &perr) {
			t.Errorf("ValidatePath() error = %v, want PathError", err)
		}
	})

	t.Run("NulByte", func(t *testing.T) {
		if err := ValidatePath("bad\x00path"); err == nil {
			t.Error("ValidatePath() should reject NUL bytes")
		}
	})
}

func TestIsUNCPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		if !IsUNCPath(`\\server\share`) {
			t.Error("expected UNC path")
		}
		return
	}
	if IsUNCPath(`\\server\share`) {
		t.Error("UNC paths only exist on windows")
	}
}
