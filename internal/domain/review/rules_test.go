package review

import (
	"errors"
	"testing"
)

func TestValidateRating(t *testing.T) {
	for r := MinRating; r <= MaxRating; r++ {
		if err := ValidateRating(r); err != nil {
			t.Fatalf("rating %d should be valid: %v", r, err)
		}
	}
	for _, r := range []int{-1, 0, 6, 10} {
		if err := ValidateRating(r); !errors.Is(err, ErrInvalidRating) {
			t.Fatalf("rating %d: expected ErrInvalidRating, got %v", r, err)
		}
	}
}

func TestNormalizeComment(t *testing.T) {
	got, err := NormalizeComment("  Great service, very professional  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Great service, very professional" {
		t.Fatalf("expected trimmed comment, got %q", got)
	}

	if _, err := NormalizeComment("   short    "); !errors.Is(err, ErrCommentTooShort) {
		t.Fatalf("expected ErrCommentTooShort, got %v", err)
	}
	if _, err := NormalizeComment("ótimo trab"); err != nil {
		t.Fatalf("ten runes should be enough: %v", err)
	}
}

func TestNewSummary(t *testing.T) {
	if s := NewSummary(3, 0, 0); s.Average != 0 || s.Count != 0 {
		t.Fatalf("empty summary expected, got %+v", s)
	}
	if s := NewSummary(3, 1, 5); s.Average != 5.0 {
		t.Fatalf("expected 5.0, got %v", s.Average)
	}
	if s := NewSummary(3, 3, 13); s.Average != 4.3 {
		t.Fatalf("expected 4.3, got %v", s.Average)
	}
}
