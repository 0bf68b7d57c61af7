package shared

import (
	"testing"
	"time"
)

func TestParseDateLayouts(t *testing.T) {
	got, err := ParseDate("2025-04-01")
	if err != nil {
		t.Fatalf("plain date: %v", err)
	}
	if got.Year() != 2025 || got.Month() != time.April || got.Day() != 1 {
		t.Fatalf("plain date parsed wrong: %v", got)
	}

	got, err = ParseDate("2025-04-01T09:30:00Z")
	if err != nil {
		t.Fatalf("rfc3339: %v", err)
	}
	if got.Hour() != 9 || got.Minute() != 30 {
		t.Fatalf("rfc3339 parsed wrong: %v", got)
	}
}

func TestParseDateEmptyAndInvalid(t *testing.T) {
	got, err := ParseDate("")
	if err != nil || !got.IsZero() {
		t.Fatalf("empty input must yield zero time, got %v %v", got, err)
	}
	if _, err := ParseDate("April 1st"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
