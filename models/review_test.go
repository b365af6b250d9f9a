package models

import (
	"testing"
	"time"
)

func TestNewReview(t *testing.T) {
	before := time.Now()
	r := NewReview("Ada", "a classic", 5)

	if r.Author() != "Ada" || r.Text() != "a classic" || r.Rating() != 5 {
		t.Errorf("unexpected review fields: %q %q %d", r.Author(), r.Text(), r.Rating())
	}
	if r.Date().Before(before) || r.Date().After(time.Now()) {
		t.Errorf("Date() = %v, want construction time", r.Date())
	}
}

func TestFormattedDate(t *testing.T) {
	r := Review{date: time.Date(2025, time.March, 9, 12, 0, 0, 0, time.UTC)}
	if got := r.FormattedDate(); got != "March 9, 2025" {
		t.Errorf("FormattedDate() = %q, want %q", got, "March 9, 2025")
	}
}
