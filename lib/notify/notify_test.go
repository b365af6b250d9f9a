package notify

import (
	"fmt"
	"io"
	"log/slog"
	"testing"
)

func TestPushAndRecent(t *testing.T) {
	f := NewFeed(slog.New(slog.NewTextHandler(io.Discard, nil)), 5)

	first := f.Push(LevelSuccess, "Movie added")
	second := f.Push(LevelError, "Movie not found!")

	if first.ID == second.ID {
		t.Error("notifications share an ID")
	}
	if first.ID == "" {
		t.Error("notification has no ID")
	}

	recent := f.Recent()
	if len(recent) != 2 {
		t.Fatalf("Recent() has %d entries, want 2", len(recent))
	}
	if recent[0].Message != "Movie added" || recent[1].Message != "Movie not found!" {
		t.Errorf("feed out of order: %+v", recent)
	}
	if recent[1].Level != LevelError {
		t.Errorf("level = %q, want error", recent[1].Level)
	}
}

func TestFeedBound(t *testing.T) {
	f := NewFeed(slog.New(slog.NewTextHandler(io.Discard, nil)), 3)
	for i := 0; i < 10; i++ {
		f.Push(LevelInfo, fmt.Sprintf("note %d", i))
	}

	recent := f.Recent()
	if len(recent) != 3 {
		t.Fatalf("Recent() has %d entries, want 3", len(recent))
	}
	if recent[0].Message != "note 7" || recent[2].Message != "note 9" {
		t.Errorf("bound kept wrong entries: %+v", recent)
	}
}

func TestRecentReturnsCopy(t *testing.T) {
	f := NewFeed(slog.New(slog.NewTextHandler(io.Discard, nil)), 0)
	f.Push(LevelInfo, "original")

	recent := f.Recent()
	recent[0].Message = "changed"

	if f.Recent()[0].Message != "original" {
		t.Error("mutating Recent() leaked into the feed")
	}
}
