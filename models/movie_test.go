package models

import (
	"testing"
)

func sampleMeta() Metadata {
	return Metadata{
		ImdbID:     "tt0133093",
		Title:      "The Matrix",
		Year:       1999,
		Director:   "Lana Wachowski, Lilly Wachowski",
		Plot:       "A computer hacker learns the true nature of reality.",
		Poster:     "https://example.com/matrix.jpg",
		ImdbRating: 8.7,
		Runtime:    "136 min",
		Actors:     "Keanu Reeves, Laurence Fishburne",
		Genre:      "Action, Sci-Fi",
	}
}

func TestSetUserRating(t *testing.T) {
	tests := []struct {
		name   string
		rating int
		wantOK bool
		want   int
	}{
		{"minimum", 1, true, 1},
		{"maximum", 5, true, 5},
		{"middle", 3, true, 3},
		{"zero", 0, false, 0},
		{"negative", -2, false, 0},
		{"too high", 6, false, 0},
		{"way too high", 100, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMovie(sampleMeta())
			if ok := m.SetUserRating(tt.rating); ok != tt.wantOK {
				t.Fatalf("SetUserRating(%d) = %v, want %v", tt.rating, ok, tt.wantOK)
			}
			if got := m.UserRating(); got != tt.want {
				t.Errorf("UserRating() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSetUserRatingKeepsPriorValue(t *testing.T) {
	m := NewMovie(sampleMeta())
	if !m.SetUserRating(4) {
		t.Fatal("SetUserRating(4) rejected")
	}
	if m.SetUserRating(9) {
		t.Fatal("SetUserRating(9) accepted")
	}
	if got := m.UserRating(); got != 4 {
		t.Errorf("UserRating() = %d after rejected update, want 4", got)
	}
}

func TestNewMovieStartsUnrated(t *testing.T) {
	m := NewMovie(sampleMeta())
	if m.UserRating() != 0 {
		t.Errorf("UserRating() = %d, want 0", m.UserRating())
	}
	if m.Genre() != GenreGeneral {
		t.Errorf("Genre() = %q, want %q", m.Genre(), GenreGeneral)
	}
	if m.DateAdded().IsZero() {
		t.Error("DateAdded() is zero")
	}
	if len(m.Reviews()) != 0 {
		t.Errorf("Reviews() has %d entries, want 0", len(m.Reviews()))
	}
}

func TestAddReviewKeepsOrder(t *testing.T) {
	m := NewMovie(sampleMeta())
	m.AddReview(NewReview("Ada", "first", 3))
	m.AddReview(NewReview("Ada", "second", 3))
	m.AddReview(NewReview("Ada", "second", 3)) // duplicates allowed

	reviews := m.Reviews()
	if len(reviews) != 3 {
		t.Fatalf("Reviews() has %d entries, want 3", len(reviews))
	}
	if reviews[0].Text() != "first" || reviews[1].Text() != "second" {
		t.Errorf("reviews out of order: %q, %q", reviews[0].Text(), reviews[1].Text())
	}
}

func TestReviewRatingIsSnapshot(t *testing.T) {
	m := NewMovie(sampleMeta())
	m.SetUserRating(2)
	m.AddReview(NewReview("Ada", "meh", m.UserRating()))
	m.SetUserRating(5)

	if got := m.Reviews()[0].Rating(); got != 2 {
		t.Errorf("review rating = %d after re-rating the movie, want 2", got)
	}
}

func TestVariantLevelsClamp(t *testing.T) {
	tests := []struct {
		name  string
		level int
		want  int
	}{
		{"below range", -5, 0},
		{"in range", 7, 7},
		{"above range", 42, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := sampleMeta()
			meta.Genre = "Horror"
			m := CreateMovie(meta)
			m.SetScareLevel(tt.level)
			if got := m.Info().Variant.ScareLevel; got != tt.want {
				t.Errorf("ScareLevel = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestVariantSettersRespectGenre(t *testing.T) {
	meta := sampleMeta()
	meta.Genre = "Comedy"
	m := CreateMovie(meta)

	m.SetScareLevel(9) // wrong genre, ignored
	m.SetLaughMeter(8)

	v := m.Info().Variant
	if v == nil {
		t.Fatal("Info().Variant is nil for a comedy")
	}
	if v.ScareLevel != 0 {
		t.Errorf("ScareLevel = %d on a comedy, want 0", v.ScareLevel)
	}
	if v.LaughMeter != 8 {
		t.Errorf("LaughMeter = %d, want 8", v.LaughMeter)
	}
}

func TestAddStunt(t *testing.T) {
	meta := sampleMeta()
	m := CreateMovie(meta) // "Action, Sci-Fi" dispatches to ACTION
	m.AddStunt("rooftop chase")
	m.AddStunt("lobby shootout")

	v := m.Info().Variant
	if len(v.Stunts) != 2 {
		t.Fatalf("Stunts has %d entries, want 2", len(v.Stunts))
	}

	general := NewMovie(sampleMeta())
	general.AddStunt("ignored")
	if general.Info().Variant != nil {
		t.Error("General movie grew a variant payload")
	}
}

func TestInfoDoesNotMutate(t *testing.T) {
	m := CreateMovie(sampleMeta())
	m.SetUserRating(4)
	m.AddReview(NewReview("Ada", "great", 4))

	info := m.Info()
	info.Title = "changed"
	info.Reviews[0].Text = "changed"
	info.Variant.Stunts = append(info.Variant.Stunts, "changed")

	if m.Title() != "The Matrix" {
		t.Errorf("Title() = %q, want original", m.Title())
	}
	if m.Reviews()[0].Text() != "great" {
		t.Errorf("review text = %q, want original", m.Reviews()[0].Text())
	}
	if len(m.Info().Variant.Stunts) != 0 {
		t.Error("mutating the snapshot leaked into the movie's variant")
	}
}

func TestInfoCarriesComputedFields(t *testing.T) {
	meta := sampleMeta()
	meta.Genre = "Drama, Romance"
	m := CreateMovie(meta)
	m.SetUserRating(5)

	info := m.Info()
	if info.Genre != GenreDrama {
		t.Errorf("Info().Genre = %q, want %q", info.Genre, GenreDrama)
	}
	if info.UserRating != 5 {
		t.Errorf("Info().UserRating = %d, want 5", info.UserRating)
	}
	if info.ImdbRating != 8.7 {
		t.Errorf("Info().ImdbRating = %v, want 8.7", info.ImdbRating)
	}
}
