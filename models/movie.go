package models

import (
	"time"
)

// Genre is the polymorphic tag a movie carries. Specialized genres get
// their own card styling and a variant payload; everything else is General.
type Genre string

const (
	GenreGeneral Genre = "General"
	GenreAction  Genre = "ACTION"
	GenreComedy  Genre = "COMEDY"
	GenreDrama   Genre = "DRAMA"
	GenreHorror  Genre = "HORROR"
	GenreSciFi   Genre = "SCI-FI"
)

// Metadata is the flattened record a catalog lookup produces, the input to
// CreateMovie. Genre is the raw catalog genre string (e.g. "Action, Sci-Fi"),
// not the tag the movie ends up with.
type Metadata struct {
	ImdbID     string
	Title      string
	Year       int
	Director   string
	Plot       string
	Poster     string
	ImdbRating float64
	Runtime    string
	Actors     string
	Genre      string
}

// Variant is the single genre-flavor attribute a specialized movie carries.
// It is cosmetic; no other component depends on it. Numeric levels are
// clamped to [0,10].
type Variant struct {
	Stunts          []string `json:"stunts,omitempty"`
	LaughMeter      int      `json:"laughMeter,omitempty"`
	EmotionalImpact int      `json:"emotionalImpact,omitempty"`
	ScareLevel      int      `json:"scareLevel,omitempty"`
	TechLevel       int      `json:"techLevel,omitempty"`
}

// Movie is a single entry in a user's collection, identified by its catalog
// ID. The user rating and review list are only reachable through methods so
// the 1-5 rating guard cannot be bypassed.
type Movie struct {
	imdbID     string
	title      string
	year       int
	director   string
	plot       string
	poster     string
	imdbRating float64
	runtime    string
	actors     string

	genre   Genre
	variant *Variant

	userRating int
	dateAdded  time.Time
	reviews    []Review
}

// NewMovie builds a General movie from catalog metadata. Nothing is
// validated; the rating starts unrated and the date added is now.
// Use CreateMovie to get genre dispatch.
func NewMovie(meta Metadata) *Movie {
	return &Movie{
		imdbID:     meta.ImdbID,
		title:      meta.Title,
		year:       meta.Year,
		director:   meta.Director,
		plot:       meta.Plot,
		poster:     meta.Poster,
		imdbRating: meta.ImdbRating,
		runtime:    meta.Runtime,
		actors:     meta.Actors,
		genre:      GenreGeneral,
		dateAdded:  time.Now(),
	}
}

func (m *Movie) ImdbID() string      { return m.imdbID }
func (m *Movie) Title() string       { return m.title }
func (m *Movie) Year() int           { return m.year }
func (m *Movie) Director() string    { return m.director }
func (m *Movie) Plot() string        { return m.plot }
func (m *Movie) Poster() string      { return m.poster }
func (m *Movie) ImdbRating() float64 { return m.imdbRating }
func (m *Movie) Runtime() string     { return m.runtime }
func (m *Movie) Actors() string      { return m.actors }
func (m *Movie) Genre() Genre        { return m.genre }
func (m *Movie) DateAdded() time.Time { return m.dateAdded }

// UserRating returns the owner's 1-5 rating, or 0 while unrated.
func (m *Movie) UserRating() int { return m.userRating }

// SetUserRating stores the rating and reports whether it was accepted.
// Anything outside 1-5 is rejected and the previous rating kept.
func (m *Movie) SetUserRating(rating int) bool {
	if rating < 1 || rating > 5 {
		return false
	}
	m.userRating = rating
	return true
}

// AddReview appends to the review list. Reviews are never deduplicated or
// capped.
func (m *Movie) AddReview(review Review) {
	m.reviews = append(m.reviews, review)
}

// Reviews returns the reviews in the order they were written.
func (m *Movie) Reviews() []Review {
	out := make([]Review, len(m.reviews))
	copy(out, m.reviews)
	return out
}

// AddStunt records a stunt on an action movie; any other genre ignores it.
func (m *Movie) AddStunt(stunt string) {
	if m.genre != GenreAction || m.variant == nil {
		return
	}
	m.variant.Stunts = append(m.variant.Stunts, stunt)
}

// SetLaughMeter sets the comedy level, clamped to [0,10].
func (m *Movie) SetLaughMeter(level int) {
	if m.genre != GenreComedy || m.variant == nil {
		return
	}
	m.variant.LaughMeter = clampLevel(level)
}

// SetEmotionalImpact sets the drama level, clamped to [0,10].
func (m *Movie) SetEmotionalImpact(level int) {
	if m.genre != GenreDrama || m.variant == nil {
		return
	}
	m.variant.EmotionalImpact = clampLevel(level)
}

// SetScareLevel sets the horror level, clamped to [0,10].
func (m *Movie) SetScareLevel(level int) {
	if m.genre != GenreHorror || m.variant == nil {
		return
	}
	m.variant.ScareLevel = clampLevel(level)
}

// SetTechLevel sets the sci-fi level, clamped to [0,10].
func (m *Movie) SetTechLevel(level int) {
	if m.genre != GenreSciFi || m.variant == nil {
		return
	}
	m.variant.TechLevel = clampLevel(level)
}

func clampLevel(level int) int {
	if level < 0 {
		return 0
	}
	if level > 10 {
		return 10
	}
	return level
}

// Info returns a flattened snapshot of the movie for display and
// persistence. It never mutates the movie.
func (m *Movie) Info() MovieInfo {
	var variant *Variant
	if m.variant != nil {
		v := *m.variant
		v.Stunts = append([]string(nil), m.variant.Stunts...)
		variant = &v
	}

	reviews := make([]ReviewInfo, len(m.reviews))
	for i, r := range m.reviews {
		reviews[i] = r.Info()
	}

	return MovieInfo{
		ImdbID:     m.imdbID,
		Title:      m.title,
		Year:       m.year,
		Director:   m.director,
		Plot:       m.plot,
		Poster:     m.poster,
		ImdbRating: m.imdbRating,
		Runtime:    m.runtime,
		Actors:     m.actors,
		Genre:      m.genre,
		UserRating: m.userRating,
		DateAdded:  m.dateAdded,
		Variant:    variant,
		Reviews:    reviews,
	}
}
