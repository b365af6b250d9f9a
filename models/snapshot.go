package models

import "time"

// ReviewInfo is the flattened form of a review, as displayed and persisted.
type ReviewInfo struct {
	Author string    `json:"author"`
	Text   string    `json:"text"`
	Rating int       `json:"rating"`
	Date   time.Time `json:"date"`
}

// MovieInfo is the flattened form of a movie, as displayed and persisted.
type MovieInfo struct {
	ImdbID     string       `json:"imdbID"`
	Title      string       `json:"title"`
	Year       int          `json:"year"`
	Director   string       `json:"director"`
	Plot       string       `json:"plot"`
	Poster     string       `json:"poster"`
	ImdbRating float64      `json:"imdbRating"`
	Runtime    string       `json:"runtime"`
	Actors     string       `json:"actors"`
	Genre      Genre        `json:"genre"`
	UserRating int          `json:"userRating"`
	DateAdded  time.Time    `json:"dateAdded"`
	Variant    *Variant     `json:"variant,omitempty"`
	Reviews    []ReviewInfo `json:"reviews,omitempty"`
}

// UserSnapshot is the single persisted record: the profile name plus the
// collection in insertion order, each movie carrying its reviews.
type UserSnapshot struct {
	UserName string      `json:"userName"`
	Movies   []MovieInfo `json:"movies"`
}

// Snapshot flattens the user and every owned movie for persistence.
func (u *User) Snapshot() UserSnapshot {
	movies := make([]MovieInfo, 0, len(u.order))
	for _, m := range u.Movies() {
		movies = append(movies, m.Info())
	}
	return UserSnapshot{
		UserName: u.name,
		Movies:   movies,
	}
}

// UserFromSnapshot rebuilds a user from a persisted snapshot. Optional
// fields may be absent: missing reviews mean none, a missing dateAdded
// defaults to now, an out-of-range rating loads as unrated, a missing name
// falls back to DefaultUserName. The review counter is restored one review
// at a time as they are re-attached.
func UserFromSnapshot(snap UserSnapshot) *User {
	name := snap.UserName
	if name == "" {
		name = DefaultUserName
	}

	u := NewUser(name)
	for _, info := range snap.Movies {
		m := movieFromInfo(info)
		u.AddMovie(m)
		for _, ri := range info.Reviews {
			m.AddReview(reviewFromInfo(ri))
			u.reviewCount++
		}
	}
	return u
}

func movieFromInfo(info MovieInfo) *Movie {
	m := &Movie{
		imdbID:     info.ImdbID,
		title:      info.Title,
		year:       info.Year,
		director:   info.Director,
		plot:       info.Plot,
		poster:     info.Poster,
		imdbRating: info.ImdbRating,
		runtime:    info.Runtime,
		actors:     info.Actors,
		genre:      info.Genre,
		variant:    info.Variant,
		dateAdded:  info.DateAdded,
	}
	if m.genre == "" {
		m.genre = GenreGeneral
	}
	if m.genre != GenreGeneral && m.variant == nil {
		m.variant = &Variant{}
	}
	if m.dateAdded.IsZero() {
		m.dateAdded = time.Now()
	}
	if info.UserRating >= 1 && info.UserRating <= 5 {
		m.userRating = info.UserRating
	}
	return m
}
