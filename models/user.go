package models

import (
	"math"
	"sort"
	"strings"
)

// DefaultUserName is used for a fresh session with no persisted profile.
const DefaultUserName = "Guest"

// SortKey selects the ordering for SortedMovies.
type SortKey string

const (
	SortByTitle     SortKey = "title"
	SortByYear      SortKey = "year"
	SortByRating    SortKey = "rating"
	SortByDateAdded SortKey = "dateAdded"
)

// Stats is an immutable summary of a user's collection.
type Stats struct {
	MovieCount    int     `json:"movieCount"`
	ReviewCount   int     `json:"reviewCount"`
	AverageRating float64 `json:"averageRating"`
}

// User owns a collection of movies keyed by catalog ID. Iteration order is
// insertion order, kept stable so rendering doesn't shuffle between redraws.
// The review counter is bumped on every successful review, never recomputed
// by walking the collection.
type User struct {
	name        string
	movies      map[string]*Movie
	order       []string
	reviewCount int
}

// NewUser starts an empty collection for the named user.
func NewUser(name string) *User {
	return &User{
		name:   name,
		movies: make(map[string]*Movie),
	}
}

func (u *User) Name() string { return u.name }

// Rename changes the display name. Reviews already written keep their
// original author.
func (u *User) Rename(name string) {
	u.name = name
}

// Initials returns up to two uppercase initials for the avatar badge.
func (u *User) Initials() string {
	var b strings.Builder
	for _, word := range strings.Fields(u.name) {
		b.WriteString(strings.ToUpper(string([]rune(word)[0])))
		if b.Len() >= 2 {
			break
		}
	}
	return b.String()
}

// AddMovie inserts the movie under its catalog ID, replacing any existing
// entry with the same ID. A replaced entry keeps its original position.
func (u *User) AddMovie(movie *Movie) bool {
	if movie == nil {
		return false
	}
	if _, ok := u.movies[movie.imdbID]; !ok {
		u.order = append(u.order, movie.imdbID)
	}
	u.movies[movie.imdbID] = movie
	return true
}

// RemoveMovie deletes by catalog ID and reports whether an entry existed.
func (u *User) RemoveMovie(imdbID string) bool {
	if _, ok := u.movies[imdbID]; !ok {
		return false
	}
	delete(u.movies, imdbID)
	for i, id := range u.order {
		if id == imdbID {
			u.order = append(u.order[:i], u.order[i+1:]...)
			break
		}
	}
	return true
}

// Movie looks up a collection entry by catalog ID.
func (u *User) Movie(imdbID string) (*Movie, bool) {
	m, ok := u.movies[imdbID]
	return m, ok
}

// HasMovie reports whether the collection holds the given ID.
func (u *User) HasMovie(imdbID string) bool {
	_, ok := u.movies[imdbID]
	return ok
}

// Movies returns the collection in insertion order.
func (u *User) Movies() []*Movie {
	out := make([]*Movie, 0, len(u.order))
	for _, id := range u.order {
		out = append(out, u.movies[id])
	}
	return out
}

// MoviesByGenre returns movies whose genre tag matches, case-insensitively.
func (u *User) MoviesByGenre(genre string) []*Movie {
	var out []*Movie
	for _, m := range u.Movies() {
		if strings.EqualFold(string(m.genre), genre) {
			out = append(out, m)
		}
	}
	return out
}

// MovieCount returns the number of movies in the collection.
func (u *User) MovieCount() int { return len(u.movies) }

// ReviewCount returns the number of reviews this user has written across
// all movies.
func (u *User) ReviewCount() int { return u.reviewCount }

// AddReviewToMovie writes a review on the given movie, authored with the
// user's current name and carrying the passed rating. A lookup miss returns
// false and changes nothing.
func (u *User) AddReviewToMovie(imdbID, text string, rating int) bool {
	m, ok := u.movies[imdbID]
	if !ok {
		return false
	}
	m.AddReview(NewReview(u.name, text, rating))
	u.reviewCount++
	return true
}

// AverageRating is the mean user rating across the collection, unrated
// movies counting as 0, rounded to one decimal. An empty collection is 0.
func (u *User) AverageRating() float64 {
	if len(u.movies) == 0 {
		return 0
	}
	total := 0
	for _, m := range u.movies {
		total += m.userRating
	}
	return math.Round(float64(total)/float64(len(u.movies))*10) / 10
}

// SortedMovies returns a sorted copy of the collection; the stored order is
// untouched. Title sorts ascending, everything else descending (newest or
// highest first). An unknown key returns the current insertion order.
func (u *User) SortedMovies(key SortKey) []*Movie {
	movies := u.Movies()
	switch key {
	case SortByTitle:
		sort.SliceStable(movies, func(i, j int) bool {
			return movies[i].title < movies[j].title
		})
	case SortByYear:
		sort.SliceStable(movies, func(i, j int) bool {
			return movies[i].year > movies[j].year
		})
	case SortByRating:
		sort.SliceStable(movies, func(i, j int) bool {
			return movies[i].userRating > movies[j].userRating
		})
	case SortByDateAdded:
		sort.SliceStable(movies, func(i, j int) bool {
			return movies[i].dateAdded.After(movies[j].dateAdded)
		})
	}
	return movies
}

// Stats returns the collection summary.
func (u *User) Stats() Stats {
	return Stats{
		MovieCount:    u.MovieCount(),
		ReviewCount:   u.reviewCount,
		AverageRating: u.AverageRating(),
	}
}
