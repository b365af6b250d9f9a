// Package handlers wires the collection, catalog client, storage, renderer
// and notification feed into the operations the UI triggers. One Session is
// one signed-in profile; everything runs on the caller's goroutine.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"os"

	"log/slog"

	"github.com/icco/cinevault/lib/notify"
	"github.com/icco/cinevault/lib/omdb"
	"github.com/icco/cinevault/lib/render"
	"github.com/icco/cinevault/lib/store"
	"github.com/icco/cinevault/models"
)

// Config carries the startup settings.
type Config struct {
	OMDBAPIKey  string
	OMDBBaseURL string // empty means the public endpoint
	DBPath      string
	StorageKey  string // empty means store.DefaultKey
}

// ConfigFromEnv reads OMDB_API_KEY and CINEVAULT_DB, defaulting the database
// to cinevault.db in the working directory.
func ConfigFromEnv() Config {
	cfg := Config{
		OMDBAPIKey: os.Getenv("OMDB_API_KEY"),
		DBPath:     os.Getenv("CINEVAULT_DB"),
	}
	if cfg.DBPath == "" {
		cfg.DBPath = "cinevault.db"
	}
	return cfg
}

// Session is the explicit application state: the current user plus every
// collaborator the UI handlers need. Tests build one against a fake catalog
// and a throwaway database.
type Session struct {
	user     *models.User
	store    *store.Store
	catalog  *omdb.Client
	renderer *render.Renderer
	feed     *notify.Feed
	logger   *slog.Logger
}

// NewSession opens storage and restores the persisted user, or begins a
// fresh default-named one. A snapshot that fails to decode is logged and
// treated as absent rather than killing startup.
func NewSession(cfg Config, logger *slog.Logger) (*Session, error) {
	st, err := store.Open(cfg.DBPath, cfg.StorageKey, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	renderer, err := render.New()
	if err != nil {
		return nil, fmt.Errorf("failed to build renderer: %w", err)
	}

	user, ok, err := st.Load()
	if err != nil {
		logger.Error("Failed to load persisted collection, starting fresh", slog.Any("error", err))
		ok = false
	}
	if !ok {
		user = models.NewUser(models.DefaultUserName)
	}

	return &Session{
		user:     user,
		store:    st,
		catalog:  omdb.NewClient(cfg.OMDBAPIKey, cfg.OMDBBaseURL, logger),
		renderer: renderer,
		feed:     notify.NewFeed(logger, 0),
		logger:   logger,
	}, nil
}

// UserName returns the current display name.
func (s *Session) UserName() string { return s.user.Name() }

// Initials returns the avatar initials for the current user.
func (s *Session) Initials() string { return s.user.Initials() }

// Stats returns the collection summary.
func (s *Session) Stats() models.Stats { return s.user.Stats() }

// Notifications returns the recent notification feed, oldest first.
func (s *Session) Notifications() []notify.Notification { return s.feed.Recent() }

// HasMovie reports whether the collection already holds the given ID, so
// the UI can flip its add button.
func (s *Session) HasMovie(imdbID string) bool { return s.user.HasMovie(imdbID) }

// Search looks the term up in the catalog. A no-results answer or a network
// failure lands in the notification feed and is returned to the caller.
func (s *Session) Search(ctx context.Context, term string) ([]omdb.SearchResult, error) {
	results, err := s.catalog.Search(ctx, term)
	if err != nil {
		var nf *omdb.NotFoundError
		if errors.As(err, &nf) {
			s.feed.Push(notify.LevelError, nf.Message)
		} else {
			s.feed.Push(notify.LevelError, "Search failed, please try again")
		}
		return nil, err
	}
	return results, nil
}

// AddToCollection fetches full details for the ID, builds the typed movie
// and stores it, overwriting any entry already under that ID.
func (s *Session) AddToCollection(ctx context.Context, imdbID string) (models.MovieInfo, error) {
	record, err := s.catalog.GetDetails(ctx, imdbID)
	if err != nil {
		var nf *omdb.NotFoundError
		if errors.As(err, &nf) {
			s.feed.Push(notify.LevelError, nf.Message)
		} else {
			s.feed.Push(notify.LevelError, "Could not fetch movie details")
		}
		return models.MovieInfo{}, err
	}

	movie := models.CreateMovie(record.Metadata())
	s.user.AddMovie(movie)
	s.persist()

	s.feed.Push(notify.LevelSuccess, fmt.Sprintf("%s added to your collection", movie.Title()))
	return movie.Info(), nil
}

// Rate sets the user rating on a collection entry. A lookup miss or an
// out-of-range rating returns false, leaves state untouched and notifies.
func (s *Session) Rate(imdbID string, rating int) bool {
	movie, ok := s.user.Movie(imdbID)
	if !ok {
		s.feed.Push(notify.LevelError, "Movie not in your collection")
		return false
	}

	if !movie.SetUserRating(rating) {
		s.logger.Info("Rejected out-of-range rating",
			slog.String("imdbID", imdbID),
			slog.Int("rating", rating))
		s.feed.Push(notify.LevelError, "Rating must be between 1 and 5")
		return false
	}

	s.persist()
	s.feed.Push(notify.LevelSuccess, fmt.Sprintf("Rated %s %d/5", movie.Title(), rating))
	return true
}

// Review writes a review on a collection entry, authored with the current
// display name. A lookup miss returns false with no side effects.
func (s *Session) Review(imdbID, text string, rating int) bool {
	if !s.user.AddReviewToMovie(imdbID, text, rating) {
		s.feed.Push(notify.LevelError, "Movie not in your collection")
		return false
	}

	s.persist()
	s.feed.Push(notify.LevelSuccess, "Review saved")
	return true
}

// Remove deletes a collection entry, reporting whether it existed.
func (s *Session) Remove(imdbID string) bool {
	movie, ok := s.user.Movie(imdbID)
	if !ok {
		return false
	}

	s.user.RemoveMovie(imdbID)
	s.persist()
	s.feed.Push(notify.LevelInfo, fmt.Sprintf("%s removed from your collection", movie.Title()))
	return true
}

// Rename changes the profile name and persists it.
func (s *Session) Rename(name string) {
	s.user.Rename(name)
	s.persist()
}

// MovieInfo returns the display snapshot for one entry.
func (s *Session) MovieInfo(imdbID string) (models.MovieInfo, bool) {
	movie, ok := s.user.Movie(imdbID)
	if !ok {
		return models.MovieInfo{}, false
	}
	return movie.Info(), true
}

// RenderCollection renders the card grid sorted by the given key; an
// unrecognized key keeps the current order.
func (s *Session) RenderCollection(key models.SortKey) (string, error) {
	return s.renderer.Collection(infos(s.user.SortedMovies(key)))
}

// RenderGenre renders only the cards whose genre tag matches.
func (s *Session) RenderGenre(genre string) (string, error) {
	return s.renderer.Collection(infos(s.user.MoviesByGenre(genre)))
}

// RenderReviews renders a movie's reviews in writing order.
func (s *Session) RenderReviews(imdbID string) (string, error) {
	movie, ok := s.user.Movie(imdbID)
	if !ok {
		return "", fmt.Errorf("movie %s not in collection", imdbID)
	}

	var out string
	for _, review := range movie.Reviews() {
		fragment, err := s.renderer.Review(review.Info())
		if err != nil {
			return "", err
		}
		out += fragment
	}
	return out, nil
}

// ClearCollection wipes persisted storage and starts over with a fresh
// default-named user.
func (s *Session) ClearCollection() error {
	if err := s.store.Clear(); err != nil {
		s.feed.Push(notify.LevelError, "Failed to clear your collection")
		return err
	}
	s.user = models.NewUser(models.DefaultUserName)
	s.feed.Push(notify.LevelInfo, "Collection cleared")
	return nil
}

// persist saves the whole aggregate after a mutation. A failed save is
// surfaced as a notification; the in-memory state stays authoritative.
func (s *Session) persist() {
	if err := s.store.Save(s.user); err != nil {
		s.logger.Error("Failed to save collection", slog.Any("error", err))
		s.feed.Push(notify.LevelError, "Failed to save your collection")
	}
}

func infos(movies []*models.Movie) []models.MovieInfo {
	out := make([]models.MovieInfo, len(movies))
	for i, m := range movies {
		out[i] = m.Info()
	}
	return out
}
