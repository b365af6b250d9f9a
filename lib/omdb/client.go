// Package omdb is a thin client for the OMDb catalog: title search plus a
// full-detail lookup by IMDb ID. The two calls are the only network surface
// of the application.
package omdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/icco/cinevault/models"
)

// DefaultBaseURL is the public OMDb endpoint.
const DefaultBaseURL = "https://www.omdbapi.com/"

// NotFoundError is returned when the catalog answers with Response "False".
// Message is the API's human-readable explanation ("Movie not found!", ...).
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	if e.Message == "" {
		return "omdb: not found"
	}
	return "omdb: " + e.Message
}

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	validate   *validator.Validate
}

// SearchResult is one lightweight entry from a title search.
type SearchResult struct {
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	ImdbID string `json:"imdbID"`
	Type   string `json:"Type"`
	Poster string `json:"Poster"`
}

type searchResponse struct {
	Search       []SearchResult `json:"Search"`
	TotalResults string         `json:"totalResults"`
	Response     string         `json:"Response"`
	Error        string         `json:"Error"`
}

// Record is the full metadata payload for one title, as the catalog encodes
// it (numbers arrive as strings). A success payload missing its ID or title
// is treated as malformed.
type Record struct {
	Title      string `json:"Title" validate:"required"`
	Year       string `json:"Year"`
	Runtime    string `json:"Runtime"`
	Genre      string `json:"Genre"`
	Director   string `json:"Director"`
	Actors     string `json:"Actors"`
	Plot       string `json:"Plot"`
	Poster     string `json:"Poster"`
	ImdbRating string `json:"imdbRating"`
	ImdbID     string `json:"imdbID" validate:"required"`
	Response   string `json:"Response"`
	Error      string `json:"Error"`
}

// NewClient builds a client for the given API key. An empty baseURL uses the
// public endpoint; tests point it at a local server.
func NewClient(apiKey, baseURL string, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{},
		logger:     logger,
		validate:   validator.New(),
	}
}

// Search looks up titles matching the term. A no-results answer is returned
// as *NotFoundError.
func (c *Client) Search(ctx context.Context, term string) ([]SearchResult, error) {
	u := fmt.Sprintf("%s?apikey=%s&s=%s", c.baseURL, url.QueryEscape(c.apiKey), url.QueryEscape(term))

	var result searchResponse
	if err := c.get(ctx, u, &result); err != nil {
		return nil, err
	}

	if result.Response != "True" {
		c.logger.Info("Search returned no results",
			slog.String("term", term),
			slog.String("message", result.Error))
		return nil, &NotFoundError{Message: result.Error}
	}

	return result.Search, nil
}

// GetDetails fetches the full metadata record for one IMDb ID, with the
// full-length plot.
func (c *Client) GetDetails(ctx context.Context, imdbID string) (*Record, error) {
	u := fmt.Sprintf("%s?apikey=%s&i=%s&plot=full", c.baseURL, url.QueryEscape(c.apiKey), url.QueryEscape(imdbID))

	var record Record
	if err := c.get(ctx, u, &record); err != nil {
		return nil, err
	}

	if record.Response != "True" {
		c.logger.Info("Details lookup failed",
			slog.String("imdbID", imdbID),
			slog.String("message", record.Error))
		return nil, &NotFoundError{Message: record.Error}
	}

	if err := c.validate.Struct(record); err != nil {
		return nil, fmt.Errorf("malformed record for %s: %w", imdbID, err)
	}

	return &record, nil
}

func (c *Client) get(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Error("failed to close response body", slog.Any("error", err))
		}
	}()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// Metadata converts the wire record into the factory's input, parsing the
// catalog's stringly-typed numbers. "N/A" and range years like "2001-2003"
// degrade to whatever leading number can be read.
func (r *Record) Metadata() models.Metadata {
	return models.Metadata{
		ImdbID:     r.ImdbID,
		Title:      r.Title,
		Year:       parseYear(r.Year),
		Director:   r.Director,
		Plot:       r.Plot,
		Poster:     r.Poster,
		ImdbRating: parseRating(r.ImdbRating),
		Runtime:    r.Runtime,
		Actors:     r.Actors,
		Genre:      r.Genre,
	}
}

func parseYear(s string) int {
	digits := s
	for i, c := range s {
		if c < '0' || c > '9' {
			digits = s[:i]
			break
		}
	}
	year, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return year
}

func parseRating(s string) float64 {
	if s == "" || strings.EqualFold(s, "N/A") {
		return 0
	}
	rating, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return rating
}
