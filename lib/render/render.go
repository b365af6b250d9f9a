// Package render turns movie and review snapshots into the HTML fragments
// the UI drops into the page. Genre styling is dispatched through a lookup
// table keyed by the movie's genre tag; General movies render untagged.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/icco/cinevault/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// PlaceholderPoster is substituted when the catalog has no poster.
const PlaceholderPoster = "https://via.placeholder.com/300x450?text=No+Poster"

var genreClasses = map[models.Genre]string{
	models.GenreAction: "action-movie",
	models.GenreComedy: "comedy-movie",
	models.GenreDrama:  "drama-movie",
	models.GenreHorror: "horror-movie",
	models.GenreSciFi:  "scifi-movie",
}

type Renderer struct {
	tmpl *template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	funcMap := template.FuncMap{
		"genreClass": func(g models.Genre) string {
			return genreClasses[g]
		},
		"stars": func(n int) string {
			return strings.Repeat("⭐", n)
		},
		"poster": func(u string) string {
			if u == "" || u == "N/A" {
				return PlaceholderPoster
			}
			return u
		},
		"formatDate": func(ts time.Time) string {
			return ts.Format("January 2, 2006")
		},
	}

	tmpl, err := template.New("").Funcs(funcMap).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &Renderer{tmpl: tmpl}, nil
}

// Card renders one collection card.
func (r *Renderer) Card(info models.MovieInfo) (string, error) {
	return r.execute("card.html", info)
}

// Review renders one review entry.
func (r *Renderer) Review(info models.ReviewInfo) (string, error) {
	return r.execute("review.html", info)
}

// Collection renders the card grid in the order given.
func (r *Renderer) Collection(infos []models.MovieInfo) (string, error) {
	return r.execute("collection.html", infos)
}

func (r *Renderer) execute(name string, data any) (string, error) {
	var b strings.Builder
	if err := r.tmpl.ExecuteTemplate(&b, name, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}
	return b.String(), nil
}
