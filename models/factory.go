package models

import "strings"

// genreRules drive CreateMovie's dispatch. Order matters: the first rule
// whose keyword appears in the catalog genre string wins, even if a later
// keyword also appears. Matching is case-insensitive substring containment.
var genreRules = []struct {
	keywords []string
	genre    Genre
}{
	{[]string{"action"}, GenreAction},
	{[]string{"comedy"}, GenreComedy},
	{[]string{"drama"}, GenreDrama},
	{[]string{"horror"}, GenreHorror},
	{[]string{"sci-fi", "science fiction"}, GenreSciFi},
}

// CreateMovie builds the movie variant matching the metadata's genre string.
// A missing or unrecognized genre falls through to a General movie; there is
// no error case.
func CreateMovie(meta Metadata) *Movie {
	m := NewMovie(meta)

	lower := strings.ToLower(meta.Genre)
	for _, rule := range genreRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				m.genre = rule.genre
				m.variant = &Variant{}
				return m
			}
		}
	}

	return m
}
