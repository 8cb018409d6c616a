package controller

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Trigger binds a stable identifier to the selection it activates.
type Trigger struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	Selection Selection `json:"selection"`
}

// Triggers builds the trigger map for the given catalogs: one trigger per
// mood and genre followed by the three fixed listings. Entries whose
// identifier is already taken are skipped.
func Triggers(moods, genres []string) []Trigger {
	title := cases.Title(language.English)
	seen := make(map[string]bool)
	var out []Trigger

	add := func(t Trigger) {
		if seen[t.ID] {
			return
		}
		seen[t.ID] = true
		out = append(out, t)
	}

	for _, mood := range moods {
		if slug := slugify(mood); slug != "" {
			add(Trigger{ID: "mood-" + slug, Label: title.String(strings.TrimSpace(mood)), Selection: Mood(strings.TrimSpace(mood))})
		}
	}
	for _, genre := range genres {
		if slug := slugify(genre); slug != "" {
			add(Trigger{ID: "genre-" + slug, Label: strings.TrimSpace(genre), Selection: Genre(strings.TrimSpace(genre))})
		}
	}
	add(Trigger{ID: "trending", Label: "Trending", Selection: Trending()})
	add(Trigger{ID: "popular", Label: "Popular", Selection: Popular()})
	add(Trigger{ID: "top-rated", Label: "Top Rated", Selection: TopRated()})
	return out
}

// slugify lowercases s and joins its letter and digit runs with dashes.
func slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			dash = false
			continue
		}
		dash = true
	}
	return b.String()
}
