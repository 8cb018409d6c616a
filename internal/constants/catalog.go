package constants

import (
	"strings"

	"golang.org/x/text/cases"
)

// DefaultMoods lists the mood identifiers the backend maps to genre sets.
// Used when the backend catalog cannot be fetched.
var DefaultMoods = []string{
	"happy",
	"sad",
	"excited",
	"romantic",
	"scared",
	"thoughtful",
	"adventurous",
	"relaxed",
	"mysterious",
	"inspired",
}

// DefaultGenres lists the genre names the backend resolves to TMDB genre IDs.
var DefaultGenres = []string{
	"Action",
	"Adventure",
	"Animation",
	"Comedy",
	"Crime",
	"Documentary",
	"Drama",
	"Family",
	"Fantasy",
	"History",
	"Horror",
	"Music",
	"Mystery",
	"Romance",
	"Science Fiction",
	"TV Movie",
	"Thriller",
	"War",
	"Western",
}

// Lookup returns the entry of names matching name case-insensitively.
func Lookup(names []string, name string) (string, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", false
	}
	fold := cases.Fold()
	want := fold.String(name)
	for _, candidate := range names {
		if fold.String(candidate) == want {
			return candidate, true
		}
	}
	return "", false
}
