package metadata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/amaumene/moviemood/internal/constants"
	"github.com/amaumene/moviemood/internal/models"
)

// PrimaryRecord is the catalog view of a movie. String fields are empty when
// the provider had no value; Poster is a path or an absolute URL.
type PrimaryRecord struct {
	Title      string
	Year       string
	Rated      string
	Runtime    string
	Director   string
	Actors     string
	Plot       string
	Poster     string
	Rating     *float64
	TMDBRating *float64
}

// SecondaryRecord is the ratings provider view of a movie.
type SecondaryRecord struct {
	Title    string
	Year     string
	Rated    string
	Runtime  string
	Director string
	Actors   string
	Plot     string
	Poster   string
	Ratings  []models.RatingEntry
}

// PrimaryFromPayload builds the primary record from the combined block,
// filling gaps from the raw TMDB block. It returns nil when both are absent.
func PrimaryFromPayload(payload models.MovieDetailPayload) *PrimaryRecord {
	c, t := payload.Combined, payload.TMDB
	if c == nil && t == nil {
		return nil
	}
	if c == nil {
		c = &models.CombinedRecord{}
	}
	if t == nil {
		t = &models.TMDBMovieDetails{}
	}

	p := &PrimaryRecord{
		Title:      firstNonEmpty(c.Title, t.Title, t.OriginalTitle),
		Year:       firstNonEmpty(c.Year, releaseYear(t.ReleaseDate)),
		Rated:      strings.TrimSpace(c.Rated),
		Runtime:    firstNonEmpty(c.Runtime, runtimeMinutes(t.Runtime)),
		Director:   firstNonEmpty(c.Director, strings.Join(t.Credits.Directors(), ", ")),
		Actors:     firstNonEmpty(c.Actors, strings.Join(t.Credits.TopCast(constants.MaxActors), ", ")),
		Plot:       firstNonEmpty(c.Plot, t.Overview),
		Poster:     firstNonEmpty(c.Poster, t.PosterPath),
		Rating:     parseScore(c.IMDbRating),
		TMDBRating: c.TMDBRating,
	}
	if p.TMDBRating == nil {
		p.TMDBRating = t.VoteAverage
	}
	return p
}

// SecondaryFromPayload returns nil when the ratings provider did not answer.
func SecondaryFromPayload(payload models.MovieDetailPayload) *SecondaryRecord {
	o := payload.OMDB
	if o == nil {
		return nil
	}
	return &SecondaryRecord{
		Title:    clean(o.Title),
		Year:     clean(o.Year),
		Rated:    clean(o.Rated),
		Runtime:  clean(o.Runtime),
		Director: clean(o.Director),
		Actors:   clean(o.Actors),
		Plot:     clean(o.Plot),
		Poster:   clean(o.Poster),
		Ratings:  o.Ratings,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = clean(v); v != "" {
			return v
		}
	}
	return ""
}

// clean trims v and maps the provider's "N/A" marker to empty.
func clean(v string) string {
	v = strings.TrimSpace(v)
	if v == constants.NotAvailable {
		return ""
	}
	return v
}

func releaseYear(date string) string {
	date = strings.TrimSpace(date)
	if len(date) < 4 {
		return ""
	}
	if _, err := strconv.Atoi(date[:4]); err != nil {
		return ""
	}
	return date[:4]
}

func runtimeMinutes(minutes int) string {
	if minutes <= 0 {
		return ""
	}
	return fmt.Sprintf("%d min", minutes)
}

// parseScore accepts "7.5" as well as "7.5/10".
func parseScore(v string) *float64 {
	v = clean(v)
	v = strings.TrimSuffix(v, "/10")
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return nil
	}
	return &f
}
