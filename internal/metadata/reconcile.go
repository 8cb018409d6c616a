// Package metadata merges provider records into display-ready movie details
// and converts scores to star ratings. Nothing here performs I/O.
package metadata

import (
	"fmt"

	"github.com/amaumene/moviemood/internal/constants"
	"github.com/amaumene/moviemood/internal/models"
)

// Ratings is the resolved rating pair shown in the detail view.
type Ratings struct {
	IMDb           string `json:"imdb"`
	RottenTomatoes string `json:"rotten_tomatoes"`
}

// Detail is a reconciled movie record. Every string field is set, "N/A"
// standing in for missing values.
type Detail struct {
	Title      string               `json:"title"`
	Year       string               `json:"year"`
	Rated      string               `json:"rated"`
	Runtime    string               `json:"runtime"`
	Director   string               `json:"director"`
	Actors     string               `json:"actors"`
	Plot       string               `json:"plot"`
	PosterURL  string               `json:"poster_url"`
	Ratings    Ratings              `json:"ratings"`
	TMDBRating string               `json:"tmdb_rating"`
	AllRatings []models.RatingEntry `json:"all_ratings,omitempty"`
	Stars      StarRating           `json:"stars"`
}

type Reconciler struct {
	posters Posters
}

func NewReconciler(posters Posters) *Reconciler {
	return &Reconciler{posters: posters}
}

// Posters returns the URL builder used for detail posters.
func (r *Reconciler) Posters() Posters {
	return r.posters
}

// Reconcile merges p and s. Either may be nil; the result is always complete.
func (r *Reconciler) Reconcile(p *PrimaryRecord, s *SecondaryRecord) Detail {
	if p == nil {
		p = &PrimaryRecord{}
	}

	d := Detail{
		Title:      orNA(p.Title),
		Year:       orNA(p.Year),
		Rated:      orNA(p.Rated),
		Runtime:    orNA(p.Runtime),
		Director:   orNA(p.Director),
		Actors:     orNA(p.Actors),
		Plot:       orNA(p.Plot),
		PosterURL:  r.posters.URL(p.Poster, PosterDetail),
		TMDBRating: outOfTen(p.TMDBRating),
		Stars:      ToStars(p.TMDBRating),
	}
	if d.Title == constants.NotAvailable {
		d.Title = constants.PlaceholderTitle
	}

	var entries []models.RatingEntry
	if s != nil {
		entries = s.Ratings
	}
	d.AllRatings = presentRatings(entries)

	if v, ok := ratingFrom(entries, constants.RatingSourceIMDb); ok {
		d.Ratings.IMDb = v
	} else {
		d.Ratings.IMDb = outOfTen(p.Rating)
	}
	if v, ok := ratingFrom(entries, constants.RatingSourceRottenTomatoes); ok {
		d.Ratings.RottenTomatoes = v
	} else {
		d.Ratings.RottenTomatoes = constants.NotAvailable
	}
	return d
}

// FromPayload reconciles a raw backend detail payload.
func (r *Reconciler) FromPayload(payload models.MovieDetailPayload) Detail {
	return r.Reconcile(PrimaryFromPayload(payload), SecondaryFromPayload(payload))
}

// ratingFrom returns the first non-blank value whose source matches exactly.
func ratingFrom(entries []models.RatingEntry, source string) (string, bool) {
	for _, e := range entries {
		if e.Source != source {
			continue
		}
		if v := clean(e.Value); v != "" {
			return v, true
		}
	}
	return "", false
}

func presentRatings(entries []models.RatingEntry) []models.RatingEntry {
	var out []models.RatingEntry
	for _, e := range entries {
		if clean(e.Source) != "" && clean(e.Value) != "" {
			out = append(out, e)
		}
	}
	return out
}

func outOfTen(score *float64) string {
	if score == nil {
		return constants.NotAvailable
	}
	return fmt.Sprintf("%.1f/10", *score)
}

func orNA(v string) string {
	if v = clean(v); v == "" {
		return constants.NotAvailable
	}
	return v
}
