// Package models defines the payloads exchanged with the recommendation backend.
package models

// MovieSummary is one entry of a list-returning endpoint.
type MovieSummary struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Overview    string   `json:"overview"`
	PosterPath  *string  `json:"poster_path"`
	VoteAverage *float64 `json:"vote_average"`
	ReleaseDate string   `json:"release_date,omitempty"`
}

// ResultsResponse is returned by search, trending, popular and top-rated.
type ResultsResponse struct {
	Page    int             `json:"page,omitempty"`
	Results *[]MovieSummary `json:"results"`
}

// MoodResponse is returned by the mood endpoint. Unknown moods are answered
// with the popular list, which carries Results instead of Movies.
type MoodResponse struct {
	Mood    string          `json:"mood"`
	Genres  []string        `json:"genres"`
	Movies  *[]MovieSummary `json:"movies"`
	Results *[]MovieSummary `json:"results"`
}

type GenreResponse struct {
	Genre  string          `json:"genre"`
	Movies *[]MovieSummary `json:"movies"`
}

type SimilarResponse struct {
	MovieID       int             `json:"movie_id"`
	SimilarMovies *[]MovieSummary `json:"similar_movies"`
}

type MoodsResponse struct {
	Moods *[]string `json:"moods"`
}

type GenresResponse struct {
	Genres *[]string `json:"genres"`
}
