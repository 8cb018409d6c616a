package models

// MovieDetailPayload is the merged detail record served by /api/movie/<id>.
// Combined is absent when neither provider answered; OMDB is absent when the
// secondary lookup failed.
type MovieDetailPayload struct {
	Combined *CombinedRecord   `json:"combined"`
	TMDB     *TMDBMovieDetails `json:"tmdb"`
	OMDB     *OMDBRecord       `json:"omdb"`
}

// CombinedRecord holds the fields the backend already lifted out of both providers.
type CombinedRecord struct {
	Title      string        `json:"title"`
	Year       string        `json:"year"`
	Rated      string        `json:"rated"`
	Runtime    string        `json:"runtime"`
	Director   string        `json:"director"`
	Actors     string        `json:"actors"`
	Plot       string        `json:"plot"`
	Poster     string        `json:"poster"`
	IMDbRating string        `json:"imdb_rating"`
	TMDBRating *float64      `json:"tmdb_rating"`
	Ratings    []RatingEntry `json:"ratings"`
}

type TMDBGenre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type TMDBMovieDetails struct {
	ID            int         `json:"id"`
	IMDBId        string      `json:"imdb_id"`
	Title         string      `json:"title"`
	OriginalTitle string      `json:"original_title"`
	Overview      string      `json:"overview"`
	PosterPath    string      `json:"poster_path"`
	ReleaseDate   string      `json:"release_date"`
	Runtime       int         `json:"runtime"`
	VoteAverage   *float64    `json:"vote_average"`
	Genres        []TMDBGenre `json:"genres"`
	Credits       Credits     `json:"credits"`
}

// OMDBRecord is the raw secondary provider record.
type OMDBRecord struct {
	Title      string        `json:"Title"`
	Year       string        `json:"Year"`
	Rated      string        `json:"Rated"`
	Runtime    string        `json:"Runtime"`
	Director   string        `json:"Director"`
	Actors     string        `json:"Actors"`
	Plot       string        `json:"Plot"`
	Poster     string        `json:"Poster"`
	IMDbRating string        `json:"imdbRating"`
	IMDbID     string        `json:"imdbID"`
	Ratings    []RatingEntry `json:"Ratings"`
}

// RatingEntry is one named rating, e.g. {"Rotten Tomatoes", "92%"}.
type RatingEntry struct {
	Source string `json:"Source"`
	Value  string `json:"Value"`
}
