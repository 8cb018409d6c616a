// Package constants defines application-wide constants and default values.
package constants

const (
	// Client metadata
	AppName    = "moviemood"
	AppVersion = "1.0.0"
	UserAgent  = AppName + "/" + AppVersion

	// Default configuration values
	DefaultBackendURL = "http://localhost:8000"
	DefaultLogLevel   = "info"
	DefaultConfigFile = "config.json"

	// Poster images
	DefaultImageBaseURL      = "https://image.tmdb.org/t/p/"
	GridPosterSize           = "w500"
	SimilarPosterSize        = "w200"
	DetailPosterSize         = "w500"
	GridPosterPlaceholder    = "https://via.placeholder.com/500x750?text=No+Poster"
	SimilarPosterPlaceholder = "https://via.placeholder.com/200x300?text=No+Poster"
	DetailPosterPlaceholder  = "https://via.placeholder.com/500x750?text=No+Poster"

	// Display placeholders
	NotAvailable     = "N/A"
	PlaceholderTitle = "Untitled"
	NoOverview       = "No overview available"

	// Rating sources as labelled by the secondary metadata provider
	RatingSourceIMDb           = "Internet Movie Database"
	RatingSourceRottenTomatoes = "Rotten Tomatoes"
	RatingSourceMetacritic     = "Metacritic"
)
