// Package constants defines numerical limits used by the client.
package constants

// Limits and counts for various operations
const (
	// Similar movies shown under a movie detail
	DefaultSimilarLimit = 5
	MaxSimilarLimit     = 20

	// Outbound request throttling
	DefaultRateLimit = 10 // requests per second
	DefaultRateBurst = 5  // burst capacity

	// Catalog cache (moods and genres lists)
	CatalogCacheSize = 16

	// Top-billed cast members kept when the backend sends raw credits
	MaxActors = 4

	// Maximum bytes drained from an error response body
	MaxErrorBodyBytes = 4096
)
