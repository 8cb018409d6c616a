// Package constants defines timeout values used throughout the application.
package constants

import "time"

// Timeout constants for various operations
const (
	// Per-request timeout for backend calls
	RequestTimeout = 30 * time.Second

	// How long mood and genre catalogs stay cached
	CatalogCacheTTL = 6 * time.Hour

	// Catalog bootstrap at start-up
	BootstrapTimeout = 10 * time.Second

	// Graceful shutdown of the HTTP surface
	ShutdownTimeout = 10 * time.Second

	// HTTP surface header read timeout
	ReadHeaderTimeout = 5 * time.Second
)
