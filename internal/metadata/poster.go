package metadata

import (
	"strings"

	"github.com/amaumene/moviemood/internal/constants"
)

// PosterContext selects the image size and placeholder for a poster.
type PosterContext int

const (
	PosterGrid PosterContext = iota
	PosterSimilar
	PosterDetail
)

// Posters builds image URLs from provider poster paths.
type Posters struct {
	BaseURL            string
	GridSize           string
	SimilarSize        string
	DetailSize         string
	GridPlaceholder    string
	SimilarPlaceholder string
	DetailPlaceholder  string
}

// DefaultPosters returns the TMDB image CDN settings.
func DefaultPosters() Posters {
	return Posters{
		BaseURL:            constants.DefaultImageBaseURL,
		GridSize:           constants.GridPosterSize,
		SimilarSize:        constants.SimilarPosterSize,
		DetailSize:         constants.DetailPosterSize,
		GridPlaceholder:    constants.GridPosterPlaceholder,
		SimilarPlaceholder: constants.SimilarPosterPlaceholder,
		DetailPlaceholder:  constants.DetailPosterPlaceholder,
	}
}

// URL returns base + size + path, the context placeholder when path is
// blank, or path unchanged when it is already absolute.
func (p Posters) URL(path string, ctx PosterContext) string {
	path = strings.TrimSpace(path)
	size, placeholder := p.forContext(ctx)
	if path == "" || path == constants.NotAvailable {
		return placeholder
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}

	base := p.BaseURL
	if base == "" {
		base = constants.DefaultImageBaseURL
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + size + path
}

// URLPtr is URL for an optional path.
func (p Posters) URLPtr(path *string, ctx PosterContext) string {
	if path == nil {
		return p.URL("", ctx)
	}
	return p.URL(*path, ctx)
}

func (p Posters) forContext(ctx PosterContext) (size, placeholder string) {
	switch ctx {
	case PosterSimilar:
		return orDefault(p.SimilarSize, constants.SimilarPosterSize),
			orDefault(p.SimilarPlaceholder, constants.SimilarPosterPlaceholder)
	case PosterDetail:
		return orDefault(p.DetailSize, constants.DetailPosterSize),
			orDefault(p.DetailPlaceholder, constants.DetailPosterPlaceholder)
	default:
		return orDefault(p.GridSize, constants.GridPosterSize),
			orDefault(p.GridPlaceholder, constants.GridPosterPlaceholder)
	}
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
