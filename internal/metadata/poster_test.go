package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amaumene/moviemood/internal/constants"
)

func TestPosterURL(t *testing.T) {
	p := DefaultPosters()

	assert.Equal(t, "https://image.tmdb.org/t/p/w500/abc.jpg", p.URL("/abc.jpg", PosterGrid))
	assert.Equal(t, "https://image.tmdb.org/t/p/w200/abc.jpg", p.URL("/abc.jpg", PosterSimilar))
	assert.Equal(t, "https://image.tmdb.org/t/p/w500/abc.jpg", p.URL("abc.jpg", PosterDetail))
}

func TestPosterPlaceholders(t *testing.T) {
	p := DefaultPosters()

	assert.Equal(t, constants.GridPosterPlaceholder, p.URL("", PosterGrid))
	assert.Equal(t, constants.SimilarPosterPlaceholder, p.URL("  ", PosterSimilar))
	assert.Equal(t, constants.DetailPosterPlaceholder, p.URL("N/A", PosterDetail))
	assert.Equal(t, constants.GridPosterPlaceholder, p.URLPtr(nil, PosterGrid))
}

func TestPosterAbsoluteURLPassesThrough(t *testing.T) {
	p := DefaultPosters()
	url := "https://image.tmdb.org/t/p/w500/full.jpg"
	assert.Equal(t, url, p.URL(url, PosterSimilar))
}

func TestPosterCustomBase(t *testing.T) {
	p := Posters{BaseURL: "http://cdn.local/img", GridSize: "w342"}
	assert.Equal(t, "http://cdn.local/img/w342/x.jpg", p.URL("/x.jpg", PosterGrid))
	assert.Equal(t, "http://cdn.local/img/w200/x.jpg", p.URL("/x.jpg", PosterSimilar))
}
