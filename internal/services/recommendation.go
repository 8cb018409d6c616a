package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/amaumene/moviemood/internal/cache"
	"github.com/amaumene/moviemood/internal/constants"
	apperrors "github.com/amaumene/moviemood/internal/errors"
	"github.com/amaumene/moviemood/internal/models"
	"github.com/amaumene/moviemood/pkg/httputil"
	"github.com/amaumene/moviemood/pkg/logger"
	"github.com/amaumene/moviemood/pkg/ratelimiter"
)

const (
	cacheKeyMoods  = "catalog:moods"
	cacheKeyGenres = "catalog:genres"
)

// Options configures a Recommendation client. Zero values select defaults.
type Options struct {
	BaseURL      string
	HTTPClient   *http.Client
	RateLimiter  ratelimiter.RateLimiter
	Cache        *cache.LRUCache[[]string]
	Logger       logger.Logger
	SimilarLimit int
	Moods        []string
}

// Recommendation talks to the recommendation backend. Every operation sends
// at most one GET and reports failure as ok == false.
type Recommendation struct {
	baseURL      string
	httpClient   *http.Client
	rateLimiter  ratelimiter.RateLimiter
	cache        *cache.LRUCache[[]string]
	logger       logger.Logger
	similarLimit int

	mu    sync.RWMutex
	moods []string
}

func NewRecommendation(opts Options) *Recommendation {
	r := &Recommendation{
		baseURL:      strings.TrimRight(opts.BaseURL, "/"),
		httpClient:   opts.HTTPClient,
		rateLimiter:  opts.RateLimiter,
		cache:        opts.Cache,
		logger:       opts.Logger,
		similarLimit: opts.SimilarLimit,
		moods:        opts.Moods,
	}
	if r.baseURL == "" {
		r.baseURL = constants.DefaultBackendURL
	}
	if r.httpClient == nil {
		r.httpClient = httputil.NewHTTPClient(constants.RequestTimeout, constants.UserAgent)
	}
	if r.rateLimiter == nil {
		r.rateLimiter = ratelimiter.Unlimited{}
	}
	if r.cache == nil {
		r.cache = cache.New[[]string](constants.CatalogCacheSize, constants.CatalogCacheTTL)
	}
	if r.logger == nil {
		r.logger = logger.New()
	}
	if r.similarLimit <= 0 {
		r.similarLimit = constants.DefaultSimilarLimit
	}
	if len(r.moods) == 0 {
		r.moods = constants.DefaultMoods
	}
	return r
}

func (r *Recommendation) Search(ctx context.Context, query string) ([]models.MovieSummary, bool) {
	const op = "search"
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, r.fail(op, apperrors.NewInvalidInputError(op, "empty query"))
	}

	var resp models.ResultsResponse
	apiURL := fmt.Sprintf("%s/api/search?q=%s", r.baseURL, url.QueryEscape(query))
	if err := r.getJSON(ctx, op, apiURL, &resp); err != nil {
		return nil, r.fail(op, err)
	}
	return r.results(op, "results", resp.Results)
}

func (r *Recommendation) RecommendByMood(ctx context.Context, mood string) ([]models.MovieSummary, bool) {
	const op = "mood"
	known, ok := constants.Lookup(r.knownMoods(), mood)
	if !ok {
		return nil, r.fail(op, apperrors.NewInvalidInputError(op, fmt.Sprintf("unknown mood %q", mood)))
	}

	var resp models.MoodResponse
	apiURL := fmt.Sprintf("%s/api/recommend/mood/%s", r.baseURL, url.PathEscape(known))
	if err := r.getJSON(ctx, op, apiURL, &resp); err != nil {
		return nil, r.fail(op, err)
	}
	if resp.Movies == nil && resp.Results != nil {
		return r.results(op, "results", resp.Results)
	}
	return r.results(op, "movies", resp.Movies)
}

func (r *Recommendation) RecommendByGenre(ctx context.Context, genre string) ([]models.MovieSummary, bool) {
	const op = "genre"
	genre = strings.TrimSpace(genre)
	if genre == "" {
		return nil, r.fail(op, apperrors.NewInvalidInputError(op, "empty genre"))
	}

	var resp models.GenreResponse
	apiURL := fmt.Sprintf("%s/api/recommend/genre/%s", r.baseURL, url.PathEscape(genre))
	if err := r.getJSON(ctx, op, apiURL, &resp); err != nil {
		return nil, r.fail(op, err)
	}
	return r.results(op, "movies", resp.Movies)
}

func (r *Recommendation) Trending(ctx context.Context) ([]models.MovieSummary, bool) {
	return r.listing(ctx, "trending", "/api/trending")
}

func (r *Recommendation) Popular(ctx context.Context) ([]models.MovieSummary, bool) {
	return r.listing(ctx, "popular", "/api/popular")
}

func (r *Recommendation) TopRated(ctx context.Context) ([]models.MovieSummary, bool) {
	return r.listing(ctx, "top-rated", "/api/top-rated")
}

// MovieDetail returns the raw primary and secondary records for id. A payload
// with neither a combined nor a tmdb block is a failure.
func (r *Recommendation) MovieDetail(ctx context.Context, id int) (models.MovieDetailPayload, bool) {
	const op = "movie"
	if id <= 0 {
		return models.MovieDetailPayload{}, r.fail(op, apperrors.NewInvalidInputError(op, fmt.Sprintf("invalid movie id %d", id)))
	}

	var resp models.MovieDetailPayload
	apiURL := fmt.Sprintf("%s/api/movie/%d", r.baseURL, id)
	if err := r.getJSON(ctx, op, apiURL, &resp); err != nil {
		return models.MovieDetailPayload{}, r.fail(op, err)
	}
	if resp.Combined == nil && resp.TMDB == nil {
		return models.MovieDetailPayload{}, r.fail(op, apperrors.NewMissingFieldError(op, "combined"))
	}
	return resp, true
}

// SimilarMovies returns at most limit movies like id. limit <= 0 selects the
// configured default.
func (r *Recommendation) SimilarMovies(ctx context.Context, id, limit int) ([]models.MovieSummary, bool) {
	const op = "similar"
	if id <= 0 {
		return nil, r.fail(op, apperrors.NewInvalidInputError(op, fmt.Sprintf("invalid movie id %d", id)))
	}
	if limit <= 0 {
		limit = r.similarLimit
	}

	var resp models.SimilarResponse
	apiURL := fmt.Sprintf("%s/api/recommend/similar/%d?limit=%d", r.baseURL, id, limit)
	if err := r.getJSON(ctx, op, apiURL, &resp); err != nil {
		return nil, r.fail(op, err)
	}
	movies, ok := r.results(op, "similar_movies", resp.SimilarMovies)
	if ok && len(movies) > limit {
		movies = movies[:limit]
	}
	return movies, ok
}

// Moods returns the backend mood catalog. A successful fetch also replaces
// the set RecommendByMood validates against.
func (r *Recommendation) Moods(ctx context.Context) ([]string, bool) {
	moods, ok := r.catalog(ctx, "moods", cacheKeyMoods, "/api/moods", func(resp *catalogResponse) *[]string {
		return resp.Moods
	})
	if ok && len(moods) > 0 {
		r.mu.Lock()
		r.moods = moods
		r.mu.Unlock()
	}
	return moods, ok
}

// Genres returns the backend genre catalog.
func (r *Recommendation) Genres(ctx context.Context) ([]string, bool) {
	return r.catalog(ctx, "genres", cacheKeyGenres, "/api/genres", func(resp *catalogResponse) *[]string {
		return resp.Genres
	})
}

func (r *Recommendation) knownMoods() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.moods
}
