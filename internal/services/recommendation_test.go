package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amaumene/moviemood/internal/cache"
	"github.com/amaumene/moviemood/pkg/httputil"
	"github.com/amaumene/moviemood/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeBackend struct {
	*httptest.Server
	hits     atomic.Int32
	lastPath atomic.Value
}

func newFakeBackend(t *testing.T, register func(r *gin.Engine)) *fakeBackend {
	t.Helper()
	fb := &fakeBackend{}
	r := gin.New()
	r.Use(func(c *gin.Context) {
		fb.hits.Add(1)
		fb.lastPath.Store(c.Request.URL.RequestURI())
		c.Next()
	})
	register(r)
	fb.Server = httptest.NewServer(r)
	t.Cleanup(fb.Close)
	return fb
}

func newClient(fb *fakeBackend) *Recommendation {
	return NewRecommendation(Options{
		BaseURL:    fb.URL,
		HTTPClient: httputil.NewHTTPClient(2*time.Second, "moviemood-test"),
		Logger:     logger.Discard(),
	})
}

func TestSearch(t *testing.T) {
	fb := newFakeBackend(t, func(r *gin.Engine) {
		r.GET("/api/search", func(c *gin.Context) {
			assert.Equal(t, "the matrix", c.Query("q"))
			assert.Equal(t, "application/json", c.GetHeader("Accept"))
			assert.NotEmpty(t, c.GetHeader(httputil.HeaderRequestID))
			assert.Equal(t, "moviemood-test", c.GetHeader("User-Agent"))
			c.JSON(http.StatusOK, gin.H{"results": []gin.H{
				{"id": 603, "title": "The Matrix", "overview": "x", "poster_path": "/m.jpg", "vote_average": 8.2},
			}})
		})
	})
	client := newClient(fb)

	movies, ok := client.Search(context.Background(), "  the matrix ")

	require.True(t, ok)
	require.Len(t, movies, 1)
	assert.Equal(t, 603, movies[0].ID)
	assert.Equal(t, "/api/search?q=the+matrix", fb.lastPath.Load())
}

func TestSearchBlankSendsNothing(t *testing.T) {
	fb := newFakeBackend(t, func(r *gin.Engine) {})
	client := newClient(fb)

	movies, ok := client.Search(context.Background(), "   ")

	assert.False(t, ok)
	assert.Nil(t, movies)
	assert.Equal(t, int32(0), fb.hits.Load())
}

func TestFailuresFoldIntoSentinel(t *testing.T) {
	fb := newFakeBackend(t, func(r *gin.Engine) {
		r.GET("/api/trending", func(c *gin.Context) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "boom"})
		})
		r.GET("/api/popular", func(c *gin.Context) {
			c.String(http.StatusOK, "{not json")
		})
		r.GET("/api/top-rated", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"error": "Failed to fetch"})
		})
	})
	client := newClient(fb)
	ctx := context.Background()

	_, ok := client.Trending(ctx)
	assert.False(t, ok, "5xx")
	_, ok = client.Popular(ctx)
	assert.False(t, ok, "malformed body")
	_, ok = client.TopRated(ctx)
	assert.False(t, ok, "missing results key")
}

func TestTransportFailure(t *testing.T) {
	fb := newFakeBackend(t, func(r *gin.Engine) {})
	client := newClient(fb)
	fb.Close()

	_, ok := client.Trending(context.Background())
	assert.False(t, ok)
}

func TestEmptyListIsSuccess(t *testing.T) {
	fb := newFakeBackend(t, func(r *gin.Engine) {
		r.GET("/api/trending", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"results": []gin.H{}})
		})
	})
	client := newClient(fb)

	movies, ok := client.Trending(context.Background())
	assert.True(t, ok)
	assert.NotNil(t, movies)
	assert.Empty(t, movies)
}

func TestRecommendByMood(t *testing.T) {
	fb := newFakeBackend(t, func(r *gin.Engine) {
		r.GET("/api/recommend/mood/:mood", func(c *gin.Context) {
			if c.Param("mood") == "happy" {
				c.JSON(http.StatusOK, gin.H{"mood": "happy", "genres": []string{"Comedy"}, "movies": []gin.H{{"id": 1, "title": "A"}}})
				return
			}
			c.JSON(http.StatusOK, gin.H{"results": []gin.H{{"id": 2, "title": "Fallback"}}})
		})
	})
	client := NewRecommendation(Options{
		BaseURL: fb.URL,
		Logger:  logger.Discard(),
		Moods:   []string{"happy", "sad"},
	})
	ctx := context.Background()

	movies, ok := client.RecommendByMood(ctx, "HAPPY")
	require.True(t, ok)
	assert.Equal(t, "A", movies[0].Title)
	assert.Equal(t, "/api/recommend/mood/happy", fb.lastPath.Load())

	movies, ok = client.RecommendByMood(ctx, "sad")
	require.True(t, ok)
	assert.Equal(t, "Fallback", movies[0].Title)

	hits := fb.hits.Load()
	_, ok = client.RecommendByMood(ctx, "bored")
	assert.False(t, ok)
	assert.Equal(t, hits, fb.hits.Load(), "unknown mood sends nothing")
}

func TestRecommendByGenreEscapesPath(t *testing.T) {
	fb := newFakeBackend(t, func(r *gin.Engine) {
		r.GET("/api/recommend/genre/:genre", func(c *gin.Context) {
			assert.Equal(t, "Science Fiction", c.Param("genre"))
			c.JSON(http.StatusOK, gin.H{"genre": "Science Fiction", "movies": []gin.H{{"id": 3, "title": "Alien"}}})
		})
	})
	client := newClient(fb)

	movies, ok := client.RecommendByGenre(context.Background(), "Science Fiction")
	require.True(t, ok)
	assert.Equal(t, "Alien", movies[0].Title)
	assert.Equal(t, "/api/recommend/genre/Science%20Fiction", fb.lastPath.Load())

	_, ok = client.RecommendByGenre(context.Background(), " ")
	assert.False(t, ok)
}

func TestMovieDetail(t *testing.T) {
	fb := newFakeBackend(t, func(r *gin.Engine) {
		r.GET("/api/movie/:id", func(c *gin.Context) {
			switch c.Param("id") {
			case "603":
				c.JSON(http.StatusOK, gin.H{
					"combined": gin.H{"title": "The Matrix", "imdb_rating": "8.7", "tmdb_rating": 8.2},
					"omdb":     gin.H{"Ratings": []gin.H{{"Source": "Rotten Tomatoes", "Value": "83%"}}},
				})
			case "404":
				c.JSON(http.StatusNotFound, gin.H{"error": "Movie not found"})
			default:
				c.JSON(http.StatusOK, gin.H{"omdb": nil})
			}
		})
	})
	client := newClient(fb)
	ctx := context.Background()

	payload, ok := client.MovieDetail(ctx, 603)
	require.True(t, ok)
	require.NotNil(t, payload.Combined)
	assert.Equal(t, "The Matrix", payload.Combined.Title)
	require.NotNil(t, payload.OMDB)
	assert.Equal(t, "83%", payload.OMDB.Ratings[0].Value)

	_, ok = client.MovieDetail(ctx, 404)
	assert.False(t, ok)
	_, ok = client.MovieDetail(ctx, 7)
	assert.False(t, ok, "no primary data")

	hits := fb.hits.Load()
	_, ok = client.MovieDetail(ctx, 0)
	assert.False(t, ok)
	assert.Equal(t, hits, fb.hits.Load())
}

func TestSimilarMovies(t *testing.T) {
	fb := newFakeBackend(t, func(r *gin.Engine) {
		r.GET("/api/recommend/similar/:id", func(c *gin.Context) {
			list := make([]gin.H, 8)
			for i := range list {
				list[i] = gin.H{"id": i + 1, "title": "Similar"}
			}
			c.JSON(http.StatusOK, gin.H{"movie_id": 603, "similar_movies": list})
		})
	})
	client := newClient(fb)
	ctx := context.Background()

	movies, ok := client.SimilarMovies(ctx, 603, 0)
	require.True(t, ok)
	assert.Len(t, movies, 5)
	assert.Equal(t, "/api/recommend/similar/603?limit=5", fb.lastPath.Load())

	movies, ok = client.SimilarMovies(ctx, 603, 3)
	require.True(t, ok)
	assert.Len(t, movies, 3)

	_, ok = client.SimilarMovies(ctx, -1, 3)
	assert.False(t, ok)
}

func TestCatalogsAreCached(t *testing.T) {
	fb := newFakeBackend(t, func(r *gin.Engine) {
		r.GET("/api/moods", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"moods": []string{"cozy", "happy"}})
		})
		r.GET("/api/genres", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"genres": []string{"Action"}})
		})
		r.GET("/api/recommend/mood/:mood", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"movies": []gin.H{}})
		})
	})
	client := NewRecommendation(Options{
		BaseURL: fb.URL,
		Logger:  logger.Discard(),
		Cache:   cache.New[[]string](4, time.Hour),
	})
	ctx := context.Background()

	_, ok := client.RecommendByMood(ctx, "cozy")
	assert.False(t, ok, "cozy is not a default mood")

	moods, ok := client.Moods(ctx)
	require.True(t, ok)
	assert.Equal(t, []string{"cozy", "happy"}, moods)

	hits := fb.hits.Load()
	_, ok = client.Moods(ctx)
	assert.True(t, ok)
	assert.Equal(t, hits, fb.hits.Load(), "second call served from cache")

	_, ok = client.RecommendByMood(ctx, "cozy")
	assert.True(t, ok, "fetched moods replace the known set")

	genres, ok := client.Genres(ctx)
	require.True(t, ok)
	assert.Equal(t, []string{"Action"}, genres)
}

type deniedLimiter struct{}

func (deniedLimiter) TakeToken() bool                { return false }
func (deniedLimiter) Wait(ctx context.Context) error { return context.DeadlineExceeded }

func TestRateLimiterFailureSendsNothing(t *testing.T) {
	fb := newFakeBackend(t, func(r *gin.Engine) {})
	client := NewRecommendation(Options{
		BaseURL:     fb.URL,
		Logger:      logger.Discard(),
		RateLimiter: deniedLimiter{},
	})

	_, ok := client.Popular(context.Background())
	assert.False(t, ok)
	assert.Equal(t, int32(0), fb.hits.Load())
}
