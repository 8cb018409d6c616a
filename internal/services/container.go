// Package services provides the backend clients used by the application.
package services

import (
	"context"

	"github.com/amaumene/moviemood/internal/cache"
	"github.com/amaumene/moviemood/internal/models"
	"github.com/amaumene/moviemood/pkg/logger"
)

// Container holds all application services for dependency injection.
type Container struct {
	Recommendation RecommendationService
	Cache          *cache.LRUCache[[]string]
	Logger         logger.Logger
}

// RecommendationService defines the backend operations. Each returns
// ok == false on any failure.
type RecommendationService interface {
	Search(ctx context.Context, query string) ([]models.MovieSummary, bool)
	RecommendByMood(ctx context.Context, mood string) ([]models.MovieSummary, bool)
	RecommendByGenre(ctx context.Context, genre string) ([]models.MovieSummary, bool)
	Trending(ctx context.Context) ([]models.MovieSummary, bool)
	Popular(ctx context.Context) ([]models.MovieSummary, bool)
	TopRated(ctx context.Context) ([]models.MovieSummary, bool)
	MovieDetail(ctx context.Context, id int) (models.MovieDetailPayload, bool)
	SimilarMovies(ctx context.Context, id, limit int) ([]models.MovieSummary, bool)
	Moods(ctx context.Context) ([]string, bool)
	Genres(ctx context.Context) ([]string, bool)
}

var _ RecommendationService = (*Recommendation)(nil)
