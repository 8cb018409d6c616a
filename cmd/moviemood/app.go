package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/amaumene/moviemood/internal/cache"
	"github.com/amaumene/moviemood/internal/config"
	"github.com/amaumene/moviemood/internal/constants"
	"github.com/amaumene/moviemood/internal/controller"
	"github.com/amaumene/moviemood/internal/handlers"
	"github.com/amaumene/moviemood/internal/metadata"
	"github.com/amaumene/moviemood/internal/services"
	"github.com/amaumene/moviemood/internal/view"
	"github.com/amaumene/moviemood/pkg/httputil"
	"github.com/amaumene/moviemood/pkg/logger"
	"github.com/amaumene/moviemood/pkg/ratelimiter"
)

const cacheCleanupInterval = time.Hour

type app struct {
	cfg      *config.Config
	log      logger.Logger
	services *services.Container
	snapshot *view.Snapshot
	ctrl     *controller.Controller
	server   *http.Server

	moods  []string
	genres []string
}

func newApp(ctx context.Context, cfg *config.Config, log logger.Logger, out io.Writer) *app {
	a := &app{cfg: cfg, log: log, snapshot: view.NewSnapshot()}
	a.initializeServices(ctx)
	a.bootstrapCatalogs(ctx)
	a.initializeController(out)
	return a
}

func (a *app) initializeServices(ctx context.Context) {
	catalogCache := cache.New[[]string](constants.CatalogCacheSize, a.cfg.CatalogCacheTTL.Std())
	catalogCache.StartCleanup(ctx, cacheCleanupInterval)

	client := services.NewRecommendation(services.Options{
		BaseURL:      a.cfg.BackendURL,
		HTTPClient:   httputil.NewHTTPClient(a.cfg.RequestTimeout.Std(), constants.UserAgent),
		RateLimiter:  ratelimiter.NewTokenBucket(a.cfg.RateBurst, a.cfg.RateLimit),
		Cache:        catalogCache,
		Logger:       a.log,
		SimilarLimit: a.cfg.SimilarLimit,
	})

	a.services = &services.Container{
		Recommendation: client,
		Cache:          catalogCache,
		Logger:         a.log,
	}
	a.log.Infof("[App] services initialized (backend %s)", a.cfg.BackendURL)
}

// bootstrapCatalogs fetches the mood and genre lists, keeping the built-in
// defaults for whichever fails.
func (a *app) bootstrapCatalogs(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, constants.BootstrapTimeout)
	defer cancel()

	a.moods, a.genres = constants.DefaultMoods, constants.DefaultGenres
	if moods, ok := a.services.Recommendation.Moods(ctx); ok && len(moods) > 0 {
		a.moods = moods
	} else {
		a.log.Warnf("[App] using built-in mood list")
	}
	if genres, ok := a.services.Recommendation.Genres(ctx); ok && len(genres) > 0 {
		a.genres = genres
	} else {
		a.log.Warnf("[App] using built-in genre list")
	}
}

func (a *app) initializeController(out io.Writer) {
	a.ctrl = controller.New(a.services.Recommendation, view.Multi{view.NewTerminal(out), a.snapshot}, controller.Options{
		Logger:       a.log,
		Reconciler:   metadata.NewReconciler(a.cfg.Posters()),
		SimilarLimit: a.cfg.SimilarLimit,
		Moods:        a.moods,
		Genres:       a.genres,
	})
}

func (a *app) startHTTP() {
	if a.cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	h := handlers.New(a.ctrl, a.snapshot, a.log)
	a.server = &http.Server{
		Addr:              a.cfg.HTTPAddr,
		Handler:           handlers.NewRouter(h),
		ReadHeaderTimeout: constants.ReadHeaderTimeout,
	}

	go func() {
		a.log.Infof("[App] starting HTTP server on %s", a.cfg.HTTPAddr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Errorf("[App] HTTP server failed: %v", err)
		}
	}()
}

func (a *app) shutdown() {
	if a.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
		defer cancel()
		if err := a.server.Shutdown(ctx); err != nil {
			a.log.Errorf("[App] failed to stop HTTP server: %v", err)
		}
	}
	a.ctrl.Close()
}
