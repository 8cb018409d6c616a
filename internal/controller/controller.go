// Package controller owns the active filter selection and the movie detail
// modal. It issues backend requests for each selection and renders only the
// completion of the most recent one.
package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/sourcegraph/conc"

	"github.com/amaumene/moviemood/internal/constants"
	"github.com/amaumene/moviemood/internal/metadata"
	"github.com/amaumene/moviemood/internal/models"
	"github.com/amaumene/moviemood/pkg/logger"
)

var (
	ErrUnknownTrigger = errors.New("unknown trigger")
	ErrInvalidMovieID = errors.New("invalid movie id")
	ErrClosed         = errors.New("controller closed")
)

//go:generate mockgen -destination=mock_recommender_test.go -package=controller . Recommender

// Recommender is the subset of the recommendation client the controller
// calls. Every method reports failure as ok == false.
type Recommender interface {
	Search(ctx context.Context, query string) ([]models.MovieSummary, bool)
	RecommendByMood(ctx context.Context, mood string) ([]models.MovieSummary, bool)
	RecommendByGenre(ctx context.Context, genre string) ([]models.MovieSummary, bool)
	Trending(ctx context.Context) ([]models.MovieSummary, bool)
	Popular(ctx context.Context) ([]models.MovieSummary, bool)
	TopRated(ctx context.Context) ([]models.MovieSummary, bool)
	MovieDetail(ctx context.Context, id int) (models.MovieDetailPayload, bool)
	SimilarMovies(ctx context.Context, id, limit int) ([]models.MovieSummary, bool)
}

// View renders controller state. Calls are serialized and made while the
// controller lock is held, so implementations must not call back into the
// controller.
type View interface {
	SetActive(sel Selection)
	ShowGrid(state GridState)
	ShowDetail(state DetailState)
}

type Options struct {
	Logger       logger.Logger
	Reconciler   *metadata.Reconciler
	SimilarLimit int
	Moods        []string
	Genres       []string
}

type Controller struct {
	client       Recommender
	view         View
	logger       logger.Logger
	reconciler   *metadata.Reconciler
	posters      metadata.Posters
	similarLimit int

	ctx    context.Context
	cancel context.CancelFunc
	wg     conc.WaitGroup

	triggers     []Trigger
	triggerIndex map[string]Selection

	mu        sync.Mutex
	closed    bool
	gen       uint64
	detailGen uint64
	active    Selection
	grid      GridState
	detail    DetailState
}

func New(client Recommender, view View, opts Options) *Controller {
	if opts.Logger == nil {
		opts.Logger = logger.New()
	}
	if opts.Reconciler == nil {
		opts.Reconciler = metadata.NewReconciler(metadata.DefaultPosters())
	}
	if opts.SimilarLimit <= 0 {
		opts.SimilarLimit = constants.DefaultSimilarLimit
	}
	if len(opts.Moods) == 0 {
		opts.Moods = constants.DefaultMoods
	}
	if len(opts.Genres) == 0 {
		opts.Genres = constants.DefaultGenres
	}

	ctx, cancel := context.WithCancel(context.Background())
	c := &Controller{
		client:       client,
		view:         view,
		logger:       opts.Logger,
		reconciler:   opts.Reconciler,
		posters:      opts.Reconciler.Posters(),
		similarLimit: opts.SimilarLimit,
		ctx:          ctx,
		cancel:       cancel,
		triggers:     Triggers(opts.Moods, opts.Genres),
		triggerIndex: make(map[string]Selection),
		active:       None(),
		grid:         GridState{Phase: PhaseIdle, Selection: None()},
		detail:       DetailState{Phase: DetailClosed},
	}
	for _, t := range c.triggers {
		c.triggerIndex[t.ID] = t.Selection
	}
	return c
}

// Select makes sel the only active selection, renders its loading state and
// starts its request. Selecting None clears the grid without a request.
func (c *Controller) Select(sel Selection) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	c.gen++
	gen := c.gen
	c.active = sel
	c.view.SetActive(sel)

	if sel.IsNone() {
		c.grid = GridState{Phase: PhaseIdle, Selection: sel}
		c.view.ShowGrid(c.grid)
		return
	}

	c.grid = GridState{Phase: PhaseLoading, Selection: sel, Heading: sel.Title()}
	c.view.ShowGrid(c.grid)
	c.logger.Debugf("[Controller] selected %s (generation %d)", sel, gen)

	c.wg.Go(func() {
		movies, ok := c.fetch(c.ctx, sel)
		c.completeGrid(gen, sel, movies, ok)
	})
}

// SelectFromQuery selects a search for the trimmed query. A blank query
// changes nothing and reports false.
func (c *Controller) SelectFromQuery(query string) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		return false
	}
	c.Select(Search(query))
	return true
}

// Activate selects the selection bound to triggerID.
func (c *Controller) Activate(triggerID string) error {
	sel, ok := c.triggerIndex[triggerID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTrigger, triggerID)
	}
	c.Select(sel)
	return nil
}

// OpenDetail shows the loading modal for id and fetches the movie detail and
// its similar movies concurrently. The active selection is not changed.
func (c *Controller) OpenDetail(id int) error {
	if id <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidMovieID, id)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}

	c.detailGen++
	gen := c.detailGen
	c.detail = DetailState{Phase: DetailLoading, MovieID: id}
	c.view.ShowDetail(c.detail)

	c.wg.Go(func() {
		c.loadDetail(gen, id)
	})
	return nil
}

// CloseDetail hides the modal. Detail requests still in flight are dropped
// when they complete.
func (c *Controller) CloseDetail() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.detailGen++
	c.detail = DetailState{Phase: DetailClosed}
	c.view.ShowDetail(c.detail)
}

func (c *Controller) Active() Selection {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

func (c *Controller) Grid() GridState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.grid
}

func (c *Controller) Detail() DetailState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.detail
}

// Triggers returns the trigger map in display order.
func (c *Controller) Triggers() []Trigger {
	out := make([]Trigger, len(c.triggers))
	copy(out, c.triggers)
	return out
}

// Wait blocks until every request started so far has settled.
func (c *Controller) Wait() {
	c.wg.Wait()
}

// Close cancels in-flight requests and waits for them. Later calls to Select
// and OpenDetail do nothing.
func (c *Controller) Close() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()

	c.cancel()
	c.wg.Wait()
}

func (c *Controller) fetch(ctx context.Context, sel Selection) ([]models.MovieSummary, bool) {
	switch sel.Kind {
	case KindSearch:
		return c.client.Search(ctx, sel.Value)
	case KindMood:
		return c.client.RecommendByMood(ctx, sel.Value)
	case KindGenre:
		return c.client.RecommendByGenre(ctx, sel.Value)
	case KindTrending:
		return c.client.Trending(ctx)
	case KindPopular:
		return c.client.Popular(ctx)
	case KindTopRated:
		return c.client.TopRated(ctx)
	default:
		return nil, false
	}
}

// completeGrid renders a finished request unless a newer selection has
// superseded it.
func (c *Controller) completeGrid(gen uint64, sel Selection, movies []models.MovieSummary, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || gen != c.gen {
		c.logger.Debugf("[Controller] dropping stale result for %s (generation %d, current %d)", sel, gen, c.gen)
		return
	}

	state := GridState{Selection: sel, Heading: sel.Title()}
	switch {
	case !ok:
		state.Phase = PhaseFailed
		state.Message = sel.FailureMessage()
	case len(movies) == 0:
		state.Phase = PhaseLoaded
		state.Message = EmptyMessage
	default:
		state.Phase = PhaseLoaded
		state.Cards = c.cards(movies, metadata.PosterGrid)
	}

	c.grid = state
	c.view.ShowGrid(state)
}

func (c *Controller) loadDetail(gen uint64, id int) {
	var (
		payload   models.MovieDetailPayload
		detailOK  bool
		similar   []models.MovieSummary
		similarOK bool
		wg        conc.WaitGroup
	)
	wg.Go(func() {
		payload, detailOK = c.client.MovieDetail(c.ctx, id)
	})
	wg.Go(func() {
		similar, similarOK = c.client.SimilarMovies(c.ctx, id, c.similarLimit)
	})
	wg.Wait()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || gen != c.detailGen {
		c.logger.Debugf("[Controller] dropping stale detail for movie %d", id)
		return
	}

	state := DetailState{MovieID: id}
	if !detailOK {
		state.Phase = DetailFailed
		state.Message = DetailFailedMessage
	} else {
		detail := c.reconciler.FromPayload(payload)
		state.Phase = DetailLoaded
		state.Detail = &detail
		if similarOK {
			state.Similar = c.cards(similar, metadata.PosterSimilar)
		}
	}

	c.detail = state
	c.view.ShowDetail(state)
}

func (c *Controller) cards(movies []models.MovieSummary, ctx metadata.PosterContext) []Card {
	cards := make([]Card, 0, len(movies))
	for _, m := range movies {
		card := Card{
			ID:        m.ID,
			Title:     strings.TrimSpace(m.Title),
			Overview:  strings.TrimSpace(m.Overview),
			PosterURL: c.posters.URLPtr(m.PosterPath, ctx),
			Rating:    constants.NotAvailable,
			Stars:     metadata.ToStars(m.VoteAverage),
		}
		if card.Title == "" {
			card.Title = constants.PlaceholderTitle
		}
		if card.Overview == "" {
			card.Overview = constants.NoOverview
		}
		if m.VoteAverage != nil && *m.VoteAverage > 0 {
			card.Rating = fmt.Sprintf("%.1f", *m.VoteAverage)
		}
		cards = append(cards, card)
	}
	return cards
}
