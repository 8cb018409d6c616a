// Package handlers implements the HTTP remote control surface. Every route
// drives the selection controller; rendering stays asynchronous, so accepted
// selections answer 202 and clients poll /api/view.
package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/amaumene/moviemood/internal/controller"
	"github.com/amaumene/moviemood/internal/middleware"
	"github.com/amaumene/moviemood/internal/view"
	"github.com/amaumene/moviemood/pkg/logger"
)

// Selector is the controller surface the routes call.
type Selector interface {
	Select(sel controller.Selection)
	SelectFromQuery(query string) bool
	Activate(triggerID string) error
	OpenDetail(id int) error
	CloseDetail()
	Active() controller.Selection
	Triggers() []controller.Trigger
}

// FrameSource exposes the latest rendered state.
type FrameSource interface {
	Current() view.Frame
}

// Handler handles HTTP requests for the remote control surface.
type Handler struct {
	selector Selector
	frames   FrameSource
	logger   logger.Logger
}

// New creates a new Handler.
func New(selector Selector, frames FrameSource, log logger.Logger) *Handler {
	return &Handler{
		selector: selector,
		frames:   frames,
		logger:   log,
	}
}

// NewRouter returns a gin engine with the middleware stack and all routes.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.CORS(), middleware.Logger(h.logger))
	h.RegisterRoutes(r)
	return r
}

// RegisterRoutes registers all HTTP routes.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.handleHealth)

	api := r.Group("/api")
	api.GET("/triggers", h.handleTriggers)
	api.GET("/view", h.handleView)
	api.POST("/search", h.handleSearch)
	api.POST("/select/:trigger", h.handleSelect)
	api.POST("/clear", h.handleClear)
	api.POST("/detail/:id", h.handleOpenDetail)
	api.DELETE("/detail", h.handleCloseDetail)
}

func (h *Handler) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) handleTriggers(c *gin.Context) {
	triggers := h.selector.Triggers()
	out := make([]gin.H, 0, len(triggers))
	for _, t := range triggers {
		out = append(out, gin.H{"id": t.ID, "label": t.Label})
	}
	c.JSON(http.StatusOK, gin.H{"triggers": out})
}

func (h *Handler) handleView(c *gin.Context) {
	c.JSON(http.StatusOK, h.frames.Current())
}

func (h *Handler) handleSearch(c *gin.Context) {
	query := c.Query("q")
	if !h.selector.SelectFromQuery(query) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query must not be blank"})
		return
	}
	h.accepted(c)
}

func (h *Handler) handleSelect(c *gin.Context) {
	trigger := c.Param("trigger")
	if err := h.selector.Activate(trigger); err != nil {
		if errors.Is(err, controller.ErrUnknownTrigger) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logger.Errorf("[HTTP] failed to activate %s: %v", trigger, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	h.accepted(c)
}

func (h *Handler) handleClear(c *gin.Context) {
	h.selector.Select(controller.None())
	h.accepted(c)
}

func (h *Handler) handleOpenDetail(c *gin.Context) {
	id, err := strconv.Atoi(strings.TrimSpace(c.Param("id")))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "movie id must be a number"})
		return
	}

	switch err := h.selector.OpenDetail(id); {
	case errors.Is(err, controller.ErrInvalidMovieID):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, controller.ErrClosed):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusAccepted, gin.H{"movie_id": id})
	}
}

func (h *Handler) handleCloseDetail(c *gin.Context) {
	h.selector.CloseDetail()
	c.Status(http.StatusNoContent)
}

func (h *Handler) accepted(c *gin.Context) {
	c.JSON(http.StatusAccepted, gin.H{"active": h.selector.Active()})
}
