// Package handlers exposes the back-office state over HTTP.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gopalshiyal099-lang/Mahuva-property/internal/app"
	"github.com/gopalshiyal099-lang/Mahuva-property/internal/compose"
	"github.com/gopalshiyal099-lang/Mahuva-property/internal/models"
	"github.com/gopalshiyal099-lang/Mahuva-property/internal/ratelimit"
	"github.com/gopalshiyal099-lang/Mahuva-property/internal/scheduler"
	"github.com/gopalshiyal099-lang/Mahuva-property/internal/search"
)

// Searcher runs full-text property searches
type Searcher interface {
	FilterSearch(params search.FilterParams) ([]models.Property, error)
}

// Reporter runs the stats report on demand
type Reporter interface {
	RunNow() scheduler.Report
}

// Handler serves the dashboard API
type Handler struct {
	app      *app.App
	searcher Searcher
	limiter  *ratelimit.RateLimiter
	reporter Reporter
}

// Option configures a Handler
type Option func(*Handler)

// WithSearcher enables /api/search
func WithSearcher(s Searcher) Option {
	return func(h *Handler) { h.searcher = s }
}

// WithRateLimiter exposes the generation limiter's stats
func WithRateLimiter(rl *ratelimit.RateLimiter) Option {
	return func(h *Handler) { h.limiter = rl }
}

// WithReporter enables the manual report trigger
func WithReporter(r Reporter) Option {
	return func(h *Handler) { h.reporter = r }
}

func New(a *app.App, opts ...Option) *Handler {
	h := &Handler{app: a}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Register mounts every route on r
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/health", h.Health)

	api := r.Group("/api")
	{
		api.GET("/state", h.GetState)
		api.PUT("/view", h.SetView)

		api.GET("/dashboard", h.GetDashboard)
		api.GET("/dashboard/chart", h.GetDashboardChart)
		api.GET("/communications", h.GetCommunications)

		api.GET("/inventory", h.GetInventory)
		api.PUT("/inventory/search", h.SetInventorySearch)
		api.GET("/properties", h.GetProperties)
		api.GET("/properties/:id", h.GetProperty)
		api.POST("/property-dialog", h.OpenPropertyDialog)
		api.DELETE("/property-dialog", h.DismissPropertyDialog)
		api.GET("/search", h.SearchProperties)

		api.GET("/leads", h.GetLeads)
		api.PUT("/leads/search", h.SetLeadSearch)
		api.POST("/leads/:id/compose", h.OpenCompose)

		api.GET("/compose", h.GetCompose)
		api.DELETE("/compose", h.CancelCompose)
		api.PUT("/compose/draft", h.EditDraft)
		api.POST("/compose/generate", h.GenerateDraft)
		api.POST("/compose/send", h.SendCompose)

		api.GET("/messages", h.GetMessages)

		api.GET("/ratelimit/stats", h.GetRateLimitStats)
		api.POST("/admin/report/run", h.RunReport)
	}
}

// statusFor maps application errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, app.ErrLeadNotFound), errors.Is(err, compose.ErrNotOpen):
		return http.StatusNotFound
	case errors.Is(err, compose.ErrGenerationInFlight),
		errors.Is(err, compose.ErrEmptyDraft),
		errors.Is(err, compose.ErrAlreadySent),
		errors.Is(err, app.ErrStaleDraft):
		return http.StatusConflict
	}
	return http.StatusBadRequest
}

func abortWithError(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

func (h *Handler) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, h.app.State())
}
