// SPDX-License-Identifier: MIT
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/armaan-choudhary/zola/constellation"
	"github.com/armaan-choudhary/zola/metrics"
	"github.com/armaan-choudhary/zola/sky"
)

// Version is reported by /health.
const Version = "0.3.0"

// Subscriber streams live events for one sky.
type Subscriber interface {
	Subscribe(ctx context.Context, slug string) (<-chan sky.Event, func() error, error)
}

// Pinger is an optional dependency health check.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handlers serves the HTTP API on top of a sky.Service.
type Handlers struct {
	svc    *sky.Service
	events Subscriber
	redis  Pinger
}

// HandlerOption configures Handlers.
type HandlerOption func(*Handlers)

// WithSubscriber enables GET /v1/skies/:slug/events.
func WithSubscriber(s Subscriber) HandlerOption {
	return func(h *Handlers) { h.events = s }
}

// WithHealthCheck reports p under "redis" in /health.
func WithHealthCheck(p Pinger) HandlerOption {
	return func(h *Handlers) { h.redis = p }
}

// NewHandlers creates the handler set.
func NewHandlers(svc *sky.Service, opts ...HandlerOption) *Handlers {
	h := &Handlers{svc: svc}
	for _, opt := range opts {
		opt(h)
	}

	return h
}

// HandleHealth handles GET /health.
func (h *Handlers) HandleHealth(c *gin.Context) {
	resp := HealthResponse{Status: "healthy", Version: Version}
	if h.redis != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()
		if err := h.redis.Ping(ctx); err != nil {
			resp.Status, resp.Redis = "degraded", err.Error()
		} else {
			resp.Redis = "ok"
		}
	}
	c.JSON(http.StatusOK, resp)
}

// HandleCreateSky handles POST /v1/skies.
func (h *Handlers) HandleCreateSky(c *gin.Context) {
	logger := slog.With("handler", "HandleCreateSky")

	var req sky.SkyInput
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("invalid request", "error", err)
		badRequest(c, err)
		return
	}
	sk, err := h.svc.CreateSky(c.Request.Context(), req)
	if err != nil {
		writeError(c, logger, err)
		return
	}
	c.JSON(http.StatusCreated, sk)
}

// HandleGetSky handles GET /v1/skies/:slug.
func (h *Handlers) HandleGetSky(c *gin.Context) {
	logger := slog.With("handler", "HandleGetSky")

	sk, err := h.svc.GetSky(c.Request.Context(), c.Param("slug"))
	if err != nil {
		writeError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, sk)
}

// HandleAddStar handles POST /v1/skies/:slug/stars.
func (h *Handlers) HandleAddStar(c *gin.Context) {
	logger := slog.With("handler", "HandleAddStar")

	var req sky.StarInput
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("invalid request", "error", err)
		badRequest(c, err)
		return
	}
	st, err := h.svc.AddStar(c.Request.Context(), c.Param("slug"), req)
	if err != nil {
		writeError(c, logger, err)
		return
	}
	c.JSON(http.StatusCreated, st)
}

// HandleConstellation handles GET /v1/skies/:slug/constellation?page=N.
func (h *Handlers) HandleConstellation(c *gin.Context) {
	logger := slog.With("handler", "HandleConstellation")

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		badRequest(c, err)
		return
	}
	view, err := h.svc.View(c.Request.Context(), c.Param("slug"), page)
	if err != nil {
		writeError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// HandleUniverse handles GET /v1/universe.
func (h *Handlers) HandleUniverse(c *gin.Context) {
	logger := slog.With("handler", "HandleUniverse")

	n, err := h.svc.Universe(c.Request.Context())
	if err != nil {
		writeError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, UniverseResponse{Stars: n})
}

// HandleBuild handles POST /v1/constellation: raw points in, lines out.
func (h *Handlers) HandleBuild(c *gin.Context) {
	logger := slog.With("handler", "HandleBuild")

	var req BuildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("invalid request", "error", err)
		badRequest(c, err)
		return
	}
	policy, err := req.Policy.Resolve()
	if err != nil {
		badRequest(c, err)
		return
	}

	start := time.Now()
	res, err := constellation.BuildDetailed(req.Points, policy)
	if err != nil {
		writeError(c, logger, err)
		return
	}
	metrics.ObserveBuild(policy.Label(), res.Repaired, time.Since(start))

	c.JSON(http.StatusOK, BuildResponse{
		Policy:   policy.Label(),
		Edges:    res.Edges,
		Greedy:   res.Greedy,
		Repaired: res.Repaired,
		Hub:      res.Hub,
		Length:   res.Length,
	})
}

// HandleEvents handles GET /v1/skies/:slug/events as a server-sent event
// stream of newly added stars.
func (h *Handlers) HandleEvents(c *gin.Context) {
	logger := slog.With("handler", "HandleEvents")

	if h.events == nil {
		c.JSON(http.StatusNotImplemented, ErrorResponse{Error: "live events are disabled", Code: CodeInternal})
		return
	}
	slug := c.Param("slug")
	ctx := c.Request.Context()
	if _, err := h.svc.GetSky(ctx, slug); err != nil {
		writeError(c, logger, err)
		return
	}

	events, closeSub, err := h.events.Subscribe(ctx, slug)
	if err != nil {
		writeError(c, logger, err)
		return
	}
	defer closeSub()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)
	c.Writer.Flush()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			c.SSEvent(ev.Type, ev.Star)
			c.Writer.Flush()
		}
	}
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: CodeInvalidRequest})
}

// writeError maps domain sentinels onto status codes.
func writeError(c *gin.Context, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, sky.ErrSkyNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error(), Code: CodeNotFound})
	case errors.Is(err, sky.ErrInvalidSky),
		errors.Is(err, sky.ErrInvalidStar),
		errors.Is(err, sky.ErrInvalidPage),
		errors.Is(err, constellation.ErrEmptyID),
		errors.Is(err, constellation.ErrDuplicateID),
		errors.Is(err, constellation.ErrNonFiniteCoordinate),
		errors.Is(err, constellation.ErrInvalidPolicy):
		badRequest(c, err)
	default:
		logger.Error("request failed", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error", Code: CodeInternal})
	}
}
