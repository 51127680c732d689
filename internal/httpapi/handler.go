// Package httpapi implements the optional HTTP surface over the core
// solver: a gin router exposing /v1/solve plus health, metrics, and
// run-history endpoints.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/eduplan/timetable-engine/internal/driver"
	"github.com/eduplan/timetable-engine/internal/dto"
	"github.com/eduplan/timetable-engine/internal/repository"
	"github.com/eduplan/timetable-engine/pkg/cache"
	appErrors "github.com/eduplan/timetable-engine/pkg/errors"
	"github.com/eduplan/timetable-engine/pkg/logger"
	"github.com/eduplan/timetable-engine/pkg/response"
)

// Handler wires the solver driver, solution cache, and run repository to
// HTTP endpoints.
type Handler struct {
	driver      *driver.Driver
	cache       *cache.SolutionCache
	runs        *repository.RunRepository
	logger      *zap.Logger
	solveTimeout time.Duration
}

// NewHandler builds a Handler. cache and runs may be nil: a nil cache
// disables memoization, a nil run repository disables history recording.
func NewHandler(d *driver.Driver, solutionCache *cache.SolutionCache, runs *repository.RunRepository, l *zap.Logger, solveTimeout time.Duration) *Handler {
	return &Handler{driver: d, cache: solutionCache, runs: runs, logger: logger.NopIfNil(l), solveTimeout: solveTimeout}
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	response.JSON(c, http.StatusOK, gin.H{"status": "ok"}, nil)
}

// Solve handles POST /v1/solve: parse, solve, respond with the solution
// document. The endpoint never returns a 4xx/5xx for infeasible or
// timed-out runs — those are normal terminations carried in the body.
func (h *Handler) Solve(c *gin.Context) {
	var doc dto.InputDocument
	if err := c.ShouldBindJSON(&doc); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrInputMalformed, err.Error()))
		return
	}

	fingerprint, fpErr := driver.Fingerprint(&doc)
	if fpErr == nil && h.cache != nil {
		var cached dto.SolutionDocument
		if hit, err := h.cache.Get(c.Request.Context(), fingerprint, &cached); err != nil {
			h.logger.Warn("solution cache get failed", zap.Error(err))
		} else if hit {
			cached.Meta.Cached = true
			response.JSON(c, http.StatusOK, cached, nil)
			return
		}
	}

	result, err := h.driver.Solve(&doc, h.solveTimeout)
	if err != nil {
		response.Error(c, err)
		return
	}
	result.Meta.Fingerprint = fingerprint

	if h.cache != nil && fpErr == nil && result.Meta.Status == "success" {
		if err := h.cache.Set(c.Request.Context(), fingerprint, result); err != nil {
			h.logger.Warn("solution cache set failed", zap.Error(err))
		}
	}
	if h.runs != nil {
		go h.recordRun(fingerprint, result)
	}

	response.JSON(c, http.StatusOK, result, nil)
}

func (h *Handler) recordRun(fingerprint string, doc *dto.SolutionDocument) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := h.runs.Save(ctx, fingerprint, doc); err != nil {
		h.logger.Warn("failed to record solve run", zap.Error(err))
	}
}

// ListRuns handles GET /v1/runs.
func (h *Handler) ListRuns(c *gin.Context) {
	if h.runs == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "run history is not configured"))
		return
	}
	runs, err := h.runs.List(c.Request.Context(), 50)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, runs, nil)
}

// GetRun handles GET /v1/runs/:id.
func (h *Handler) GetRun(c *gin.Context) {
	if h.runs == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "run history is not configured"))
		return
	}
	run, err := h.runs.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if run == nil {
		response.Error(c, appErrors.ErrNotFound)
		return
	}
	response.JSON(c, http.StatusOK, run, nil)
}
