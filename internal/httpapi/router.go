package httpapi

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/eduplan/timetable-engine/internal/driver"
	"github.com/eduplan/timetable-engine/internal/httpapi/auth"
	"github.com/eduplan/timetable-engine/internal/repository"
	"github.com/eduplan/timetable-engine/pkg/cache"
)

// RouterConfig carries everything NewRouter needs to wire routes.
type RouterConfig struct {
	APIPrefix    string
	Driver       *driver.Driver
	Cache        *cache.SolutionCache
	Runs         *repository.RunRepository
	Issuer       *auth.Issuer
	Logger       *zap.Logger
	SolveTimeout time.Duration
}

// NewRouter builds the gin engine's route table. Global middleware
// (recovery, request id, CORS, structured logging) is attached by the
// caller in cmd/timetable-api, matching the division of concerns the
// ambient stack already establishes.
func NewRouter(r *gin.Engine, cfg RouterConfig) {
	h := NewHandler(cfg.Driver, cfg.Cache, cfg.Runs, cfg.Logger, cfg.SolveTimeout)
	exportHandler := NewExportHandler(cfg.Driver.Solve, cfg.SolveTimeout)

	r.GET("/health", h.Health)

	api := r.Group(cfg.APIPrefix)
	if cfg.Issuer != nil {
		api.Use(RequireToken(cfg.Issuer))
	}

	api.POST("/solve", h.Solve)
	api.POST("/solve/export.csv", exportHandler.CSV)
	api.POST("/solve/export.pdf", exportHandler.PDF)
	api.GET("/runs", h.ListRuns)
	api.GET("/runs/:id", h.GetRun)
}
