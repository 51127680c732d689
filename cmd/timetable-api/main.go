// @title Timetable Engine API
// @version 1.0.0
// @description Constraint-satisfaction weekly timetable solver
// @BasePath /
// @schemes http
package main

import (
	"fmt"
	"log"
	"net/http/pprof"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/eduplan/timetable-engine/api/swagger"
	"github.com/eduplan/timetable-engine/internal/driver"
	"github.com/eduplan/timetable-engine/internal/httpapi"
	"github.com/eduplan/timetable-engine/internal/httpapi/auth"
	"github.com/eduplan/timetable-engine/internal/repository"
	"github.com/eduplan/timetable-engine/pkg/cache"
	"github.com/eduplan/timetable-engine/pkg/config"
	"github.com/eduplan/timetable-engine/pkg/database"
	"github.com/eduplan/timetable-engine/pkg/logger"
	corsmiddleware "github.com/eduplan/timetable-engine/pkg/middleware/cors"
	reqidmiddleware "github.com/eduplan/timetable-engine/pkg/middleware/requestid"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	metrics := driver.NewMetrics()
	solver := driver.New(logr, metrics)

	var runs *repository.RunRepository
	if db, err := database.NewPostgres(cfg.Database); err != nil {
		logr.Sugar().Warnw("run history disabled: failed to connect to postgres", "error", err)
	} else {
		defer db.Close()
		runs = repository.NewRunRepository(db)
	}

	var solutionCache *cache.SolutionCache
	if cfg.Solver.CacheResults {
		if client, err := cache.NewRedis(cfg.Redis); err != nil {
			logr.Sugar().Warnw("solution cache disabled: failed to connect to redis", "error", err)
		} else {
			defer client.Close()
			solutionCache = cache.NewSolutionCache(client, cfg.Solver.CacheTTL)
		}
	}

	var issuer *auth.Issuer
	if cfg.JWT.Secret != "" {
		issuer = auth.NewIssuer(cfg.JWT.Secret, cfg.JWT.Expiration)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
		r.GET("/debug/pprof/*any", gin.WrapF(pprof.Index))
	}
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	httpapi.NewRouter(r, httpapi.RouterConfig{
		APIPrefix:    cfg.APIPrefix,
		Driver:       solver,
		Cache:        solutionCache,
		Runs:         runs,
		Issuer:       issuer,
		Logger:       logr,
		SolveTimeout: cfg.Solver.Timeout,
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("starting timetable engine API", "addr", addr)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server exited", "error", err)
	}
}
