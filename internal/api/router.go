// Package api wires the HTTP handlers into a gin engine.
package api

import (
	"net/http"

	"sun-to-sort/internal/api/handlers"
	"sun-to-sort/internal/api/middleware"
	"sun-to-sort/internal/data"
	"sun-to-sort/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

// Options configures NewRouter.
type Options struct {
	Catalog   *data.Catalog
	PresetDir string
	CORS      cors.Options
	Logger    zerolog.Logger
	// Registry receives the estimation metrics and backs GET /metrics.
	// Nil disables both.
	Registry *prometheus.Registry
}

// NewRouter builds the engine with middleware and every route.
func NewRouter(opts Options) *gin.Engine {
	router := gin.New()
	router.Use(middleware.CORS(opts.CORS))
	router.Use(middleware.Logger(opts.Logger))
	router.Use(middleware.ErrorHandler(opts.Logger))

	var recorder *metrics.Recorder
	if opts.Registry != nil {
		recorder = metrics.NewRecorder()
		recorder.MustRegister(opts.Registry)
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{})))
	}

	estimateHandler := handlers.NewEstimateHandler(opts.Catalog, opts.PresetDir, recorder, opts.Logger)
	catalogHandler := handlers.NewCatalogHandler(opts.Catalog)
	presetHandler := handlers.NewPresetHandler(opts.PresetDir, opts.Logger)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	{
		v1.POST("/estimate", estimateHandler.Estimate)
		v1.POST("/estimate/compare", estimateHandler.Compare)
		v1.POST("/estimate/export", estimateHandler.Export)

		v1.GET("/waste-categories", catalogHandler.ListCategories)
		v1.GET("/presets", presetHandler.ListPresets)
		v1.GET("/demand-modes", handlers.ListDemandModes)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "NOT_FOUND", "message": "Not found"}})
	})

	return router
}
