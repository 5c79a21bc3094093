package api

import (
	"net/http"

	"github.com/NYTimes/gziphandler"
	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"solar-panel-backend/config"
	"solar-panel-backend/internal/mw"
	"solar-panel-backend/internal/registry"
	"solar-panel-backend/internal/sampler"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(cfg *config.Config, reg *registry.Registry, s sampler.Sampler, logger zerolog.Logger) *gin.Engine {
	handler := NewHandler(reg, s, ListingMessage(cfg.Sampler.Strategy))
	return newRouter(cfg, handler, logger)
}

// NewHTTPHandler returns the router wrapped with response compression when server.gzip is on.
func NewHTTPHandler(cfg *config.Config, reg *registry.Registry, s sampler.Sampler, logger zerolog.Logger) http.Handler {
	var h http.Handler = NewRouter(cfg, reg, s, logger)
	if cfg.Server.GzipEnabled() {
		h = gziphandler.GzipHandler(h)
	}
	return h
}

func newRouter(cfg *config.Config, handler *Handler, logger zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), mw.RequestID(), mw.AccessLog(logger))

	r.GET("/healthz", handler.Health)

	// The listing never changes after startup; readings are random and must not be cached.
	cacheStore := cache.New(cfg.Server.CacheTTL, 2*cfg.Server.CacheTTL)
	caching := mw.Cache(cacheStore, cfg.Server.CacheTTL)

	api := r.Group("/")
	api.Use(mw.RateLimiter(rate.Limit(cfg.Server.RateLimitPerSec), cfg.Server.RateLimitBurst))
	{
		// GET /
		api.GET("/", caching, handler.ListPanels)

		// GET /panel/{id}
		api.GET("/panel/:id", handler.GetPanelByID)

		// GET /panel/code/{code}
		api.GET("/panel/code/:code", handler.GetPanelByCode)

		// GET /{code}
		if cfg.Routes.BareCodeLookup {
			api.GET("/:code", handler.GetPanelByCode)
		}
	}

	r.NoRoute(handler.NotFound)
	return r
}
