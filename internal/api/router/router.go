package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/tunegrab/tunegrab/internal/api/handlers"
	"github.com/tunegrab/tunegrab/internal/api/middleware"
	"github.com/tunegrab/tunegrab/internal/config"
)

type Router struct {
	engine *gin.Engine
	config *config.Config
}

func NewRouter(cfg *config.Config, musicHandler *handlers.MusicHandler, browseHandler *handlers.BrowseHandler, healthHandler *handlers.HealthHandler) *Router {
	if !cfg.Server.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.CorrelationIDMiddleware())
	if corsHandler := middleware.CORSMiddleware(&cfg.CORS); corsHandler != nil {
		engine.Use(corsHandler)
	}

	// Probes and the index stay outside the rate limit so orchestrators
	// cannot be throttled away from them.
	engine.GET("/", healthHandler.Index)
	engine.GET("/health", healthHandler.Health)
	engine.GET("/ready", healthHandler.Readiness)
	engine.GET("/live", healthHandler.Liveness)

	// Swagger documentation
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := engine.Group("/")
	api.Use(middleware.RateLimitMiddleware(&cfg.API))
	{
		api.GET("/search", musicHandler.Search)
		api.GET("/song/:video_id", musicHandler.GetSong)
		api.POST("/extract", musicHandler.Extract)
		api.POST("/playlist", musicHandler.ExtractPlaylist)
		api.GET("/audio/:video_id", musicHandler.GetAudioURL)

		api.GET("/homepage", browseHandler.Homepage)
		api.GET("/trending/:country_code", browseHandler.Trending)
		api.GET("/recommended/:video_id", browseHandler.Recommended)
		api.GET("/category/:category", browseHandler.Category)
	}

	return &Router{
		engine: engine,
		config: cfg,
	}
}

func (r *Router) Start() error {
	addr := r.config.Server.Host + ":" + r.config.Server.Port
	return r.engine.Run(addr)
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
