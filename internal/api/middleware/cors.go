package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/tunegrab/tunegrab/internal/config"
)

// CORSMiddleware builds the CORS policy from the loaded profile. A nil
// handler is returned when CORS is disabled so the router can skip it.
func CORSMiddleware(cfg *config.CORSConfig) gin.HandlerFunc {
	if !cfg.Enabled {
		return nil
	}

	corsCfg := cors.Config{
		AllowMethods:     cfg.AllowedMethods,
		AllowHeaders:     cfg.AllowedHeaders,
		ExposeHeaders:    cfg.ExposedHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           time.Duration(cfg.MaxAge) * time.Second,
	}

	// An empty origins list with the production profile means no
	// cross-origin callers: no CORS headers are emitted at all.
	// Everywhere else a wildcard keeps local development friction-free.
	if len(cfg.AllowedOrigins) == 0 {
		if cfg.Profile == "production" {
			return nil
		}
		corsCfg.AllowAllOrigins = true
		// Credentials cannot be combined with a wildcard origin.
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}

	return cors.New(corsCfg)
}
