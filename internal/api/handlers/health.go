package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tunegrab/tunegrab/internal/services/facade"
)

const apiVersion = "1.0.0"

// HealthHandler serves the service index and the liveness, readiness and
// health probes.
type HealthHandler struct {
	service facade.Service
}

type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
}

func NewHealthHandler(service facade.Service) *HealthHandler {
	return &HealthHandler{service: service}
}

// Index godoc
// @Summary API index
// @Description Service name, version and the available endpoints.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *HealthHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "tunegrab",
		"version": apiVersion,
		"endpoints": gin.H{
			"search":      "/search?q={query}&limit={n}",
			"song":        "/song/{video_id}",
			"extract":     "POST /extract",
			"playlist":    "POST /playlist",
			"audio":       "/audio/{video_id}",
			"homepage":    "/homepage?limit={n}",
			"trending":    "/trending/{country_code}?limit={n}",
			"recommended": "/recommended/{video_id}?limit={n}",
			"category":    "/category/{category}?limit={n}",
			"health":      "/health",
			"docs":        "/swagger/index.html",
		},
	})
}

// Health godoc
// @Summary Health check endpoint
// @Description Check the health of the service and its upstream providers. The service keeps answering in degraded mode when the primary provider is down, so a degraded upstream still reports 200.
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx := c.Request.Context()

	services := h.service.Status(ctx)

	status := "healthy"
	for _, s := range services {
		if s != "OK" {
			status = "degraded"
			break
		}
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   apiVersion,
		Services:  services,
	})
}

// Readiness godoc
// @Summary Readiness check endpoint
// @Description Check if the service is ready to accept requests.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Success 503 {object} map[string]interface{}
// @Router /ready [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx := c.Request.Context()

	checks := h.service.Status(ctx)

	// The extraction provider runs in-process, so readiness only hinges
	// on being able to reach the metadata provider at least once.
	ready := checks["ytmusic_api"] == "OK" || checks["extractor"] == "OK"

	response := gin.H{
		"ready":     ready,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"checks":    checks,
	}

	if ready {
		c.JSON(http.StatusOK, response)
	} else {
		c.JSON(http.StatusServiceUnavailable, response)
	}
}

// Liveness godoc
// @Summary Liveness check endpoint
// @Description Check if the service is alive.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /live [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"alive":     true,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
