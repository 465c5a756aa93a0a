package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tunegrab/tunegrab/internal/models"
	"github.com/tunegrab/tunegrab/internal/services/facade"
)

// BrowseHandler serves the discovery endpoints: homepage, trending charts,
// recommendations and category browsing.
type BrowseHandler struct {
	service facade.Service
}

func NewBrowseHandler(service facade.Service) *BrowseHandler {
	return &BrowseHandler{service: service}
}

// Homepage godoc
// @Summary Homepage feed
// @Description Trending music from the metadata provider's home feed plus the list of browsable categories.
// @Tags browse
// @Produce json
// @Param limit query int false "Maximum trending tracks (1-50)" default(20)
// @Success 200 {object} models.HomepageResponse
// @Failure 503 {object} map[string]interface{}
// @Router /homepage [get]
func (h *BrowseHandler) Homepage(c *gin.Context) {
	ctx := c.Request.Context()

	data, err := h.service.Homepage(ctx, limitQuery(c))
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, models.HomepageResponse{
		Success: true,
		Data:    data,
	})
}

// Trending godoc
// @Summary Trending playlists by country
// @Description Chart playlists for a 2-letter ISO country code from the supported set.
// @Tags browse
// @Produce json
// @Param country_code path string true "2-letter ISO country code, e.g. US, IN, GB"
// @Param limit query int false "Maximum playlists (1-50)" default(50)
// @Success 200 {object} models.TrendingResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /trending/{country_code} [get]
func (h *BrowseHandler) Trending(c *gin.Context) {
	ctx := c.Request.Context()

	country := c.Param("country_code")
	playlists, err := h.service.Trending(ctx, country, limitQuery(c))
	if err != nil {
		errorResponse(c, err)
		return
	}

	resp := models.TrendingResponse{
		Success:        true,
		Country:        models.NormalizeCountry(country),
		TotalPlaylists: len(playlists),
		Playlists:      playlists,
	}
	if len(playlists) == 0 {
		resp.Message = "No chart playlists available for this country right now"
	}
	c.JSON(http.StatusOK, resp)
}

// Recommended godoc
// @Summary Recommendations for a seed video
// @Description Tracks related to the given video according to the metadata provider.
// @Tags browse
// @Produce json
// @Param video_id path string true "Seed YouTube video ID"
// @Param limit query int false "Maximum tracks (1-50)" default(50)
// @Success 200 {object} models.RecommendedResponse
// @Failure 404 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /recommended/{video_id} [get]
func (h *BrowseHandler) Recommended(c *gin.Context) {
	ctx := c.Request.Context()

	videoID := c.Param("video_id")
	songs, err := h.service.Recommended(ctx, videoID, limitQuery(c))
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, models.RecommendedResponse{
		Success:         true,
		VideoID:         videoID,
		Recommendations: songs,
	})
}

// Category godoc
// @Summary Browse a music category
// @Description Songs for one of the fixed category keys (music, pop, rock, hip_hop, electronic, indie, classical, jazz, country, rnb).
// @Tags browse
// @Produce json
// @Param category path string true "Category key"
// @Param limit query int false "Maximum songs (1-50)" default(50)
// @Success 200 {object} models.CategoryResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /category/{category} [get]
func (h *BrowseHandler) Category(c *gin.Context) {
	ctx := c.Request.Context()

	category := c.Param("category")
	videos, err := h.service.Category(ctx, category, limitQuery(c))
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, models.CategoryResponse{
		Success:  true,
		Category: category,
		Videos:   videos,
	})
}
