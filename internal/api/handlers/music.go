package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tunegrab/tunegrab/internal/models"
	"github.com/tunegrab/tunegrab/internal/services/facade"
	"github.com/tunegrab/tunegrab/internal/utils"
)

// MusicHandler serves the search, lookup and extraction endpoints.
type MusicHandler struct {
	service facade.Service
}

func NewMusicHandler(service facade.Service) *MusicHandler {
	return &MusicHandler{service: service}
}

// Search godoc
// @Summary Search for songs
// @Description Search for songs by free-text query. The primary metadata provider is tried first with a single fallback to the extraction provider.
// @Tags music
// @Produce json
// @Param q query string true "Search query"
// @Param limit query int false "Maximum results (1-50)" default(10)
// @Success 200 {object} models.SearchResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /search [get]
func (h *MusicHandler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	query := c.Query("q")
	limit := limitQuery(c)

	songs, err := h.service.Search(ctx, query, limit)
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, models.SearchResponse{
		Success:      true,
		Query:        query,
		ResultsCount: len(songs),
		Songs:        songs,
	})
}

// GetSong godoc
// @Summary Get a single song by video ID
// @Description Look up metadata for one video, falling back to the extraction provider when the primary cannot resolve it.
// @Tags music
// @Produce json
// @Param video_id path string true "YouTube video ID"
// @Success 200 {object} models.SongResponse
// @Failure 404 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /song/{video_id} [get]
func (h *MusicHandler) GetSong(c *gin.Context) {
	ctx := c.Request.Context()

	song, err := h.service.GetSong(ctx, c.Param("video_id"))
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, models.SongResponse{
		Success: true,
		Song:    song,
	})
}

// Extract godoc
// @Summary Extract full song detail from a YouTube URL
// @Description Resolve metadata and a playable audio stream URL for a single YouTube or YouTube Music URL.
// @Tags music
// @Accept json
// @Produce json
// @Param request body models.ExtractRequest true "YouTube URL"
// @Success 200 {object} models.SongResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /extract [post]
func (h *MusicHandler) Extract(c *gin.Context) {
	ctx := c.Request.Context()

	var req models.ExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, utils.NewValidationError("Invalid request body", map[string]interface{}{
			"error": err.Error(),
		}))
		return
	}

	song, err := h.service.ExtractSong(ctx, req.URL)
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, models.SongResponse{
		Success: true,
		Song:    song,
	})
}

// ExtractPlaylist godoc
// @Summary Extract playlist entries
// @Description List and normalize the entries of a YouTube playlist URL.
// @Tags music
// @Accept json
// @Produce json
// @Param request body models.PlaylistRequest true "Playlist URL and optional limit"
// @Success 200 {object} models.PlaylistResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /playlist [post]
func (h *MusicHandler) ExtractPlaylist(c *gin.Context) {
	ctx := c.Request.Context()

	var req models.PlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, utils.NewValidationError("Invalid request body", map[string]interface{}{
			"error": err.Error(),
		}))
		return
	}

	playlist, err := h.service.ExtractPlaylist(ctx, req.URL, req.Limit)
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, models.PlaylistResponse{
		Success:  true,
		Playlist: playlist,
	})
}

// GetAudioURL godoc
// @Summary Resolve a direct audio stream URL
// @Description Resolve a time-limited direct audio URL for a video. URLs expire upstream and are never cached.
// @Tags music
// @Produce json
// @Param video_id path string true "YouTube video ID"
// @Success 200 {object} models.AudioResponse
// @Failure 404 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /audio/{video_id} [get]
func (h *MusicHandler) GetAudioURL(c *gin.Context) {
	ctx := c.Request.Context()

	videoID := c.Param("video_id")
	audioURL, err := h.service.ResolveAudioURL(ctx, videoID)
	if err != nil {
		errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, models.AudioResponse{
		Success:  true,
		VideoID:  videoID,
		AudioURL: audioURL,
		Message:  "Audio URL expires after some time, use it soon",
	})
}
