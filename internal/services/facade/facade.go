// Package facade normalizes the two upstream providers into the canonical
// record shapes and owns the fallback policy between them: the metadata
// provider is tried first, and for operations the extraction provider can
// also satisfy a single secondary attempt is made before a failure is
// surfaced.
package facade

import (
	"context"
	"strings"
	"time"

	"github.com/tunegrab/tunegrab/internal/config"
	"github.com/tunegrab/tunegrab/internal/models"
	"github.com/tunegrab/tunegrab/internal/services/extractor"
	"github.com/tunegrab/tunegrab/internal/services/ytmusic"
	"github.com/tunegrab/tunegrab/internal/utils"
)

// Endpoint-specific limit defaults.
const (
	DefaultHomepageLimit = 20
	DefaultBrowseLimit   = 50
)

// Service is the façade surface the HTTP handlers talk to.
type Service interface {
	Search(ctx context.Context, query string, limit int) ([]models.SongRecord, error)
	GetSong(ctx context.Context, videoID string) (*models.SongRecord, error)
	ExtractSong(ctx context.Context, url string) (*models.SongRecord, error)
	ExtractPlaylist(ctx context.Context, url string, limit int) (*models.PlaylistDetail, error)
	ResolveAudioURL(ctx context.Context, videoID string) (string, error)
	Homepage(ctx context.Context, limit int) (*models.HomepageData, error)
	Trending(ctx context.Context, country string, limit int) ([]models.PlaylistRecord, error)
	Recommended(ctx context.Context, videoID string, limit int) ([]models.SongRecord, error)
	Category(ctx context.Context, category string, limit int) ([]models.SongRecord, error)
	Status(ctx context.Context) map[string]string
}

// Facade wires the two providers together. It holds no per-request state;
// every record is built fresh from upstream responses.
type Facade struct {
	metadata ytmusic.MetadataClient
	extract  extractor.ExtractorClient
	limits   config.LimitsConfig
	timeout  time.Duration
}

func New(metadata ytmusic.MetadataClient, extract extractor.ExtractorClient, limits config.LimitsConfig, timeout time.Duration) *Facade {
	if limits.MaxResults <= 0 {
		limits.MaxResults = 50
	}
	if limits.DefaultSearchResults <= 0 {
		limits.DefaultSearchResults = 10
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Facade{
		metadata: metadata,
		extract:  extract,
		limits:   limits,
		timeout:  timeout,
	}
}

// clampLimit maps a requested limit onto [1, MaxResults]. Zero and negative
// values mean "use the endpoint default", never "zero results".
func (f *Facade) clampLimit(limit, fallback int) int {
	if limit <= 0 {
		limit = fallback
	}
	if limit > f.limits.MaxResults {
		limit = f.limits.MaxResults
	}
	if limit < 1 {
		limit = 1
	}
	return limit
}

func (f *Facade) upstreamCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, f.timeout)
}

// Search queries the metadata provider and falls back to the extraction
// provider once when the primary fails or answers empty.
func (f *Facade) Search(ctx context.Context, query string, limit int) ([]models.SongRecord, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, utils.NewInvalidQueryError()
	}
	limit = f.clampLimit(limit, f.limits.DefaultSearchResults)

	ctx, cancel := f.upstreamCtx(ctx)
	defer cancel()

	tracks, err := f.metadata.Search(ctx, query, limit)
	if err == nil && len(tracks) > 0 {
		return songsFromTracks(tracks, limit), nil
	}
	if err != nil {
		utils.LogWarn(ctx, "Primary search failed, trying extraction provider", utils.Fields{
			"query": query,
			"error": err.Error(),
		})
	}

	items, fbErr := f.extract.Search(ctx, query, limit)
	if fbErr != nil {
		if err != nil {
			return nil, classify(err, "")
		}
		return nil, classify(fbErr, "")
	}
	return songsFromSearchItems(items, limit), nil
}

// GetSong looks a single video up on the metadata provider, with one
// fallback attempt against the extraction provider.
func (f *Facade) GetSong(ctx context.Context, videoID string) (*models.SongRecord, error) {
	videoID = strings.TrimSpace(videoID)
	if videoID == "" {
		return nil, utils.NewValidationError("Video ID must not be empty", nil)
	}

	ctx, cancel := f.upstreamCtx(ctx)
	defer cancel()

	song, err := f.metadata.GetSong(ctx, videoID)
	if err == nil {
		record := songFromSong(song)
		return &record, nil
	}
	utils.LogWarn(ctx, "Primary song lookup failed, trying extraction provider", utils.Fields{
		"video_id": videoID,
		"error":    err.Error(),
	})

	info, fbErr := f.extract.GetVideo(ctx, videoID)
	if fbErr != nil {
		return nil, classify(err, videoID)
	}
	record := songFromVideoInfo(info, nil)
	return &record, nil
}

// ExtractSong resolves full song detail, including a playable audio URL,
// for a YouTube URL. Extraction-provider only.
func (f *Facade) ExtractSong(ctx context.Context, url string) (*models.SongRecord, error) {
	url = strings.TrimSpace(url)
	if !f.extract.IsYouTubeURL(url) {
		return nil, utils.NewValidationError("Not a valid YouTube URL", map[string]interface{}{
			"provided": url,
		})
	}

	ctx, cancel := f.upstreamCtx(ctx)
	defer cancel()

	info, err := f.extract.GetVideo(ctx, url)
	if err != nil {
		return nil, classify(err, "")
	}

	var audioURL *string
	if resolved, err := f.extract.ResolveAudioURL(ctx, info.ID); err == nil {
		audioURL = &resolved
	} else {
		// Metadata without a stream is still useful; the caller can hit
		// the audio endpoint later.
		utils.LogWarn(ctx, "Audio URL resolution failed during extract", utils.Fields{
			"video_id": info.ID,
			"error":    err.Error(),
		})
	}

	record := songFromVideoInfo(info, audioURL)
	return &record, nil
}

// ExtractPlaylist lists and normalizes a playlist's entries.
func (f *Facade) ExtractPlaylist(ctx context.Context, url string, limit int) (*models.PlaylistDetail, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, utils.NewValidationError("Playlist URL must not be empty", nil)
	}
	limit = f.clampLimit(limit, DefaultBrowseLimit)

	ctx, cancel := f.upstreamCtx(ctx)
	defer cancel()

	playlist, err := f.extract.GetPlaylist(ctx, url, limit)
	if err != nil {
		return nil, classify(err, "")
	}

	detail := &models.PlaylistDetail{
		ID:       playlist.ID,
		Title:    playlist.Title,
		Uploader: playlist.Author,
		Songs:    make([]models.SongRecord, 0, len(playlist.Videos)),
	}
	for i := range playlist.Videos {
		detail.Songs = append(detail.Songs, songFromVideoInfo(&playlist.Videos[i], nil))
	}
	detail.EntryCount = len(detail.Songs)
	return detail, nil
}

// ResolveAudioURL resolves a direct, time-limited audio stream URL. Results
// are never cached; upstream URLs expire on their own schedule.
func (f *Facade) ResolveAudioURL(ctx context.Context, videoID string) (string, error) {
	videoID = strings.TrimSpace(videoID)
	if videoID == "" {
		return "", utils.NewValidationError("Video ID must not be empty", nil)
	}

	ctx, cancel := f.upstreamCtx(ctx)
	defer cancel()

	audioURL, err := f.extract.ResolveAudioURL(ctx, videoID)
	if err != nil {
		return "", classify(err, videoID)
	}
	return audioURL, nil
}

// Homepage returns the metadata provider's home feed. There is no
// extraction-provider equivalent, so failures surface directly.
func (f *Facade) Homepage(ctx context.Context, limit int) (*models.HomepageData, error) {
	limit = f.clampLimit(limit, DefaultHomepageLimit)

	ctx, cancel := f.upstreamCtx(ctx)
	defer cancel()

	tracks, err := f.metadata.Home(ctx, limit)
	if err != nil {
		return nil, classify(err, "")
	}

	return &models.HomepageData{
		TrendingMusic: songsFromTracks(tracks, limit),
		Categories:    models.Categories(),
		LastUpdated:   time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// Trending returns chart playlists for a country in the closed allow-list.
func (f *Facade) Trending(ctx context.Context, country string, limit int) ([]models.PlaylistRecord, error) {
	if !models.IsSupportedCountry(country) {
		return nil, utils.NewInvalidCountryError(country)
	}
	country = models.NormalizeCountry(country)
	limit = f.clampLimit(limit, DefaultBrowseLimit)

	ctx, cancel := f.upstreamCtx(ctx)
	defer cancel()

	playlists, err := f.metadata.Trending(ctx, country, limit)
	if err != nil {
		return nil, classify(err, "")
	}

	records := make([]models.PlaylistRecord, 0, len(playlists))
	for _, p := range playlists {
		if p.PlaylistID == "" {
			continue
		}
		records = append(records, models.PlaylistRecord{
			Title:       p.Title,
			PlaylistID:  p.PlaylistID,
			Thumbnail:   p.Thumbnail,
			Description: p.Description,
			URL:         "https://music.youtube.com/playlist?list=" + p.PlaylistID,
		})
	}
	return records, nil
}

// Recommended returns tracks related to a seed video.
func (f *Facade) Recommended(ctx context.Context, videoID string, limit int) ([]models.SongRecord, error) {
	videoID = strings.TrimSpace(videoID)
	if videoID == "" {
		return nil, utils.NewValidationError("Video ID must not be empty", nil)
	}
	limit = f.clampLimit(limit, DefaultBrowseLimit)

	ctx, cancel := f.upstreamCtx(ctx)
	defer cancel()

	tracks, err := f.metadata.Related(ctx, videoID, limit)
	if err != nil {
		return nil, classify(err, videoID)
	}
	return songsFromTracks(tracks, limit), nil
}

// Category searches the extraction provider with the category's seed term.
// Unknown categories are rejected before any upstream call.
func (f *Facade) Category(ctx context.Context, category string, limit int) ([]models.SongRecord, error) {
	seed, ok := models.CategoryQuery(category)
	if !ok {
		return nil, utils.NewInvalidCategoryError(category, models.Categories())
	}
	key := strings.ToLower(strings.TrimSpace(category))
	limit = f.clampLimit(limit, DefaultBrowseLimit)

	ctx, cancel := f.upstreamCtx(ctx)
	defer cancel()

	items, err := f.extract.Search(ctx, seed, limit)
	if err != nil {
		return nil, classify(err, "")
	}

	records := songsFromSearchItems(items, limit)
	for i := range records {
		records[i].Category = key
	}
	return records, nil
}

// Status reports per-provider reachability for the health endpoint.
func (f *Facade) Status(ctx context.Context) map[string]string {
	status := map[string]string{
		// The extraction library runs in-process; it has no standing
		// connection to probe.
		"extractor": "OK",
	}

	checkCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := f.metadata.Ping(checkCtx); err != nil {
		utils.LogError(ctx, "Metadata provider health check failed", err)
		status["ytmusic_api"] = "Unavailable"
	} else {
		status["ytmusic_api"] = "OK"
	}
	return status
}
