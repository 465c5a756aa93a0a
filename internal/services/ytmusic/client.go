package ytmusic

import (
	"context"
	"fmt"
	"strconv"

	"github.com/tunegrab/tunegrab/internal/services/innertube"
)

// songsFilterParam narrows search results to the songs shelf.
const songsFilterParam = "EgWKAQIIAWoKEAkQBRAKEAMQBA%3D%3D"

const (
	browseIDCharts = "FEmusic_charts"
	browseIDHome   = "FEmusic_home"
)

// Client talks to the music metadata API through the shared innertube
// transport.
type Client struct {
	api *innertube.Client
}

// NewClient creates a metadata client. Options are passed through to the
// underlying innertube transport.
func NewClient(opts ...innertube.Option) *Client {
	return &Client{api: innertube.NewClient(innertube.WebRemix, opts...)}
}

func (c *Client) Search(ctx context.Context, query string, limit int) ([]Track, error) {
	resp, err := c.api.Post(ctx, "search", map[string]interface{}{
		"query":  query,
		"params": songsFilterParam,
	})
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}

	return parseSearchTracks(resp, limit), nil
}

func (c *Client) GetSong(ctx context.Context, videoID string) (*Song, error) {
	resp, err := c.api.Post(ctx, "player", map[string]interface{}{
		"videoId": videoID,
	})
	if err != nil {
		return nil, fmt.Errorf("player request failed: %w", err)
	}

	status := innertube.NavString(resp, "playabilityStatus", "status")
	switch status {
	case "OK", "":
		// fall through to detail parsing
	case "ERROR", "CONTENT_CHECK_REQUIRED":
		return nil, fmt.Errorf("%w: %s", ErrNotFound, videoID)
	default:
		reason := innertube.NavString(resp, "playabilityStatus", "reason")
		return nil, fmt.Errorf("video %s not playable (%s): %s", videoID, status, reason)
	}

	details := innertube.NavMap(resp, "videoDetails")
	if details == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, videoID)
	}

	song := &Song{
		VideoID:     innertube.NavString(details, "videoId"),
		Title:       innertube.NavString(details, "title"),
		Author:      innertube.NavString(details, "author"),
		Description: innertube.NavString(details, "shortDescription"),
		Thumbnail:   innertube.BestThumbnail(details, "thumbnail"),
	}
	if n, err := strconv.Atoi(innertube.NavString(details, "lengthSeconds")); err == nil {
		song.LengthSec = n
	}
	if n, err := strconv.ParseInt(innertube.NavString(details, "viewCount"), 10, 64); err == nil {
		song.ViewCount = n
	}

	if song.VideoID == "" {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, videoID)
	}
	return song, nil
}

func (c *Client) Trending(ctx context.Context, country string, limit int) ([]Playlist, error) {
	resp, err := c.api.Post(ctx, "browse", map[string]interface{}{
		"browseId": browseIDCharts,
		"formData": map[string]interface{}{
			"selectedValues": []string{country},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("charts request failed: %w", err)
	}

	return parseChartPlaylists(resp, limit), nil
}

func (c *Client) Home(ctx context.Context, limit int) ([]Track, error) {
	resp, err := c.api.Post(ctx, "browse", map[string]interface{}{
		"browseId": browseIDHome,
	})
	if err != nil {
		return nil, fmt.Errorf("home request failed: %w", err)
	}

	return parseCarouselTracks(resp, limit), nil
}

func (c *Client) Related(ctx context.Context, videoID string, limit int) ([]Track, error) {
	resp, err := c.api.Post(ctx, "next", map[string]interface{}{
		"videoId":                       videoID,
		"enablePersistentPlaylistPanel": true,
		"isAudioOnly":                   true,
	})
	if err != nil {
		return nil, fmt.Errorf("next request failed: %w", err)
	}

	tracks := parseQueueTracks(resp, limit, videoID)
	if len(tracks) == 0 {
		// The next surface answers 200 with an empty queue for unknown
		// seed IDs, so absence of results is the not-found signal here.
		return nil, fmt.Errorf("%w: %s", ErrNotFound, videoID)
	}
	return tracks, nil
}

func (c *Client) Ping(ctx context.Context) error {
	_, err := c.Search(ctx, "test", 1)
	return err
}
