package extractor

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/kkdai/youtube/v2"

	"github.com/tunegrab/tunegrab/internal/services/innertube"
)

// Client implements ExtractorClient on top of the youtube extraction
// library, with fallback search going through the plain web API surface.
type Client struct {
	client     *youtube.Client
	search     *innertube.Client
	httpClient *http.Client
}

// NewClient creates a new extraction client. Options apply to the search
// transport only; stream resolution goes through the extraction library.
func NewClient(opts ...innertube.Option) *Client {
	httpClient := &http.Client{
		Timeout: 30 * time.Second,
	}

	ytClient := &youtube.Client{
		HTTPClient: httpClient,
	}

	return &Client{
		client:     ytClient,
		search:     innertube.NewClient(innertube.Web, opts...),
		httpClient: httpClient,
	}
}

// IsYouTubeURL checks if the provided URL is a valid YouTube URL
func (c *Client) IsYouTubeURL(url string) bool {
	patterns := []string{
		`^https?://(www\.)?youtube\.com/watch\?v=[\w-]+`,
		`^https?://(www\.)?youtube\.com/embed/[\w-]+`,
		`^https?://youtu\.be/[\w-]+`,
		`^https?://(www\.)?youtube\.com/v/[\w-]+`,
		`^https?://(m\.)?youtube\.com/watch\?v=[\w-]+`,
		`^https?://music\.youtube\.com/watch\?v=[\w-]+`,
	}

	for _, pattern := range patterns {
		matched, _ := regexp.MatchString(pattern, url)
		if matched {
			return true
		}
	}
	return false
}

var videoIDPattern = regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/|youtube\.com/v/)([a-zA-Z0-9_-]{11})`)

// ParseVideoID extracts the video ID from a YouTube URL.
func (c *Client) ParseVideoID(url string) (string, error) {
	matches := videoIDPattern.FindStringSubmatch(url)
	if len(matches) > 1 {
		return matches[1], nil
	}
	return "", fmt.Errorf("could not extract video ID from YouTube URL: %s", url)
}

// GetVideo retrieves metadata for a video URL or bare ID.
func (c *Client) GetVideo(ctx context.Context, urlOrID string) (*VideoInfo, error) {
	video, err := c.client.GetVideoContext(ctx, urlOrID)
	if err != nil {
		return nil, fmt.Errorf("failed to get video info: %w", err)
	}
	return c.videoInfo(video), nil
}

// ResolveAudioURL resolves a direct stream URL for the best audio-only
// format of a video.
func (c *Client) ResolveAudioURL(ctx context.Context, videoID string) (string, error) {
	video, err := c.client.GetVideoContext(ctx, videoID)
	if err != nil {
		return "", fmt.Errorf("failed to get video: %w", err)
	}

	format := c.getBestAudioFormat(video.Formats)
	if format == nil {
		return "", ErrNoAudioFormat
	}

	streamURL, err := c.client.GetStreamURLContext(ctx, video, format)
	if err != nil {
		return "", fmt.Errorf("failed to resolve stream URL: %w", err)
	}
	return streamURL, nil
}

// GetPlaylist lists the entries of a playlist URL, truncated to limit.
func (c *Client) GetPlaylist(ctx context.Context, url string, limit int) (*PlaylistInfo, error) {
	playlist, err := c.client.GetPlaylistContext(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to get playlist: %w", err)
	}

	info := &PlaylistInfo{
		ID:     playlist.ID,
		Title:  playlist.Title,
		Author: playlist.Author,
	}

	for _, entry := range playlist.Videos {
		if entry == nil || entry.ID == "" {
			continue
		}
		info.Videos = append(info.Videos, VideoInfo{
			ID:          entry.ID,
			Title:       entry.Title,
			Author:      entry.Author,
			DurationSec: int(entry.Duration / time.Second),
			Thumbnail:   bestThumbnail(entry.Thumbnails),
		})
		if limit > 0 && len(info.Videos) >= limit {
			break
		}
	}

	return info, nil
}

// videoInfo maps a library video to the provider-neutral shape.
func (c *Client) videoInfo(video *youtube.Video) *VideoInfo {
	info := &VideoInfo{
		ID:          video.ID,
		Title:       video.Title,
		Author:      video.Author,
		DurationSec: int(video.Duration / time.Second),
		Description: video.Description,
		ViewCount:   int64(video.Views),
		Thumbnail:   bestThumbnail(video.Thumbnails),
	}
	if !video.PublishDate.IsZero() {
		info.UploadDate = video.PublishDate.Format("20060102")
	}
	return info
}

// getBestAudioFormat selects the best audio-only format, preferring the
// mp4/m4a container, highest bitrate first.
func (c *Client) getBestAudioFormat(formats youtube.FormatList) *youtube.Format {
	var bestFormat *youtube.Format
	var bestBitrate int

	for i := range formats {
		format := &formats[i]
		if format.MimeType == "" || !strings.Contains(format.MimeType, "audio") {
			continue
		}

		if strings.Contains(format.MimeType, "mp4") || strings.Contains(format.MimeType, "m4a") {
			if bestFormat == nil || format.Bitrate > bestBitrate {
				bestFormat = format
				bestBitrate = format.Bitrate
			}
		}
	}

	// Fallback to any audio format
	if bestFormat == nil {
		for i := range formats {
			format := &formats[i]
			if format.MimeType != "" && strings.Contains(format.MimeType, "audio") {
				if bestFormat == nil || format.Bitrate > bestBitrate {
					bestFormat = format
					bestBitrate = format.Bitrate
				}
			}
		}
	}

	return bestFormat
}

func bestThumbnail(thumbnails youtube.Thumbnails) string {
	bestURL := ""
	bestArea := uint(0)
	for _, t := range thumbnails {
		area := t.Width * t.Height
		if t.URL != "" && (bestURL == "" || area > bestArea) {
			bestURL = t.URL
			bestArea = area
		}
	}
	return bestURL
}
