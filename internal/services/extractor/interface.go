package extractor

import (
	"context"
	"errors"
)

// ErrNoAudioFormat is returned when a video has no usable audio-only stream.
var ErrNoAudioFormat = errors.New("extractor: no suitable audio format found")

// ExtractorClient is the secondary provider: direct media extraction plus a
// plain search surface used as the fallback when the metadata provider
// fails.
type ExtractorClient interface {
	// Search returns plain search results for a free-text query.
	Search(ctx context.Context, query string, limit int) ([]SearchItem, error)

	// GetVideo returns full metadata for a video URL or bare ID.
	GetVideo(ctx context.Context, urlOrID string) (*VideoInfo, error)

	// ResolveAudioURL resolves a direct, time-limited audio stream URL.
	// The URL is not cached; callers re-resolve after upstream expiry.
	ResolveAudioURL(ctx context.Context, videoID string) (string, error)

	// GetPlaylist lists a playlist's entries, truncated to limit.
	GetPlaylist(ctx context.Context, url string, limit int) (*PlaylistInfo, error)

	// IsYouTubeURL reports whether url is a recognized YouTube video URL.
	IsYouTubeURL(url string) bool

	// ParseVideoID extracts the 11-character video ID from a YouTube URL.
	ParseVideoID(url string) (string, error)
}

// VideoInfo is full single-video metadata from the extraction provider.
type VideoInfo struct {
	ID          string
	Title       string
	Author      string
	DurationSec int
	Description string
	Thumbnail   string
	ViewCount   int64
	UploadDate  string // YYYYMMDD, empty when unknown
}

// SearchItem is one plain search result. Duration is the rendered clock
// string; DurationSec is parsed from it.
type SearchItem struct {
	ID          string
	Title       string
	Channel     string
	Duration    string
	DurationSec int
	Thumbnail   string
}

// PlaylistInfo is a playlist with its normalized entries.
type PlaylistInfo struct {
	ID     string
	Title  string
	Author string
	Videos []VideoInfo
}
