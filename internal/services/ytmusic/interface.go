package ytmusic

import (
	"context"
	"errors"
)

// ErrNotFound is returned when the provider does not recognize a video or
// playlist identifier.
var ErrNotFound = errors.New("ytmusic: not found")

// MetadataClient is the primary metadata provider surface.
type MetadataClient interface {
	// Search returns song results for a free-text query, provider order
	// preserved.
	Search(ctx context.Context, query string, limit int) ([]Track, error)

	// GetSong returns metadata for a single video ID.
	GetSong(ctx context.Context, videoID string) (*Song, error)

	// Trending returns chart playlists for a country code.
	Trending(ctx context.Context, country string, limit int) ([]Playlist, error)

	// Home returns the homepage feed tracks.
	Home(ctx context.Context, limit int) ([]Track, error)

	// Related returns tracks related to a seed video.
	Related(ctx context.Context, videoID string, limit int) ([]Track, error)

	// Ping performs a minimal request to verify the provider is reachable.
	Ping(ctx context.Context) error
}

// Artist is a credited artist on a track.
type Artist struct {
	Name string
	ID   string
}

// Track is one search/feed/related result. Duration is the display string
// as rendered by the provider ("3:07"); DurationSec is parsed from it and
// zero when unknown.
type Track struct {
	VideoID     string
	Title       string
	Artists     []Artist
	Duration    string
	DurationSec int
	Thumbnail   string
}

// Song is the full single-video detail from the player surface.
type Song struct {
	VideoID     string
	Title       string
	Author      string
	LengthSec   int
	ViewCount   int64
	Thumbnail   string
	Description string
}

// Playlist is one chart playlist entry.
type Playlist struct {
	PlaylistID  string
	Title       string
	Description string
	Thumbnail   string
}
