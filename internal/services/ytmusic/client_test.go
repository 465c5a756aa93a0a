package ytmusic

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tunegrab/tunegrab/internal/services/innertube"
)

const searchFixture = `{
  "contents": {"tabbedSearchResultsRenderer": {"tabs": [{"tabRenderer": {"content": {"sectionListRenderer": {"contents": [
    {"musicShelfRenderer": {"contents": [
      {"musicResponsiveListItemRenderer": {
        "playlistItemData": {"videoId": "dQw4w9WgXcQ"},
        "flexColumns": [
          {"musicResponsiveListItemFlexColumnRenderer": {"text": {"runs": [{"text": "Never Gonna Give You Up"}]}}},
          {"musicResponsiveListItemFlexColumnRenderer": {"text": {"runs": [
            {"text": "Rick Astley", "navigationEndpoint": {"browseEndpoint": {"browseId": "UCuAXFkgsw1L7xaCfnd5JJOw"}}},
            {"text": " • "},
            {"text": "Whenever You Need Somebody"},
            {"text": " • "},
            {"text": "3:33"}
          ]}}}
        ],
        "thumbnail": {"musicThumbnailRenderer": {"thumbnail": {"thumbnails": [
          {"url": "https://img/60.jpg", "width": 60, "height": 60},
          {"url": "https://img/544.jpg", "width": 544, "height": 544}
        ]}}}
      }},
      {"musicResponsiveListItemRenderer": {
        "flexColumns": [
          {"musicResponsiveListItemFlexColumnRenderer": {"text": {"runs": [{"text": "No id, dropped"}]}}}
        ]
      }}
    ]}}
  ]}}}}]}}
}`

const playerFixture = `{
  "playabilityStatus": {"status": "OK"},
  "videoDetails": {
    "videoId": "dQw4w9WgXcQ",
    "title": "Never Gonna Give You Up",
    "author": "Rick Astley",
    "lengthSeconds": "213",
    "viewCount": "1400000000",
    "shortDescription": "The official video.",
    "thumbnail": {"thumbnails": [{"url": "https://img/hq.jpg", "width": 480, "height": 360}]}
  }
}`

func fixtureClient(t *testing.T, body string) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return NewClient(innertube.WithBaseURL(srv.URL))
}

func TestSearchParsesShelf(t *testing.T) {
	c := fixtureClient(t, searchFixture)

	tracks, err := c.Search(context.Background(), "never gonna give you up", 10)
	require.NoError(t, err)
	require.Len(t, tracks, 1, "rows without a video id must be dropped")

	track := tracks[0]
	assert.Equal(t, "dQw4w9WgXcQ", track.VideoID)
	assert.Equal(t, "Never Gonna Give You Up", track.Title)
	require.NotEmpty(t, track.Artists)
	assert.Equal(t, "Rick Astley", track.Artists[0].Name)
	assert.Equal(t, "3:33", track.Duration)
	assert.Equal(t, 213, track.DurationSec)
	assert.Equal(t, "https://img/544.jpg", track.Thumbnail, "largest thumbnail wins")
}

func TestSearchHonorsLimit(t *testing.T) {
	c := fixtureClient(t, searchFixture)

	tracks, err := c.Search(context.Background(), "q", 0)
	require.NoError(t, err)
	assert.Len(t, tracks, 1)
}

func TestGetSong(t *testing.T) {
	c := fixtureClient(t, playerFixture)

	song, err := c.GetSong(context.Background(), "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, "dQw4w9WgXcQ", song.VideoID)
	assert.Equal(t, "Rick Astley", song.Author)
	assert.Equal(t, 213, song.LengthSec)
	assert.Equal(t, int64(1400000000), song.ViewCount)
	assert.Equal(t, "https://img/hq.jpg", song.Thumbnail)
}

func TestGetSongNotFound(t *testing.T) {
	c := fixtureClient(t, `{"playabilityStatus": {"status": "ERROR", "reason": "Video unavailable"}}`)

	_, err := c.GetSong(context.Background(), "zzzzzzzzzzz")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestRelatedEmptyQueueIsNotFound(t *testing.T) {
	c := fixtureClient(t, `{"contents": {}}`)

	_, err := c.Related(context.Background(), "unknownseed", 10)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestTrendingParsesPlaylistCards(t *testing.T) {
	const chartsFixture = `{
	  "contents": {"singleColumnBrowseResultsRenderer": {"tabs": [{"tabRenderer": {"content": {"sectionListRenderer": {"contents": [
	    {"musicCarouselShelfRenderer": {"contents": [
	      {"musicTwoRowItemRenderer": {
	        "title": {"runs": [{"text": "Top 100 Songs India"}]},
	        "subtitle": {"runs": [{"text": "YouTube Music Charts"}]},
	        "navigationEndpoint": {"browseEndpoint": {"browseId": "VLPL1234567890abcdef"}},
	        "thumbnailRenderer": {"musicThumbnailRenderer": {"thumbnail": {"thumbnails": [{"url": "https://img/chart.jpg", "width": 226, "height": 226}]}}}
	      }},
	      {"musicTwoRowItemRenderer": {
	        "title": {"runs": [{"text": "Not a playlist card"}]},
	        "navigationEndpoint": {"watchEndpoint": {"videoId": "abc123def45"}}
	      }}
	    ]}}
	  ]}}}}]}}
	}`
	c := fixtureClient(t, chartsFixture)

	playlists, err := c.Trending(context.Background(), "IN", 50)
	require.NoError(t, err)
	require.Len(t, playlists, 1)
	assert.Equal(t, "PL1234567890abcdef", playlists[0].PlaylistID, "VL prefix stripped")
	assert.Equal(t, "Top 100 Songs India", playlists[0].Title)
	assert.Equal(t, "https://img/chart.jpg", playlists[0].Thumbnail)
}
