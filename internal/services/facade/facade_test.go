package facade

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tunegrab/tunegrab/internal/config"
	"github.com/tunegrab/tunegrab/internal/models"
	"github.com/tunegrab/tunegrab/internal/services/extractor"
	"github.com/tunegrab/tunegrab/internal/services/innertube"
	"github.com/tunegrab/tunegrab/internal/services/ytmusic"
	"github.com/tunegrab/tunegrab/internal/utils"
)

type mockMetadata struct {
	searchFn   func(ctx context.Context, query string, limit int) ([]ytmusic.Track, error)
	getSongFn  func(ctx context.Context, videoID string) (*ytmusic.Song, error)
	trendingFn func(ctx context.Context, country string, limit int) ([]ytmusic.Playlist, error)
	homeFn     func(ctx context.Context, limit int) ([]ytmusic.Track, error)
	relatedFn  func(ctx context.Context, videoID string, limit int) ([]ytmusic.Track, error)
}

func (m *mockMetadata) Search(ctx context.Context, query string, limit int) ([]ytmusic.Track, error) {
	return m.searchFn(ctx, query, limit)
}
func (m *mockMetadata) GetSong(ctx context.Context, videoID string) (*ytmusic.Song, error) {
	return m.getSongFn(ctx, videoID)
}
func (m *mockMetadata) Trending(ctx context.Context, country string, limit int) ([]ytmusic.Playlist, error) {
	return m.trendingFn(ctx, country, limit)
}
func (m *mockMetadata) Home(ctx context.Context, limit int) ([]ytmusic.Track, error) {
	return m.homeFn(ctx, limit)
}
func (m *mockMetadata) Related(ctx context.Context, videoID string, limit int) ([]ytmusic.Track, error) {
	return m.relatedFn(ctx, videoID, limit)
}
func (m *mockMetadata) Ping(ctx context.Context) error { return nil }

type mockExtractor struct {
	searchFn   func(ctx context.Context, query string, limit int) ([]extractor.SearchItem, error)
	getVideoFn func(ctx context.Context, urlOrID string) (*extractor.VideoInfo, error)
	resolveFn  func(ctx context.Context, videoID string) (string, error)
	playlistFn func(ctx context.Context, url string, limit int) (*extractor.PlaylistInfo, error)
}

func (m *mockExtractor) Search(ctx context.Context, query string, limit int) ([]extractor.SearchItem, error) {
	return m.searchFn(ctx, query, limit)
}
func (m *mockExtractor) GetVideo(ctx context.Context, urlOrID string) (*extractor.VideoInfo, error) {
	return m.getVideoFn(ctx, urlOrID)
}
func (m *mockExtractor) ResolveAudioURL(ctx context.Context, videoID string) (string, error) {
	return m.resolveFn(ctx, videoID)
}
func (m *mockExtractor) GetPlaylist(ctx context.Context, url string, limit int) (*extractor.PlaylistInfo, error) {
	return m.playlistFn(ctx, url, limit)
}
func (m *mockExtractor) IsYouTubeURL(url string) bool {
	return len(url) > 0 && url[0] == 'h'
}
func (m *mockExtractor) ParseVideoID(url string) (string, error) { return "", errors.New("unused") }

func testLimits() config.LimitsConfig {
	return config.LimitsConfig{MaxResults: 50, DefaultSearchResults: 10}
}

func trackFixture(n int) []ytmusic.Track {
	tracks := make([]ytmusic.Track, n)
	for i := range tracks {
		tracks[i] = ytmusic.Track{
			VideoID:     fmt.Sprintf("video%06d", i),
			Title:       fmt.Sprintf("Song %d", i),
			Artists:     []ytmusic.Artist{{Name: "Artist"}},
			DurationSec: 187,
		}
	}
	return tracks
}

func itemFixture(n int) []extractor.SearchItem {
	items := make([]extractor.SearchItem, n)
	for i := range items {
		items[i] = extractor.SearchItem{
			ID:          fmt.Sprintf("fbvid%06d", i),
			Title:       fmt.Sprintf("Fallback Song %d", i),
			Channel:     "Channel",
			DurationSec: 240,
		}
	}
	return items
}

func newTestFacade(md *mockMetadata, ex *mockExtractor) *Facade {
	return New(md, ex, testLimits(), 5*time.Second)
}

func TestSearchReturnsNormalizedRecords(t *testing.T) {
	md := &mockMetadata{
		searchFn: func(ctx context.Context, query string, limit int) ([]ytmusic.Track, error) {
			return trackFixture(3), nil
		},
	}
	f := newTestFacade(md, &mockExtractor{})

	songs, err := f.Search(context.Background(), "some query", 10)
	require.NoError(t, err)
	require.Len(t, songs, 3)

	for _, s := range songs {
		assert.NotEmpty(t, s.ID)
		assert.Equal(t, 187, s.Duration)
		assert.Equal(t, "03:07", s.DurationString)
		assert.Equal(t, models.SourceYTMusic, s.Source)
	}
}

func TestSearchRejectsEmptyQuery(t *testing.T) {
	f := newTestFacade(&mockMetadata{}, &mockExtractor{})

	for _, limit := range []int{0, 1, 10, 999} {
		_, err := f.Search(context.Background(), "   ", limit)
		require.Error(t, err)
		var appErr *utils.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, utils.ErrorCodeInvalidQuery, appErr.Code)
	}
}

func TestSearchClampsLimit(t *testing.T) {
	var gotLimit int
	md := &mockMetadata{
		searchFn: func(ctx context.Context, query string, limit int) ([]ytmusic.Track, error) {
			gotLimit = limit
			return trackFixture(limit), nil
		},
	}
	f := newTestFacade(md, &mockExtractor{})

	songs, err := f.Search(context.Background(), "q", 999)
	require.NoError(t, err)
	assert.Equal(t, 50, gotLimit, "provider sees max, not the raw request")
	assert.LessOrEqual(t, len(songs), 50)

	// Zero means the endpoint default, never zero results.
	songs, err = f.Search(context.Background(), "q", 0)
	require.NoError(t, err)
	assert.Equal(t, 10, gotLimit)
	assert.Len(t, songs, 10)
}

func TestSearchFallsBackOnPrimaryError(t *testing.T) {
	md := &mockMetadata{
		searchFn: func(ctx context.Context, query string, limit int) ([]ytmusic.Track, error) {
			return nil, &innertube.StatusError{StatusCode: http.StatusInternalServerError, Endpoint: "search"}
		},
	}
	ex := &mockExtractor{
		searchFn: func(ctx context.Context, query string, limit int) ([]extractor.SearchItem, error) {
			return itemFixture(2), nil
		},
	}
	f := newTestFacade(md, ex)

	songs, err := f.Search(context.Background(), "q", 10)
	require.NoError(t, err)
	require.Len(t, songs, 2)
	for _, s := range songs {
		assert.Equal(t, models.SourceYouTube, s.Source, "degraded results carry the secondary source")
	}
}

func TestSearchFallsBackOnEmptyPrimary(t *testing.T) {
	md := &mockMetadata{
		searchFn: func(ctx context.Context, query string, limit int) ([]ytmusic.Track, error) {
			return nil, nil
		},
	}
	fallbackCalls := 0
	ex := &mockExtractor{
		searchFn: func(ctx context.Context, query string, limit int) ([]extractor.SearchItem, error) {
			fallbackCalls++
			return itemFixture(1), nil
		},
	}
	f := newTestFacade(md, ex)

	songs, err := f.Search(context.Background(), "q", 10)
	require.NoError(t, err)
	assert.Len(t, songs, 1)
	assert.Equal(t, 1, fallbackCalls, "exactly one fallback attempt")
}

func TestSearchBothProvidersFail(t *testing.T) {
	md := &mockMetadata{
		searchFn: func(ctx context.Context, query string, limit int) ([]ytmusic.Track, error) {
			return nil, &innertube.StatusError{StatusCode: http.StatusServiceUnavailable, Endpoint: "search"}
		},
	}
	ex := &mockExtractor{
		searchFn: func(ctx context.Context, query string, limit int) ([]extractor.SearchItem, error) {
			return nil, errors.New("secondary down too")
		},
	}
	f := newTestFacade(md, ex)

	_, err := f.Search(context.Background(), "q", 10)
	require.Error(t, err)
	var appErr *utils.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, utils.ErrorCodeServiceUnavailable, appErr.Code)
}

func TestGetSongFallback(t *testing.T) {
	md := &mockMetadata{
		getSongFn: func(ctx context.Context, videoID string) (*ytmusic.Song, error) {
			return nil, fmt.Errorf("wrapped: %w", ytmusic.ErrNotFound)
		},
	}
	ex := &mockExtractor{
		getVideoFn: func(ctx context.Context, urlOrID string) (*extractor.VideoInfo, error) {
			return &extractor.VideoInfo{
				ID:          urlOrID,
				Title:       "Rick Astley - Never Gonna Give You Up",
				Author:      "Rick Astley",
				DurationSec: 213,
			}, nil
		},
	}
	f := newTestFacade(md, ex)

	song, err := f.GetSong(context.Background(), "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, models.SourceYouTube, song.Source)
	assert.Equal(t, "Rick Astley", song.Artist)
	assert.Equal(t, "Never Gonna Give You Up", song.Title)
	assert.Equal(t, "03:33", song.DurationString)
}

func TestGetSongNotFoundOnBothProviders(t *testing.T) {
	md := &mockMetadata{
		getSongFn: func(ctx context.Context, videoID string) (*ytmusic.Song, error) {
			return nil, ytmusic.ErrNotFound
		},
	}
	ex := &mockExtractor{
		getVideoFn: func(ctx context.Context, urlOrID string) (*extractor.VideoInfo, error) {
			return nil, errors.New("video unavailable")
		},
	}
	f := newTestFacade(md, ex)

	_, err := f.GetSong(context.Background(), "zzzzzzzzzzz")
	var appErr *utils.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, utils.ErrorCodeVideoNotFound, appErr.Code)
}

func TestTrendingRejectsUnknownCountry(t *testing.T) {
	f := newTestFacade(&mockMetadata{}, &mockExtractor{})

	_, err := f.Trending(context.Background(), "ZZ", 50)
	var appErr *utils.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, utils.ErrorCodeInvalidCountry, appErr.Code)
}

func TestTrendingReturnsCompletePlaylists(t *testing.T) {
	md := &mockMetadata{
		trendingFn: func(ctx context.Context, country string, limit int) ([]ytmusic.Playlist, error) {
			assert.Equal(t, "IN", country)
			return []ytmusic.Playlist{
				{PlaylistID: "PLabc", Title: "Top 100 India", Description: "Charts", Thumbnail: "https://img/1.jpg"},
				{Title: "no id, dropped"},
			}, nil
		},
	}
	f := newTestFacade(md, &mockExtractor{})

	playlists, err := f.Trending(context.Background(), "in", 50)
	require.NoError(t, err)
	require.Len(t, playlists, 1)

	p := playlists[0]
	assert.Equal(t, "PLabc", p.PlaylistID)
	assert.Equal(t, "Top 100 India", p.Title)
	assert.Equal(t, "https://img/1.jpg", p.Thumbnail)
	assert.Equal(t, "https://music.youtube.com/playlist?list=PLabc", p.URL)
}

func TestRecommendedUnknownSeed(t *testing.T) {
	md := &mockMetadata{
		relatedFn: func(ctx context.Context, videoID string, limit int) ([]ytmusic.Track, error) {
			return nil, fmt.Errorf("%w: %s", ytmusic.ErrNotFound, videoID)
		},
	}
	f := newTestFacade(md, &mockExtractor{})

	_, err := f.Recommended(context.Background(), "notarealvid", 20)
	var appErr *utils.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, utils.ErrorCodeVideoNotFound, appErr.Code)
}

func TestCategoryRejectsUnknownKey(t *testing.T) {
	f := newTestFacade(&mockMetadata{}, &mockExtractor{})

	_, err := f.Category(context.Background(), "not_a_real_category", 10)
	var appErr *utils.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, utils.ErrorCodeInvalidCategory, appErr.Code)
}

func TestCategoryTagsRecords(t *testing.T) {
	var seenQuery string
	ex := &mockExtractor{
		searchFn: func(ctx context.Context, query string, limit int) ([]extractor.SearchItem, error) {
			seenQuery = query
			return itemFixture(12), nil
		},
	}
	f := newTestFacade(&mockMetadata{}, ex)

	videos, err := f.Category(context.Background(), "pop", 10)
	require.NoError(t, err)
	assert.Equal(t, "pop music hits", seenQuery, "category expands to its seed term")
	require.Len(t, videos, 10)
	for _, v := range videos {
		assert.Equal(t, "pop", v.Category)
		assert.Equal(t, models.SourceYouTube, v.Source)
	}
}

func TestResolveAudioURLClassification(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		code utils.ErrorCode
	}{
		{"no audio format", extractor.ErrNoAudioFormat, utils.ErrorCodeExtractionFailed},
		{"timeout", context.DeadlineExceeded, utils.ErrorCodeServiceUnavailable},
		{"throttled", &innertube.StatusError{StatusCode: http.StatusTooManyRequests}, utils.ErrorCodeRateLimitExceeded},
		{"unknown", errors.New("boom"), utils.ErrorCodeInternalError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ex := &mockExtractor{
				resolveFn: func(ctx context.Context, videoID string) (string, error) {
					return "", fmt.Errorf("resolve: %w", tc.err)
				},
			}
			f := newTestFacade(&mockMetadata{}, ex)

			_, err := f.ResolveAudioURL(context.Background(), "dQw4w9WgXcQ")
			var appErr *utils.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, tc.code, appErr.Code)
		})
	}
}

func TestResolveAudioURLSuccess(t *testing.T) {
	ex := &mockExtractor{
		resolveFn: func(ctx context.Context, videoID string) (string, error) {
			return "https://rr3---sn-example.googlevideo.com/videoplayback?expire=123", nil
		},
	}
	f := newTestFacade(&mockMetadata{}, ex)

	u, err := f.ResolveAudioURL(context.Background(), "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Contains(t, u, "https://")
}

func TestHomepageDefaults(t *testing.T) {
	var gotLimit int
	md := &mockMetadata{
		homeFn: func(ctx context.Context, limit int) ([]ytmusic.Track, error) {
			gotLimit = limit
			return trackFixture(5), nil
		},
	}
	f := newTestFacade(md, &mockExtractor{})

	data, err := f.Homepage(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultHomepageLimit, gotLimit)
	assert.Len(t, data.TrendingMusic, 5)
	assert.NotEmpty(t, data.Categories)
	assert.NotEmpty(t, data.LastUpdated)
}

func TestExtractSongRejectsNonYouTubeURL(t *testing.T) {
	f := newTestFacade(&mockMetadata{}, &mockExtractor{})

	// The mock treats anything not starting with 'h' as invalid.
	_, err := f.ExtractSong(context.Background(), "ftp://nope")
	var appErr *utils.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, utils.ErrorCodeValidationError, appErr.Code)
}

func TestExtractPlaylist(t *testing.T) {
	ex := &mockExtractor{
		playlistFn: func(ctx context.Context, url string, limit int) (*extractor.PlaylistInfo, error) {
			return &extractor.PlaylistInfo{
				ID:     "PLxyz",
				Title:  "Road Trip",
				Author: "Someone",
				Videos: []extractor.VideoInfo{
					{ID: "vid00000001", Title: "A - B", DurationSec: 100},
					{ID: "vid00000002", Title: "C - D", DurationSec: 200},
				},
			}, nil
		},
	}
	f := newTestFacade(&mockMetadata{}, ex)

	detail, err := f.ExtractPlaylist(context.Background(), "https://www.youtube.com/playlist?list=PLxyz", 50)
	require.NoError(t, err)
	assert.Equal(t, "Road Trip", detail.Title)
	assert.Equal(t, 2, detail.EntryCount)
	assert.Equal(t, "01:40", detail.Songs[0].DurationString)
}
