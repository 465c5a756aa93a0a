package ytmusic

import (
	"strings"

	"github.com/tunegrab/tunegrab/internal/services/innertube"
	"github.com/tunegrab/tunegrab/internal/utils"
)

// parseSearchTracks walks the tabbed search response and collects song rows
// from every music shelf, provider order preserved.
func parseSearchTracks(resp map[string]interface{}, limit int) []Track {
	sections := innertube.NavList(resp,
		"contents", "tabbedSearchResultsRenderer", "tabs", 0,
		"tabRenderer", "content", "sectionListRenderer", "contents")

	var tracks []Track
	for _, section := range sections {
		rows := innertube.NavList(section, "musicShelfRenderer", "contents")
		for _, row := range rows {
			item := innertube.NavMap(row, "musicResponsiveListItemRenderer")
			if item == nil {
				continue
			}
			track, ok := parseListItem(item)
			if !ok {
				continue
			}
			tracks = append(tracks, track)
			if limit > 0 && len(tracks) >= limit {
				return tracks
			}
		}
	}
	return tracks
}

// parseListItem converts a musicResponsiveListItemRenderer into a Track.
// The first flex column is the title, the second a subtitle like
// "Artist • Album • 3:07".
func parseListItem(item map[string]interface{}) (Track, bool) {
	videoID := innertube.NavString(item, "playlistItemData", "videoId")
	if videoID == "" {
		videoID = innertube.NavString(item,
			"overlay", "musicItemThumbnailOverlayRenderer", "content",
			"musicPlayButtonRenderer", "playNavigationEndpoint",
			"watchEndpoint", "videoId")
	}
	if videoID == "" {
		return Track{}, false
	}

	track := Track{
		VideoID: videoID,
		Title: innertube.RunsText(item,
			"flexColumns", 0, "musicResponsiveListItemFlexColumnRenderer", "text"),
		Thumbnail: innertube.BestThumbnail(item,
			"thumbnail", "musicThumbnailRenderer", "thumbnail"),
	}

	subtitle := innertube.NavList(item,
		"flexColumns", 1, "musicResponsiveListItemFlexColumnRenderer",
		"text", "runs")
	track.Artists, track.Duration = parseSubtitleRuns(subtitle)
	track.DurationSec = utils.ParseClockDuration(track.Duration)

	return track, true
}

// parseSubtitleRuns splits a subtitle run list on the "•" separators:
// artists come first, a trailing clock-formatted run is the duration.
func parseSubtitleRuns(runs []interface{}) ([]Artist, string) {
	var artists []Artist
	duration := ""

	for i, run := range runs {
		text := strings.TrimSpace(innertube.NavString(run, "text"))
		if text == "" || text == "•" || text == "&" {
			continue
		}
		if i == len(runs)-1 && utils.ParseClockDuration(text) > 0 {
			duration = text
			continue
		}
		browseID := innertube.NavString(run, "navigationEndpoint", "browseEndpoint", "browseId")
		// Artist runs carry a channel browse endpoint; album and plain
		// label runs do not, or point at album pages.
		if strings.HasPrefix(browseID, "UC") || (len(artists) == 0 && browseID == "") {
			artists = append(artists, Artist{Name: text, ID: browseID})
		}
	}
	return artists, duration
}

// parseChartPlaylists collects playlist cards from the charts carousels.
func parseChartPlaylists(resp map[string]interface{}, limit int) []Playlist {
	var playlists []Playlist
	for _, shelf := range browseCarousels(resp) {
		for _, card := range innertube.NavList(shelf, "contents") {
			item := innertube.NavMap(card, "musicTwoRowItemRenderer")
			if item == nil {
				continue
			}
			browseID := innertube.NavString(item,
				"navigationEndpoint", "browseEndpoint", "browseId")
			if !strings.HasPrefix(browseID, "VL") {
				continue
			}
			playlists = append(playlists, Playlist{
				PlaylistID:  strings.TrimPrefix(browseID, "VL"),
				Title:       innertube.RunsText(item, "title"),
				Description: innertube.RunsText(item, "subtitle"),
				Thumbnail: innertube.BestThumbnail(item,
					"thumbnailRenderer", "musicThumbnailRenderer", "thumbnail"),
			})
			if limit > 0 && len(playlists) >= limit {
				return playlists
			}
		}
	}
	return playlists
}

// parseCarouselTracks collects playable track cards from home carousels.
func parseCarouselTracks(resp map[string]interface{}, limit int) []Track {
	var tracks []Track
	for _, shelf := range browseCarousels(resp) {
		for _, card := range innertube.NavList(shelf, "contents") {
			item := innertube.NavMap(card, "musicTwoRowItemRenderer")
			if item == nil {
				continue
			}
			videoID := innertube.NavString(item,
				"navigationEndpoint", "watchEndpoint", "videoId")
			if videoID == "" {
				continue
			}
			track := Track{
				VideoID: videoID,
				Title:   innertube.RunsText(item, "title"),
				Thumbnail: innertube.BestThumbnail(item,
					"thumbnailRenderer", "musicThumbnailRenderer", "thumbnail"),
			}
			if artist := innertube.RunText(item, 0, "subtitle"); artist != "" {
				track.Artists = []Artist{{Name: artist}}
			}
			tracks = append(tracks, track)
			if limit > 0 && len(tracks) >= limit {
				return tracks
			}
		}
	}
	return tracks
}

// browseCarousels returns every musicCarouselShelfRenderer in a browse
// response, across all tabs and sections.
func browseCarousels(resp map[string]interface{}) []map[string]interface{} {
	var shelves []map[string]interface{}
	tabs := innertube.NavList(resp, "contents", "singleColumnBrowseResultsRenderer", "tabs")
	for _, tab := range tabs {
		sections := innertube.NavList(tab,
			"tabRenderer", "content", "sectionListRenderer", "contents")
		for _, section := range sections {
			if shelf := innertube.NavMap(section, "musicCarouselShelfRenderer"); shelf != nil {
				shelves = append(shelves, shelf)
			}
		}
	}
	return shelves
}

// parseQueueTracks reads the watch-queue panel from a next response,
// skipping the seed video itself.
func parseQueueTracks(resp map[string]interface{}, limit int, seedID string) []Track {
	tabs := innertube.NavList(resp,
		"contents", "singleColumnMusicWatchNextResultsRenderer",
		"tabbedRenderer", "watchNextTabbedResultsRenderer", "tabs")

	var rows []interface{}
	for _, tab := range tabs {
		rows = innertube.NavList(tab,
			"tabRenderer", "content", "musicQueueRenderer", "content",
			"playlistPanelRenderer", "contents")
		if len(rows) > 0 {
			break
		}
	}

	var tracks []Track
	for _, row := range rows {
		item := innertube.NavMap(row, "playlistPanelVideoRenderer")
		if item == nil {
			continue
		}
		videoID := innertube.NavString(item, "videoId")
		if videoID == "" || videoID == seedID {
			continue
		}
		track := Track{
			VideoID:   videoID,
			Title:     innertube.RunsText(item, "title"),
			Duration:  innertube.RunsText(item, "lengthText"),
			Thumbnail: innertube.BestThumbnail(item, "thumbnail"),
		}
		track.DurationSec = utils.ParseClockDuration(track.Duration)
		if artist := innertube.RunText(item, 0, "longBylineText"); artist != "" {
			track.Artists = []Artist{{Name: artist}}
		}
		tracks = append(tracks, track)
		if limit > 0 && len(tracks) >= limit {
			break
		}
	}
	return tracks
}
