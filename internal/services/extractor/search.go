package extractor

import (
	"context"
	"fmt"

	"github.com/tunegrab/tunegrab/internal/services/innertube"
	"github.com/tunegrab/tunegrab/internal/utils"
)

// Search runs a plain web search and collects video results, provider order
// preserved. Channels, playlists and promo cards are skipped.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]SearchItem, error) {
	resp, err := c.search.Post(ctx, "search", map[string]interface{}{
		"query": query,
	})
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}

	sections := innertube.NavList(resp,
		"contents", "twoColumnSearchResultsRenderer", "primaryContents",
		"sectionListRenderer", "contents")

	var items []SearchItem
	for _, section := range sections {
		rows := innertube.NavList(section, "itemSectionRenderer", "contents")
		for _, row := range rows {
			video := innertube.NavMap(row, "videoRenderer")
			if video == nil {
				continue
			}
			videoID := innertube.NavString(video, "videoId")
			if videoID == "" {
				continue
			}

			item := SearchItem{
				ID:        videoID,
				Title:     innertube.RunsText(video, "title"),
				Channel:   innertube.RunText(video, 0, "ownerText"),
				Duration:  innertube.RunsText(video, "lengthText"),
				Thumbnail: innertube.BestThumbnail(video, "thumbnail"),
			}
			item.DurationSec = utils.ParseClockDuration(item.Duration)

			items = append(items, item)
			if limit > 0 && len(items) >= limit {
				return items, nil
			}
		}
	}

	return items, nil
}
