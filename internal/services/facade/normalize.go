package facade

import (
	"strings"

	"github.com/tunegrab/tunegrab/internal/models"
	"github.com/tunegrab/tunegrab/internal/services/extractor"
	"github.com/tunegrab/tunegrab/internal/services/ytmusic"
	"github.com/tunegrab/tunegrab/internal/utils"
)

const maxDescriptionLen = 500

func songsFromTracks(tracks []ytmusic.Track, limit int) []models.SongRecord {
	records := make([]models.SongRecord, 0, len(tracks))
	for _, t := range tracks {
		if t.VideoID == "" {
			continue
		}
		record := models.SongRecord{
			ID:             t.VideoID,
			Title:          t.Title,
			Artist:         joinArtists(t.Artists),
			Duration:       t.DurationSec,
			DurationString: utils.FormatDuration(t.DurationSec),
			Thumbnail:      t.Thumbnail,
			PosterImage:    t.Thumbnail,
			WebpageURL:     "https://music.youtube.com/watch?v=" + t.VideoID,
			Source:         models.SourceYTMusic,
		}
		records = append(records, record)
		if limit > 0 && len(records) >= limit {
			break
		}
	}
	return records
}

func songFromSong(s *ytmusic.Song) models.SongRecord {
	artist, title := splitArtistTitle(s.Title, s.Author)
	return models.SongRecord{
		ID:             s.VideoID,
		Title:          title,
		Artist:         artist,
		Duration:       s.LengthSec,
		DurationString: utils.FormatDuration(s.LengthSec),
		Thumbnail:      s.Thumbnail,
		PosterImage:    s.Thumbnail,
		WebpageURL:     "https://music.youtube.com/watch?v=" + s.VideoID,
		ViewCount:      s.ViewCount,
		Uploader:       s.Author,
		Description:    truncate(s.Description, maxDescriptionLen),
		Source:         models.SourceYTMusic,
	}
}

func songFromVideoInfo(v *extractor.VideoInfo, audioURL *string) models.SongRecord {
	artist, title := splitArtistTitle(v.Title, v.Author)
	return models.SongRecord{
		ID:             v.ID,
		Title:          title,
		Artist:         artist,
		Duration:       v.DurationSec,
		DurationString: utils.FormatDuration(v.DurationSec),
		Thumbnail:      v.Thumbnail,
		PosterImage:    v.Thumbnail,
		AudioURL:       audioURL,
		WebpageURL:     "https://www.youtube.com/watch?v=" + v.ID,
		ViewCount:      v.ViewCount,
		Uploader:       v.Author,
		UploadDate:     v.UploadDate,
		Description:    truncate(v.Description, maxDescriptionLen),
		Source:         models.SourceYouTube,
	}
}

func songsFromSearchItems(items []extractor.SearchItem, limit int) []models.SongRecord {
	records := make([]models.SongRecord, 0, len(items))
	for _, item := range items {
		if item.ID == "" {
			continue
		}
		artist, title := splitArtistTitle(item.Title, item.Channel)
		records = append(records, models.SongRecord{
			ID:             item.ID,
			Title:          title,
			Artist:         artist,
			Duration:       item.DurationSec,
			DurationString: utils.FormatDuration(item.DurationSec),
			Thumbnail:      item.Thumbnail,
			PosterImage:    item.Thumbnail,
			WebpageURL:     "https://www.youtube.com/watch?v=" + item.ID,
			Uploader:       item.Channel,
			Source:         models.SourceYouTube,
		})
		if limit > 0 && len(records) >= limit {
			break
		}
	}
	return records
}

func joinArtists(artists []ytmusic.Artist) string {
	names := make([]string, 0, len(artists))
	for _, a := range artists {
		if a.Name != "" {
			names = append(names, a.Name)
		}
	}
	return strings.Join(names, ", ")
}

// splitArtistTitle applies the "Artist - Title" convention common in music
// video titles. When the title has no separator the uploader stands in as
// the artist.
func splitArtistTitle(title, uploader string) (artist, cleanTitle string) {
	if idx := strings.Index(title, " - "); idx > 0 {
		return strings.TrimSpace(title[:idx]), strings.TrimSpace(title[idx+3:])
	}
	return uploader, title
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	// Cut on a rune boundary so multi-byte text is never split mid-char.
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
