package models

// Source identifies which upstream provider produced a record.
type Source string

const (
	// SourceYTMusic is the primary metadata provider (music.youtube.com).
	SourceYTMusic Source = "ytmusic"
	// SourceYouTube is the secondary extraction provider.
	SourceYouTube Source = "youtube"
)

// SongRecord is the canonical representation of a single track, independent
// of which upstream produced the underlying data. ID is always non-empty;
// entries without one are dropped during normalization. DurationString is
// derived from Duration and omitted when the duration is unknown.
type SongRecord struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	Artist         string  `json:"artist,omitempty"`
	Duration       int     `json:"duration,omitempty"`
	DurationString string  `json:"duration_string,omitempty"`
	Thumbnail      string  `json:"thumbnail,omitempty"`
	PosterImage    string  `json:"poster_image,omitempty"`
	AudioURL       *string `json:"audio_url"`
	WebpageURL     string  `json:"webpage_url,omitempty"`
	ViewCount      int64   `json:"view_count,omitempty"`
	LikeCount      int64   `json:"like_count,omitempty"`
	Uploader       string  `json:"uploader,omitempty"`
	UploadDate     string  `json:"upload_date,omitempty"`
	Description    string  `json:"description,omitempty"`
	Category       string  `json:"category,omitempty"`
	Source         Source  `json:"source"`
}

// PlaylistRecord is the canonical shape for trending-by-country results.
type PlaylistRecord struct {
	Title       string `json:"title"`
	PlaylistID  string `json:"playlistId"`
	Thumbnail   string `json:"thumbnail,omitempty"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url"`
}

// PlaylistDetail is returned by the playlist extraction endpoint.
type PlaylistDetail struct {
	ID         string       `json:"id"`
	Title      string       `json:"title"`
	Uploader   string       `json:"uploader,omitempty"`
	EntryCount int          `json:"entry_count"`
	Songs      []SongRecord `json:"songs"`
}

type ExtractRequest struct {
	URL string `json:"url" binding:"required"`
}

type PlaylistRequest struct {
	URL   string `json:"url" binding:"required"`
	Limit int    `json:"limit"`
}

type SearchResponse struct {
	Success      bool         `json:"success"`
	Query        string       `json:"query"`
	ResultsCount int          `json:"results_count"`
	Songs        []SongRecord `json:"songs"`
}

type SongResponse struct {
	Success bool        `json:"success"`
	Song    *SongRecord `json:"song"`
}

type AudioResponse struct {
	Success  bool   `json:"success"`
	VideoID  string `json:"video_id"`
	AudioURL string `json:"audio_url"`
	Message  string `json:"message,omitempty"`
}

type PlaylistResponse struct {
	Success  bool            `json:"success"`
	Playlist *PlaylistDetail `json:"playlist"`
}

type HomepageData struct {
	TrendingMusic []SongRecord `json:"trending_music"`
	Categories    []string     `json:"categories"`
	LastUpdated   string       `json:"last_updated"`
}

type HomepageResponse struct {
	Success bool          `json:"success"`
	Data    *HomepageData `json:"data"`
	Message string        `json:"message,omitempty"`
}

type TrendingResponse struct {
	Success        bool             `json:"success"`
	Country        string           `json:"country"`
	TotalPlaylists int              `json:"total_playlists"`
	Playlists      []PlaylistRecord `json:"playlists"`
	Message        string           `json:"message,omitempty"`
}

type RecommendedResponse struct {
	Success         bool         `json:"success"`
	VideoID         string       `json:"video_id"`
	Recommendations []SongRecord `json:"recommendations"`
}

type CategoryResponse struct {
	Success  bool         `json:"success"`
	Category string       `json:"category"`
	Videos   []SongRecord `json:"videos"`
}
