package media

import "fmt"

// Video represents one piece of playable content, either internal (seeded
// from the videos table) or external (pulled from a YouTube source).
type Video struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Tags            []string `json:"tags"`
	DurationSeconds int      `json:"duration_seconds,omitempty"`
	IsExternal      bool     `json:"is_external"`
	ThumbnailURL    string   `json:"thumbnail_url,omitempty"`

	// ViewCount is nil when statistics were unavailable for this video.
	ViewCount *int `json:"view_count,omitempty"`
}

func (v *Video) ToString() string {
	return fmt.Sprintf("Video(id=%s, title=%s, external=%v)",
		v.ID, v.Title, v.IsExternal)
}
