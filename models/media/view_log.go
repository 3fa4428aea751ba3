package media

// ViewLog is one recorded play event for an internal video.
type ViewLog struct {
	ID                   string `json:"id"`
	VideoID              string `json:"video_id"`
	UserID               string `json:"user_id"`
	EventType            string `json:"event_type"`
	WatchDurationSeconds int    `json:"watch_duration_seconds"`
	CreatedAt            string `json:"created_at"`
}
