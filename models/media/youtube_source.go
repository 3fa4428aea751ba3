package media

// YoutubeSource is one configured dynamic content source: a channel feed
// (searched by channel ID) or a specific playlist.
type YoutubeSource struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	IsChannelSearch bool   `json:"is_channel_search"`
}
