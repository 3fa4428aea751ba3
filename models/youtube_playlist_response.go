package models

// YoutubePlaylistResponse is the shape returned by GET /playlistItems.
type YoutubePlaylistResponse struct {
	Items         []YoutubePlaylistItem `json:"items"`
	NextPageToken string                `json:"nextPageToken,omitempty"`
}

type YoutubePlaylistItem struct {
	Snippet YoutubeSnippet `json:"snippet"`
}
