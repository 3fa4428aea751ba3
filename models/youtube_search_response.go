package models

// YoutubeSearchResponse is the shape returned by GET /search when pulling a
// channel's recent uploads.
type YoutubeSearchResponse struct {
	Items         []YoutubeSearchItem `json:"items"`
	NextPageToken string              `json:"nextPageToken,omitempty"`
}

type YoutubeSearchItem struct {
	ID      YoutubeSearchItemID `json:"id"`
	Snippet YoutubeSnippet      `json:"snippet"`
}

type YoutubeSearchItemID struct {
	Kind    string `json:"kind"`
	VideoID string `json:"videoId"`
}

// YoutubeSnippet is shared by the search and playlistItems responses; only
// playlist items carry a ResourceID.
type YoutubeSnippet struct {
	Title       string             `json:"title"`
	Description string             `json:"description,omitempty"`
	ChannelID   string             `json:"channelId,omitempty"`
	ResourceID  *YoutubeResourceID `json:"resourceId,omitempty"`
}

type YoutubeResourceID struct {
	Kind    string `json:"kind"`
	VideoID string `json:"videoId"`
}
