package youtube

import (
	"footworks-server/models"
)

// YoutubeAPI defines the interface for interacting with the YouTube Data API
type YoutubeAPI interface {
	SearchChannelVideos(channelID string) (*models.YoutubeSearchResponse, error)
	GetPlaylistItems(playlistID string) (*models.YoutubePlaylistResponse, error)
	GetVideoStatistics(videoIDs []string) (*models.YoutubeStatsResponse, error)
	SetCredentials(apiKey string)
}
