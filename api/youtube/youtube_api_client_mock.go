package youtube

import (
	"fmt"

	"footworks-server/config"
	"footworks-server/models"
	"footworks-server/util"
)

// YoutubeApiClientMock embeds mocked logic for the youtube api client,
// serving canned responses from the resources directory.
type YoutubeApiClientMock struct {
}

// NewYoutubeApiClientMock creates a new instance of YoutubeApiClientMock
func NewYoutubeApiClientMock() *YoutubeApiClientMock {
	return &YoutubeApiClientMock{}
}

// SearchChannelVideos serves the canned channel search response.
func (c *YoutubeApiClientMock) SearchChannelVideos(channelID string) (*models.YoutubeSearchResponse, error) {
	response, err := util.ReadYoutubeSearchResponseFromJSON(
		config.GetResourcePath(config.YOUTUBE_SEARCH_RESPONSE_RESOURCE))
	if err != nil {
		fmt.Println("Could not read youtube search response from json")
		return nil, err
	}
	return response, nil
}

// GetPlaylistItems serves the canned playlist response.
func (c *YoutubeApiClientMock) GetPlaylistItems(playlistID string) (*models.YoutubePlaylistResponse, error) {
	response, err := util.ReadYoutubePlaylistResponseFromJSON(
		config.GetResourcePath(config.YOUTUBE_PLAYLIST_RESPONSE_RESOURCE))
	if err != nil {
		fmt.Println("Could not read youtube playlist response from json")
		return nil, err
	}
	return response, nil
}

// GetVideoStatistics serves the canned statistics response.
func (c *YoutubeApiClientMock) GetVideoStatistics(videoIDs []string) (*models.YoutubeStatsResponse, error) {
	response, err := util.ReadYoutubeStatsResponseFromJSON(
		config.GetResourcePath(config.YOUTUBE_STATS_RESPONSE_RESOURCE))
	if err != nil {
		fmt.Println("Could not read youtube stats response from json")
		return nil, err
	}
	return response, nil
}

// SetCredentials is a no-op on the mock.
func (c *YoutubeApiClientMock) SetCredentials(apiKey string) {
}
