package youtube

import (
	"net/url"
	"strconv"
	"strings"

	"footworks-server/api"
	"footworks-server/config"
	"footworks-server/models"
)

// YoutubeApiClient embeds the common HTTPClient
type YoutubeApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties

	apiKey string
}

// NewYoutubeApiClient creates a new instance of YoutubeApiClient
func NewYoutubeApiClient(httpClient *api.HTTPClient) *YoutubeApiClient {
	return &YoutubeApiClient{
		HTTPClient: httpClient,
	}
}

// SetCredentials stores the API key appended to every request.
func (c *YoutubeApiClient) SetCredentials(apiKey string) {
	c.apiKey = apiKey
}

func (c *YoutubeApiClient) baseQuery() url.Values {
	q := url.Values{}
	q.Set("key", c.apiKey)
	q.Set("maxResults", strconv.Itoa(config.YOUTUBE_MAX_RESULTS))
	return q
}

// SearchChannelVideos retrieves a channel's recent uploads, newest first.
func (c *YoutubeApiClient) SearchChannelVideos(channelID string) (*models.YoutubeSearchResponse, error) {
	q := c.baseQuery()
	q.Set("part", "snippet")
	q.Set("channelId", channelID)
	q.Set("type", "video")
	q.Set("order", "date")

	var response models.YoutubeSearchResponse
	if err := c.Request("GET", "/search", q, nil, nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// GetPlaylistItems retrieves the entries of one playlist.
func (c *YoutubeApiClient) GetPlaylistItems(playlistID string) (*models.YoutubePlaylistResponse, error) {
	q := c.baseQuery()
	q.Set("part", "snippet")
	q.Set("playlistId", playlistID)

	var response models.YoutubePlaylistResponse
	if err := c.Request("GET", "/playlistItems", q, nil, nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// GetVideoStatistics retrieves view counters for a batch of video IDs.
func (c *YoutubeApiClient) GetVideoStatistics(videoIDs []string) (*models.YoutubeStatsResponse, error) {
	q := c.baseQuery()
	q.Set("part", "statistics")
	q.Set("id", strings.Join(videoIDs, ","))

	var response models.YoutubeStatsResponse
	if err := c.Request("GET", "/videos", q, nil, nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
