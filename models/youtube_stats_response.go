package models

import (
	"encoding/json"
	"strconv"
)

// YoutubeStatsResponse is the shape returned by GET /videos?part=statistics.
type YoutubeStatsResponse struct {
	Items []YoutubeStatsItem `json:"items"`
}

type YoutubeStatsItem struct {
	ID         string            `json:"id"`
	Statistics YoutubeStatistics `json:"statistics"`
}

// YoutubeStatistics holds the per-video counters. The API serializes the
// counts as strings.
type YoutubeStatistics struct {
	ViewCount int `json:"viewCount"`
	LikeCount int `json:"likeCount,omitempty"`
}

// UnmarshalJSON custom unmarshaler to convert the string counters to ints.
func (s *YoutubeStatistics) UnmarshalJSON(data []byte) error {
	// Create an alias to avoid infinite recursion.
	type Alias YoutubeStatistics
	aux := &struct {
		ViewCount interface{} `json:"viewCount"`
		LikeCount interface{} `json:"likeCount"`
		*Alias
	}{
		Alias: (*Alias)(s),
	}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	s.ViewCount = countToInt(aux.ViewCount)
	s.LikeCount = countToInt(aux.LikeCount)
	return nil
}

func countToInt(v interface{}) int {
	switch val := v.(type) {
	case float64:
		return int(val)
	case string:
		n, err := strconv.Atoi(val)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0 // Default value in case of error.
	}
}
