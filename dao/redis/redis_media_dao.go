package redis

import (
	"encoding/json"
	"fmt"
	"log"
	"sort"

	"footworks-server/db"
	"footworks-server/models/media"
)

const VIDEO_KEY_FORMAT_V1 = "video_v1:%s"
const VIDEO_KEY_PATTERN_V1 = "video_v1:*"
const YOUTUBE_SOURCE_KEY_FORMAT_V1 = "youtube_source_v1:%s"
const YOUTUBE_SOURCE_KEY_PATTERN_V1 = "youtube_source_v1:*"
const VIDEO_VIEWS_KEY_FORMAT_V1 = "video_views_v1:%s"
const VIDEO_LOG_KEY_FORMAT_V1 = "video_log_v1:%s:%s"
const VIDEO_LOG_KEY_PATTERN_FORMAT_V1 = "video_log_v1:%s:*"

// RedisMediaDAO handles video catalog, source config, and view analytics
// operations using Redis.
type RedisMediaDAO struct {
	client db.RedisClient
}

// NewRedisMediaDAO initializes a RedisMediaDAO with the Redis client.
func NewRedisMediaDAO(client db.RedisClient) *RedisMediaDAO {
	return &RedisMediaDAO{client: client}
}

// UpsertVideo stores the video as JSON under its versioned key.
func (dao *RedisMediaDAO) UpsertVideo(v media.Video) error {
	key := fmt.Sprintf(VIDEO_KEY_FORMAT_V1, v.ID)
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal video %s: %w", v.ID, err)
	}
	if err := dao.client.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to set video in redis: %w", err)
	}
	return nil
}

// GetVideo retrieves one video by ID; a missing key returns (nil, nil).
func (dao *RedisMediaDAO) GetVideo(id string) (*media.Video, error) {
	key := fmt.Sprintf(VIDEO_KEY_FORMAT_V1, id)
	str, err := dao.client.Get(key)
	if err != nil {
		if db.IsMissingKey(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get video from redis: %w", err)
	}
	var v media.Video
	if err := json.Unmarshal([]byte(str), &v); err != nil {
		return nil, fmt.Errorf("failed to unmarshal video JSON: %w", err)
	}
	return &v, nil
}

// DeleteVideo removes a video from the catalog.
func (dao *RedisMediaDAO) DeleteVideo(id string) error {
	key := fmt.Sprintf(VIDEO_KEY_FORMAT_V1, id)
	if err := dao.client.Del(key); err != nil {
		return fmt.Errorf("failed to delete video key %s: %w", key, err)
	}
	log.Printf("[RedisMediaDAO] Deleted video %s", id)
	return nil
}

// ListVideos returns the whole catalog. External (dynamic) content sorts
// ahead of internal content, matching how the combined browser lists it, and
// each group is ordered by ID so repeated reads are deterministic.
func (dao *RedisMediaDAO) ListVideos() ([]media.Video, error) {
	keys, err := dao.client.Keys(VIDEO_KEY_PATTERN_V1)
	if err != nil {
		return nil, fmt.Errorf("failed to list video keys: %w", err)
	}

	videos := make([]media.Video, 0, len(keys))
	for _, k := range keys {
		str, err := dao.client.Get(k)
		if err != nil {
			log.Printf("[RedisMediaDAO] Skipping key %s due to error: %v", k, err)
			continue
		}
		var v media.Video
		if err := json.Unmarshal([]byte(str), &v); err != nil {
			log.Printf("[RedisMediaDAO] Skipping undecodable video at %s: %v", k, err)
			continue
		}
		videos = append(videos, v)
	}

	sort.Slice(videos, func(i, j int) bool {
		if videos[i].IsExternal != videos[j].IsExternal {
			return videos[i].IsExternal
		}
		return videos[i].ID < videos[j].ID
	})
	return videos, nil
}

// UpsertYoutubeSource stores one dynamic source configuration.
func (dao *RedisMediaDAO) UpsertYoutubeSource(s media.YoutubeSource) error {
	key := fmt.Sprintf(YOUTUBE_SOURCE_KEY_FORMAT_V1, s.ID)
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal youtube source %s: %w", s.ID, err)
	}
	if err := dao.client.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to set youtube source in redis: %w", err)
	}
	return nil
}

// ListYoutubeSources returns the configured sources ordered by name.
func (dao *RedisMediaDAO) ListYoutubeSources() ([]media.YoutubeSource, error) {
	keys, err := dao.client.Keys(YOUTUBE_SOURCE_KEY_PATTERN_V1)
	if err != nil {
		return nil, fmt.Errorf("failed to list youtube source keys: %w", err)
	}

	sources := make([]media.YoutubeSource, 0, len(keys))
	for _, k := range keys {
		str, err := dao.client.Get(k)
		if err != nil {
			log.Printf("[RedisMediaDAO] Skipping key %s due to error: %v", k, err)
			continue
		}
		var s media.YoutubeSource
		if err := json.Unmarshal([]byte(str), &s); err != nil {
			log.Printf("[RedisMediaDAO] Skipping undecodable source at %s: %v", k, err)
			continue
		}
		sources = append(sources, s)
	}

	sort.Slice(sources, func(i, j int) bool {
		return sources[i].Name < sources[j].Name
	})
	return sources, nil
}

// IncrementViewCount bumps the play counter for a video and returns the new
// total.
func (dao *RedisMediaDAO) IncrementViewCount(videoID string) (int64, error) {
	key := fmt.Sprintf(VIDEO_VIEWS_KEY_FORMAT_V1, videoID)
	count, err := dao.client.IncrBy(key, 1)
	if err != nil {
		return 0, fmt.Errorf("failed to increment view count for %s: %w", videoID, err)
	}
	return count, nil
}

// GetViewCount reads the play counter for a video; missing counter means zero.
func (dao *RedisMediaDAO) GetViewCount(videoID string) (int, error) {
	key := fmt.Sprintf(VIDEO_VIEWS_KEY_FORMAT_V1, videoID)
	str, err := dao.client.Get(key)
	if err != nil {
		if db.IsMissingKey(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get view count for %s: %w", videoID, err)
	}
	var count int
	if _, err := fmt.Sscanf(str, "%d", &count); err != nil {
		return 0, fmt.Errorf("view count at %s is not an integer: %w", key, err)
	}
	return count, nil
}

// AddViewLog records one play event.
func (dao *RedisMediaDAO) AddViewLog(entry media.ViewLog) error {
	key := fmt.Sprintf(VIDEO_LOG_KEY_FORMAT_V1, entry.VideoID, entry.ID)
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal view log %s: %w", entry.ID, err)
	}
	if err := dao.client.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to set view log in redis: %w", err)
	}
	return nil
}

// ListViewLogsForVideo returns the recorded play events for one video.
func (dao *RedisMediaDAO) ListViewLogsForVideo(videoID string) ([]media.ViewLog, error) {
	pattern := fmt.Sprintf(VIDEO_LOG_KEY_PATTERN_FORMAT_V1, videoID)
	keys, err := dao.client.Keys(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list view log keys: %w", err)
	}

	logs := make([]media.ViewLog, 0, len(keys))
	for _, k := range keys {
		str, err := dao.client.Get(k)
		if err != nil {
			log.Printf("[RedisMediaDAO] Skipping key %s due to error: %v", k, err)
			continue
		}
		var entry media.ViewLog
		if err := json.Unmarshal([]byte(str), &entry); err != nil {
			log.Printf("[RedisMediaDAO] Skipping undecodable view log at %s: %v", k, err)
			continue
		}
		logs = append(logs, entry)
	}

	sort.Slice(logs, func(i, j int) bool {
		return logs[i].CreatedAt < logs[j].CreatedAt
	})
	return logs, nil
}
