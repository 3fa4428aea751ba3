package services

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"footworks-server/config"
	"footworks-server/dao/redis"
	"footworks-server/models/media"
	"footworks-server/recommend"
)

// TAG_ALL is the catch-all tag that disables filtering.
const TAG_ALL = "All"

// fixedTagOrder pins the presentation order of catalog tags. Tags not listed
// here are excluded from the tag strip even when content carries them.
var fixedTagOrder = []string{
	TAG_ALL,
	"FootWorksMiami",
	"SizzleReel",
	"Latest",
	"Store",
	"NewtonRunningFormFriday",
	"CathyParbst-Accurso",
}

type MediaService struct {
	mediaDao *redis.RedisMediaDAO
}

// NewMediaService constructs a new MediaService with Redis dependency injection.
func NewMediaService(mediaDao *redis.RedisMediaDAO) *MediaService {
	return &MediaService{
		mediaDao: mediaDao,
	}
}

// GetVideos returns the combined catalog, optionally filtered by tag.
// Tag matching is case-insensitive; an empty tag or TAG_ALL returns everything.
func (ms *MediaService) GetVideos(tag string) ([]media.Video, error) {
	videos, err := ms.mediaDao.ListVideos()
	if err != nil {
		return nil, err
	}
	if tag == "" || strings.EqualFold(tag, TAG_ALL) {
		return videos, nil
	}

	filtered := make([]media.Video, 0, len(videos))
	for _, v := range videos {
		if hasTag(v, tag) {
			filtered = append(filtered, v)
		}
	}
	return filtered, nil
}

// IsSizzleReel reports whether a catalog entry plays as a short looping reel
// rather than a full video. Only internal content qualifies.
func IsSizzleReel(v media.Video) bool {
	return !v.IsExternal &&
		v.DurationSeconds > 0 &&
		v.DurationSeconds <= config.SIZZLE_REEL_MAX_SECONDS
}

// GetTags returns the tag strip for the current catalog: the fixed order,
// cut down to the tags content actually carries. TAG_ALL always leads.
func (ms *MediaService) GetTags() ([]string, error) {
	videos, err := ms.mediaDao.ListVideos()
	if err != nil {
		return nil, err
	}

	present := map[string]struct{}{TAG_ALL: {}}
	for _, v := range videos {
		for _, t := range v.Tags {
			present[t] = struct{}{}
		}
	}

	tags := make([]string, 0, len(fixedTagOrder))
	for _, t := range fixedTagOrder {
		if _, ok := present[t]; ok {
			tags = append(tags, t)
		}
	}
	return tags, nil
}

// GetVideo returns a single catalog entry, or nil when unknown.
func (ms *MediaService) GetVideo(videoID string) (*media.Video, error) {
	return ms.mediaDao.GetVideo(videoID)
}

// GetRelatedVideos ranks the rest of the catalog against one video and
// returns the shortlist. An unknown video resolves to an empty shortlist.
func (ms *MediaService) GetRelatedVideos(videoID string, limit int) ([]media.Video, error) {
	current, err := ms.mediaDao.GetVideo(videoID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		log.Printf("[MediaService] No video found for id=%s", videoID)
		return []media.Video{}, nil
	}

	videos, err := ms.mediaDao.ListVideos()
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = config.RECOMMENDATION_SHORTLIST_SIZE
	}

	byID := make(map[string]media.Video, len(videos))
	pool := make([]recommend.Item, 0, len(videos))
	for _, v := range videos {
		byID[v.ID] = v
		pool = append(pool, ms.toRankerItem(v))
	}

	currentItem := ms.toRankerItem(*current)
	ranked := recommend.Rank(&currentItem, pool, limit, config.RECOMMENDATION_VIEW_BONUS_DIVISOR)

	related := make([]media.Video, 0, len(ranked))
	for _, r := range ranked {
		related = append(related, byID[r.Item.ID])
	}
	return related, nil
}

// LogView records a play event for internal content and bumps the counter.
// External videos carry their own platform statistics, so logging them is a
// no-op.
func (ms *MediaService) LogView(videoID, userID, eventType string, watchDurationSeconds int) error {
	video, err := ms.mediaDao.GetVideo(videoID)
	if err != nil {
		return err
	}
	if video == nil {
		return fmt.Errorf("%w: unknown video %q", ErrInvalidRequest, videoID)
	}
	if video.IsExternal {
		log.Printf("[MediaService] Skipping view log for external video id=%s", videoID)
		return nil
	}

	entry := media.ViewLog{
		ID:                   uuid.NewString(),
		VideoID:              videoID,
		UserID:               userID,
		EventType:            eventType,
		WatchDurationSeconds: watchDurationSeconds,
		CreatedAt:            time.Now().UTC().Format(time.RFC3339),
	}
	if err := ms.mediaDao.AddViewLog(entry); err != nil {
		return err
	}

	if _, err := ms.mediaDao.IncrementViewCount(videoID); err != nil {
		return err
	}
	return nil
}

// toRankerItem maps a catalog entry to the ranker's input, resolving the
// popularity signal for internal videos from the local counter.
func (ms *MediaService) toRankerItem(v media.Video) recommend.Item {
	return recommend.Item{
		ID:        v.ID,
		Tags:      v.Tags,
		ViewCount: ms.resolveViewCount(v),
	}
}

func (ms *MediaService) resolveViewCount(v media.Video) *int {
	if v.ViewCount != nil {
		return v.ViewCount
	}
	if v.IsExternal {
		return nil
	}
	count, err := ms.mediaDao.GetViewCount(v.ID)
	if err != nil || count == 0 {
		return nil
	}
	return &count
}

func hasTag(v media.Video, tag string) bool {
	for _, t := range v.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}
