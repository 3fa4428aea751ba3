package services

import (
	"log"
	"time"

	"footworks-server/api/youtube"
	"footworks-server/config"
	"footworks-server/dao/redis"
	"footworks-server/models"
	"footworks-server/models/media"
)

// unavailableTitles are the placeholder titles YouTube returns for content
// that can no longer be played.
var unavailableTitles = map[string]struct{}{
	"Private video":     {},
	"Deleted video":     {},
	"Video unavailable": {},
}

// fetchedVideo is one playable entry pulled from a source, before statistics
// are merged in. SourceName becomes the entry's tag in the catalog.
type fetchedVideo struct {
	ID           string
	Title        string
	SourceName   string
	ThumbnailURL string
}

// MediaRefresherService periodically refreshes the external video catalog
// from the configured YouTube sources.
type MediaRefresherService struct {
	mediaDao   *redis.RedisMediaDAO
	youtubeAPI youtube.YoutubeAPI
}

// NewMediaRefresherService constructs a new Refresher with dependencies.
func NewMediaRefresherService(
	mediaDao *redis.RedisMediaDAO,
	youtubeAPI youtube.YoutubeAPI,
) *MediaRefresherService {
	return &MediaRefresherService{
		mediaDao:   mediaDao,
		youtubeAPI: youtubeAPI,
	}
}

// StartPeriodicJob launches the background loop at the given interval.
func (mr *MediaRefresherService) StartPeriodicJob(interval time.Duration) {
	go mr.startPeriodicJob(interval)
}

func (mr *MediaRefresherService) startPeriodicJob(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		log.Println("[MediaRefresherService] Running periodic media refresher job.")
		if err := mr.RefreshMediaData(); err != nil {
			log.Printf("[MediaRefresherService] RefreshMediaData returned error: %v", err)
		} else {
			log.Println("[MediaRefresherService] RefreshMediaData completed successfully.")
		}
	}
}

// RefreshMediaData orchestrates the three steps: fetch per source, merge
// statistics, upsert into the catalog. A source that fails is logged and
// skipped so the remaining sources still refresh.
func (mr *MediaRefresherService) RefreshMediaData() error {
	sources, err := mr.mediaDao.ListYoutubeSources()
	if err != nil {
		log.Printf("[MediaRefresherService] Error listing youtube sources: %v", err)
		return err
	}
	log.Printf("[MediaRefresherService] Refreshing %d sources", len(sources))

	fetched := mr.collectSourceVideos(sources)
	if len(fetched) == 0 {
		log.Println("[MediaRefresherService] No playable videos fetched; exiting.")
		return nil
	}

	viewCounts := mr.fetchViewCounts(fetched)
	mr.upsertVideos(fetched, viewCounts)
	return nil
}

// collectSourceVideos pulls the playable entries from every source, using a
// channel search or a playlist read depending on the source kind.
func (mr *MediaRefresherService) collectSourceVideos(sources []media.YoutubeSource) []fetchedVideo {
	seen := make(map[string]struct{})
	var fetched []fetchedVideo

	for _, src := range sources {
		log.Printf("[MediaRefresherService] Fetching source id=%s name=%q channel_search=%v",
			src.ID, src.Name, src.IsChannelSearch)

		var entries []fetchedVideo
		var err error
		if src.IsChannelSearch {
			entries, err = mr.fetchChannelVideos(src.ID)
		} else {
			entries, err = mr.fetchPlaylistVideos(src.ID)
		}
		if err != nil {
			log.Printf("[MediaRefresherService] Failed fetching source %s: %v", src.ID, err)
			continue
		}

		for _, entry := range entries {
			if entry.ID == "" {
				continue
			}
			entry.SourceName = src.Name
			if _, unavailable := unavailableTitles[entry.Title]; unavailable {
				log.Printf("[MediaRefresherService] Skipping unavailable video id=%s", entry.ID)
				continue
			}
			if _, dup := seen[entry.ID]; dup {
				continue
			}
			seen[entry.ID] = struct{}{}
			fetched = append(fetched, entry)
		}
	}
	return fetched
}

func (mr *MediaRefresherService) fetchChannelVideos(channelID string) ([]fetchedVideo, error) {
	resp, err := mr.youtubeAPI.SearchChannelVideos(channelID)
	if err != nil {
		return nil, err
	}

	entries := make([]fetchedVideo, 0, len(resp.Items))
	for _, item := range resp.Items {
		entries = append(entries, fetchedVideo{
			ID:           item.ID.VideoID,
			Title:        item.Snippet.Title,
			ThumbnailURL: thumbnailURL(item.ID.VideoID),
		})
	}
	return entries, nil
}

func (mr *MediaRefresherService) fetchPlaylistVideos(playlistID string) ([]fetchedVideo, error) {
	resp, err := mr.youtubeAPI.GetPlaylistItems(playlistID)
	if err != nil {
		return nil, err
	}

	entries := make([]fetchedVideo, 0, len(resp.Items))
	for _, item := range resp.Items {
		entries = append(entries, fetchedVideo{
			ID:           playlistItemVideoID(item),
			Title:        item.Snippet.Title,
			ThumbnailURL: thumbnailURL(playlistItemVideoID(item)),
		})
	}
	return entries, nil
}

// fetchViewCounts merges in statistics for the fetched IDs. A statistics
// failure degrades to an empty map so the refresh still upserts titles.
func (mr *MediaRefresherService) fetchViewCounts(fetched []fetchedVideo) map[string]int {
	ids := make([]string, 0, len(fetched))
	for _, f := range fetched {
		ids = append(ids, f.ID)
	}

	log.Printf("[MediaRefresherService] Fetching statistics for %d videos", len(ids))
	resp, err := mr.youtubeAPI.GetVideoStatistics(ids)
	if err != nil {
		log.Printf("[MediaRefresherService] GetVideoStatistics failed: %v", err)
		return map[string]int{}
	}

	counts := make(map[string]int, len(resp.Items))
	for _, item := range resp.Items {
		counts[item.ID] = item.Statistics.ViewCount
	}
	return counts
}

func (mr *MediaRefresherService) upsertVideos(fetched []fetchedVideo, viewCounts map[string]int) {
	for _, f := range fetched {
		video := media.Video{
			ID:              f.ID,
			Title:           f.Title,
			Tags:            []string{f.SourceName},
			DurationSeconds: config.EXTERNAL_VIDEO_DURATION_SECONDS,
			IsExternal:      true,
			ThumbnailURL:    f.ThumbnailURL,
		}
		if count, ok := viewCounts[f.ID]; ok {
			video.ViewCount = &count
		}

		if err := mr.mediaDao.UpsertVideo(video); err != nil {
			log.Printf("[MediaRefresherService] Upsert failed for %s: %v", f.ID, err)
		} else {
			log.Printf("[MediaRefresherService] Successfully upserted video %s", f.ID)
		}
	}
}

func playlistItemVideoID(item models.YoutubePlaylistItem) string {
	if item.Snippet.ResourceID == nil {
		return ""
	}
	return item.Snippet.ResourceID.VideoID
}

func thumbnailURL(videoID string) string {
	if videoID == "" {
		return ""
	}
	return "https://i.ytimg.com/vi/" + videoID + "/hqdefault.jpg"
}
