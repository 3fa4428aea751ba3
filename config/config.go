package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Media Refresher config
const MEDIA_REFRESHER_SCHEDULE_MINUTES = 60

// Default duration assigned to refreshed external videos; the platform does
// not report one.
const EXTERNAL_VIDEO_DURATION_SECONDS = 150

// Recommendation config
// One bonus point per this many views. The divisor and the shortlist size
// come from the widget behavior; tune here, not at call sites.
const RECOMMENDATION_VIEW_BONUS_DIVISOR = 1000
const RECOMMENDATION_SHORTLIST_SIZE = 2

// Sizzle reel cutoff: internal videos at or under this duration loop as reels.
const SIZZLE_REEL_MAX_SECONDS = 7

// YouTube Data API
const YOUTUBE_ENDPOINT_BASE_V3 = "https://www.googleapis.com/youtube/v3"
const YOUTUBE_API_KEY_ENV = "YOUTUBE_API_KEY"
const YOUTUBE_MAX_RESULTS = 50

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const STAFF_SCHEDULES_RESOURCE = "staff_schedules.json"
const VIDEOS_RESOURCE = "videos.json"
const YOUTUBE_SOURCES_RESOURCE = "youtube_sources.json"
const CATEGORIES_RESOURCE = "categories.json"
const YOUTUBE_SEARCH_RESPONSE_RESOURCE = "youtube_search_response.json"
const YOUTUBE_PLAYLIST_RESPONSE_RESOURCE = "youtube_playlist_response.json"
const YOUTUBE_STATS_RESPONSE_RESOURCE = "youtube_stats_response.json"

// LoadDotEnv loads a .env file when present so the YouTube key can live
// outside the shell environment. A missing file is fine.
func LoadDotEnv() {
	if err := godotenv.Load(filepath.Join(BaseDir(), ".env")); err != nil {
		log.Printf("[Config] No .env file loaded: %v", err)
	}
}

// YoutubeAPIKey returns the configured YouTube Data API key, empty if unset.
func YoutubeAPIKey() string {
	return os.Getenv(YOUTUBE_API_KEY_ENV)
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}
