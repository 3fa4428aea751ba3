package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"footworks-server/models/media"
	services "footworks-server/service"
)

const (
	TAG_QUERY_ARG   = "tag"
	LIMIT_QUERY_ARG = "limit"
)

// ViewLogRequest is the POST body for recording a play event.
type ViewLogRequest struct {
	UserID               string `json:"user_id"`
	EventType            string `json:"event_type"`
	WatchDurationSeconds int    `json:"watch_duration_seconds"`
}

// VideoItem decorates a catalog entry with the player hints the widget needs.
type VideoItem struct {
	media.Video
	IsSizzleReel bool `json:"is_sizzle_reel"`
}

type MediaHandler struct {
	mediaService *services.MediaService
}

func NewMediaHandler(mediaService *services.MediaService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

// GetVideos handles GET /v1/media/videos?tag=...
func (h *MediaHandler) GetVideos(w http.ResponseWriter, r *http.Request) {
	tag := r.URL.Query().Get(TAG_QUERY_ARG)

	videos, err := h.mediaService.GetVideos(tag)
	if err != nil {
		log.Println("Error loading videos:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	items := make([]VideoItem, 0, len(videos))
	for _, v := range videos {
		items = append(items, VideoItem{Video: v, IsSizzleReel: services.IsSizzleReel(v)})
	}
	writeJSON(w, items)
}

// GetTags handles GET /v1/media/tags
func (h *MediaHandler) GetTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.mediaService.GetTags()
	if err != nil {
		log.Println("Error loading tags:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, tags)
}

// GetRelatedVideos handles GET /v1/media/videos/{id}/related?limit=N
func (h *MediaHandler) GetRelatedVideos(w http.ResponseWriter, r *http.Request) {
	videoID := mux.Vars(r)["id"]

	limit := 0
	if v := r.URL.Query().Get(LIMIT_QUERY_ARG); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "Invalid argument "+LIMIT_QUERY_ARG, http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	related, err := h.mediaService.GetRelatedVideos(videoID, limit)
	if err != nil {
		log.Println("Error ranking related videos:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, related)
}

// LogView handles POST /v1/media/videos/{id}/views
func (h *MediaHandler) LogView(w http.ResponseWriter, r *http.Request) {
	videoID := mux.Vars(r)["id"]

	var req ViewLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.mediaService.LogView(videoID, req.UserID, req.EventType, req.WatchDurationSeconds); err != nil {
		if errors.Is(err, services.ErrInvalidRequest) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Println("Error logging view:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]string{"status": "recorded"})
}
