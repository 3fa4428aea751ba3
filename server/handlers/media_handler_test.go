package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"

	"footworks-server/dao/redis"
	"footworks-server/db"
	"footworks-server/models/media"
	services "footworks-server/service"
)

func intPtr(v int) *int {
	return &v
}

func newMediaHandlerFixture(t *testing.T) (*MediaHandler, *redis.RedisMediaDAO) {
	t.Helper()
	mockClient := db.NewMockRedisClient(context.Background())
	mediaDao := redis.NewRedisMediaDAO(mockClient)
	handler := NewMediaHandler(services.NewMediaService(mediaDao))
	return handler, mediaDao
}

func TestMediaHandler_GetRelatedVideos(t *testing.T) {
	handler, mediaDao := newMediaHandlerFixture(t)
	for _, v := range []media.Video{
		{ID: "current", Tags: []string{"trail"}},
		{ID: "trail-popular", Tags: []string{"trail"}, ViewCount: intPtr(3000)},
		{ID: "unrelated", Tags: []string{"racing"}, ViewCount: intPtr(90000)},
	} {
		if err := mediaDao.UpsertVideo(v); err != nil {
			t.Fatalf("Failed to seed video: %v", err)
		}
	}

	req := httptest.NewRequest("GET", "/v1/media/videos/current/related", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "current"})
	rr := httptest.NewRecorder()

	handler.GetRelatedVideos(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}

	var result []media.Video
	if err := json.Unmarshal(rr.Body.Bytes(), &result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(result) != 1 || result[0].ID != "trail-popular" {
		t.Errorf("Expected [trail-popular], got %v", result)
	}
}

func TestMediaHandler_GetRelatedVideos_UnknownVideoIsEmptyOK(t *testing.T) {
	handler, _ := newMediaHandlerFixture(t)

	req := httptest.NewRequest("GET", "/v1/media/videos/ghost/related", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "ghost"})
	rr := httptest.NewRecorder()

	handler.GetRelatedVideos(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}

	var result []media.Video
	if err := json.Unmarshal(rr.Body.Bytes(), &result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(result) != 0 {
		t.Errorf("Expected empty shortlist, got %v", result)
	}
}

func TestMediaHandler_GetRelatedVideos_BadLimit(t *testing.T) {
	handler, _ := newMediaHandlerFixture(t)

	req := httptest.NewRequest("GET", "/v1/media/videos/current/related?limit=two", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "current"})
	rr := httptest.NewRecorder()

	handler.GetRelatedVideos(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}
}

func TestMediaHandler_LogView_UnknownVideo(t *testing.T) {
	handler, _ := newMediaHandlerFixture(t)

	req := httptest.NewRequest("POST", "/v1/media/videos/ghost/views",
		strings.NewReader(`{"user_id": "u-1", "event_type": "play"}`))
	req = mux.SetURLVars(req, map[string]string{"id": "ghost"})
	rr := httptest.NewRecorder()

	handler.LogView(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}
}

func TestMediaHandler_LogView_BadBody(t *testing.T) {
	handler, _ := newMediaHandlerFixture(t)

	req := httptest.NewRequest("POST", "/v1/media/videos/store-tour/views",
		strings.NewReader(`not-json`))
	req = mux.SetURLVars(req, map[string]string{"id": "store-tour"})
	rr := httptest.NewRecorder()

	handler.LogView(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}
}
