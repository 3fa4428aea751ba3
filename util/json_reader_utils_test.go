package util

import (
	"io/ioutil"
	"os"
	"testing"
)

func createTempFile(t *testing.T, content string) string {
	t.Helper()
	tempFile, err := ioutil.TempFile("", "test*.json")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	_, err = tempFile.Write([]byte(content))
	if err != nil {
		t.Fatalf("Failed to write to temp file: %v", err)
	}
	tempFile.Close()
	return tempFile.Name()
}

func TestReadStaffSchedulesFromJSON(t *testing.T) {
	// Arrange
	content := `[
		{
			"id": 1,
			"staff_name": "Maya",
			"is_active": true,
			"availability": {"Mon": "9-5", "Thr": "10-2", "Sun": "off"}
		},
		{
			"id": 2,
			"staff_name": "Jonas",
			"is_active": false,
			"availability": "{\"Tue\": \"8-4\"}"
		}
	]`
	tempFile := createTempFile(t, content)
	defer os.Remove(tempFile)

	// Act
	schedules, err := ReadStaffSchedulesFromJSON(tempFile)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(schedules) != 2 {
		t.Fatalf("Expected 2 schedules, got %d", len(schedules))
	}
	if schedules[0].StaffName != "Maya" {
		t.Errorf("Expected StaffName 'Maya', got %s", schedules[0].StaffName)
	}
	if schedules[0].Availability["Thr"] != "10-2" {
		t.Errorf("Expected Thr range '10-2', got %s", schedules[0].Availability["Thr"])
	}
	// Legacy rows store the availability map as a JSON string.
	if schedules[1].Availability["Tue"] != "8-4" {
		t.Errorf("Expected Tue range '8-4', got %s", schedules[1].Availability["Tue"])
	}
}

func TestReadVideosFromJSON(t *testing.T) {
	// Arrange
	content := `[
		{
			"id": "internal-1",
			"title": "Lacing for wide feet",
			"tags": ["fit", "lacing"],
			"duration_seconds": 95,
			"is_external": false
		}
	]`
	tempFile := createTempFile(t, content)
	defer os.Remove(tempFile)

	// Act
	videos, err := ReadVideosFromJSON(tempFile)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(videos) != 1 {
		t.Fatalf("Expected 1 video, got %d", len(videos))
	}
	if videos[0].Title != "Lacing for wide feet" {
		t.Errorf("Expected Title 'Lacing for wide feet', got %s", videos[0].Title)
	}
	if len(videos[0].Tags) != 2 || videos[0].Tags[0] != "fit" {
		t.Errorf("Expected tags [fit lacing], got %v", videos[0].Tags)
	}
	if videos[0].ViewCount != nil {
		t.Errorf("Expected nil ViewCount for internal video, got %v", *videos[0].ViewCount)
	}
}

func TestReadYoutubeSourcesFromJSON(t *testing.T) {
	// Arrange
	content := `[
		{"id": "UCabc", "name": "RunRepeat", "is_channel_search": true},
		{"id": "PLxyz", "name": "Form drills", "is_channel_search": false}
	]`
	tempFile := createTempFile(t, content)
	defer os.Remove(tempFile)

	// Act
	sources, err := ReadYoutubeSourcesFromJSON(tempFile)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(sources) != 2 {
		t.Fatalf("Expected 2 sources, got %d", len(sources))
	}
	if !sources[0].IsChannelSearch {
		t.Errorf("Expected first source to be a channel search")
	}
	if sources[1].ID != "PLxyz" {
		t.Errorf("Expected ID 'PLxyz', got %s", sources[1].ID)
	}
}

func TestReadCategoriesFromJSON(t *testing.T) {
	// Arrange
	content := `[
		{"id": "speed", "title": "Speed", "blurb": "Race-day feel.", "img": "/img/speed.jpg"}
	]`
	tempFile := createTempFile(t, content)
	defer os.Remove(tempFile)

	// Act
	categories, err := ReadCategoriesFromJSON(tempFile)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(categories) != 1 {
		t.Fatalf("Expected 1 category, got %d", len(categories))
	}
	if categories[0].Title != "Speed" {
		t.Errorf("Expected Title 'Speed', got %s", categories[0].Title)
	}
}

func TestReadYoutubeStatsResponseFromJSON(t *testing.T) {
	// Arrange: the YouTube API returns viewCount as a string.
	content := `{
		"items": [
			{
				"id": "yt-1",
				"statistics": {"viewCount": "4200", "likeCount": "17"}
			}
		]
	}`
	tempFile := createTempFile(t, content)
	defer os.Remove(tempFile)

	// Act
	resp, err := ReadYoutubeStatsResponseFromJSON(tempFile)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(resp.Items) != 1 {
		t.Fatalf("Expected 1 item, got %d", len(resp.Items))
	}
	if resp.Items[0].Statistics.ViewCount != 4200 {
		t.Errorf("Expected ViewCount 4200, got %d", resp.Items[0].Statistics.ViewCount)
	}
}

func TestReadStaffSchedulesFromJSON_MissingFile(t *testing.T) {
	_, err := ReadStaffSchedulesFromJSON("does_not_exist.json")
	if err == nil {
		t.Errorf("Expected error for missing file, got nil")
	}
}
