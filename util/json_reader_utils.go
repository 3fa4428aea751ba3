package util

import (
    "encoding/json"
    "fmt"
    "io/ioutil"

    "footworks-server/models"
    "footworks-server/models/media"
    "footworks-server/models/selector"
    "footworks-server/models/staff"
)

// ReadStaffSchedulesFromJSON loads the seed staff schedules from JSON on disk.
func ReadStaffSchedulesFromJSON(filePath string) ([]staff.StaffSchedule, error) {
    data, err := ioutil.ReadFile(filePath)
    if err != nil {
        return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
    }
    var schedules []staff.StaffSchedule
    if err := json.Unmarshal(data, &schedules); err != nil {
        return nil, fmt.Errorf("failed to unmarshal staff schedules: %w", err)
    }
    return schedules, nil
}

// ReadVideosFromJSON loads the curated video catalog from JSON on disk.
func ReadVideosFromJSON(filePath string) ([]media.Video, error) {
    data, err := ioutil.ReadFile(filePath)
    if err != nil {
        return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
    }
    var videos []media.Video
    if err := json.Unmarshal(data, &videos); err != nil {
        return nil, fmt.Errorf("failed to unmarshal videos: %w", err)
    }
    return videos, nil
}

// ReadYoutubeSourcesFromJSON loads the configured YouTube sources from JSON on disk.
func ReadYoutubeSourcesFromJSON(filePath string) ([]media.YoutubeSource, error) {
    data, err := ioutil.ReadFile(filePath)
    if err != nil {
        return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
    }
    var sources []media.YoutubeSource
    if err := json.Unmarshal(data, &sources); err != nil {
        return nil, fmt.Errorf("failed to unmarshal youtube sources: %w", err)
    }
    return sources, nil
}

// ReadCategoriesFromJSON loads the shoe selector categories from JSON on disk.
func ReadCategoriesFromJSON(filePath string) ([]selector.Category, error) {
    data, err := ioutil.ReadFile(filePath)
    if err != nil {
        return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
    }
    var categories []selector.Category
    if err := json.Unmarshal(data, &categories); err != nil {
        return nil, fmt.Errorf("failed to unmarshal categories: %w", err)
    }
    return categories, nil
}

// ReadYoutubeSearchResponseFromJSON loads a YoutubeSearchResponse from JSON on disk.
func ReadYoutubeSearchResponseFromJSON(filePath string) (*models.YoutubeSearchResponse, error) {
    data, err := ioutil.ReadFile(filePath)
    if err != nil {
        return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
    }
    var resp models.YoutubeSearchResponse
    if err := json.Unmarshal(data, &resp); err != nil {
        return nil, fmt.Errorf("failed to unmarshal YoutubeSearchResponse: %w", err)
    }
    return &resp, nil
}

// ReadYoutubePlaylistResponseFromJSON loads a YoutubePlaylistResponse from JSON on disk.
func ReadYoutubePlaylistResponseFromJSON(filePath string) (*models.YoutubePlaylistResponse, error) {
    data, err := ioutil.ReadFile(filePath)
    if err != nil {
        return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
    }
    var resp models.YoutubePlaylistResponse
    if err := json.Unmarshal(data, &resp); err != nil {
        return nil, fmt.Errorf("failed to unmarshal YoutubePlaylistResponse: %w", err)
    }
    return &resp, nil
}

// ReadYoutubeStatsResponseFromJSON loads a YoutubeStatsResponse from JSON on disk.
func ReadYoutubeStatsResponseFromJSON(filePath string) (*models.YoutubeStatsResponse, error) {
    data, err := ioutil.ReadFile(filePath)
    if err != nil {
        return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
    }
    var resp models.YoutubeStatsResponse
    if err := json.Unmarshal(data, &resp); err != nil {
        return nil, fmt.Errorf("failed to unmarshal YoutubeStatsResponse: %w", err)
    }
    return &resp, nil
}
