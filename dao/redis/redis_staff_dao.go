package redis

import (
	"encoding/json"
	"fmt"
	"log"
	"sort"

	"footworks-server/db"
	"footworks-server/models/staff"
)

const STAFF_SCHEDULE_KEY_FORMAT_V1 = "staff_schedule_v1:%d"
const STAFF_SCHEDULE_KEY_PATTERN_V1 = "staff_schedule_v1:*"

// RedisStaffDAO handles staff schedule operations using Redis.
type RedisStaffDAO struct {
	client db.RedisClient
}

// NewRedisStaffDAO initializes a RedisStaffDAO with the Redis client.
func NewRedisStaffDAO(client db.RedisClient) *RedisStaffDAO {
	return &RedisStaffDAO{client: client}
}

// UpsertStaffSchedule stores the schedule as JSON under its versioned key.
func (dao *RedisStaffDAO) UpsertStaffSchedule(s staff.StaffSchedule) error {
	key := fmt.Sprintf(STAFF_SCHEDULE_KEY_FORMAT_V1, s.ID)
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal staff schedule %d: %w", s.ID, err)
	}
	if err := dao.client.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to set staff schedule in redis: %w", err)
	}
	return nil
}

// GetStaffSchedule retrieves one schedule by staff ID; a missing key returns
// (nil, nil) so absent staff reads as "nobody", not a failure.
func (dao *RedisStaffDAO) GetStaffSchedule(id int) (*staff.StaffSchedule, error) {
	key := fmt.Sprintf(STAFF_SCHEDULE_KEY_FORMAT_V1, id)
	str, err := dao.client.Get(key)
	if err != nil {
		if db.IsMissingKey(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get staff schedule from redis: %w", err)
	}
	var s staff.StaffSchedule
	if err := json.Unmarshal([]byte(str), &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal staff schedule JSON: %w", err)
	}
	return &s, nil
}

// ListStaffSchedules returns every stored schedule ordered by staff ID.
// Entries that fail to decode are logged and skipped so one bad row cannot
// take the whole roster down.
func (dao *RedisStaffDAO) ListStaffSchedules() ([]staff.StaffSchedule, error) {
	keys, err := dao.client.Keys(STAFF_SCHEDULE_KEY_PATTERN_V1)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff schedule keys: %w", err)
	}

	schedules := make([]staff.StaffSchedule, 0, len(keys))
	for _, k := range keys {
		str, err := dao.client.Get(k)
		if err != nil {
			log.Printf("[RedisStaffDAO] Skipping key %s due to error: %v", k, err)
			continue
		}
		var s staff.StaffSchedule
		if err := json.Unmarshal([]byte(str), &s); err != nil {
			log.Printf("[RedisStaffDAO] Skipping undecodable schedule at %s: %v", k, err)
			continue
		}
		schedules = append(schedules, s)
	}

	// Keys come back unordered; keep the roster deterministic.
	sort.Slice(schedules, func(i, j int) bool {
		return schedules[i].ID < schedules[j].ID
	})
	return schedules, nil
}

// ListActiveStaffSchedules returns only schedules flagged active, in ID order.
func (dao *RedisStaffDAO) ListActiveStaffSchedules() ([]staff.StaffSchedule, error) {
	all, err := dao.ListStaffSchedules()
	if err != nil {
		return nil, err
	}
	active := make([]staff.StaffSchedule, 0, len(all))
	for _, s := range all {
		if s.IsActive {
			active = append(active, s)
		}
	}
	return active, nil
}
