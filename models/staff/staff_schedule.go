package staff

import (
	"encoding/json"
	"fmt"
	"log"
)

// WeeklyAvailability maps weekday codes (Mon..Sun, with Thursday spelled
// "Thr" upstream) to either "off" or a working range like "9-5".
type WeeklyAvailability map[string]string

// StaffSchedule represents one associate and their weekly availability.
type StaffSchedule struct {
	ID           int                `json:"id"`
	StaffName    string             `json:"staff_name"`
	IsActive     bool               `json:"is_active"`
	Availability WeeklyAvailability `json:"availability"`
}

// UnmarshalJSON accepts the availability either as a native JSON object or as
// a JSON-encoded string holding that object; older rows store the whole map
// as a string, so both shapes arrive from the same column. Malformed data is
// logged and leaves the map nil (treated as a full week off) rather than
// failing the enclosing staff record.
func (w *WeeklyAvailability) UnmarshalJSON(data []byte) error {
	// Native object form.
	var direct map[string]string
	if err := json.Unmarshal(data, &direct); err == nil {
		*w = direct
		return nil
	}

	// String form: unwrap, then parse the contained object.
	var encoded string
	if err := json.Unmarshal(data, &encoded); err != nil {
		log.Printf("[StaffSchedule] availability is neither object nor string, treating as off: %v", err)
		*w = nil
		return nil
	}
	var inner map[string]string
	if err := json.Unmarshal([]byte(encoded), &inner); err != nil {
		log.Printf("[StaffSchedule] availability string is not valid JSON, treating as off: %v", err)
		*w = nil
		return nil
	}
	*w = inner
	return nil
}

func (s *StaffSchedule) ToString() string {
	return fmt.Sprintf("StaffSchedule(id=%d, name=%s, active=%v)",
		s.ID, s.StaffName, s.IsActive)
}
