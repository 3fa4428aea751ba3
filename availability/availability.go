package availability

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"footworks-server/models/staff"
)

// weekdayCodes maps Go weekdays to the codes used as availability keys.
// The schema spells Thursday "Thr", not "Thu"; keep the quirk isolated here
// so a schema fix only touches this table.
var weekdayCodes = map[time.Weekday]string{
	time.Monday:    "Mon",
	time.Tuesday:   "Tue",
	time.Wednesday: "Wed",
	time.Thursday:  "Thr",
	time.Friday:    "Fri",
	time.Saturday:  "Sat",
	time.Sunday:    "Sun",
}

const offMarker = "off"

// TimeRange is a working window in whole 24h hours, inclusive on both ends.
type TimeRange struct {
	Start int
	End   int
}

// WeekdayCode returns the availability key for the date's weekday.
func WeekdayCode(date time.Time) string {
	return weekdayCodes[date.Weekday()]
}

// DayRange returns the raw value stored for the date's weekday. The second
// return is false when the weekday has no entry; callers treat a missing day
// the same as "off".
func DayRange(avail staff.WeeklyAvailability, date time.Time) (string, bool) {
	if avail == nil {
		return "", false
	}
	rangeStr, ok := avail[WeekdayCode(date)]
	return rangeStr, ok
}

// IsOff reports whether a stored day value means "not working": missing,
// empty, or the literal off marker in any case.
func IsOff(rangeStr string) bool {
	return rangeStr == "" || strings.EqualFold(rangeStr, offMarker)
}

// ParseRange converts a "9-5" style string into a TimeRange. Anything that
// does not split on a single dash into two numeric parts yields nil; callers
// treat nil as "no slots", never as an error to surface.
//
// When end <= start the end is shifted +12 to read ranges like "9-5" as
// 9 AM-5 PM. A nonsensical 24h input like "14-9" also triggers the shift and
// produces a shifted range rather than a rejection; flagged upstream as a
// data-quality ambiguity, deliberately not corrected here.
func ParseRange(rangeStr string) *TimeRange {
	parts := strings.Split(rangeStr, "-")
	if len(parts) != 2 {
		return nil
	}

	start, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return nil
	}
	end, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil
	}

	// Adjust for PM if end <= start
	if end <= start {
		end = end + 12
	}

	// Clamp to valid hours
	if start < 0 {
		start = 0
	}
	if end > 23 {
		end = 23
	}

	return &TimeRange{Start: start, End: end}
}

// GenerateSlots expands a stored day value into hourly "HH:00" slots, one per
// hour from start to end inclusive. Off days and unparsable input yield an
// empty list.
func GenerateSlots(rangeStr string) []string {
	if IsOff(rangeStr) {
		return []string{}
	}

	parsed := ParseRange(rangeStr)
	if parsed == nil {
		return []string{}
	}

	return SlotsFromRange(*parsed)
}

// SlotsFromRange materializes the slot list for an already-parsed range.
// An inverted range (start past the clamped end) yields no slots.
func SlotsFromRange(r TimeRange) []string {
	if r.End < r.Start {
		return []string{}
	}
	slots := make([]string, 0, r.End-r.Start+1)
	for h := r.Start; h <= r.End; h++ {
		slots = append(slots, fmt.Sprintf("%02d:00", h))
	}
	return slots
}

// FilterAvailableStaff keeps only staff working on the given date, preserving
// the input order.
func FilterAvailableStaff(staffList []staff.StaffSchedule, date time.Time) []staff.StaffSchedule {
	filtered := make([]staff.StaffSchedule, 0, len(staffList))
	for _, s := range staffList {
		dayRange, ok := DayRange(s.Availability, date)
		if ok && !IsOff(dayRange) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

// TimesForStaffOnDate resolves the bookable slots for one staff member on a
// concrete date. Malformed or missing availability degrades to no slots.
func TimesForStaffOnDate(s staff.StaffSchedule, date time.Time) []string {
	dayRange, _ := DayRange(s.Availability, date)
	return GenerateSlots(dayRange)
}
