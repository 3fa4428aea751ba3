package availability

import (
	"reflect"
	"testing"
	"time"

	"footworks-server/models/staff"
)

// 2025-10-16 is a Thursday.
var thursday = time.Date(2025, time.October, 16, 0, 0, 0, 0, time.UTC)

func TestWeekdayCode(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{"Monday", time.Date(2025, time.October, 13, 0, 0, 0, 0, time.UTC), "Mon"},
		{"Tuesday", time.Date(2025, time.October, 14, 0, 0, 0, 0, time.UTC), "Tue"},
		{"Wednesday", time.Date(2025, time.October, 15, 0, 0, 0, 0, time.UTC), "Wed"},
		{"Thursday uses Thr not Thu", thursday, "Thr"},
		{"Friday", time.Date(2025, time.October, 17, 0, 0, 0, 0, time.UTC), "Fri"},
		{"Saturday", time.Date(2025, time.October, 18, 0, 0, 0, 0, time.UTC), "Sat"},
		{"Sunday", time.Date(2025, time.October, 19, 0, 0, 0, 0, time.UTC), "Sun"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := WeekdayCode(test.date); got != test.want {
				t.Errorf("WeekdayCode() = %q, want %q", got, test.want)
			}
		})
	}
}

func TestParseRange(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *TimeRange
	}{
		{"plain 24h range", "9-17", &TimeRange{Start: 9, End: 17}},
		{"pm inference shifts end", "9-5", &TimeRange{Start: 9, End: 17}},
		{"equal hours shift too", "9-9", &TimeRange{Start: 9, End: 21}},
		{"whitespace trimmed", " 10 - 14 ", &TimeRange{Start: 10, End: 14}},
		{"negative start clamped", "-3-5", nil}, // three dash-parts, rejected
		{"end clamped to 23", "9-30", &TimeRange{Start: 9, End: 23}},
		{"non-numeric start", "abc-5", nil},
		{"non-numeric end", "9-xyz", nil},
		{"no dash", "9", nil},
		{"empty", "", nil},
		{"too many parts", "9-12-15", nil},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := ParseRange(test.input)
			if !reflect.DeepEqual(got, test.want) {
				t.Errorf("ParseRange(%q) = %v, want %v", test.input, got, test.want)
			}
		})
	}
}

// The pm heuristic is known to mangle true 24h inputs like "14-9"; the
// current behavior (shift then clamp) is pinned here so a change shows up.
func TestParseRange_AmbiguousTwentyFourHourInput(t *testing.T) {
	got := ParseRange("14-9")
	want := &TimeRange{Start: 14, End: 21}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseRange(\"14-9\") = %v, want %v", got, want)
	}
}

func TestGenerateSlots(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "nine to five business hours",
			input: "9-5",
			want: []string{
				"09:00", "10:00", "11:00", "12:00", "13:00",
				"14:00", "15:00", "16:00", "17:00",
			},
		},
		{
			name:  "early shift zero padded",
			input: "7-11",
			want:  []string{"07:00", "08:00", "09:00", "10:00", "11:00"},
		},
		{"off lowercase", "off", []string{}},
		{"off uppercase", "OFF", []string{}},
		{"off mixed case", "Off", []string{}},
		{"empty", "", []string{}},
		{"garbage", "whenever", []string{}},
		{"start past end of day", "25-30", []string{}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := GenerateSlots(test.input)
			if !reflect.DeepEqual(got, test.want) {
				t.Errorf("GenerateSlots(%q) = %v, want %v", test.input, got, test.want)
			}
		})
	}
}

func TestGenerateSlots_SlotCountMatchesRangeWidth(t *testing.T) {
	// H2 > H1: exactly H2-H1+1 slots, first H1:00, last H2:00.
	got := GenerateSlots("10-16")
	if len(got) != 7 {
		t.Fatalf("expected 7 slots, got %d", len(got))
	}
	if got[0] != "10:00" || got[len(got)-1] != "16:00" {
		t.Errorf("expected bounds 10:00..16:00, got %s..%s", got[0], got[len(got)-1])
	}
}

func TestGenerateSlots_IsRestartable(t *testing.T) {
	first := GenerateSlots("9-5")
	second := GenerateSlots("9-5")
	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical slot lists on repeated calls, got %v then %v", first, second)
	}
}

func TestDayRange(t *testing.T) {
	avail := staff.WeeklyAvailability{"Mon": "9-5", "Thr": "10-2", "Sat": "off"}

	monday := time.Date(2025, time.October, 13, 0, 0, 0, 0, time.UTC)
	if got, ok := DayRange(avail, monday); !ok || got != "9-5" {
		t.Errorf("DayRange(Mon) = (%q, %v), want (\"9-5\", true)", got, ok)
	}

	// Thursday is stored under "Thr".
	if got, ok := DayRange(avail, thursday); !ok || got != "10-2" {
		t.Errorf("DayRange(Thr) = (%q, %v), want (\"10-2\", true)", got, ok)
	}

	// Missing weekday: defined=false, no error.
	sunday := time.Date(2025, time.October, 19, 0, 0, 0, 0, time.UTC)
	if got, ok := DayRange(avail, sunday); ok || got != "" {
		t.Errorf("DayRange(Sun) = (%q, %v), want (\"\", false)", got, ok)
	}

	if got, ok := DayRange(nil, monday); ok || got != "" {
		t.Errorf("DayRange(nil) = (%q, %v), want (\"\", false)", got, ok)
	}
}

func TestFilterAvailableStaff(t *testing.T) {
	staffList := []staff.StaffSchedule{
		{ID: 1, StaffName: "Ana", Availability: staff.WeeklyAvailability{"Thr": "9-5"}},
		{ID: 2, StaffName: "Ben", Availability: staff.WeeklyAvailability{"Thr": "off"}},
		{ID: 3, StaffName: "Cam", Availability: staff.WeeklyAvailability{"Thr": "OFF"}},
		{ID: 4, StaffName: "Dee", Availability: staff.WeeklyAvailability{"Mon": "9-5"}},
		{ID: 5, StaffName: "Eli", Availability: staff.WeeklyAvailability{"Thr": "10-6"}},
		{ID: 6, StaffName: "Fay", Availability: nil},
	}

	filtered := FilterAvailableStaff(staffList, thursday)

	if len(filtered) != 2 {
		t.Fatalf("expected 2 available staff, got %d", len(filtered))
	}
	// Relative order preserved.
	if filtered[0].ID != 1 || filtered[1].ID != 5 {
		t.Errorf("expected staff IDs [1 5], got [%d %d]", filtered[0].ID, filtered[1].ID)
	}
}

func TestTimesForStaffOnDate(t *testing.T) {
	working := staff.StaffSchedule{
		ID:           1,
		StaffName:    "Ana",
		Availability: staff.WeeklyAvailability{"Thr": "9-5"},
	}
	times := TimesForStaffOnDate(working, thursday)
	if len(times) != 9 {
		t.Fatalf("expected 9 slots, got %d", len(times))
	}
	if times[0] != "09:00" || times[8] != "17:00" {
		t.Errorf("expected 09:00..17:00, got %s..%s", times[0], times[8])
	}

	offDay := staff.StaffSchedule{
		ID:           2,
		StaffName:    "Ben",
		Availability: staff.WeeklyAvailability{"Thr": "off"},
	}
	if got := TimesForStaffOnDate(offDay, thursday); len(got) != 0 {
		t.Errorf("expected no slots on an off day, got %v", got)
	}

	// Garbage degrades to no slots, never an error.
	malformed := staff.StaffSchedule{
		ID:           3,
		StaffName:    "Cam",
		Availability: staff.WeeklyAvailability{"Thr": "nine-ish"},
	}
	if got := TimesForStaffOnDate(malformed, thursday); len(got) != 0 {
		t.Errorf("expected no slots for malformed range, got %v", got)
	}
}
