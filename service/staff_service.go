package services

import (
	"log"
	"strings"
	"time"

	"footworks-server/availability"
	"footworks-server/dao/redis"
	"footworks-server/models/staff"
)

type StaffService struct {
	staffDao   *redis.RedisStaffDAO
	bookingDao *redis.RedisBookingDAO
}

// NewStaffService constructs a new StaffService with Redis dependency injection.
func NewStaffService(
	staffDao *redis.RedisStaffDAO,
	bookingDao *redis.RedisBookingDAO) *StaffService {

	return &StaffService{
		staffDao:   staffDao,
		bookingDao: bookingDao,
	}
}

// GetStaffSchedules returns every stored schedule, active or not.
func (ss *StaffService) GetStaffSchedules() ([]staff.StaffSchedule, error) {
	return ss.staffDao.ListStaffSchedules()
}

// GetAvailableStaff returns the active staff members working on the given date.
func (ss *StaffService) GetAvailableStaff(date time.Time) ([]staff.StaffSchedule, error) {
	schedules, err := ss.staffDao.ListActiveStaffSchedules()
	if err != nil {
		return nil, err
	}
	return availability.FilterAvailableStaff(schedules, date), nil
}

// GetTimesForStaff resolves the bookable hourly slots for one staff member on
// a date, with already-booked slots removed. An unknown staff ID resolves to
// zero slots rather than an error.
func (ss *StaffService) GetTimesForStaff(staffScheduleID int, date time.Time) ([]string, error) {
	schedule, err := ss.staffDao.GetStaffSchedule(staffScheduleID)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		log.Printf("[StaffService] No schedule found for staff id=%d", staffScheduleID)
		return []string{}, nil
	}

	slots := availability.TimesForStaffOnDate(*schedule, date)
	if len(slots) == 0 {
		return slots, nil
	}

	booked, err := ss.bookedSlots(staffScheduleID, date)
	if err != nil {
		return nil, err
	}
	if len(booked) == 0 {
		return slots, nil
	}

	open := make([]string, 0, len(slots))
	for _, slot := range slots {
		if _, taken := booked[slot]; taken {
			continue
		}
		open = append(open, slot)
	}
	return open, nil
}

// bookedSlots returns the set of "HH:00" slots already taken for a staff
// member on a date.
func (ss *StaffService) bookedSlots(staffScheduleID int, date time.Time) (map[string]struct{}, error) {
	appointments, err := ss.bookingDao.ListAppointmentsForStaff(staffScheduleID)
	if err != nil {
		return nil, err
	}

	dayPrefix := date.Format("2006-01-02") + "T"
	booked := make(map[string]struct{})
	for _, a := range appointments {
		if !strings.HasPrefix(a.AppointmentDatetime, dayPrefix) {
			continue
		}
		booked[strings.TrimPrefix(a.AppointmentDatetime, dayPrefix)] = struct{}{}
	}
	return booked, nil
}
