package services

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"footworks-server/availability"
	"footworks-server/dao/redis"
	"footworks-server/models/booking"
)

// BookingRequest carries everything needed to book an appointment.
type BookingRequest struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email"`
	PhoneNumber     string `json:"phone_number"`
	StaffScheduleID int    `json:"staff_schedule_id"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	Service         string `json:"service"`
}

type BookingService struct {
	bookingDao *redis.RedisBookingDAO
	staffDao   *redis.RedisStaffDAO
}

// NewBookingService constructs a new BookingService with Redis dependency injection.
func NewBookingService(
	bookingDao *redis.RedisBookingDAO,
	staffDao *redis.RedisStaffDAO) *BookingService {

	return &BookingService{
		bookingDao: bookingDao,
		staffDao:   staffDao,
	}
}

// BookAppointment upserts the customer by email, validates the requested slot
// against the staff member's schedule, links the customer's latest selector
// response, and persists the appointment.
func (bs *BookingService) BookAppointment(req BookingRequest) (*booking.Appointment, error) {
	if req.Email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidRequest)
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", ErrInvalidRequest, req.Date)
	}

	if err := bs.validateSlot(req.StaffScheduleID, date, req.Time); err != nil {
		return nil, err
	}

	customer, err := bs.upsertCustomer(req)
	if err != nil {
		return nil, err
	}

	appointment := booking.Appointment{
		ID:                  uuid.NewString(),
		StaffScheduleID:     req.StaffScheduleID,
		CustomerID:          customer.ID,
		AppointmentDatetime: fmt.Sprintf("%sT%s", req.Date, req.Time),
		Service:             req.Service,
	}

	// A prior shoe-selector submission travels with the booking when present.
	latest, err := bs.bookingDao.LatestSelectorResponse(customer.ID)
	if err != nil {
		log.Printf("[BookingService] Could not resolve latest selector response for %s: %v",
			customer.ID, err)
	} else if latest != nil {
		appointment.SelectorResponseID = latest.ID
	}

	if err := bs.bookingDao.SaveAppointment(appointment); err != nil {
		return nil, err
	}
	log.Printf("[BookingService] Booked appointment id=%s staff=%d at %s",
		appointment.ID, appointment.StaffScheduleID, appointment.AppointmentDatetime)
	return &appointment, nil
}

// validateSlot checks that the requested "HH:00" time is one of the open
// slots the staff member actually works on that date.
func (bs *BookingService) validateSlot(staffScheduleID int, date time.Time, slot string) error {
	schedule, err := bs.staffDao.GetStaffSchedule(staffScheduleID)
	if err != nil {
		return err
	}
	if schedule == nil {
		return fmt.Errorf("%w: unknown staff schedule %d", ErrInvalidRequest, staffScheduleID)
	}

	for _, open := range availability.TimesForStaffOnDate(*schedule, date) {
		if open == slot {
			return nil
		}
	}
	return fmt.Errorf("%w: slot %q is not available for staff %d on %s",
		ErrInvalidRequest, slot, staffScheduleID, date.Format("2006-01-02"))
}

// upsertCustomer finds the customer by email or creates a new record, keeping
// email as the conflict key.
func (bs *BookingService) upsertCustomer(req BookingRequest) (*booking.Customer, error) {
	existing, err := bs.bookingDao.GetCustomerByEmail(req.Email)
	if err != nil {
		return nil, err
	}

	customer := booking.Customer{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       strings.ToLower(req.Email),
		PhoneNumber: req.PhoneNumber,
	}
	if existing != nil {
		customer.ID = existing.ID
	} else {
		customer.ID = uuid.NewString()
	}

	if err := bs.bookingDao.SaveCustomer(customer); err != nil {
		return nil, err
	}
	return &customer, nil
}
