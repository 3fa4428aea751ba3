package redis

import (
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"

	"footworks-server/db"
	"footworks-server/models/booking"
	"footworks-server/models/selector"
)

// Customers are keyed by lowercased email, which is what gives the upsert
// its on-conflict-by-email semantics.
const CUSTOMER_KEY_FORMAT_V1 = "customer_v1:%s"
const APPOINTMENT_KEY_FORMAT_V1 = "appointment_v1:%s"
const APPOINTMENT_KEY_PATTERN_V1 = "appointment_v1:*"
const SELECTOR_RESPONSE_KEY_FORMAT_V1 = "selector_response_v1:%s:%s"
const SELECTOR_RESPONSE_KEY_PATTERN_FORMAT_V1 = "selector_response_v1:%s:*"

// RedisBookingDAO handles customer, appointment, and selector response
// operations using Redis.
type RedisBookingDAO struct {
	client db.RedisClient
}

// NewRedisBookingDAO initializes a RedisBookingDAO with the Redis client.
func NewRedisBookingDAO(client db.RedisClient) *RedisBookingDAO {
	return &RedisBookingDAO{client: client}
}

// GetCustomerByEmail fetches a customer record; a missing key returns
// (nil, nil).
func (dao *RedisBookingDAO) GetCustomerByEmail(email string) (*booking.Customer, error) {
	key := fmt.Sprintf(CUSTOMER_KEY_FORMAT_V1, strings.ToLower(email))
	str, err := dao.client.Get(key)
	if err != nil {
		if db.IsMissingKey(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get customer from redis: %w", err)
	}
	var c booking.Customer
	if err := json.Unmarshal([]byte(str), &c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal customer JSON: %w", err)
	}
	return &c, nil
}

// SaveCustomer writes the customer under its email key, overwriting any
// previous contact details for the same address.
func (dao *RedisBookingDAO) SaveCustomer(c booking.Customer) error {
	key := fmt.Sprintf(CUSTOMER_KEY_FORMAT_V1, strings.ToLower(c.Email))
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal customer %s: %w", c.ID, err)
	}
	if err := dao.client.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to set customer in redis: %w", err)
	}
	return nil
}

// SaveAppointment stores a booked appointment.
func (dao *RedisBookingDAO) SaveAppointment(a booking.Appointment) error {
	key := fmt.Sprintf(APPOINTMENT_KEY_FORMAT_V1, a.ID)
	data, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("failed to marshal appointment %s: %w", a.ID, err)
	}
	if err := dao.client.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to set appointment in redis: %w", err)
	}
	log.Printf("[RedisBookingDAO] Saved appointment %s for staff %d at %s",
		a.ID, a.StaffScheduleID, a.AppointmentDatetime)
	return nil
}

// ListAppointmentsForStaff returns every appointment booked with one staff
// member, ordered by datetime.
func (dao *RedisBookingDAO) ListAppointmentsForStaff(staffScheduleID int) ([]booking.Appointment, error) {
	keys, err := dao.client.Keys(APPOINTMENT_KEY_PATTERN_V1)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointment keys: %w", err)
	}

	appointments := []booking.Appointment{}
	for _, k := range keys {
		str, err := dao.client.Get(k)
		if err != nil {
			log.Printf("[RedisBookingDAO] Skipping key %s due to error: %v", k, err)
			continue
		}
		var a booking.Appointment
		if err := json.Unmarshal([]byte(str), &a); err != nil {
			log.Printf("[RedisBookingDAO] Skipping undecodable appointment at %s: %v", k, err)
			continue
		}
		if a.StaffScheduleID == staffScheduleID {
			appointments = append(appointments, a)
		}
	}

	sort.Slice(appointments, func(i, j int) bool {
		return appointments[i].AppointmentDatetime < appointments[j].AppointmentDatetime
	})
	return appointments, nil
}

// SaveSelectorResponse stores one quiz submission under its customer.
func (dao *RedisBookingDAO) SaveSelectorResponse(r selector.SelectorResponse) error {
	key := fmt.Sprintf(SELECTOR_RESPONSE_KEY_FORMAT_V1, r.CustomerID, r.ID)
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal selector response %s: %w", r.ID, err)
	}
	if err := dao.client.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to set selector response in redis: %w", err)
	}
	return nil
}

// LatestSelectorResponse returns the most recent quiz submission for one
// customer, or (nil, nil) when the customer has never taken the quiz.
func (dao *RedisBookingDAO) LatestSelectorResponse(customerID string) (*selector.SelectorResponse, error) {
	pattern := fmt.Sprintf(SELECTOR_RESPONSE_KEY_PATTERN_FORMAT_V1, customerID)
	keys, err := dao.client.Keys(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list selector response keys: %w", err)
	}

	var latest *selector.SelectorResponse
	for _, k := range keys {
		str, err := dao.client.Get(k)
		if err != nil {
			log.Printf("[RedisBookingDAO] Skipping key %s due to error: %v", k, err)
			continue
		}
		var r selector.SelectorResponse
		if err := json.Unmarshal([]byte(str), &r); err != nil {
			log.Printf("[RedisBookingDAO] Skipping undecodable selector response at %s: %v", k, err)
			continue
		}
		// CreatedAt is RFC3339, so string comparison orders chronologically.
		if latest == nil || r.CreatedAt > latest.CreatedAt {
			resp := r
			latest = &resp
		}
	}
	return latest, nil
}
