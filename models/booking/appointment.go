package booking

// Appointment ties a customer to a staff member at a concrete date and time.
// AppointmentDatetime is "YYYY-MM-DDTHH:00" (the date plus a resolved slot).
type Appointment struct {
	ID                  string `json:"id"`
	StaffScheduleID     int    `json:"staff_schedule_id"`
	CustomerID          string `json:"customer_id"`
	AppointmentDatetime string `json:"appointment_datetime"`
	Service             string `json:"service"`
	SelectorResponseID  string `json:"selector_response_id,omitempty"`
	ReminderSent        bool   `json:"reminder_sent"`
}
