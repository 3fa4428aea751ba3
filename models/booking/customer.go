package booking

import "fmt"

// Customer is the contact record upserted on every booking or quiz submit.
// Email is the upsert conflict key.
type Customer struct {
	ID          string `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

func (c *Customer) ToString() string {
	return fmt.Sprintf("Customer(id=%s, email=%s)", c.ID, c.Email)
}
