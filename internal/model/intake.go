// internal/model/intake.go
package model

import (
	"fmt"
	"math/rand"
	"time"
)

// IntakeSlip is the walk-in intake record handed to the customer when a
// device is dropped off for repair. It is composed fresh per print request
// and never persisted by this service.
type IntakeSlip struct {
	SlipNumber   string    `json:"slip_number"`
	CustomerName string    `json:"customer_name"`
	PhoneNumber  string    `json:"phone_number"`
	DeviceType   string    `json:"device_type"`
	DevicePin    string    `json:"device_pin,omitempty"`
	Description  string    `json:"description,omitempty"`
	IssuedAt     time.Time `json:"issued_at"`
}

// NewSlipNumber derives a display token from the issue date: MMDD plus a
// 3-digit random component. It is not a uniqueness guarantee; collisions
// are possible and acceptable.
func NewSlipNumber(issuedAt time.Time) string {
	sequence := 100 + rand.Intn(900)
	return fmt.Sprintf("%02d%02d%d", int(issuedAt.Month()), issuedAt.Day(), sequence)
}
