package model

import (
	"fmt"
	"time"
)

// Role determines which operations a user may perform. The same values are
// stored in the database and sent over the wire, so there is exactly one
// definition shared by the repository and handler layers.
type Role string

const (
	RoleAdmin Role = "Admin"
	RoleUser  Role = "User"
)

// ParseRole validates a wire/database role value.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleUser:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// Status is the account lifecycle state. Pending and Inactive both block
// login and every authenticated request; only an admin moves an account
// between states.
type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
	StatusPending  Status = "Pending"
)

// ParseStatus validates a wire/database status value.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusActive, StatusInactive, StatusPending:
		return Status(s), nil
	}
	return "", fmt.Errorf("unknown status %q", s)
}

// Blocked reports whether the status prevents authentication.
func (s Status) Blocked() bool { return s != StatusActive }

// User mirrors the `users` table. Email is the natural key that all owned
// device-control and health-monitoring records reference. RefreshToken holds
// the single currently valid refresh token; it is overwritten on every login
// and refresh, and cleared on logout.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
	Status       Status `json:"user_status"`
	RefreshToken string `json:"-"`

	FullName           string   `json:"full_name,omitempty"`
	Gender             string   `json:"gender,omitempty"`
	DOB                string   `json:"dob,omitempty"` // YYYY-MM-DD
	Nationality        string   `json:"nationality,omitempty"`
	Phone              string   `json:"phone,omitempty"`
	City               string   `json:"city,omitempty"`
	Country            string   `json:"country,omitempty"`
	Occupation         string   `json:"occupation,omitempty"`
	MaritalStatus      string   `json:"marital_status,omitempty"`
	SleepHours         *float64 `json:"sleep_hours,omitempty"`
	ExerciseFrequency  string   `json:"exercise_frequency,omitempty"`
	SmokingStatus      string   `json:"smoking_status,omitempty"`
	AlcoholConsumption string   `json:"alcohol_consumption,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	CreatedBy string    `json:"created_by,omitempty"`
	UpdatedBy string    `json:"updated_by,omitempty"`
}
