package model

import "time"

// Device-control records share one audit shape: a value column, the owning
// user's email, timestamps and acting-identity stamps. Four devices carry a
// boolean value (sound, steam, water pump, nano flicker); the tank
// temperature is a float and the LED color a string.

// SwitchRecord is a row in one of the boolean device tables (`sounds`,
// `steams`, `water_pumps`, `nano_flickers`). Which table it came from is
// carried by the repository call, not the struct.
type SwitchRecord struct {
	ID        string    `json:"id"`
	Enabled   bool      `json:"enabled"`
	UserEmail string    `json:"user_email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	CreatedBy string    `json:"created_by,omitempty"`
	UpdatedBy string    `json:"updated_by,omitempty"`
}

// TempTank is a row in `temp_tanks`; temperature is in celsius.
type TempTank struct {
	ID        string    `json:"id"`
	TempTank  float64   `json:"temp_tank"`
	UserEmail string    `json:"user_email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	CreatedBy string    `json:"created_by,omitempty"`
	UpdatedBy string    `json:"updated_by,omitempty"`
}

// LedColor is a row in `led_colors`.
type LedColor struct {
	ID        string    `json:"id"`
	LedColor  string    `json:"led_color"`
	UserEmail string    `json:"user_email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	CreatedBy string    `json:"created_by,omitempty"`
	UpdatedBy string    `json:"updated_by,omitempty"`
}
