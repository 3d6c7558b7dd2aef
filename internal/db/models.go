package db

import "time"

const (
	SlotStatusAvailable = "available"
	SlotStatusReserved  = "reserved"
)

// Slot is one bookable appointment unit. Patient fields are empty
// unless Status is reserved.
type Slot struct {
	ID           string
	Practitioner string
	Date         time.Time
	Time         string // "15:04", clinic-local
	Status       string
	PatientName  string
	PatientPhone string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Specialty groups one or more practitioners under a menu key.
// Reference data seeded by the admin surface, never mutated by request handling.
type Specialty struct {
	ID            string
	Name          string
	Practitioners []string
}
