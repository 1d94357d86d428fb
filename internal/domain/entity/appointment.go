package entity

import "time"

// Appointment cita agendada (vista de lista y calendario).
type Appointment struct {
	ID        string
	Title     string
	Date      time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
