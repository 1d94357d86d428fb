package entity

import "time"

// Patient paciente registrado en la clínica.
type Patient struct {
	ID        string
	Name      string
	DOB       time.Time // fecha de nacimiento (solo fecha, sin hora)
	MRN       string    // Medical Record Number, único
	Insurance string
	CreatedAt time.Time
	UpdatedAt time.Time
}
