package repository

import (
	"context"
	"time"
)

// MonthlyPatientCount pacientes nuevos en un mes calendario.
type MonthlyPatientCount struct {
	Month    time.Time // primer día del mes
	Patients int
}

// StatsRepository consultas de solo lectura para el dashboard.
type StatsRepository interface {
	// MonthlyNewPatients cuenta pacientes creados por mes en los últimos
	// `months` meses calendario (incluido el actual). Los meses sin altas
	// aparecen con cero.
	MonthlyNewPatients(ctx context.Context, months int) ([]MonthlyPatientCount, error)
}
