package repository

import (
	"time"

	"github.com/andrewcurate/metronic-dashboard/internal/domain/entity"
)

// AppointmentRepository define el puerto de persistencia para Appointment (DIP).
type AppointmentRepository interface {
	Create(appt *entity.Appointment) error
	GetByID(id string) (*entity.Appointment, error)
	// List devuelve citas ordenadas por fecha ascendente.
	List(limit, offset int) ([]*entity.Appointment, error)
	// ListFrom devuelve citas con fecha >= from, ordenadas ascendente.
	ListFrom(from time.Time, limit int) ([]*entity.Appointment, error)
	Update(appt *entity.Appointment) error
	Delete(id string) error
}
