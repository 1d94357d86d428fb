package dto

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

// CreateAppointmentRequest entrada para crear una cita.
type CreateAppointmentRequest struct {
	Title string    `json:"title"`
	Date  time.Time `json:"date"`
}

// Validate título y fecha obligatorios.
func (r CreateAppointmentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Date, validation.Required),
	)
}

// UpdateAppointmentRequest entrada para actualizar; campos nil no se tocan.
type UpdateAppointmentRequest struct {
	Title *string    `json:"title"`
	Date  *time.Time `json:"date"`
}

// Validate si viene título, no puede ser vacío.
func (r UpdateAppointmentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.NilOrNotEmpty, validation.Length(1, 200)),
	)
}

// AppointmentResponse salida de una cita.
type AppointmentResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse listado paginado, ordenado por fecha ascendente.
type AppointmentListResponse struct {
	Items []AppointmentResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
