package dto

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

// CreatePatientRequest entrada para registrar un paciente.
// DOB viene como fecha "2006-01-02".
type CreatePatientRequest struct {
	Name      string `json:"name"`
	DOB       string `json:"dob"`
	MRN       string `json:"mrn"`
	Insurance string `json:"insurance"`
}

// Validate mismas reglas que el formulario de alta: nombre 2-50, resto requerido.
func (r CreatePatientRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(2, 50)),
		validation.Field(&r.DOB, validation.Required, validation.Date("2006-01-02")),
		validation.Field(&r.MRN, validation.Required),
		validation.Field(&r.Insurance, validation.Required),
	)
}

// UpdatePatientRequest entrada para actualizar; campos nil no se tocan.
type UpdatePatientRequest struct {
	Name      *string `json:"name"`
	DOB       *string `json:"dob"`
	Insurance *string `json:"insurance"`
}

// Validate reglas sobre los campos presentes.
func (r UpdatePatientRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(2, 50)),
		validation.Field(&r.DOB, validation.NilOrNotEmpty, validation.Date("2006-01-02")),
		validation.Field(&r.Insurance, validation.NilOrNotEmpty),
	)
}

// PatientResponse salida de un paciente.
type PatientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	DOB       string    `json:"dob"` // "2006-01-02"
	MRN       string    `json:"mrn"`
	Insurance string    `json:"insurance"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PatientListResponse listado paginado.
type PatientListResponse struct {
	Items []PatientResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
