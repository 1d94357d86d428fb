package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/andrewcurate/metronic-dashboard/internal/application/dto"
	"github.com/andrewcurate/metronic-dashboard/internal/domain"
	"github.com/andrewcurate/metronic-dashboard/internal/domain/entity"
	"github.com/andrewcurate/metronic-dashboard/internal/domain/repository"
)

// AppointmentUseCase CRUD de citas.
type AppointmentUseCase struct {
	appts repository.AppointmentRepository
}

// NewAppointmentUseCase construye el caso de uso.
func NewAppointmentUseCase(appts repository.AppointmentRepository) *AppointmentUseCase {
	return &AppointmentUseCase{appts: appts}
}

// Create agenda una cita nueva.
func (uc *AppointmentUseCase) Create(in dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	now := time.Now()
	appt := &entity.Appointment{
		ID:        uuid.New().String(),
		Title:     in.Title,
		Date:      in.Date,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.appts.Create(appt); err != nil {
		return nil, err
	}
	return toAppointmentResponse(appt), nil
}

// GetByID devuelve una cita. (nil, nil) si no existe.
func (uc *AppointmentUseCase) GetByID(id string) (*dto.AppointmentResponse, error) {
	appt, err := uc.appts.GetByID(id)
	if err != nil || appt == nil {
		return nil, err
	}
	return toAppointmentResponse(appt), nil
}

// List citas ordenadas por fecha ascendente.
func (uc *AppointmentUseCase) List(limit, offset int) (*dto.AppointmentListResponse, error) {
	appts, err := uc.appts.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AppointmentResponse, 0, len(appts))
	for _, a := range appts {
		items = append(items, *toAppointmentResponse(a))
	}
	return &dto.AppointmentListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update modifica los campos presentes. ErrNotFound si la cita no existe.
func (uc *AppointmentUseCase) Update(id string, in dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	appt, err := uc.appts.GetByID(id)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, domain.ErrNotFound
	}
	if in.Title != nil {
		appt.Title = *in.Title
	}
	if in.Date != nil {
		appt.Date = *in.Date
	}
	appt.UpdatedAt = time.Now()
	if err := uc.appts.Update(appt); err != nil {
		return nil, err
	}
	return toAppointmentResponse(appt), nil
}

// Delete elimina una cita. ErrNotFound si no existe.
func (uc *AppointmentUseCase) Delete(id string) error {
	appt, err := uc.appts.GetByID(id)
	if err != nil {
		return err
	}
	if appt == nil {
		return domain.ErrNotFound
	}
	return uc.appts.Delete(id)
}

// Upcoming citas con fecha >= from, para la exportación de agenda.
func (uc *AppointmentUseCase) Upcoming(from time.Time, limit int) ([]*entity.Appointment, error) {
	return uc.appts.ListFrom(from, limit)
}

func toAppointmentResponse(a *entity.Appointment) *dto.AppointmentResponse {
	return &dto.AppointmentResponse{
		ID:        a.ID,
		Title:     a.Title,
		Date:      a.Date,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
