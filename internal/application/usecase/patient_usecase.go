package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/andrewcurate/metronic-dashboard/internal/application/dto"
	"github.com/andrewcurate/metronic-dashboard/internal/domain"
	"github.com/andrewcurate/metronic-dashboard/internal/domain/entity"
	"github.com/andrewcurate/metronic-dashboard/internal/domain/repository"
)

const dobLayout = "2006-01-02"

// PatientUseCase CRUD de pacientes.
type PatientUseCase struct {
	patients repository.PatientRepository
}

// NewPatientUseCase construye el caso de uso.
func NewPatientUseCase(patients repository.PatientRepository) *PatientUseCase {
	return &PatientUseCase{patients: patients}
}

// Create registra un paciente. ErrDuplicate si el MRN ya existe.
func (uc *PatientUseCase) Create(in dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	existing, err := uc.patients.GetByMRN(in.MRN)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	dob, err := time.Parse(dobLayout, in.DOB)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	patient := &entity.Patient{
		ID:        uuid.New().String(),
		Name:      in.Name,
		DOB:       dob,
		MRN:       in.MRN,
		Insurance: in.Insurance,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.patients.Create(patient); err != nil {
		return nil, err
	}
	return toPatientResponse(patient), nil
}

// GetByID devuelve un paciente. (nil, nil) si no existe.
func (uc *PatientUseCase) GetByID(id string) (*dto.PatientResponse, error) {
	p, err := uc.patients.GetByID(id)
	if err != nil || p == nil {
		return nil, err
	}
	return toPatientResponse(p), nil
}

// List pacientes paginados.
func (uc *PatientUseCase) List(limit, offset int) (*dto.PatientListResponse, error) {
	patients, err := uc.patients.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PatientResponse, 0, len(patients))
	for _, p := range patients {
		items = append(items, *toPatientResponse(p))
	}
	return &dto.PatientListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update modifica los campos presentes (el MRN es inmutable).
func (uc *PatientUseCase) Update(id string, in dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	p, err := uc.patients.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.DOB != nil {
		dob, err := time.Parse(dobLayout, *in.DOB)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		p.DOB = dob
	}
	if in.Insurance != nil {
		p.Insurance = *in.Insurance
	}
	p.UpdatedAt = time.Now()
	if err := uc.patients.Update(p); err != nil {
		return nil, err
	}
	return toPatientResponse(p), nil
}

// Delete elimina un paciente. ErrNotFound si no existe.
func (uc *PatientUseCase) Delete(id string) error {
	p, err := uc.patients.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.patients.Delete(id)
}

func toPatientResponse(p *entity.Patient) *dto.PatientResponse {
	return &dto.PatientResponse{
		ID:        p.ID,
		Name:      p.Name,
		DOB:       p.DOB.Format(dobLayout),
		MRN:       p.MRN,
		Insurance: p.Insurance,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
