package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/andrewcurate/metronic-dashboard/internal/domain"
	"github.com/andrewcurate/metronic-dashboard/internal/domain/entity"
	"github.com/andrewcurate/metronic-dashboard/internal/domain/repository"
)

var _ repository.PatientRepository = (*PatientRepo)(nil)

// PatientRepo implementación del puerto PatientRepository sobre PostgreSQL.
type PatientRepo struct {
	pool *pgxpool.Pool
}

// NewPatientRepository construye el adaptador de persistencia para pacientes.
func NewPatientRepository(pool *pgxpool.Pool) *PatientRepo {
	return &PatientRepo{pool: pool}
}

const patientColumns = `id, name, dob, mrn, insurance, created_at, updated_at`

// Create persiste un paciente. La constraint única de MRN mapea a ErrDuplicate.
func (r *PatientRepo) Create(p *entity.Patient) error {
	query := `
		INSERT INTO patients (id, name, dob, mrn, insurance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(context.Background(), query,
		p.ID, p.Name, p.DOB, p.MRN, p.Insurance, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert patient: %w", err)
	}
	return nil
}

// GetByID obtiene un paciente por ID.
func (r *PatientRepo) GetByID(id string) (*entity.Patient, error) {
	query := `SELECT ` + patientColumns + ` FROM patients WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByMRN obtiene un paciente por su Medical Record Number.
func (r *PatientRepo) GetByMRN(mrn string) (*entity.Patient, error) {
	query := `SELECT ` + patientColumns + ` FROM patients WHERE mrn = $1`
	return r.scanOne(query, mrn)
}

func (r *PatientRepo) scanOne(query string, arg any) (*entity.Patient, error) {
	var p entity.Patient
	err := r.pool.QueryRow(context.Background(), query, arg).Scan(
		&p.ID, &p.Name, &p.DOB, &p.MRN, &p.Insurance, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get patient: %w", err)
	}
	return &p, nil
}

// List pacientes ordenados por fecha de alta descendente.
func (r *PatientRepo) List(limit, offset int) ([]*entity.Patient, error) {
	query := `SELECT ` + patientColumns + ` FROM patients ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	defer rows.Close()
	var list []*entity.Patient
	for rows.Next() {
		var p entity.Patient
		if err := rows.Scan(&p.ID, &p.Name, &p.DOB, &p.MRN, &p.Insurance, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan patient: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza un paciente (el MRN no cambia).
func (r *PatientRepo) Update(p *entity.Patient) error {
	query := `UPDATE patients SET name = $2, dob = $3, insurance = $4, updated_at = $5 WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		p.ID, p.Name, p.DOB, p.Insurance, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update patient: %w", err)
	}
	return nil
}

// Delete elimina un paciente por ID.
func (r *PatientRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM patients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete patient: %w", err)
	}
	return nil
}
