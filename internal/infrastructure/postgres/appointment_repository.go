package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/andrewcurate/metronic-dashboard/internal/domain/entity"
	"github.com/andrewcurate/metronic-dashboard/internal/domain/repository"
)

var _ repository.AppointmentRepository = (*AppointmentRepo)(nil)

// AppointmentRepo implementación del puerto AppointmentRepository sobre PostgreSQL.
type AppointmentRepo struct {
	pool *pgxpool.Pool
}

// NewAppointmentRepository construye el adaptador de persistencia para citas.
func NewAppointmentRepository(pool *pgxpool.Pool) *AppointmentRepo {
	return &AppointmentRepo{pool: pool}
}

const appointmentColumns = `id, title, date, created_at, updated_at`

// Create persiste una cita nueva.
func (r *AppointmentRepo) Create(appt *entity.Appointment) error {
	query := `
		INSERT INTO appointments (id, title, date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.pool.Exec(context.Background(), query,
		appt.ID, appt.Title, appt.Date, appt.CreatedAt, appt.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert appointment: %w", err)
	}
	return nil
}

// GetByID obtiene una cita por ID.
func (r *AppointmentRepo) GetByID(id string) (*entity.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE id = $1`
	var a entity.Appointment
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.Title, &a.Date, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	return &a, nil
}

// List citas ordenadas por fecha ascendente, con paginación.
func (r *AppointmentRepo) List(limit, offset int) ([]*entity.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments ORDER BY date ASC LIMIT $1 OFFSET $2`
	return r.scanMany(query, limit, offset)
}

// ListFrom citas con fecha >= from, ordenadas ascendente.
func (r *AppointmentRepo) ListFrom(from time.Time, limit int) ([]*entity.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE date >= $1 ORDER BY date ASC LIMIT $2`
	return r.scanMany(query, from, limit)
}

func (r *AppointmentRepo) scanMany(query string, args ...any) ([]*entity.Appointment, error) {
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Appointment
	for rows.Next() {
		var a entity.Appointment
		if err := rows.Scan(&a.ID, &a.Title, &a.Date, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan appointment: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Update actualiza una cita.
func (r *AppointmentRepo) Update(appt *entity.Appointment) error {
	query := `UPDATE appointments SET title = $2, date = $3, updated_at = $4 WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		appt.ID, appt.Title, appt.Date, appt.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update appointment: %w", err)
	}
	return nil
}

// Delete elimina una cita por ID.
func (r *AppointmentRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete appointment: %w", err)
	}
	return nil
}
