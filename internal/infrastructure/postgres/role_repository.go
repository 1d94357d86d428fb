package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/andrewcurate/metronic-dashboard/internal/domain/entity"
	"github.com/andrewcurate/metronic-dashboard/internal/domain/repository"
)

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo implementación del puerto RoleRepository sobre PostgreSQL.
type RoleRepo struct {
	pool *pgxpool.Pool
}

// NewRoleRepository construye el adaptador de persistencia para roles.
func NewRoleRepository(pool *pgxpool.Pool) *RoleRepo {
	return &RoleRepo{pool: pool}
}

const roleColumns = `id, name, slug, is_default, is_trashed, created_at, updated_at`

// GetByID obtiene un rol por ID.
func (r *RoleRepo) GetByID(id string) (*entity.Role, error) {
	query := `SELECT ` + roleColumns + ` FROM user_roles WHERE id = $1`
	return r.scanOne(query, id)
}

// FindDefault resuelve el rol por defecto del signup en una sola consulta:
// primero is_default, si no el convencional name "User" / slug "user".
// Devuelve (nil, nil) si no hay ninguno asignable.
func (r *RoleRepo) FindDefault() (*entity.Role, error) {
	query := `
		SELECT ` + roleColumns + `
		FROM user_roles
		WHERE is_trashed = false AND (is_default = true OR name = 'User' OR slug = 'user')
		ORDER BY is_default DESC
		LIMIT 1`
	return r.scanOne(query)
}

// List roles no eliminados.
func (r *RoleRepo) List() ([]*entity.Role, error) {
	query := `SELECT ` + roleColumns + ` FROM user_roles WHERE is_trashed = false ORDER BY name`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Role
	for rows.Next() {
		var role entity.Role
		if err := rows.Scan(&role.ID, &role.Name, &role.Slug, &role.IsDefault, &role.IsTrashed, &role.CreatedAt, &role.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		list = append(list, &role)
	}
	return list, rows.Err()
}

func (r *RoleRepo) scanOne(query string, args ...any) (*entity.Role, error) {
	var role entity.Role
	err := r.pool.QueryRow(context.Background(), query, args...).Scan(
		&role.ID, &role.Name, &role.Slug, &role.IsDefault, &role.IsTrashed, &role.CreatedAt, &role.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role: %w", err)
	}
	return &role, nil
}
