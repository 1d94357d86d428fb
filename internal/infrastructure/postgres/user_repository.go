package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/andrewcurate/metronic-dashboard/internal/domain"
	"github.com/andrewcurate/metronic-dashboard/internal/domain/entity"
	"github.com/andrewcurate/metronic-dashboard/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

const userColumns = `id, email, name, password_hash, status, avatar, role_id, created_at, updated_at`

// Create persiste un usuario nuevo. La constraint única de email (sobre el
// valor ya normalizado) mapea a ErrEmailAlreadyExists.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, email, name, password_hash, status, avatar, role_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(context.Background(), query,
		user.ID, user.Email, user.Name, user.PasswordHash, user.Status, user.Avatar, user.RoleID,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByEmail obtiene un usuario por email (previamente normalizado).
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 LIMIT 1`
	return r.scanOne(query, email)
}

// GetByEmailWithRole obtiene usuario + rol resuelto en una sola consulta.
func (r *UserRepo) GetByEmailWithRole(email string) (*entity.UserWithRole, error) {
	return r.scanOneWithRole(`u.email = $1`, email)
}

// GetByIDWithRole obtiene usuario + rol resuelto por ID.
func (r *UserRepo) GetByIDWithRole(id string) (*entity.UserWithRole, error) {
	return r.scanOneWithRole(`u.id = $1`, id)
}

func (r *UserRepo) scanOne(query string, arg any) (*entity.User, error) {
	var u entity.User
	err := r.pool.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.Status, &u.Avatar, &u.RoleID,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

func (r *UserRepo) scanOneWithRole(where string, arg any) (*entity.UserWithRole, error) {
	query := `
		SELECT u.id, u.email, u.name, u.password_hash, u.status, u.avatar, u.role_id,
		       u.created_at, u.updated_at,
		       r.id, r.name, r.slug, r.is_default, r.is_trashed, r.created_at, r.updated_at
		FROM users u
		LEFT JOIN user_roles r ON r.id = u.role_id
		WHERE ` + where + ` LIMIT 1`

	var u entity.UserWithRole
	var roleID, roleName, roleSlug *string
	var roleDefault, roleTrashed *bool
	var roleCreated, roleUpdated *time.Time
	err := r.pool.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.Status, &u.Avatar, &u.RoleID,
		&u.CreatedAt, &u.UpdatedAt,
		&roleID, &roleName, &roleSlug, &roleDefault, &roleTrashed, &roleCreated, &roleUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user with role: %w", err)
	}
	if roleID != nil {
		u.Role = &entity.Role{
			ID:        *roleID,
			Name:      *roleName,
			Slug:      *roleSlug,
			IsDefault: *roleDefault,
			IsTrashed: *roleTrashed,
		}
		if roleCreated != nil {
			u.Role.CreatedAt = *roleCreated
		}
		if roleUpdated != nil {
			u.Role.UpdatedAt = *roleUpdated
		}
	}
	return &u, nil
}

// Update actualiza un usuario (el email nunca cambia de forma).
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE users SET email = $2, name = $3, password_hash = $4, status = $5, avatar = $6, role_id = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		user.ID, user.Email, user.Name, user.PasswordHash, user.Status, user.Avatar, user.RoleID, user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// Delete elimina un usuario por ID.
func (r *UserRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
