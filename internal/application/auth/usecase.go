// Package auth casos de uso de autenticación: login por credenciales y
// registro de cuentas. Solo lectura contra el store en login (sin contadores
// de lockout); el signup inserta una única fila.
package auth

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/andrewcurate/metronic-dashboard/internal/application/dto"
	"github.com/andrewcurate/metronic-dashboard/internal/domain"
	"github.com/andrewcurate/metronic-dashboard/internal/domain/entity"
	"github.com/andrewcurate/metronic-dashboard/internal/domain/repository"
	pkgjwt "github.com/andrewcurate/metronic-dashboard/pkg/jwt"
)

// Config política y parámetros de emisión de tokens.
type Config struct {
	JWTSecret     string
	JWTIssuer     string
	JWTExpMinutes int
	DefaultStatus string // estado inicial de cuentas nuevas: ACTIVE o PENDING
}

// AuthUseCase autenticador de credenciales + aprovisionamiento de cuentas.
type AuthUseCase struct {
	users repository.UserRepository
	roles repository.RoleRepository
	cfg   Config
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, roles repository.RoleRepository, cfg Config) *AuthUseCase {
	return &AuthUseCase{users: users, roles: roles, cfg: cfg}
}

// NormalizeEmail trim + lowercase; la unicidad de email es case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Login verifica email/password contra el registro persistido y emite el
// token de sesión con el claim de identidad.
//
// Orden del algoritmo: lookup → hash nulo → comparación bcrypt → gate de
// status. Email desconocido, hash nulo y password incorrecto devuelven el
// mismo ErrInvalidCredentials; solo credenciales correctas sobre cuenta no
// activa devuelven ErrAccountNotActive.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := NormalizeEmail(in.Email)

	user, err := uc.users.GetByEmailWithRole(email)
	if err != nil {
		return nil, err
	}
	if user == nil || user.PasswordHash == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if user.Status != entity.StatusActive {
		return nil, domain.ErrAccountNotActive
	}

	identity := identityFromUser(user)
	token, err := pkgjwt.Generate(uc.cfg.JWTSecret, identity, uc.cfg.JWTIssuer, uc.cfg.JWTExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  sessionUserFromUser(user),
	}, nil
}

// Signup aprovisiona una cuenta nueva y devuelve su ID.
//
// Resuelve el rol por defecto (is_default, fallback name/slug "User"); si no
// existe ninguno es un error de configuración (ErrNoDefaultRole), no del
// usuario. El estado inicial sale de la configuración, nunca se infiere.
// La carrera de doble insert la resuelve la constraint única del store: el
// adaptador mapea 23505 a ErrEmailAlreadyExists.
func (uc *AuthUseCase) Signup(in dto.SignupRequest) (string, error) {
	email := NormalizeEmail(in.Email)
	name := strings.TrimSpace(in.Name)
	if name == "" || email == "" || in.Password == "" {
		return "", domain.ErrInvalidInput
	}

	existing, err := uc.users.GetByEmail(email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", domain.ErrEmailAlreadyExists
	}

	role, err := uc.roles.FindDefault()
	if err != nil {
		return "", err
	}
	if role == nil {
		return "", domain.ErrNoDefaultRole
	}

	// bcrypt genera un salt aleatorio por cuenta
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	now := time.Now()
	hashStr := string(hash)
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		Name:         name,
		PasswordHash: &hashStr,
		Status:       uc.cfg.DefaultStatus,
		RoleID:       &role.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(user); err != nil {
		return "", err
	}
	return user.ID, nil
}

func identityFromUser(u *entity.UserWithRole) pkgjwt.Identity {
	id := pkgjwt.Identity{
		UserID:   u.ID,
		Email:    u.Email,
		Name:     u.Name,
		RoleName: u.RoleName(),
		Status:   u.Status,
	}
	if u.RoleID != nil {
		id.RoleID = *u.RoleID
	}
	if u.Avatar != nil {
		id.Avatar = *u.Avatar
	}
	return id
}

func sessionUserFromUser(u *entity.UserWithRole) dto.SessionUser {
	return dto.SessionUser{
		ID:       u.ID,
		Email:    u.Email,
		Name:     u.Name,
		RoleID:   u.RoleID,
		RoleName: u.RoleName(),
		Status:   u.Status,
		Avatar:   u.Avatar,
	}
}
