package usecase

import (
	"github.com/andrewcurate/metronic-dashboard/internal/application/dto"
	"github.com/andrewcurate/metronic-dashboard/internal/domain"
	"github.com/andrewcurate/metronic-dashboard/internal/domain/entity"
	"github.com/andrewcurate/metronic-dashboard/internal/domain/repository"
)

// AccountUseCase resuelve el registro completo del usuario de la sesión.
type AccountUseCase struct {
	users repository.UserRepository
}

// NewAccountUseCase construye el caso de uso.
func NewAccountUseCase(users repository.UserRepository) *AccountUseCase {
	return &AccountUseCase{users: users}
}

// GetByEmail devuelve el usuario con su rol resuelto. ErrNotFound si el
// registro desapareció entre la emisión del token y esta petición.
func (uc *AccountUseCase) GetByEmail(email string) (*dto.AccountResponse, error) {
	user, err := uc.users.GetByEmailWithRole(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return toAccountResponse(user), nil
}

func toAccountResponse(u *entity.UserWithRole) *dto.AccountResponse {
	out := &dto.AccountResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Status:    u.Status,
		Avatar:    u.Avatar,
		RoleID:    u.RoleID,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	if u.Role != nil {
		out.Role = &dto.RoleResponse{
			ID:        u.Role.ID,
			Name:      u.Role.Name,
			Slug:      u.Role.Slug,
			IsDefault: u.Role.IsDefault,
		}
	}
	return out
}
