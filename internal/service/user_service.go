package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MAHBUBNISHAN/yoga-school-server/internal/dto"
	"github.com/MAHBUBNISHAN/yoga-school-server/internal/model"
	"github.com/MAHBUBNISHAN/yoga-school-server/internal/repository"
	"github.com/MAHBUBNISHAN/yoga-school-server/pkg/apperror"
	"gorm.io/gorm"
)

type UserService interface {
	Register(ctx context.Context, input dto.RegisterUserInput) (*model.User, bool, error)
	GetAllUsers(ctx context.Context) ([]model.User, error)
	UpdateRole(ctx context.Context, id string, role string) (*dto.MutationResult, error)
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

// Register creates the user if the email is unseen. An existing email is a
// neutral success (created=false), mirroring idempotent self-registration
// on every login.
func (s *userService) Register(ctx context.Context, input dto.RegisterUserInput) (*model.User, bool, error) {
	existing, err := s.repo.FindByEmail(ctx, input.Email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("%w: %v", apperror.ErrComputationFailed, err)
	}

	role := input.Role
	if role == "" {
		role = model.RoleStudent
	}

	user := &model.User{
		Name:     input.Name,
		Email:    input.Email,
		Role:     role,
		PhotoURL: input.PhotoURL,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, false, fmt.Errorf("%w: %v", apperror.ErrComputationFailed, err)
	}

	return user, true, nil
}

func (s *userService) GetAllUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrComputationFailed, err)
	}

	return users, nil
}

// UpdateRole applies an admin role transition. A missing id reports zero
// records affected rather than failing.
func (s *userService) UpdateRole(ctx context.Context, id string, role string) (*dto.MutationResult, error) {
	if !model.ValidRole(role) {
		return nil, fmt.Errorf("%w: unknown role %q", apperror.ErrInvalidInput, role)
	}

	affected, err := s.repo.UpdateRole(ctx, id, role)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrComputationFailed, err)
	}

	return &dto.MutationResult{Affected: affected}, nil
}
