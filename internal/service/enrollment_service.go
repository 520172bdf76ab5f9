package service

import (
	"context"
	"fmt"

	"github.com/MAHBUBNISHAN/yoga-school-server/internal/dto"
	"github.com/MAHBUBNISHAN/yoga-school-server/internal/model"
	"github.com/MAHBUBNISHAN/yoga-school-server/internal/repository"
	"github.com/MAHBUBNISHAN/yoga-school-server/pkg/apperror"
	"github.com/google/uuid"
)

type EnrollmentService interface {
	Select(ctx context.Context, userEmail string, input dto.SelectClassInput) (*model.Enrollment, error)
	MySelections(ctx context.Context, userEmail string) ([]model.Enrollment, error)
	Withdraw(ctx context.Context, id uuid.UUID, userEmail string) (*dto.MutationResult, error)
}

type enrollmentService struct {
	repo repository.EnrollmentRepository
}

func NewEnrollmentService(repo repository.EnrollmentRepository) EnrollmentService {
	return &enrollmentService{repo: repo}
}

// Select records the link as-is. There is no duplicate guard, so a user
// selecting the same class twice produces two enrollments and inflates
// derived counts. Kept lenient pending product clarification.
func (s *enrollmentService) Select(ctx context.Context, userEmail string, input dto.SelectClassInput) (*model.Enrollment, error) {
	enrollment := &model.Enrollment{
		UserEmail: userEmail,
		ClassID:   input.ClassID,
	}

	if err := s.repo.Create(ctx, enrollment); err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrComputationFailed, err)
	}

	return enrollment, nil
}

func (s *enrollmentService) MySelections(ctx context.Context, userEmail string) ([]model.Enrollment, error) {
	enrollments, err := s.repo.FindByUserEmail(ctx, userEmail)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrComputationFailed, err)
	}

	return enrollments, nil
}

// Withdraw is owner-scoped by the token email; another user's enrollment
// id, like a missing one, is a zero-affected no-op.
func (s *enrollmentService) Withdraw(ctx context.Context, id uuid.UUID, userEmail string) (*dto.MutationResult, error) {
	affected, err := s.repo.DeleteOwned(ctx, id, userEmail)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrComputationFailed, err)
	}

	return &dto.MutationResult{Affected: affected}, nil
}
