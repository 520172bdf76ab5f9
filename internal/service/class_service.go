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

type ClassService interface {
	Create(ctx context.Context, instructorEmail string, input dto.CreateClassInput) (*model.Class, error)
	MyClasses(ctx context.Context, instructorEmail string) ([]model.Class, error)
	AllClasses(ctx context.Context) ([]model.Class, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*dto.MutationResult, error)
	AddFeedback(ctx context.Context, id uuid.UUID, feedback string) (*dto.MutationResult, error)
}

type classService struct {
	repo repository.ClassRepository
}

func NewClassService(repo repository.ClassRepository) ClassService {
	return &classService{repo: repo}
}

// Create always starts a class at pending with empty feedback, regardless
// of what the request carried.
func (s *classService) Create(ctx context.Context, instructorEmail string, input dto.CreateClassInput) (*model.Class, error) {
	class := &model.Class{
		Name:            input.Name,
		Description:     input.Description,
		InstructorEmail: instructorEmail,
		Status:          model.ClassStatusPending,
		Feedback:        []string{},
	}

	if err := s.repo.Create(ctx, class); err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrComputationFailed, err)
	}

	return class, nil
}

func (s *classService) MyClasses(ctx context.Context, instructorEmail string) ([]model.Class, error) {
	classes, err := s.repo.FindByInstructor(ctx, instructorEmail)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrComputationFailed, err)
	}

	return classes, nil
}

func (s *classService) AllClasses(ctx context.Context) ([]model.Class, error) {
	classes, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrComputationFailed, err)
	}

	return classes, nil
}

// UpdateStatus moves a class to approved or denied. Status never reverts
// to pending through this path; the handler's binding enforces the enum.
func (s *classService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*dto.MutationResult, error) {
	affected, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrComputationFailed, err)
	}

	return &dto.MutationResult{Affected: affected}, nil
}

func (s *classService) AddFeedback(ctx context.Context, id uuid.UUID, feedback string) (*dto.MutationResult, error) {
	affected, err := s.repo.AppendFeedback(ctx, id, feedback)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrComputationFailed, err)
	}

	return &dto.MutationResult{Affected: affected}, nil
}
