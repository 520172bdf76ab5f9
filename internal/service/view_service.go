package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/MAHBUBNISHAN/yoga-school-server/internal/dto"
	"github.com/MAHBUBNISHAN/yoga-school-server/internal/model"
	"github.com/MAHBUBNISHAN/yoga-school-server/internal/repository"
	"github.com/MAHBUBNISHAN/yoga-school-server/pkg/apperror"
)

// topLimit bounds the ranked views.
const topLimit = 6

// ViewService computes the derived projections over users, classes and
// enrollments. All four views are pure reads; dangling soft references
// (a class whose instructor email matches no user, an enrollment whose
// class id matches no class) count as "no match", never as an error.
type ViewService interface {
	TopClasses(ctx context.Context) ([]model.Class, error)
	ApprovedClasses(ctx context.Context) ([]model.Class, error)
	InstructorDirectory(ctx context.Context) ([]dto.InstructorEntry, error)
	PopularInstructors(ctx context.Context) ([]dto.InstructorEntry, error)
}

type viewService struct {
	userRepo       repository.UserRepository
	classRepo      repository.ClassRepository
	enrollmentRepo repository.EnrollmentRepository
}

func NewViewService(userRepo repository.UserRepository, classRepo repository.ClassRepository, enrollmentRepo repository.EnrollmentRepository) ViewService {
	return &viewService{
		userRepo:       userRepo,
		classRepo:      classRepo,
		enrollmentRepo: enrollmentRepo,
	}
}

// TopClasses ranks classes by live join-based enrollment counts, not by any
// stored counter. Ties keep storage order (stable sort over insertion
// order).
func (s *viewService) TopClasses(ctx context.Context) ([]model.Class, error) {
	classes, err := s.classRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrComputationFailed, err)
	}

	counts, err := s.enrollmentRepo.CountsByClass(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrComputationFailed, err)
	}

	for i := range classes {
		classes[i].EnrolledCount = counts[classes[i].ID]
	}

	sort.SliceStable(classes, func(i, j int) bool {
		return classes[i].EnrolledCount > classes[j].EnrolledCount
	})

	if len(classes) > topLimit {
		classes = classes[:topLimit]
	}

	return classes, nil
}

func (s *viewService) ApprovedClasses(ctx context.Context) ([]model.Class, error) {
	classes, err := s.classRepo.FindByStatus(ctx, model.ClassStatusApproved)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrComputationFailed, err)
	}

	return classes, nil
}

// InstructorDirectory lists every instructor joined against their classes.
// Instructors with no classes still appear with classCount 0.
func (s *viewService) InstructorDirectory(ctx context.Context) ([]dto.InstructorEntry, error) {
	return s.joinInstructors(ctx)
}

// PopularInstructors adds summed live enrollment counts on top of the
// directory join, ordered descending, top 6.
func (s *viewService) PopularInstructors(ctx context.Context) ([]dto.InstructorEntry, error) {
	entries, err := s.joinInstructors(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalStudents > entries[j].TotalStudents
	})

	if len(entries) > topLimit {
		entries = entries[:topLimit]
	}

	return entries, nil
}

// joinInstructors performs the left outer join keyed on
// class.instructorEmail == user.email. Classes are grouped by instructor
// email into a map first, so the scan is O(instructors + classes) instead
// of rescanning all classes per instructor.
func (s *viewService) joinInstructors(ctx context.Context) ([]dto.InstructorEntry, error) {
	instructors, err := s.userRepo.FindByRole(ctx, model.RoleInstructor)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrComputationFailed, err)
	}

	classes, err := s.classRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrComputationFailed, err)
	}

	counts, err := s.enrollmentRepo.CountsByClass(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrComputationFailed, err)
	}

	byInstructor := make(map[string][]model.Class, len(instructors))
	for _, class := range classes {
		byInstructor[class.InstructorEmail] = append(byInstructor[class.InstructorEmail], class)
	}

	entries := make([]dto.InstructorEntry, 0, len(instructors))
	for _, instructor := range instructors {
		matched := byInstructor[instructor.Email]

		names := make([]string, 0, len(matched))
		var total int64
		for _, class := range matched {
			names = append(names, class.Name)
			total += counts[class.ID]
		}

		entries = append(entries, dto.InstructorEntry{
			Name:          instructor.Name,
			Email:         instructor.Email,
			Role:          instructor.Role,
			PhotoURL:      instructor.PhotoURL,
			ClassCount:    len(matched),
			Classes:       names,
			TotalStudents: total,
		})
	}

	return entries, nil
}
