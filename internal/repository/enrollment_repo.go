package repository

import (
	"context"

	"github.com/MAHBUBNISHAN/yoga-school-server/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EnrollmentRepository interface {
	Create(ctx context.Context, enrollment *model.Enrollment) error
	FindByUserEmail(ctx context.Context, email string) ([]model.Enrollment, error)
	// CountsByClass returns live enrollment counts grouped by class id.
	CountsByClass(ctx context.Context) (map[uuid.UUID]int64, error)
	// DeleteOwned removes an enrollment only when it belongs to email.
	// A missing id or a foreign owner is a zero-affected no-op.
	DeleteOwned(ctx context.Context, id uuid.UUID, email string) (int64, error)
}

type enrollmentRepository struct {
	db *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) EnrollmentRepository {
	return &enrollmentRepository{db: db}
}

func (r *enrollmentRepository) Create(ctx context.Context, enrollment *model.Enrollment) error {
	return r.db.WithContext(ctx).Create(enrollment).Error
}

func (r *enrollmentRepository) FindByUserEmail(ctx context.Context, email string) ([]model.Enrollment, error) {
	enrollments := make([]model.Enrollment, 0)
	if err := r.db.WithContext(ctx).
		Where("user_email = ?", email).
		Order("created_at").
		Find(&enrollments).Error; err != nil {
		return nil, err
	}

	return enrollments, nil
}

func (r *enrollmentRepository) CountsByClass(ctx context.Context) (map[uuid.UUID]int64, error) {
	type row struct {
		ClassID uuid.UUID
		Total   int64
	}

	var rows []row
	if err := r.db.WithContext(ctx).
		Model(&model.Enrollment{}).
		Select("class_id, COUNT(*) as total").
		Group("class_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[uuid.UUID]int64, len(rows))
	for _, r := range rows {
		counts[r.ClassID] = r.Total
	}

	return counts, nil
}

func (r *enrollmentRepository) DeleteOwned(ctx context.Context, id uuid.UUID, email string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_email = ?", id, email).
		Delete(&model.Enrollment{})

	return res.RowsAffected, res.Error
}
