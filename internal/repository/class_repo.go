package repository

import (
	"context"
	"errors"

	"github.com/MAHBUBNISHAN/yoga-school-server/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClassRepository interface {
	Create(ctx context.Context, class *model.Class) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Class, error)
	FindAll(ctx context.Context) ([]model.Class, error)
	FindByStatus(ctx context.Context, status string) ([]model.Class, error)
	FindByInstructor(ctx context.Context, email string) ([]model.Class, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (int64, error)
	AppendFeedback(ctx context.Context, id uuid.UUID, feedback string) (int64, error)
}

type classRepository struct {
	db *gorm.DB
}

func NewClassRepository(db *gorm.DB) ClassRepository {
	return &classRepository{db: db}
}

func (r *classRepository) Create(ctx context.Context, class *model.Class) error {
	return r.db.WithContext(ctx).Create(class).Error
}

func (r *classRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Class, error) {
	var class model.Class
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&class).Error; err != nil {
		return nil, err
	}

	return &class, nil
}

func (r *classRepository) FindAll(ctx context.Context) ([]model.Class, error) {
	classes := make([]model.Class, 0)
	if err := r.db.WithContext(ctx).Order("created_at").Find(&classes).Error; err != nil {
		return nil, err
	}

	return classes, nil
}

func (r *classRepository) FindByStatus(ctx context.Context, status string) ([]model.Class, error) {
	classes := make([]model.Class, 0)
	if err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at").
		Find(&classes).Error; err != nil {
		return nil, err
	}

	return classes, nil
}

func (r *classRepository) FindByInstructor(ctx context.Context, email string) ([]model.Class, error) {
	classes := make([]model.Class, 0)
	if err := r.db.WithContext(ctx).
		Where("instructor_email = ?", email).
		Order("created_at").
		Find(&classes).Error; err != nil {
		return nil, err
	}

	return classes, nil
}

func (r *classRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Class{}).
		Where("id = ?", id).
		Update("status", status)

	return res.RowsAffected, res.Error
}

// AppendFeedback re-reads the row inside a transaction so concurrent
// appends never drop an entry.
func (r *classRepository) AppendFeedback(ctx context.Context, id uuid.UUID, feedback string) (int64, error) {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var class model.Class
		if err := tx.Where("id = ?", id).First(&class).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		class.Feedback = append(class.Feedback, feedback)
		res := tx.Model(&model.Class{}).
			Where("id = ?", id).
			Update("feedback", class.Feedback)
		if res.Error != nil {
			return res.Error
		}

		affected = res.RowsAffected
		return nil
	})

	return affected, err
}
