package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Enrollment links a user to a class. Both sides are soft references and
// no uniqueness constraint exists, so the same user may enroll in the same
// class more than once.
type Enrollment struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserEmail string    `gorm:"size:100;index;not null" json:"userEmail"`
	ClassID   uuid.UUID `gorm:"type:uuid;index;not null" json:"classId"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (e *Enrollment) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
