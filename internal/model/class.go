package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ClassStatusPending  = "pending"
	ClassStatusApproved = "approved"
	ClassStatusDenied   = "denied"
)

// Class carries a soft reference to its instructor by email. A dangling
// reference is tolerated and simply yields no match in joins.
type Class struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name            string    `gorm:"size:100;not null" json:"name"`
	Description     string    `gorm:"type:text" json:"description"`
	InstructorEmail string    `gorm:"size:100;index" json:"instructorEmail"`
	Status          string    `gorm:"size:20;not null;default:pending" json:"status"`
	Feedback        []string  `gorm:"serializer:json" json:"feedback"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Derived at view time from enrollment rows, never stored as truth.
	EnrolledCount int64 `gorm:"-" json:"enrolledCount"`
}

func (c *Class) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.Status == "" {
		c.Status = ClassStatusPending
	}
	return nil
}
