package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
	RoleAdmin      = "admin"
)

// ValidRole reports whether name is one of the fixed role enumeration.
func ValidRole(name string) bool {
	switch name {
	case RoleStudent, RoleInstructor, RoleAdmin:
		return true
	}
	return false
}

// User is keyed by email; the uuid id exists only as an opaque handle for
// admin routes. Users are never deleted in the normal flow.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:100" json:"name"`
	Email     string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Role      string    `gorm:"size:20;not null;default:student" json:"role"`
	PhotoURL  string    `gorm:"type:text" json:"photoUrl"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.Role == "" {
		u.Role = RoleStudent
	}
	return nil
}
