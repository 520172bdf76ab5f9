package dto

import "github.com/google/uuid"

type SelectClassInput struct {
	ClassID uuid.UUID `json:"classId" binding:"required"`
}
