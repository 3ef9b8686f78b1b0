// file: internals/features/school/academics/dto/subject_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSubjectRequest struct {
	Code        string  `json:"subject_code" validate:"required,max=10"`
	Name        string  `json:"subject_name" validate:"required,max=100"`
	Description *string `json:"subject_description" validate:"omitempty,max=500"`
}

type UpdateSubjectRequest struct {
	Name        *string `json:"subject_name" validate:"omitempty,max=100"`
	Description *string `json:"subject_description" validate:"omitempty,max=500"`
	IsActive    *bool   `json:"subject_is_active" validate:"omitempty"`
}

type SubjectResponse struct {
	ID          uuid.UUID `json:"subject_id"`
	Code        string    `json:"subject_code"`
	Name        string    `json:"subject_name"`
	Description *string   `json:"subject_description"`
	IsActive    bool      `json:"subject_is_active"`
	CreatedAt   time.Time `json:"subject_created_at"`
	UpdatedAt   time.Time `json:"subject_updated_at"`
}
