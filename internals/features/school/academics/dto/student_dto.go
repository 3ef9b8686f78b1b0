// file: internals/features/school/academics/dto/student_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateStudentRequest struct {
	NIS         string    `json:"student_nis" validate:"required,max=20"`
	Name        string    `json:"student_name" validate:"required,max=100"`
	DateOfBirth string    `json:"student_date_of_birth" validate:"required,datetime=2006-01-02"`
	Gender      string    `json:"student_gender" validate:"required,oneof=M F"`
	Address     *string   `json:"student_address" validate:"omitempty,max=500"`
	ParentName  *string   `json:"student_parent_name" validate:"omitempty,max=100"`
	ParentPhone *string   `json:"student_parent_phone" validate:"omitempty,max=20"`
	ClassID     uuid.UUID `json:"student_class_id" validate:"required"`
}

type UpdateStudentRequest struct {
	Name        *string    `json:"student_name" validate:"omitempty,max=100"`
	DateOfBirth *string    `json:"student_date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Gender      *string    `json:"student_gender" validate:"omitempty,oneof=M F"`
	Address     *string    `json:"student_address" validate:"omitempty,max=500"`
	ParentName  *string    `json:"student_parent_name" validate:"omitempty,max=100"`
	ParentPhone *string    `json:"student_parent_phone" validate:"omitempty,max=20"`
	ClassID     *uuid.UUID `json:"student_class_id" validate:"omitempty"`
	IsActive    *bool      `json:"student_is_active" validate:"omitempty"`
}

type StudentResponse struct {
	ID          uuid.UUID `json:"student_id"`
	NIS         string    `json:"student_nis"`
	Name        string    `json:"student_name"`
	DateOfBirth string    `json:"student_date_of_birth"`
	Gender      string    `json:"student_gender"`
	Address     *string   `json:"student_address"`
	ParentName  *string   `json:"student_parent_name"`
	ParentPhone *string   `json:"student_parent_phone"`
	ClassID     uuid.UUID `json:"student_class_id"`
	IsActive    bool      `json:"student_is_active"`
	CreatedAt   time.Time `json:"student_created_at"`
	UpdatedAt   time.Time `json:"student_updated_at"`
}
