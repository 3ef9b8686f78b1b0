// file: internals/features/school/academics/dto/class_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateClassRequest struct {
	Name              string     `json:"class_name" validate:"required,max=50"`
	GradeLevel        int        `json:"class_grade_level" validate:"required,min=7,max=9"`
	AcademicYear      string     `json:"class_academic_year" validate:"required,len=9"`
	HomeroomTeacherID *uuid.UUID `json:"class_homeroom_teacher_id" validate:"omitempty"`
}

type UpdateClassRequest struct {
	Name              *string    `json:"class_name" validate:"omitempty,max=50"`
	GradeLevel        *int       `json:"class_grade_level" validate:"omitempty,min=7,max=9"`
	AcademicYear      *string    `json:"class_academic_year" validate:"omitempty,len=9"`
	HomeroomTeacherID *uuid.UUID `json:"class_homeroom_teacher_id" validate:"omitempty"`
	IsActive          *bool      `json:"class_is_active" validate:"omitempty"`
}

type ClassResponse struct {
	ID                uuid.UUID  `json:"class_id"`
	Name              string     `json:"class_name"`
	GradeLevel        int        `json:"class_grade_level"`
	AcademicYear      string     `json:"class_academic_year"`
	HomeroomTeacherID *uuid.UUID `json:"class_homeroom_teacher_id"`
	IsActive          bool       `json:"class_is_active"`
	CreatedAt         time.Time  `json:"class_created_at"`
	UpdatedAt         time.Time  `json:"class_updated_at"`
}
