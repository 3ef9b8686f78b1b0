// file: internals/features/school/academics/dto/teacher_subject_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateTeacherSubjectRequest struct {
	TeacherID    uuid.UUID `json:"teacher_subject_teacher_id" validate:"required"`
	SubjectID    uuid.UUID `json:"teacher_subject_subject_id" validate:"required"`
	ClassID      uuid.UUID `json:"teacher_subject_class_id" validate:"required"`
	AcademicYear string    `json:"teacher_subject_academic_year" validate:"required,len=9"`
}

type TeacherSubjectResponse struct {
	ID           uuid.UUID `json:"teacher_subject_id"`
	TeacherID    uuid.UUID `json:"teacher_subject_teacher_id"`
	SubjectID    uuid.UUID `json:"teacher_subject_subject_id"`
	ClassID      uuid.UUID `json:"teacher_subject_class_id"`
	AcademicYear string    `json:"teacher_subject_academic_year"`
	IsActive     bool      `json:"teacher_subject_is_active"`
	CreatedAt    time.Time `json:"teacher_subject_created_at"`
}
