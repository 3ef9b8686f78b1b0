// file: internals/features/school/grades/dto/grade_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ===== Requests =====

// CreateGradeRequest — satu penilaian (score divalidasi 0-100 di controller,
// validator v10 tidak paham decimal)
type CreateGradeRequest struct {
	StudentID      uuid.UUID       `json:"grade_student_id" validate:"required"`
	SubjectID      uuid.UUID       `json:"grade_subject_id" validate:"required"`
	TeacherID      uuid.UUID       `json:"grade_teacher_id" validate:"required"`
	Category       string          `json:"grade_category" validate:"required,oneof=harian uts uas"`
	Score          decimal.Decimal `json:"grade_score"`
	AssessmentName string          `json:"grade_assessment_name" validate:"required,max=200"`
	AssessmentDate string          `json:"grade_assessment_date" validate:"required,datetime=2006-01-02"`
	Semester       int             `json:"grade_semester" validate:"required,oneof=1 2"`
	AcademicYear   string          `json:"grade_academic_year" validate:"required,len=9"`
	Notes          *string         `json:"grade_notes" validate:"omitempty,max=500"`
}

// UpdateGradeRequest (partial) — hanya field non-nil yang di-update.
// Kategori/siswa/mapel sengaja tidak bisa diganti; salah input = hapus & buat baru.
type UpdateGradeRequest struct {
	Score          *decimal.Decimal `json:"grade_score" validate:"omitempty"`
	AssessmentName *string          `json:"grade_assessment_name" validate:"omitempty,max=200"`
	AssessmentDate *string          `json:"grade_assessment_date" validate:"omitempty,datetime=2006-01-02"`
	Notes          *string          `json:"grade_notes" validate:"omitempty,max=500"`
}

// Filter list (query params)
type ListGradeFilter struct {
	StudentID    *uuid.UUID `query:"student_id" validate:"omitempty"`
	SubjectID    *uuid.UUID `query:"subject_id" validate:"omitempty"`
	TeacherID    *uuid.UUID `query:"teacher_id" validate:"omitempty"`
	Category     *string    `query:"category" validate:"omitempty,oneof=harian uts uas"`
	Semester     *int       `query:"semester" validate:"omitempty,oneof=1 2"`
	AcademicYear *string    `query:"academic_year" validate:"omitempty,len=9"`
	Limit        int        `query:"limit" validate:"omitempty,min=1,max=200"`
	Offset       int        `query:"offset" validate:"omitempty,min=0"`
}

// ===== Responses =====

type GradeResponse struct {
	ID             uuid.UUID       `json:"grade_id"`
	StudentID      uuid.UUID       `json:"grade_student_id"`
	SubjectID      uuid.UUID       `json:"grade_subject_id"`
	TeacherID      uuid.UUID       `json:"grade_teacher_id"`
	Category       string          `json:"grade_category"`
	Score          decimal.Decimal `json:"grade_score"`
	AssessmentName string          `json:"grade_assessment_name"`
	AssessmentDate string          `json:"grade_assessment_date"`
	Semester       int             `json:"grade_semester"`
	AcademicYear   string          `json:"grade_academic_year"`
	Notes          *string         `json:"grade_notes"`
	CreatedAt      time.Time       `json:"grade_created_at"`
	UpdatedAt      time.Time       `json:"grade_updated_at"`
}

type ListGradeResponse struct {
	Data   []GradeResponse `json:"data"`
	Total  int64           `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}
