// file: internals/features/school/attendances/dto/attendance_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

// ===== Requests =====

type CreateAttendanceRequest struct {
	StudentID uuid.UUID `json:"attendance_student_id" validate:"required"`
	TeacherID uuid.UUID `json:"attendance_teacher_id" validate:"required"`
	// NULL = absensi harian kelas, non-NULL = per mapel
	SubjectID    *uuid.UUID `json:"attendance_subject_id" validate:"omitempty"`
	Date         string     `json:"attendance_date" validate:"required,datetime=2006-01-02"`
	Status       string     `json:"attendance_status" validate:"required,oneof=hadir alpha izin sakit terlambat"`
	Notes        *string    `json:"attendance_notes" validate:"omitempty,max=500"`
	AcademicYear string     `json:"attendance_academic_year" validate:"required,len=9"`
}

// UpdateAttendanceRequest (partial) — koreksi status/keterangan saja
type UpdateAttendanceRequest struct {
	Status *string `json:"attendance_status" validate:"omitempty,oneof=hadir alpha izin sakit terlambat"`
	Notes  *string `json:"attendance_notes" validate:"omitempty,max=500"`
}

type ListAttendanceFilter struct {
	StudentID    *uuid.UUID `query:"student_id" validate:"omitempty"`
	TeacherID    *uuid.UUID `query:"teacher_id" validate:"omitempty"`
	SubjectID    *uuid.UUID `query:"subject_id" validate:"omitempty"`
	Status       *string    `query:"status" validate:"omitempty,oneof=hadir alpha izin sakit terlambat"`
	Month        *int       `query:"month" validate:"omitempty,min=1,max=12"`
	Year         *int       `query:"year" validate:"omitempty,min=2000,max=2100"`
	AcademicYear *string    `query:"academic_year" validate:"omitempty,len=9"`
	Limit        int        `query:"limit" validate:"omitempty,min=1,max=200"`
	Offset       int        `query:"offset" validate:"omitempty,min=0"`
}

// ===== Responses =====

type AttendanceResponse struct {
	ID           uuid.UUID  `json:"attendance_id"`
	StudentID    uuid.UUID  `json:"attendance_student_id"`
	TeacherID    uuid.UUID  `json:"attendance_teacher_id"`
	SubjectID    *uuid.UUID `json:"attendance_subject_id"`
	Date         string     `json:"attendance_date"`
	Status       string     `json:"attendance_status"`
	Notes        *string    `json:"attendance_notes"`
	AcademicYear string     `json:"attendance_academic_year"`
	CreatedAt    time.Time  `json:"attendance_created_at"`
	UpdatedAt    time.Time  `json:"attendance_updated_at"`
}

type ListAttendanceResponse struct {
	Data   []AttendanceResponse `json:"data"`
	Total  int64                `json:"total"`
	Limit  int                  `json:"limit"`
	Offset int                  `json:"offset"`
}
