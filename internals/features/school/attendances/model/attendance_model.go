// file: internals/features/school/attendances/model/attendance_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttendanceStatus = status kehadiran harian siswa
type AttendanceStatus string

const (
	AttendanceStatusHadir     AttendanceStatus = "hadir"     // Hadir
	AttendanceStatusAlpha     AttendanceStatus = "alpha"     // Tanpa keterangan
	AttendanceStatusIzin      AttendanceStatus = "izin"      // Izin
	AttendanceStatusSakit     AttendanceStatus = "sakit"     // Sakit
	AttendanceStatusTerlambat AttendanceStatus = "terlambat" // Terlambat
)

func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendanceStatusHadir, AttendanceStatusAlpha, AttendanceStatusIzin,
		AttendanceStatusSakit, AttendanceStatusTerlambat:
		return true
	}
	return false
}

// Priority menentukan status mana yang "menang" saat satu siswa punya
// beberapa catatan per mapel di tanggal yang sama (status terburuk menang).
// alpha > terlambat > izin > sakit > hadir
func (s AttendanceStatus) Priority() int {
	switch s {
	case AttendanceStatusAlpha:
		return 5
	case AttendanceStatusTerlambat:
		return 4
	case AttendanceStatusIzin:
		return 3
	case AttendanceStatusSakit:
		return 2
	case AttendanceStatusHadir:
		return 1
	}
	return 0
}

// CountsAsPresent: hadir & terlambat dihitung masuk untuk persentase kehadiran
func (s AttendanceStatus) CountsAsPresent() bool {
	return s == AttendanceStatusHadir || s == AttendanceStatusTerlambat
}

// AttendanceModel merepresentasikan tabel `attendances`
type AttendanceModel struct {
	AttendanceID uuid.UUID `json:"attendance_id" gorm:"column:attendance_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	AttendanceStudentID uuid.UUID `json:"attendance_student_id" gorm:"column:attendance_student_id;type:uuid;not null;index:idx_attendances_student_date,priority:1"`
	AttendanceTeacherID uuid.UUID `json:"attendance_teacher_id" gorm:"column:attendance_teacher_id;type:uuid;not null"`

	// NULL = absensi harian kelas, non-NULL = absensi per mapel
	AttendanceSubjectID *uuid.UUID `json:"attendance_subject_id" gorm:"column:attendance_subject_id;type:uuid;index:idx_attendances_subject"`

	AttendanceDate   time.Time        `json:"attendance_date" gorm:"column:attendance_date;type:date;not null;index:idx_attendances_student_date,priority:2"`
	AttendanceStatus AttendanceStatus `json:"attendance_status" gorm:"column:attendance_status;type:varchar(10);not null"`

	AttendanceNotes *string `json:"attendance_notes" gorm:"column:attendance_notes;type:varchar(500)"`

	AttendanceAcademicYear string `json:"attendance_academic_year" gorm:"column:attendance_academic_year;type:varchar(9);not null"`

	AttendanceCreatedAt time.Time      `json:"attendance_created_at" gorm:"column:attendance_created_at;not null;autoCreateTime"`
	AttendanceUpdatedAt time.Time      `json:"attendance_updated_at" gorm:"column:attendance_updated_at;not null;autoUpdateTime"`
	AttendanceDeletedAt gorm.DeletedAt `json:"attendance_deleted_at" gorm:"column:attendance_deleted_at;index"`
}

func (AttendanceModel) TableName() string { return "attendances" }
