// file: internals/features/school/reports/dto/report_dto.go
package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FixedScore membungkus decimal supaya serialisasi JSON selalu tepat 2 desimal
// (80.50, bukan 80.5) — layer presentasi di bawah tidak boleh membulatkan ulang.
type FixedScore struct {
	decimal.Decimal
}

func (s FixedScore) MarshalJSON() ([]byte, error) {
	return []byte(s.StringFixed(2)), nil
}

// NewFixedScore konversi pointer decimal → pointer FixedScore (nil tetap nil)
func NewFixedScore(d *decimal.Decimal) *FixedScore {
	if d == nil {
		return nil
	}
	return &FixedScore{*d}
}

// ===== Rekap nilai =====

type StudentGradesSummaryResponse struct {
	StudentID    uuid.UUID   `json:"student_id"`
	StudentName  string      `json:"student_name"`
	SubjectID    uuid.UUID   `json:"subject_id"`
	SubjectName  string      `json:"subject_name"`
	HarianAvg    *FixedScore `json:"harian_avg"`
	UTSScore     *FixedScore `json:"uts_score"`
	UASScore     *FixedScore `json:"uas_score"`
	FinalGrade   *FixedScore `json:"final_grade"`
	Semester     int         `json:"semester"`
	AcademicYear string      `json:"academic_year"`
}

type ClassGradesSummaryResponse struct {
	ClassID       uuid.UUID   `json:"class_id"`
	ClassName     string      `json:"class_name"`
	SubjectID     uuid.UUID   `json:"subject_id"`
	SubjectName   string      `json:"subject_name"`
	EnrolledCount int         `json:"enrolled_count"`
	GradedCount   int         `json:"graded_count"`
	AverageGrade  *FixedScore `json:"average_grade"`
	HighestGrade  *FixedScore `json:"highest_grade"`
	LowestGrade   *FixedScore `json:"lowest_grade"`
	Semester      int         `json:"semester"`
	AcademicYear  string      `json:"academic_year"`
}

// ===== Rekap kehadiran =====

type StudentAttendanceSummaryResponse struct {
	StudentID            uuid.UUID  `json:"student_id"`
	StudentName          string     `json:"student_name"`
	TotalDays            int        `json:"total_days"`
	HadirCount           int        `json:"hadir_count"`
	AlphaCount           int        `json:"alpha_count"`
	IzinCount            int        `json:"izin_count"`
	SakitCount           int        `json:"sakit_count"`
	TerlambatCount       int        `json:"terlambat_count"`
	AttendancePercentage FixedScore `json:"attendance_percentage"`
	Month                int        `json:"month"`
	Year                 int        `json:"year"`
}

type ClassAttendanceSummaryResponse struct {
	ClassID                     uuid.UUID  `json:"class_id"`
	ClassName                   string     `json:"class_name"`
	TotalStudents               int        `json:"total_students"`
	TotalDays                   int        `json:"total_days"`
	OverallAttendancePercentage FixedScore `json:"overall_attendance_percentage"`
	Month                       int        `json:"month"`
	Year                        int        `json:"year"`
}
