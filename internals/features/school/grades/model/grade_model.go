// file: internals/features/school/grades/model/grade_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GradeCategory = kategori penilaian dengan bobot tetap ke nilai akhir
type GradeCategory string

const (
	GradeCategoryHarian GradeCategory = "harian" // Penilaian Harian - 30%
	GradeCategoryUTS    GradeCategory = "uts"    // Ujian Tengah Semester - 30%
	GradeCategoryUAS    GradeCategory = "uas"    // Ujian Akhir Semester - 40%
)

func (c GradeCategory) Valid() bool {
	switch c {
	case GradeCategoryHarian, GradeCategoryUTS, GradeCategoryUAS:
		return true
	}
	return false
}

// GradeModel merepresentasikan tabel `grades` (satu baris = satu penilaian)
type GradeModel struct {
	GradeID uuid.UUID `json:"grade_id" gorm:"column:grade_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	GradeStudentID uuid.UUID `json:"grade_student_id" gorm:"column:grade_student_id;type:uuid;not null;index:idx_grades_student_subject,priority:1"`
	GradeSubjectID uuid.UUID `json:"grade_subject_id" gorm:"column:grade_subject_id;type:uuid;not null;index:idx_grades_student_subject,priority:2"`
	GradeTeacherID uuid.UUID `json:"grade_teacher_id" gorm:"column:grade_teacher_id;type:uuid;not null;index:idx_grades_teacher"`

	GradeCategory GradeCategory `json:"grade_category" gorm:"column:grade_category;type:varchar(10);not null"`

	// Skor 0-100, presisi 2 desimal (numeric(5,2)) — jangan float, bisa drift
	GradeScore decimal.Decimal `json:"grade_score" gorm:"column:grade_score;type:numeric(5,2);not null"`

	GradeAssessmentName string    `json:"grade_assessment_name" gorm:"column:grade_assessment_name;type:varchar(200);not null"`
	GradeAssessmentDate time.Time `json:"grade_assessment_date" gorm:"column:grade_assessment_date;type:date;not null"`

	GradeSemester     int    `json:"grade_semester" gorm:"column:grade_semester;not null"` // 1 atau 2
	GradeAcademicYear string `json:"grade_academic_year" gorm:"column:grade_academic_year;type:varchar(9);not null;index:idx_grades_academic_year"`

	GradeNotes *string `json:"grade_notes" gorm:"column:grade_notes;type:varchar(500)"`

	GradeCreatedAt time.Time      `json:"grade_created_at" gorm:"column:grade_created_at;not null;autoCreateTime"`
	GradeUpdatedAt time.Time      `json:"grade_updated_at" gorm:"column:grade_updated_at;not null;autoUpdateTime"`
	GradeDeletedAt gorm.DeletedAt `json:"grade_deleted_at" gorm:"column:grade_deleted_at;index"`
}

func (GradeModel) TableName() string { return "grades" }
