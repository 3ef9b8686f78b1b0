// file: internals/features/school/academics/model/teacher_subject_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeacherSubjectModel merepresentasikan tabel `teacher_subjects`
// (penugasan guru mengajar mapel tertentu di kelas tertentu)
type TeacherSubjectModel struct {
	TeacherSubjectID uuid.UUID `json:"teacher_subject_id" gorm:"column:teacher_subject_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	TeacherSubjectTeacherID uuid.UUID `json:"teacher_subject_teacher_id" gorm:"column:teacher_subject_teacher_id;type:uuid;not null;index:idx_teacher_subjects_teacher"`
	TeacherSubjectSubjectID uuid.UUID `json:"teacher_subject_subject_id" gorm:"column:teacher_subject_subject_id;type:uuid;not null;index:idx_teacher_subjects_subject"`
	TeacherSubjectClassID   uuid.UUID `json:"teacher_subject_class_id" gorm:"column:teacher_subject_class_id;type:uuid;not null;index:idx_teacher_subjects_class"`

	TeacherSubjectAcademicYear string `json:"teacher_subject_academic_year" gorm:"column:teacher_subject_academic_year;type:varchar(9);not null"`

	TeacherSubjectIsActive bool `json:"teacher_subject_is_active" gorm:"column:teacher_subject_is_active;not null;default:true"`

	TeacherSubjectCreatedAt time.Time      `json:"teacher_subject_created_at" gorm:"column:teacher_subject_created_at;not null;autoCreateTime"`
	TeacherSubjectDeletedAt gorm.DeletedAt `json:"teacher_subject_deleted_at" gorm:"column:teacher_subject_deleted_at;index"`
}

func (TeacherSubjectModel) TableName() string { return "teacher_subjects" }
