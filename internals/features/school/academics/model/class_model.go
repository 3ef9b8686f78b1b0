// file: internals/features/school/academics/model/class_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClassModel merepresentasikan tabel `classes` (rombongan belajar, mis. "7A")
type ClassModel struct {
	ClassID uuid.UUID `json:"class_id" gorm:"column:class_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	ClassName       string `json:"class_name" gorm:"column:class_name;type:varchar(50);not null"`
	ClassGradeLevel int    `json:"class_grade_level" gorm:"column:class_grade_level;not null"` // 7-9 untuk SMP

	// Format "2023/2024"
	ClassAcademicYear string `json:"class_academic_year" gorm:"column:class_academic_year;type:varchar(9);not null;index:idx_classes_academic_year"`

	ClassHomeroomTeacherID *uuid.UUID `json:"class_homeroom_teacher_id" gorm:"column:class_homeroom_teacher_id;type:uuid;index:idx_classes_homeroom_teacher"`

	ClassIsActive bool `json:"class_is_active" gorm:"column:class_is_active;not null;default:true"`

	ClassCreatedAt time.Time      `json:"class_created_at" gorm:"column:class_created_at;not null;autoCreateTime"`
	ClassUpdatedAt time.Time      `json:"class_updated_at" gorm:"column:class_updated_at;not null;autoUpdateTime"`
	ClassDeletedAt gorm.DeletedAt `json:"class_deleted_at" gorm:"column:class_deleted_at;index"`
}

func (ClassModel) TableName() string { return "classes" }
