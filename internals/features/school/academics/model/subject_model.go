// file: internals/features/school/academics/model/subject_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubjectModel merepresentasikan tabel `subjects`
type SubjectModel struct {
	SubjectID uuid.UUID `json:"subject_id" gorm:"column:subject_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	SubjectCode        string  `json:"subject_code" gorm:"column:subject_code;type:varchar(10);not null;uniqueIndex:uq_subjects_code"`
	SubjectName        string  `json:"subject_name" gorm:"column:subject_name;type:varchar(100);not null"`
	SubjectDescription *string `json:"subject_description" gorm:"column:subject_description;type:varchar(500)"`

	SubjectIsActive bool `json:"subject_is_active" gorm:"column:subject_is_active;not null;default:true"`

	SubjectCreatedAt time.Time      `json:"subject_created_at" gorm:"column:subject_created_at;not null;autoCreateTime"`
	SubjectUpdatedAt time.Time      `json:"subject_updated_at" gorm:"column:subject_updated_at;not null;autoUpdateTime"`
	SubjectDeletedAt gorm.DeletedAt `json:"subject_deleted_at" gorm:"column:subject_deleted_at;index"`
}

func (SubjectModel) TableName() string { return "subjects" }
