// file: internals/features/school/academics/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StudentModel merepresentasikan tabel `students`
type StudentModel struct {
	StudentID uuid.UUID `json:"student_id" gorm:"column:student_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	// NIS = Nomor Induk Siswa
	StudentNIS         string    `json:"student_nis" gorm:"column:student_nis;type:varchar(20);not null;uniqueIndex:uq_students_nis"`
	StudentName        string    `json:"student_name" gorm:"column:student_name;type:varchar(100);not null"`
	StudentDateOfBirth time.Time `json:"student_date_of_birth" gorm:"column:student_date_of_birth;type:date;not null"`
	StudentGender      string    `json:"student_gender" gorm:"column:student_gender;type:char(1);not null"` // M / F
	StudentAddress     *string   `json:"student_address" gorm:"column:student_address;type:varchar(500)"`
	StudentParentName  *string   `json:"student_parent_name" gorm:"column:student_parent_name;type:varchar(100)"`
	StudentParentPhone *string   `json:"student_parent_phone" gorm:"column:student_parent_phone;type:varchar(20)"`

	StudentClassID uuid.UUID `json:"student_class_id" gorm:"column:student_class_id;type:uuid;not null;index:idx_students_class"`

	StudentIsActive bool `json:"student_is_active" gorm:"column:student_is_active;not null;default:true"`

	StudentCreatedAt time.Time      `json:"student_created_at" gorm:"column:student_created_at;not null;autoCreateTime"`
	StudentUpdatedAt time.Time      `json:"student_updated_at" gorm:"column:student_updated_at;not null;autoUpdateTime"`
	StudentDeletedAt gorm.DeletedAt `json:"student_deleted_at" gorm:"column:student_deleted_at;index"`
}

func (StudentModel) TableName() string { return "students" }
