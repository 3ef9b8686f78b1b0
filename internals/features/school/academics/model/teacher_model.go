// file: internals/features/school/academics/model/teacher_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeacherModel merepresentasikan tabel `teachers`
type TeacherModel struct {
	TeacherID uuid.UUID `json:"teacher_id" gorm:"column:teacher_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	// NIP = Nomor Induk Pegawai
	TeacherNIP   string  `json:"teacher_nip" gorm:"column:teacher_nip;type:varchar(20);not null;uniqueIndex:uq_teachers_nip"`
	TeacherName  string  `json:"teacher_name" gorm:"column:teacher_name;type:varchar(100);not null"`
	TeacherEmail *string `json:"teacher_email" gorm:"column:teacher_email;type:varchar(255)"`
	TeacherPhone *string `json:"teacher_phone" gorm:"column:teacher_phone;type:varchar(20)"`

	TeacherIsActive bool `json:"teacher_is_active" gorm:"column:teacher_is_active;not null;default:true"`

	TeacherCreatedAt time.Time      `json:"teacher_created_at" gorm:"column:teacher_created_at;not null;autoCreateTime"`
	TeacherUpdatedAt time.Time      `json:"teacher_updated_at" gorm:"column:teacher_updated_at;not null;autoUpdateTime"`
	TeacherDeletedAt gorm.DeletedAt `json:"teacher_deleted_at" gorm:"column:teacher_deleted_at;index"`
}

func (TeacherModel) TableName() string { return "teachers" }
