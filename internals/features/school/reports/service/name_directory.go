// file: internals/features/school/reports/service/name_directory.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	amodel "sekolahku_backend/internals/features/school/academics/model"
)

// ErrMissingReference = id yang dirujuk rekap tidak punya nama di master data.
// Ini sinyal integritas referensial rusak di hulu, bukan kondisi bisnis normal.
var ErrMissingReference = errors.New("report: referensi id tidak ditemukan")

// NameDirectory menyediakan nama tampilan untuk id yang dirujuk rekap
type NameDirectory interface {
	StudentName(ctx context.Context, id uuid.UUID) (string, error)
	SubjectName(ctx context.Context, id uuid.UUID) (string, error)
	ClassName(ctx context.Context, id uuid.UUID) (string, error)
}

type gormNameDirectory struct {
	db *gorm.DB
}

func NewGormNameDirectory(db *gorm.DB) NameDirectory {
	return &gormNameDirectory{db: db}
}

func (d *gormNameDirectory) StudentName(ctx context.Context, id uuid.UUID) (string, error) {
	var name string
	err := d.db.WithContext(ctx).
		Model(&amodel.StudentModel{}).
		Select("student_name").
		Where("student_id = ?", id).
		Take(&name).Error
	return resolved("student", id, name, err)
}

func (d *gormNameDirectory) SubjectName(ctx context.Context, id uuid.UUID) (string, error) {
	var name string
	err := d.db.WithContext(ctx).
		Model(&amodel.SubjectModel{}).
		Select("subject_name").
		Where("subject_id = ?", id).
		Take(&name).Error
	return resolved("subject", id, name, err)
}

func (d *gormNameDirectory) ClassName(ctx context.Context, id uuid.UUID) (string, error) {
	var name string
	err := d.db.WithContext(ctx).
		Model(&amodel.ClassModel{}).
		Select("class_name").
		Where("class_id = ?", id).
		Take(&name).Error
	return resolved("class", id, name, err)
}

func resolved(kind string, id uuid.UUID, name string, err error) (string, error) {
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("%w: %s %s", ErrMissingReference, kind, id)
		}
		return "", err
	}
	return name, nil
}
