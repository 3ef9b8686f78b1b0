// file: internals/features/school/academics/dto/teacher_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateTeacherRequest struct {
	NIP   string  `json:"teacher_nip" validate:"required,max=20"`
	Name  string  `json:"teacher_name" validate:"required,max=100"`
	Email *string `json:"teacher_email" validate:"omitempty,email,max=255"`
	Phone *string `json:"teacher_phone" validate:"omitempty,max=20"`
}

type UpdateTeacherRequest struct {
	Name     *string `json:"teacher_name" validate:"omitempty,max=100"`
	Email    *string `json:"teacher_email" validate:"omitempty,email,max=255"`
	Phone    *string `json:"teacher_phone" validate:"omitempty,max=20"`
	IsActive *bool   `json:"teacher_is_active" validate:"omitempty"`
}

type TeacherResponse struct {
	ID        uuid.UUID `json:"teacher_id"`
	NIP       string    `json:"teacher_nip"`
	Name      string    `json:"teacher_name"`
	Email     *string   `json:"teacher_email"`
	Phone     *string   `json:"teacher_phone"`
	IsActive  bool      `json:"teacher_is_active"`
	CreatedAt time.Time `json:"teacher_created_at"`
	UpdatedAt time.Time `json:"teacher_updated_at"`
}
