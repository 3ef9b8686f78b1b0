// file: internals/features/school/academics/controller/teacher_subject_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/school/academics/dto"
	model "sekolahku_backend/internals/features/school/academics/model"
	helper "sekolahku_backend/internals/helpers"
)

type TeacherSubjectController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewTeacherSubjectController(db *gorm.DB) *TeacherSubjectController {
	return &TeacherSubjectController{
		DB:        db,
		Validator: validator.New(),
	}
}

func toTeacherSubjectResponse(m *model.TeacherSubjectModel) dto.TeacherSubjectResponse {
	return dto.TeacherSubjectResponse{
		ID:           m.TeacherSubjectID,
		TeacherID:    m.TeacherSubjectTeacherID,
		SubjectID:    m.TeacherSubjectSubjectID,
		ClassID:      m.TeacherSubjectClassID,
		AcademicYear: m.TeacherSubjectAcademicYear,
		IsActive:     m.TeacherSubjectIsActive,
		CreatedAt:    m.TeacherSubjectCreatedAt,
	}
}

// GET /teacher-subjects?teacher_id=&subject_id=&class_id=&academic_year=&limit=&offset=
func (ctl *TeacherSubjectController) List(c *fiber.Ctx) error {
	qry := ctl.DB.Model(&model.TeacherSubjectModel{})

	if v, err := helper.ParseUUIDQuery(c, "teacher_id"); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "teacher_id tidak valid")
	} else if v != uuid.Nil {
		qry = qry.Where("teacher_subject_teacher_id = ?", v)
	}
	if v, err := helper.ParseUUIDQuery(c, "subject_id"); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "subject_id tidak valid")
	} else if v != uuid.Nil {
		qry = qry.Where("teacher_subject_subject_id = ?", v)
	}
	if v, err := helper.ParseUUIDQuery(c, "class_id"); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "class_id tidak valid")
	} else if v != uuid.Nil {
		qry = qry.Where("teacher_subject_class_id = ?", v)
	}
	if v := c.Query("academic_year"); v != "" {
		qry = qry.Where("teacher_subject_academic_year = ?", v)
	}

	limit := helper.AtoiOr(20, c.Query("limit"))
	offset := helper.AtoiOr(0, c.Query("offset"))

	var total int64
	if err := qry.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.TeacherSubjectModel
	if err := qry.Order("teacher_subject_created_at DESC").
		Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	out := make([]dto.TeacherSubjectResponse, 0, len(rows))
	for i := range rows {
		out = append(out, toTeacherSubjectResponse(&rows[i]))
	}

	return helper.Success(c, "Daftar penugasan guru", fiber.Map{
		"data": out, "total": total, "limit": limit, "offset": offset,
	})
}

// POST /teacher-subjects
func (ctl *TeacherSubjectController) Create(c *fiber.Ctx) error {
	var req dto.CreateTeacherSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := model.TeacherSubjectModel{
		TeacherSubjectTeacherID:    req.TeacherID,
		TeacherSubjectSubjectID:    req.SubjectID,
		TeacherSubjectClassID:      req.ClassID,
		TeacherSubjectAcademicYear: req.AcademicYear,
		TeacherSubjectIsActive:     true,
	}

	if err := ctl.DB.Create(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Penugasan guru berhasil dibuat", toTeacherSubjectResponse(&row))
}

// DELETE /teacher-subjects/:id (soft delete)
func (ctl *TeacherSubjectController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var row model.TeacherSubjectModel
	if err := ctl.DB.Where("teacher_subject_id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Penugasan tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if err := ctl.DB.Delete(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.SendStatus(http.StatusNoContent)
}
