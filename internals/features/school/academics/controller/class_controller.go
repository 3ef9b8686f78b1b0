// file: internals/features/school/academics/controller/class_controller.go
package controller

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/school/academics/dto"
	model "sekolahku_backend/internals/features/school/academics/model"
	helper "sekolahku_backend/internals/helpers"
)

type ClassController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{
		DB:        db,
		Validator: validator.New(),
	}
}

func toClassResponse(m *model.ClassModel) dto.ClassResponse {
	return dto.ClassResponse{
		ID:                m.ClassID,
		Name:              m.ClassName,
		GradeLevel:        m.ClassGradeLevel,
		AcademicYear:      m.ClassAcademicYear,
		HomeroomTeacherID: m.ClassHomeroomTeacherID,
		IsActive:          m.ClassIsActive,
		CreatedAt:         m.ClassCreatedAt,
		UpdatedAt:         m.ClassUpdatedAt,
	}
}

// GET /classes?academic_year=&grade_level=&active=&limit=&offset=
func (ctl *ClassController) List(c *fiber.Ctx) error {
	qry := ctl.DB.Model(&model.ClassModel{})

	if v := c.Query("academic_year"); v != "" {
		qry = qry.Where("class_academic_year = ?", v)
	}
	if v := c.Query("grade_level"); v != "" {
		qry = qry.Where("class_grade_level = ?", helper.AtoiOr(0, v))
	}
	if v := c.Query("active"); v != "" {
		qry = qry.Where("class_is_active = ?", strings.EqualFold(v, "true") || v == "1")
	}

	limit := helper.AtoiOr(20, c.Query("limit"))
	offset := helper.AtoiOr(0, c.Query("offset"))

	var total int64
	if err := qry.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.ClassModel
	if err := qry.Order("class_grade_level ASC, class_name ASC").
		Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	out := make([]dto.ClassResponse, 0, len(rows))
	for i := range rows {
		out = append(out, toClassResponse(&rows[i]))
	}

	return helper.Success(c, "Daftar kelas", fiber.Map{
		"data": out, "total": total, "limit": limit, "offset": offset,
	})
}

// GET /classes/:id
func (ctl *ClassController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var row model.ClassModel
	if err := ctl.DB.Where("class_id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Status(http.StatusOK).JSON(toClassResponse(&row))
}

// POST /classes
func (ctl *ClassController) Create(c *fiber.Ctx) error {
	var req dto.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := model.ClassModel{
		ClassName:              strings.TrimSpace(req.Name),
		ClassGradeLevel:        req.GradeLevel,
		ClassAcademicYear:      req.AcademicYear,
		ClassHomeroomTeacherID: req.HomeroomTeacherID,
		ClassIsActive:          true,
	}

	if err := ctl.DB.Create(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Kelas berhasil ditambahkan", toClassResponse(&row))
}

// PUT /classes/:id (partial update)
func (ctl *ClassController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var existing model.ClassModel
	if err := ctl.DB.Where("class_id = ?", id).First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["class_name"] = strings.TrimSpace(*req.Name)
	}
	if req.GradeLevel != nil {
		updates["class_grade_level"] = *req.GradeLevel
	}
	if req.AcademicYear != nil {
		updates["class_academic_year"] = *req.AcademicYear
	}
	if req.HomeroomTeacherID != nil {
		updates["class_homeroom_teacher_id"] = *req.HomeroomTeacherID
	}
	if req.IsActive != nil {
		updates["class_is_active"] = *req.IsActive
	}
	if len(updates) == 0 {
		return c.Status(http.StatusOK).JSON(toClassResponse(&existing))
	}
	updates["class_updated_at"] = time.Now()

	if err := ctl.DB.Model(&model.ClassModel{}).
		Where("class_id = ?", id).
		Updates(updates).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var after model.ClassModel
	if err := ctl.DB.Where("class_id = ?", id).First(&after).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Status(http.StatusOK).JSON(toClassResponse(&after))
}

// DELETE /classes/:id (soft delete)
func (ctl *ClassController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var row model.ClassModel
	if err := ctl.DB.Where("class_id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if err := ctl.DB.Delete(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.SendStatus(http.StatusNoContent)
}
