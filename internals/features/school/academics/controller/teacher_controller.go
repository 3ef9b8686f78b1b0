// file: internals/features/school/academics/controller/teacher_controller.go
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

type TeacherController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewTeacherController(db *gorm.DB) *TeacherController {
	return &TeacherController{
		DB:        db,
		Validator: validator.New(),
	}
}

func toTeacherResponse(m *model.TeacherModel) dto.TeacherResponse {
	return dto.TeacherResponse{
		ID:        m.TeacherID,
		NIP:       m.TeacherNIP,
		Name:      m.TeacherName,
		Email:     m.TeacherEmail,
		Phone:     m.TeacherPhone,
		IsActive:  m.TeacherIsActive,
		CreatedAt: m.TeacherCreatedAt,
		UpdatedAt: m.TeacherUpdatedAt,
	}
}

// GET /teachers?active=&q=&limit=&offset=
func (ctl *TeacherController) List(c *fiber.Ctx) error {
	qry := ctl.DB.Model(&model.TeacherModel{})

	if v := c.Query("active"); v != "" {
		qry = qry.Where("teacher_is_active = ?", strings.EqualFold(v, "true") || v == "1")
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		qry = qry.Where("(LOWER(teacher_name) LIKE ? OR teacher_nip LIKE ?)", like, like)
	}

	limit := helper.AtoiOr(20, c.Query("limit"))
	offset := helper.AtoiOr(0, c.Query("offset"))

	var total int64
	if err := qry.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.TeacherModel
	if err := qry.Order("teacher_name ASC").Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	out := make([]dto.TeacherResponse, 0, len(rows))
	for i := range rows {
		out = append(out, toTeacherResponse(&rows[i]))
	}

	return helper.Success(c, "Daftar guru", fiber.Map{
		"data": out, "total": total, "limit": limit, "offset": offset,
	})
}

// GET /teachers/:id
func (ctl *TeacherController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var row model.TeacherModel
	if err := ctl.DB.Where("teacher_id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Guru tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Status(http.StatusOK).JSON(toTeacherResponse(&row))
}

// POST /teachers
func (ctl *TeacherController) Create(c *fiber.Ctx) error {
	var req dto.CreateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := model.TeacherModel{
		TeacherNIP:      strings.TrimSpace(req.NIP),
		TeacherName:     strings.TrimSpace(req.Name),
		TeacherEmail:    req.Email,
		TeacherPhone:    req.Phone,
		TeacherIsActive: true,
	}

	if err := ctl.DB.Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "NIP sudah terdaftar")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Guru berhasil ditambahkan", toTeacherResponse(&row))
}

// PUT /teachers/:id (partial update)
func (ctl *TeacherController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var existing model.TeacherModel
	if err := ctl.DB.Where("teacher_id = ?", id).First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Guru tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["teacher_name"] = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		updates["teacher_email"] = *req.Email
	}
	if req.Phone != nil {
		updates["teacher_phone"] = *req.Phone
	}
	if req.IsActive != nil {
		updates["teacher_is_active"] = *req.IsActive
	}
	if len(updates) == 0 {
		return c.Status(http.StatusOK).JSON(toTeacherResponse(&existing))
	}
	updates["teacher_updated_at"] = time.Now()

	if err := ctl.DB.Model(&model.TeacherModel{}).
		Where("teacher_id = ?", id).
		Updates(updates).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var after model.TeacherModel
	if err := ctl.DB.Where("teacher_id = ?", id).First(&after).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Status(http.StatusOK).JSON(toTeacherResponse(&after))
}

// DELETE /teachers/:id (soft delete)
func (ctl *TeacherController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var row model.TeacherModel
	if err := ctl.DB.Where("teacher_id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Guru tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if err := ctl.DB.Delete(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.SendStatus(http.StatusNoContent)
}
