// file: internals/features/school/academics/controller/subject_controller.go
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

type SubjectController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewSubjectController(db *gorm.DB) *SubjectController {
	return &SubjectController{
		DB:        db,
		Validator: validator.New(),
	}
}

func toSubjectResponse(m *model.SubjectModel) dto.SubjectResponse {
	return dto.SubjectResponse{
		ID:          m.SubjectID,
		Code:        m.SubjectCode,
		Name:        m.SubjectName,
		Description: m.SubjectDescription,
		IsActive:    m.SubjectIsActive,
		CreatedAt:   m.SubjectCreatedAt,
		UpdatedAt:   m.SubjectUpdatedAt,
	}
}

// GET /subjects?active=&q=&limit=&offset=
func (ctl *SubjectController) List(c *fiber.Ctx) error {
	qry := ctl.DB.Model(&model.SubjectModel{})

	if v := c.Query("active"); v != "" {
		qry = qry.Where("subject_is_active = ?", strings.EqualFold(v, "true") || v == "1")
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		qry = qry.Where("(LOWER(subject_name) LIKE ? OR LOWER(subject_code) LIKE ?)", like, like)
	}

	limit := helper.AtoiOr(20, c.Query("limit"))
	offset := helper.AtoiOr(0, c.Query("offset"))

	var total int64
	if err := qry.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.SubjectModel
	if err := qry.Order("subject_code ASC").Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	out := make([]dto.SubjectResponse, 0, len(rows))
	for i := range rows {
		out = append(out, toSubjectResponse(&rows[i]))
	}

	return helper.Success(c, "Daftar mapel", fiber.Map{
		"data": out, "total": total, "limit": limit, "offset": offset,
	})
}

// GET /subjects/:id
func (ctl *SubjectController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var row model.SubjectModel
	if err := ctl.DB.Where("subject_id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Mapel tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Status(http.StatusOK).JSON(toSubjectResponse(&row))
}

// POST /subjects
func (ctl *SubjectController) Create(c *fiber.Ctx) error {
	var req dto.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := model.SubjectModel{
		SubjectCode:        strings.ToUpper(strings.TrimSpace(req.Code)),
		SubjectName:        strings.TrimSpace(req.Name),
		SubjectDescription: req.Description,
		SubjectIsActive:    true,
	}

	if err := ctl.DB.Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "Kode mapel sudah dipakai")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Mapel berhasil ditambahkan", toSubjectResponse(&row))
}

// PUT /subjects/:id (partial update)
func (ctl *SubjectController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var existing model.SubjectModel
	if err := ctl.DB.Where("subject_id = ?", id).First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Mapel tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["subject_name"] = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		updates["subject_description"] = *req.Description
	}
	if req.IsActive != nil {
		updates["subject_is_active"] = *req.IsActive
	}
	if len(updates) == 0 {
		return c.Status(http.StatusOK).JSON(toSubjectResponse(&existing))
	}
	updates["subject_updated_at"] = time.Now()

	if err := ctl.DB.Model(&model.SubjectModel{}).
		Where("subject_id = ?", id).
		Updates(updates).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var after model.SubjectModel
	if err := ctl.DB.Where("subject_id = ?", id).First(&after).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Status(http.StatusOK).JSON(toSubjectResponse(&after))
}

// DELETE /subjects/:id (soft delete)
func (ctl *SubjectController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var row model.SubjectModel
	if err := ctl.DB.Where("subject_id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Mapel tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if err := ctl.DB.Delete(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.SendStatus(http.StatusNoContent)
}
