// file: internals/features/school/academics/controller/student_controller.go
package controller

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/school/academics/dto"
	model "sekolahku_backend/internals/features/school/academics/model"
	helper "sekolahku_backend/internals/helpers"
)

type StudentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{
		DB:        db,
		Validator: validator.New(),
	}
}

func toStudentResponse(m *model.StudentModel) dto.StudentResponse {
	return dto.StudentResponse{
		ID:          m.StudentID,
		NIS:         m.StudentNIS,
		Name:        m.StudentName,
		DateOfBirth: m.StudentDateOfBirth.Format("2006-01-02"),
		Gender:      m.StudentGender,
		Address:     m.StudentAddress,
		ParentName:  m.StudentParentName,
		ParentPhone: m.StudentParentPhone,
		ClassID:     m.StudentClassID,
		IsActive:    m.StudentIsActive,
		CreatedAt:   m.StudentCreatedAt,
		UpdatedAt:   m.StudentUpdatedAt,
	}
}

// GET /students?class_id=&active=&q=&limit=&offset=
func (ctl *StudentController) List(c *fiber.Ctx) error {
	qry := ctl.DB.Model(&model.StudentModel{})

	if v, err := helper.ParseUUIDQuery(c, "class_id"); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "class_id tidak valid")
	} else if v != uuid.Nil {
		qry = qry.Where("student_class_id = ?", v)
	}
	if v := c.Query("active"); v != "" {
		qry = qry.Where("student_is_active = ?", strings.EqualFold(v, "true") || v == "1")
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		qry = qry.Where("(LOWER(student_name) LIKE ? OR student_nis LIKE ?)", like, like)
	}

	limit := helper.AtoiOr(20, c.Query("limit"))
	offset := helper.AtoiOr(0, c.Query("offset"))

	var total int64
	if err := qry.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.StudentModel
	if err := qry.Order("student_nis ASC").Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	out := make([]dto.StudentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, toStudentResponse(&rows[i]))
	}

	return helper.Success(c, "Daftar siswa", fiber.Map{
		"data": out, "total": total, "limit": limit, "offset": offset,
	})
}

// GET /students/:id
func (ctl *StudentController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var row model.StudentModel
	if err := ctl.DB.Where("student_id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Status(http.StatusOK).JSON(toStudentResponse(&row))
}

// POST /students
func (ctl *StudentController) Create(c *fiber.Ctx) error {
	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Tanggal lahir tidak valid")
	}

	// pastikan kelasnya ada
	var classCount int64
	if err := ctl.DB.Model(&model.ClassModel{}).
		Where("class_id = ?", req.ClassID).
		Count(&classCount).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if classCount == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Kelas tidak ditemukan")
	}

	row := model.StudentModel{
		StudentNIS:         strings.TrimSpace(req.NIS),
		StudentName:        strings.TrimSpace(req.Name),
		StudentDateOfBirth: dob,
		StudentGender:      req.Gender,
		StudentAddress:     req.Address,
		StudentParentName:  req.ParentName,
		StudentParentPhone: req.ParentPhone,
		StudentClassID:     req.ClassID,
		StudentIsActive:    true,
	}

	if err := ctl.DB.Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "NIS sudah terdaftar")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Siswa berhasil ditambahkan", toStudentResponse(&row))
}

// PUT /students/:id (partial update)
func (ctl *StudentController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var existing model.StudentModel
	if err := ctl.DB.Where("student_id = ?", id).First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["student_name"] = strings.TrimSpace(*req.Name)
	}
	if req.DateOfBirth != nil {
		d, err := time.Parse("2006-01-02", *req.DateOfBirth)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Tanggal lahir tidak valid")
		}
		updates["student_date_of_birth"] = d
	}
	if req.Gender != nil {
		updates["student_gender"] = *req.Gender
	}
	if req.Address != nil {
		updates["student_address"] = *req.Address
	}
	if req.ParentName != nil {
		updates["student_parent_name"] = *req.ParentName
	}
	if req.ParentPhone != nil {
		updates["student_parent_phone"] = *req.ParentPhone
	}
	if req.ClassID != nil {
		updates["student_class_id"] = *req.ClassID
	}
	if req.IsActive != nil {
		updates["student_is_active"] = *req.IsActive
	}
	if len(updates) == 0 {
		return c.Status(http.StatusOK).JSON(toStudentResponse(&existing))
	}
	updates["student_updated_at"] = time.Now()

	if err := ctl.DB.Model(&model.StudentModel{}).
		Where("student_id = ?", id).
		Updates(updates).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var after model.StudentModel
	if err := ctl.DB.Where("student_id = ?", id).First(&after).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Status(http.StatusOK).JSON(toStudentResponse(&after))
}

// DELETE /students/:id (soft delete)
func (ctl *StudentController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var row model.StudentModel
	if err := ctl.DB.Where("student_id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if err := ctl.DB.Delete(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.SendStatus(http.StatusNoContent)
}
