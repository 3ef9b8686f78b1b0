// file: internals/features/school/attendances/controller/attendance_controller.go
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/school/attendances/dto"
	model "sekolahku_backend/internals/features/school/attendances/model"
	helper "sekolahku_backend/internals/helpers"
)

type AttendanceController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{
		DB:        db,
		Validator: validator.New(),
	}
}

func toAttendanceResponse(m *model.AttendanceModel) dto.AttendanceResponse {
	return dto.AttendanceResponse{
		ID:           m.AttendanceID,
		StudentID:    m.AttendanceStudentID,
		TeacherID:    m.AttendanceTeacherID,
		SubjectID:    m.AttendanceSubjectID,
		Date:         m.AttendanceDate.Format("2006-01-02"),
		Status:       string(m.AttendanceStatus),
		Notes:        m.AttendanceNotes,
		AcademicYear: m.AttendanceAcademicYear,
		CreatedAt:    m.AttendanceCreatedAt,
		UpdatedAt:    m.AttendanceUpdatedAt,
	}
}

// GET /attendances?student_id=&teacher_id=&subject_id=&status=&month=&year=&academic_year=&limit=&offset=
func (ctl *AttendanceController) List(c *fiber.Ctx) error {
	var filt dto.ListAttendanceFilter

	if v, err := helper.ParseUUIDQuery(c, "student_id"); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "student_id tidak valid")
	} else if v != uuid.Nil {
		filt.StudentID = &v
	}
	if v, err := helper.ParseUUIDQuery(c, "teacher_id"); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "teacher_id tidak valid")
	} else if v != uuid.Nil {
		filt.TeacherID = &v
	}
	if v, err := helper.ParseUUIDQuery(c, "subject_id"); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "subject_id tidak valid")
	} else if v != uuid.Nil {
		filt.SubjectID = &v
	}
	if v := c.Query("status"); v != "" {
		filt.Status = &v
	}
	if v := c.Query("month"); v != "" {
		n := helper.AtoiOr(0, v)
		filt.Month = &n
	}
	if v := c.Query("year"); v != "" {
		n := helper.AtoiOr(0, v)
		filt.Year = &n
	}
	if v := c.Query("academic_year"); v != "" {
		filt.AcademicYear = &v
	}
	filt.Limit = helper.AtoiOr(20, c.Query("limit"))
	filt.Offset = helper.AtoiOr(0, c.Query("offset"))

	if err := ctl.Validator.Struct(&filt); err != nil {
		return helper.ValidationError(c, err)
	}

	qry := ctl.DB.Model(&model.AttendanceModel{})
	if filt.StudentID != nil {
		qry = qry.Where("attendance_student_id = ?", *filt.StudentID)
	}
	if filt.TeacherID != nil {
		qry = qry.Where("attendance_teacher_id = ?", *filt.TeacherID)
	}
	if filt.SubjectID != nil {
		qry = qry.Where("attendance_subject_id = ?", *filt.SubjectID)
	}
	if filt.Status != nil {
		qry = qry.Where("attendance_status = ?", *filt.Status)
	}
	if filt.Month != nil {
		qry = qry.Where("EXTRACT(MONTH FROM attendance_date) = ?", *filt.Month)
	}
	if filt.Year != nil {
		qry = qry.Where("EXTRACT(YEAR FROM attendance_date) = ?", *filt.Year)
	}
	if filt.AcademicYear != nil {
		qry = qry.Where("attendance_academic_year = ?", *filt.AcademicYear)
	}

	var total int64
	if err := qry.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.AttendanceModel
	if err := qry.
		Order("attendance_date DESC, attendance_created_at DESC").
		Limit(filt.Limit).Offset(filt.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	out := make([]dto.AttendanceResponse, 0, len(rows))
	for i := range rows {
		out = append(out, toAttendanceResponse(&rows[i]))
	}

	return c.Status(http.StatusOK).JSON(dto.ListAttendanceResponse{
		Data:   out,
		Total:  total,
		Limit:  filt.Limit,
		Offset: filt.Offset,
	})
}

// GET /attendances/:id
func (ctl *AttendanceController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var row model.AttendanceModel
	if err := ctl.DB.Where("attendance_id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Data absensi tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Status(http.StatusOK).JSON(toAttendanceResponse(&row))
}

// POST /attendances
func (ctl *AttendanceController) Create(c *fiber.Ctx) error {
	var req dto.CreateAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Tanggal absensi tidak valid")
	}

	row := model.AttendanceModel{
		AttendanceStudentID:    req.StudentID,
		AttendanceTeacherID:    req.TeacherID,
		AttendanceSubjectID:    req.SubjectID,
		AttendanceDate:         date,
		AttendanceStatus:       model.AttendanceStatus(req.Status),
		AttendanceNotes:        req.Notes,
		AttendanceAcademicYear: req.AcademicYear,
	}

	if err := ctl.DB.Create(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Absensi berhasil dicatat", toAttendanceResponse(&row))
}

// PUT /attendances/:id (partial update)
func (ctl *AttendanceController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var existing model.AttendanceModel
	if err := ctl.DB.Where("attendance_id = ?", id).First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Data absensi tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	updates := map[string]interface{}{}
	if req.Status != nil {
		updates["attendance_status"] = *req.Status
	}
	if req.Notes != nil {
		updates["attendance_notes"] = *req.Notes
	}
	if len(updates) == 0 {
		return c.Status(http.StatusOK).JSON(toAttendanceResponse(&existing))
	}
	updates["attendance_updated_at"] = time.Now()

	if err := ctl.DB.Model(&model.AttendanceModel{}).
		Where("attendance_id = ?", id).
		Updates(updates).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var after model.AttendanceModel
	if err := ctl.DB.Where("attendance_id = ?", id).First(&after).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Status(http.StatusOK).JSON(toAttendanceResponse(&after))
}

// DELETE /attendances/:id (soft delete)
func (ctl *AttendanceController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var row model.AttendanceModel
	if err := ctl.DB.Where("attendance_id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Data absensi tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if err := ctl.DB.Delete(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.SendStatus(http.StatusNoContent)
}
