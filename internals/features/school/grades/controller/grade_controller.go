// file: internals/features/school/grades/controller/grade_controller.go
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/school/grades/dto"
	model "sekolahku_backend/internals/features/school/grades/model"
	helper "sekolahku_backend/internals/helpers"
)

var maxScore = decimal.NewFromInt(100)

type GradeController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewGradeController(db *gorm.DB) *GradeController {
	return &GradeController{
		DB:        db,
		Validator: validator.New(),
	}
}

func toGradeResponse(m *model.GradeModel) dto.GradeResponse {
	return dto.GradeResponse{
		ID:             m.GradeID,
		StudentID:      m.GradeStudentID,
		SubjectID:      m.GradeSubjectID,
		TeacherID:      m.GradeTeacherID,
		Category:       string(m.GradeCategory),
		Score:          m.GradeScore,
		AssessmentName: m.GradeAssessmentName,
		AssessmentDate: m.GradeAssessmentDate.Format("2006-01-02"),
		Semester:       m.GradeSemester,
		AcademicYear:   m.GradeAcademicYear,
		Notes:          m.GradeNotes,
		CreatedAt:      m.GradeCreatedAt,
		UpdatedAt:      m.GradeUpdatedAt,
	}
}

func scoreInRange(s decimal.Decimal) bool {
	return !s.IsNegative() && s.LessThanOrEqual(maxScore)
}

// GET /grades?student_id=&subject_id=&teacher_id=&category=&semester=&academic_year=&limit=&offset=
func (ctl *GradeController) List(c *fiber.Ctx) error {
	var filt dto.ListGradeFilter

	if v, err := helper.ParseUUIDQuery(c, "student_id"); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "student_id tidak valid")
	} else if v != uuid.Nil {
		filt.StudentID = &v
	}
	if v, err := helper.ParseUUIDQuery(c, "subject_id"); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "subject_id tidak valid")
	} else if v != uuid.Nil {
		filt.SubjectID = &v
	}
	if v, err := helper.ParseUUIDQuery(c, "teacher_id"); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "teacher_id tidak valid")
	} else if v != uuid.Nil {
		filt.TeacherID = &v
	}
	if v := c.Query("category"); v != "" {
		filt.Category = &v
	}
	if v := c.Query("semester"); v != "" {
		n := helper.AtoiOr(0, v)
		filt.Semester = &n
	}
	if v := c.Query("academic_year"); v != "" {
		filt.AcademicYear = &v
	}
	filt.Limit = helper.AtoiOr(20, c.Query("limit"))
	filt.Offset = helper.AtoiOr(0, c.Query("offset"))

	if err := ctl.Validator.Struct(&filt); err != nil {
		return helper.ValidationError(c, err)
	}

	qry := ctl.DB.Model(&model.GradeModel{})
	if filt.StudentID != nil {
		qry = qry.Where("grade_student_id = ?", *filt.StudentID)
	}
	if filt.SubjectID != nil {
		qry = qry.Where("grade_subject_id = ?", *filt.SubjectID)
	}
	if filt.TeacherID != nil {
		qry = qry.Where("grade_teacher_id = ?", *filt.TeacherID)
	}
	if filt.Category != nil {
		qry = qry.Where("grade_category = ?", *filt.Category)
	}
	if filt.Semester != nil {
		qry = qry.Where("grade_semester = ?", *filt.Semester)
	}
	if filt.AcademicYear != nil {
		qry = qry.Where("grade_academic_year = ?", *filt.AcademicYear)
	}

	var total int64
	if err := qry.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.GradeModel
	if err := qry.
		Order("grade_assessment_date DESC, grade_created_at DESC").
		Limit(filt.Limit).Offset(filt.Offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	out := make([]dto.GradeResponse, 0, len(rows))
	for i := range rows {
		out = append(out, toGradeResponse(&rows[i]))
	}

	return c.Status(http.StatusOK).JSON(dto.ListGradeResponse{
		Data:   out,
		Total:  total,
		Limit:  filt.Limit,
		Offset: filt.Offset,
	})
}

// GET /grades/:id
func (ctl *GradeController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var row model.GradeModel
	if err := ctl.DB.Where("grade_id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Data nilai tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Status(http.StatusOK).JSON(toGradeResponse(&row))
}

// POST /grades
func (ctl *GradeController) Create(c *fiber.Ctx) error {
	var req dto.CreateGradeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if !scoreInRange(req.Score) {
		return fiber.NewError(fiber.StatusBadRequest, "Skor harus 0-100")
	}

	assessmentDate, err := time.Parse("2006-01-02", req.AssessmentDate)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Tanggal penilaian tidak valid")
	}

	row := model.GradeModel{
		GradeStudentID:      req.StudentID,
		GradeSubjectID:      req.SubjectID,
		GradeTeacherID:      req.TeacherID,
		GradeCategory:       model.GradeCategory(req.Category),
		GradeScore:          req.Score.Round(2),
		GradeAssessmentName: req.AssessmentName,
		GradeAssessmentDate: assessmentDate,
		GradeSemester:       req.Semester,
		GradeAcademicYear:   req.AcademicYear,
		GradeNotes:          req.Notes,
	}

	if err := ctl.DB.Create(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Nilai berhasil dicatat", toGradeResponse(&row))
}

// PUT /grades/:id (partial update)
func (ctl *GradeController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateGradeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.Score != nil && !scoreInRange(*req.Score) {
		return fiber.NewError(fiber.StatusBadRequest, "Skor harus 0-100")
	}

	var existing model.GradeModel
	if err := ctl.DB.Where("grade_id = ?", id).First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Data nilai tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	updates := map[string]interface{}{}
	if req.Score != nil {
		updates["grade_score"] = req.Score.Round(2)
	}
	if req.AssessmentName != nil {
		updates["grade_assessment_name"] = *req.AssessmentName
	}
	if req.AssessmentDate != nil {
		d, err := time.Parse("2006-01-02", *req.AssessmentDate)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Tanggal penilaian tidak valid")
		}
		updates["grade_assessment_date"] = d
	}
	if req.Notes != nil {
		updates["grade_notes"] = *req.Notes
	}
	if len(updates) == 0 {
		return c.Status(http.StatusOK).JSON(toGradeResponse(&existing))
	}
	updates["grade_updated_at"] = time.Now()

	if err := ctl.DB.Model(&model.GradeModel{}).
		Where("grade_id = ?", id).
		Updates(updates).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var after model.GradeModel
	if err := ctl.DB.Where("grade_id = ?", id).First(&after).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Status(http.StatusOK).JSON(toGradeResponse(&after))
}

// DELETE /grades/:id (soft delete)
func (ctl *GradeController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var row model.GradeModel
	if err := ctl.DB.Where("grade_id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Data nilai tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if err := ctl.DB.Delete(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.SendStatus(http.StatusNoContent)
}
