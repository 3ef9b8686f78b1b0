// file: internals/features/school/reports/controller/report_controller.go
package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	gservice "sekolahku_backend/internals/features/school/grades/service"
	service "sekolahku_backend/internals/features/school/reports/service"
	helper "sekolahku_backend/internals/helpers"

	"sekolahku_backend/internals/configs"
)

type ReportController struct {
	Service *service.ReportService
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{
		Service: service.NewReportService(db),
	}
}

// academicYearOrDefault: query academic_year, fallback ke env DEFAULT_ACADEMIC_YEAR
func academicYearOrDefault(c *fiber.Ctx) (string, error) {
	year := strings.TrimSpace(c.Query("academic_year"))
	if year == "" {
		year = configs.AcademicYear
	}
	if len(year) != 9 || !strings.Contains(year, "/") {
		return "", fiber.NewError(fiber.StatusBadRequest, "academic_year wajib format 2023/2024")
	}
	return year, nil
}

func parseSemester(c *fiber.Ctx) (int, error) {
	semester := helper.AtoiOr(0, c.Query("semester"))
	if semester != 1 && semester != 2 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "semester wajib 1 atau 2")
	}
	return semester, nil
}

// mapReportError: InvalidScope = salah id dari pemanggil, MissingReference =
// integritas data rusak — dua-duanya bukan 500.
func mapReportError(err error) error {
	switch {
	case errors.Is(err, gservice.ErrInvalidScope):
		return fiber.NewError(fiber.StatusNotFound, "Tidak ada catatan nilai untuk scope ini")
	case errors.Is(err, service.ErrMissingReference):
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
}

// GET /reports/students/:student_id/grades?subject_id=&semester=&academic_year=
func (ctl *ReportController) StudentGrades(c *fiber.Ctx) error {
	studentID, err := helper.ParseUUIDParam(c, "student_id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "student_id tidak valid")
	}
	subjectID, err := helper.ParseUUIDQuery(c, "subject_id")
	if err != nil || subjectID == uuid.Nil {
		return fiber.NewError(fiber.StatusBadRequest, "subject_id wajib dan harus uuid")
	}
	semester, err := parseSemester(c)
	if err != nil {
		return err
	}
	academicYear, err := academicYearOrDefault(c)
	if err != nil {
		return err
	}

	summary, err := ctl.Service.StudentGradesReport(c.UserContext(), studentID, subjectID, semester, academicYear)
	if err != nil {
		return mapReportError(err)
	}
	return c.Status(http.StatusOK).JSON(summary)
}

// GET /reports/classes/:class_id/grades?subject_id=&semester=&academic_year=
func (ctl *ReportController) ClassGrades(c *fiber.Ctx) error {
	classID, err := helper.ParseUUIDParam(c, "class_id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "class_id tidak valid")
	}
	subjectID, err := helper.ParseUUIDQuery(c, "subject_id")
	if err != nil || subjectID == uuid.Nil {
		return fiber.NewError(fiber.StatusBadRequest, "subject_id wajib dan harus uuid")
	}
	semester, err := parseSemester(c)
	if err != nil {
		return err
	}
	academicYear, err := academicYearOrDefault(c)
	if err != nil {
		return err
	}

	summary, err := ctl.Service.ClassGradesReport(c.UserContext(), classID, subjectID, semester, academicYear)
	if err != nil {
		return mapReportError(err)
	}
	return c.Status(http.StatusOK).JSON(summary)
}

// GET /reports/students/:student_id/attendance?month=&year=
func (ctl *ReportController) StudentAttendance(c *fiber.Ctx) error {
	studentID, err := helper.ParseUUIDParam(c, "student_id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "student_id tidak valid")
	}
	month, year, err := helper.ParseMonthYear(c)
	if err != nil {
		return err
	}

	summary, err := ctl.Service.StudentAttendanceReport(c.UserContext(), studentID, month, year)
	if err != nil {
		return mapReportError(err)
	}
	return c.Status(http.StatusOK).JSON(summary)
}

// GET /reports/classes/:class_id/attendance?month=&year=
func (ctl *ReportController) ClassAttendance(c *fiber.Ctx) error {
	classID, err := helper.ParseUUIDParam(c, "class_id")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "class_id tidak valid")
	}
	month, year, err := helper.ParseMonthYear(c)
	if err != nil {
		return err
	}

	summary, err := ctl.Service.ClassAttendanceReport(c.UserContext(), classID, month, year)
	if err != nil {
		return mapReportError(err)
	}
	return c.Status(http.StatusOK).JSON(summary)
}
