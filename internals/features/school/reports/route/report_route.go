// internals/features/school/reports/route/report_route.go
package route

import (
	reportsController "sekolahku_backend/internals/features/school/reports/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/*
Rekap nilai & kehadiran. Query agregasinya lebih berat dari CRUD biasa,
jadi di-mount dengan rate limiter sendiri (lihat route/index.go).
*/
func ReportRoutes(r fiber.Router, db *gorm.DB) {
	reportCtl := reportsController.NewReportController(db)
	reports := r.Group("/reports")
	reports.Get("/students/:student_id/grades", reportCtl.StudentGrades)         // GET /reports/students/:student_id/grades?subject_id=&semester=&academic_year=
	reports.Get("/students/:student_id/attendance", reportCtl.StudentAttendance) // GET /reports/students/:student_id/attendance?month=&year=
	reports.Get("/classes/:class_id/grades", reportCtl.ClassGrades)              // GET /reports/classes/:class_id/grades?subject_id=&semester=&academic_year=
	reports.Get("/classes/:class_id/attendance", reportCtl.ClassAttendance)      // GET /reports/classes/:class_id/attendance?month=&year=
}
