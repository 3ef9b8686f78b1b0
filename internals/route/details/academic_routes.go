// internals/route/details/academic_routes.go
package details

import (
	AcademicRoutes "sekolahku_backend/internals/features/school/academics/route"
	AttendanceRoutes "sekolahku_backend/internals/features/school/attendances/route"
	GradeRoutes "sekolahku_backend/internals/features/school/grades/route"
	ReportRoutes "sekolahku_backend/internals/features/school/reports/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/* ===================== MASTER DATA ===================== */
// Guru, siswa, mapel, kelas, penugasan guru
func MasterDataRoutes(r fiber.Router, db *gorm.DB) {
	AcademicRoutes.AcademicRoutes(r, db)
}

/* ===================== PENCATATAN ===================== */
// Input nilai & kehadiran harian
func RecordingRoutes(r fiber.Router, db *gorm.DB) {
	GradeRoutes.GradeRoutes(r, db)
	AttendanceRoutes.AttendanceRoutes(r, db)
}

/* ===================== REKAP ===================== */
// Laporan agregat nilai & kehadiran
func ReportingRoutes(r fiber.Router, db *gorm.DB) {
	ReportRoutes.ReportRoutes(r, db)
}
