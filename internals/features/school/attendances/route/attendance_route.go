// internals/features/school/attendances/route/attendance_route.go
package route

import (
	attendancesController "sekolahku_backend/internals/features/school/attendances/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AttendanceRoutes(r fiber.Router, db *gorm.DB) {
	attendanceCtl := attendancesController.NewAttendanceController(db)
	attendances := r.Group("/attendances")
	attendances.Get("/", attendanceCtl.List)         // GET    /attendances?student_id=&status=&month=&year=
	attendances.Get("/:id", attendanceCtl.GetByID)   // GET    /attendances/:id
	attendances.Post("/", attendanceCtl.Create)      // POST   /attendances
	attendances.Put("/:id", attendanceCtl.Update)    // PUT    /attendances/:id
	attendances.Delete("/:id", attendanceCtl.Delete) // DELETE /attendances/:id (soft delete)
}
