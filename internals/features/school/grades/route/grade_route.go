// internals/features/school/grades/route/grade_route.go
package route

import (
	gradesController "sekolahku_backend/internals/features/school/grades/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GradeRoutes(r fiber.Router, db *gorm.DB) {
	gradeCtl := gradesController.NewGradeController(db)
	grades := r.Group("/grades")
	grades.Get("/", gradeCtl.List)         // GET    /grades?student_id=&subject_id=&category=&semester=&academic_year=
	grades.Get("/:id", gradeCtl.GetByID)   // GET    /grades/:id
	grades.Post("/", gradeCtl.Create)      // POST   /grades
	grades.Put("/:id", gradeCtl.Update)    // PUT    /grades/:id
	grades.Delete("/:id", gradeCtl.Delete) // DELETE /grades/:id (soft delete)
}
