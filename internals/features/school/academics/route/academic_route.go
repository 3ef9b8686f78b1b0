// internals/features/school/academics/route/academic_route.go
package route

import (
	academicsController "sekolahku_backend/internals/features/school/academics/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/*
Master data akademik: guru, siswa, mapel, kelas, penugasan guru.
Mount contoh: AcademicRoutes(app.Group("/api/a"), db)
*/
func AcademicRoutes(r fiber.Router, db *gorm.DB) {
	teacherCtl := academicsController.NewTeacherController(db)
	teachers := r.Group("/teachers")
	teachers.Get("/", teacherCtl.List)         // GET    /teachers
	teachers.Get("/:id", teacherCtl.GetByID)   // GET    /teachers/:id
	teachers.Post("/", teacherCtl.Create)      // POST   /teachers
	teachers.Put("/:id", teacherCtl.Update)    // PUT    /teachers/:id
	teachers.Delete("/:id", teacherCtl.Delete) // DELETE /teachers/:id (soft delete)

	studentCtl := academicsController.NewStudentController(db)
	students := r.Group("/students")
	students.Get("/", studentCtl.List)
	students.Get("/:id", studentCtl.GetByID)
	students.Post("/", studentCtl.Create)
	students.Put("/:id", studentCtl.Update)
	students.Delete("/:id", studentCtl.Delete)

	subjectCtl := academicsController.NewSubjectController(db)
	subjects := r.Group("/subjects")
	subjects.Get("/", subjectCtl.List)
	subjects.Get("/:id", subjectCtl.GetByID)
	subjects.Post("/", subjectCtl.Create)
	subjects.Put("/:id", subjectCtl.Update)
	subjects.Delete("/:id", subjectCtl.Delete)

	classCtl := academicsController.NewClassController(db)
	classes := r.Group("/classes")
	classes.Get("/", classCtl.List)
	classes.Get("/:id", classCtl.GetByID)
	classes.Post("/", classCtl.Create)
	classes.Put("/:id", classCtl.Update)
	classes.Delete("/:id", classCtl.Delete)

	// penugasan guru ke mapel+kelas per tahun ajaran
	tsCtl := academicsController.NewTeacherSubjectController(db)
	teacherSubjects := r.Group("/teacher-subjects")
	teacherSubjects.Get("/", tsCtl.List)
	teacherSubjects.Post("/", tsCtl.Create)
	teacherSubjects.Delete("/:id", tsCtl.Delete)
}
