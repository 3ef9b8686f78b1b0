// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	middlewares "sekolahku_backend/internals/middlewares"
	routeDetails "sekolahku_backend/internals/route/details"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== GROUPS =====================
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a")

	// Rekap pakai limiter sendiri (query agregasi lebih berat)
	log.Println("[INFO] Setting up REPORT group...")
	report := app.Group("/api/a", middlewares.ReportRateLimiter())

	// ===================== MOUNT ROUTES =====================
	log.Println("[INFO] Mounting MasterData routes...")
	routeDetails.MasterDataRoutes(admin, db)

	log.Println("[INFO] Mounting Recording routes...")
	routeDetails.RecordingRoutes(admin, db)

	log.Println("[INFO] Mounting Reporting routes...")
	routeDetails.ReportingRoutes(report, db)

	// ===================== HEALTH =====================
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"uptime": time.Since(startTime).String(),
		})
	})
}
