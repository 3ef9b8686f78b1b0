package helper

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ParseUUIDParam membaca path param sebagai uuid
func ParseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(c.Params(name)))
}

// ParseUUIDQuery membaca query param sebagai uuid (uuid.Nil jika kosong)
func ParseUUIDQuery(c *fiber.Ctx, name string) (uuid.UUID, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return uuid.Nil, nil
	}
	return uuid.Parse(raw)
}

// AtoiOr parse int dengan default
func AtoiOr(def int, s string) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

// ParseDateQuery membaca query param tanggal format YYYY-MM-DD
func ParseDateQuery(c *fiber.Ctx, name string) (*time.Time, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ParseMonthYear membaca bulan (1-12) & tahun dari query, default bulan berjalan
func ParseMonthYear(c *fiber.Ctx) (int, int, error) {
	now := time.Now()
	month := AtoiOr(int(now.Month()), c.Query("month"))
	year := AtoiOr(now.Year(), c.Query("year"))
	if month < 1 || month > 12 {
		return 0, 0, fiber.NewError(fiber.StatusBadRequest, "month harus 1-12")
	}
	if year < 2000 || year > 2100 {
		return 0, 0, fiber.NewError(fiber.StatusBadRequest, "year tidak valid")
	}
	return month, year, nil
}
