// file: internals/features/school/attendances/service/attendance_aggregator.go
package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	model "sekolahku_backend/internals/features/school/attendances/model"
)

var oneHundred = decimal.NewFromInt(100)

// StudentAttendanceFigures = rekap kehadiran satu siswa untuk satu bulan.
// Semua hitungan per HARI kalender, bukan per catatan: absensi per mapel di
// tanggal yang sama dilebur jadi satu status harian.
type StudentAttendanceFigures struct {
	StudentID            uuid.UUID
	TotalDays            int
	HadirCount           int
	AlphaCount           int
	IzinCount            int
	SakitCount           int
	TerlambatCount       int
	AttendancePercentage decimal.Decimal
	Month                int
	Year                 int
}

// ClassAttendanceFigures = rekap kehadiran satu kelas untuk satu bulan.
type ClassAttendanceFigures struct {
	ClassID                     uuid.UUID
	TotalStudents               int
	TotalDays                   int
	OverallAttendancePercentage decimal.Decimal
	Month                       int
	Year                        int
}

// ComputeStudentAttendance merekap kehadiran siswa per bulan.
//
// Satu tanggal dihitung satu hari walau ada catatan di beberapa mapel;
// status harian diambil dari catatan dengan prioritas terburuk
// (alpha > terlambat > izin > sakit > hadir). Persentase =
// (hadir+terlambat)/total_hari×100 dibulatkan 2 desimal — terlambat tetap
// dihitung masuk, tapi dilaporkan terpisah di breakdown. total_days=0 → 0.
func ComputeStudentAttendance(
	records []model.AttendanceModel,
	studentID uuid.UUID,
	month, year int,
) StudentAttendanceFigures {
	fig := StudentAttendanceFigures{
		StudentID:            studentID,
		AttendancePercentage: decimal.Zero,
		Month:                month,
		Year:                 year,
	}

	// status harian hasil leburan, key = tanggal (dipotong ke hari)
	daily := make(map[time.Time]model.AttendanceStatus)
	for i := range records {
		r := &records[i]
		if r.AttendanceStudentID != studentID {
			continue
		}
		if int(r.AttendanceDate.Month()) != month || r.AttendanceDate.Year() != year {
			continue
		}
		day := truncateToDay(r.AttendanceDate)
		if cur, ok := daily[day]; !ok || r.AttendanceStatus.Priority() > cur.Priority() {
			daily[day] = r.AttendanceStatus
		}
	}

	presentDays := 0
	for _, status := range daily {
		switch status {
		case model.AttendanceStatusHadir:
			fig.HadirCount++
		case model.AttendanceStatusAlpha:
			fig.AlphaCount++
		case model.AttendanceStatusIzin:
			fig.IzinCount++
		case model.AttendanceStatusSakit:
			fig.SakitCount++
		case model.AttendanceStatusTerlambat:
			fig.TerlambatCount++
		}
		if status.CountsAsPresent() {
			presentDays++
		}
	}

	fig.TotalDays = len(daily)
	if fig.TotalDays > 0 {
		fig.AttendancePercentage = percentage(presentDays, fig.TotalDays)
	}
	return fig
}

// ComputeClassAttendance merekap kehadiran satu kelas per bulan.
// Persentase keseluruhan = Σhari-masuk / Σhari-tercatat × 100 (agregat
// berbobot hari), BUKAN rata-rata persentase per siswa — siswa dengan hari
// tercatat lebih banyak tidak boleh kehilangan bobot.
func ComputeClassAttendance(
	records []model.AttendanceModel,
	classID uuid.UUID,
	students []uuid.UUID,
	month, year int,
) ClassAttendanceFigures {
	fig := ClassAttendanceFigures{
		ClassID:                     classID,
		TotalStudents:               len(students),
		OverallAttendancePercentage: decimal.Zero,
		Month:                       month,
		Year:                        year,
	}

	totalDays, presentDays := 0, 0
	for _, sid := range students {
		sf := ComputeStudentAttendance(records, sid, month, year)
		totalDays += sf.TotalDays
		presentDays += sf.HadirCount + sf.TerlambatCount
	}

	fig.TotalDays = totalDays
	if totalDays > 0 {
		fig.OverallAttendancePercentage = percentage(presentDays, totalDays)
	}
	return fig
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func percentage(part, total int) decimal.Decimal {
	return decimal.NewFromInt(int64(part)).
		Div(decimal.NewFromInt(int64(total))).
		Mul(oneHundred).
		Round(2)
}
