// file: internals/features/school/attendances/service/attendance_aggregator_test.go
package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "sekolahku_backend/internals/features/school/attendances/model"
)

func attRecord(student uuid.UUID, day time.Time, status model.AttendanceStatus) model.AttendanceModel {
	return model.AttendanceModel{
		AttendanceID:           uuid.New(),
		AttendanceStudentID:    student,
		AttendanceTeacherID:    uuid.New(),
		AttendanceDate:         day,
		AttendanceStatus:       status,
		AttendanceAcademicYear: "2023/2024",
	}
}

func septDay(d int) time.Time {
	return time.Date(2023, time.September, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeStudentAttendance_MonthlyBreakdown(t *testing.T) {
	student := uuid.New()

	var records []model.AttendanceModel
	for d := 1; d <= 7; d++ {
		records = append(records, attRecord(student, septDay(d), model.AttendanceStatusHadir))
	}
	records = append(records,
		attRecord(student, septDay(8), model.AttendanceStatusTerlambat),
		attRecord(student, septDay(9), model.AttendanceStatusIzin),
		attRecord(student, septDay(10), model.AttendanceStatusSakit),
	)

	fig := ComputeStudentAttendance(records, student, 9, 2023)

	assert.Equal(t, 10, fig.TotalDays)
	assert.Equal(t, 7, fig.HadirCount)
	assert.Equal(t, 1, fig.TerlambatCount)
	assert.Equal(t, 1, fig.IzinCount)
	assert.Equal(t, 1, fig.SakitCount)
	assert.Equal(t, 0, fig.AlphaCount)
	// terlambat tetap dihitung masuk: (7+1)/10
	assert.Equal(t, "80.00", fig.AttendancePercentage.StringFixed(2))
}

func TestComputeStudentAttendance_WorstStatusWinsPerDay(t *testing.T) {
	student := uuid.New()
	subjectA, subjectB := uuid.New(), uuid.New()

	// dua catatan per mapel di hari yang sama: hadir di mapel A, alpha di mapel B
	hadir := attRecord(student, septDay(4), model.AttendanceStatusHadir)
	hadir.AttendanceSubjectID = &subjectA
	alpha := attRecord(student, septDay(4), model.AttendanceStatusAlpha)
	alpha.AttendanceSubjectID = &subjectB

	for _, records := range [][]model.AttendanceModel{{hadir, alpha}, {alpha, hadir}} {
		fig := ComputeStudentAttendance(records, student, 9, 2023)
		assert.Equal(t, 1, fig.TotalDays, "satu tanggal = satu hari")
		assert.Equal(t, 1, fig.AlphaCount, "status terburuk yang menang")
		assert.Equal(t, 0, fig.HadirCount)
		assert.Equal(t, "0.00", fig.AttendancePercentage.StringFixed(2))
	}
}

func TestComputeStudentAttendance_FiltersMonthAndStudent(t *testing.T) {
	student := uuid.New()
	records := []model.AttendanceModel{
		attRecord(student, septDay(4), model.AttendanceStatusHadir),
		attRecord(student, time.Date(2023, time.October, 2, 0, 0, 0, 0, time.UTC), model.AttendanceStatusAlpha),
		attRecord(uuid.New(), septDay(4), model.AttendanceStatusAlpha),
	}

	fig := ComputeStudentAttendance(records, student, 9, 2023)

	assert.Equal(t, 1, fig.TotalDays)
	assert.Equal(t, 1, fig.HadirCount)
	assert.Equal(t, 0, fig.AlphaCount)
	assert.Equal(t, "100.00", fig.AttendancePercentage.StringFixed(2))
}

func TestComputeStudentAttendance_NoRecords(t *testing.T) {
	fig := ComputeStudentAttendance(nil, uuid.New(), 9, 2023)

	assert.Equal(t, 0, fig.TotalDays)
	// 0 hari tercatat → 0, bukan pembagian dengan nol
	assert.True(t, fig.AttendancePercentage.IsZero())
}

func TestComputeClassAttendance_DayWeighted(t *testing.T) {
	class := uuid.New()
	studentA, studentB := uuid.New(), uuid.New()

	var records []model.AttendanceModel
	// siswa A: 20 hari tercatat, 18 masuk (90%)
	for d := 1; d <= 18; d++ {
		records = append(records, attRecord(studentA, septDay(d), model.AttendanceStatusHadir))
	}
	records = append(records,
		attRecord(studentA, septDay(19), model.AttendanceStatusAlpha),
		attRecord(studentA, septDay(20), model.AttendanceStatusAlpha),
	)
	// siswa B: 5 hari tercatat, 2 masuk (40%)
	for d := 1; d <= 2; d++ {
		records = append(records, attRecord(studentB, septDay(d), model.AttendanceStatusHadir))
	}
	for d := 3; d <= 5; d++ {
		records = append(records, attRecord(studentB, septDay(d), model.AttendanceStatusAlpha))
	}

	fig := ComputeClassAttendance(records, class, []uuid.UUID{studentA, studentB}, 9, 2023)

	require.Equal(t, 2, fig.TotalStudents)
	assert.Equal(t, 25, fig.TotalDays)
	// agregat berbobot hari: (18+2)/(20+5) = 80%, bukan rata-rata 90% dan 40% = 65%
	assert.Equal(t, "80.00", fig.OverallAttendancePercentage.StringFixed(2))
}

func TestComputeClassAttendance_EmptyClass(t *testing.T) {
	fig := ComputeClassAttendance(nil, uuid.New(), nil, 9, 2023)

	assert.Equal(t, 0, fig.TotalStudents)
	assert.Equal(t, 0, fig.TotalDays)
	assert.True(t, fig.OverallAttendancePercentage.IsZero())
}
