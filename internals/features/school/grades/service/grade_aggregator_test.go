// file: internals/features/school/grades/service/grade_aggregator_test.go
package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "sekolahku_backend/internals/features/school/grades/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func gradeRecord(student, subject uuid.UUID, cat model.GradeCategory, score float64, assessed time.Time) model.GradeModel {
	return model.GradeModel{
		GradeID:             uuid.New(),
		GradeStudentID:      student,
		GradeSubjectID:      subject,
		GradeTeacherID:      uuid.New(),
		GradeCategory:       cat,
		GradeScore:          decimal.NewFromFloat(score),
		GradeAssessmentName: "Penilaian",
		GradeAssessmentDate: assessed,
		GradeSemester:       1,
		GradeAcademicYear:   "2023/2024",
	}
}

func TestComputeStudentFinalGrade_AllCategories(t *testing.T) {
	student, subject := uuid.New(), uuid.New()
	records := []model.GradeModel{
		gradeRecord(student, subject, model.GradeCategoryHarian, 70, date(2023, 9, 4)),
		gradeRecord(student, subject, model.GradeCategoryHarian, 80, date(2023, 9, 11)),
		gradeRecord(student, subject, model.GradeCategoryHarian, 90, date(2023, 9, 18)),
		gradeRecord(student, subject, model.GradeCategoryUTS, 75, date(2023, 10, 16)),
		gradeRecord(student, subject, model.GradeCategoryUAS, 85, date(2023, 12, 11)),
	}

	fig, err := ComputeStudentFinalGrade(records, student, subject, 1, "2023/2024")
	require.NoError(t, err)

	require.NotNil(t, fig.HarianAvg)
	require.NotNil(t, fig.UTSScore)
	require.NotNil(t, fig.UASScore)
	require.NotNil(t, fig.FinalGrade)

	assert.Equal(t, "80.00", fig.HarianAvg.StringFixed(2))
	assert.Equal(t, "75.00", fig.UTSScore.StringFixed(2))
	assert.Equal(t, "85.00", fig.UASScore.StringFixed(2))
	// 0.30*80 + 0.30*75 + 0.40*85
	assert.Equal(t, "80.50", fig.FinalGrade.StringFixed(2))
}

func TestComputeStudentFinalGrade_MissingCategoryNoFinal(t *testing.T) {
	student, subject := uuid.New(), uuid.New()
	records := []model.GradeModel{
		gradeRecord(student, subject, model.GradeCategoryHarian, 88, date(2023, 9, 4)),
		gradeRecord(student, subject, model.GradeCategoryUTS, 90, date(2023, 10, 16)),
	}

	fig, err := ComputeStudentFinalGrade(records, student, subject, 1, "2023/2024")
	require.NoError(t, err)

	assert.NotNil(t, fig.HarianAvg)
	assert.NotNil(t, fig.UTSScore)
	assert.Nil(t, fig.UASScore)
	assert.Nil(t, fig.FinalGrade, "nilai akhir tidak boleh terbentuk tanpa UAS")
}

func TestComputeStudentFinalGrade_NoRecords(t *testing.T) {
	student, subject := uuid.New(), uuid.New()

	_, err := ComputeStudentFinalGrade(nil, student, subject, 1, "2023/2024")
	assert.ErrorIs(t, err, ErrInvalidScope)

	// catatan siswa lain tidak dihitung sebagai scope valid
	other := gradeRecord(uuid.New(), subject, model.GradeCategoryHarian, 100, date(2023, 9, 4))
	_, err = ComputeStudentFinalGrade([]model.GradeModel{other}, student, subject, 1, "2023/2024")
	assert.ErrorIs(t, err, ErrInvalidScope)
}

func TestComputeStudentFinalGrade_ScopeFilters(t *testing.T) {
	student, subject := uuid.New(), uuid.New()
	records := []model.GradeModel{
		gradeRecord(student, subject, model.GradeCategoryHarian, 80, date(2023, 9, 4)),
	}
	// semester 2 record tidak boleh bocor ke rekap semester 1
	sem2 := gradeRecord(student, subject, model.GradeCategoryHarian, 10, date(2024, 2, 5))
	sem2.GradeSemester = 2
	records = append(records, sem2)

	fig, err := ComputeStudentFinalGrade(records, student, subject, 1, "2023/2024")
	require.NoError(t, err)
	assert.Equal(t, "80.00", fig.HarianAvg.StringFixed(2))
}

func TestComputeStudentFinalGrade_DuplicateUTSLatestWins(t *testing.T) {
	student, subject := uuid.New(), uuid.New()
	records := []model.GradeModel{
		gradeRecord(student, subject, model.GradeCategoryHarian, 80, date(2023, 9, 4)),
		gradeRecord(student, subject, model.GradeCategoryUTS, 60, date(2023, 10, 9)),
		gradeRecord(student, subject, model.GradeCategoryUTS, 75, date(2023, 10, 16)), // terbaru
		gradeRecord(student, subject, model.GradeCategoryUAS, 85, date(2023, 12, 11)),
	}

	fig, err := ComputeStudentFinalGrade(records, student, subject, 1, "2023/2024")
	require.NoError(t, err)
	assert.Equal(t, "75.00", fig.UTSScore.StringFixed(2))

	// urutan slice tidak boleh mengubah hasil
	reversed := []model.GradeModel{records[3], records[2], records[1], records[0]}
	fig2, err := ComputeStudentFinalGrade(reversed, student, subject, 1, "2023/2024")
	require.NoError(t, err)
	assert.Equal(t, "75.00", fig2.UTSScore.StringFixed(2))
}

func TestComputeStudentFinalGrade_DuplicateUASSameDateHighestIDWins(t *testing.T) {
	student, subject := uuid.New(), uuid.New()
	sameDay := date(2023, 12, 11)

	a := gradeRecord(student, subject, model.GradeCategoryUAS, 70, sameDay)
	b := gradeRecord(student, subject, model.GradeCategoryUAS, 90, sameDay)
	a.GradeID = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	b.GradeID = uuid.MustParse("22222222-2222-2222-2222-222222222222")

	for _, records := range [][]model.GradeModel{{a, b}, {b, a}} {
		fig, err := ComputeStudentFinalGrade(records, student, subject, 1, "2023/2024")
		require.NoError(t, err)
		require.NotNil(t, fig.UASScore)
		assert.Equal(t, "90.00", fig.UASScore.StringFixed(2), "id terbesar harus menang, apapun urutan slice")
	}
}

func TestComputeStudentFinalGrade_RoundingHalfUp(t *testing.T) {
	student, subject := uuid.New(), uuid.New()
	records := []model.GradeModel{
		gradeRecord(student, subject, model.GradeCategoryHarian, 70.11, date(2023, 9, 4)),
		gradeRecord(student, subject, model.GradeCategoryHarian, 70.12, date(2023, 9, 11)),
	}

	fig, err := ComputeStudentFinalGrade(records, student, subject, 1, "2023/2024")
	require.NoError(t, err)
	// rata-rata 70.115 → 70.12, bukan 70.11
	assert.Equal(t, "70.12", fig.HarianAvg.StringFixed(2))
}

func TestComputeStudentFinalGrade_HigherScoreNeverLowersFinal(t *testing.T) {
	student, subject := uuid.New(), uuid.New()
	base := []model.GradeModel{
		gradeRecord(student, subject, model.GradeCategoryUTS, 75, date(2023, 10, 16)),
		gradeRecord(student, subject, model.GradeCategoryUAS, 85, date(2023, 12, 11)),
	}

	prev := decimal.Zero
	for _, harian := range []float64{40, 55, 70, 85, 100} {
		records := append(base, gradeRecord(student, subject, model.GradeCategoryHarian, harian, date(2023, 9, 4)))
		fig, err := ComputeStudentFinalGrade(records, student, subject, 1, "2023/2024")
		require.NoError(t, err)
		require.NotNil(t, fig.FinalGrade)
		assert.True(t, fig.FinalGrade.GreaterThanOrEqual(prev),
			"nilai harian naik tidak boleh menurunkan nilai akhir")
		prev = *fig.FinalGrade
	}
}

func TestComputeClassGradeStatistics(t *testing.T) {
	subject, class := uuid.New(), uuid.New()
	full1, full2, partial, empty := uuid.New(), uuid.New(), uuid.New(), uuid.New()

	var records []model.GradeModel
	for _, s := range []struct {
		id               uuid.UUID
		harian, uts, uas float64
	}{
		{full1, 80, 75, 85},  // final 80.50
		{full2, 90, 95, 100}, // final 95.50
	} {
		records = append(records,
			gradeRecord(s.id, subject, model.GradeCategoryHarian, s.harian, date(2023, 9, 4)),
			gradeRecord(s.id, subject, model.GradeCategoryUTS, s.uts, date(2023, 10, 16)),
			gradeRecord(s.id, subject, model.GradeCategoryUAS, s.uas, date(2023, 12, 11)),
		)
	}
	// harian saja → tidak masuk statistik, tapi tetap enrolled
	records = append(records, gradeRecord(partial, subject, model.GradeCategoryHarian, 50, date(2023, 9, 4)))

	enrolled := []uuid.UUID{full1, full2, partial, empty}
	fig := ComputeClassGradeStatistics(records, class, enrolled, subject, 1, "2023/2024")

	assert.Equal(t, 4, fig.EnrolledCount)
	assert.Equal(t, 2, fig.GradedCount)
	require.NotNil(t, fig.AverageGrade)
	assert.Equal(t, "88.00", fig.AverageGrade.StringFixed(2))
	assert.Equal(t, "95.50", fig.HighestGrade.StringFixed(2))
	assert.Equal(t, "80.50", fig.LowestGrade.StringFixed(2))
}

func TestComputeClassGradeStatistics_NoGradedStudents(t *testing.T) {
	subject, class := uuid.New(), uuid.New()
	enrolled := []uuid.UUID{uuid.New(), uuid.New()}

	fig := ComputeClassGradeStatistics(nil, class, enrolled, subject, 1, "2023/2024")

	assert.Equal(t, 2, fig.EnrolledCount)
	assert.Equal(t, 0, fig.GradedCount)
	assert.Nil(t, fig.AverageGrade)
	assert.Nil(t, fig.HighestGrade)
	assert.Nil(t, fig.LowestGrade)
}
