// file: internals/features/school/reports/service/report_assembler_test.go
package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	attmodel "sekolahku_backend/internals/features/school/attendances/model"
	gmodel "sekolahku_backend/internals/features/school/grades/model"
	gservice "sekolahku_backend/internals/features/school/grades/service"
	dto "sekolahku_backend/internals/features/school/reports/dto"
)

// fakeNameDirectory = direktori nama in-memory untuk test assembler
type fakeNameDirectory struct {
	students map[uuid.UUID]string
	subjects map[uuid.UUID]string
	classes  map[uuid.UUID]string
}

func (f *fakeNameDirectory) lookup(kind string, m map[uuid.UUID]string, id uuid.UUID) (string, error) {
	if name, ok := m[id]; ok {
		return name, nil
	}
	return "", fmt.Errorf("%w: %s %s", ErrMissingReference, kind, id)
}

func (f *fakeNameDirectory) StudentName(_ context.Context, id uuid.UUID) (string, error) {
	return f.lookup("student", f.students, id)
}

func (f *fakeNameDirectory) SubjectName(_ context.Context, id uuid.UUID) (string, error) {
	return f.lookup("subject", f.subjects, id)
}

func (f *fakeNameDirectory) ClassName(_ context.Context, id uuid.UUID) (string, error) {
	return f.lookup("class", f.classes, id)
}

func completeGradeSet(student, subject uuid.UUID) []gmodel.GradeModel {
	mk := func(cat gmodel.GradeCategory, score float64, day int) gmodel.GradeModel {
		return gmodel.GradeModel{
			GradeID:             uuid.New(),
			GradeStudentID:      student,
			GradeSubjectID:      subject,
			GradeTeacherID:      uuid.New(),
			GradeCategory:       cat,
			GradeScore:          decimal.NewFromFloat(score),
			GradeAssessmentName: "Penilaian",
			GradeAssessmentDate: time.Date(2023, time.September, day, 0, 0, 0, 0, time.UTC),
			GradeSemester:       1,
			GradeAcademicYear:   "2023/2024",
		}
	}
	return []gmodel.GradeModel{
		mk(gmodel.GradeCategoryHarian, 80, 4),
		mk(gmodel.GradeCategoryUTS, 75, 18),
		mk(gmodel.GradeCategoryUAS, 85, 25),
	}
}

func TestAssembleStudentGrades(t *testing.T) {
	student, subject := uuid.New(), uuid.New()
	names := &fakeNameDirectory{
		students: map[uuid.UUID]string{student: "Budi Santoso"},
		subjects: map[uuid.UUID]string{subject: "Matematika"},
	}

	out, err := AssembleStudentGrades(context.Background(), names,
		completeGradeSet(student, subject), student, subject, 1, "2023/2024")
	require.NoError(t, err)

	assert.Equal(t, "Budi Santoso", out.StudentName)
	assert.Equal(t, "Matematika", out.SubjectName)
	require.NotNil(t, out.FinalGrade)
	assert.Equal(t, "80.50", out.FinalGrade.StringFixed(2))

	// serialisasi harus selalu tepat 2 desimal
	raw, err := sonic.Marshal(out)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"final_grade":80.50`)
	assert.Contains(t, string(raw), `"harian_avg":80.00`)
}

func TestAssembleStudentGrades_MissingStudentName(t *testing.T) {
	student, subject := uuid.New(), uuid.New()
	names := &fakeNameDirectory{
		students: map[uuid.UUID]string{}, // siswa tidak ada di master data
		subjects: map[uuid.UUID]string{subject: "Matematika"},
	}

	_, err := AssembleStudentGrades(context.Background(), names,
		completeGradeSet(student, subject), student, subject, 1, "2023/2024")
	assert.ErrorIs(t, err, ErrMissingReference)
}

func TestAssembleStudentGrades_InvalidScopePropagates(t *testing.T) {
	student, subject := uuid.New(), uuid.New()
	names := &fakeNameDirectory{
		students: map[uuid.UUID]string{student: "Budi Santoso"},
		subjects: map[uuid.UUID]string{subject: "Matematika"},
	}

	_, err := AssembleStudentGrades(context.Background(), names,
		nil, student, subject, 1, "2023/2024")
	assert.ErrorIs(t, err, gservice.ErrInvalidScope)
}

func TestAssembleClassGrades(t *testing.T) {
	class, subject := uuid.New(), uuid.New()
	studentA, studentB := uuid.New(), uuid.New()
	names := &fakeNameDirectory{
		subjects: map[uuid.UUID]string{subject: "Matematika"},
		classes:  map[uuid.UUID]string{class: "Kelas 5A"},
	}

	records := append(completeGradeSet(studentA, subject), completeGradeSet(studentB, subject)...)
	out, err := AssembleClassGrades(context.Background(), names,
		records, class, []uuid.UUID{studentA, studentB, uuid.New()}, subject, 1, "2023/2024")
	require.NoError(t, err)

	assert.Equal(t, "Kelas 5A", out.ClassName)
	assert.Equal(t, 3, out.EnrolledCount)
	assert.Equal(t, 2, out.GradedCount)
	require.NotNil(t, out.AverageGrade)
	assert.Equal(t, "80.50", out.AverageGrade.StringFixed(2))
}

func TestAssembleClassGrades_EmptyClassNoError(t *testing.T) {
	class, subject := uuid.New(), uuid.New()
	names := &fakeNameDirectory{
		subjects: map[uuid.UUID]string{subject: "Matematika"},
		classes:  map[uuid.UUID]string{class: "Kelas 5A"},
	}

	// kelas tanpa nilai bukan error: statistiknya saja yang kosong
	out, err := AssembleClassGrades(context.Background(), names,
		nil, class, nil, subject, 1, "2023/2024")
	require.NoError(t, err)
	assert.Equal(t, 0, out.EnrolledCount)
	assert.Equal(t, 0, out.GradedCount)
	assert.Nil(t, out.AverageGrade)
}

func TestAssembleStudentAttendance(t *testing.T) {
	student := uuid.New()
	names := &fakeNameDirectory{
		students: map[uuid.UUID]string{student: "Siti Aminah"},
	}

	records := []attmodel.AttendanceModel{
		{
			AttendanceID:           uuid.New(),
			AttendanceStudentID:    student,
			AttendanceTeacherID:    uuid.New(),
			AttendanceDate:         time.Date(2023, time.September, 4, 0, 0, 0, 0, time.UTC),
			AttendanceStatus:       attmodel.AttendanceStatusHadir,
			AttendanceAcademicYear: "2023/2024",
		},
		{
			AttendanceID:           uuid.New(),
			AttendanceStudentID:    student,
			AttendanceTeacherID:    uuid.New(),
			AttendanceDate:         time.Date(2023, time.September, 5, 0, 0, 0, 0, time.UTC),
			AttendanceStatus:       attmodel.AttendanceStatusAlpha,
			AttendanceAcademicYear: "2023/2024",
		},
	}

	out, err := AssembleStudentAttendance(context.Background(), names, records, student, 9, 2023)
	require.NoError(t, err)

	assert.Equal(t, "Siti Aminah", out.StudentName)
	assert.Equal(t, 2, out.TotalDays)
	assert.Equal(t, "50.00", out.AttendancePercentage.StringFixed(2))

	raw, err := sonic.Marshal(out)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"attendance_percentage":50.00`)
}

func TestAssembleClassAttendance_MissingClassName(t *testing.T) {
	class := uuid.New()
	names := &fakeNameDirectory{classes: map[uuid.UUID]string{}}

	_, err := AssembleClassAttendance(context.Background(), names, nil, class, nil, 9, 2023)
	assert.ErrorIs(t, err, ErrMissingReference)
}

func TestFixedScoreNilStaysNil(t *testing.T) {
	assert.Nil(t, dto.NewFixedScore(nil))

	v := decimal.NewFromFloat(80.5)
	fs := dto.NewFixedScore(&v)
	require.NotNil(t, fs)

	raw, err := fs.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "80.50", string(raw))
}
