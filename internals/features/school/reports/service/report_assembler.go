// file: internals/features/school/reports/service/report_assembler.go
package service

import (
	"context"

	"github.com/google/uuid"

	attmodel "sekolahku_backend/internals/features/school/attendances/model"
	attservice "sekolahku_backend/internals/features/school/attendances/service"
	gmodel "sekolahku_backend/internals/features/school/grades/model"
	gservice "sekolahku_backend/internals/features/school/grades/service"
	dto "sekolahku_backend/internals/features/school/reports/dto"
)

// Assembler = langkah mapping murni: hasil agregasi + nama tampilan → bentuk
// rekap yang dikirim ke pemanggil. Tidak ada hitungan angka di sini; error
// agregator diteruskan apa adanya, tidak pernah diturunkan jadi field kosong.

func AssembleStudentGrades(
	ctx context.Context,
	names NameDirectory,
	records []gmodel.GradeModel,
	studentID, subjectID uuid.UUID,
	semester int,
	academicYear string,
) (dto.StudentGradesSummaryResponse, error) {
	var out dto.StudentGradesSummaryResponse

	fig, err := gservice.ComputeStudentFinalGrade(records, studentID, subjectID, semester, academicYear)
	if err != nil {
		return out, err
	}

	studentName, err := names.StudentName(ctx, studentID)
	if err != nil {
		return out, err
	}
	subjectName, err := names.SubjectName(ctx, subjectID)
	if err != nil {
		return out, err
	}

	out = dto.StudentGradesSummaryResponse{
		StudentID:    fig.StudentID,
		StudentName:  studentName,
		SubjectID:    fig.SubjectID,
		SubjectName:  subjectName,
		HarianAvg:    dto.NewFixedScore(fig.HarianAvg),
		UTSScore:     dto.NewFixedScore(fig.UTSScore),
		UASScore:     dto.NewFixedScore(fig.UASScore),
		FinalGrade:   dto.NewFixedScore(fig.FinalGrade),
		Semester:     fig.Semester,
		AcademicYear: fig.AcademicYear,
	}
	return out, nil
}

func AssembleClassGrades(
	ctx context.Context,
	names NameDirectory,
	records []gmodel.GradeModel,
	classID uuid.UUID,
	enrolled []uuid.UUID,
	subjectID uuid.UUID,
	semester int,
	academicYear string,
) (dto.ClassGradesSummaryResponse, error) {
	var out dto.ClassGradesSummaryResponse

	fig := gservice.ComputeClassGradeStatistics(records, classID, enrolled, subjectID, semester, academicYear)

	className, err := names.ClassName(ctx, classID)
	if err != nil {
		return out, err
	}
	subjectName, err := names.SubjectName(ctx, subjectID)
	if err != nil {
		return out, err
	}

	out = dto.ClassGradesSummaryResponse{
		ClassID:       fig.ClassID,
		ClassName:     className,
		SubjectID:     fig.SubjectID,
		SubjectName:   subjectName,
		EnrolledCount: fig.EnrolledCount,
		GradedCount:   fig.GradedCount,
		AverageGrade:  dto.NewFixedScore(fig.AverageGrade),
		HighestGrade:  dto.NewFixedScore(fig.HighestGrade),
		LowestGrade:   dto.NewFixedScore(fig.LowestGrade),
		Semester:      fig.Semester,
		AcademicYear:  fig.AcademicYear,
	}
	return out, nil
}

func AssembleStudentAttendance(
	ctx context.Context,
	names NameDirectory,
	records []attmodel.AttendanceModel,
	studentID uuid.UUID,
	month, year int,
) (dto.StudentAttendanceSummaryResponse, error) {
	var out dto.StudentAttendanceSummaryResponse

	fig := attservice.ComputeStudentAttendance(records, studentID, month, year)

	studentName, err := names.StudentName(ctx, studentID)
	if err != nil {
		return out, err
	}

	out = dto.StudentAttendanceSummaryResponse{
		StudentID:            fig.StudentID,
		StudentName:          studentName,
		TotalDays:            fig.TotalDays,
		HadirCount:           fig.HadirCount,
		AlphaCount:           fig.AlphaCount,
		IzinCount:            fig.IzinCount,
		SakitCount:           fig.SakitCount,
		TerlambatCount:       fig.TerlambatCount,
		AttendancePercentage: dto.FixedScore{Decimal: fig.AttendancePercentage},
		Month:                fig.Month,
		Year:                 fig.Year,
	}
	return out, nil
}

func AssembleClassAttendance(
	ctx context.Context,
	names NameDirectory,
	records []attmodel.AttendanceModel,
	classID uuid.UUID,
	students []uuid.UUID,
	month, year int,
) (dto.ClassAttendanceSummaryResponse, error) {
	var out dto.ClassAttendanceSummaryResponse

	fig := attservice.ComputeClassAttendance(records, classID, students, month, year)

	className, err := names.ClassName(ctx, classID)
	if err != nil {
		return out, err
	}

	out = dto.ClassAttendanceSummaryResponse{
		ClassID:                     fig.ClassID,
		ClassName:                   className,
		TotalStudents:               fig.TotalStudents,
		TotalDays:                   fig.TotalDays,
		OverallAttendancePercentage: dto.FixedScore{Decimal: fig.OverallAttendancePercentage},
		Month:                       fig.Month,
		Year:                        fig.Year,
	}
	return out, nil
}
