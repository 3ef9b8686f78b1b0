// file: internals/features/school/reports/service/report_service.go
package service

import (
	"context"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	attmodel "sekolahku_backend/internals/features/school/attendances/model"
	gmodel "sekolahku_backend/internals/features/school/grades/model"
	dto "sekolahku_backend/internals/features/school/reports/dto"
)

// ReportService mengorkestrasi satu pass agregasi: ambil snapshot catatan
// dari DB → hitung (service grades/attendances) → lekatkan nama (assembler).
// Stateless per pemanggilan; snapshot dianggap immutable selama satu pass,
// rekap tidak pernah disimpan — selalu dihitung ulang dari catatan mentah.
type ReportService struct {
	DB    *gorm.DB
	Names NameDirectory
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{
		DB:    db,
		Names: NewGormNameDirectory(db),
	}
}

// ===== RecordStore (snapshot per scope; kosong = slice kosong, bukan error) =====

func (s *ReportService) fetchStudentGrades(ctx context.Context, studentID, subjectID uuid.UUID, semester int, academicYear string) ([]gmodel.GradeModel, error) {
	var rows []gmodel.GradeModel
	err := s.DB.WithContext(ctx).
		Where("grade_student_id = ? AND grade_subject_id = ? AND grade_semester = ? AND grade_academic_year = ?",
			studentID, subjectID, semester, academicYear).
		Find(&rows).Error
	return rows, err
}

func (s *ReportService) fetchClassGrades(ctx context.Context, students []uuid.UUID, subjectID uuid.UUID, semester int, academicYear string) ([]gmodel.GradeModel, error) {
	if len(students) == 0 {
		return nil, nil
	}
	var rows []gmodel.GradeModel
	err := s.DB.WithContext(ctx).
		Where("grade_student_id IN ? AND grade_subject_id = ? AND grade_semester = ? AND grade_academic_year = ?",
			students, subjectID, semester, academicYear).
		Find(&rows).Error
	return rows, err
}

func (s *ReportService) fetchAttendance(ctx context.Context, students []uuid.UUID, month, year int) ([]attmodel.AttendanceModel, error) {
	if len(students) == 0 {
		return nil, nil
	}
	var rows []attmodel.AttendanceModel
	err := s.DB.WithContext(ctx).
		Where("attendance_student_id IN ?", students).
		Where("EXTRACT(MONTH FROM attendance_date) = ? AND EXTRACT(YEAR FROM attendance_date) = ?", month, year).
		Find(&rows).Error
	return rows, err
}

// enrolledStudents mengambil id siswa aktif satu kelas, urut NIS supaya
// hasil agregasi kelas selalu deterministik.
func (s *ReportService) enrolledStudents(ctx context.Context, classID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := s.DB.WithContext(ctx).
		Table("students").
		Select("student_id").
		Where("student_class_id = ? AND student_is_active = TRUE AND student_deleted_at IS NULL", classID).
		Order("student_nis ASC").
		Scan(&ids).Error
	return ids, err
}

// ===== Operasi rekap =====

func (s *ReportService) StudentGradesReport(ctx context.Context, studentID, subjectID uuid.UUID, semester int, academicYear string) (dto.StudentGradesSummaryResponse, error) {
	records, err := s.fetchStudentGrades(ctx, studentID, subjectID, semester, academicYear)
	if err != nil {
		return dto.StudentGradesSummaryResponse{}, err
	}
	return AssembleStudentGrades(ctx, s.Names, records, studentID, subjectID, semester, academicYear)
}

func (s *ReportService) ClassGradesReport(ctx context.Context, classID, subjectID uuid.UUID, semester int, academicYear string) (dto.ClassGradesSummaryResponse, error) {
	enrolled, err := s.enrolledStudents(ctx, classID)
	if err != nil {
		return dto.ClassGradesSummaryResponse{}, err
	}
	records, err := s.fetchClassGrades(ctx, enrolled, subjectID, semester, academicYear)
	if err != nil {
		return dto.ClassGradesSummaryResponse{}, err
	}
	log.Printf("[ReportService] class grades: class_id=%s subject_id=%s enrolled=%d records=%d",
		classID, subjectID, len(enrolled), len(records))
	return AssembleClassGrades(ctx, s.Names, records, classID, enrolled, subjectID, semester, academicYear)
}

func (s *ReportService) StudentAttendanceReport(ctx context.Context, studentID uuid.UUID, month, year int) (dto.StudentAttendanceSummaryResponse, error) {
	records, err := s.fetchAttendance(ctx, []uuid.UUID{studentID}, month, year)
	if err != nil {
		return dto.StudentAttendanceSummaryResponse{}, err
	}
	return AssembleStudentAttendance(ctx, s.Names, records, studentID, month, year)
}

func (s *ReportService) ClassAttendanceReport(ctx context.Context, classID uuid.UUID, month, year int) (dto.ClassAttendanceSummaryResponse, error) {
	students, err := s.enrolledStudents(ctx, classID)
	if err != nil {
		return dto.ClassAttendanceSummaryResponse{}, err
	}
	records, err := s.fetchAttendance(ctx, students, month, year)
	if err != nil {
		return dto.ClassAttendanceSummaryResponse{}, err
	}
	log.Printf("[ReportService] class attendance: class_id=%s students=%d records=%d month=%d year=%d",
		classID, len(students), len(records), month, year)
	return AssembleClassAttendance(ctx, s.Names, records, classID, students, month, year)
}
