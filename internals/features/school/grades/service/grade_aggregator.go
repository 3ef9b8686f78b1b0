// file: internals/features/school/grades/service/grade_aggregator.go
package service

import (
	"bytes"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	model "sekolahku_backend/internals/features/school/grades/model"
)

// ErrInvalidScope = tidak ada satupun catatan nilai untuk kombinasi siswa×mapel
// yang diminta (kemungkinan besar salah id dari pemanggil).
// Beda dengan "kategori belum lengkap": itu bukan error, nilai akhir cukup nil.
var ErrInvalidScope = errors.New("grade: tidak ada catatan nilai untuk scope ini")

// Bobot kategori ke nilai akhir: harian 30%, UTS 30%, UAS 40%
var (
	weightHarian = decimal.NewFromFloat(0.30)
	weightUTS    = decimal.NewFromFloat(0.30)
	weightUAS    = decimal.NewFromFloat(0.40)
)

// StudentGradeFigures = hasil agregasi murni per siswa×mapel×semester.
// Field nil artinya datanya belum ada (bukan nol).
type StudentGradeFigures struct {
	StudentID    uuid.UUID
	SubjectID    uuid.UUID
	HarianAvg    *decimal.Decimal
	UTSScore     *decimal.Decimal
	UASScore     *decimal.Decimal
	FinalGrade   *decimal.Decimal
	Semester     int
	AcademicYear string
}

// ClassGradeFigures = statistik nilai akhir satu kelas untuk satu mapel.
// Statistik hanya dihitung dari siswa yang nilai akhirnya sudah terbentuk
// (GradedCount); EnrolledCount tetap dilaporkan supaya tidak ambigu.
type ClassGradeFigures struct {
	ClassID       uuid.UUID
	SubjectID     uuid.UUID
	EnrolledCount int
	GradedCount   int
	AverageGrade  *decimal.Decimal
	HighestGrade  *decimal.Decimal
	LowestGrade   *decimal.Decimal
	Semester      int
	AcademicYear  string
}

// ComputeStudentFinalGrade menghitung rekap nilai satu siswa untuk satu mapel.
//
// harian_avg = rata-rata semua skor harian (bobot kategori baru dipakai di
// langkah nilai akhir, bukan di rata-rata). UTS/UAS: kalau ada lebih dari satu
// (kondisi data entry ganda), ambil yang assessment_date paling baru; kalau
// tanggal sama, id terbesar — deterministik, tidak pernah dirata-rata diam-diam.
// Nilai akhir = 0.30×harian + 0.30×uts + 0.40×uas, hanya saat ketiganya ada.
// Semua hasil dibulatkan 2 desimal (Round = half-up untuk skor non-negatif).
func ComputeStudentFinalGrade(
	records []model.GradeModel,
	studentID, subjectID uuid.UUID,
	semester int,
	academicYear string,
) (StudentGradeFigures, error) {
	fig := StudentGradeFigures{
		StudentID:    studentID,
		SubjectID:    subjectID,
		Semester:     semester,
		AcademicYear: academicYear,
	}

	var harian []decimal.Decimal
	var uts, uas *model.GradeModel
	matched := 0

	for i := range records {
		r := &records[i]
		if r.GradeStudentID != studentID || r.GradeSubjectID != subjectID {
			continue
		}
		if r.GradeSemester != semester || r.GradeAcademicYear != academicYear {
			continue
		}
		matched++

		switch r.GradeCategory {
		case model.GradeCategoryHarian:
			harian = append(harian, r.GradeScore)
		case model.GradeCategoryUTS:
			uts = pickLatest(uts, r)
		case model.GradeCategoryUAS:
			uas = pickLatest(uas, r)
		}
	}

	if matched == 0 {
		return fig, ErrInvalidScope
	}

	if len(harian) > 0 {
		avg := meanRounded(harian)
		fig.HarianAvg = &avg
	}
	if uts != nil {
		v := uts.GradeScore.Round(2)
		fig.UTSScore = &v
	}
	if uas != nil {
		v := uas.GradeScore.Round(2)
		fig.UASScore = &v
	}

	if fig.HarianAvg != nil && fig.UTSScore != nil && fig.UASScore != nil {
		final := weightHarian.Mul(*fig.HarianAvg).
			Add(weightUTS.Mul(*fig.UTSScore)).
			Add(weightUAS.Mul(*fig.UASScore)).
			Round(2)
		fig.FinalGrade = &final
	}

	return fig, nil
}

// ComputeClassGradeStatistics menghitung statistik nilai akhir satu kelas.
// Siswa tanpa catatan nilai atau tanpa nilai akhir lengkap dilewati dari
// statistik tapi tetap terhitung di EnrolledCount.
func ComputeClassGradeStatistics(
	records []model.GradeModel,
	classID uuid.UUID,
	enrolled []uuid.UUID,
	subjectID uuid.UUID,
	semester int,
	academicYear string,
) ClassGradeFigures {
	fig := ClassGradeFigures{
		ClassID:       classID,
		SubjectID:     subjectID,
		EnrolledCount: len(enrolled),
		Semester:      semester,
		AcademicYear:  academicYear,
	}

	var finals []decimal.Decimal
	for _, sid := range enrolled {
		sf, err := ComputeStudentFinalGrade(records, sid, subjectID, semester, academicYear)
		if err != nil {
			// siswa belum punya catatan nilai sama sekali → bukan error di level kelas
			continue
		}
		if sf.FinalGrade == nil {
			continue
		}
		finals = append(finals, *sf.FinalGrade)
	}

	fig.GradedCount = len(finals)
	if len(finals) == 0 {
		return fig
	}

	avg := meanRounded(finals)
	hi, lo := finals[0], finals[0]
	for _, v := range finals[1:] {
		if v.GreaterThan(hi) {
			hi = v
		}
		if v.LessThan(lo) {
			lo = v
		}
	}
	fig.AverageGrade = &avg
	fig.HighestGrade = &hi
	fig.LowestGrade = &lo
	return fig
}

// pickLatest memilih catatan dengan assessment_date terbaru; kalau seri,
// id (byte uuid) terbesar yang menang supaya hasil selalu deterministik.
func pickLatest(cur, cand *model.GradeModel) *model.GradeModel {
	if cur == nil {
		return cand
	}
	if cand.GradeAssessmentDate.After(cur.GradeAssessmentDate) {
		return cand
	}
	if cand.GradeAssessmentDate.Equal(cur.GradeAssessmentDate) &&
		bytes.Compare(cand.GradeID[:], cur.GradeID[:]) > 0 {
		return cand
	}
	return cur
}

func meanRounded(scores []decimal.Decimal) decimal.Decimal {
	sum := decimal.Zero
	for _, s := range scores {
		sum = sum.Add(s)
	}
	return sum.Div(decimal.NewFromInt(int64(len(scores)))).Round(2)
}
