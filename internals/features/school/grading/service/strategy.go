// file: internals/features/school/grading/service/strategy.go
package service

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/school/grading/model"
)

var (
	// errors
	ErrGradingSystemNotFound = errors.New("grading system not found")
	ErrDuplicateName         = errors.New("a grading system with this name already exists for this school")
	ErrScoreOutOfRange       = errors.New("score does not fall inside any configured grade scale")
	ErrGradeNotFound         = errors.New("grade label does not match any configured grade scale")
	ErrUnknownSystemType     = errors.New("unknown grading system type")
)

// GradingStrategy: satu implementasi per GradingSystemType.
// Konversi selalu bekerja atas skala milik sistem yang diberikan;
// tabel kanonik hanya dipakai oleh BuildDefaultSystem.
type GradingStrategy interface {
	Type() model.GradingSystemType

	// BuildDefaultSystem: aggregate lengkap + skala kanonik, belum dipersist. Pure, tanpa I/O.
	BuildDefaultSystem(schoolID uuid.UUID) *model.GradingSystemModel

	ScoreToGrade(sys *model.GradingSystemModel, score float64) (string, error)
	ScoreToGpaPoints(sys *model.GradingSystemModel, score float64) (float64, error)

	// GradeToScore: konversi balik label → skor representatif.
	// Kebijakan: titik tengah pita (lossy, disengaja).
	GradeToScore(sys *model.GradingSystemModel, grade string) (float64, error)

	DetermineStatus(score, passingThreshold float64) model.GradeStatus
}

// scaleFor: cari pita yang memuat skor. Pita inklusif kedua ujung;
// invariant non-overlap menjamin match pertama = satu-satunya match.
func scaleFor(scales []model.GradeScaleModel, score float64) (*model.GradeScaleModel, error) {
	for i := range scales {
		if scales[i].Contains(score) {
			return &scales[i], nil
		}
	}
	return nil, ErrScoreOutOfRange
}

// scaleForGrade: inverse lookup by label (case-insensitive, tanpa fuzzy match)
func scaleForGrade(scales []model.GradeScaleModel, grade string) (*model.GradeScaleModel, error) {
	g := strings.TrimSpace(grade)
	for i := range scales {
		if strings.EqualFold(scales[i].GradeScaleGrade, g) {
			return &scales[i], nil
		}
	}
	return nil, ErrGradeNotFound
}

/* =========================
   Shared conversion core
   ========================= */

// bandConversions: implementasi konversi bersama; tiap varian strategi meng-embed ini.
type bandConversions struct{}

func (bandConversions) ScoreToGrade(sys *model.GradingSystemModel, score float64) (string, error) {
	sc, err := scaleFor(sys.Scales, score)
	if err != nil {
		return "", err
	}
	return sc.GradeScaleGrade, nil
}

func (bandConversions) ScoreToGpaPoints(sys *model.GradingSystemModel, score float64) (float64, error) {
	sc, err := scaleFor(sys.Scales, score)
	if err != nil {
		return 0, err
	}
	return sc.GradeScaleGpaValue, nil
}

func (bandConversions) GradeToScore(sys *model.GradingSystemModel, grade string) (float64, error) {
	sc, err := scaleForGrade(sys.Scales, grade)
	if err != nil {
		return 0, err
	}
	return sc.Midpoint(), nil
}

func (bandConversions) DetermineStatus(score, passingThreshold float64) model.GradeStatus {
	if score >= passingThreshold {
		return model.GradeStatusPass
	}
	return model.GradeStatusFail
}

/* =========================
   Canonical table plumbing
   ========================= */

type band struct {
	grade    string
	desc     string
	min, max float64
	gpa      float64
}

func buildSystem(schoolID uuid.UUID, name, desc string, typ model.GradingSystemType, passing, max float64, bands []band) *model.GradingSystemModel {
	sys := &model.GradingSystemModel{
		GradingSystemSchoolID:        schoolID,
		GradingSystemName:            name,
		GradingSystemDescription:     &desc,
		GradingSystemType:            typ,
		GradingSystemMinPassingScore: passing,
		GradingSystemMaxScore:        max,
	}
	for _, b := range bands {
		d := b.desc
		sys.Scales = append(sys.Scales, model.GradeScaleModel{
			GradeScaleGrade:       b.grade,
			GradeScaleDescription: &d,
			GradeScaleMinScore:    b.min,
			GradeScaleMaxScore:    b.max,
			GradeScaleGpaValue:    b.gpa,
		})
	}
	return sys
}
