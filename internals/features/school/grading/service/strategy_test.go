// file: internals/features/school/grading/service/strategy_test.go
package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/school/grading/model"
)

// sistem uji dengan batas pita eksplisit: A [90,100] → 4.0, B [80,89.999] → 3.0
func boundarySystem() *model.GradingSystemModel {
	return &model.GradingSystemModel{
		GradingSystemID:              uuid.New(),
		GradingSystemType:            model.GradingSystemTypeAmerican,
		GradingSystemMinPassingScore: 60,
		GradingSystemMaxScore:        100,
		Scales: []model.GradeScaleModel{
			{GradeScaleGrade: "A", GradeScaleMinScore: 90, GradeScaleMaxScore: 100, GradeScaleGpaValue: 4.0},
			{GradeScaleGrade: "B", GradeScaleMinScore: 80, GradeScaleMaxScore: 89.999, GradeScaleGpaValue: 3.0},
		},
	}
}

func TestScoreToGradeBoundaries(t *testing.T) {
	sys := boundarySystem()
	strat := americanStrategy{}

	tests := []struct {
		score float64
		want  string
	}{
		{90, "A"},
		{89.9, "B"},
		{100, "A"},
		{80, "B"},
		{89.999, "B"},
	}
	for _, tt := range tests {
		got, err := strat.ScoreToGrade(sys, tt.score)
		if err != nil {
			t.Fatalf("ScoreToGrade(%v): unexpected error %v", tt.score, err)
		}
		if got != tt.want {
			t.Errorf("ScoreToGrade(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}

	gpa, err := strat.ScoreToGpaPoints(sys, 90)
	if err != nil {
		t.Fatalf("ScoreToGpaPoints(90): %v", err)
	}
	if gpa != 4.0 {
		t.Errorf("ScoreToGpaPoints(90) = %v, want 4.0", gpa)
	}
}

func TestScoreOutOfRange(t *testing.T) {
	sys := boundarySystem()
	strat := americanStrategy{}

	for _, score := range []float64{-1, 79.999, 101} {
		if _, err := strat.ScoreToGrade(sys, score); !errors.Is(err, ErrScoreOutOfRange) {
			t.Errorf("ScoreToGrade(%v): got %v, want ErrScoreOutOfRange", score, err)
		}
		if _, err := strat.ScoreToGpaPoints(sys, score); !errors.Is(err, ErrScoreOutOfRange) {
			t.Errorf("ScoreToGpaPoints(%v): got %v, want ErrScoreOutOfRange", score, err)
		}
	}
}

func TestGradeToScore(t *testing.T) {
	sys := boundarySystem()
	strat := americanStrategy{}

	// kebijakan: titik tengah pita
	got, err := strat.GradeToScore(sys, "A")
	if err != nil {
		t.Fatalf("GradeToScore(A): %v", err)
	}
	if got != 95 {
		t.Errorf("GradeToScore(A) = %v, want 95", got)
	}

	// label case-insensitive, tanpa fuzzy match
	if _, err := strat.GradeToScore(sys, "a"); err != nil {
		t.Errorf("GradeToScore(a): unexpected error %v", err)
	}
	if _, err := strat.GradeToScore(sys, "C"); !errors.Is(err, ErrGradeNotFound) {
		t.Errorf("GradeToScore(C): got %v, want ErrGradeNotFound", err)
	}
}

func TestDetermineStatusThreshold(t *testing.T) {
	strat := americanStrategy{}

	if got := strat.DetermineStatus(60, 60); got != model.GradeStatusPass {
		t.Errorf("DetermineStatus(60, 60) = %v, want pass", got)
	}
	if got := strat.DetermineStatus(59.999, 60); got != model.GradeStatusFail {
		t.Errorf("DetermineStatus(59.999, 60) = %v, want fail", got)
	}
	if got := strat.DetermineStatus(100, 60); got != model.GradeStatusPass {
		t.Errorf("DetermineStatus(100, 60) = %v, want pass", got)
	}
}

// Skala kanonik tiap strategi bawaan harus menutup [0, max] tanpa gap:
// setiap skor di rentang itu dapat tepat satu grade.
func TestDefaultSystemsCoverage(t *testing.T) {
	schoolID := uuid.New()

	for _, strat := range builtinStrategies() {
		sys := strat.BuildDefaultSystem(schoolID)
		if len(sys.Scales) == 0 {
			t.Fatalf("%s: default system has no scales", strat.Type())
		}
		if sys.GradingSystemSchoolID != schoolID {
			t.Errorf("%s: school id not propagated", strat.Type())
		}

		for score := 0.0; score <= sys.GradingSystemMaxScore; score += 0.125 {
			matches := 0
			for i := range sys.Scales {
				if sys.Scales[i].Contains(score) {
					matches++
				}
			}
			if matches != 1 {
				t.Fatalf("%s: score %v matches %d bands, want exactly 1", strat.Type(), score, matches)
			}
		}
	}
}

// Pita bawaan terurut naik menurut GPA: skor lebih tinggi tidak boleh
// menghasilkan GPA lebih rendah.
func TestDefaultSystemsGpaMonotonic(t *testing.T) {
	schoolID := uuid.New()

	for _, strat := range builtinStrategies() {
		sys := strat.BuildDefaultSystem(schoolID)

		prev := -1.0
		for score := 0.0; score <= sys.GradingSystemMaxScore; score += 0.5 {
			gpa, err := strat.ScoreToGpaPoints(sys, score)
			if err != nil {
				t.Fatalf("%s: ScoreToGpaPoints(%v): %v", strat.Type(), score, err)
			}
			if gpa < prev {
				t.Fatalf("%s: gpa turun di skor %v (%v < %v)", strat.Type(), score, gpa, prev)
			}
			prev = gpa
		}
	}
}

// Round-trip grade → skor representatif harus jatuh kembali di pita yang sama
// (lossy, tapi tidak boleh pindah pita).
func TestGradeToScoreRoundTrip(t *testing.T) {
	schoolID := uuid.New()

	for _, strat := range builtinStrategies() {
		sys := strat.BuildDefaultSystem(schoolID)

		for _, score := range []float64{0, 35, 50, 59, 60, 75, 88, 92, 100} {
			grade, err := strat.ScoreToGrade(sys, score)
			if err != nil {
				t.Fatalf("%s: ScoreToGrade(%v): %v", strat.Type(), score, err)
			}
			back, err := strat.GradeToScore(sys, grade)
			if err != nil {
				t.Fatalf("%s: GradeToScore(%q): %v", strat.Type(), grade, err)
			}
			roundTrip, err := strat.ScoreToGrade(sys, back)
			if err != nil {
				t.Fatalf("%s: ScoreToGrade(%v) round trip: %v", strat.Type(), back, err)
			}
			if roundTrip != grade {
				t.Errorf("%s: skor %v → %q, tapi %v → %q", strat.Type(), score, grade, back, roundTrip)
			}
		}
	}
}
