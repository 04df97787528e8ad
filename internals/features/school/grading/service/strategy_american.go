// file: internals/features/school/grading/service/strategy_american.go
package service

import (
	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/school/grading/model"
)

// Skala huruf Amerika, bobot GPA 4.0. Batas pita mengikuti konvensi umum
// (A mulai 93, minus/plus tiap 3-4 poin, F di bawah 60).
type americanStrategy struct{ bandConversions }

func (americanStrategy) Type() model.GradingSystemType { return model.GradingSystemTypeAmerican }

func (americanStrategy) BuildDefaultSystem(schoolID uuid.UUID) *model.GradingSystemModel {
	return buildSystem(
		schoolID,
		"American Letter Grades",
		"Skala huruf A-F dengan bobot GPA 4.0",
		model.GradingSystemTypeAmerican,
		60, 100,
		[]band{
			{"A", "Excellent", 93, 100, 4.0},
			{"A-", "Excellent", 90, 92.999, 3.7},
			{"B+", "Good", 87, 89.999, 3.3},
			{"B", "Good", 83, 86.999, 3.0},
			{"B-", "Good", 80, 82.999, 2.7},
			{"C+", "Satisfactory", 77, 79.999, 2.3},
			{"C", "Satisfactory", 73, 76.999, 2.0},
			{"C-", "Satisfactory", 70, 72.999, 1.7},
			{"D+", "Passing", 67, 69.999, 1.3},
			{"D", "Passing", 63, 66.999, 1.0},
			{"D-", "Passing", 60, 62.999, 0.7},
			{"F", "Failing", 0, 59.999, 0.0},
		},
	)
}
