// file: internals/features/school/grading/service/strategy_european.go
package service

import (
	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/school/grading/model"
)

// Skala numerik Eropa 2-10 di atas skor mentah 0-100; 5 ke atas lulus.
type europeanStrategy struct{ bandConversions }

func (europeanStrategy) Type() model.GradingSystemType { return model.GradingSystemTypeEuropean }

func (europeanStrategy) BuildDefaultSystem(schoolID uuid.UUID) *model.GradingSystemModel {
	return buildSystem(
		schoolID,
		"European Numeric Scale",
		"Skala numerik 2-10 (5 ke atas lulus)",
		model.GradingSystemTypeEuropean,
		50, 100,
		[]band{
			{"10", "Outstanding", 95, 100, 4.0},
			{"9", "Very good", 85, 94.999, 3.7},
			{"8", "Good", 75, 84.999, 3.3},
			{"7", "More than satisfactory", 65, 74.999, 3.0},
			{"6", "Satisfactory", 55, 64.999, 2.7},
			{"5", "Sufficient", 50, 54.999, 2.0},
			{"4", "Insufficient", 40, 49.999, 1.3},
			{"3", "Deficient", 25, 39.999, 0.7},
			{"2", "Fail", 0, 24.999, 0.0},
		},
	)
}
