// file: internals/features/school/grading/service/strategy_bulgarian.go
package service

import (
	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/school/grading/model"
)

// Skala Bulgaria 2-6; bobot GPA dipetakan langsung ke nilai Bulgaria.
type bulgarianStrategy struct{ bandConversions }

func (bulgarianStrategy) Type() model.GradingSystemType { return model.GradingSystemTypeBulgarian }

func (bulgarianStrategy) BuildDefaultSystem(schoolID uuid.UUID) *model.GradingSystemModel {
	return buildSystem(
		schoolID,
		"Bulgarian Scale",
		"Skala 2-6 (Slab sampai Otlichen)",
		model.GradingSystemTypeBulgarian,
		50, 100,
		[]band{
			{"6", "Otlichen (excellent)", 92, 100, 6.0},
			{"5", "Mnogo dobur (very good)", 75, 91.999, 5.0},
			{"4", "Dobur (good)", 59, 74.999, 4.0},
			{"3", "Sreden (average)", 50, 58.999, 3.0},
			{"2", "Slab (poor)", 0, 49.999, 2.0},
		},
	)
}
