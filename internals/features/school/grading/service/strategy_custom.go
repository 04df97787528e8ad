// file: internals/features/school/grading/service/strategy_custom.go
package service

import (
	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/school/grading/model"
)

// Strategi pass-through untuk sistem buatan admin: konversi murni dari
// tabel pita yang tersimpan. Default-nya satu pita penuh 0-100 supaya
// sistem baru tetap bisa dipakai sebelum admin mengisi skalanya.
type customStrategy struct{ bandConversions }

func (customStrategy) Type() model.GradingSystemType { return model.GradingSystemTypeCustom }

func (customStrategy) BuildDefaultSystem(schoolID uuid.UUID) *model.GradingSystemModel {
	return buildSystem(
		schoolID,
		"Custom Scale",
		"Skala kustom; pita diisi sendiri oleh admin sekolah",
		model.GradingSystemTypeCustom,
		50, 100,
		[]band{
			{"P", "Ungraded pass-through", 0, 100, 0.0},
		},
	)
}
