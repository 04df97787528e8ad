// file: internals/features/school/grading/service/factory.go
package service

import (
	model "sekolahku_backend/internals/features/school/grading/model"
)

// builtinStrategies: urutan ini juga dipakai saat seeding default sekolah baru.
// Custom tidak ikut di-seed.
func builtinStrategies() []GradingStrategy {
	return []GradingStrategy{
		americanStrategy{},
		europeanStrategy{},
		bulgarianStrategy{},
	}
}

// StrategyForType: mapping tertutup type → strategi; tipe tak dikenal gagal cepat.
func StrategyForType(t model.GradingSystemType) (GradingStrategy, error) {
	switch t {
	case model.GradingSystemTypeAmerican:
		return americanStrategy{}, nil
	case model.GradingSystemTypeEuropean:
		return europeanStrategy{}, nil
	case model.GradingSystemTypeBulgarian:
		return bulgarianStrategy{}, nil
	case model.GradingSystemTypeCustom:
		return customStrategy{}, nil
	default:
		return nil, ErrUnknownSystemType
	}
}

// StrategyForSystem: strategi selanjutnya bekerja atas skala tersimpan milik sys.
func StrategyForSystem(sys *model.GradingSystemModel) (GradingStrategy, error) {
	return StrategyForType(sys.GradingSystemType)
}
