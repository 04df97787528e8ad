// file: internals/features/school/grading/service/factory_test.go
package service

import (
	"errors"
	"testing"

	model "sekolahku_backend/internals/features/school/grading/model"
)

func TestStrategyForType(t *testing.T) {
	for _, typ := range []model.GradingSystemType{
		model.GradingSystemTypeAmerican,
		model.GradingSystemTypeEuropean,
		model.GradingSystemTypeBulgarian,
		model.GradingSystemTypeCustom,
	} {
		strat, err := StrategyForType(typ)
		if err != nil {
			t.Fatalf("StrategyForType(%s): %v", typ, err)
		}
		if strat.Type() != typ {
			t.Errorf("StrategyForType(%s).Type() = %s", typ, strat.Type())
		}
	}

	if _, err := StrategyForType("klingon"); !errors.Is(err, ErrUnknownSystemType) {
		t.Errorf("StrategyForType(klingon): got %v, want ErrUnknownSystemType", err)
	}
}

func TestStrategyForSystem(t *testing.T) {
	sys := &model.GradingSystemModel{GradingSystemType: model.GradingSystemTypeBulgarian}
	strat, err := StrategyForSystem(sys)
	if err != nil {
		t.Fatalf("StrategyForSystem: %v", err)
	}
	if strat.Type() != model.GradingSystemTypeBulgarian {
		t.Errorf("Type() = %s, want bulgarian", strat.Type())
	}

	sys.GradingSystemType = ""
	if _, err := StrategyForSystem(sys); !errors.Is(err, ErrUnknownSystemType) {
		t.Errorf("empty type: got %v, want ErrUnknownSystemType", err)
	}
}

func TestBuiltinStrategiesExcludeCustom(t *testing.T) {
	strategies := builtinStrategies()
	if len(strategies) != 3 {
		t.Fatalf("builtinStrategies() = %d strategies, want 3", len(strategies))
	}
	for _, strat := range strategies {
		if strat.Type() == model.GradingSystemTypeCustom {
			t.Error("custom tidak boleh ikut di-seed")
		}
	}
}
