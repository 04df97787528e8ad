// file: internals/features/school/grading/service/grading_service.go
package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	dto "sekolahku_backend/internals/features/school/grading/dto"
	model "sekolahku_backend/internals/features/school/grading/model"
)

// GradingService: orkestrasi CRUD GradingSystem + konversi skor.
// Semua operasi tulis dibungkus Store.WithTx; error apa pun membatalkan
// transaksi (tidak ada partial commit, tidak ada retry di layer ini).
type GradingService struct {
	store Store
}

func NewGradingService(store Store) *GradingService {
	return &GradingService{store: store}
}

/* =========================
   CRUD
   ========================= */

func (svc *GradingService) Create(ctx context.Context, req *dto.CreateGradingSystemRequest) (*model.GradingSystemModel, error) {
	// fail fast untuk tipe di luar enum
	if _, err := StrategyForType(req.Type); err != nil {
		return nil, err
	}

	now := time.Now()
	sys := &model.GradingSystemModel{
		GradingSystemSchoolID:        req.SchoolID,
		GradingSystemName:            strings.TrimSpace(req.Name),
		GradingSystemType:            req.Type,
		GradingSystemMinPassingScore: req.MinPassingScore,
		GradingSystemMaxScore:        req.MaxScore,
		GradingSystemCreatedAt:       now,
		GradingSystemUpdatedAt:       now,
	}
	if req.Description != nil {
		d := strings.TrimSpace(*req.Description)
		sys.GradingSystemDescription = &d
	}
	if req.IsDefault != nil {
		sys.GradingSystemIsDefault = *req.IsDefault
	}
	for i := range req.Scales {
		sys.Scales = append(sys.Scales, req.Scales[i].ToModel(uuid.Nil))
	}

	err := svc.store.WithTx(ctx, func(tx Store) error {
		exists, err := tx.SystemNameExists(ctx, req.SchoolID, sys.GradingSystemName, uuid.Nil)
		if err != nil {
			return err
		}
		if exists {
			return ErrDuplicateName
		}
		if err := tx.InsertSystem(ctx, sys); err != nil {
			return err
		}
		// default baru mematikan default lama dalam transaksi yang sama
		if sys.GradingSystemIsDefault {
			return tx.ClearDefaultExcept(ctx, req.SchoolID, sys.GradingSystemID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sys, nil
}

// Patch: partial update; hanya field non-nil yang diterapkan.
// Scales non-nil = ganti seluruh daftar skala (bukan merge).
func (svc *GradingService) Patch(ctx context.Context, schoolID, id uuid.UUID, req *dto.PatchGradingSystemRequest) (*model.GradingSystemModel, error) {
	if req.Type != nil {
		if _, err := StrategyForType(*req.Type); err != nil {
			return nil, err
		}
	}

	var out *model.GradingSystemModel
	err := svc.store.WithTx(ctx, func(tx Store) error {
		existing, err := tx.SystemByID(ctx, schoolID, id, false)
		if err != nil {
			return err
		}

		updates := map[string]interface{}{}
		if req.Name != nil {
			name := strings.TrimSpace(*req.Name)
			if !strings.EqualFold(name, existing.GradingSystemName) {
				exists, err := tx.SystemNameExists(ctx, schoolID, name, id)
				if err != nil {
					return err
				}
				if exists {
					return ErrDuplicateName
				}
			}
			updates["grading_system_name"] = name
		}
		if req.Description != nil {
			updates["grading_system_description"] = strings.TrimSpace(*req.Description)
		}
		if req.Type != nil {
			updates["grading_system_type"] = *req.Type
		}
		if req.MinPassingScore != nil {
			updates["grading_system_min_passing_score"] = *req.MinPassingScore
		}
		if req.MaxScore != nil {
			updates["grading_system_max_score"] = *req.MaxScore
		}
		if req.IsDefault != nil {
			updates["grading_system_is_default"] = *req.IsDefault
		}

		if len(updates) > 0 {
			updates["grading_system_updated_at"] = time.Now()
			if err := tx.UpdateSystemColumns(ctx, schoolID, id, updates); err != nil {
				return err
			}
		}
		if req.IsDefault != nil && *req.IsDefault {
			if err := tx.ClearDefaultExcept(ctx, schoolID, id); err != nil {
				return err
			}
		}
		if req.Scales != nil {
			scales := make([]model.GradeScaleModel, 0, len(req.Scales))
			for i := range req.Scales {
				scales = append(scales, req.Scales[i].ToModel(id))
			}
			if err := tx.ReplaceScales(ctx, id, scales); err != nil {
				return err
			}
		}

		out, err = tx.SystemByID(ctx, schoolID, id, true)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete: toleran. (false, nil) kalau id tidak ada, bukan error.
// Menghapus default TIDAK mempromosikan sistem lain; sekolah boleh
// sementara tanpa default.
func (svc *GradingService) Delete(ctx context.Context, schoolID, id uuid.UUID) (bool, error) {
	var deleted bool
	err := svc.store.WithTx(ctx, func(tx Store) error {
		var err error
		deleted, err = tx.DeleteSystem(ctx, schoolID, id)
		return err
	})
	return deleted, err
}

func (svc *GradingService) GetByID(ctx context.Context, schoolID, id uuid.UUID) (*model.GradingSystemModel, error) {
	return svc.store.SystemByID(ctx, schoolID, id, true)
}

// List: limit 0 = semua baris (dipakai internal); endpoint memakai paging.
func (svc *GradingService) List(ctx context.Context, schoolID uuid.UUID, withScales bool, limit, offset int) ([]model.GradingSystemModel, error) {
	return svc.store.SystemsBySchool(ctx, schoolID, withScales, limit, offset)
}

// SetDefault: idempoten; flip old → non-default dan new → default satu transaksi.
func (svc *GradingService) SetDefault(ctx context.Context, schoolID, id uuid.UUID) error {
	return svc.store.WithTx(ctx, func(tx Store) error {
		n, err := tx.SetDefault(ctx, schoolID, id)
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrGradingSystemNotFound
		}
		return tx.ClearDefaultExcept(ctx, schoolID, id)
	})
}

/* =========================
   Seeding default sekolah baru
   ========================= */

// InitializeDefaultGradingSystems: seed American/European/Bulgarian untuk
// sekolah yang belum punya sistem sama sekali. Idempoten: (false, nil)
// kalau sudah ada minimal satu sistem.
func (svc *GradingService) InitializeDefaultGradingSystems(ctx context.Context, schoolID uuid.UUID) (bool, error) {
	var created bool
	err := svc.store.WithTx(ctx, func(tx Store) error {
		var err error
		created, err = svc.InitializeDefaultGradingSystemsTx(ctx, tx, schoolID)
		return err
	})
	return created, err
}

// InitializeDefaultGradingSystemsTx: varian tanpa membuka transaksi sendiri,
// untuk dipanggil dari transaksi provisioning sekolah yang lebih besar
// (kontrak reentrancy: pemanggil yang memegang boundary transaksi).
func (svc *GradingService) InitializeDefaultGradingSystemsTx(ctx context.Context, txStore Store, schoolID uuid.UUID) (bool, error) {
	n, err := txStore.CountSystemsBySchool(ctx, schoolID)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}

	now := time.Now()
	for i, strat := range builtinStrategies() {
		sys := strat.BuildDefaultSystem(schoolID)
		sys.GradingSystemIsDefault = i == 0 // American jadi default awal
		sys.GradingSystemCreatedAt = now
		sys.GradingSystemUpdatedAt = now
		if err := txStore.InsertSystem(ctx, sys); err != nil {
			return false, err
		}
	}
	return true, nil
}

/* =========================
   Konversi (passthrough per gradingSystemId)
   ========================= */

// fetch segar tiap panggilan: tanpa cache, data selalu fresh
func (svc *GradingService) systemWithStrategy(ctx context.Context, schoolID, id uuid.UUID) (*model.GradingSystemModel, GradingStrategy, error) {
	sys, err := svc.store.SystemByID(ctx, schoolID, id, true)
	if err != nil {
		return nil, nil, err
	}
	strat, err := StrategyForSystem(sys)
	if err != nil {
		return nil, nil, err
	}
	return sys, strat, nil
}

func (svc *GradingService) ConvertScoreToGrade(ctx context.Context, schoolID, id uuid.UUID, score float64) (string, error) {
	sys, strat, err := svc.systemWithStrategy(ctx, schoolID, id)
	if err != nil {
		return "", err
	}
	return strat.ScoreToGrade(sys, score)
}

func (svc *GradingService) ConvertScoreToGpaPoints(ctx context.Context, schoolID, id uuid.UUID, score float64) (float64, error) {
	sys, strat, err := svc.systemWithStrategy(ctx, schoolID, id)
	if err != nil {
		return 0, err
	}
	return strat.ScoreToGpaPoints(sys, score)
}

func (svc *GradingService) DetermineStatus(ctx context.Context, schoolID, id uuid.UUID, score float64) (model.GradeStatus, error) {
	sys, strat, err := svc.systemWithStrategy(ctx, schoolID, id)
	if err != nil {
		return "", err
	}
	return strat.DetermineStatus(score, sys.GradingSystemMinPassingScore), nil
}

func (svc *GradingService) ConvertGradeToScore(ctx context.Context, schoolID, id uuid.UUID, grade string) (float64, error) {
	sys, strat, err := svc.systemWithStrategy(ctx, schoolID, id)
	if err != nil {
		return 0, err
	}
	return strat.GradeToScore(sys, grade)
}

// ConvertScore: satu fetch untuk grade + gpa + status sekaligus (dipakai endpoint konversi)
func (svc *GradingService) ConvertScore(ctx context.Context, schoolID, id uuid.UUID, score float64) (*dto.ScoreConversionResponse, error) {
	sys, strat, err := svc.systemWithStrategy(ctx, schoolID, id)
	if err != nil {
		return nil, err
	}
	grade, err := strat.ScoreToGrade(sys, score)
	if err != nil {
		return nil, err
	}
	gpa, err := strat.ScoreToGpaPoints(sys, score)
	if err != nil {
		return nil, err
	}
	return &dto.ScoreConversionResponse{
		GradingSystemID: sys.GradingSystemID,
		Score:           score,
		Grade:           grade,
		GpaPoints:       gpa,
		Status:          strat.DetermineStatus(score, sys.GradingSystemMinPassingScore),
	}, nil
}
