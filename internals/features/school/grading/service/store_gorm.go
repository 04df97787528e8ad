// file: internals/features/school/grading/service/store_gorm.go
package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "sekolahku_backend/internals/features/school/grading/model"
)

type gormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

/* =========================
   Small helpers
   ========================= */

// --- PG error mapping ---
type pgSQLErr interface {
	SQLState() string
	Error() string
}

// 23505 unique_violation → ErrDuplicateName (constraint jadi backstop
// untuk race yang lolos pre-check nama)
func mapInsertError(err error) error {
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) && pgErr.SQLState() == "23505" {
		return ErrDuplicateName
	}
	if strings.Contains(strings.ToLower(err.Error()), "duplicate key") {
		return ErrDuplicateName
	}
	return err
}

/* =========================
   Store implementation
   ========================= */

func (s *gormStore) WithTx(ctx context.Context, fn func(txStore Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{db: tx})
	})
}

func (s *gormStore) SystemByID(ctx context.Context, schoolID, id uuid.UUID, withScales bool) (*model.GradingSystemModel, error) {
	q := s.db.WithContext(ctx).
		Where("grading_system_id = ? AND grading_system_school_id = ?", id, schoolID)
	if withScales {
		q = q.Preload("Scales")
	}

	var row model.GradingSystemModel
	if err := q.First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGradingSystemNotFound
		}
		return nil, err
	}
	return &row, nil
}

func (s *gormStore) SystemsBySchool(ctx context.Context, schoolID uuid.UUID, withScales bool, limit, offset int) ([]model.GradingSystemModel, error) {
	q := s.db.WithContext(ctx).
		Where("grading_system_school_id = ?", schoolID).
		Order("grading_system_created_at ASC")
	if withScales {
		q = q.Preload("Scales")
	}
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}

	var rows []model.GradingSystemModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *gormStore) CountSystemsBySchool(ctx context.Context, schoolID uuid.UUID) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).
		Model(&model.GradingSystemModel{}).
		Where("grading_system_school_id = ?", schoolID).
		Count(&n).Error
	return n, err
}

func (s *gormStore) SystemNameExists(ctx context.Context, schoolID uuid.UUID, name string, exceptID uuid.UUID) (bool, error) {
	q := s.db.WithContext(ctx).
		Model(&model.GradingSystemModel{}).
		Where("grading_system_school_id = ? AND LOWER(grading_system_name) = LOWER(?)", schoolID, strings.TrimSpace(name))
	if exceptID != uuid.Nil {
		q = q.Where("grading_system_id <> ?", exceptID)
	}

	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *gormStore) InsertSystem(ctx context.Context, sys *model.GradingSystemModel) error {
	if err := s.db.WithContext(ctx).Create(sys).Error; err != nil {
		return mapInsertError(err)
	}
	return nil
}

func (s *gormStore) UpdateSystemColumns(ctx context.Context, schoolID, id uuid.UUID, updates map[string]interface{}) error {
	return s.db.WithContext(ctx).
		Model(&model.GradingSystemModel{}).
		Where("grading_system_id = ? AND grading_system_school_id = ?", id, schoolID).
		Updates(updates).Error
}

func (s *gormStore) ReplaceScales(ctx context.Context, systemID uuid.UUID, scales []model.GradeScaleModel) error {
	db := s.db.WithContext(ctx)
	if err := db.
		Where("grade_scale_grading_system_id = ?", systemID).
		Delete(&model.GradeScaleModel{}).Error; err != nil {
		return err
	}
	if len(scales) == 0 {
		return nil
	}
	for i := range scales {
		scales[i].GradeScaleGradingSystemID = systemID
	}
	return db.Create(&scales).Error
}

func (s *gormStore) ClearDefaultExcept(ctx context.Context, schoolID, exceptID uuid.UUID) error {
	return s.db.WithContext(ctx).
		Model(&model.GradingSystemModel{}).
		Where("grading_system_school_id = ? AND grading_system_id <> ? AND grading_system_is_default = TRUE", schoolID, exceptID).
		Update("grading_system_is_default", false).Error
}

func (s *gormStore) SetDefault(ctx context.Context, schoolID, id uuid.UUID) (int64, error) {
	res := s.db.WithContext(ctx).
		Model(&model.GradingSystemModel{}).
		Where("grading_system_id = ? AND grading_system_school_id = ?", id, schoolID).
		Update("grading_system_is_default", true)
	return res.RowsAffected, res.Error
}

func (s *gormStore) DeleteSystem(ctx context.Context, schoolID, id uuid.UUID) (bool, error) {
	db := s.db.WithContext(ctx)

	var row model.GradingSystemModel
	if err := db.
		Where("grading_system_id = ? AND grading_system_school_id = ?", id, schoolID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	// skala di-hard-delete; sistemnya soft delete
	if err := db.
		Where("grade_scale_grading_system_id = ?", id).
		Delete(&model.GradeScaleModel{}).Error; err != nil {
		return false, err
	}
	if err := db.Delete(&row).Error; err != nil {
		return false, err
	}
	return true, nil
}
