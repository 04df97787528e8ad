// file: internals/features/school/grading/service/store.go
package service

import (
	"context"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/school/grading/model"
)

// Store: abstraksi persistence untuk GradingService. Semua query di-scope
// ke school_id (tenant). Lookup yang tidak menemukan baris mengembalikan
// ErrGradingSystemNotFound, bukan error driver.
type Store interface {
	// WithTx: unit of work; fn menerima Store yang terikat transaksi yang sama.
	// Error dari fn membatalkan transaksi.
	WithTx(ctx context.Context, fn func(txStore Store) error) error

	SystemByID(ctx context.Context, schoolID, id uuid.UUID, withScales bool) (*model.GradingSystemModel, error)
	// SystemsBySchool: urut created_at ASC; limit 0 = tanpa paging.
	SystemsBySchool(ctx context.Context, schoolID uuid.UUID, withScales bool, limit, offset int) ([]model.GradingSystemModel, error)
	CountSystemsBySchool(ctx context.Context, schoolID uuid.UUID) (int64, error)
	SystemNameExists(ctx context.Context, schoolID uuid.UUID, name string, exceptID uuid.UUID) (bool, error)

	InsertSystem(ctx context.Context, sys *model.GradingSystemModel) error
	UpdateSystemColumns(ctx context.Context, schoolID, id uuid.UUID, updates map[string]interface{}) error

	// ReplaceScales: buang semua skala lama lalu pasang daftar baru utuh
	ReplaceScales(ctx context.Context, systemID uuid.UUID, scales []model.GradeScaleModel) error

	// ClearDefaultExcept: satu UPDATE atomik, matikan is_default semua sistem
	// sekolah kecuali exceptID. Dipanggil di dalam transaksi yang sama dengan
	// penetapan default baru supaya invariant "maksimal satu default" tidak
	// kena lost update antar request.
	ClearDefaultExcept(ctx context.Context, schoolID, exceptID uuid.UUID) error
	SetDefault(ctx context.Context, schoolID, id uuid.UUID) (int64, error)

	// DeleteSystem: hapus sistem + seluruh skalanya; false jika id tidak ada
	DeleteSystem(ctx context.Context, schoolID, id uuid.UUID) (bool, error)
}
