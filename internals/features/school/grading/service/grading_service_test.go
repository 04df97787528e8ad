// file: internals/features/school/grading/service/grading_service_test.go
package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	dto "sekolahku_backend/internals/features/school/grading/dto"
	model "sekolahku_backend/internals/features/school/grading/model"
)

/* ---------------- In-memory fake yang memenuhi Store ---------------- */

type fakeStore struct {
	systems map[uuid.UUID]*model.GradingSystemModel
}

func newFakeStore() *fakeStore {
	return &fakeStore{systems: map[uuid.UUID]*model.GradingSystemModel{}}
}

func cloneSystem(src *model.GradingSystemModel, withScales bool) *model.GradingSystemModel {
	cp := *src
	cp.Scales = nil
	if withScales {
		cp.Scales = append(cp.Scales, src.Scales...)
	}
	return &cp
}

func (s *fakeStore) WithTx(ctx context.Context, fn func(txStore Store) error) error {
	return fn(s)
}

func (s *fakeStore) SystemByID(ctx context.Context, schoolID, id uuid.UUID, withScales bool) (*model.GradingSystemModel, error) {
	sys, ok := s.systems[id]
	if !ok || sys.GradingSystemSchoolID != schoolID {
		return nil, ErrGradingSystemNotFound
	}
	return cloneSystem(sys, withScales), nil
}

func (s *fakeStore) SystemsBySchool(ctx context.Context, schoolID uuid.UUID, withScales bool, limit, offset int) ([]model.GradingSystemModel, error) {
	var out []model.GradingSystemModel
	for _, sys := range s.systems {
		if sys.GradingSystemSchoolID == schoolID {
			out = append(out, *cloneSystem(sys, withScales))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].GradingSystemName < out[j].GradingSystemName
	})
	if offset > 0 {
		if offset >= len(out) {
			return nil, nil
		}
		out = out[offset:]
	}
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (s *fakeStore) CountSystemsBySchool(ctx context.Context, schoolID uuid.UUID) (int64, error) {
	var n int64
	for _, sys := range s.systems {
		if sys.GradingSystemSchoolID == schoolID {
			n++
		}
	}
	return n, nil
}

func (s *fakeStore) SystemNameExists(ctx context.Context, schoolID uuid.UUID, name string, exceptID uuid.UUID) (bool, error) {
	for _, sys := range s.systems {
		if sys.GradingSystemSchoolID == schoolID &&
			sys.GradingSystemID != exceptID &&
			strings.EqualFold(sys.GradingSystemName, strings.TrimSpace(name)) {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeStore) InsertSystem(ctx context.Context, sys *model.GradingSystemModel) error {
	// backstop ala unique constraint
	if exists, _ := s.SystemNameExists(ctx, sys.GradingSystemSchoolID, sys.GradingSystemName, uuid.Nil); exists {
		return ErrDuplicateName
	}
	if sys.GradingSystemID == uuid.Nil {
		sys.GradingSystemID = uuid.New()
	}
	for i := range sys.Scales {
		if sys.Scales[i].GradeScaleID == uuid.Nil {
			sys.Scales[i].GradeScaleID = uuid.New()
		}
		sys.Scales[i].GradeScaleGradingSystemID = sys.GradingSystemID
	}
	s.systems[sys.GradingSystemID] = cloneSystem(sys, true)
	return nil
}

func (s *fakeStore) UpdateSystemColumns(ctx context.Context, schoolID, id uuid.UUID, updates map[string]interface{}) error {
	sys, ok := s.systems[id]
	if !ok || sys.GradingSystemSchoolID != schoolID {
		return nil
	}
	for col, v := range updates {
		switch col {
		case "grading_system_name":
			sys.GradingSystemName = v.(string)
		case "grading_system_description":
			d := v.(string)
			sys.GradingSystemDescription = &d
		case "grading_system_type":
			sys.GradingSystemType = v.(model.GradingSystemType)
		case "grading_system_is_default":
			sys.GradingSystemIsDefault = v.(bool)
		case "grading_system_min_passing_score":
			sys.GradingSystemMinPassingScore = v.(float64)
		case "grading_system_max_score":
			sys.GradingSystemMaxScore = v.(float64)
		case "grading_system_updated_at":
			sys.GradingSystemUpdatedAt = v.(time.Time)
		}
	}
	return nil
}

func (s *fakeStore) ReplaceScales(ctx context.Context, systemID uuid.UUID, scales []model.GradeScaleModel) error {
	sys, ok := s.systems[systemID]
	if !ok {
		return nil
	}
	sys.Scales = nil
	for i := range scales {
		sc := scales[i]
		if sc.GradeScaleID == uuid.Nil {
			sc.GradeScaleID = uuid.New()
		}
		sc.GradeScaleGradingSystemID = systemID
		sys.Scales = append(sys.Scales, sc)
	}
	return nil
}

func (s *fakeStore) ClearDefaultExcept(ctx context.Context, schoolID, exceptID uuid.UUID) error {
	for _, sys := range s.systems {
		if sys.GradingSystemSchoolID == schoolID && sys.GradingSystemID != exceptID {
			sys.GradingSystemIsDefault = false
		}
	}
	return nil
}

func (s *fakeStore) SetDefault(ctx context.Context, schoolID, id uuid.UUID) (int64, error) {
	sys, ok := s.systems[id]
	if !ok || sys.GradingSystemSchoolID != schoolID {
		return 0, nil
	}
	sys.GradingSystemIsDefault = true
	return 1, nil
}

func (s *fakeStore) DeleteSystem(ctx context.Context, schoolID, id uuid.UUID) (bool, error) {
	sys, ok := s.systems[id]
	if !ok || sys.GradingSystemSchoolID != schoolID {
		return false, nil
	}
	delete(s.systems, id)
	return true, nil
}

func (s *fakeStore) defaultCount(schoolID uuid.UUID) int {
	n := 0
	for _, sys := range s.systems {
		if sys.GradingSystemSchoolID == schoolID && sys.GradingSystemIsDefault {
			n++
		}
	}
	return n
}

/* ---------------- Tests ---------------- */

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func createReq(schoolID uuid.UUID, name string) *dto.CreateGradingSystemRequest {
	return &dto.CreateGradingSystemRequest{
		SchoolID:        schoolID,
		Name:            name,
		Type:            model.GradingSystemTypeCustom,
		MinPassingScore: 50,
		MaxScore:        100,
		Scales: []dto.GradeScaleRequest{
			{Grade: "P", MinScore: 50, MaxScore: 100, GpaValue: 1},
			{Grade: "F", MinScore: 0, MaxScore: 49.999, GpaValue: 0},
		},
	}
}

func TestCreateDuplicateName(t *testing.T) {
	store := newFakeStore()
	svc := NewGradingService(store)
	ctx := context.Background()
	schoolID := uuid.New()

	if _, err := svc.Create(ctx, createReq(schoolID, "Standard")); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := svc.Create(ctx, createReq(schoolID, "Standard")); !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("second create: got %v, want ErrDuplicateName", err)
	}
	// sekolah lain boleh pakai nama sama
	if _, err := svc.Create(ctx, createReq(uuid.New(), "Standard")); err != nil {
		t.Fatalf("create for other school: %v", err)
	}
}

func TestCreateUnknownType(t *testing.T) {
	svc := NewGradingService(newFakeStore())
	req := createReq(uuid.New(), "Weird")
	req.Type = "klingon"
	if _, err := svc.Create(context.Background(), req); !errors.Is(err, ErrUnknownSystemType) {
		t.Fatalf("got %v, want ErrUnknownSystemType", err)
	}
}

// Invariant: maksimal satu default per sekolah setelah urutan Create/SetDefault apa pun.
func TestDefaultUniqueness(t *testing.T) {
	store := newFakeStore()
	svc := NewGradingService(store)
	ctx := context.Background()
	schoolID := uuid.New()

	reqA := createReq(schoolID, "A")
	reqA.IsDefault = boolPtr(true)
	sysA, err := svc.Create(ctx, reqA)
	if err != nil {
		t.Fatalf("create A: %v", err)
	}

	reqB := createReq(schoolID, "B")
	reqB.IsDefault = boolPtr(true)
	sysB, err := svc.Create(ctx, reqB)
	if err != nil {
		t.Fatalf("create B: %v", err)
	}

	if n := store.defaultCount(schoolID); n != 1 {
		t.Fatalf("defaults after create = %d, want 1", n)
	}
	got, _ := store.SystemByID(ctx, schoolID, sysB.GradingSystemID, false)
	if !got.GradingSystemIsDefault {
		t.Fatal("B harus jadi default setelah create kedua")
	}

	if err := svc.SetDefault(ctx, schoolID, sysA.GradingSystemID); err != nil {
		t.Fatalf("SetDefault(A): %v", err)
	}
	if n := store.defaultCount(schoolID); n != 1 {
		t.Fatalf("defaults after SetDefault = %d, want 1", n)
	}

	// idempoten
	if err := svc.SetDefault(ctx, schoolID, sysA.GradingSystemID); err != nil {
		t.Fatalf("SetDefault(A) ulang: %v", err)
	}
	if n := store.defaultCount(schoolID); n != 1 {
		t.Fatalf("defaults after repeat = %d, want 1", n)
	}

	if err := svc.SetDefault(ctx, schoolID, uuid.New()); !errors.Is(err, ErrGradingSystemNotFound) {
		t.Fatalf("SetDefault(unknown): got %v, want ErrGradingSystemNotFound", err)
	}
}

func TestInitializeDefaultGradingSystems(t *testing.T) {
	store := newFakeStore()
	svc := NewGradingService(store)
	ctx := context.Background()
	schoolID := uuid.New()

	created, err := svc.InitializeDefaultGradingSystems(ctx, schoolID)
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	if !created {
		t.Fatal("first init: want created=true")
	}

	systems, _ := svc.List(ctx, schoolID, true, 0, 0)
	if len(systems) != 3 {
		t.Fatalf("systems = %d, want 3", len(systems))
	}
	if n := store.defaultCount(schoolID); n != 1 {
		t.Fatalf("defaults = %d, want 1", n)
	}
	for _, sys := range systems {
		if len(sys.Scales) == 0 {
			t.Errorf("%s: seeded tanpa skala", sys.GradingSystemName)
		}
		if sys.GradingSystemIsDefault && sys.GradingSystemType != model.GradingSystemTypeAmerican {
			t.Errorf("default awal harus american, dapat %s", sys.GradingSystemType)
		}
	}

	// panggilan kedua no-op
	created, err = svc.InitializeDefaultGradingSystems(ctx, schoolID)
	if err != nil {
		t.Fatalf("second init: %v", err)
	}
	if created {
		t.Fatal("second init: want created=false")
	}
	if systems, _ = svc.List(ctx, schoolID, false, 0, 0); len(systems) != 3 {
		t.Fatalf("systems after second init = %d, want 3", len(systems))
	}
}

func TestDeleteTolerant(t *testing.T) {
	store := newFakeStore()
	svc := NewGradingService(store)
	ctx := context.Background()
	schoolID := uuid.New()

	req := createReq(schoolID, "ToDelete")
	req.IsDefault = boolPtr(true)
	sys, err := svc.Create(ctx, req)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	deleted, err := svc.Delete(ctx, schoolID, sys.GradingSystemID)
	if err != nil || !deleted {
		t.Fatalf("delete = (%v, %v), want (true, nil)", deleted, err)
	}

	// menghapus default TIDAK mempromosikan sistem lain
	if n := store.defaultCount(schoolID); n != 0 {
		t.Fatalf("defaults after delete = %d, want 0", n)
	}

	// id tak dikenal: toleran, bukan error
	deleted, err = svc.Delete(ctx, schoolID, uuid.New())
	if err != nil || deleted {
		t.Fatalf("delete unknown = (%v, %v), want (false, nil)", deleted, err)
	}
}

func TestPatchReplacesScalesWholesale(t *testing.T) {
	store := newFakeStore()
	svc := NewGradingService(store)
	ctx := context.Background()
	schoolID := uuid.New()

	sys, err := svc.Create(ctx, createReq(schoolID, "Patchable"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	patched, err := svc.Patch(ctx, schoolID, sys.GradingSystemID, &dto.PatchGradingSystemRequest{
		Description: strPtr("baru"),
		Scales: []dto.GradeScaleRequest{
			{Grade: "X", MinScore: 0, MaxScore: 100, GpaValue: 2},
		},
	})
	if err != nil {
		t.Fatalf("patch: %v", err)
	}

	if patched.GradingSystemDescription == nil || *patched.GradingSystemDescription != "baru" {
		t.Error("description tidak ter-update")
	}
	if patched.GradingSystemName != "Patchable" {
		t.Error("field yang tidak dikirim ikut berubah")
	}
	if len(patched.Scales) != 1 || patched.Scales[0].GradeScaleGrade != "X" {
		t.Fatalf("scales = %+v, want satu skala X (replace utuh)", patched.Scales)
	}

	if _, err := svc.Patch(ctx, schoolID, uuid.New(), &dto.PatchGradingSystemRequest{}); !errors.Is(err, ErrGradingSystemNotFound) {
		t.Fatalf("patch unknown: got %v, want ErrGradingSystemNotFound", err)
	}
}

func TestPatchDuplicateName(t *testing.T) {
	store := newFakeStore()
	svc := NewGradingService(store)
	ctx := context.Background()
	schoolID := uuid.New()

	if _, err := svc.Create(ctx, createReq(schoolID, "First")); err != nil {
		t.Fatalf("create First: %v", err)
	}
	second, err := svc.Create(ctx, createReq(schoolID, "Second"))
	if err != nil {
		t.Fatalf("create Second: %v", err)
	}

	if _, err := svc.Patch(ctx, schoolID, second.GradingSystemID, &dto.PatchGradingSystemRequest{
		Name: strPtr("First"),
	}); !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("rename collision: got %v, want ErrDuplicateName", err)
	}

	// rename ke nama sendiri (beda kapitalisasi) bukan konflik
	if _, err := svc.Patch(ctx, schoolID, second.GradingSystemID, &dto.PatchGradingSystemRequest{
		Name: strPtr("SECOND"),
	}); err != nil {
		t.Fatalf("rename to self: %v", err)
	}
}

func TestConversionPassthroughs(t *testing.T) {
	store := newFakeStore()
	svc := NewGradingService(store)
	ctx := context.Background()
	schoolID := uuid.New()

	if _, err := svc.InitializeDefaultGradingSystems(ctx, schoolID); err != nil {
		t.Fatalf("init: %v", err)
	}

	var bulgarian *model.GradingSystemModel
	systems, _ := svc.List(ctx, schoolID, false, 0, 0)
	for i := range systems {
		if systems[i].GradingSystemType == model.GradingSystemTypeBulgarian {
			bulgarian = &systems[i]
		}
	}
	if bulgarian == nil {
		t.Fatal("bulgarian system not seeded")
	}
	id := bulgarian.GradingSystemID

	grade, err := svc.ConvertScoreToGrade(ctx, schoolID, id, 95)
	if err != nil {
		t.Fatalf("ConvertScoreToGrade: %v", err)
	}
	if grade != "6" {
		t.Errorf("grade(95) = %q, want 6", grade)
	}

	gpa, err := svc.ConvertScoreToGpaPoints(ctx, schoolID, id, 95)
	if err != nil {
		t.Fatalf("ConvertScoreToGpaPoints: %v", err)
	}
	if gpa != 6.0 {
		t.Errorf("gpa(95) = %v, want 6.0", gpa)
	}

	status, err := svc.DetermineStatus(ctx, schoolID, id, 49)
	if err != nil {
		t.Fatalf("DetermineStatus: %v", err)
	}
	if status != model.GradeStatusFail {
		t.Errorf("status(49) = %v, want fail", status)
	}

	score, err := svc.ConvertGradeToScore(ctx, schoolID, id, "2")
	if err != nil {
		t.Fatalf("ConvertGradeToScore: %v", err)
	}
	if score < 0 || score > 49.999 {
		t.Errorf("score(2) = %v, di luar pita 2", score)
	}

	combined, err := svc.ConvertScore(ctx, schoolID, id, 95)
	if err != nil {
		t.Fatalf("ConvertScore: %v", err)
	}
	if combined.Grade != "6" || combined.GpaPoints != 6.0 || combined.Status != model.GradeStatusPass {
		t.Errorf("ConvertScore(95) = %+v", combined)
	}

	// sistem tak dikenal
	if _, err := svc.ConvertScoreToGrade(ctx, schoolID, uuid.New(), 50); !errors.Is(err, ErrGradingSystemNotFound) {
		t.Errorf("unknown system: got %v, want ErrGradingSystemNotFound", err)
	}
	// tenant lain tidak boleh lihat sistem sekolah ini
	if _, err := svc.ConvertScoreToGrade(ctx, uuid.New(), id, 50); !errors.Is(err, ErrGradingSystemNotFound) {
		t.Errorf("cross-tenant: got %v, want ErrGradingSystemNotFound", err)
	}
}
