// file: internals/features/school/grading/controller/grading_system_controller.go
package controller

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	dto "sekolahku_backend/internals/features/school/grading/dto"
	service "sekolahku_backend/internals/features/school/grading/service"
	helper "sekolahku_backend/internals/helpers"
)

type GradingSystemController struct {
	Service  *service.GradingService
	Validate *validator.Validate
}

func NewGradingSystemController(svc *service.GradingService, v *validator.Validate) *GradingSystemController {
	return &GradingSystemController{Service: svc, Validate: v}
}

/* =========================
   Small helpers
   ========================= */

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

func parseScoreQuery(c *fiber.Ctx) (float64, error) {
	raw := strings.TrimSpace(c.Query("score"))
	if raw == "" {
		return 0, errors.New("score wajib diisi")
	}
	score, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(score) || math.IsInf(score, 0) {
		return 0, errors.New("score tidak valid")
	}
	return score, nil
}

// writeServiceError: mapping error service → status HTTP
func writeServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrGradingSystemNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Sistem penilaian tidak ditemukan")
	case errors.Is(err, service.ErrDuplicateName):
		return helper.JsonError(c, fiber.StatusConflict, "Nama sistem penilaian sudah dipakai di sekolah ini")
	case errors.Is(err, service.ErrUnknownSystemType):
		return helper.JsonError(c, fiber.StatusBadRequest, "Tipe sistem penilaian tidak dikenal")
	case errors.Is(err, service.ErrScoreOutOfRange), errors.Is(err, service.ErrGradeNotFound):
		// hanya mungkin kalau skala ber-gap/salah konfigurasi → data integrity
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
}

/* =========================
   Handlers: CRUD
   ========================= */

// GET /grading-systems
func (ctl *GradingSystemController) List(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "School ID tidak ditemukan di token")
	}

	withScales := strings.EqualFold(strings.TrimSpace(c.Query("with_scales")), "true")
	paging := helper.ResolvePaging(c)

	rows, err := ctl.Service.List(c.UserContext(), schoolID, withScales, paging.Limit, paging.Offset)
	if err != nil {
		return writeServiceError(c, err)
	}

	out := make([]dto.GradingSystemResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.FromModel(&rows[i]))
	}
	return helper.JsonOK(c, "OK", out)
}

// GET /grading-systems/:id
func (ctl *GradingSystemController) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "School ID tidak ditemukan di token")
	}

	row, err := ctl.Service.GetByID(c.UserContext(), schoolID, id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonOK(c, "OK", dto.FromModel(row))
}

// POST /grading-systems
func (ctl *GradingSystemController) Create(c *fiber.Ctx) error {
	var req dto.CreateGradingSystemRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	// tenant override dari token
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "School ID tidak ditemukan di token")
	}
	req.SchoolID = schoolID

	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	sys, err := ctl.Service.Create(c.UserContext(), &req)
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonCreated(c, "Sistem penilaian berhasil dibuat", dto.FromModel(sys))
}

// PATCH /grading-systems/:id (partial)
func (ctl *GradingSystemController) Patch(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "School ID tidak ditemukan di token")
	}

	var req dto.PatchGradingSystemRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	sys, err := ctl.Service.Patch(c.UserContext(), schoolID, id, &req)
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonUpdated(c, "Sistem penilaian berhasil diperbarui", dto.FromModel(sys))
}

// DELETE /grading-systems/:id
// Kontrak toleran: id yang tidak ada tetap 200 dengan deleted=false.
func (ctl *GradingSystemController) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "School ID tidak ditemukan di token")
	}

	deleted, err := ctl.Service.Delete(c.UserContext(), schoolID, id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonDeleted(c, "OK", fiber.Map{"deleted": deleted})
}

// POST /grading-systems/:id/default
func (ctl *GradingSystemController) SetDefault(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "School ID tidak ditemukan di token")
	}

	if err := ctl.Service.SetDefault(c.UserContext(), schoolID, id); err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonUpdated(c, "Sistem penilaian dijadikan default", nil)
}

// POST /grading-systems/initialize
// Idempoten: created=false kalau sekolah sudah punya sistem.
func (ctl *GradingSystemController) Initialize(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "School ID tidak ditemukan di token")
	}

	created, err := ctl.Service.InitializeDefaultGradingSystems(c.UserContext(), schoolID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonOK(c, "OK", fiber.Map{"created": created})
}

/* =========================
   Handlers: konversi
   ========================= */

// GET /grading-systems/:id/convert?score=87.5
func (ctl *GradingSystemController) ConvertScore(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "School ID tidak ditemukan di token")
	}
	score, err := parseScoreQuery(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	res, err := ctl.Service.ConvertScore(c.UserContext(), schoolID, id, score)
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonOK(c, "OK", res)
}

// GET /grading-systems/:id/convert/score?grade=B%2B
func (ctl *GradingSystemController) ConvertGrade(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "School ID tidak ditemukan di token")
	}
	grade := strings.TrimSpace(c.Query("grade"))
	if grade == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "grade wajib diisi")
	}

	score, err := ctl.Service.ConvertGradeToScore(c.UserContext(), schoolID, id, grade)
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonOK(c, "OK", dto.GradeConversionResponse{
		GradingSystemID: id,
		Grade:           grade,
		Score:           score,
	})
}
