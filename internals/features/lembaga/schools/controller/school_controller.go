// file: internals/features/lembaga/schools/controller/school_controller.go
package controller

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "sekolahku_backend/internals/features/lembaga/schools/dto"
	model "sekolahku_backend/internals/features/lembaga/schools/model"
	gradingSvc "sekolahku_backend/internals/features/school/grading/service"
	helper "sekolahku_backend/internals/helpers"
)

type SchoolController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSchoolController(db *gorm.DB, v *validator.Validate) *SchoolController {
	return &SchoolController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

/* =========================
   Handlers
   ========================= */

// POST /schools
// Provisioning tenant: insert sekolah + seed sistem penilaian bawaan
// dalam SATU transaksi (varian Tx dari grading service).
func (ctl *SchoolController) Create(c *fiber.Ctx) error {
	var req dto.CreateSchoolRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	base := helper.GenerateSlug(req.Slug)
	if base == "" {
		base = helper.GenerateSlug(req.Name)
	}
	slug, err := helper.EnsureUniqueSlug(ctl.DB, base, "schools", "school_slug")
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	now := time.Now()
	row := model.SchoolModel{
		SchoolName:      strings.TrimSpace(req.Name),
		SchoolSlug:      slug,
		SchoolSettings:  req.Settings,
		SchoolIsActive:  true,
		SchoolCreatedAt: now,
		SchoolUpdatedAt: now,
	}
	if req.Description != nil {
		d := strings.TrimSpace(*req.Description)
		row.SchoolDescription = &d
	}

	var seeded bool
	err = ctl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		txStore := gradingSvc.NewGormStore(tx)
		var err error
		seeded, err = gradingSvc.NewGradingService(txStore).
			InitializeDefaultGradingSystemsTx(c.UserContext(), txStore, row.SchoolID)
		return err
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	resp := dto.FromModel(&row)
	resp.GradingSystemsSeeded = seeded
	return helper.JsonCreated(c, "Sekolah berhasil dibuat", resp)
}

// GET /schools/:id
func (ctl *SchoolController) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var row model.SchoolModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("school_id = ?", id).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Sekolah tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", dto.FromModel(&row))
}

// GET /schools/slug/:slug
func (ctl *SchoolController) GetBySlug(c *fiber.Ctx) error {
	slug := strings.TrimSpace(c.Params("slug"))
	if slug == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Slug wajib diisi")
	}

	var row model.SchoolModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("school_slug = ?", slug).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Sekolah tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", dto.FromModel(&row))
}

// PATCH /schools/:id (partial)
func (ctl *SchoolController) Patch(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.PatchSchoolRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	var existing model.SchoolModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("school_id = ?", id).
		First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Sekolah tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["school_name"] = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		updates["school_description"] = strings.TrimSpace(*req.Description)
	}
	if req.IsActive != nil {
		updates["school_is_active"] = *req.IsActive
	}
	if req.Settings != nil {
		updates["school_settings"] = req.Settings
	}

	if len(updates) == 0 {
		return helper.JsonOK(c, "Tidak ada perubahan", dto.FromModel(&existing))
	}
	updates["school_updated_at"] = time.Now()

	if err := ctl.DB.WithContext(c.UserContext()).
		Model(&model.SchoolModel{}).
		Where("school_id = ?", id).
		Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var after model.SchoolModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("school_id = ?", id).
		First(&after).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Sekolah berhasil diperbarui", dto.FromModel(&after))
}

// DELETE /schools/:id (soft)
func (ctl *SchoolController) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var row model.SchoolModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("school_id = ?", id).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Sekolah tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := ctl.DB.WithContext(c.UserContext()).Delete(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "Sekolah dihapus", fiber.Map{"school_id": id})
}
