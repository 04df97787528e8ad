// file: internals/features/lembaga/schools/dto/school_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	model "sekolahku_backend/internals/features/lembaga/schools/model"
)

type CreateSchoolRequest struct {
	Name        string  `json:"school_name" validate:"required,max=160"`
	Slug        string  `json:"school_slug" validate:"omitempty,max=160"`
	Description *string `json:"school_description" validate:"omitempty"`

	Settings datatypes.JSONMap `json:"school_settings" validate:"omitempty"`
}

type PatchSchoolRequest struct {
	Name        *string `json:"school_name" validate:"omitempty,max=160"`
	Description *string `json:"school_description" validate:"omitempty"`
	IsActive    *bool   `json:"school_is_active" validate:"omitempty"`

	Settings datatypes.JSONMap `json:"school_settings" validate:"omitempty"`
}

type SchoolResponse struct {
	ID          uuid.UUID `json:"school_id"`
	Name        string    `json:"school_name"`
	Slug        string    `json:"school_slug"`
	Description *string   `json:"school_description,omitempty"`

	Settings datatypes.JSONMap `json:"school_settings,omitempty"`
	IsActive bool              `json:"school_is_active"`

	// true kalau create ikut men-seed sistem penilaian bawaan
	GradingSystemsSeeded bool `json:"grading_systems_seeded,omitempty"`

	CreatedAt time.Time `json:"school_created_at"`
	UpdatedAt time.Time `json:"school_updated_at"`
}

func FromModel(m *model.SchoolModel) SchoolResponse {
	return SchoolResponse{
		ID:          m.SchoolID,
		Name:        m.SchoolName,
		Slug:        m.SchoolSlug,
		Description: m.SchoolDescription,
		Settings:    m.SchoolSettings,
		IsActive:    m.SchoolIsActive,
		CreatedAt:   m.SchoolCreatedAt,
		UpdatedAt:   m.SchoolUpdatedAt,
	}
}
