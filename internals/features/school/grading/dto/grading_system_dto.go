// file: internals/features/school/grading/dto/grading_system_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "sekolahku_backend/internals/features/school/grading/model"
)

/* =========================
   Requests
   ========================= */

type GradeScaleRequest struct {
	Grade       string  `json:"grade_scale_grade" validate:"required,max=12"`
	Description *string `json:"grade_scale_description" validate:"omitempty,max=160"`
	MinScore    float64 `json:"grade_scale_min_score" validate:"gte=0"`
	MaxScore    float64 `json:"grade_scale_max_score" validate:"gtefield=MinScore"`
	GpaValue    float64 `json:"grade_scale_gpa_value" validate:"gte=0"`
}

type CreateGradingSystemRequest struct {
	SchoolID uuid.UUID `json:"grading_system_school_id" validate:"required"`

	Name        string  `json:"grading_system_name" validate:"required,max=120"`
	Description *string `json:"grading_system_description" validate:"omitempty"`

	Type      model.GradingSystemType `json:"grading_system_type" validate:"required,oneof=american european bulgarian custom"`
	IsDefault *bool                   `json:"grading_system_is_default" validate:"omitempty"`

	MinPassingScore float64 `json:"grading_system_min_passing_score" validate:"gte=0"`
	MaxScore        float64 `json:"grading_system_max_score" validate:"gtfield=MinPassingScore"`

	Scales []GradeScaleRequest `json:"scales" validate:"omitempty,dive"`
}

// PatchGradingSystemRequest (partial update, PATCH).
// Scales non-nil = ganti seluruh daftar skala (replace, bukan merge).
type PatchGradingSystemRequest struct {
	Name        *string `json:"grading_system_name" validate:"omitempty,max=120"`
	Description *string `json:"grading_system_description" validate:"omitempty"`

	Type      *model.GradingSystemType `json:"grading_system_type" validate:"omitempty,oneof=american european bulgarian custom"`
	IsDefault *bool                    `json:"grading_system_is_default" validate:"omitempty"`

	MinPassingScore *float64 `json:"grading_system_min_passing_score" validate:"omitempty,gte=0"`
	MaxScore        *float64 `json:"grading_system_max_score" validate:"omitempty,gt=0"`

	Scales []GradeScaleRequest `json:"scales" validate:"omitempty,dive"`
}

func (r *GradeScaleRequest) ToModel(systemID uuid.UUID) model.GradeScaleModel {
	return model.GradeScaleModel{
		GradeScaleGradingSystemID: systemID,
		GradeScaleGrade:           r.Grade,
		GradeScaleDescription:     r.Description,
		GradeScaleMinScore:        r.MinScore,
		GradeScaleMaxScore:        r.MaxScore,
		GradeScaleGpaValue:        r.GpaValue,
	}
}

/* =========================
   Responses
   ========================= */

type GradeScaleResponse struct {
	ID              uuid.UUID `json:"grade_scale_id"`
	GradingSystemID uuid.UUID `json:"grade_scale_grading_system_id"`
	Grade           string    `json:"grade_scale_grade"`
	Description     *string   `json:"grade_scale_description,omitempty"`
	MinScore        float64   `json:"grade_scale_min_score"`
	MaxScore        float64   `json:"grade_scale_max_score"`
	GpaValue        float64   `json:"grade_scale_gpa_value"`
}

type GradingSystemResponse struct {
	ID       uuid.UUID `json:"grading_system_id"`
	SchoolID uuid.UUID `json:"grading_system_school_id"`

	Name        string  `json:"grading_system_name"`
	Description *string `json:"grading_system_description,omitempty"`

	Type      model.GradingSystemType `json:"grading_system_type"`
	IsDefault bool                    `json:"grading_system_is_default"`

	MinPassingScore float64 `json:"grading_system_min_passing_score"`
	MaxScore        float64 `json:"grading_system_max_score"`

	Scales []GradeScaleResponse `json:"scales,omitempty"`

	CreatedAt time.Time `json:"grading_system_created_at"`
	UpdatedAt time.Time `json:"grading_system_updated_at"`
}

// Hasil konversi skor terhadap satu sistem penilaian
type ScoreConversionResponse struct {
	GradingSystemID uuid.UUID         `json:"grading_system_id"`
	Score           float64           `json:"score"`
	Grade           string            `json:"grade"`
	GpaPoints       float64           `json:"gpa_points"`
	Status          model.GradeStatus `json:"status"`
}

// Hasil konversi balik grade → skor representatif (titik tengah pita)
type GradeConversionResponse struct {
	GradingSystemID uuid.UUID `json:"grading_system_id"`
	Grade           string    `json:"grade"`
	Score           float64   `json:"score"`
}

func FromScaleModel(m *model.GradeScaleModel) GradeScaleResponse {
	return GradeScaleResponse{
		ID:              m.GradeScaleID,
		GradingSystemID: m.GradeScaleGradingSystemID,
		Grade:           m.GradeScaleGrade,
		Description:     m.GradeScaleDescription,
		MinScore:        m.GradeScaleMinScore,
		MaxScore:        m.GradeScaleMaxScore,
		GpaValue:        m.GradeScaleGpaValue,
	}
}

func FromModel(m *model.GradingSystemModel) GradingSystemResponse {
	resp := GradingSystemResponse{
		ID:              m.GradingSystemID,
		SchoolID:        m.GradingSystemSchoolID,
		Name:            m.GradingSystemName,
		Description:     m.GradingSystemDescription,
		Type:            m.GradingSystemType,
		IsDefault:       m.GradingSystemIsDefault,
		MinPassingScore: m.GradingSystemMinPassingScore,
		MaxScore:        m.GradingSystemMaxScore,
		CreatedAt:       m.GradingSystemCreatedAt,
		UpdatedAt:       m.GradingSystemUpdatedAt,
	}
	for i := range m.Scales {
		resp.Scales = append(resp.Scales, FromScaleModel(&m.Scales[i]))
	}
	return resp
}
