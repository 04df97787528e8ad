// file: internals/features/school/grading/model/grade_scale_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// GradeScaleModel: satu pita skor inklusif [min,max] → label nilai + bobot GPA.
// Hard delete: skala diganti utuh saat update sistem (replace, bukan merge).
type GradeScaleModel struct {
	GradeScaleID              uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:grade_scale_id" json:"grade_scale_id"`
	GradeScaleGradingSystemID uuid.UUID `gorm:"type:uuid;not null;index;column:grade_scale_grading_system_id" json:"grade_scale_grading_system_id"`

	GradeScaleGrade       string  `gorm:"type:varchar(12);not null;column:grade_scale_grade" json:"grade_scale_grade"`
	GradeScaleDescription *string `gorm:"type:varchar(160);column:grade_scale_description" json:"grade_scale_description,omitempty"`

	GradeScaleMinScore float64 `gorm:"type:numeric(6,3);not null;column:grade_scale_min_score" json:"grade_scale_min_score"`
	GradeScaleMaxScore float64 `gorm:"type:numeric(6,3);not null;column:grade_scale_max_score" json:"grade_scale_max_score"`
	GradeScaleGpaValue float64 `gorm:"type:numeric(4,2);not null;default:0;column:grade_scale_gpa_value" json:"grade_scale_gpa_value"`

	GradeScaleCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:grade_scale_created_at" json:"grade_scale_created_at"`
	GradeScaleUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:grade_scale_updated_at" json:"grade_scale_updated_at"`
}

// Contains: skor masuk pita ini (inklusif kedua ujung)
func (s *GradeScaleModel) Contains(score float64) bool {
	return score >= s.GradeScaleMinScore && score <= s.GradeScaleMaxScore
}

// Midpoint: skor representatif untuk konversi balik grade → skor
func (s *GradeScaleModel) Midpoint() float64 {
	return (s.GradeScaleMinScore + s.GradeScaleMaxScore) / 2
}

func (GradeScaleModel) TableName() string { return "grade_scales" }
