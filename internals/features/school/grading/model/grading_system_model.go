// file: internals/features/school/grading/model/grading_system_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sesuaikan dengan CHECK: 'american','european','bulgarian','custom'
type GradingSystemType string

const (
	GradingSystemTypeAmerican  GradingSystemType = "american"
	GradingSystemTypeEuropean  GradingSystemType = "european"
	GradingSystemTypeBulgarian GradingSystemType = "bulgarian"
	GradingSystemTypeCustom    GradingSystemType = "custom"
)

func (t GradingSystemType) IsValid() bool {
	switch t {
	case GradingSystemTypeAmerican, GradingSystemTypeEuropean, GradingSystemTypeBulgarian, GradingSystemTypeCustom:
		return true
	}
	return false
}

// Status kelulusan hasil konversi skor
type GradeStatus string

const (
	GradeStatusPass GradeStatus = "pass"
	GradeStatusFail GradeStatus = "fail"
)

type GradingSystemModel struct {
	GradingSystemID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:grading_system_id" json:"grading_system_id"`
	GradingSystemSchoolID uuid.UUID `gorm:"type:uuid;not null;column:grading_system_school_id;uniqueIndex:uq_grading_system_school_name,where:grading_system_deleted_at IS NULL" json:"grading_system_school_id"`

	// Unik per sekolah (partial unique index: baris hidup saja)
	GradingSystemName        string  `gorm:"type:varchar(120);not null;column:grading_system_name;uniqueIndex:uq_grading_system_school_name,where:grading_system_deleted_at IS NULL" json:"grading_system_name"`
	GradingSystemDescription *string `gorm:"type:text;column:grading_system_description" json:"grading_system_description,omitempty"`

	GradingSystemType      GradingSystemType `gorm:"type:varchar(24);not null;column:grading_system_type" json:"grading_system_type"`
	GradingSystemIsDefault bool              `gorm:"not null;default:false;column:grading_system_is_default" json:"grading_system_is_default"`

	GradingSystemMinPassingScore float64 `gorm:"type:numeric(6,3);not null;default:0;column:grading_system_min_passing_score" json:"grading_system_min_passing_score"`
	GradingSystemMaxScore        float64 `gorm:"type:numeric(6,3);not null;default:100;column:grading_system_max_score" json:"grading_system_max_score"`

	// Skala milik sistem ini; ikut terhapus saat sistem dihapus
	Scales []GradeScaleModel `gorm:"foreignKey:GradeScaleGradingSystemID;references:GradingSystemID;constraint:OnDelete:CASCADE" json:"scales,omitempty"`

	GradingSystemCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:grading_system_created_at" json:"grading_system_created_at"`
	GradingSystemUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:grading_system_updated_at" json:"grading_system_updated_at"`
	GradingSystemDeletedAt gorm.DeletedAt `gorm:"column:grading_system_deleted_at;index" json:"grading_system_deleted_at,omitempty"`
}

func (GradingSystemModel) TableName() string { return "grading_systems" }
