// file: internals/features/lembaga/schools/model/school_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SchoolModel struct {
	SchoolID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:school_id" json:"school_id"`

	SchoolName string `gorm:"type:varchar(160);not null;column:school_name" json:"school_name"`
	SchoolSlug string `gorm:"type:varchar(160);not null;column:school_slug;uniqueIndex:uq_school_slug,where:school_deleted_at IS NULL" json:"school_slug"`

	SchoolDescription *string `gorm:"type:text;column:school_description" json:"school_description,omitempty"`

	// Preferensi bebas per sekolah (timezone, locale, dsb) dalam JSONB
	SchoolSettings datatypes.JSONMap `gorm:"type:jsonb;column:school_settings" json:"school_settings,omitempty"`

	SchoolIsActive bool `gorm:"not null;default:true;column:school_is_active" json:"school_is_active"`

	SchoolCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:school_created_at" json:"school_created_at"`
	SchoolUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:school_updated_at" json:"school_updated_at"`
	SchoolDeletedAt gorm.DeletedAt `gorm:"column:school_deleted_at;index" json:"school_deleted_at,omitempty"`
}

func (SchoolModel) TableName() string { return "schools" }
