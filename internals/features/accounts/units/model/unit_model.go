// internals/features/accounts/units/model/unit_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UnitModel struct {
	// PK
	UnitID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:unit_id" json:"unit_id"`

	// Identity
	UnitName        string  `gorm:"type:varchar(150);unique;not null;column:unit_name" json:"unit_name"`
	UnitDescription *string `gorm:"column:unit_description" json:"unit_description,omitempty"`

	UnitIsActive bool `gorm:"not null;default:true;column:unit_is_active" json:"unit_is_active"`

	// Audit
	UnitCreatedAt time.Time      `gorm:"column:unit_created_at;autoCreateTime" json:"unit_created_at"`
	UnitUpdatedAt *time.Time     `gorm:"column:unit_updated_at;autoUpdateTime" json:"unit_updated_at,omitempty"`
	UnitDeletedAt gorm.DeletedAt `gorm:"column:unit_deleted_at;index" json:"unit_deleted_at,omitempty"`
}

func (UnitModel) TableName() string { return "units" }
