// internals/features/reports/indicators/model/success_indicator_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	unitModel "gso_backend/internals/features/accounts/units/model"
	activityModel "gso_backend/internals/features/reports/activities/model"
)

// Success indicators per unit (IPMT basis), e.g. CF1, SF2.
type SuccessIndicatorModel struct {
	// PK
	IndicatorID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:indicator_id" json:"indicator_id"`

	IndicatorUnitID uuid.UUID            `gorm:"type:uuid;not null;column:indicator_unit_id;uniqueIndex:uq_indicator_unit_code" json:"indicator_unit_id"`
	IndicatorUnit   *unitModel.UnitModel `gorm:"foreignKey:IndicatorUnitID;references:UnitID" json:"indicator_unit,omitempty"`

	IndicatorCode        string `gorm:"type:varchar(20);not null;column:indicator_code;uniqueIndex:uq_indicator_unit_code" json:"indicator_code"`
	IndicatorDescription string `gorm:"type:text;not null;column:indicator_description" json:"indicator_description"`

	// Classified activity this indicator counts work under
	IndicatorActivityNameID *uuid.UUID                       `gorm:"type:uuid;column:indicator_activity_name_id" json:"indicator_activity_name_id,omitempty"`
	IndicatorActivityName   *activityModel.ActivityNameModel `gorm:"foreignKey:IndicatorActivityNameID;references:ActivityNameID" json:"indicator_activity_name,omitempty"`

	IndicatorIsActive bool `gorm:"not null;default:true;column:indicator_is_active" json:"indicator_is_active"`

	// Audit
	IndicatorCreatedAt time.Time      `gorm:"column:indicator_created_at;autoCreateTime" json:"indicator_created_at"`
	IndicatorUpdatedAt *time.Time     `gorm:"column:indicator_updated_at;autoUpdateTime" json:"indicator_updated_at,omitempty"`
	IndicatorDeletedAt gorm.DeletedAt `gorm:"column:indicator_deleted_at;index" json:"indicator_deleted_at,omitempty"`
}

func (SuccessIndicatorModel) TableName() string { return "success_indicators" }
