// internals/features/reports/ipmt/model/ipmt_draft_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	unitModel "gso_backend/internals/features/accounts/units/model"
	userModel "gso_backend/internals/features/accounts/users/model"
	indicatorModel "gso_backend/internals/features/reports/indicators/model"
	warModel "gso_backend/internals/features/reports/war/model"
)

/*
Draft status:
- "draft"
- "final"
*/
const (
	IpmtStatusDraft = "draft"
	IpmtStatusFinal = "final"
)

// IPMT draft per personnel, month and success indicator. The four-column
// unique index is the upsert key; the engine never deletes drafts, only
// re-upserts them.
type IpmtDraftModel struct {
	// PK
	IpmtID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:ipmt_id" json:"ipmt_id"`

	IpmtPersonnelID uuid.UUID            `gorm:"type:uuid;not null;column:ipmt_personnel_id;uniqueIndex:uq_ipmt_upsert_key" json:"ipmt_personnel_id"`
	IpmtPersonnel   *userModel.UserModel `gorm:"foreignKey:IpmtPersonnelID;references:UserID" json:"ipmt_personnel,omitempty"`

	IpmtUnitID uuid.UUID            `gorm:"type:uuid;not null;column:ipmt_unit_id;uniqueIndex:uq_ipmt_upsert_key" json:"ipmt_unit_id"`
	IpmtUnit   *unitModel.UnitModel `gorm:"foreignKey:IpmtUnitID;references:UnitID" json:"ipmt_unit,omitempty"`

	// "YYYY-MM"
	IpmtMonth string `gorm:"type:varchar(10);not null;column:ipmt_month;uniqueIndex:uq_ipmt_upsert_key" json:"ipmt_month"`

	IpmtIndicatorID uuid.UUID                             `gorm:"type:uuid;not null;column:ipmt_indicator_id;uniqueIndex:uq_ipmt_upsert_key" json:"ipmt_indicator_id"`
	IpmtIndicator   *indicatorModel.SuccessIndicatorModel `gorm:"foreignKey:IpmtIndicatorID;references:IndicatorID" json:"ipmt_indicator,omitempty"`

	// Report body (AI or manual fill)
	IpmtAccomplishment *string `gorm:"type:text;column:ipmt_accomplishment" json:"ipmt_accomplishment,omitempty"`
	IpmtRemarks        *string `gorm:"type:text;column:ipmt_remarks" json:"ipmt_remarks,omitempty"`

	IpmtStatus string `gorm:"type:varchar(20);not null;default:'draft';column:ipmt_status" json:"ipmt_status"`

	// Source WARs backing this draft (m2m, replaced wholesale on each upsert)
	IpmtReports []warModel.WarModel `gorm:"many2many:ipmt_draft_reports;foreignKey:IpmtID;joinForeignKey:ipmt_id;references:WarID;joinReferences:war_id" json:"ipmt_reports,omitempty"`

	// Audit
	IpmtCreatedAt time.Time      `gorm:"column:ipmt_created_at;autoCreateTime" json:"ipmt_created_at"`
	IpmtUpdatedAt *time.Time     `gorm:"column:ipmt_updated_at;autoUpdateTime" json:"ipmt_updated_at,omitempty"`
	IpmtDeletedAt gorm.DeletedAt `gorm:"column:ipmt_deleted_at;index" json:"ipmt_deleted_at,omitempty"`
}

func (IpmtDraftModel) TableName() string { return "ipmt_drafts" }
