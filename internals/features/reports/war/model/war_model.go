// internals/features/reports/war/model/war_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	unitModel "gso_backend/internals/features/accounts/units/model"
	userModel "gso_backend/internals/features/accounts/users/model"
	activityModel "gso_backend/internals/features/reports/activities/model"
	requestModel "gso_backend/internals/features/requests/service_requests/model"
)

/*
WAR status (same vocabulary as service requests, default Completed
because most WARs are logged after the work is done):
- "Pending"
- "In Progress"
- "Completed"
*/
const (
	WarStatusPending    = "Pending"
	WarStatusInProgress = "In Progress"
	WarStatusCompleted  = "Completed"
)

// Work Accomplishment Report (WAR), either migrated from older records or
// generated live from a completed service request.
type WarModel struct {
	// PK
	WarID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:war_id" json:"war_id"`

	// Originating request (nullable 1:1; migrated WARs have none)
	WarRequestID *uuid.UUID                         `gorm:"type:uuid;unique;column:war_request_id" json:"war_request_id,omitempty"`
	WarRequest   *requestModel.ServiceRequestModel  `gorm:"foreignKey:WarRequestID;references:RequestID" json:"war_request,omitempty"`

	WarUnitID uuid.UUID            `gorm:"type:uuid;not null;column:war_unit_id" json:"war_unit_id"`
	WarUnit   *unitModel.UnitModel `gorm:"foreignKey:WarUnitID;references:UnitID" json:"war_unit,omitempty"`

	// Classified activity (filled by the classifier, editable afterwards)
	WarActivityNameID *uuid.UUID                       `gorm:"type:uuid;column:war_activity_name_id" json:"war_activity_name_id,omitempty"`
	WarActivityName   *activityModel.ActivityNameModel `gorm:"foreignKey:WarActivityNameID;references:ActivityNameID" json:"war_activity_name,omitempty"`

	// Assigned personnel (m2m)
	WarPersonnel []userModel.UserModel `gorm:"many2many:war_personnel;foreignKey:WarID;joinForeignKey:war_id;references:UserID;joinReferences:user_id" json:"war_personnel,omitempty"`

	// Work detail
	WarProjectName  *string    `gorm:"type:varchar(255);column:war_project_name" json:"war_project_name,omitempty"`
	WarDescription  string     `gorm:"type:text;column:war_description" json:"war_description"`
	WarDateStarted  time.Time  `gorm:"type:date;not null;column:war_date_started" json:"war_date_started"`
	WarDateCompleted *time.Time `gorm:"type:date;column:war_date_completed" json:"war_date_completed,omitempty"`
	WarStatus       string     `gorm:"type:varchar(50);not null;default:'Completed';column:war_status" json:"war_status"`

	// Costing. WarTotalCost is recomputed on every save; it must always equal
	// material + labor.
	WarMaterialCost float64 `gorm:"type:numeric(12,2);not null;default:0;column:war_material_cost" json:"war_material_cost"`
	WarLaborCost    float64 `gorm:"type:numeric(12,2);not null;default:0;column:war_labor_cost" json:"war_labor_cost"`
	WarTotalCost    float64 `gorm:"type:numeric(12,2);not null;default:0;column:war_total_cost" json:"war_total_cost"`

	WarControlNumber *string `gorm:"type:varchar(100);unique;column:war_control_number" json:"war_control_number,omitempty"`

	// Audit
	WarCreatedAt time.Time      `gorm:"column:war_created_at;autoCreateTime" json:"war_created_at"`
	WarUpdatedAt *time.Time     `gorm:"column:war_updated_at;autoUpdateTime" json:"war_updated_at,omitempty"`
	WarDeletedAt gorm.DeletedAt `gorm:"column:war_deleted_at;index" json:"war_deleted_at,omitempty"`
}

func (WarModel) TableName() string { return "work_accomplishment_reports" }

// BeforeSave keeps the total-cost invariant: total is always material + labor,
// never a caller-supplied value.
func (m *WarModel) BeforeSave(tx *gorm.DB) error {
	m.WarTotalCost = m.WarMaterialCost + m.WarLaborCost
	return nil
}
