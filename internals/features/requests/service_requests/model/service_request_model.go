// internals/features/requests/service_requests/model/service_request_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	deptModel "gso_backend/internals/features/accounts/departments/model"
	unitModel "gso_backend/internals/features/accounts/units/model"
	userModel "gso_backend/internals/features/accounts/users/model"
)

/*
Request lifecycle (as set by the intake module):
- "Pending"
- "In Progress"
- "Completed"
*/
const (
	RequestStatusPending    = "Pending"
	RequestStatusInProgress = "In Progress"
	RequestStatusCompleted  = "Completed"
)

type ServiceRequestModel struct {
	// PK
	RequestID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:request_id" json:"request_id"`

	// Origin office & assigned unit
	RequestDepartmentID *uuid.UUID                 `gorm:"type:uuid;column:request_department_id" json:"request_department_id,omitempty"`
	RequestDepartment   *deptModel.DepartmentModel `gorm:"foreignKey:RequestDepartmentID;references:DepartmentID" json:"request_department,omitempty"`
	RequestUnitID       *uuid.UUID                 `gorm:"type:uuid;column:request_unit_id" json:"request_unit_id,omitempty"`
	RequestUnit         *unitModel.UnitModel       `gorm:"foreignKey:RequestUnitID;references:UnitID" json:"request_unit,omitempty"`

	// Work description & status
	RequestDescription string `gorm:"type:text;column:request_description" json:"request_description"`
	RequestStatus      string `gorm:"type:varchar(50);not null;default:'Pending';column:request_status" json:"request_status"`

	// Assigned personnel (m2m)
	RequestPersonnel []userModel.UserModel `gorm:"many2many:service_request_personnel;foreignKey:RequestID;joinForeignKey:request_id;references:UserID;joinReferences:user_id" json:"request_personnel,omitempty"`

	// Audit
	RequestCreatedAt time.Time      `gorm:"column:request_created_at;autoCreateTime" json:"request_created_at"`
	RequestUpdatedAt *time.Time     `gorm:"column:request_updated_at;autoUpdateTime" json:"request_updated_at,omitempty"`
	RequestDeletedAt gorm.DeletedAt `gorm:"column:request_deleted_at;index" json:"request_deleted_at,omitempty"`
}

func (ServiceRequestModel) TableName() string { return "service_requests" }
