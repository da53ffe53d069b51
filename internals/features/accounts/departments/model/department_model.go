// internals/features/accounts/departments/model/department_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Requesting offices (colleges, administrative offices) that file service
// requests with the GSO.
type DepartmentModel struct {
	DepartmentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:department_id" json:"department_id"`

	DepartmentName string `gorm:"type:varchar(150);unique;not null;column:department_name" json:"department_name"`

	DepartmentCreatedAt time.Time      `gorm:"column:department_created_at;autoCreateTime" json:"department_created_at"`
	DepartmentUpdatedAt *time.Time     `gorm:"column:department_updated_at;autoUpdateTime" json:"department_updated_at,omitempty"`
	DepartmentDeletedAt gorm.DeletedAt `gorm:"column:department_deleted_at;index" json:"department_deleted_at,omitempty"`
}

func (DepartmentModel) TableName() string { return "departments" }
