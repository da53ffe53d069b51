// internals/features/accounts/users/model/user_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	unitModel "gso_backend/internals/features/accounts/units/model"
)

type UserModel struct {
	// PK
	UserID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:user_id" json:"user_id"`

	// Identity
	UserUserName  string `gorm:"type:varchar(80);unique;not null;column:user_user_name" json:"user_user_name"`
	UserFirstName string `gorm:"type:varchar(80);not null;column:user_first_name" json:"user_first_name"`
	UserLastName  string `gorm:"type:varchar(80);column:user_last_name" json:"user_last_name"`

	// Role & status
	UserRole          string `gorm:"type:varchar(20);not null;default:'personnel';column:user_role" json:"user_role"`
	UserAccountStatus string `gorm:"type:varchar(20);not null;default:'active';column:user_account_status" json:"user_account_status"`

	// Unit assignment
	UserUnitID *uuid.UUID           `gorm:"type:uuid;column:user_unit_id" json:"user_unit_id,omitempty"`
	UserUnit   *unitModel.UnitModel `gorm:"foreignKey:UserUnitID;references:UnitID" json:"user_unit,omitempty"`

	// Audit
	UserCreatedAt time.Time      `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt *time.Time     `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at,omitempty"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"user_deleted_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }

// FullName falls back to the username when both name parts are blank,
// mirroring how personnel show up on printed reports.
func (u *UserModel) FullName() string {
	full := strings.TrimSpace(strings.TrimSpace(u.UserFirstName) + " " + strings.TrimSpace(u.UserLastName))
	if full == "" {
		return u.UserUserName
	}
	return full
}
