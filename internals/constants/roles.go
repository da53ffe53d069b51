package constants

import "fmt"

// Role error message templates
const (
	ErrOnlyGSOCanAccess      = "Only GSO staff or the director may access %s."
	ErrOnlyDirectorCanAccess = "Only the director may access %s."
)

func RoleErrorGSO(feature string) string {
	return fmt.Sprintf(ErrOnlyGSOCanAccess, feature)
}

func RoleErrorDirector(feature string) string {
	return fmt.Sprintf(ErrOnlyDirectorCanAccess, feature)
}

// ==========================
// Roles
// ==========================
const (
	RoleGSO       = "gso"
	RoleDirector  = "director"
	RolePersonnel = "personnel"
)

// Grouped role slices for route gates
var (
	GSOAndAbove = []string{RoleGSO, RoleDirector}
	AllRoles    = []string{RoleGSO, RoleDirector, RolePersonnel}
)

// Account statuses
const (
	AccountActive   = "active"
	AccountInactive = "inactive"
)
