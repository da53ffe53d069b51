// internals/features/reports/war/service/normalizer.go
package service

import (
	"time"

	"github.com/google/uuid"

	"gso_backend/internals/configs"
	userModel "gso_backend/internals/features/accounts/users/model"
	warModel "gso_backend/internals/features/reports/war/model"
	requestModel "gso_backend/internals/features/requests/service_requests/model"
)

/*
Source kinds of a normalized reporting row:
- "ServiceRequest"             — live request not yet converted into a WAR
- "WorkAccomplishmentReport"   — finalized WAR, live or migrated
*/
const (
	RowTypeServiceRequest = "ServiceRequest"
	RowTypeWar            = "WorkAccomplishmentReport"

	RowSourceLive     = "Live"
	RowSourceMigrated = "Migrated"
)

// UnassignedPersonnel is the placeholder entry when no personnel are assigned.
const UnassignedPersonnel = "Unassigned"

// ReportRow is the canonical reporting shape both record sources normalize to.
type ReportRow struct {
	ID               uuid.UUID `json:"id"`
	Type             string    `json:"type"`
	Source           string    `json:"source"`
	RequestingOffice string    `json:"requesting_office"`
	Description      string    `json:"description"`
	Unit             string    `json:"unit"`
	Date             time.Time `json:"date"`
	Personnel        []string  `json:"personnel"`
	Status           string    `json:"status"`
}

// NormalizeRequest converts a live service request into the reporting shape.
func NormalizeRequest(r *requestModel.ServiceRequestModel) ReportRow {
	office := ""
	if r.RequestDepartment != nil {
		office = r.RequestDepartment.DepartmentName
	}
	unit := ""
	if r.RequestUnit != nil {
		unit = r.RequestUnit.UnitName
	}

	return ReportRow{
		ID:               r.RequestID,
		Type:             RowTypeServiceRequest,
		Source:           RowSourceLive,
		RequestingOffice: office,
		Description:      r.RequestDescription,
		Unit:             unit,
		Date:             r.RequestCreatedAt,
		Personnel:        personnelNames(r.RequestPersonnel),
		Status:           r.RequestStatus,
	}
}

// NormalizeWar converts a WAR into the reporting shape. Office and unit come
// from the originating request when one exists, else from the WAR itself.
func NormalizeWar(w *warModel.WarModel) ReportRow {
	source := RowSourceMigrated
	if w.WarRequest != nil {
		source = RowSourceLive
	}

	office := ""
	unit := ""
	if w.WarRequest != nil && w.WarRequest.RequestDepartment != nil {
		office = w.WarRequest.RequestDepartment.DepartmentName
	}
	if w.WarRequest != nil && w.WarRequest.RequestUnit != nil {
		unit = w.WarRequest.RequestUnit.UnitName
	} else if w.WarUnit != nil {
		unit = w.WarUnit.UnitName
	}

	status := w.WarStatus
	if status == "" {
		status = warModel.WarStatusCompleted
	}

	return ReportRow{
		ID:               w.WarID,
		Type:             RowTypeWar,
		Source:           source,
		RequestingOffice: office,
		Description:      w.WarDescription,
		Unit:             unit,
		Date:             NormalizeDate(w.WarDateStarted, configs.DefaultTZ),
		Personnel:        personnelNames(w.WarPersonnel),
		Status:           status,
	}
}

// NormalizeDate anchors a bare date (midnight clock, as DATE columns scan) at
// midnight in the office timezone. Timestamps that already carry a time
// component pass through untouched, so the normalization is idempotent.
func NormalizeDate(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	h, m, s := t.Clock()
	if h == 0 && m == 0 && s == 0 && t.Nanosecond() == 0 {
		y, mo, d := t.Date()
		return time.Date(y, mo, d, 0, 0, 0, 0, loc)
	}
	return t
}

func personnelNames(users []userModel.UserModel) []string {
	if len(users) == 0 {
		return []string{UnassignedPersonnel}
	}
	names := make([]string, 0, len(users))
	for i := range users {
		names = append(names, users[i].FullName())
	}
	return names
}
