package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	deptModel "gso_backend/internals/features/accounts/departments/model"
	unitModel "gso_backend/internals/features/accounts/units/model"
	userModel "gso_backend/internals/features/accounts/users/model"
	warModel "gso_backend/internals/features/reports/war/model"
	requestModel "gso_backend/internals/features/requests/service_requests/model"
)

func TestNormalizeRequest(t *testing.T) {
	created := time.Date(2024, 7, 3, 9, 30, 0, 0, time.UTC)
	r := &requestModel.ServiceRequestModel{
		RequestID:          uuid.New(),
		RequestDescription: "Fix busted lights at the lobby",
		RequestStatus:      requestModel.RequestStatusInProgress,
		RequestCreatedAt:   created,
		RequestDepartment:  &deptModel.DepartmentModel{DepartmentName: "Accounting"},
		RequestUnit:        &unitModel.UnitModel{UnitName: "Electrical"},
		RequestPersonnel: []userModel.UserModel{
			{UserFirstName: "Juan", UserLastName: "Dela Cruz"},
		},
	}

	row := NormalizeRequest(r)
	assert.Equal(t, RowTypeServiceRequest, row.Type)
	assert.Equal(t, RowSourceLive, row.Source)
	assert.Equal(t, "Accounting", row.RequestingOffice)
	assert.Equal(t, "Electrical", row.Unit)
	assert.Equal(t, created, row.Date)
	assert.Equal(t, []string{"Juan Dela Cruz"}, row.Personnel)
	assert.Equal(t, requestModel.RequestStatusInProgress, row.Status)
}

func TestNormalizeWarPrefersOriginRequestOfficeAndUnit(t *testing.T) {
	w := &warModel.WarModel{
		WarID:          uuid.New(),
		WarDescription: "Repainted the conference room",
		WarDateStarted: time.Date(2024, 7, 10, 8, 0, 0, 0, time.UTC),
		WarStatus:      warModel.WarStatusCompleted,
		WarUnit:        &unitModel.UnitModel{UnitName: "Utility"},
		WarRequest: &requestModel.ServiceRequestModel{
			RequestDepartment: &deptModel.DepartmentModel{DepartmentName: "HR"},
			RequestUnit:       &unitModel.UnitModel{UnitName: "Carpentry"},
		},
	}

	row := NormalizeWar(w)
	assert.Equal(t, RowTypeWar, row.Type)
	assert.Equal(t, RowSourceLive, row.Source)
	assert.Equal(t, "HR", row.RequestingOffice)
	assert.Equal(t, "Carpentry", row.Unit)
}

func TestNormalizeWarMigratedFallsBackToOwnFields(t *testing.T) {
	w := &warModel.WarModel{
		WarID:          uuid.New(),
		WarDateStarted: time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC),
		WarUnit:        &unitModel.UnitModel{UnitName: "Motorpool"},
	}

	row := NormalizeWar(w)
	assert.Equal(t, RowSourceMigrated, row.Source)
	assert.Equal(t, "", row.RequestingOffice)
	assert.Equal(t, "Motorpool", row.Unit)
	// blank status defaults to Completed
	assert.Equal(t, warModel.WarStatusCompleted, row.Status)
	// no personnel shows the placeholder
	assert.Equal(t, []string{UnassignedPersonnel}, row.Personnel)
}

func TestNormalizeDateAnchorsBareDates(t *testing.T) {
	manila, _ := time.LoadLocation("Asia/Manila")

	bare := time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC)
	got := NormalizeDate(bare, manila)
	y, m, d := got.Date()
	assert.Equal(t, 2024, y)
	assert.Equal(t, time.July, m)
	assert.Equal(t, 10, d)
	assert.Equal(t, manila, got.Location())

	// idempotent: re-anchoring keeps the same wall date
	again := NormalizeDate(got, manila)
	assert.True(t, got.Equal(again))
}

func TestNormalizeDatePassesThroughTimestamps(t *testing.T) {
	manila, _ := time.LoadLocation("Asia/Manila")
	stamp := time.Date(2024, 7, 10, 14, 25, 3, 0, time.UTC)
	assert.True(t, stamp.Equal(NormalizeDate(stamp, manila)))
}
