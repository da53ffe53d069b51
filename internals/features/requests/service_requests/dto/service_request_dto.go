// internals/features/requests/service_requests/dto/service_request_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	requestModel "gso_backend/internals/features/requests/service_requests/model"
)

/* ===================== REQUESTS ===================== */

type CreateServiceRequest struct {
	RequestDepartmentID *uuid.UUID  `json:"request_department_id" validate:"omitempty"`
	RequestUnitID       *uuid.UUID  `json:"request_unit_id" validate:"omitempty"`
	RequestDescription  string      `json:"request_description" validate:"required"`
	RequestPersonnelIDs []uuid.UUID `json:"request_personnel_ids" validate:"omitempty"`
}

func (r *CreateServiceRequest) ToModel() *requestModel.ServiceRequestModel {
	return &requestModel.ServiceRequestModel{
		RequestDepartmentID: r.RequestDepartmentID,
		RequestUnitID:       r.RequestUnitID,
		RequestDescription:  strings.TrimSpace(r.RequestDescription),
		RequestStatus:       requestModel.RequestStatusPending,
	}
}

type UpdateServiceRequest struct {
	RequestDepartmentID *uuid.UUID  `json:"request_department_id" validate:"omitempty"`
	RequestUnitID       *uuid.UUID  `json:"request_unit_id" validate:"omitempty"`
	RequestDescription  *string     `json:"request_description" validate:"omitempty"`
	RequestStatus       *string     `json:"request_status" validate:"omitempty,oneof=Pending 'In Progress' Completed"`
	RequestPersonnelIDs []uuid.UUID `json:"request_personnel_ids" validate:"omitempty"`
}

func (r *UpdateServiceRequest) ApplyToModel(m *requestModel.ServiceRequestModel) {
	if r.RequestDepartmentID != nil {
		m.RequestDepartmentID = r.RequestDepartmentID
	}
	if r.RequestUnitID != nil {
		m.RequestUnitID = r.RequestUnitID
	}
	if r.RequestDescription != nil {
		m.RequestDescription = strings.TrimSpace(*r.RequestDescription)
	}
	if r.RequestStatus != nil {
		m.RequestStatus = *r.RequestStatus
	}

	now := time.Now()
	m.RequestUpdatedAt = &now
}
