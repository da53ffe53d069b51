// internals/features/reports/war/dto/war_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	warModel "gso_backend/internals/features/reports/war/model"
)

/* ===================== REQUESTS ===================== */

type CreateWarRequest struct {
	WarRequestID     *uuid.UUID  `json:"war_request_id" validate:"omitempty"`
	WarUnitID        uuid.UUID   `json:"war_unit_id" validate:"required"`
	WarProjectName   *string     `json:"war_project_name" validate:"omitempty,max=255"`
	WarDescription   string      `json:"war_description" validate:"omitempty"`
	WarDateStarted   time.Time   `json:"war_date_started" validate:"required"`
	WarDateCompleted *time.Time  `json:"war_date_completed" validate:"omitempty"`
	WarStatus        *string     `json:"war_status" validate:"omitempty,oneof=Pending 'In Progress' Completed"`
	WarMaterialCost  float64     `json:"war_material_cost" validate:"omitempty,gte=0"`
	WarLaborCost     float64     `json:"war_labor_cost" validate:"omitempty,gte=0"`
	WarControlNumber *string     `json:"war_control_number" validate:"omitempty,max=100"`
	WarPersonnelIDs  []uuid.UUID `json:"war_personnel_ids" validate:"omitempty"`
}

func (r *CreateWarRequest) ToModel() *warModel.WarModel {
	m := &warModel.WarModel{
		WarRequestID:     r.WarRequestID,
		WarUnitID:        r.WarUnitID,
		WarProjectName:   r.WarProjectName,
		WarDescription:   r.WarDescription,
		WarDateStarted:   r.WarDateStarted,
		WarDateCompleted: r.WarDateCompleted,
		WarMaterialCost:  r.WarMaterialCost,
		WarLaborCost:     r.WarLaborCost,
		WarControlNumber: r.WarControlNumber,
		WarStatus:        warModel.WarStatusCompleted,
	}
	if r.WarStatus != nil {
		m.WarStatus = *r.WarStatus
	}
	return m
}

type UpdateWarRequest struct {
	WarProjectName   *string    `json:"war_project_name" validate:"omitempty,max=255"`
	WarDescription   *string    `json:"war_description" validate:"omitempty"`
	WarDateStarted   *time.Time `json:"war_date_started" validate:"omitempty"`
	WarDateCompleted *time.Time `json:"war_date_completed" validate:"omitempty"`
	WarStatus        *string    `json:"war_status" validate:"omitempty,oneof=Pending 'In Progress' Completed"`
	WarMaterialCost  *float64   `json:"war_material_cost" validate:"omitempty,gte=0"`
	WarLaborCost     *float64   `json:"war_labor_cost" validate:"omitempty,gte=0"`
	WarControlNumber *string    `json:"war_control_number" validate:"omitempty,max=100"`
}

func (r *UpdateWarRequest) ApplyToModel(m *warModel.WarModel) {
	if r.WarProjectName != nil {
		m.WarProjectName = r.WarProjectName
	}
	if r.WarDescription != nil {
		m.WarDescription = *r.WarDescription
	}
	if r.WarDateStarted != nil {
		m.WarDateStarted = *r.WarDateStarted
	}
	if r.WarDateCompleted != nil {
		m.WarDateCompleted = r.WarDateCompleted
	}
	if r.WarStatus != nil {
		m.WarStatus = *r.WarStatus
	}
	if r.WarMaterialCost != nil {
		m.WarMaterialCost = *r.WarMaterialCost
	}
	if r.WarLaborCost != nil {
		m.WarLaborCost = *r.WarLaborCost
	}
	if r.WarControlNumber != nil {
		m.WarControlNumber = r.WarControlNumber
	}

	now := time.Now()
	m.WarUpdatedAt = &now
}
