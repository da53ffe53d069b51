// internals/features/reports/indicators/dto/success_indicator_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	indicatorModel "gso_backend/internals/features/reports/indicators/model"
)

/* ===================== REQUESTS ===================== */

type CreateIndicatorRequest struct {
	IndicatorUnitID         uuid.UUID  `json:"indicator_unit_id" validate:"required"`
	IndicatorCode           string     `json:"indicator_code" validate:"required,min=1,max=20"`
	IndicatorDescription    string     `json:"indicator_description" validate:"required"`
	IndicatorActivityNameID *uuid.UUID `json:"indicator_activity_name_id" validate:"omitempty"`
	IndicatorIsActive       *bool      `json:"indicator_is_active" validate:"omitempty"`
}

func (r *CreateIndicatorRequest) ToModel() *indicatorModel.SuccessIndicatorModel {
	m := &indicatorModel.SuccessIndicatorModel{
		IndicatorUnitID:         r.IndicatorUnitID,
		IndicatorCode:           strings.TrimSpace(r.IndicatorCode),
		IndicatorDescription:    strings.TrimSpace(r.IndicatorDescription),
		IndicatorActivityNameID: r.IndicatorActivityNameID,
		IndicatorIsActive:       true,
	}
	if r.IndicatorIsActive != nil {
		m.IndicatorIsActive = *r.IndicatorIsActive
	}
	return m
}

type UpdateIndicatorRequest struct {
	IndicatorCode           *string    `json:"indicator_code" validate:"omitempty,min=1,max=20"`
	IndicatorDescription    *string    `json:"indicator_description" validate:"omitempty"`
	IndicatorActivityNameID *uuid.UUID `json:"indicator_activity_name_id" validate:"omitempty"`
	IndicatorIsActive       *bool      `json:"indicator_is_active" validate:"omitempty"`
}

func (r *UpdateIndicatorRequest) ApplyToModel(m *indicatorModel.SuccessIndicatorModel) {
	if r.IndicatorCode != nil {
		m.IndicatorCode = strings.TrimSpace(*r.IndicatorCode)
	}
	if r.IndicatorDescription != nil {
		m.IndicatorDescription = strings.TrimSpace(*r.IndicatorDescription)
	}
	if r.IndicatorActivityNameID != nil {
		m.IndicatorActivityNameID = r.IndicatorActivityNameID
	}
	if r.IndicatorIsActive != nil {
		m.IndicatorIsActive = *r.IndicatorIsActive
	}

	now := time.Now()
	m.IndicatorUpdatedAt = &now
}
