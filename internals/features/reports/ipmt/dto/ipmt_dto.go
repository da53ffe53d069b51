// internals/features/reports/ipmt/dto/ipmt_dto.go
package dto

import (
	ipmtService "gso_backend/internals/features/reports/ipmt/service"
)

/* ===================== REQUESTS ===================== */

type SaveIpmtRequest struct {
	Month     string                 `json:"month" validate:"required"`
	Unit      string                 `json:"unit" validate:"required"`
	Personnel []string               `json:"personnel" validate:"required,min=1"`
	Rows      []ipmtService.RowInput `json:"rows" validate:"required,min=1,dive"`
}

/* ===================== RESPONSES ===================== */

type SaveIpmtResponse struct {
	Status   string                   `json:"status"`
	Outcomes []ipmtService.RowOutcome `json:"outcomes"`
}
