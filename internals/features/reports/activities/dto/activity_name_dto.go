// internals/features/reports/activities/dto/activity_name_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/lib/pq"

	activityModel "gso_backend/internals/features/reports/activities/model"
)

/* ===================== REQUESTS ===================== */

type CreateActivityNameRequest struct {
	ActivityNameName     string   `json:"activity_name_name" validate:"required,min=2,max=255"`
	ActivityNameKeywords []string `json:"activity_name_keywords" validate:"omitempty,dive,min=1"`
	ActivityNameIsActive *bool    `json:"activity_name_is_active" validate:"omitempty"`
}

func (r *CreateActivityNameRequest) ToModel() *activityModel.ActivityNameModel {
	m := &activityModel.ActivityNameModel{
		ActivityNameName:     strings.TrimSpace(r.ActivityNameName),
		ActivityNameKeywords: normalizeKeywords(r.ActivityNameKeywords),
		ActivityNameIsActive: true,
	}
	if r.ActivityNameIsActive != nil {
		m.ActivityNameIsActive = *r.ActivityNameIsActive
	}
	return m
}

type UpdateActivityNameRequest struct {
	ActivityNameName     *string  `json:"activity_name_name" validate:"omitempty,min=2,max=255"`
	ActivityNameKeywords []string `json:"activity_name_keywords" validate:"omitempty,dive,min=1"`
	ActivityNameIsActive *bool    `json:"activity_name_is_active" validate:"omitempty"`
}

func (r *UpdateActivityNameRequest) ApplyToModel(m *activityModel.ActivityNameModel) {
	if r.ActivityNameName != nil {
		m.ActivityNameName = strings.TrimSpace(*r.ActivityNameName)
	}
	if r.ActivityNameKeywords != nil {
		m.ActivityNameKeywords = normalizeKeywords(r.ActivityNameKeywords)
	}
	if r.ActivityNameIsActive != nil {
		m.ActivityNameIsActive = *r.ActivityNameIsActive
	}

	now := time.Now()
	m.ActivityNameUpdatedAt = &now
}

// keywords are stored trimmed and lower-cased so matching never depends on
// how the catalog was typed in
func normalizeKeywords(raw []string) pq.StringArray {
	out := make(pq.StringArray, 0, len(raw))
	for _, kw := range raw {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" {
			out = append(out, kw)
		}
	}
	return out
}
