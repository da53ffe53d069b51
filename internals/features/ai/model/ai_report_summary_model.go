// internals/features/ai/model/ai_report_summary_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	warModel "gso_backend/internals/features/reports/war/model"
)

const (
	SummaryKindWarDescription = "war-description"
	SummaryKindIpmtSummary    = "ipmt-summary"
)

// Audit trail of AI-generated texts, one row per generation run.
type AIReportSummaryModel struct {
	// PK
	AISummaryID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:ai_summary_id" json:"ai_summary_id"`

	AISummaryKind string `gorm:"type:varchar(30);not null;column:ai_summary_kind;index" json:"ai_summary_kind"`

	AISummaryWarID *uuid.UUID         `gorm:"type:uuid;column:ai_summary_war_id" json:"ai_summary_war_id,omitempty"`
	AISummaryWar   *warModel.WarModel `gorm:"foreignKey:AISummaryWarID;references:WarID" json:"ai_summary_war,omitempty"`

	AISummaryText  string `gorm:"type:text;not null;column:ai_summary_text" json:"ai_summary_text"`
	AISummaryModel string `gorm:"type:varchar(80);column:ai_summary_model" json:"ai_summary_model"`

	// Raw usage metadata from the provider (token counts etc.)
	AISummaryUsage datatypes.JSON `gorm:"type:jsonb;column:ai_summary_usage" json:"ai_summary_usage,omitempty"`

	// Audit
	AISummaryCreatedAt time.Time      `gorm:"column:ai_summary_created_at;autoCreateTime" json:"ai_summary_created_at"`
	AISummaryDeletedAt gorm.DeletedAt `gorm:"column:ai_summary_deleted_at;index" json:"ai_summary_deleted_at,omitempty"`
}

func (AIReportSummaryModel) TableName() string { return "ai_report_summaries" }
