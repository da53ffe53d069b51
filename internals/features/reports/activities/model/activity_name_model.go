// internals/features/reports/activities/model/activity_name_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// FallbackActivityName is the catalog entry every description maps to when no
// keyword hits. Bootstrap fails fast when it is missing.
const FallbackActivityName = "Miscellaneous"

// Master list of standardized activity names. Free-text descriptions from
// service requests and WARs are mapped onto these via keyword rules.
type ActivityNameModel struct {
	// PK
	ActivityNameID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:activity_name_id" json:"activity_name_id"`

	ActivityNameName string `gorm:"type:varchar(255);unique;not null;column:activity_name_name" json:"activity_name_name"`

	// Lower-cased tokens matched as substrings against descriptions
	ActivityNameKeywords pq.StringArray `gorm:"type:text[];column:activity_name_keywords" json:"activity_name_keywords"`

	ActivityNameIsActive bool `gorm:"not null;default:true;column:activity_name_is_active" json:"activity_name_is_active"`

	// Audit
	ActivityNameCreatedAt time.Time      `gorm:"column:activity_name_created_at;autoCreateTime" json:"activity_name_created_at"`
	ActivityNameUpdatedAt *time.Time     `gorm:"column:activity_name_updated_at;autoUpdateTime" json:"activity_name_updated_at,omitempty"`
	ActivityNameDeletedAt gorm.DeletedAt `gorm:"column:activity_name_deleted_at;index" json:"activity_name_deleted_at,omitempty"`
}

func (ActivityNameModel) TableName() string { return "activity_names" }

// KeywordList returns the keyword set trimmed and lower-cased. Stored values
// should already be normalized; this keeps matching safe against manual edits.
func (a *ActivityNameModel) KeywordList() []string {
	out := make([]string, 0, len(a.ActivityNameKeywords))
	for _, kw := range a.ActivityNameKeywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" {
			out = append(out, kw)
		}
	}
	return out
}
