// internals/features/reports/activities/service/classifier.go
package service

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	activityModel "gso_backend/internals/features/reports/activities/model"
)

// ErrFallbackNotConfigured is returned when the activity catalog has no
// "Miscellaneous" entry. Callers must guarantee it exists at initialization.
var ErrFallbackNotConfigured = errors.New("activity catalog has no fallback entry")

// Classifier maps free-text work descriptions onto the controlled activity
// vocabulary. Matching is first-keyword-hit-wins over the active activities in
// insertion order; no scoring, no longest-match preference.
type Classifier struct {
	activities []activityModel.ActivityNameModel
	fallback   *activityModel.ActivityNameModel
}

// NewClassifier builds a classifier over the given active activities. The
// fallback is injected explicitly; a nil fallback fails fast.
func NewClassifier(activities []activityModel.ActivityNameModel, fallback *activityModel.ActivityNameModel) (*Classifier, error) {
	if fallback == nil {
		return nil, ErrFallbackNotConfigured
	}
	return &Classifier{activities: activities, fallback: fallback}, nil
}

// NewClassifierFromDB loads the active catalog in insertion order and resolves
// the "Miscellaneous" fallback.
func NewClassifierFromDB(db *gorm.DB) (*Classifier, error) {
	var activities []activityModel.ActivityNameModel
	if err := db.
		Where("activity_name_is_active = ?", true).
		Order("activity_name_created_at ASC").
		Find(&activities).Error; err != nil {
		return nil, err
	}

	var fallback *activityModel.ActivityNameModel
	for i := range activities {
		if activities[i].ActivityNameName == activityModel.FallbackActivityName {
			fallback = &activities[i]
			break
		}
	}
	return NewClassifier(activities, fallback)
}

// Classify returns the first activity whose keyword set has any keyword
// appearing as a substring of the lower-cased description. Empty input and
// no-hit input both map to the fallback. Deterministic for a fixed catalog.
func (c *Classifier) Classify(description string) *activityModel.ActivityNameModel {
	description = strings.ToLower(strings.TrimSpace(description))
	if description == "" {
		return c.fallback
	}

	for i := range c.activities {
		for _, kw := range c.activities[i].KeywordList() {
			if strings.Contains(description, kw) {
				return &c.activities[i]
			}
		}
	}
	return c.fallback
}
