// internals/features/reports/ipmt/service/builder.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	unitModel "gso_backend/internals/features/accounts/units/model"
	userModel "gso_backend/internals/features/accounts/users/model"
	aiService "gso_backend/internals/features/ai/service"
	helper "gso_backend/internals/helpers"
	indicatorModel "gso_backend/internals/features/reports/indicators/model"
	ipmtModel "gso_backend/internals/features/reports/ipmt/model"
	warModel "gso_backend/internals/features/reports/war/model"
)

// Build failures surfaced to the caller. Unresolvable persons/indicators are
// NOT errors — they become skipped outcomes and the batch continues.
var (
	ErrMissingInput = errors.New("month, unit, personnel and rows are all required")
	ErrUnitNotFound = errors.New("unit not found")
)

// RowInput is one edited preview row submitted for aggregation.
type RowInput struct {
	Indicator      string      `json:"indicator" validate:"required"`
	Description    string      `json:"description"`
	Accomplishment string      `json:"accomplishment"`
	Remarks        string      `json:"remarks"`
	WarIDs         []uuid.UUID `json:"war_ids"`
}

/*
Outcome statuses per person×row pair:
- "resolved" — draft upserted
- "skipped"  — person or indicator could not be mapped; batch continued
*/
const (
	OutcomeResolved = "resolved"
	OutcomeSkipped  = "skipped"
)

// RowOutcome reports what happened to one person×row pair so callers and tests
// can assert on partial-skip behavior instead of a bare success flag.
type RowOutcome struct {
	Person    string     `json:"person"`
	Indicator string     `json:"indicator"`
	Status    string     `json:"status"`
	Reason    string     `json:"reason,omitempty"`
	DraftID   *uuid.UUID `json:"draft_id,omitempty"`
}

type BuilderService struct {
	DB *gorm.DB

	// Summarize generates the accomplishment text when a row arrives blank but
	// has matched WARs. Swappable for tests; defaults to the GenAI service.
	Summarize func(ctx context.Context, indicatorCode string, descriptions []string) (string, error)

	log *logrus.Logger
}

func NewBuilderService(db *gorm.DB) *BuilderService {
	return &BuilderService{
		DB:        db,
		Summarize: aiService.GenerateIpmtSummary,
		log:       logrus.StandardLogger(),
	}
}

// BuildOrUpdate aggregates the submitted rows into IPMT drafts, one per
// (person, unit, month, indicator). Re-running with identical input yields an
// identical stored state: the draft body is upserted atomically and the
// linked-WAR set is replaced wholesale, never appended.
func (s *BuilderService) BuildOrUpdate(ctx context.Context, month, unitName string, personnelNames []string, rows []RowInput) ([]RowOutcome, error) {
	if strings.TrimSpace(month) == "" || strings.TrimSpace(unitName) == "" ||
		len(personnelNames) == 0 || len(rows) == 0 {
		return nil, ErrMissingInput
	}

	var unit unitModel.UnitModel
	err := s.DB.
		Where("LOWER(unit_name) = LOWER(?)", strings.TrimSpace(unitName)).
		First(&unit).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrUnitNotFound, unitName)
		}
		return nil, err
	}

	outcomes := make([]RowOutcome, 0, len(personnelNames)*len(rows))

	for _, personName := range personnelNames {
		person, err := s.resolvePerson(personName)
		if err != nil {
			return nil, err
		}
		if person == nil {
			// best-effort bulk import: log for audit and move on
			s.log.WithFields(logrus.Fields{
				"person": personName,
				"unit":   unit.UnitName,
				"month":  month,
			}).Warn("ipmt build: person not resolved, skipping")
			for _, row := range rows {
				outcomes = append(outcomes, RowOutcome{
					Person:    personName,
					Indicator: row.Indicator,
					Status:    OutcomeSkipped,
					Reason:    "person not resolved",
				})
			}
			continue
		}

		for _, row := range rows {
			outcome, err := s.upsertRow(ctx, &unit, person, month, row)
			if err != nil {
				return nil, err
			}
			outcome.Person = personName
			outcomes = append(outcomes, outcome)
		}
	}

	return outcomes, nil
}

// resolvePerson maps a requested name to a user: first-name-token match first,
// exact username second. A nil result means "skip", not an error.
func (s *BuilderService) resolvePerson(name string) (*userModel.UserModel, error) {
	token := helper.FirstNameToken(name)
	if token == "" {
		return nil, nil
	}

	var person userModel.UserModel
	err := s.DB.
		Where("LOWER(user_first_name) = LOWER(?)", token).
		Order("user_created_at ASC").
		First(&person).Error
	if err == nil {
		return &person, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	err = s.DB.
		Where("LOWER(user_user_name) = LOWER(?)", strings.TrimSpace(name)).
		First(&person).Error
	if err == nil {
		return &person, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return nil, err
}

func (s *BuilderService) upsertRow(ctx context.Context, unit *unitModel.UnitModel, person *userModel.UserModel, month string, row RowInput) (RowOutcome, error) {
	var indicator indicatorModel.SuccessIndicatorModel
	err := s.DB.
		Where("indicator_unit_id = ? AND indicator_code = ?", unit.UnitID, row.Indicator).
		First(&indicator).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.WithFields(logrus.Fields{
				"indicator": row.Indicator,
				"unit":      unit.UnitName,
			}).Warn("ipmt build: indicator not resolved, skipping row")
			return RowOutcome{
				Indicator: row.Indicator,
				Status:    OutcomeSkipped,
				Reason:    "indicator not resolved",
			}, nil
		}
		return RowOutcome{}, err
	}

	wars, err := s.resolveWars(row.WarIDs, person.UserID, indicator.IndicatorActivityNameID)
	if err != nil {
		return RowOutcome{}, err
	}

	accomplishment := s.resolveAccomplishment(ctx, &indicator, row, wars)
	remarks := row.Remarks
	if remarks == "" {
		remarks = accomplishment
	}

	draft := ipmtModel.IpmtDraftModel{
		IpmtPersonnelID:    person.UserID,
		IpmtUnitID:         unit.UnitID,
		IpmtMonth:          month,
		IpmtIndicatorID:    indicator.IndicatorID,
		IpmtAccomplishment: &accomplishment,
		IpmtRemarks:        &remarks,
	}

	// Store-level atomic upsert on the draft key; read-then-write would lose
	// updates under concurrent submissions for the same key.
	if err := s.DB.
		Clauses(
			clause.OnConflict{
				Columns: []clause.Column{
					{Name: "ipmt_personnel_id"},
					{Name: "ipmt_unit_id"},
					{Name: "ipmt_month"},
					{Name: "ipmt_indicator_id"},
				},
				DoUpdates: clause.AssignmentColumns([]string{"ipmt_accomplishment", "ipmt_remarks", "ipmt_updated_at"}),
			},
			clause.Returning{Columns: []clause.Column{{Name: "ipmt_id"}}},
		).
		Create(&draft).Error; err != nil {
		return RowOutcome{}, err
	}

	// Linked-record set is replaced, not appended — stale links must not survive.
	if err := s.DB.Model(&draft).Association("IpmtReports").Replace(wars); err != nil {
		return RowOutcome{}, err
	}

	id := draft.IpmtID
	return RowOutcome{
		Indicator: row.Indicator,
		Status:    OutcomeResolved,
		DraftID:   &id,
	}, nil
}

// resolveWars narrows the submitted WAR ids to those assigned to the person
// and classified under the indicator's activity.
func (s *BuilderService) resolveWars(warIDs []uuid.UUID, personID uuid.UUID, activityNameID *uuid.UUID) ([]warModel.WarModel, error) {
	if len(warIDs) == 0 {
		return nil, nil
	}

	q := s.DB.Model(&warModel.WarModel{}).
		Where("work_accomplishment_reports.war_id IN ?", warIDs).
		Joins("JOIN war_personnel wp ON wp.war_id = work_accomplishment_reports.war_id").
		Where("wp.user_id = ?", personID)

	if activityNameID != nil {
		q = q.Where("war_activity_name_id = ?", *activityNameID)
	} else {
		q = q.Where("war_activity_name_id IS NULL")
	}

	var wars []warModel.WarModel
	if err := q.Find(&wars).Error; err != nil {
		return nil, err
	}
	return wars, nil
}

// resolveAccomplishment applies the precedence chain: explicit description >
// alternate accomplishment field > generated summary over the matched WAR
// descriptions. Summarizer failures surface inline, never abort the row.
func (s *BuilderService) resolveAccomplishment(ctx context.Context, indicator *indicatorModel.SuccessIndicatorModel, row RowInput, wars []warModel.WarModel) string {
	if row.Description != "" {
		return row.Description
	}
	if row.Accomplishment != "" {
		return row.Accomplishment
	}

	descriptions := make([]string, 0, len(wars))
	for i := range wars {
		if d := strings.TrimSpace(wars[i].WarDescription); d != "" {
			descriptions = append(descriptions, d)
		}
	}
	if len(descriptions) == 0 {
		return ""
	}

	summary, err := s.Summarize(ctx, indicator.IndicatorCode, descriptions)
	if err != nil {
		s.log.WithError(err).WithField("indicator", indicator.IndicatorCode).
			Error("ipmt build: summary generation failed")
		return fmt.Sprintf("Error generating summary: %v", err)
	}
	return summary
}
