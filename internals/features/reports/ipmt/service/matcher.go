// internals/features/reports/ipmt/service/matcher.go
package service

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	unitModel "gso_backend/internals/features/accounts/units/model"
	helper "gso_backend/internals/helpers"
	indicatorModel "gso_backend/internals/features/reports/indicators/model"
	ipmtModel "gso_backend/internals/features/reports/ipmt/model"
	warModel "gso_backend/internals/features/reports/war/model"
)

// IpmtRow is one preview line: an active success indicator paired with at most
// one matched WAR, plus prefilled remarks from an existing draft.
type IpmtRow struct {
	Indicator   string     `json:"indicator"`
	Description string     `json:"description"`
	Remarks     string     `json:"remarks"`
	WarID       *uuid.UUID `json:"war_id"`
}

type MatcherService struct {
	DB *gorm.DB
}

func NewMatcherService(db *gorm.DB) *MatcherService {
	return &MatcherService{DB: db}
}

// Collect builds the IPMT preview rows for a unit and month:
//   - every active indicator of the unit, in insertion order (this order also
//     drives export row order downstream)
//   - candidate WARs restricted to unit + month, optionally to personnel by
//     first-name token ("all" sentinel lifts the restriction)
//   - per indicator, the first candidate whose description contains the
//     indicator description (case-insensitive); at most one match
//   - remarks prefilled from an existing draft for (indicator, unit, month)
//
// An unknown unit name returns an empty result, not an error: "no data yet"
// rather than malformed input.
func (s *MatcherService) Collect(year, month int, unitName string, personnelNames []string) ([]IpmtRow, error) {
	var unit unitModel.UnitModel
	err := s.DB.
		Where("LOWER(unit_name) = LOWER(?)", strings.TrimSpace(unitName)).
		First(&unit).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []IpmtRow{}, nil
		}
		return nil, err
	}

	var indicators []indicatorModel.SuccessIndicatorModel
	if err := s.DB.
		Where("indicator_unit_id = ? AND indicator_is_active = ?", unit.UnitID, true).
		Order("indicator_created_at ASC").
		Find(&indicators).Error; err != nil {
		return nil, err
	}

	wars, err := s.candidateWars(unit.UnitID, year, month, personnelNames)
	if err != nil {
		return nil, err
	}

	remarks, err := s.draftRemarks(unit.UnitID, helper.MonthKey(year, month), indicators)
	if err != nil {
		return nil, err
	}

	return BuildRows(indicators, wars, remarks), nil
}

// BuildRows is the pure matching core: for every indicator, scan the candidate
// WARs in order and take the first whose description contains the indicator
// description. First match wins; no scoring.
func BuildRows(indicators []indicatorModel.SuccessIndicatorModel, wars []warModel.WarModel, remarks map[uuid.UUID]string) []IpmtRow {
	rows := make([]IpmtRow, 0, len(indicators))
	for i := range indicators {
		ind := &indicators[i]
		needle := strings.ToLower(ind.IndicatorDescription)

		var matched *warModel.WarModel
		for j := range wars {
			if strings.Contains(strings.ToLower(wars[j].WarDescription), needle) {
				matched = &wars[j]
				break
			}
		}

		row := IpmtRow{
			Indicator: ind.IndicatorCode,
			Remarks:   remarks[ind.IndicatorID],
		}
		if matched != nil {
			row.Description = matched.WarDescription
			id := matched.WarID
			row.WarID = &id
		}
		rows = append(rows, row)
	}
	return rows
}

// candidateWars loads the unit's WARs whose start date falls in (year, month),
// optionally narrowed to personnel by first-name token.
func (s *MatcherService) candidateWars(unitID uuid.UUID, year, month int, personnelNames []string) ([]warModel.WarModel, error) {
	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	nextMonth := monthStart.AddDate(0, 1, 0)

	q := s.DB.Model(&warModel.WarModel{}).
		Where("war_unit_id = ?", unitID).
		Where("war_date_started >= ? AND war_date_started < ?", monthStart, nextMonth)

	if !helper.ContainsAll(personnelNames) {
		tokens := helper.FirstNameTokens(personnelNames)
		q = q.
			Joins("JOIN war_personnel wp ON wp.war_id = work_accomplishment_reports.war_id").
			Joins("JOIN users wu ON wu.user_id = wp.user_id").
			Where("wu.user_first_name IN ?", tokens).
			Distinct("work_accomplishment_reports.*")
	}

	var wars []warModel.WarModel
	if err := q.Order("war_date_started ASC, war_created_at ASC").Find(&wars).Error; err != nil {
		return nil, err
	}
	return wars, nil
}

// draftRemarks maps indicator id → remarks of any existing draft for
// (indicator, unit, month).
func (s *MatcherService) draftRemarks(unitID uuid.UUID, monthKey string, indicators []indicatorModel.SuccessIndicatorModel) (map[uuid.UUID]string, error) {
	if len(indicators) == 0 {
		return map[uuid.UUID]string{}, nil
	}
	ids := make([]uuid.UUID, 0, len(indicators))
	for i := range indicators {
		ids = append(ids, indicators[i].IndicatorID)
	}

	var drafts []ipmtModel.IpmtDraftModel
	if err := s.DB.
		Where("ipmt_unit_id = ? AND ipmt_month = ? AND ipmt_indicator_id IN ?", unitID, monthKey, ids).
		Order("ipmt_created_at ASC").
		Find(&drafts).Error; err != nil {
		return nil, err
	}

	remarks := make(map[uuid.UUID]string, len(drafts))
	for i := range drafts {
		d := &drafts[i]
		if _, seen := remarks[d.IpmtIndicatorID]; seen {
			continue
		}
		if d.IpmtRemarks != nil {
			remarks[d.IpmtIndicatorID] = *d.IpmtRemarks
		}
	}
	return remarks, nil
}
