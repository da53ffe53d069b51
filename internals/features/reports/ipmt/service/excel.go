// internals/features/reports/ipmt/service/excel.go
package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	helper "gso_backend/internals/helpers"
	warModel "gso_backend/internals/features/reports/war/model"
)

// Column order and naming are a compatibility contract with the printed IPMT
// form; do not reorder.
var ipmtColumns = [3]string{"Success Indicator", "Accomplishment", "Remarks"}

type ExportService struct {
	DB      *gorm.DB
	Matcher *MatcherService
}

func NewExportService(db *gorm.DB) *ExportService {
	return &ExportService{DB: db, Matcher: NewMatcherService(db)}
}

// BuildWorkbook renders one sheet per personnel for the given month filter
// ("YYYY-MM", strict). When personnelNames is empty or carries the "all"
// sentinel, the personnel set is derived from the month's WARs (optionally
// narrowed by unit). A person with no rows gets the placeholder row instead of
// an empty sheet.
func (s *ExportService) BuildWorkbook(monthFilter, unitName string, personnelNames []string) (*excelize.File, error) {
	year, month, err := helper.ParseMonth(monthFilter)
	if err != nil {
		return nil, err
	}

	if helper.ContainsAll(personnelNames) {
		personnelNames, err = s.monthPersonnel(year, month, unitName)
		if err != nil {
			return nil, err
		}
	}

	f := excelize.NewFile()
	defaultSheet := f.GetSheetName(0)

	for _, person := range personnelNames {
		rows, err := s.Matcher.Collect(year, month, unitName, []string{person})
		if err != nil {
			return nil, err
		}
		if err := s.writeSheet(f, person, unitName, year, month, rows); err != nil {
			return nil, err
		}
	}

	// drop the default sheet once real sheets exist
	if f.SheetCount > 1 {
		_ = f.DeleteSheet(defaultSheet)
	}
	return f, nil
}

func (s *ExportService) writeSheet(f *excelize.File, person, unitName string, year, month int, rows []IpmtRow) error {
	title := sheetTitle(person)
	if _, err := f.NewSheet(title); err != nil {
		return err
	}

	for i, name := range ipmtColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(title, cell, name); err != nil {
			return err
		}
	}

	if len(rows) == 0 {
		rows = []IpmtRow{{Indicator: "N/A", Description: "No reports", Remarks: ""}}
	}
	for i, row := range rows {
		values := [3]string{row.Indicator, row.Description, row.Remarks}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			if err := f.SetCellValue(title, cell, v); err != nil {
				return err
			}
		}
	}

	// header annotations at fixed offsets beside the table
	monthLabel := fmt.Sprintf("Month: %s %d", time.Month(month).String(), year)
	if err := f.SetCellValue(title, "E1", monthLabel); err != nil {
		return err
	}
	if err := f.SetCellValue(title, "E2", "Personnel: "+person); err != nil {
		return err
	}
	if unitName != "" {
		if err := f.SetCellValue(title, "E3", "Unit: "+unitName); err != nil {
			return err
		}
	}
	return nil
}

// monthPersonnel derives the distinct personnel with any WAR in the month,
// optionally filtered by unit, sorted for a stable sheet order.
func (s *ExportService) monthPersonnel(year, month int, unitName string) ([]string, error) {
	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	nextMonth := monthStart.AddDate(0, 1, 0)

	q := s.DB.Model(&warModel.WarModel{}).
		Where("war_date_started >= ? AND war_date_started < ?", monthStart, nextMonth).
		Preload("WarPersonnel")

	if unitName != "" && !strings.EqualFold(unitName, "all") {
		q = q.
			Joins("JOIN units un ON un.unit_id = work_accomplishment_reports.war_unit_id").
			Where("LOWER(un.unit_name) = LOWER(?)", unitName)
	}

	var wars []warModel.WarModel
	if err := q.Find(&wars).Error; err != nil {
		return nil, err
	}

	seen := map[string]struct{}{}
	names := []string{}
	for i := range wars {
		for j := range wars[i].WarPersonnel {
			name := wars[i].WarPersonnel[j].FullName()
			if _, ok := seen[name]; !ok {
				seen[name] = struct{}{}
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	return names, nil
}

// sheetTitle truncates to the spreadsheet sheet-name limit and falls back for
// blank names.
func sheetTitle(person string) string {
	person = strings.TrimSpace(person)
	if person == "" {
		return "Unassigned"
	}
	if len(person) > 30 {
		return person[:30]
	}
	return person
}
