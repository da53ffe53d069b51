package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestBuildWorkbookRejectsMalformedMonth(t *testing.T) {
	s := &ExportService{}
	_, err := s.BuildWorkbook("13-99", "all", []string{"Juan"})
	assert.Error(t, err)

	_, err = s.BuildWorkbook("2024-7x", "all", []string{"Juan"})
	assert.Error(t, err)
}

func TestWriteSheetHeadersAndRows(t *testing.T) {
	s := &ExportService{}
	f := excelize.NewFile()
	defer f.Close()

	id := uuid.New()
	rows := []IpmtRow{
		{Indicator: "CF1", Description: "Road repair along the highway", Remarks: "done", WarID: &id},
		{Indicator: "CF2", Description: "", Remarks: ""},
	}
	require.NoError(t, s.writeSheet(f, "Juan Dela Cruz", "Carpentry", 2024, 7, rows))

	sheet := "Juan Dela Cruz"
	for i, want := range []string{"Success Indicator", "Accomplishment", "Remarks"} {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		got, err := f.GetCellValue(sheet, cell)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	a2, _ := f.GetCellValue(sheet, "A2")
	b2, _ := f.GetCellValue(sheet, "B2")
	c2, _ := f.GetCellValue(sheet, "C2")
	assert.Equal(t, "CF1", a2)
	assert.Equal(t, "Road repair along the highway", b2)
	assert.Equal(t, "done", c2)

	e1, _ := f.GetCellValue(sheet, "E1")
	e2, _ := f.GetCellValue(sheet, "E2")
	e3, _ := f.GetCellValue(sheet, "E3")
	assert.Equal(t, "Month: July 2024", e1)
	assert.Equal(t, "Personnel: Juan Dela Cruz", e2)
	assert.Equal(t, "Unit: Carpentry", e3)
}

func TestWriteSheetPlaceholderRow(t *testing.T) {
	s := &ExportService{}
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, s.writeSheet(f, "Maria Santos", "", 2024, 1, nil))

	a2, _ := f.GetCellValue("Maria Santos", "A2")
	b2, _ := f.GetCellValue("Maria Santos", "B2")
	c2, _ := f.GetCellValue("Maria Santos", "C2")
	assert.Equal(t, "N/A", a2)
	assert.Equal(t, "No reports", b2)
	assert.Equal(t, "", c2)

	// blank unit writes no unit annotation
	e3, _ := f.GetCellValue("Maria Santos", "E3")
	assert.Equal(t, "", e3)
}

func TestSheetTitle(t *testing.T) {
	assert.Equal(t, "Unassigned", sheetTitle(""))
	assert.Equal(t, "Unassigned", sheetTitle("   "))
	assert.Equal(t, "Juan Dela Cruz", sheetTitle("Juan Dela Cruz"))

	long := "A very long personnel name that exceeds the limit"
	assert.Len(t, sheetTitle(long), 30)
}
