package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	indicatorModel "gso_backend/internals/features/reports/indicators/model"
	warModel "gso_backend/internals/features/reports/war/model"
)

func indicator(code, description string) indicatorModel.SuccessIndicatorModel {
	return indicatorModel.SuccessIndicatorModel{
		IndicatorID:          uuid.New(),
		IndicatorCode:        code,
		IndicatorDescription: description,
	}
}

func war(description string) warModel.WarModel {
	return warModel.WarModel{WarID: uuid.New(), WarDescription: description}
}

func TestBuildRowsFirstContainmentMatchWins(t *testing.T) {
	indicators := []indicatorModel.SuccessIndicatorModel{
		indicator("CF1", "road repair"),
	}
	wars := []warModel.WarModel{
		war("Cleared drainage at the public market"),
		war("Road repair along the national highway"),
		war("Another road repair near the plaza"),
	}

	rows := BuildRows(indicators, wars, nil)
	require.Len(t, rows, 1)
	assert.Equal(t, "CF1", rows[0].Indicator)
	assert.Equal(t, "Road repair along the national highway", rows[0].Description)
	require.NotNil(t, rows[0].WarID)
	assert.Equal(t, wars[1].WarID, *rows[0].WarID)
}

func TestBuildRowsAtMostOneMatchPerIndicator(t *testing.T) {
	indicators := []indicatorModel.SuccessIndicatorModel{
		indicator("CF1", "road repair"),
		indicator("CF2", "furniture"),
	}
	wars := []warModel.WarModel{
		war("road repair batch one"),
		war("road repair batch two"),
	}

	rows := BuildRows(indicators, wars, nil)
	require.Len(t, rows, 2)
	assert.NotNil(t, rows[0].WarID)

	// CF2 has no match: empty description, nil war id, row still present
	assert.Equal(t, "CF2", rows[1].Indicator)
	assert.Equal(t, "", rows[1].Description)
	assert.Nil(t, rows[1].WarID)
}

func TestBuildRowsPrefillsDraftRemarks(t *testing.T) {
	ind := indicator("EF1", "electrical")
	remarks := map[uuid.UUID]string{ind.IndicatorID: "carried over from June"}

	rows := BuildRows([]indicatorModel.SuccessIndicatorModel{ind}, nil, remarks)
	require.Len(t, rows, 1)
	assert.Equal(t, "carried over from June", rows[0].Remarks)
	assert.Nil(t, rows[0].WarID)
}

func TestBuildRowsEmptyIndicators(t *testing.T) {
	rows := BuildRows(nil, []warModel.WarModel{war("anything")}, nil)
	assert.Empty(t, rows)
}
