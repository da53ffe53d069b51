package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeforeSaveRecomputesTotalCost(t *testing.T) {
	w := &WarModel{
		WarMaterialCost: 1500.50,
		WarLaborCost:    800.25,
		WarTotalCost:    99999, // caller-supplied totals are ignored
	}
	require.NoError(t, w.BeforeSave(nil))
	assert.Equal(t, 2300.75, w.WarTotalCost)
}

func TestBeforeSaveZeroCosts(t *testing.T) {
	w := &WarModel{}
	require.NoError(t, w.BeforeSave(nil))
	assert.Equal(t, 0.0, w.WarTotalCost)
}
