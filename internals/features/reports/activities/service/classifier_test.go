package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	activityModel "gso_backend/internals/features/reports/activities/model"
)

func catalog() ([]activityModel.ActivityNameModel, *activityModel.ActivityNameModel) {
	activities := []activityModel.ActivityNameModel{
		{
			ActivityNameID:       uuid.New(),
			ActivityNameName:     "Electrical Works",
			ActivityNameKeywords: pq.StringArray{"electrical", "wiring", "busted"},
		},
		{
			ActivityNameID:       uuid.New(),
			ActivityNameName:     "Plumbing Works",
			ActivityNameKeywords: pq.StringArray{"leak", "faucet", "pipe"},
		},
		{
			ActivityNameID:       uuid.New(),
			ActivityNameName:     activityModel.FallbackActivityName,
			ActivityNameKeywords: pq.StringArray{},
		},
	}
	return activities, &activities[2]
}

func TestNewClassifierRequiresFallback(t *testing.T) {
	activities, _ := catalog()
	_, err := NewClassifier(activities, nil)
	assert.ErrorIs(t, err, ErrFallbackNotConfigured)
}

func TestClassifyFirstKeywordHitWins(t *testing.T) {
	activities, fallback := catalog()
	c, err := NewClassifier(activities, fallback)
	require.NoError(t, err)

	got := c.Classify("Repaired busted wiring at the records office")
	assert.Equal(t, "Electrical Works", got.ActivityNameName)

	// "leak" and "busted" both appear; catalog order decides
	got = c.Classify("busted pipe leak near the canteen")
	assert.Equal(t, "Electrical Works", got.ActivityNameName)
}

func TestClassifyIsCaseInsensitive(t *testing.T) {
	activities, fallback := catalog()
	c, err := NewClassifier(activities, fallback)
	require.NoError(t, err)

	got := c.Classify("REPLACED THE FAUCET IN ROOM 204")
	assert.Equal(t, "Plumbing Works", got.ActivityNameName)
}

func TestClassifyFallsBack(t *testing.T) {
	activities, fallback := catalog()
	c, err := NewClassifier(activities, fallback)
	require.NoError(t, err)

	assert.Equal(t, activityModel.FallbackActivityName, c.Classify("delivered documents to city hall").ActivityNameName)
	assert.Equal(t, activityModel.FallbackActivityName, c.Classify("").ActivityNameName)
	assert.Equal(t, activityModel.FallbackActivityName, c.Classify("   ").ActivityNameName)
}

func TestClassifyIsDeterministic(t *testing.T) {
	activities, fallback := catalog()
	c, err := NewClassifier(activities, fallback)
	require.NoError(t, err)

	first := c.Classify("faucet leak and busted light")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first.ActivityNameID, c.Classify("faucet leak and busted light").ActivityNameID)
	}
}
