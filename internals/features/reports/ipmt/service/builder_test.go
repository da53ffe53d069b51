package service

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	indicatorModel "gso_backend/internals/features/reports/indicators/model"
	warModel "gso_backend/internals/features/reports/war/model"
)

func testBuilder(summarize func(ctx context.Context, code string, descriptions []string) (string, error)) *BuilderService {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return &BuilderService{Summarize: summarize, log: log}
}

func TestBuildOrUpdateRejectsMissingInput(t *testing.T) {
	s := testBuilder(nil)

	_, err := s.BuildOrUpdate(context.Background(), "", "Carpentry", []string{"Juan"}, []RowInput{{Indicator: "CF1"}})
	assert.ErrorIs(t, err, ErrMissingInput)

	_, err = s.BuildOrUpdate(context.Background(), "2024-07", " ", []string{"Juan"}, []RowInput{{Indicator: "CF1"}})
	assert.ErrorIs(t, err, ErrMissingInput)

	_, err = s.BuildOrUpdate(context.Background(), "2024-07", "Carpentry", nil, []RowInput{{Indicator: "CF1"}})
	assert.ErrorIs(t, err, ErrMissingInput)

	_, err = s.BuildOrUpdate(context.Background(), "2024-07", "Carpentry", []string{"Juan"}, nil)
	assert.ErrorIs(t, err, ErrMissingInput)
}

func TestResolveAccomplishmentPrecedence(t *testing.T) {
	s := testBuilder(func(ctx context.Context, code string, descriptions []string) (string, error) {
		t.Fatal("summarizer must not run when an explicit text is present")
		return "", nil
	})
	ind := &indicatorModel.SuccessIndicatorModel{IndicatorCode: "CF1"}
	wars := []warModel.WarModel{{WarDescription: "road repair"}}

	// description outranks accomplishment
	got := s.resolveAccomplishment(context.Background(), ind, RowInput{
		Description:    "explicit description",
		Accomplishment: "alternate text",
	}, wars)
	assert.Equal(t, "explicit description", got)

	// accomplishment outranks the generated summary
	got = s.resolveAccomplishment(context.Background(), ind, RowInput{
		Accomplishment: "alternate text",
	}, wars)
	assert.Equal(t, "alternate text", got)
}

func TestResolveAccomplishmentSummarizesMatchedWars(t *testing.T) {
	var gotCode string
	var gotDescriptions []string
	s := testBuilder(func(ctx context.Context, code string, descriptions []string) (string, error) {
		gotCode = code
		gotDescriptions = descriptions
		return "summarized text", nil
	})
	ind := &indicatorModel.SuccessIndicatorModel{IndicatorCode: "CF1"}
	wars := []warModel.WarModel{
		{WarDescription: "road repair at site A"},
		{WarDescription: "  "},
		{WarDescription: "road repair at site B"},
	}

	got := s.resolveAccomplishment(context.Background(), ind, RowInput{}, wars)
	assert.Equal(t, "summarized text", got)
	assert.Equal(t, "CF1", gotCode)
	assert.Equal(t, []string{"road repair at site A", "road repair at site B"}, gotDescriptions)
}

func TestResolveAccomplishmentSummarizerFailureSurfacesInline(t *testing.T) {
	s := testBuilder(func(ctx context.Context, code string, descriptions []string) (string, error) {
		return "", errors.New("quota exceeded")
	})
	ind := &indicatorModel.SuccessIndicatorModel{IndicatorCode: "CF1"}
	wars := []warModel.WarModel{{WarDescription: "road repair"}}

	got := s.resolveAccomplishment(context.Background(), ind, RowInput{}, wars)
	assert.Equal(t, "Error generating summary: quota exceeded", got)
}

func TestResolveAccomplishmentEmptyWhenNothingToSummarize(t *testing.T) {
	s := testBuilder(func(ctx context.Context, code string, descriptions []string) (string, error) {
		t.Fatal("summarizer must not run without descriptions")
		return "", nil
	})
	ind := &indicatorModel.SuccessIndicatorModel{IndicatorCode: "CF1"}

	assert.Equal(t, "", s.resolveAccomplishment(context.Background(), ind, RowInput{}, nil))
	assert.Equal(t, "", s.resolveAccomplishment(context.Background(), ind, RowInput{}, []warModel.WarModel{{WarDescription: "   "}}))
}
