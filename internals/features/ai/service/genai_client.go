// internals/features/ai/service/genai_client.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

var (
	aiClient *genai.Client
	aiModel  string
)

// ErrNotInitialized is returned when generation is requested before InitGenAI.
var ErrNotInitialized = errors.New("genai client not initialized")

// InitGenAI initializes the shared GenAI client with the provider API key.
func InitGenAI(apiKey, model string) error {
	if apiKey == "" {
		return errors.New("GenAI API key is required")
	}
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return fmt.Errorf("failed to create GenAI client: %w", err)
	}
	aiClient = client
	aiModel = model
	return nil
}

// ModelName reports the configured generation model.
func ModelName() string { return aiModel }

// GenerateWarDescription produces a one-paragraph work description for a WAR
// from its activity label, unit and assigned personnel.
func GenerateWarDescription(ctx context.Context, activityLabel, unitName string, personnelNames []string) (string, error) {
	if aiClient == nil {
		return "", ErrNotInitialized
	}

	var b strings.Builder
	b.WriteString("Write a single concise paragraph describing completed government facility work.\n")
	b.WriteString(fmt.Sprintf("Activity: %s\n", activityLabel))
	if unitName != "" {
		b.WriteString(fmt.Sprintf("Unit: %s\n", unitName))
	}
	if len(personnelNames) > 0 {
		b.WriteString(fmt.Sprintf("Personnel: %s\n", strings.Join(personnelNames, ", ")))
	}
	b.WriteString("Use plain factual language suitable for an accomplishment report. No preamble.")

	return generate(ctx, b.String())
}

// GenerateIpmtSummary condenses the descriptions of several WARs into one
// accomplishment statement for the given success indicator.
func GenerateIpmtSummary(ctx context.Context, indicatorCode string, descriptions []string) (string, error) {
	if aiClient == nil {
		return "", ErrNotInitialized
	}

	var b strings.Builder
	b.WriteString("Summarize the following completed work items into one accomplishment statement")
	if indicatorCode != "" {
		b.WriteString(fmt.Sprintf(" for success indicator %s", indicatorCode))
	}
	b.WriteString(":\n")
	for _, d := range descriptions {
		d = strings.TrimSpace(d)
		if d != "" {
			b.WriteString("- " + d + "\n")
		}
	}
	b.WriteString("One or two sentences, plain factual language. No preamble.")

	return generate(ctx, b.String())
}

func generate(ctx context.Context, prompt string) (string, error) {
	resp, err := aiClient.Models.GenerateContent(ctx, aiModel, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("GenAI generation failed: %w", err)
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", errors.New("GenAI returned empty text")
	}
	return text, nil
}
