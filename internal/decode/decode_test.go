package decode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerpilot/pkg/errors"
)

const fullPayload = `{
	"assessment": "Solid mid-level resume",
	"strengths": ["Go", "Kubernetes"],
	"weaknesses": ["No metrics"],
	"rewritten_bullets": ["Shipped X"],
	"job_titles": ["Backend Engineer"],
	"freelance_ideas": ["API consulting"],
	"keywords": ["golang", "grpc"],
	"rewritten_resume": "Jane Doe...",
	"bullet_resume": "- Jane Doe",
	"email_summary": "Experienced backend engineer."
}`

func TestAnalysisAllKeys(t *testing.T) {
	result, err := Analysis(fullPayload)
	require.NoError(t, err)
	assert.Equal(t, "Solid mid-level resume", result.Assessment)
	assert.Equal(t, []string{"Go", "Kubernetes"}, result.Strengths)
	assert.Equal(t, []string{"No metrics"}, result.Weaknesses)
	assert.Equal(t, []string{"Shipped X"}, result.RewrittenBullets)
	assert.Equal(t, []string{"Backend Engineer"}, result.JobTitles)
	assert.Equal(t, []string{"API consulting"}, result.FreelanceIdeas)
	assert.Equal(t, []string{"golang", "grpc"}, result.Keywords)
	assert.Equal(t, "Jane Doe...", result.RewrittenResume)
	assert.Equal(t, "- Jane Doe", result.BulletResume)
	assert.Equal(t, "Experienced backend engineer.", result.EmailSummary)
}

func TestAnalysisMissingKeysDefault(t *testing.T) {
	result, err := Analysis(`{"assessment": "short"}`)
	require.NoError(t, err)
	assert.Equal(t, "short", result.Assessment)
	assert.Empty(t, result.Strengths)
	assert.Empty(t, result.RewrittenResume)
	assert.Empty(t, result.Keywords)
}

func TestAnalysisIgnoresExtraKeys(t *testing.T) {
	result, err := Analysis(`{"assessment": "ok", "mood": "optimistic"}`)
	require.NoError(t, err)
	assert.Equal(t, "ok", result.Assessment)
}

func TestAnalysisRejectsMarkdownFences(t *testing.T) {
	raw := "```json\n{\"assessment\": \"ok\"}\n```"
	result, err := Analysis(raw)
	assert.Nil(t, result)

	var decodeErr *errors.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "malformed-json", decodeErr.Reason)
	assert.Equal(t, raw, decodeErr.Raw)
}

func TestAnalysisRejectsProse(t *testing.T) {
	raw := "Sure! Here is the JSON you asked for: {\"assessment\": \"ok\"}"
	_, err := Analysis(raw)

	var decodeErr *errors.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "malformed-json", decodeErr.Reason)
	assert.Equal(t, raw, decodeErr.Raw)
}

func TestAnalysisRejectsNonObject(t *testing.T) {
	_, err := Analysis(`["assessment"]`)

	var decodeErr *errors.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "malformed-json", decodeErr.Reason)
}

func TestAnalysisRejectsWrongFieldTypes(t *testing.T) {
	raw := `{"strengths": "should be a list"}`
	_, err := Analysis(raw)

	var decodeErr *errors.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "schema-mismatch", decodeErr.Reason)
	assert.Equal(t, raw, decodeErr.Raw)
}

func TestAnalysisToleratesSurroundingWhitespace(t *testing.T) {
	result, err := Analysis("  \n{\"assessment\": \"ok\"}\n  ")
	require.NoError(t, err)
	assert.Equal(t, "ok", result.Assessment)
}
