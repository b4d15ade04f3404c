package speech_test

import (
	"testing"

	"BrandBloom/pkg/speech"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool        { return &v }

func TestValidateAppliesDefaults(t *testing.T) {
	r := newTestResolver(t)

	instruction := r.Validate(&speech.ParsedInstruction{}, "website")

	assert.Equal(t, "fill_form", instruction.Action)
	assert.InDelta(t, 0.7, instruction.Confidence, 0.001)
	assert.NotNil(t, instruction.Fields)
	assert.Empty(t, instruction.Fields)
}

func TestValidateNilParsed(t *testing.T) {
	r := newTestResolver(t)

	instruction := r.Validate(nil, "website")

	require.NotNil(t, instruction)
	assert.Equal(t, "fill_form", instruction.Action)
}

func TestValidateClampsConfidence(t *testing.T) {
	r := newTestResolver(t)

	high := r.Validate(&speech.ParsedInstruction{Confidence: floatPtr(3.5)}, "website")
	assert.Equal(t, 1.0, high.Confidence)

	low := r.Validate(&speech.ParsedInstruction{Confidence: floatPtr(-0.2)}, "website")
	assert.Equal(t, 0.0, low.Confidence)
}

func TestValidateDropsUnknownFields(t *testing.T) {
	r := newTestResolver(t)

	instruction := r.Validate(&speech.ParsedInstruction{
		Action: "fill_form",
		Fields: map[string]interface{}{
			"businessName": "Acme",
			"madeUpField":  "nope",
		},
	}, "website")

	assert.Equal(t, "Acme", instruction.Fields["businessName"])
	assert.NotContains(t, instruction.Fields, "madeUpField")
}

func TestValidateDropsNonStringValues(t *testing.T) {
	r := newTestResolver(t)

	instruction := r.Validate(&speech.ParsedInstruction{
		Action: "fill_form",
		Fields: map[string]interface{}{
			"businessName": 42,
			"keyServices":  "catering",
		},
	}, "website")

	assert.NotContains(t, instruction.Fields, "businessName")
	assert.Equal(t, "catering", instruction.Fields["keyServices"])
}

func TestValidateSelectExactMatchIsCaseInsensitive(t *testing.T) {
	r := newTestResolver(t)

	instruction := r.Validate(&speech.ParsedInstruction{
		Action: "fill_form",
		Fields: map[string]interface{}{"websiteType": "Restaurant"},
	}, "website")

	assert.Equal(t, "restaurant", instruction.Fields["websiteType"])
}

func TestValidateSelectKeywordMatch(t *testing.T) {
	r := newTestResolver(t)

	instruction := r.Validate(&speech.ParsedInstruction{
		Action: "fill_form",
		Fields: map[string]interface{}{"colorScheme": "something sleek"},
	}, "website")

	assert.Equal(t, "modern", instruction.Fields["colorScheme"])
}

func TestValidateSelectFirstOptionFallback(t *testing.T) {
	r := newTestResolver(t)

	instruction := r.Validate(&speech.ParsedInstruction{
		Action: "fill_form",
		Fields: map[string]interface{}{"colorScheme": "purple-ish"},
	}, "website")

	assert.Equal(t, "professional", instruction.Fields["colorScheme"])
}

func TestValidateSelectRejectPolicyDropsField(t *testing.T) {
	config := speech.DefaultResolverConfig()
	config.SelectFallback = speech.SelectFallbackReject
	r := speech.NewResolver(config)

	instruction := r.Validate(&speech.ParsedInstruction{
		Action: "fill_form",
		Fields: map[string]interface{}{
			"colorScheme":  "purple-ish",
			"businessName": "Acme",
		},
	}, "website")

	assert.NotContains(t, instruction.Fields, "colorScheme")
	assert.Equal(t, "Acme", instruction.Fields["businessName"])
}

func TestValidateUnknownPageDropsAllFields(t *testing.T) {
	r := newTestResolver(t)

	instruction := r.Validate(&speech.ParsedInstruction{
		Action: "fill_form",
		Fields: map[string]interface{}{"businessName": "Acme"},
	}, "nowhere")

	assert.Empty(t, instruction.Fields)
}

func TestValidateAutoSubmitDefaults(t *testing.T) {
	r := newTestResolver(t)

	feedback := r.Validate(&speech.ParsedInstruction{
		Action:        "execute_tool",
		ToolExecution: &speech.ParsedToolExecution{Tool: "feedback"},
	}, "feedback")
	require.NotNil(t, feedback.ToolExecution)
	assert.True(t, feedback.ToolExecution.AutoSubmit)

	website := r.Validate(&speech.ParsedInstruction{
		Action:        "execute_tool",
		ToolExecution: &speech.ParsedToolExecution{Tool: "website"},
	}, "website")
	require.NotNil(t, website.ToolExecution)
	assert.False(t, website.ToolExecution.AutoSubmit)

	explicit := r.Validate(&speech.ParsedInstruction{
		Action:        "execute_tool",
		ToolExecution: &speech.ParsedToolExecution{Tool: "feedback", AutoSubmit: boolPtr(false)},
	}, "feedback")
	require.NotNil(t, explicit.ToolExecution)
	assert.False(t, explicit.ToolExecution.AutoSubmit)
}

func TestValidatePassesThroughNavigationAndDiagnostics(t *testing.T) {
	r := newTestResolver(t)

	instruction := r.Validate(&speech.ParsedInstruction{
		Action:     "navigate",
		Navigation: "/tools/email",
		Message:    "Navigating to email composer...",
		Reasoning:  "navigation command",
		Confidence: floatPtr(0.95),
	}, "dashboard")

	assert.Equal(t, "navigate", instruction.Action)
	assert.Equal(t, "/tools/email", instruction.Navigation)
	assert.Equal(t, "Navigating to email composer...", instruction.Message)
	assert.Equal(t, "navigation command", instruction.Reasoning)
	assert.InDelta(t, 0.95, instruction.Confidence, 0.001)
}
