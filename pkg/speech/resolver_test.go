package speech_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"BrandBloom/pkg/speech"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResolver(t *testing.T) speech.IResolver {
	t.Helper()
	return speech.NewResolver(speech.DefaultResolverConfig())
}

func TestResolveWithPatternsNeverFails(t *testing.T) {
	r := newTestResolver(t)

	pages := append(r.SupportedPages(), "unknown", "")
	transcripts := []string{
		"",
		"gibberish with no intent at all",
		"create a website for my pizza restaurant called Tony's",
		"go to email tool",
		"analyze this feedback: great service",
		"fill business name with Acme",
		"make a promotional poster",
		"!!! ??? ###",
	}

	for _, page := range pages {
		for _, transcript := range transcripts {
			instruction := r.ResolveWithPatterns(transcript, page)
			require.NotNil(t, instruction, "page=%q transcript=%q", page, transcript)
			assert.GreaterOrEqual(t, instruction.Confidence, 0.0)
			assert.LessOrEqual(t, instruction.Confidence, 1.0)
			assert.NotEmpty(t, instruction.Action)
		}
	}
}

func TestResolveWithPatternsFieldKeysStayInSchema(t *testing.T) {
	r := newTestResolver(t)

	transcripts := []string{
		"create a website for my pizza restaurant called Tony's",
		"generate a marketing email for customers",
		"analyze this feedback: slow delivery",
		"make a poster for grand opening",
		"fill business name with Acme",
		"my favorite color is blue",
	}

	for _, page := range r.SupportedPages() {
		ctx, ok := r.PageContextFor(page)
		require.True(t, ok)
		for _, transcript := range transcripts {
			instruction := r.ResolveWithPatterns(transcript, page)
			if instruction.Action != "fill_form" || instruction.ToolExecution != nil {
				continue
			}
			for key := range instruction.Fields {
				_, known := ctx.Fields[key]
				assert.True(t, known, "page=%q transcript=%q leaked key %q", page, transcript, key)
			}
		}
	}
}

func TestResolveWithPatternsIsDeterministic(t *testing.T) {
	r := newTestResolver(t)

	transcript := "create a website for my cozy cafe called Bean There"
	first := r.ResolveWithPatterns(transcript, "website")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, r.ResolveWithPatterns(transcript, "website"), "iteration %d", i)
	}
}

func TestWebsiteCreationExtraction(t *testing.T) {
	r := newTestResolver(t)

	instruction := r.ResolveWithPatterns("Create a website for my pizza restaurant called Tony's", "website")

	assert.Equal(t, "fill_form", instruction.Action)
	assert.Equal(t, "restaurant", instruction.Fields["websiteType"])
	assert.Equal(t, "Tony's", instruction.Fields["businessName"])
	assert.Equal(t, "my pizza restaurant", instruction.Fields["businessDescription"])
	require.NotNil(t, instruction.ToolExecution)
	assert.Equal(t, "website", instruction.ToolExecution.Tool)
	assert.False(t, instruction.ToolExecution.AutoSubmit)
	assert.InDelta(t, 0.7, instruction.Confidence, 0.001)
}

func TestWebsiteCreationWithoutName(t *testing.T) {
	r := newTestResolver(t)

	instruction := r.ResolveWithPatterns("Build a website for my consulting company", "website")

	assert.Equal(t, "fill_form", instruction.Action)
	assert.NotContains(t, instruction.Fields, "businessName")
	assert.Equal(t, "my consulting company", instruction.Fields["businessDescription"])
	assert.Equal(t, "Website form configured for your business.", instruction.Message)
}

func TestNavigationTakesPrecedence(t *testing.T) {
	r := newTestResolver(t)

	instruction := r.ResolveWithPatterns("go to email tool", "dashboard")

	assert.Equal(t, "navigate", instruction.Action)
	assert.Equal(t, "/tools/email", instruction.Navigation)
	assert.InDelta(t, 0.8, instruction.Confidence, 0.001)
}

func TestNavigationTable(t *testing.T) {
	r := newTestResolver(t)

	cases := []struct {
		transcript string
		url        string
	}{
		{"go to website", "/tools/website"},
		{"open email", "/tools/email"},
		{"navigate to feedback", "/tools/feedback"},
		{"switch to poster", "/tools/poster"},
		{"show sales", "/tools/sales"},
		{"go to dashboard", "/dashboard"},
		{"open profile", "/profile"},
		{"show me the website tool", "/tools/website"},
	}

	for _, tc := range cases {
		t.Run(tc.transcript, func(t *testing.T) {
			instruction := r.ResolveWithPatterns(tc.transcript, "dashboard")
			assert.Equal(t, "navigate", instruction.Action)
			assert.Equal(t, tc.url, instruction.Navigation)
		})
	}
}

func TestUnknownNavigationTargetFallsThrough(t *testing.T) {
	r := newTestResolver(t)

	instruction := r.ResolveWithPatterns("open the magic page", "dashboard")

	assert.NotEqual(t, "navigate", instruction.Action)
	assert.InDelta(t, 0.3, instruction.Confidence, 0.001)
}

func TestFeedbackAlwaysAutoSubmits(t *testing.T) {
	r := newTestResolver(t)

	for _, page := range []string{"feedback", "dashboard"} {
		instruction := r.ResolveWithPatterns("analyze this feedback: great food but slow service", page)
		require.NotNil(t, instruction.ToolExecution, "page=%q", page)
		assert.Equal(t, "feedback", instruction.ToolExecution.Tool)
		assert.True(t, instruction.ToolExecution.AutoSubmit)
	}
}

func TestFeedbackTextExtraction(t *testing.T) {
	r := newTestResolver(t)

	instruction := r.ResolveWithPatterns("analyze this feedback: great food but slow service", "feedback")

	assert.Equal(t, "great food but slow service", instruction.Fields["feedbackText"])
	assert.Equal(t, "Analyzing feedback from your speech...", instruction.Message)
}

func TestEmailExtractionSetsToneDefaults(t *testing.T) {
	r := newTestResolver(t)

	marketing := r.ResolveWithPatterns("generate a marketing email for customers", "email")
	assert.Equal(t, "marketing", marketing.Fields["emailType"])
	assert.Equal(t, "customer", marketing.Fields["recipientType"])
	assert.Equal(t, "friendly", marketing.Fields["emailTone"])

	support := r.ResolveWithPatterns("write a support email for customers", "email")
	assert.Equal(t, "customer_service", support.Fields["emailType"])
	assert.Equal(t, "professional", support.Fields["emailTone"])
}

func TestPosterExtraction(t *testing.T) {
	r := newTestResolver(t)

	instruction := r.ResolveWithPatterns("create a poster for our grand opening called Fresh Start", "poster")

	assert.Equal(t, "event", instruction.Fields["posterType"])
	assert.Equal(t, "Fresh Start", instruction.Fields["posterTitle"])
	assert.Equal(t, "our grand opening", instruction.Fields["posterDescription"])
	require.NotNil(t, instruction.ToolExecution)
	assert.Equal(t, "poster", instruction.ToolExecution.Tool)
	assert.Equal(t, "Poster configured for Fresh Start.", instruction.Message)
}

func TestGenericFieldFill(t *testing.T) {
	r := newTestResolver(t)

	instruction := r.ResolveWithPatterns("fill business name with Tech Solutions Inc", "website")

	assert.Equal(t, "fill_form", instruction.Action)
	assert.Equal(t, "Tech Solutions Inc", instruction.Fields["businessName"])
	assert.Nil(t, instruction.ToolExecution)
	assert.InDelta(t, 0.6, instruction.Confidence, 0.001)
}

func TestGenericFieldFillOnUnknownPageKeepsNoFields(t *testing.T) {
	r := newTestResolver(t)

	instruction := r.ResolveWithPatterns("fill business name with Tech Solutions Inc", "nowhere")

	assert.Equal(t, "fill_form", instruction.Action)
	assert.Empty(t, instruction.Fields)
}

func TestDefaultInstructionKeepsFieldsKeyOnWire(t *testing.T) {
	r := newTestResolver(t)

	instruction := r.ResolveWithPatterns("completely unrelated mumbling", "dashboard")

	raw, err := json.Marshal(instruction)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"fields":{}`)
}

func TestCrossPageDomainMatchFiltersAgainstDomainSchema(t *testing.T) {
	r := newTestResolver(t)

	instruction := r.ResolveWithPatterns("create a website for my cafe", "dashboard")

	require.NotNil(t, instruction.ToolExecution)
	assert.Equal(t, "website", instruction.ToolExecution.Tool)

	websiteCtx, ok := r.PageContextFor("website")
	require.True(t, ok)
	require.NotEmpty(t, instruction.Fields)
	for key := range instruction.Fields {
		_, known := websiteCtx.Fields[key]
		assert.True(t, known, "leaked key %q", key)
	}
}

func TestDefaultInstructionWhenNothingMatches(t *testing.T) {
	r := newTestResolver(t)

	instruction := r.ResolveWithPatterns("completely unrelated mumbling", "dashboard")

	assert.Equal(t, "fill_form", instruction.Action)
	assert.Empty(t, instruction.Fields)
	assert.InDelta(t, 0.3, instruction.Confidence, 0.001)
	assert.Equal(t, "Could not extract specific information from speech.", instruction.Message)
}

func TestSupportedPagesAndActions(t *testing.T) {
	r := newTestResolver(t)

	assert.Equal(t, []string{"website", "email", "feedback", "poster", "sales", "dashboard"}, r.SupportedPages())
	assert.Contains(t, r.SupportedActions(), "fill_form")
	assert.Contains(t, r.SupportedActions(), "navigate")

	for _, page := range r.SupportedPages() {
		_, ok := r.PageContextFor(page)
		assert.True(t, ok, fmt.Sprintf("missing context for %s", page))
	}
}
