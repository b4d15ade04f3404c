package speech_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPromptEmbedsTranscriptAndSchema(t *testing.T) {
	r := newTestResolver(t)

	prompt := r.BuildPrompt("Create a website for my bakery", "website")

	assert.Contains(t, prompt, `"Create a website for my bakery"`)
	assert.Contains(t, prompt, "**CURRENT PAGE:** website")
	assert.Contains(t, prompt, "businessName")
	assert.Contains(t, prompt, "websiteType")
	assert.Contains(t, prompt, "RESPONSE FORMAT")
}

func TestBuildPromptEmbedsKeywordSynonyms(t *testing.T) {
	r := newTestResolver(t)

	prompt := r.BuildPrompt("anything", "website")

	assert.Contains(t, prompt, "cozy")
	assert.Contains(t, prompt, "sleek")

	emailPrompt := r.BuildPrompt("anything", "email")
	assert.Contains(t, emailPrompt, "followup")
}

func TestBuildPromptIncludesPageExample(t *testing.T) {
	r := newTestResolver(t)

	websitePrompt := r.BuildPrompt("anything", "website")
	assert.Contains(t, websitePrompt, "Tony's Kitchen")

	feedbackPrompt := r.BuildPrompt("anything", "feedback")
	assert.Contains(t, feedbackPrompt, `"auto_submit": true`)

	for _, page := range r.SupportedPages() {
		assert.Contains(t, r.BuildPrompt("anything", page), "Go to email tool")
	}
}

func TestBuildPromptUnknownPageStillWellFormed(t *testing.T) {
	r := newTestResolver(t)

	prompt := r.BuildPrompt("hello", "nowhere")

	assert.Contains(t, prompt, "**CURRENT PAGE:** nowhere")
	assert.True(t, strings.Contains(prompt, "{}"))
	assert.Contains(t, prompt, "Go to email tool")
}
