package speech

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// BuildPrompt assembles the model prompt: transcript, page schema, response
// format, processing rules, and page-appropriate examples.
func (r *resolver) BuildPrompt(transcript, page string) string {
	var b strings.Builder

	b.WriteString("You are an advanced AI assistant for the Brand Bloom business toolkit application. ")
	b.WriteString("Your job is to process voice commands and convert them into structured instructions for form filling, navigation, or tool execution.\n\n")

	fmt.Fprintf(&b, "**USER SPEECH:** %q\n", transcript)
	fmt.Fprintf(&b, "**CURRENT PAGE:** %s\n", page)
	fmt.Fprintf(&b, "**TIMESTAMP:** %s\n\n", time.Now().UTC().Format(time.RFC3339))

	b.WriteString("**PAGE CONTEXT:**\n")
	b.WriteString(r.pageContextJSON(page))
	b.WriteString("\n\n")

	b.WriteString("**TASK:** Analyze the user's speech and return a JSON response with precise instructions.\n\n")

	b.WriteString("**RESPONSE FORMAT (JSON only, no markdown):**\n")
	b.WriteString(`{
    "action": "fill_form" | "navigate" | "execute_tool" | "combination",
    "confidence": 0.0-1.0,
    "fields": {
        "fieldId": "extracted_value"
    },
    "navigation": "url_path_if_needed",
    "tool_execution": {
        "tool": "website|email|feedback|poster|sales",
        "auto_submit": true|false
    },
    "message": "user_friendly_confirmation_message",
    "reasoning": "brief_explanation_of_processing"
}`)
	b.WriteString("\n\n")

	b.WriteString(`**PROCESSING RULES:**

1. **Field Extraction:**
   - Extract business/entity names from patterns: "for [name]", "called [name]", "my [entity] is [name]"
   - Identify types from keywords (restaurant, business, marketing, promotional, etc.)
   - Map natural language to form field values using the field keywords provided
   - For select fields, choose the closest matching option from the available choices

2. **Confidence Scoring:**
   - 0.9-1.0: Clear, unambiguous commands with specific extractable information
   - 0.7-0.8: Good match with minor assumptions or partial information
   - 0.5-0.6: Reasonable interpretation but requires some guesswork
   - 0.0-0.4: Unclear or insufficient information

3. **Navigation Detection:**
   - Phrases like "go to", "open", "show", "navigate to" indicate navigation intent
   - Map tool names to correct URLs: website->/tools/website, email->/tools/email, etc.

4. **Auto-Submit Logic:**
   - Set auto_submit=true for feedback analysis requests
   - Set auto_submit=false for form filling that needs user review
`)
	b.WriteString("\n**EXAMPLES:**\n\n")
	b.WriteString(r.promptExamplesFor(page))

	b.WriteString("\nNow process the user's speech and provide the JSON response:\n")
	return b.String()
}

func (r *resolver) pageContextJSON(page string) string {
	ctx, ok := r.pages[page]
	if !ok {
		return "{}"
	}

	type fieldJSON struct {
		Type     FieldType           `json:"type"`
		Required bool                `json:"required,omitempty"`
		Options  []string            `json:"options,omitempty"`
		Keywords map[string][]string `json:"keywords,omitempty"`
	}
	doc := struct {
		Fields     map[string]fieldJSON `json:"fields"`
		AutoSubmit bool                 `json:"auto_submit"`
	}{
		Fields:     make(map[string]fieldJSON, len(ctx.Fields)),
		AutoSubmit: ctx.AutoSubmit,
	}
	for name, schema := range ctx.Fields {
		field := fieldJSON{Type: schema.Type, Required: schema.Required, Options: schema.Options}
		if len(schema.Keywords) > 0 {
			field.Keywords = make(map[string][]string, len(schema.Keywords))
			for _, kw := range schema.Keywords {
				field.Keywords[kw.Option] = kw.Triggers
			}
		}
		doc.Fields[name] = field
	}

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(raw)
}

const navigationExample = `Input: "Go to email tool"
Output:
{
    "action": "navigate",
    "confidence": 1.0,
    "navigation": "/tools/email",
    "message": "Navigating to email composer...",
    "reasoning": "Clear navigation command to email tool"
}
`

var pageExamples = map[string]string{
	"website": `Input: "Create a website for my pizza restaurant called Tony's Kitchen"
Output:
{
    "action": "fill_form",
    "confidence": 0.95,
    "fields": {
        "websiteType": "restaurant",
        "businessName": "Tony's Kitchen",
        "businessDescription": "A pizza restaurant",
        "targetAudience": "pizza lovers, families"
    },
    "tool_execution": {"tool": "website", "auto_submit": false},
    "message": "I've filled in your restaurant website details for Tony's Kitchen. Please review and generate when ready.",
    "reasoning": "Clear business type (restaurant) and name (Tony's Kitchen) extracted from speech"
}
`,
	"email": `Input: "Generate a professional marketing email for new customers"
Output:
{
    "action": "fill_form",
    "confidence": 0.9,
    "fields": {
        "emailType": "marketing",
        "recipientType": "customer",
        "emailTone": "professional",
        "emailPurpose": "welcome new customers"
    },
    "tool_execution": {"tool": "email", "auto_submit": false},
    "message": "I've configured your professional marketing email settings. Ready to generate your email.",
    "reasoning": "Email type (marketing), recipient (customers), and tone (professional) clearly specified"
}
`,
	"feedback": `Input: "Analyze this feedback: the service was really slow and staff seemed uninterested"
Output:
{
    "action": "fill_form",
    "confidence": 1.0,
    "fields": {
        "feedbackText": "the service was really slow and staff seemed uninterested"
    },
    "tool_execution": {"tool": "feedback", "auto_submit": true},
    "message": "Analyzing your feedback for sentiment and key insights...",
    "reasoning": "Direct feedback analysis request with clear feedback text provided"
}
`,
	"poster": `Input: "Make a poster for our grand opening called Fresh Start"
Output:
{
    "action": "fill_form",
    "confidence": 0.9,
    "fields": {
        "posterType": "event",
        "posterTitle": "Fresh Start",
        "posterDescription": "our grand opening"
    },
    "tool_execution": {"tool": "poster", "auto_submit": false},
    "message": "Poster configured for Fresh Start.",
    "reasoning": "Event poster with explicit title extracted from speech"
}
`,
}

func (r *resolver) promptExamplesFor(page string) string {
	var b strings.Builder
	if example, ok := pageExamples[page]; ok {
		b.WriteString(example)
		b.WriteString("\n")
	}
	b.WriteString(navigationExample)
	return b.String()
}
