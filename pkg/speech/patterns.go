package speech

import (
	"fmt"
	"regexp"
	"strings"
)

// patternRule pairs a compiled regex with a pure extractor over its
// submatches. Extractors never touch shared state, so rules are safe to
// evaluate concurrently.
type patternRule struct {
	matcher *regexp.Regexp
	extract func(m []string) map[string]string
}

// domainRules groups the rules for one tool page. A domain applies when the
// current page matches or one of its keywords appears in the transcript.
type domainRules struct {
	page       string
	tool       string
	keywords   []string
	autoSubmit bool
	rules      []patternRule
	message    func(fields map[string]string) string
}

var navigationRegexes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:go to|open|show|navigate to|switch to)\s+(website|email|feedback|poster|sales|dashboard|profile)`),
	regexp.MustCompile(`(?i)(?:show me|open)\s+the\s+([\w\s]+?)\s+(?:tool|page)`),
}

// websiteTypeClassifiers is evaluated in order; the first option whose
// trigger appears in the description wins.
var websiteTypeClassifiers = []OptionTriggers{
	{Option: "restaurant", Triggers: []string{"restaurant", "cafe", "food", "dining"}},
	{Option: "business", Triggers: []string{"business", "company", "corporate"}},
	{Option: "portfolio", Triggers: []string{"portfolio", "personal"}},
	{Option: "ecommerce", Triggers: []string{"shop", "store", "ecommerce"}},
	{Option: "services", Triggers: []string{"service", "consulting"}},
}

func classifyByTriggers(value string, classifiers []OptionTriggers) (string, bool) {
	lowered := strings.ToLower(value)
	for _, c := range classifiers {
		for _, trigger := range c.Triggers {
			if strings.Contains(lowered, trigger) {
				return c.Option, true
			}
		}
	}
	return "", false
}

func extractWebsiteInfo(m []string) map[string]string {
	fields := map[string]string{}

	desc := strings.TrimSpace(m[1])
	if len(m) > 2 && m[2] != "" {
		fields["businessName"] = strings.TrimSpace(m[2])
	}
	if websiteType, ok := classifyByTriggers(desc, websiteTypeClassifiers); ok {
		fields["websiteType"] = websiteType
	}
	fields["businessDescription"] = desc
	return fields
}

func extractWebsiteTypeInfo(m []string) map[string]string {
	websiteType := strings.ToLower(strings.TrimSpace(m[1]))
	fields := map[string]string{
		"businessDescription": strings.TrimSpace(m[2]),
	}

	switch {
	case strings.Contains(websiteType, "restaurant") || strings.Contains(websiteType, "food"):
		fields["websiteType"] = "restaurant"
	case strings.Contains(websiteType, "business") || strings.Contains(websiteType, "corporate"):
		fields["websiteType"] = "business"
	case strings.Contains(websiteType, "portfolio") || strings.Contains(websiteType, "personal"):
		fields["websiteType"] = "portfolio"
	}
	return fields
}

func extractEmailInfo(m []string) map[string]string {
	emailType := strings.ToLower(strings.TrimSpace(m[1]))
	recipient := strings.ToLower(strings.TrimSpace(m[2]))

	fields := map[string]string{}
	switch {
	case strings.Contains(emailType, "marketing") || strings.Contains(emailType, "promotional"):
		fields["emailType"] = "marketing"
	case strings.Contains(emailType, "support") || strings.Contains(emailType, "service"):
		fields["emailType"] = "customer_service"
	case strings.Contains(emailType, "thank"):
		fields["emailType"] = "thank_you"
	}

	switch {
	case strings.Contains(recipient, "customer"):
		fields["recipientType"] = "customer"
	case strings.Contains(recipient, "prospect") || strings.Contains(recipient, "potential"):
		fields["recipientType"] = "prospect"
	}

	if fields["emailType"] == "marketing" {
		fields["emailTone"] = "friendly"
	} else {
		fields["emailTone"] = "professional"
	}
	return fields
}

func extractEmailPurpose(m []string) map[string]string {
	return map[string]string{
		"emailPurpose": strings.TrimSpace(m[1]),
		"emailType":    "announcement",
		"emailTone":    "professional",
	}
}

func extractFeedbackText(m []string) map[string]string {
	return map[string]string{"feedbackText": strings.TrimSpace(m[1])}
}

func extractPosterInfo(m []string) map[string]string {
	purpose := strings.TrimSpace(m[1])
	fields := map[string]string{
		"posterDescription": purpose,
	}
	if len(m) > 2 && m[2] != "" {
		fields["posterTitle"] = strings.TrimSpace(m[2])
	}

	lowered := strings.ToLower(purpose)
	switch {
	case strings.Contains(lowered, "sale") || strings.Contains(lowered, "promotion"):
		fields["posterType"] = "promotional"
	case strings.Contains(lowered, "event") || strings.Contains(lowered, "opening"):
		fields["posterType"] = "event"
	case strings.Contains(lowered, "product"):
		fields["posterType"] = "product"
	}
	return fields
}

func extractPosterTypeInfo(m []string) map[string]string {
	posterType := strings.ToLower(strings.TrimSpace(m[1]))
	fields := map[string]string{}

	switch {
	case strings.Contains(posterType, "promotional") || strings.Contains(posterType, "sale"):
		fields["posterType"] = "promotional"
		fields["posterTitle"] = "Special Promotion"
	case strings.Contains(posterType, "event"):
		fields["posterType"] = "event"
		fields["posterTitle"] = "Special Event"
	}

	if len(m) > 2 && m[2] != "" {
		fields["businessName"] = strings.TrimSpace(m[2])
	}
	return fields
}

func normalizeFieldName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := fieldNameSynonyms[name]; ok {
		return canonical
	}
	return strings.ReplaceAll(name, " ", "")
}

func extractFieldAssignment(m []string) map[string]string {
	return map[string]string{
		normalizeFieldName(m[1]): strings.TrimSpace(m[2]),
	}
}

var genericFieldRules = []patternRule{
	{
		matcher: regexp.MustCompile(`(?i)(?:fill|enter|set)\s+(.+?)\s+(?:with|to|as)\s+(.+)`),
		extract: extractFieldAssignment,
	},
	{
		matcher: regexp.MustCompile(`(?i)(?:my\s+)?(.+?)\s+is\s+(.+)`),
		extract: extractFieldAssignment,
	},
}

// domainRuleSets returns the tool-specific rules in precedence order.
func domainRuleSets() []domainRules {
	return []domainRules{
		{
			page:     "website",
			tool:     "website",
			keywords: []string{"website", "site"},
			rules: []patternRule{
				{
					matcher: regexp.MustCompile(`(?i)(?:create|make|build|generate)\s+(?:a\s+)?website\s+for\s+(.+?)(?:\s+(?:called|named)\s+(.+?))?(?:\.|$)`),
					extract: extractWebsiteInfo,
				},
				{
					matcher: regexp.MustCompile(`(?i)(?:i want|i need)\s+(?:a\s+)?(.+?)\s+website\s+for\s+(.+?)(?:\.|$)`),
					extract: extractWebsiteTypeInfo,
				},
			},
			message: func(fields map[string]string) string {
				name := fields["businessName"]
				if name == "" {
					name = "your business"
				}
				return fmt.Sprintf("Website form configured for %s.", name)
			},
		},
		{
			page:     "email",
			tool:     "email",
			keywords: []string{"email", "mail"},
			rules: []patternRule{
				{
					matcher: regexp.MustCompile(`(?i)(?:create|generate|draft|write)\s+(?:a\s+)?(.+?)\s+email\s+(?:for|to)\s+(.+?)(?:\.|$)`),
					extract: extractEmailInfo,
				},
				{
					matcher: regexp.MustCompile(`(?i)(?:send|write)\s+(?:an?\s+)?email\s+(?:about|regarding)\s+(.+?)(?:\.|$)`),
					extract: extractEmailPurpose,
				},
			},
			message: func(map[string]string) string {
				return "Email form configured from your speech."
			},
		},
		{
			page:       "feedback",
			tool:       "feedback",
			keywords:   []string{"feedback", "review", "analyze"},
			autoSubmit: true,
			rules: []patternRule{
				{
					matcher: regexp.MustCompile(`(?i)(?:analyze|check|review)\s+(?:this\s+)?feedback[:\s]+(.+)`),
					extract: extractFeedbackText,
				},
				{
					matcher: regexp.MustCompile(`(?i)(?:sentiment|analysis|analyze)[:\s]+(.+)`),
					extract: extractFeedbackText,
				},
			},
			message: func(map[string]string) string {
				return "Analyzing feedback from your speech..."
			},
		},
		{
			page:     "poster",
			tool:     "poster",
			keywords: []string{"poster", "flyer"},
			rules: []patternRule{
				{
					matcher: regexp.MustCompile(`(?i)(?:create|make|design)\s+(?:a\s+)?poster\s+for\s+(.+?)(?:\s+(?:called|titled)\s+(.+?))?(?:\.|$)`),
					extract: extractPosterInfo,
				},
				{
					matcher: regexp.MustCompile(`(?i)(?:make|create)\s+(?:a\s+)?(.+?)\s+poster(?:\s+for\s+(.+?))?(?:\.|$)`),
					extract: extractPosterTypeInfo,
				},
			},
			message: func(fields map[string]string) string {
				title := fields["posterTitle"]
				if title == "" {
					title = "your event"
				}
				return fmt.Sprintf("Poster configured for %s.", title)
			},
		},
	}
}
