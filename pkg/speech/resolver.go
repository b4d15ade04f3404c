package speech

import (
	"fmt"
	"strings"
)

const (
	confidenceNavigation   = 0.8
	confidencePageSpecific = 0.7
	confidenceGenericField = 0.6
	confidenceDefault      = 0.3

	defaultFallbackMessage = "Could not extract specific information from speech."
)

type resolver struct {
	config  ResolverConfig
	pages   map[string]PageContext
	domains []domainRules
}

// NewResolver builds a resolver with the built-in page schemas. Invalid
// config values fall back to the defaults.
func NewResolver(config ResolverConfig) IResolver {
	if config.SelectFallback != SelectFallbackFirstOption && config.SelectFallback != SelectFallbackReject {
		config.SelectFallback = SelectFallbackFirstOption
	}
	if config.DefaultConfidence <= 0 || config.DefaultConfidence > 1 {
		config.DefaultConfidence = DefaultResolverConfig().DefaultConfidence
	}
	return &resolver{
		config:  config,
		pages:   defaultPageContexts(),
		domains: domainRuleSets(),
	}
}

func (r *resolver) PageContextFor(page string) (PageContext, bool) {
	ctx, ok := r.pages[page]
	return ctx, ok
}

func (r *resolver) SupportedPages() []string {
	pages := make([]string, len(supportedPages))
	copy(pages, supportedPages)
	return pages
}

func (r *resolver) SupportedActions() []string {
	actions := make([]string, len(supportedActions))
	copy(actions, supportedActions)
	return actions
}

// ResolveWithPatterns resolves a transcript with the deterministic rule
// tiers: navigation, then tool-specific extraction, then generic field
// assignment, then a low-confidence default. It never fails.
func (r *resolver) ResolveWithPatterns(transcript, page string) (instruction *UIInstruction) {
	defer func() {
		if rec := recover(); rec != nil {
			instruction = r.defaultInstruction()
		}
	}()

	lowered := strings.ToLower(transcript)

	if nav := r.matchNavigation(lowered); nav != nil {
		return nav
	}
	if domain := r.matchDomains(transcript, lowered, page); domain != nil {
		return domain
	}
	if generic := r.matchGenericFields(transcript, page); generic != nil {
		return generic
	}
	return r.defaultInstruction()
}

func (r *resolver) matchNavigation(lowered string) *UIInstruction {
	for _, re := range navigationRegexes {
		m := re.FindStringSubmatch(lowered)
		if m == nil {
			continue
		}
		target := strings.TrimSpace(m[1])
		url, ok := navigationURLs[target]
		if !ok {
			continue
		}
		message := fmt.Sprintf("Navigating to %s page...", target)
		return NewNavigateInstruction(url, message, confidenceNavigation)
	}
	return nil
}

func (r *resolver) matchDomains(transcript, lowered, page string) *UIInstruction {
	for _, domain := range r.domains {
		if !domainApplies(domain, lowered, page) {
			continue
		}
		for _, rule := range domain.rules {
			m := rule.matcher.FindStringSubmatch(transcript)
			if m == nil {
				continue
			}
			fields := r.filterFields(rule.extract(m), domain.page)
			tool := &ToolExecution{Tool: domain.tool, AutoSubmit: domain.autoSubmit}
			return NewFillFormInstruction(fields, tool, domain.message(fields), confidencePageSpecific)
		}
	}
	return nil
}

func domainApplies(domain domainRules, lowered, page string) bool {
	if page == domain.page {
		return true
	}
	for _, keyword := range domain.keywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}

func (r *resolver) matchGenericFields(transcript, page string) *UIInstruction {
	for _, rule := range genericFieldRules {
		m := rule.matcher.FindStringSubmatch(transcript)
		if m == nil {
			continue
		}
		fields := r.filterFields(rule.extract(m), page)
		return NewFillFormInstruction(fields, nil, "Field filled from speech input.", confidenceGenericField)
	}
	return nil
}

func (r *resolver) defaultInstruction() *UIInstruction {
	return NewFillFormInstruction(nil, nil, defaultFallbackMessage, confidenceDefault)
}
