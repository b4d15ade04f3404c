package speech

import "strings"

// Validate normalizes a model-produced instruction against the page schema:
// missing action and confidence get defaults, confidence is clamped to
// [0, 1], unknown field keys are dropped, and select values are coerced to
// declared options.
func (r *resolver) Validate(parsed *ParsedInstruction, page string) *UIInstruction {
	if parsed == nil {
		parsed = &ParsedInstruction{}
	}

	action := parsed.Action
	if action == "" {
		action = ActionFillForm
	}

	confidence := r.config.DefaultConfidence
	if parsed.Confidence != nil {
		confidence = clampConfidence(*parsed.Confidence)
	}

	instruction := &UIInstruction{
		Action:     action,
		Message:    parsed.Message,
		Confidence: confidence,
		Reasoning:  parsed.Reasoning,
		Navigation: parsed.Navigation,
	}

	if parsed.Fields != nil {
		instruction.Fields = r.filterFields(stringFields(parsed.Fields), page)
	}
	if action == ActionFillForm && instruction.Fields == nil {
		instruction.Fields = map[string]string{}
	}

	if parsed.ToolExecution != nil {
		autoSubmit := false
		if parsed.ToolExecution.AutoSubmit != nil {
			autoSubmit = *parsed.ToolExecution.AutoSubmit
		} else if ctx, ok := r.pages[page]; ok {
			autoSubmit = ctx.AutoSubmit
		}
		instruction.ToolExecution = &ToolExecution{
			Tool:       parsed.ToolExecution.Tool,
			AutoSubmit: autoSubmit,
		}
	}

	return instruction
}

// stringFields keeps only string-valued entries.
func stringFields(raw map[string]interface{}) map[string]string {
	fields := make(map[string]string, len(raw))
	for key, value := range raw {
		if s, ok := value.(string); ok {
			fields[key] = s
		}
	}
	return fields
}

// filterFields drops keys absent from the page schema and coerces select
// values. An unknown page has no schema, so every field is dropped.
func (r *resolver) filterFields(fields map[string]string, page string) map[string]string {
	valid := map[string]string{}
	ctx, ok := r.pages[page]
	if !ok {
		return valid
	}

	for key, value := range fields {
		schema, known := ctx.Fields[key]
		if !known {
			continue
		}
		if schema.Type == FieldSelect {
			resolved, keep := r.resolveSelectValue(value, schema)
			if !keep {
				continue
			}
			value = resolved
		}
		valid[key] = value
	}
	return valid
}

// resolveSelectValue maps a free-form value onto a declared option: exact
// match first, then keyword triggers, then the configured fallback policy.
func (r *resolver) resolveSelectValue(value string, schema FieldSchema) (string, bool) {
	lowered := strings.ToLower(value)

	for _, option := range schema.Options {
		if strings.ToLower(option) == lowered {
			return option, true
		}
	}

	for _, kw := range schema.Keywords {
		if !containsOption(schema.Options, kw.Option) {
			continue
		}
		for _, trigger := range kw.Triggers {
			if strings.Contains(lowered, trigger) {
				return kw.Option, true
			}
		}
	}

	if r.config.SelectFallback == SelectFallbackReject {
		return "", false
	}
	if len(schema.Options) > 0 {
		return schema.Options[0], true
	}
	return value, true
}

func containsOption(options []string, option string) bool {
	for _, o := range options {
		if o == option {
			return true
		}
	}
	return false
}

func clampConfidence(confidence float64) float64 {
	if confidence < 0 {
		return 0
	}
	if confidence > 1 {
		return 1
	}
	return confidence
}
