package speech

const (
	ActionFillForm    = "fill_form"
	ActionNavigate    = "navigate"
	ActionExecuteTool = "execute_tool"
	ActionCombination = "combination"
	ActionError       = "error"
)

const (
	ProcessedByGemini   = "gemini"
	ProcessedByFallback = "fallback"
)

type FieldType string

const (
	FieldText     FieldType = "text"
	FieldTextarea FieldType = "textarea"
	FieldSelect   FieldType = "select"
)

type SelectFallbackPolicy string

const (
	// SelectFallbackFirstOption maps unrecognized select values to the first
	// declared option for the field.
	SelectFallbackFirstOption SelectFallbackPolicy = "first_option"
	// SelectFallbackReject drops the field instead.
	SelectFallbackReject SelectFallbackPolicy = "reject"
)

type ToolExecution struct {
	Tool       string `json:"tool"`
	AutoSubmit bool   `json:"auto_submit"`
}

// UIInstruction tells the host UI what to fill, where to navigate, or which
// tool to run for a single spoken command. Build one through the action
// constructors below; each action carries only the fields that make sense
// for it.
type UIInstruction struct {
	Action        string            `json:"action"`
	Fields        map[string]string `json:"fields"`
	Navigation    string            `json:"navigation,omitempty"`
	ToolExecution *ToolExecution    `json:"tool_execution,omitempty"`
	Message       string            `json:"message"`
	Confidence    float64           `json:"confidence"`
	Reasoning     string            `json:"reasoning,omitempty"`
	ProcessedBy   string            `json:"processed_by,omitempty"`
	ProcessedAt   string            `json:"processed_at,omitempty"`
}

func NewFillFormInstruction(fields map[string]string, tool *ToolExecution, message string, confidence float64) *UIInstruction {
	if fields == nil {
		fields = map[string]string{}
	}
	return &UIInstruction{
		Action:        ActionFillForm,
		Fields:        fields,
		ToolExecution: tool,
		Message:       message,
		Confidence:    confidence,
	}
}

func NewNavigateInstruction(url, message string, confidence float64) *UIInstruction {
	return &UIInstruction{
		Action:     ActionNavigate,
		Navigation: url,
		Message:    message,
		Confidence: confidence,
	}
}

func NewExecuteToolInstruction(tool *ToolExecution, message string, confidence float64) *UIInstruction {
	return &UIInstruction{
		Action:        ActionExecuteTool,
		ToolExecution: tool,
		Message:       message,
		Confidence:    confidence,
	}
}

func NewErrorInstruction(message string) *UIInstruction {
	return &UIInstruction{
		Action:     ActionError,
		Message:    message,
		Confidence: 0.0,
	}
}

// OptionTriggers associates a select option with the ordered trigger words
// that map free-form values onto it. Order matters: the first option whose
// trigger appears in the supplied value wins.
type OptionTriggers struct {
	Option   string
	Triggers []string
}

type FieldSchema struct {
	Type     FieldType
	Required bool
	Options  []string
	Keywords []OptionTriggers
}

// PageContext is the static, read-only schema of a single page: which form
// fields it accepts and whether tool execution auto-submits by default.
// Contexts are built once at startup and never mutated, so they are safe to
// share between requests.
type PageContext struct {
	Fields     map[string]FieldSchema
	AutoSubmit bool
}

// ParsedInstruction mirrors the JSON object the generative model is asked to
// return. Optional members are pointers so the validator can tell "absent"
// from "zero" and apply page defaults.
type ParsedInstruction struct {
	Action        string                 `json:"action"`
	Confidence    *float64               `json:"confidence"`
	Fields        map[string]interface{} `json:"fields"`
	Navigation    string                 `json:"navigation"`
	ToolExecution *ParsedToolExecution   `json:"tool_execution"`
	Message       string                 `json:"message"`
	Reasoning     string                 `json:"reasoning"`
}

type ParsedToolExecution struct {
	Tool       string `json:"tool"`
	AutoSubmit *bool  `json:"auto_submit"`
}

type ResolverConfig struct {
	SelectFallback    SelectFallbackPolicy `json:"select_fallback"`
	DefaultConfidence float64              `json:"default_confidence"`
}

func DefaultResolverConfig() ResolverConfig {
	return ResolverConfig{
		SelectFallback:    SelectFallbackFirstOption,
		DefaultConfidence: 0.7,
	}
}

type IResolver interface {
	ResolveWithPatterns(transcript, page string) *UIInstruction
	Validate(parsed *ParsedInstruction, page string) *UIInstruction
	BuildPrompt(transcript, page string) string
	PageContextFor(page string) (PageContext, bool)
	SupportedPages() []string
	SupportedActions() []string
}
