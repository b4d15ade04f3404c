package speech

import speechPkg "BrandBloom/pkg/speech"

type ProcessSpeechRequest struct {
	Transcript string                 `json:"transcript" validate:"required"`
	Page       string                 `json:"page" validate:"required"`
	Context    map[string]interface{} `json:"context"`
}

type ProcessSpeechResponse struct {
	Success            bool                     `json:"success"`
	Instructions       *speechPkg.UIInstruction `json:"instructions"`
	Confidence         float64                  `json:"confidence"`
	ProcessedBy        string                   `json:"processed_by"`
	ProcessedAt        string                   `json:"processed_at"`
	OriginalTranscript string                   `json:"original_transcript"`
	Error              string                   `json:"error,omitempty"`
}

type CapabilitiesResponse struct {
	AIBackendAvailable bool     `json:"ai_backend_available"`
	SupportedPages     []string `json:"supported_pages"`
	SupportedActions   []string `json:"supported_actions"`
	FallbackAvailable  bool     `json:"fallback_available"`
	SupportedLanguages []string `json:"supported_languages"`
}

type SpeechTestCase struct {
	Transcript string `json:"transcript" validate:"required"`
	Page       string `json:"page"`
}

type SpeechTestRequest struct {
	TestCases []SpeechTestCase `json:"test_cases"`
}

type SpeechTestResult struct {
	Transcript  string                   `json:"transcript"`
	Page        string                   `json:"page"`
	Success     bool                     `json:"success"`
	Instruction *speechPkg.UIInstruction `json:"instruction,omitempty"`
	ProcessedBy string                   `json:"processed_by,omitempty"`
	Error       string                   `json:"error,omitempty"`
}

type SpeechTestSummary struct {
	TotalTests        int     `json:"total_tests"`
	Successful        int     `json:"successful"`
	AverageConfidence float64 `json:"average_confidence"`
}

type SpeechTestResponse struct {
	Results []SpeechTestResult `json:"results"`
	Summary SpeechTestSummary  `json:"summary"`
}

type AnalyticsRequest struct {
	Action     string                 `json:"action" validate:"required"`
	FormID     string                 `json:"form_id"`
	SpeechData map[string]interface{} `json:"speech_data"`
	UserAgent  string                 `json:"user_agent"`
	Viewport   string                 `json:"viewport"`
}

type UpdateSettingsRequest struct {
	Language            *string  `json:"language"`
	ConfidenceThreshold *float64 `json:"confidence_threshold"`
	AutoSubmit          *bool    `json:"auto_submit"`
	Notifications       *bool    `json:"notifications"`
}

type SettingsResponse struct {
	Success  bool        `json:"success"`
	Settings interface{} `json:"settings"`
}
