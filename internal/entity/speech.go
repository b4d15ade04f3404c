package entity

import "time"

type UserLoginData struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// SpeechInteraction is one recorded voice command and the action the UI
// took for it, kept for usage analytics.
type SpeechInteraction struct {
	ID         string                 `json:"id"`
	UserID     string                 `json:"user_id"`
	Action     string                 `json:"action"`
	FormID     string                 `json:"form_id,omitempty"`
	SpeechData map[string]interface{} `json:"speech_data,omitempty"`
	UserAgent  string                 `json:"user_agent,omitempty"`
	Viewport   string                 `json:"viewport,omitempty"`
	CreatedAt  time.Time              `json:"created_at"`
}

// SpeechSettings is the per-user voice control configuration.
type SpeechSettings struct {
	Language            string  `json:"language"`
	ConfidenceThreshold float64 `json:"confidence_threshold"`
	AutoSubmit          bool    `json:"auto_submit"`
	Notifications       bool    `json:"notifications"`
}
