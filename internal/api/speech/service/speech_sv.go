package speechService

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"BrandBloom/internal/api/speech"
	"BrandBloom/internal/entity"
	contextPkg "BrandBloom/pkg/context"
	"BrandBloom/pkg/redis"
	speechPkg "BrandBloom/pkg/speech"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const (
	settingsKeyPrefix = "speech:settings:"
	settingsTTL       = 30 * 24 * time.Hour

	minConfidenceThreshold = 0.1
	maxConfidenceThreshold = 1.0
)

// ProcessSpeech resolves a transcript into a UI instruction. The generative
// model is tried first when available; any model failure falls back to the
// deterministic pattern resolver, so the operation only errors on an empty
// transcript.
func (s *speechService) ProcessSpeech(ctx context.Context, req speech.ProcessSpeechRequest) (speech.ProcessSpeechResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	transcript := speechPkg.Normalize(req.Transcript)
	if transcript == "" {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"page":       req.Page,
		}).Warn("Empty transcript after normalization")
		return speech.ProcessSpeechResponse{}, speech.ErrEmptyTranscript
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"transcript": transcript,
		"page":       req.Page,
	}).Info("Processing speech input")

	var instruction *speechPkg.UIInstruction
	processedBy := speechPkg.ProcessedByFallback

	if s.gemini != nil {
		modelInstruction, err := s.resolveWithModel(ctx, transcript, req.Page)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Model resolution failed, using pattern fallback")
		} else {
			instruction = modelInstruction
			processedBy = speechPkg.ProcessedByGemini
		}
	}

	if instruction == nil {
		instruction = s.resolver.ResolveWithPatterns(transcript, req.Page)
	}

	instruction.ProcessedBy = processedBy
	instruction.ProcessedAt = time.Now().UTC().Format(time.RFC3339)

	return speech.ProcessSpeechResponse{
		Success:            true,
		Instructions:       instruction,
		Confidence:         instruction.Confidence,
		ProcessedBy:        processedBy,
		ProcessedAt:        instruction.ProcessedAt,
		OriginalTranscript: req.Transcript,
	}, nil
}

func (s *speechService) resolveWithModel(ctx context.Context, transcript, page string) (instruction *speechPkg.UIInstruction, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			instruction = nil
			err = fmt.Errorf("%w: %v", speech.ErrModelUnavailable, rec)
		}
	}()

	prompt := s.resolver.BuildPrompt(transcript, page)

	raw, err := s.gemini.GenerateInstruction(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", speech.ErrModelUnavailable, err)
	}
	if raw == "" {
		return nil, speech.ErrEmptyResponse
	}

	var parsed speechPkg.ParsedInstruction
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", speech.ErrMalformedResponse, err)
	}

	return s.resolver.Validate(&parsed, page), nil
}

func (s *speechService) GetCapabilities() speech.CapabilitiesResponse {
	return speech.CapabilitiesResponse{
		AIBackendAvailable: s.gemini != nil,
		SupportedPages:     s.resolver.SupportedPages(),
		SupportedActions:   s.resolver.SupportedActions(),
		FallbackAvailable:  true,
		SupportedLanguages: speechPkg.SupportedLanguages,
	}
}

// RunTestCases replays a batch of transcripts through the full pipeline and
// summarizes the outcome. Supplied cases without a page default to the
// website page; when no cases are given a built-in smoke set is used.
func (s *speechService) RunTestCases(ctx context.Context, req speech.SpeechTestRequest) (speech.SpeechTestResponse, error) {
	cases := req.TestCases
	if len(cases) == 0 {
		cases = defaultTestCases()
	}

	results := make([]speech.SpeechTestResult, 0, len(cases))
	successful := 0
	totalConfidence := 0.0

	for _, testCase := range cases {
		page := testCase.Page
		if page == "" {
			page = "website"
		}

		result := speech.SpeechTestResult{
			Transcript: testCase.Transcript,
			Page:       page,
		}

		resp, err := s.ProcessSpeech(ctx, speech.ProcessSpeechRequest{
			Transcript: testCase.Transcript,
			Page:       page,
		})
		if err != nil {
			result.Error = err.Error()
		} else {
			result.Success = true
			result.Instruction = resp.Instructions
			result.ProcessedBy = resp.ProcessedBy
			successful++
			totalConfidence += resp.Confidence
		}

		results = append(results, result)
	}

	summary := speech.SpeechTestSummary{
		TotalTests: len(results),
		Successful: successful,
	}
	if successful > 0 {
		summary.AverageConfidence = totalConfidence / float64(successful)
	}

	return speech.SpeechTestResponse{
		Results: results,
		Summary: summary,
	}, nil
}

func defaultTestCases() []speech.SpeechTestCase {
	return []speech.SpeechTestCase{
		{Transcript: "Create a website for my pizza restaurant", Page: "website"},
		{Transcript: "Generate a marketing email for customers", Page: "email"},
		{Transcript: "Analyze this feedback: great service but slow delivery", Page: "feedback"},
		{Transcript: "Make a poster for grand opening", Page: "poster"},
		{Transcript: "Go to email tool", Page: "dashboard"},
	}
}

func (s *speechService) RecordAnalytics(ctx context.Context, userID string, req speech.AnalyticsRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.speechRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return err
	}

	interaction := entity.SpeechInteraction{
		ID:         ULID,
		UserID:     userID,
		Action:     req.Action,
		FormID:     req.FormID,
		SpeechData: req.SpeechData,
		UserAgent:  req.UserAgent,
		Viewport:   req.Viewport,
		CreatedAt:  time.Now(),
	}

	if err := repo.Interactions.CreateInteraction(ctx, interaction); err != nil {
		return err
	}

	return nil
}

func (s *speechService) GetAnalytics(ctx context.Context, userID string, limit int) ([]entity.SpeechInteraction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if limit <= 0 || limit > 100 {
		limit = 50
	}

	repo, err := s.speechRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	return repo.Interactions.GetInteractionsByUserID(ctx, userID, limit)
}

func defaultSettings() entity.SpeechSettings {
	return entity.SpeechSettings{
		Language:            "en-US",
		ConfidenceThreshold: 0.7,
		AutoSubmit:          true,
		Notifications:       true,
	}
}

func (s *speechService) GetSettings(ctx context.Context, userID string) (entity.SpeechSettings, error) {
	requestID := contextPkg.GetRequestID(ctx)

	raw, err := s.redis.GetSettings(ctx, settingsKeyPrefix+userID)
	if err != nil {
		if !errors.Is(err, redis.ErrSettingsNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to read settings from Redis, returning defaults")
		}
		return defaultSettings(), nil
	}

	var settings entity.SpeechSettings
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Stored settings are corrupt, returning defaults")
		return defaultSettings(), nil
	}

	return settings, nil
}

func (s *speechService) UpdateSettings(ctx context.Context, userID string, req speech.UpdateSettingsRequest) (entity.SpeechSettings, error) {
	requestID := contextPkg.GetRequestID(ctx)

	settings, err := s.GetSettings(ctx, userID)
	if err != nil {
		return entity.SpeechSettings{}, err
	}

	if req.Language != nil {
		settings.Language = *req.Language
	}
	if req.ConfidenceThreshold != nil {
		threshold := *req.ConfidenceThreshold
		if threshold < minConfidenceThreshold {
			threshold = minConfidenceThreshold
		}
		if threshold > maxConfidenceThreshold {
			threshold = maxConfidenceThreshold
		}
		settings.ConfidenceThreshold = threshold
	}
	if req.AutoSubmit != nil {
		settings.AutoSubmit = *req.AutoSubmit
	}
	if req.Notifications != nil {
		settings.Notifications = *req.Notifications
	}

	payload, err := json.Marshal(settings)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to marshal settings")
		return entity.SpeechSettings{}, err
	}

	if err := s.redis.SetSettings(ctx, settingsKeyPrefix+userID, string(payload), settingsTTL); err != nil {
		return entity.SpeechSettings{}, err
	}

	return settings, nil
}
