package speechHandler

import (
	speechService "BrandBloom/internal/api/speech/service"
	"BrandBloom/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type SpeechHandler struct {
	log           *logrus.Logger
	validator     *validator.Validate
	middleware    middleware.Middleware
	speechService speechService.ISpeechService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	speechService speechService.ISpeechService,
) *SpeechHandler {
	return &SpeechHandler{
		log:           log,
		validator:     validate,
		middleware:    middleware,
		speechService: speechService,
	}
}

func (h *SpeechHandler) Start(srv fiber.Router) {
	srv.Post("/process-speech", h.middleware.NewRateLimiter, h.ProcessSpeech)
	srv.Get("/speech-capabilities", h.GetCapabilities)
	srv.Post("/speech-test", h.middleware.NewRateLimiter, h.RunTestCases)

	srv.Post("/speech-analytics", h.middleware.NewTokenMiddleware, h.RecordAnalytics)
	srv.Get("/speech-analytics", h.middleware.NewTokenMiddleware, h.GetAnalytics)
	srv.Get("/speech-settings", h.middleware.NewTokenMiddleware, h.GetSettings)
	srv.Put("/speech-settings", h.middleware.NewTokenMiddleware, h.UpdateSettings)
}
