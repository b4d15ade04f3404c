package speechService

import (
	"BrandBloom/internal/api/speech"
	speechRepository "BrandBloom/internal/api/speech/repository"
	"BrandBloom/internal/entity"
	"BrandBloom/pkg/gemini"
	"BrandBloom/pkg/redis"
	speechPkg "BrandBloom/pkg/speech"
	"BrandBloom/pkg/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type ISpeechService interface {
	ProcessSpeech(ctx context.Context, req speech.ProcessSpeechRequest) (speech.ProcessSpeechResponse, error)
	GetCapabilities() speech.CapabilitiesResponse
	RunTestCases(ctx context.Context, req speech.SpeechTestRequest) (speech.SpeechTestResponse, error)
	RecordAnalytics(ctx context.Context, userID string, req speech.AnalyticsRequest) error
	GetAnalytics(ctx context.Context, userID string, limit int) ([]entity.SpeechInteraction, error)
	GetSettings(ctx context.Context, userID string) (entity.SpeechSettings, error)
	UpdateSettings(ctx context.Context, userID string, req speech.UpdateSettingsRequest) (entity.SpeechSettings, error)
}

type speechService struct {
	log              *logrus.Logger
	resolver         speechPkg.IResolver
	gemini           gemini.IGemini
	speechRepository speechRepository.Repository
	redis            redis.IRedis
	utils            utils.IUtils
}

func NewSpeechService(
	log *logrus.Logger,
	resolver speechPkg.IResolver,
	geminiClient gemini.IGemini,
	sr speechRepository.Repository,
	redisServer redis.IRedis,
	utils utils.IUtils,
) ISpeechService {
	return &speechService{
		log:              log,
		resolver:         resolver,
		gemini:           geminiClient,
		speechRepository: sr,
		redis:            redisServer,
		utils:            utils,
	}
}
