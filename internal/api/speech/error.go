package speech

import (
	"errors"

	"BrandBloom/pkg/response"

	"github.com/gofiber/fiber/v2"
)

var (
	ErrEmptyTranscript = response.NewError(fiber.StatusBadRequest, "no speech transcript provided")

	ErrNoTestCases         = errors.New("no test cases provided")
	ErrInteractionNotFound = errors.New("interaction not found")

	ErrModelUnavailable  = errors.New("model unavailable")
	ErrMalformedResponse = errors.New("malformed model response")
	ErrEmptyResponse     = errors.New("empty model response")
)
