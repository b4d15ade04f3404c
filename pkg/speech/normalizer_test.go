package speech_test

import (
	"testing"

	"BrandBloom/pkg/speech"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "create a website", speech.Normalize("  create   a \t website  "))
}

func TestNormalizeStripsFillerWords(t *testing.T) {
	assert.Equal(t, "create a website", speech.Normalize("um create a uh website"))
	assert.Equal(t, "create a website", speech.Normalize("Um create a UH website"))
}

func TestNormalizeKeepsFillerSubstringsInsideWords(t *testing.T) {
	assert.Equal(t, "drum summer", speech.Normalize("drum summer"))
}

func TestNormalizePreservesCasing(t *testing.T) {
	assert.Equal(t, "Create a Website for Tony's", speech.Normalize("Create a Website for Tony's"))
}

func TestNormalizeEmptyInput(t *testing.T) {
	assert.Equal(t, "", speech.Normalize(""))
	assert.Equal(t, "", speech.Normalize("   "))
	assert.Equal(t, "", speech.Normalize("um uh er ah"))
}
