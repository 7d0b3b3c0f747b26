package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertToBPMNError(t *testing.T) {
	stdErr := NewCacheUnavailableError(fmt.Errorf("dial tcp: connection refused"))

	bpmnErr := ConvertToBPMNError(stdErr)
	assert.Equal(t, "CACHE_UNAVAILABLE", bpmnErr.Code)
	assert.True(t, bpmnErr.Retryable)
	assert.Equal(t, 3, bpmnErr.Retries)

	vars := bpmnErr.ToErrorVariables()
	assert.Equal(t, "CACHE_UNAVAILABLE", vars["errorCode"])
	assert.Equal(t, "CACHE_UNAVAILABLE", vars["originalErrorCode"])
}

func TestBusinessErrorsAreNotRetryable(t *testing.T) {
	cases := []*StandardError{
		NewIncompleteInputError("q3_social_vs_technical"),
		NewAssessmentValidationFailedError("budget must be >= 0"),
		NewUnrecognizedFieldError("Astrology"),
		NewUnrecognizedCountryError("Atlantis"),
		NewUnrecognizedPathwayError("Pirate Academy"),
		NewReportBuildFailedError("missing request id"),
	}

	for _, stdErr := range cases {
		bpmnErr := ConvertToBPMNError(stdErr)
		assert.False(t, bpmnErr.Retryable, stdErr.Code)
		assert.Zero(t, bpmnErr.Retries, stdErr.Code)
	}
}

func TestBPMNErrorMappingCoversAllCodes(t *testing.T) {
	for code := range BPMNErrorMapping {
		// Codes map to themselves; a rename on either side should be loud.
		assert.Equal(t, string(code), BPMNErrorMapping[code])
	}
}

func TestGetErrorCategory(t *testing.T) {
	assert.Equal(t, "INPUT", GetErrorCategory(ErrCodeIncompleteInput))
	assert.Equal(t, "INPUT", GetErrorCategory(ErrCodeAssessmentValidationFailed))
	assert.Equal(t, "REFERENCE_DATA", GetErrorCategory(ErrCodeUnrecognizedPathway))
	assert.Equal(t, "SIGNAL", GetErrorCategory(ErrCodeInsufficientSignal))
	assert.Equal(t, "EXTRACTION", GetErrorCategory(ErrCodeDocumentExtractionFailed))
	assert.Equal(t, "INFRASTRUCTURE", GetErrorCategory(ErrCodeCacheUnavailable))
}

func TestStandardErrorMessage(t *testing.T) {
	stdErr := NewUnrecognizedPathwayError("Night School")
	require.Error(t, stdErr)
	assert.Contains(t, stdErr.Error(), "UNRECOGNIZED_PATHWAY")
}
