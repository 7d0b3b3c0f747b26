// Package errors provides standardized error handling for BPMN workflow integration.
package errors

import (
	"fmt"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Assessment input errors
	ErrCodeIncompleteInput            ErrorCode = "INCOMPLETE_INPUT"
	ErrCodeAssessmentValidationFailed ErrorCode = "ASSESSMENT_VALIDATION_FAILED"

	// Reference data lookup errors
	ErrCodeUnrecognizedField   ErrorCode = "UNRECOGNIZED_FIELD"
	ErrCodeUnrecognizedCountry ErrorCode = "UNRECOGNIZED_COUNTRY"
	ErrCodeUnrecognizedPathway ErrorCode = "UNRECOGNIZED_PATHWAY"

	// Informational signals. Never thrown to the workflow engine; defined so the
	// consumer can distinguish them from real failures.
	ErrCodeInsufficientSignal  ErrorCode = "INSUFFICIENT_SIGNAL"
	ErrCodeNoViableAlternative ErrorCode = "NO_VIABLE_ALTERNATIVE"

	// External collaborator errors. The PDF/Word extractor lives outside this
	// service; its failures must arrive under this code, never as empty text.
	ErrCodeDocumentExtractionFailed ErrorCode = "DOCUMENT_EXTRACTION_FAILED"

	// Infrastructure errors
	ErrCodeReportBuildFailed ErrorCode = "REPORT_BUILD_FAILED"
	ErrCodeCacheUnavailable  ErrorCode = "CACHE_UNAVAILABLE"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. BPMN Error Integration
// ==========================

// BPMNError represents an error that can be thrown to the Camunda workflow engine.
type BPMNError struct {
	Code           string                 `json:"code"`
	Message        string                 `json:"message"`
	Details        string                 `json:"details,omitempty"`
	Retryable      bool                   `json:"retryable"`
	Retries        int                    `json:"retries"`
	ErrorVariables map[string]interface{} `json:"errorVariables,omitempty"`
}

func (e *BPMNError) Error() string {
	return fmt.Sprintf("BPMNError[%s]: %s", e.Code, e.Message)
}

// ToErrorVariables returns a map suitable for setting Camunda job fail variables.
func (e *BPMNError) ToErrorVariables() map[string]interface{} {
	vars := map[string]interface{}{
		"errorCode":    e.Code,
		"errorMessage": e.Message,
		"errorDetails": e.Details,
		"retryable":    e.Retryable,
	}

	if e.ErrorVariables != nil {
		for k, v := range e.ErrorVariables {
			vars[k] = v
		}
	}

	return vars
}

// ==========================
// 3. Error Constructors
// ==========================

// NewIncompleteInputError reports a response set missing an answer for one of the
// questionnaire ids. Non-retryable: scoring must not default-fill.
func NewIncompleteInputError(questionID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeIncompleteInput,
		Message:   "Response set is missing a required answer",
		Details:   fmt.Sprintf("questionId: %s", questionID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewAssessmentValidationFailedError creates a non-retryable submission validation error.
func NewAssessmentValidationFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeAssessmentValidationFailed,
		Message:   "Assessment submission failed validation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewUnrecognizedFieldError reports a field name absent from the salary tables.
// Callers are expected to recover via the default field; this error exists for
// surfaces that cannot.
func NewUnrecognizedFieldError(field string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUnrecognizedField,
		Message:   "Field of interest not found in reference tables",
		Details:   fmt.Sprintf("field: %s", field),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewUnrecognizedCountryError reports a country absent from the cost tables.
func NewUnrecognizedCountryError(country string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUnrecognizedCountry,
		Message:   "Country not found in education cost tables",
		Details:   fmt.Sprintf("country: %s", country),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewUnrecognizedPathwayError reports a pathway name outside the four fixed routes.
func NewUnrecognizedPathwayError(pathway string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUnrecognizedPathway,
		Message:   "Unknown education pathway",
		Details:   fmt.Sprintf("pathway: %s", pathway),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewDocumentExtractionFailedError wraps a failure from the external CV text
// extractor (corrupt file, unsupported format).
func NewDocumentExtractionFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDocumentExtractionFailed,
		Message:   "Document text extraction failed",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewReportBuildFailedError creates a non-retryable report assembly error.
func NewReportBuildFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeReportBuildFailed,
		Message:   "Recommendation report assembly failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewCacheUnavailableError creates a retryable cache connectivity error.
func NewCacheUnavailableError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCacheUnavailable,
		Message:   "Report cache unavailable",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 4. Error Conversion to BPMN
// ==========================

// BPMNErrorMapping maps internal error codes to BPMN error codes (identical by
// convention, kept explicit so renames stay deliberate).
var BPMNErrorMapping = map[ErrorCode]string{
	ErrCodeIncompleteInput:            "INCOMPLETE_INPUT",
	ErrCodeAssessmentValidationFailed: "ASSESSMENT_VALIDATION_FAILED",
	ErrCodeUnrecognizedField:          "UNRECOGNIZED_FIELD",
	ErrCodeUnrecognizedCountry:        "UNRECOGNIZED_COUNTRY",
	ErrCodeUnrecognizedPathway:        "UNRECOGNIZED_PATHWAY",
	ErrCodeDocumentExtractionFailed:   "DOCUMENT_EXTRACTION_FAILED",
	ErrCodeReportBuildFailed:          "REPORT_BUILD_FAILED",
	ErrCodeCacheUnavailable:           "CACHE_UNAVAILABLE",
}

// GetRetryCount returns the recommended retry count per error code.
func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeCacheUnavailable:
		return 3 // Transient infrastructure error

	default:
		return 0 // Business errors: no retry
	}
}

// ConvertToBPMNError converts a StandardError to a BPMNError for Camunda.
func ConvertToBPMNError(stdErr *StandardError) *BPMNError {
	bpmnCode, exists := BPMNErrorMapping[stdErr.Code]
	if !exists {
		bpmnCode = string(stdErr.Code) // Fallback
	}

	retries := GetRetryCount(stdErr.Code)
	if !stdErr.Retryable {
		retries = 0
	}

	return &BPMNError{
		Code:      bpmnCode,
		Message:   stdErr.Message,
		Details:   stdErr.Details,
		Retryable: stdErr.Retryable,
		Retries:   retries,
		ErrorVariables: map[string]interface{}{
			"originalErrorCode": string(stdErr.Code),
			"timestamp":         stdErr.Timestamp.Format(time.RFC3339),
		},
	}
}

// ==========================
// 5. Utility Functions
// ==========================

// IsRetryableErrorCode checks if an error code is retryable.
func IsRetryableErrorCode(code ErrorCode) bool {
	return GetRetryCount(code) > 0
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "INPUT") || strings.Contains(codeStr, "VALIDATION"):
		return "INPUT"
	case strings.Contains(codeStr, "UNRECOGNIZED"):
		return "REFERENCE_DATA"
	case strings.Contains(codeStr, "SIGNAL") || strings.Contains(codeStr, "ALTERNATIVE"):
		return "SIGNAL"
	case strings.Contains(codeStr, "DOCUMENT"):
		return "EXTRACTION"
	case strings.Contains(codeStr, "CACHE") || strings.Contains(codeStr, "REPORT"):
		return "INFRASTRUCTURE"
	default:
		return "OTHER"
	}
}
