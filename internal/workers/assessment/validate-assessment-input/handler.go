// internal/workers/assessment/validate-assessment-input/handler.go
package validateassessmentinput

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"pathfinder-workers/internal/common/logger"
	"pathfinder-workers/internal/common/metrics"
	"pathfinder-workers/internal/refdata"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/xeipuuv/gojsonschema"
)

const TaskType = "validate-assessment-input"

var (
	ErrIncompleteInput  = errors.New("INCOMPLETE_INPUT")
	ErrValidationFailed = errors.New("ASSESSMENT_VALIDATION_FAILED")
)

// envelopeSchema checks the submission shape before any semantic checks run.
const envelopeSchema = `{
	"type": "object",
	"required": ["responses", "user"],
	"properties": {
		"requestId": {"type": "string"},
		"responses": {
			"type": "object",
			"additionalProperties": {"type": "string", "pattern": "^[A-D]$"}
		},
		"user": {
			"type": "object",
			"required": ["budget", "interests"],
			"properties": {
				"name": {"type": "string"},
				"age": {"type": "integer", "minimum": 0},
				"budget": {"type": "number", "minimum": 0},
				"currentIncome": {"type": "number", "minimum": 0},
				"interests": {"type": "array", "items": {"type": "string"}, "minItems": 1},
				"targetCountry": {"type": "string"}
			}
		}
	}
}`

type Handler struct {
	config *Config
	logger logger.Logger
	schema *gojsonschema.Schema
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(envelopeSchema))
	if err != nil {
		panic(fmt.Sprintf("invalid envelope schema: %v", err))
	}
	return &Handler{
		config: config,
		logger: log.WithFields(map[string]interface{}{"taskType": TaskType}),
		schema: schema,
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		h.failJob(client, job, "PARSE_ERROR", fmt.Sprintf("parse input: %v", err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.execute(ctx, &input)
	if err != nil {
		errorCode := "ASSESSMENT_VALIDATION_FAILED"
		if errors.Is(err, ErrIncompleteInput) {
			errorCode = "INCOMPLETE_INPUT"
		}
		h.failJob(client, job, errorCode, err.Error())
		return
	}

	h.completeJob(client, job, output)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	raw, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}
	result, err := h.schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}
	if !result.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, formatSchemaErrors(result))
	}

	// Every question needs an A-D answer before scoring can run.
	for _, q := range refdata.Questions {
		option, ok := input.Responses[q.ID]
		if !ok {
			return nil, fmt.Errorf("%w: missing answer for %s", ErrIncompleteInput, q.ID)
		}
		if _, valid := q.Weights.Grit.For(option); !valid {
			return nil, fmt.Errorf("%w: invalid option %q for %s", ErrIncompleteInput, option, q.ID)
		}
	}

	// Unknown interests and countries pass through; downstream workers have
	// documented fallbacks. Surface them as warnings so the flow can show them.
	var warnings []string
	for _, field := range input.User.Interests {
		if _, ok := refdata.SalaryData[field]; !ok {
			warnings = append(warnings, fmt.Sprintf("unrecognized field %q, default field will be used", field))
		}
	}
	if input.User.TargetCountry != "" {
		if _, ok := refdata.UniversityCosts[refdata.PathwayInternationalUniversity][input.User.TargetCountry]; !ok {
			warnings = append(warnings, fmt.Sprintf("unrecognized country %q, home-country costs will be used", input.User.TargetCountry))
		}
	}

	if len(warnings) > 0 {
		h.logger.Warn("submission accepted with fallbacks", map[string]interface{}{
			"requestId": input.RequestID,
			"warnings":  warnings,
		})
	}

	return &Output{
		Valid:     true,
		RequestID: input.RequestID,
		Warnings:  warnings,
	}, nil
}

func formatSchemaErrors(result *gojsonschema.Result) string {
	msg := ""
	for i, desc := range result.Errors() {
		if i > 0 {
			msg += "; "
		}
		msg += desc.String()
	}
	return msg
}

func (h *Handler) completeJob(client worker.JobClient, job entities.Job, output *Output) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{
			"error": err,
		})
		return
	}
	_, err = cmd.Send(context.Background())
	if err != nil {
		h.logger.Error("failed to send complete job command", map[string]interface{}{
			"error": err,
		})
		return
	}
	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
}

func (h *Handler) failJob(client worker.JobClient, job entities.Job, errorCode, errorMessage string) {
	h.logger.Error("job failed", map[string]interface{}{
		"jobKey":       job.Key,
		"errorCode":    errorCode,
		"errorMessage": errorMessage,
	})
	metrics.WorkerJobsFailed.WithLabelValues(TaskType, errorCode).Inc()

	_, err := client.NewThrowErrorCommand().
		JobKey(job.Key).
		ErrorCode(errorCode).
		ErrorMessage(errorMessage).
		Send(context.Background())
	if err != nil {
		h.logger.Error("failed to throw error", map[string]interface{}{
			"error": err,
		})
	}
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
