// internal/workers/infrastructure/build-report/handler.go
package buildreport

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	apperrors "pathfinder-workers/internal/common/errors"
	"pathfinder-workers/internal/common/logger"
	"pathfinder-workers/internal/common/metrics"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const TaskType = "build-report"

type Handler struct {
	config *Config
	redis  *redis.Client
	logger logger.Logger
}

func NewHandler(config *Config, redisClient *redis.Client, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		redis:  redisClient,
		logger: log.WithFields(map[string]interface{}{"taskType": TaskType}),
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
		bpmnErr := apperrors.ConvertToBPMNError(apperrors.NewReportBuildFailedError(err.Error()))
		h.failJob(client, job, bpmnErr.Code, bpmnErr.Message+": "+bpmnErr.Details)
		return
	}

	h.completeJob(client, job, output)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	if input.RequestID == "" {
		return nil, fmt.Errorf("report build requires a request id")
	}

	cacheKey := "report:" + input.RequestID
	if h.redis != nil {
		if cached, err := h.redis.Get(ctx, cacheKey).Result(); err == nil {
			var report Report
			if err := json.Unmarshal([]byte(cached), &report); err == nil {
				metrics.ReportCacheHits.WithLabelValues("hit").Inc()
				h.logger.Info("report served from cache", map[string]interface{}{
					"requestId": input.RequestID,
					"reportId":  report.ReportID,
				})
				return h.envelope(input.RequestID, report, true), nil
			}
		}
		metrics.ReportCacheHits.WithLabelValues("miss").Inc()
	}

	report := Report{
		ReportID:        uuid.NewString(),
		UserName:        input.User.Name,
		Scores:          input.MergedScores,
		Interpretations: input.Interpretations,
		TextAnalysis:    input.Analysis,
		ProfileSummary:  input.ProfileSummary,
		Recommendation: Recommendation{
			Pathway:      input.Pathway,
			FitScore:     input.FitScore,
			AllFitScores: input.AllFitScores,
			Alternative:  input.Alternative,
			Reasoning:    input.Reasoning,
			NextSteps:    input.NextSteps,
		},
		Projections: input.Projections,
		Outcomes:    input.Outcomes,
		Comparison:  input.Comparison,
		Programmes:  input.Programmes,
		Careers:     input.Careers,
	}

	if h.redis != nil {
		data, err := json.Marshal(report)
		if err == nil {
			err = h.redis.Set(ctx, cacheKey, data, h.config.CacheTTL).Err()
		}
		if err != nil {
			// The report is still valid without the cache; surface the code
			// so the retryable path can be observed.
			cacheErr := apperrors.NewCacheUnavailableError(err)
			h.logger.Warn("report cache write failed", map[string]interface{}{
				"requestId": input.RequestID,
				"errorCode": string(cacheErr.Code),
				"retryable": cacheErr.Retryable,
				"error":     err,
			})
		}
	}

	h.logger.Info("report built", map[string]interface{}{
		"requestId": input.RequestID,
		"reportId":  report.ReportID,
		"pathway":   input.Pathway,
	})

	return h.envelope(input.RequestID, report, false), nil
}

func (h *Handler) envelope(requestID string, report Report, cached bool) *Output {
	return &Output{
		RequestID: requestID,
		Status:    "completed",
		Report:    report,
		Metadata: Metadata{
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Version:   h.config.Version,
			Cached:    cached,
		},
	}
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
