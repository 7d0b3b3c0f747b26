// internal/workers/recommendation/suggest-programmes/handler.go
package suggestprogrammes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"pathfinder-workers/internal/common/logger"
	"pathfinder-workers/internal/common/metrics"
	"pathfinder-workers/internal/models"
	"pathfinder-workers/internal/refdata"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "suggest-programmes"

var ErrUnrecognizedPathway = errors.New("UNRECOGNIZED_PATHWAY")

type Handler struct {
	config *Config
	logger logger.Logger
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	return &Handler{
		config: config,
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
		errorCode := "SUGGESTION_FAILED"
		if errors.Is(err, ErrUnrecognizedPathway) {
			errorCode = "UNRECOGNIZED_PATHWAY"
		}
		h.failJob(client, job, errorCode, err.Error())
		return
	}

	h.completeJob(client, job, output)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	if _, ok := refdata.PathwayByName(input.Pathway); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnrecognizedPathway, input.Pathway)
	}

	programmes := h.matchProgrammes(input.Pathway, input.User.Budget)

	field := input.User.PrimaryField()
	if _, ok := refdata.Careers[field]; !ok {
		h.logger.Warn("no career data for field, using default", map[string]interface{}{
			"requestId": input.RequestID,
			"field":     field,
			"fallback":  refdata.DefaultField,
		})
		field = refdata.DefaultField
	}

	careers := make([]models.CareerSuggestion, 0, h.config.MaxCareers)
	for _, career := range refdata.CareersForField(field, h.config.MaxCareers) {
		careers = append(careers, models.CareerSuggestion{
			Title:       career.Title,
			EntrySalary: career.EntrySalary,
			Year5Salary: career.Year5Salary,
			GrowthRate:  career.GrowthRate,
			Demand:      career.Demand,
		})
	}

	h.logger.Info("suggestions built", map[string]interface{}{
		"requestId":  input.RequestID,
		"pathway":    input.Pathway,
		"programmes": len(programmes),
		"careers":    len(careers),
	})

	return &Output{Programmes: programmes, Careers: careers}, nil
}

// matchProgrammes keeps catalogue order and drops entries the budget cannot
// cover. Paid placements (negative cost) always fit.
func (h *Handler) matchProgrammes(pathway string, budget float64) []models.ProgrammeSuggestion {
	out := make([]models.ProgrammeSuggestion, 0, h.config.MaxProgrammes)
	for _, p := range refdata.Programmes[pathway] {
		if p.Cost > budget {
			continue
		}
		out = append(out, models.ProgrammeSuggestion{
			Name:              p.Name,
			Type:              p.Type,
			Location:          p.Location,
			Duration:          p.Duration,
			Cost:              p.Cost,
			EntryRequirements: p.EntryRequirements,
			StartingSalary:    p.StartingSalary,
		})
		if len(out) == h.config.MaxProgrammes {
			break
		}
	}
	return out
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
