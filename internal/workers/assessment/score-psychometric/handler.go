// internal/workers/assessment/score-psychometric/handler.go
package scorepsychometric

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

const TaskType = "score-psychometric"

var ErrIncompleteInput = errors.New("INCOMPLETE_INPUT")

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
		h.failJob(client, job, "INCOMPLETE_INPUT", err.Error())
		return
	}

	h.completeJob(client, job, output)
}

// execute accumulates per-trait option weights across the seven-question bank
// and normalizes each sum to the 0-10 scale at one decimal.
func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	sums := map[string]int{}

	for _, q := range refdata.Questions {
		option, ok := input.Responses[q.ID]
		if !ok {
			return nil, fmt.Errorf("%w: missing answer for %s", ErrIncompleteInput, q.ID)
		}

		for _, tw := range []struct {
			dimension string
			weights   refdata.OptionWeights
		}{
			{"grit", q.Weights.Grit},
			{"hands_on", q.Weights.HandsOn},
			{"structure", q.Weights.Structure},
			{"risk_tolerance", q.Weights.RiskTolerance},
		} {
			w, valid := tw.weights.For(option)
			if !valid {
				return nil, fmt.Errorf("%w: invalid option %q for %s", ErrIncompleteInput, option, q.ID)
			}
			sums[tw.dimension] += w
		}
	}

	var profile models.TraitProfile
	for _, dimension := range models.TraitDimensions {
		normalized := models.Round1(float64(sums[dimension]) / float64(refdata.MaxTraitSum) * 10)
		profile = profile.WithDimension(dimension, normalized)
	}

	h.logger.Info("assessment scored", map[string]interface{}{
		"requestId": input.RequestID,
		"scores":    profile,
	})

	return &Output{
		QuizScores:      profile,
		Interpretations: interpretProfile(profile),
	}, nil
}

// interpretProfile renders the per-trait bands shown alongside the raw scores.
func interpretProfile(p models.TraitProfile) []string {
	var out []string

	switch {
	case p.Grit >= 7:
		out = append(out, "High Grit: You have exceptional perseverance and will push through obstacles.")
	case p.Grit >= 4:
		out = append(out, "Moderate Grit: You persist through challenges but may need external motivation.")
	default:
		out = append(out, "Lower Grit: You may benefit from highly structured environments with clear milestones.")
	}

	switch {
	case p.HandsOn >= 7:
		out = append(out, "Hands-On Learner: You learn best by building and doing, not passive study.")
	case p.HandsOn >= 4:
		out = append(out, "Balanced Learner: You can adapt to both theoretical and practical learning.")
	default:
		out = append(out, "Theoretical Learner: You prefer conceptual understanding before application.")
	}

	switch {
	case p.Structure >= 7:
		out = append(out, "Structure-Seeking: You thrive in formal education with clear expectations.")
	case p.Structure >= 4:
		out = append(out, "Flexible Structure Needs: You can work in both structured and self-directed environments.")
	default:
		out = append(out, "Independent Learner: You prefer self-directed learning over rigid curriculums.")
	}

	switch {
	case p.RiskTolerance >= 7:
		out = append(out, "High Risk Tolerance: You're comfortable with uncertainty and non-traditional paths.")
	case p.RiskTolerance >= 4:
		out = append(out, "Moderate Risk Tolerance: You balance security with opportunity.")
	default:
		out = append(out, "Risk-Averse: You prefer established, proven pathways.")
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
	metrics.AssessmentsScored.Inc()
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
