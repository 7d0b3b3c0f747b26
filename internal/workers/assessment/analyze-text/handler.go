// internal/workers/assessment/analyze-text/handler.go
package analyzetext

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"

	"pathfinder-workers/internal/common/logger"
	"pathfinder-workers/internal/common/metrics"
	"pathfinder-workers/internal/models"
	"pathfinder-workers/internal/refdata"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "analyze-text"

const (
	maxKeywordsPerCategory = 5
	maxInsightExamples     = 3
	maxSummaryCategories   = 3
)

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
		h.failJob(client, job, "TEXT_ANALYSIS_FAILED", err.Error())
		return
	}

	h.completeJob(client, job, output)
}

// execute scans the lowered text for every keyword of every category. Matching
// is substring containment, not word-boundary: "developed" also satisfies
// "develop"-family fragments and multi-word phrases match across spaces.
func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	trimmed := strings.TrimSpace(input.Text)
	if len(trimmed) < h.config.MinTextLength {
		h.logger.Info("text below signal threshold", map[string]interface{}{
			"requestId": input.RequestID,
			"length":    len(trimmed),
			"signal":    "INSUFFICIENT_SIGNAL",
		})
		return &Output{
			Analysis: models.TextAnalysis{
				Scores:             map[string]float64{},
				KeywordsFound:      map[string][]string{},
				Insights:           []models.CategoryInsight{},
				InsufficientSignal: true,
			},
			ProfileSummary: "No additional profile information detected.",
		}, nil
	}

	lower := strings.ToLower(input.Text)

	analysis := models.TextAnalysis{
		Scores:        map[string]float64{},
		KeywordsFound: map[string][]string{},
		Insights:      []models.CategoryInsight{},
	}

	for _, category := range refdata.KeywordCategories {
		var matches []string
		for _, keyword := range category.Keywords {
			if strings.Contains(lower, keyword) {
				matches = append(matches, keyword)
			}
		}
		if len(matches) == 0 {
			continue
		}

		score := math.Min(float64(len(matches))*category.Weight/2, 10)
		score = models.Round1(score)

		kept := matches
		if len(kept) > maxKeywordsPerCategory {
			kept = kept[:maxKeywordsPerCategory]
		}
		examples := matches
		if len(examples) > maxInsightExamples {
			examples = examples[:maxInsightExamples]
		}

		analysis.Scores[category.Name] = score
		analysis.KeywordsFound[category.Name] = kept
		analysis.Insights = append(analysis.Insights, models.CategoryInsight{
			Category: category.Name,
			Level:    insightLevel(score),
			Score:    score,
			Examples: examples,
		})
		analysis.TotalMatches += len(kept)
	}

	h.logger.Info("text analyzed", map[string]interface{}{
		"requestId":    input.RequestID,
		"totalMatches": analysis.TotalMatches,
		"categories":   len(analysis.Scores),
	})

	return &Output{
		Analysis:       analysis,
		ProfileSummary: profileSummary(analysis.Insights),
	}, nil
}

func insightLevel(score float64) string {
	switch {
	case score >= 7:
		return "strong"
	case score >= 4:
		return "moderate"
	default:
		return "some"
	}
}

// profileSummary renders the top categories by score as one display line.
func profileSummary(insights []models.CategoryInsight) string {
	if len(insights) == 0 {
		return "No additional profile information detected."
	}

	sorted := make([]models.CategoryInsight, len(insights))
	copy(sorted, insights)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})
	if len(sorted) > maxSummaryCategories {
		sorted = sorted[:maxSummaryCategories]
	}

	parts := make([]string, 0, len(sorted))
	for _, insight := range sorted {
		label := titleCase(insight.Level) + " " + titleCase(strings.ReplaceAll(insight.Category, "_", " "))
		part := "**" + label + "**"
		examples := insight.Examples
		if len(examples) > 2 {
			examples = examples[:2]
		}
		if len(examples) > 0 {
			part += " (e.g., " + strings.Join(examples, ", ") + ")"
		} else {
			part += " "
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, " • ")
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
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
