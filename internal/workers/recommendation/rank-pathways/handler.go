// internal/workers/recommendation/rank-pathways/handler.go
package rankpathways

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"pathfinder-workers/internal/common/logger"
	"pathfinder-workers/internal/common/metrics"
	"pathfinder-workers/internal/models"
	"pathfinder-workers/internal/refdata"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "rank-pathways"

const (
	pointsPerTrait  = 25.0
	penaltyPerPoint = 2.5
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
		h.failJob(client, job, "RANKING_FAILED", err.Error())
		return
	}

	h.completeJob(client, job, output)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	allScores := map[string]float64{}

	// Declaration order of the archetypes doubles as the tie-break: the first
	// pathway with the highest score wins.
	var primary refdata.PathwayArchetype
	best := -1.0
	for _, archetype := range refdata.Pathways {
		score := 0.0
		if input.User.Budget >= archetype.MinBudget {
			score = fitScore(input.Scores, archetype)
		}
		allScores[archetype.Name] = score
		if score > best {
			best = score
			primary = archetype
		}
	}

	alternative := bestAlternative(primary.Name, allScores)
	if alternative == nil {
		h.logger.Info("no viable alternative pathway", map[string]interface{}{
			"requestId": input.RequestID,
			"primary":   primary.Name,
			"signal":    "NO_VIABLE_ALTERNATIVE",
		})
	}

	h.logger.Info("pathway ranked", map[string]interface{}{
		"requestId": input.RequestID,
		"pathway":   primary.Name,
		"fitScore":  best,
	})

	return &Output{
		Pathway:      primary.Name,
		FitScore:     best,
		AllFitScores: allScores,
		Alternative:  alternative,
		Reasoning:    buildReasoning(primary.Name, input.Scores, input.User, best),
		NextSteps:    nextSteps[primary.Name],
	}, nil
}

// fitScore awards up to 25 points per trait: the full amount inside the ideal
// band, otherwise 25 minus 2.5 per point of distance, floored at 0.
func fitScore(profile models.TraitProfile, archetype refdata.PathwayArchetype) float64 {
	total := 0.0
	for _, dimension := range models.TraitDimensions {
		value, _ := profile.Dimension(dimension)
		band := archetype.IdealProfile[dimension]
		if band.Contains(value) {
			total += pointsPerTrait
			continue
		}
		penalty := math.Min(band.Distance(value)*penaltyPerPoint, pointsPerTrait)
		total += pointsPerTrait - penalty
	}
	return models.Round1(total)
}

// bestAlternative picks the highest-scoring other pathway still above zero.
// nil is the explicit no-viable-alternative marker.
func bestAlternative(primary string, allScores map[string]float64) *models.AlternativeChoice {
	var choice *models.AlternativeChoice
	for _, name := range refdata.PathwayNames() {
		if name == primary {
			continue
		}
		score := allScores[name]
		if score <= 0 {
			continue
		}
		if choice == nil || score > choice.FitScore {
			choice = &models.AlternativeChoice{Pathway: name, FitScore: score}
		}
	}
	return choice
}

func buildReasoning(pathway string, scores models.TraitProfile, user models.UserContext, fit float64) []string {
	var reasons []string

	switch pathway {
	case refdata.PathwayInternationalUniversity:
		if scores.Structure >= 6 {
			reasons = append(reasons, "You thrive in structured academic environments")
		}
		if scores.HandsOn <= 6 {
			reasons = append(reasons, "You prefer theoretical learning over hands-on work")
		}
		if user.Budget >= 50000 {
			reasons = append(reasons, "Your budget supports international education costs")
		}
	case refdata.PathwayLocalUniversity:
		if scores.Structure >= 5 {
			reasons = append(reasons, "You benefit from formal academic structure")
		}
		if user.Budget < 50000 {
			reasons = append(reasons, "Local university optimizes ROI within your budget")
		}
		if scores.RiskTolerance >= 4 && scores.RiskTolerance <= 8 {
			reasons = append(reasons, "You seek a balanced risk-reward profile")
		}
	case refdata.PathwayApprenticeship:
		if scores.HandsOn >= 7 {
			reasons = append(reasons, "You're a hands-on learner who learns by doing")
		}
		if scores.Grit >= 6 {
			reasons = append(reasons, "Your high grit will help you excel in work-based learning")
		}
		if user.CurrentIncome == 0 || user.Budget < 20000 {
			reasons = append(reasons, "Earning while learning addresses your financial constraints")
		}
	case refdata.PathwayMicroCredentials:
		if scores.Grit >= 7 {
			reasons = append(reasons, "Your self-motivation suits independent learning")
		}
		if scores.Structure <= 6 {
			reasons = append(reasons, "You don't need rigid academic structure to succeed")
		}
		if scores.RiskTolerance >= 6 {
			reasons = append(reasons, "You're comfortable with non-traditional career paths")
		}
		if scores.HandsOn >= 6 {
			reasons = append(reasons, "You prefer project-based learning over lectures")
		}
	}

	switch {
	case fit >= 80:
		reasons = append(reasons, fmt.Sprintf("This pathway is an excellent match (fit score: %.1f/100)", fit))
	case fit >= 60:
		reasons = append(reasons, fmt.Sprintf("This pathway is a good match (fit score: %.1f/100)", fit))
	default:
		reasons = append(reasons, "This is your best option given constraints, but consider alternatives")
	}

	return reasons
}

var nextSteps = map[string][]string{
	refdata.PathwayInternationalUniversity: {
		"1. Research visa requirements for your target country",
		"2. Identify 5-10 universities with strong programs in your interest areas",
		"3. Calculate total cost of attendance including living expenses",
		"4. Apply for scholarships and financial aid",
		"5. Verify post-graduation work authorization policies",
	},
	refdata.PathwayLocalUniversity: {
		"1. Compare programs at local universities in your area",
		"2. Check eligibility for in-state tuition rates",
		"3. Apply for local scholarships and grants",
		"4. Consider part-time work during studies",
		"5. Network with alumni in your target industry",
	},
	refdata.PathwayApprenticeship: {
		"1. Research registered apprenticeship programs in your interest areas",
		"2. Identify companies offering apprenticeships (check trade associations)",
		"3. Build a basic portfolio of relevant projects",
		"4. Prepare for employer interviews (they're evaluating work ethic)",
		"5. Consider hybrid: part-time apprenticeship + online courses",
	},
	refdata.PathwayMicroCredentials: {
		"1. Identify top bootcamps/programs in your interest area (check reviews carefully)",
		"2. Build a portfolio of 3-5 projects BEFORE spending money",
		"3. Join online communities in your target field",
		"4. Start networking on LinkedIn (50+ connections in target industry)",
		"5. Consider: Free resources first (freeCodeCamp, Coursera audit) before paid programs",
	},
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
	metrics.PathwayRecommended.WithLabelValues(output.Pathway).Inc()
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
