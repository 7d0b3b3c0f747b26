// internal/workers/recommendation/project-roi/handler.go
package projectroi

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

const TaskType = "project-roi"

const (
	projectionYears = 5
	roiCap          = 99.99
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
		h.failJob(client, job, "ROI_PROJECTION_FAILED", err.Error())
		return
	}

	h.completeJob(client, job, output)
}

// execute projects all four pathways fresh from the reference tables, then
// classifies each row and summarizes the spread.
func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	field := input.User.PrimaryField()
	if _, ok := refdata.SalaryData[field]; !ok {
		h.logger.Warn("unrecognized field, using default", map[string]interface{}{
			"requestId": input.RequestID,
			"field":     field,
			"fallback":  refdata.DefaultField,
			"errorCode": "UNRECOGNIZED_FIELD",
		})
	}
	country := input.User.TargetCountry
	if _, ok := refdata.UniversityCosts[refdata.PathwayInternationalUniversity][country]; !ok {
		h.logger.Warn("unrecognized country, using home-country costs", map[string]interface{}{
			"requestId": input.RequestID,
			"country":   country,
			"fallback":  refdata.FallbackCountry,
			"errorCode": "UNRECOGNIZED_COUNTRY",
		})
	}

	projections := make([]models.ROIRow, 0, len(refdata.Pathways))
	outcomes := map[string]models.PathwayOutcome{}
	for _, name := range refdata.PathwayNames() {
		row := projectPathway(name, input.User.CurrentIncome, field, country)
		projections = append(projections, row)
		level, message := h.classifyOutcome(row)
		outcomes[name] = models.PathwayOutcome{Level: level, Message: message}
	}

	return &Output{
		Projections: projections,
		Outcomes:    outcomes,
		Comparison:  comparePathways(projections),
	}, nil
}

// projectPathway runs the five-year ledger for one pathway. Values are kept
// unrounded so NetWealthYear5 equals TotalEarnings5yr minus TotalCost exactly.
func projectPathway(pathway string, currentIncome float64, field, country string) models.ROIRow {
	cost, _ := refdata.CostFor(pathway, country)
	salary, _ := refdata.SalaryFor(field, pathway)

	duration := cost.DurationYears
	totalEducationCost := cost.AnnualCost() * duration

	totalEarnings := 0.0
	year5Salary := 0.0
	for year := 1; year <= projectionYears; year++ {
		var yearlySalary float64
		if float64(year) <= duration {
			// Still in education. Apprentices draw the training wage.
			if pathway == refdata.PathwayApprenticeship {
				yearlySalary = math.Abs(cost.Tuition)
				totalEarnings += yearlySalary
			}
		} else {
			// Fractional durations give a fractional first working year's
			// seniority, hence the float exponent.
			yearsWorking := float64(year) - duration
			yearlySalary = salary.Starting * math.Pow(1+salary.GrowthRate, yearsWorking-1)
			totalEarnings += yearlySalary
		}
		if year == projectionYears {
			year5Salary = yearlySalary
			if year5Salary <= 0 {
				year5Salary = salary.Starting
			}
		}
	}

	// Apprentices earn instead of forgoing income, so no opportunity cost.
	opportunityCost := 0.0
	if currentIncome > 0 && duration > 0 && pathway != refdata.PathwayApprenticeship {
		opportunityCost = currentIncome * duration
	}

	totalCost := math.Max(totalEducationCost, 0) + opportunityCost
	netWealth := totalEarnings - totalCost

	var roi float64
	switch {
	case totalCost > 0:
		roi = math.Min(totalEarnings/totalCost, roiCap)
	case totalEarnings > 0:
		roi = roiCap
	}

	return models.ROIRow{
		Pathway:                pathway,
		TotalCost:              totalCost,
		Year5Salary:            year5Salary,
		NetWealthYear5:         netWealth,
		ROIMultiple:            models.Round2(roi),
		TotalEarnings5yr:       totalEarnings,
		EducationDurationYears: duration,
	}
}

// classifyOutcome is the three-way financial warning for one row.
func (h *Handler) classifyOutcome(row models.ROIRow) (models.OutcomeLevel, string) {
	switch {
	case row.NetWealthYear5 < 0:
		return models.OutcomeDebtWarning,
			fmt.Sprintf("You will be £%.0f in debt after 5 years", math.Abs(row.NetWealthYear5))
	case row.ROIMultiple < h.config.LowROIThreshold:
		return models.OutcomeLowROI,
			fmt.Sprintf("Low ROI: Only £%.2f earned per £1 invested", row.ROIMultiple)
	default:
		return models.OutcomeViable, "Financially viable pathway"
	}
}

// comparePathways ranks the rows by five-year net wealth.
func comparePathways(rows []models.ROIRow) models.ComparisonSummary {
	best := rows[0]
	worst := rows[0]
	for _, row := range rows[1:] {
		if row.NetWealthYear5 > best.NetWealthYear5 {
			best = row
		}
		if row.NetWealthYear5 < worst.NetWealthYear5 {
			worst = row
		}
	}
	delta := best.NetWealthYear5 - worst.NetWealthYear5
	return models.ComparisonSummary{
		BestPathway:    best.Pathway,
		BestNetWealth:  best.NetWealthYear5,
		WorstPathway:   worst.Pathway,
		WorstNetWealth: worst.NetWealthYear5,
		WealthDelta:    delta,
		Recommendation: fmt.Sprintf("Choosing %s over %s results in £%.0f more wealth after 5 years",
			best.Pathway, worst.Pathway, delta),
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
