// internal/workers/assessment/validate-assessment-input/handler_test.go
package validateassessmentinput

import (
	"context"
	"testing"

	"pathfinder-workers/internal/common/logger"
	"pathfinder-workers/internal/models"
	"pathfinder-workers/internal/refdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullResponses(option string) models.ResponseSet {
	responses := models.ResponseSet{}
	for _, q := range refdata.Questions {
		responses[q.ID] = option
	}
	return responses
}

func validUser() models.UserContext {
	return models.UserContext{
		Name:          "Alex",
		Budget:        15000,
		CurrentIncome: 0,
		Interests:     []string{"Technology & Software"},
		TargetCountry: "UK",
	}
}

func TestHandler_Execute_ValidSubmission(t *testing.T) {
	h := NewHandler(LoadConfig(), logger.NewTestLogger(t))

	output, err := h.Execute(context.Background(), &Input{
		RequestID: "req-1",
		Responses: fullResponses("B"),
		User:      validUser(),
	})
	require.NoError(t, err)
	assert.True(t, output.Valid)
	assert.Equal(t, "req-1", output.RequestID)
	assert.Empty(t, output.Warnings)
}

func TestHandler_Execute_MissingAnswer(t *testing.T) {
	h := NewHandler(LoadConfig(), logger.NewTestLogger(t))

	responses := fullResponses("A")
	delete(responses, "q5_motivation_driver")

	_, err := h.Execute(context.Background(), &Input{
		RequestID: "req-2",
		Responses: responses,
		User:      validUser(),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIncompleteInput)
	assert.Contains(t, err.Error(), "q5_motivation_driver")
}

func TestHandler_Execute_InvalidOptionLetter(t *testing.T) {
	h := NewHandler(LoadConfig(), logger.NewTestLogger(t))

	responses := fullResponses("C")
	responses["q1_failure_response"] = "E"

	_, err := h.Execute(context.Background(), &Input{
		Responses: responses,
		User:      validUser(),
	})
	require.Error(t, err)
	// The schema rejects out-of-range letters before the per-question check.
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestHandler_Execute_SchemaViolations(t *testing.T) {
	h := NewHandler(LoadConfig(), logger.NewTestLogger(t))

	tests := []struct {
		name  string
		input Input
	}{
		{
			name: "negative budget",
			input: Input{
				Responses: fullResponses("B"),
				User: models.UserContext{
					Budget:    -100,
					Interests: []string{"Technology & Software"},
				},
			},
		},
		{
			name: "empty interests",
			input: Input{
				Responses: fullResponses("B"),
				User:      models.UserContext{Budget: 1000, Interests: []string{}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.Execute(context.Background(), &tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidationFailed)
		})
	}
}

func TestHandler_Execute_UnknownNamesPassWithWarnings(t *testing.T) {
	h := NewHandler(LoadConfig(), logger.NewTestLogger(t))

	user := validUser()
	user.Interests = []string{"Astrology"}
	user.TargetCountry = "Atlantis"

	output, err := h.Execute(context.Background(), &Input{
		RequestID: "req-3",
		Responses: fullResponses("D"),
		User:      user,
	})
	require.NoError(t, err)
	assert.True(t, output.Valid)
	require.Len(t, output.Warnings, 2)
	assert.Contains(t, output.Warnings[0], "Astrology")
	assert.Contains(t, output.Warnings[1], "Atlantis")
}
