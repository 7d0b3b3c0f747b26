// Package refdata holds the immutable reference tables behind the assessment
// pipeline: the question bank, keyword categories, pathway archetypes, and the
// salary/cost tables. Everything here is loaded once at init and never mutated.
package refdata

// OptionWeights maps the four option letters to an integer trait weight (0-10).
type OptionWeights struct {
	A, B, C, D int
}

// For returns the weight for an option letter.
func (w OptionWeights) For(option string) (int, bool) {
	switch option {
	case "A":
		return w.A, true
	case "B":
		return w.B, true
	case "C":
		return w.C, true
	case "D":
		return w.D, true
	}
	return 0, false
}

// TraitWeights is the per-trait weight table for one question.
type TraitWeights struct {
	Grit          OptionWeights
	HandsOn       OptionWeights
	Structure     OptionWeights
	RiskTolerance OptionWeights
}

// Question is one entry of the fixed psychometric questionnaire.
type Question struct {
	ID      string
	Prompt  string
	Options map[string]string
	Weights TraitWeights
}

// MaxWeightPerQuestion is the weight cap per question and trait; with seven
// questions the maximum attainable raw sum per trait is 70.
const MaxWeightPerQuestion = 10

// Questions is the fixed, ordered seven-question bank.
var Questions = []Question{
	{
		ID:     "q1_failure_response",
		Prompt: "You spent 6 months learning to code but failed your first technical interview. What do you do?",
		Options: map[string]string{
			"A": "Take a break and reconsider if coding is right for me",
			"B": "Analyze what went wrong, practice more, and reapply",
			"C": "Look for a bootcamp or structured course to fill gaps",
			"D": "Switch to a different career path that might be easier",
		},
		Weights: TraitWeights{
			Grit:          OptionWeights{A: 3, B: 9, C: 6, D: 1},
			HandsOn:       OptionWeights{A: 5, B: 8, C: 4, D: 5},
			Structure:     OptionWeights{A: 5, B: 3, C: 9, D: 7},
			RiskTolerance: OptionWeights{A: 4, B: 8, C: 5, D: 2},
		},
	},
	{
		ID:     "q2_learning_style",
		Prompt: "Which learning experience sounds MOST appealing to you?",
		Options: map[string]string{
			"A": "Building projects and learning by trial and error",
			"B": "Following a structured curriculum with clear milestones",
			"C": "Working under an experienced mentor in a real work environment",
			"D": "Watching online courses and reading documentation at my own pace",
		},
		Weights: TraitWeights{
			Grit:          OptionWeights{A: 8, B: 6, C: 7, D: 4},
			HandsOn:       OptionWeights{A: 9, B: 4, C: 10, D: 3},
			Structure:     OptionWeights{A: 3, B: 10, C: 6, D: 5},
			RiskTolerance: OptionWeights{A: 7, B: 5, C: 6, D: 6},
		},
	},
	{
		ID:     "q3_social_vs_technical",
		Prompt: "In a group project, you naturally gravitate toward:",
		Options: map[string]string{
			"A": "Coordinating the team and managing timelines",
			"B": "Doing deep technical work alone and presenting results",
			"C": "Building the actual product/deliverable",
			"D": "Researching best practices and creating documentation",
		},
		Weights: TraitWeights{
			Grit:          OptionWeights{A: 6, B: 7, C: 8, D: 5},
			HandsOn:       OptionWeights{A: 4, B: 6, C: 10, D: 3},
			Structure:     OptionWeights{A: 7, B: 5, C: 4, D: 8},
			RiskTolerance: OptionWeights{A: 7, B: 5, C: 8, D: 4},
		},
	},
	{
		ID:     "q4_uncertainty_tolerance",
		Prompt: "You have $20,000. Which option appeals most?",
		Options: map[string]string{
			"A": "Attend a prestigious university program ($20k/year for 4 years) - go into debt but get the degree",
			"B": "Attend a local state university ($8k/year) and graduate debt-free",
			"C": "Do a 6-month coding bootcamp ($15k) then start job hunting",
			"D": "Self-study with free resources and build a portfolio, keeping the $20k",
		},
		Weights: TraitWeights{
			Grit:          OptionWeights{A: 5, B: 6, C: 8, D: 9},
			HandsOn:       OptionWeights{A: 3, B: 4, C: 9, D: 10},
			Structure:     OptionWeights{A: 9, B: 8, C: 6, D: 2},
			RiskTolerance: OptionWeights{A: 3, B: 5, C: 7, D: 9},
		},
	},
	{
		ID:     "q5_motivation_driver",
		Prompt: "What motivates you MOST to pursue further education?",
		Options: map[string]string{
			"A": "The credential/degree itself (family expectations, visa requirements)",
			"B": "Learning skills I can immediately apply to earn money",
			"C": "Gaining deep theoretical knowledge in a field I love",
			"D": "Making professional connections and building a network",
		},
		Weights: TraitWeights{
			Grit:          OptionWeights{A: 4, B: 8, C: 7, D: 6},
			HandsOn:       OptionWeights{A: 2, B: 10, C: 4, D: 5},
			Structure:     OptionWeights{A: 9, B: 4, C: 8, D: 6},
			RiskTolerance: OptionWeights{A: 3, B: 8, C: 5, D: 7},
		},
	},
	{
		ID:     "q6_time_horizon",
		Prompt: "When do you need to see results from your education investment?",
		Options: map[string]string{
			"A": "Within 6-12 months (I need income soon)",
			"B": "2-3 years (willing to invest time for better long-term outcome)",
			"C": "4+ years (I can afford to take the traditional path)",
			"D": "It doesn't matter - I'm learning for personal growth",
		},
		Weights: TraitWeights{
			Grit:          OptionWeights{A: 7, B: 8, C: 5, D: 6},
			HandsOn:       OptionWeights{A: 9, B: 7, C: 4, D: 5},
			Structure:     OptionWeights{A: 4, B: 6, C: 9, D: 3},
			RiskTolerance: OptionWeights{A: 8, B: 6, C: 4, D: 7},
		},
	},
	{
		ID:     "q7_feedback_preference",
		Prompt: "How do you prefer to receive feedback on your work?",
		Options: map[string]string{
			"A": "Regular structured assessments (exams, grades, formal reviews)",
			"B": "Real-world consequences (client reactions, product metrics)",
			"C": "Continuous feedback from a mentor or supervisor",
			"D": "Self-assessment based on my own standards",
		},
		Weights: TraitWeights{
			Grit:          OptionWeights{A: 5, B: 9, C: 7, D: 8},
			HandsOn:       OptionWeights{A: 3, B: 10, C: 8, D: 6},
			Structure:     OptionWeights{A: 10, B: 4, C: 7, D: 2},
			RiskTolerance: OptionWeights{A: 4, B: 8, C: 6, D: 7},
		},
	},
}

// MaxTraitSum is the maximum attainable raw sum per trait across the bank.
var MaxTraitSum = len(Questions) * MaxWeightPerQuestion

// QuestionByID returns the question with the given id.
func QuestionByID(id string) (Question, bool) {
	for _, q := range Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}
