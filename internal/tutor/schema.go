package tutor

import "github.com/LinosCo/trainbot/internal/llm"

// ExplanationSchema defines the JSON schema for topic explanations.
var ExplanationSchema = &llm.Schema{
	Name:        "topic-explanation",
	Description: "An explanation of one training topic, pitched at the learner",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"explanation": map[string]any{
				"type":        "string",
				"description": "The explanation text, in short paragraphs",
			},
		},
		"required":             []any{"explanation"},
		"additionalProperties": false,
	},
}

// CheckQuestionSchema defines the JSON schema for the open comprehension
// question asked after an explanation.
var CheckQuestionSchema = &llm.Schema{
	Name:        "check-question",
	Description: "One open question probing whether the explanation landed",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "A single open question answerable in a few sentences",
			},
		},
		"required":             []any{"question"},
		"additionalProperties": false,
	},
}

// QuizSchema defines the JSON schema for generated quiz questions.
var QuizSchema = &llm.Schema{
	Name:        "quiz-questions",
	Description: "Closed quiz questions for a training topic",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"type": map[string]any{
							"type": "string",
							"enum": []any{"multiple_choice", "true_false"},
						},
						"question": map[string]any{
							"type": "string",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Answer options; exactly 2 for true_false",
						},
						"correct_index": map[string]any{
							"type":        "integer",
							"description": "Zero-based index of the correct option",
						},
					},
					"required":             []any{"type", "question", "options", "correct_index"},
					"additionalProperties": false,
				},
				"minItems": 1,
				"maxItems": 3,
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}

// GradingSchema defines the JSON schema for open-answer grading.
var GradingSchema = &llm.Schema{
	Name:        "answer-grade",
	Description: "Score, gaps, and feedback for a learner's free-text answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     100,
				"description": "How well the answer covers the objectives",
			},
			"gaps": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Specific missing or wrong pieces (5-10 words each)",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "1-3 sentences of direct feedback to the learner",
			},
		},
		"required":             []any{"score", "gaps", "feedback"},
		"additionalProperties": false,
	},
}

// FinalFeedbackSchema defines the JSON schema for session closing feedback.
var FinalFeedbackSchema = &llm.Schema{
	Name:        "final-feedback",
	Description: "Closing feedback summarizing the whole training session",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"feedback": map[string]any{
				"type":        "string",
				"description": "3-6 sentences covering strengths, weak topics, and next steps",
			},
		},
		"required":             []any{"feedback"},
		"additionalProperties": false,
	},
}
