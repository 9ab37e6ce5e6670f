package catalog

// catalogSchema is the JSON schema for external catalog files. Structural
// rules the schema cannot express (prerequisite cycles, correct-answer
// consistency) are enforced by validateCatalog after decoding.
var catalogSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"lessons": map[string]any{
			"type":  "array",
			"items": lessonSchema,
		},
		"quizzes": map[string]any{
			"type":  "array",
			"items": quizSchema,
		},
	},
	"required":             []any{"lessons"},
	"additionalProperties": false,
}

var lessonSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id": map[string]any{"type": "string", "minLength": 1},
		"type": map[string]any{
			"type": "string",
			"enum": []any{"alphabet", "number", "word", "sentence", "story"},
		},
		"language": map[string]any{
			"type": "string",
			"enum": []any{"hi-IN", "ta-IN", "mr-IN", "bn-IN"},
		},
		"content": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"text":          map[string]any{"type": "string", "minLength": 1},
				"audio":         map[string]any{"type": "string"},
				"image":         map[string]any{"type": "string"},
				"translation":   map[string]any{"type": "string"},
				"pronunciation": map[string]any{"type": "string"},
			},
			"required": []any{"text", "audio"},
		},
		"difficulty": map[string]any{
			"type": "string",
			"enum": []any{"beginner", "intermediate", "advanced"},
		},
		"prerequisites": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"estimatedTime": map[string]any{"type": "integer", "minimum": 0},
		"tags": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"createdAt": map[string]any{"type": "string"},
		"updatedAt": map[string]any{"type": "string"},
	},
	"required": []any{"id", "type", "language", "content", "difficulty"},
}

var quizSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":          map[string]any{"type": "string", "minLength": 1},
		"lessonId":    map[string]any{"type": "string", "minLength": 1},
		"title":       map[string]any{"type": "string"},
		"description": map[string]any{"type": "string"},
		"questions": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{"type": "string", "minLength": 1},
					"type": map[string]any{
						"type": "string",
						"enum": []any{"multiple_choice", "drag_drop", "audio_match", "fill_blank"},
					},
					"question": map[string]any{"type": "string", "minLength": 1},
					"options": map[string]any{
						"type":     "array",
						"minItems": 2,
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"id":        map[string]any{"type": "string", "minLength": 1},
								"text":      map[string]any{"type": "string"},
								"isCorrect": map[string]any{"type": "boolean"},
							},
							"required": []any{"id", "text", "isCorrect"},
						},
					},
					"correctAnswer": map[string]any{"type": "string", "minLength": 1},
					"explanation":   map[string]any{"type": "string"},
					"timeLimit":     map[string]any{"type": "integer", "minimum": 0},
				},
				"required": []any{"id", "type", "question", "options", "correctAnswer"},
			},
		},
		"passingScore": map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
		"timeLimit":    map[string]any{"type": "integer", "minimum": 0},
		"difficulty": map[string]any{
			"type": "string",
			"enum": []any{"beginner", "intermediate", "advanced"},
		},
		"createdAt": map[string]any{"type": "string"},
	},
	"required": []any{"id", "lessonId", "title", "questions", "passingScore", "difficulty"},
}
