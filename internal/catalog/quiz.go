package catalog

import "time"

// QuestionType classifies how a quiz question is presented.
type QuestionType string

const (
	QuestionMultipleChoice QuestionType = "multiple_choice"
	QuestionDragDrop       QuestionType = "drag_drop"
	QuestionAudioMatch     QuestionType = "audio_match"
	QuestionFillBlank      QuestionType = "fill_blank"
)

// QuizOption is one selectable answer for a question.
type QuizOption struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Audio     string `json:"audio,omitempty"`
	Image     string `json:"image,omitempty"`
	IsCorrect bool   `json:"isCorrect"`
}

// QuizQuestion is a single question within a quiz. Exactly one option
// carries IsCorrect, and CorrectAnswer names that option's ID.
type QuizQuestion struct {
	ID            string       `json:"id"`
	Type          QuestionType `json:"type"`
	Question      string       `json:"question"`
	Audio         string       `json:"audio,omitempty"`
	Image         string       `json:"image,omitempty"`
	Options       []QuizOption `json:"options"`
	CorrectAnswer string       `json:"correctAnswer"`
	Explanation   string       `json:"explanation,omitempty"`
	TimeLimit     int          `json:"timeLimit,omitempty"` // seconds, per question
}

// Quiz is a set of questions tied to a lesson, with a passing threshold.
type Quiz struct {
	ID           string         `json:"id"`
	LessonID     string         `json:"lessonId"`
	Title        string         `json:"title"`
	Description  string         `json:"description,omitempty"`
	Questions    []QuizQuestion `json:"questions"`
	PassingScore int            `json:"passingScore"`        // percentage, 0-100
	TimeLimit    int            `json:"timeLimit,omitempty"` // minutes, whole quiz
	Difficulty   Difficulty     `json:"difficulty"`
	CreatedAt    time.Time      `json:"createdAt"`
}

// CorrectOption returns the option marked correct for q.
func (q QuizQuestion) CorrectOption() (QuizOption, bool) {
	for _, opt := range q.Options {
		if opt.IsCorrect {
			return opt, true
		}
	}
	return QuizOption{}, false
}
