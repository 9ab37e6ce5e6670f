// Package ledger records per-lesson completion and per-quiz attempts for
// the active user.
package ledger

import "time"

// UserProgress is the canonical completion record for one (user, lesson)
// pair. Re-completion updates the existing record in place; the ledger
// never holds two records for the same pair.
type UserProgress struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	LessonID    string     `json:"lessonId"`
	Completed   bool       `json:"completed"`
	Score       int        `json:"score"`     // 0-100
	TimeSpent   int        `json:"timeSpent"` // seconds
	Mistakes    []string   `json:"mistakes"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// QuizAnswer is one answered question within a quiz attempt.
type QuizAnswer struct {
	QuestionID     string `json:"questionId"`
	SelectedAnswer string `json:"selectedAnswer"`
	IsCorrect      bool   `json:"isCorrect"`
	TimeSpent      int    `json:"timeSpent"` // seconds
}

// QuizAttempt is one quiz-taking session's outcome. Attempts are
// append-only: every attempt is a new record.
type QuizAttempt struct {
	ID        string       `json:"id"`
	UserID    string       `json:"userId"`
	QuizID    string       `json:"quizId"`
	Score     int          `json:"score"`     // 0-100
	TimeTaken int          `json:"timeTaken"` // seconds
	Answers   []QuizAnswer `json:"answers"`
	Passed    bool         `json:"passed"`
	CreatedAt time.Time    `json:"createdAt"`
}
