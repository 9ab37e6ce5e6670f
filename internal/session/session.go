// Package session holds the transient state machine for taking a quiz.
// A session lives in memory only; recording the outcome in the ledger is
// the caller's responsibility after Finish.
package session

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/abhisek/shiksha/internal/catalog"
)

var (
	// ErrSessionActive is returned when Start is called while a session
	// is in progress. The caller must Finish or Abandon first; sessions
	// are never discarded silently.
	ErrSessionActive = errors.New("a quiz session is already in progress")

	// ErrNotStarted is returned by operations that require an active
	// session.
	ErrNotStarted = errors.New("no quiz session in progress")

	// ErrUnknownQuestion is returned when answering a question that is
	// not part of the current quiz.
	ErrUnknownQuestion = errors.New("question not in current quiz")
)

// Phase is the lifecycle state of a quiz session.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseInProgress
	PhaseFinished
)

// String returns the phase name for display.
func (p Phase) String() string {
	switch p {
	case PhaseInProgress:
		return "in progress"
	case PhaseFinished:
		return "finished"
	default:
		return "not started"
	}
}

// answerEntry records one selected option and the seconds spent on it.
type answerEntry struct {
	optionID  string
	timeSpent int
}

// AnswerResult is the outcome for one question, produced after scoring.
type AnswerResult struct {
	QuestionID     string
	SelectedAnswer string
	IsCorrect      bool
	TimeSpent      int // seconds
}

// Controller walks a user through one quiz at a time. It is not safe for
// concurrent use; the app drives it from a single caller.
type Controller struct {
	quiz          catalog.Quiz
	phase         Phase
	currentIndex  int
	answers       map[string]answerEntry
	timeRemaining int // seconds; 0 when the quiz has no time limit
	startedAt     time.Time
	finishedAt    time.Time
}

// NewController returns a controller in the NotStarted phase.
func NewController() *Controller {
	return &Controller{answers: make(map[string]answerEntry)}
}

// Start begins a session over the given quiz. Starting while another
// session is in progress is rejected; call Abandon first to discard it.
func (c *Controller) Start(quiz catalog.Quiz, now time.Time) error {
	if c.phase == PhaseInProgress {
		return fmt.Errorf("start quiz %q: %w", quiz.ID, ErrSessionActive)
	}

	c.quiz = quiz
	c.phase = PhaseInProgress
	c.currentIndex = 0
	c.answers = make(map[string]answerEntry)
	c.timeRemaining = quiz.TimeLimit * 60
	c.startedAt = now
	c.finishedAt = time.Time{}
	return nil
}

// Abandon discards the current session, returning to NotStarted. Safe to
// call in any phase.
func (c *Controller) Abandon() {
	c.phase = PhaseNotStarted
	c.quiz = catalog.Quiz{}
	c.currentIndex = 0
	c.answers = make(map[string]answerEntry)
	c.timeRemaining = 0
}

// Answer records the selected option for a question. Re-answering
// overwrites the previous selection. The current question index does not
// advance; navigation is explicit.
func (c *Controller) Answer(questionID, optionID string, timeSpent int) error {
	if c.phase != PhaseInProgress {
		return ErrNotStarted
	}
	if !c.hasQuestion(questionID) {
		return fmt.Errorf("answer %q: %w", questionID, ErrUnknownQuestion)
	}
	c.answers[questionID] = answerEntry{optionID: optionID, timeSpent: timeSpent}
	return nil
}

// Next advances to the following question. A no-op on the last question.
func (c *Controller) Next() {
	if c.phase == PhaseInProgress && c.currentIndex < len(c.quiz.Questions)-1 {
		c.currentIndex++
	}
}

// Previous moves back one question. A no-op on the first question.
func (c *Controller) Previous() {
	if c.phase == PhaseInProgress && c.currentIndex > 0 {
		c.currentIndex--
	}
}

// GoTo jumps to the question at index. Out-of-range requests are no-ops.
func (c *Controller) GoTo(index int) {
	if c.phase == PhaseInProgress && index >= 0 && index < len(c.quiz.Questions) {
		c.currentIndex = index
	}
}

// Tick decrements the remaining time, floored at zero. Hitting zero is a
// signal for the caller to force-finish; the controller itself does not
// change phase.
func (c *Controller) Tick(secondsElapsed int) {
	if c.phase != PhaseInProgress || c.quiz.TimeLimit == 0 {
		return
	}
	c.timeRemaining -= secondsElapsed
	if c.timeRemaining < 0 {
		c.timeRemaining = 0
	}
}

// TimeExpired reports whether a timed quiz has run out of time.
func (c *Controller) TimeExpired() bool {
	return c.phase == PhaseInProgress && c.quiz.TimeLimit > 0 && c.timeRemaining == 0
}

// Score computes the percentage of questions answered with the correct
// option, rounded to the nearest integer.
func (c *Controller) Score() int {
	total := len(c.quiz.Questions)
	if total == 0 {
		return 0
	}
	correct := 0
	for _, q := range c.quiz.Questions {
		if entry, ok := c.answers[q.ID]; ok && entry.optionID == q.CorrectAnswer {
			correct++
		}
	}
	return int(math.Round(100 * float64(correct) / float64(total)))
}

// Finish ends the session and returns the final score. The caller then
// records the attempt in the ledger.
func (c *Controller) Finish(now time.Time) (int, error) {
	if c.phase != PhaseInProgress {
		return 0, ErrNotStarted
	}
	c.phase = PhaseFinished
	c.finishedAt = now
	return c.Score(), nil
}

// Reset returns the controller to NotStarted, clearing all session state.
func (c *Controller) Reset() {
	c.Abandon()
}

// Results returns the per-question outcomes in quiz question order.
// Unanswered questions appear with an empty selection.
func (c *Controller) Results() []AnswerResult {
	out := make([]AnswerResult, 0, len(c.quiz.Questions))
	for _, q := range c.quiz.Questions {
		entry := c.answers[q.ID]
		out = append(out, AnswerResult{
			QuestionID:     q.ID,
			SelectedAnswer: entry.optionID,
			IsCorrect:      entry.optionID != "" && entry.optionID == q.CorrectAnswer,
			TimeSpent:      entry.timeSpent,
		})
	}
	return out
}

// Phase returns the current lifecycle phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Quiz returns the quiz under way. Valid while InProgress or Finished.
func (c *Controller) Quiz() catalog.Quiz {
	return c.quiz
}

// CurrentIndex returns the index of the question being displayed.
func (c *Controller) CurrentIndex() int {
	return c.currentIndex
}

// CurrentQuestion returns the question at the current index.
func (c *Controller) CurrentQuestion() (catalog.QuizQuestion, bool) {
	if c.phase != PhaseInProgress || c.currentIndex >= len(c.quiz.Questions) {
		return catalog.QuizQuestion{}, false
	}
	return c.quiz.Questions[c.currentIndex], true
}

// AnsweredCount returns how many questions have a recorded answer.
func (c *Controller) AnsweredCount() int {
	return len(c.answers)
}

// TimeRemaining returns the seconds left on a timed quiz.
func (c *Controller) TimeRemaining() int {
	return c.timeRemaining
}

// TimeTaken returns the wall-clock seconds between Start and Finish.
// Zero until the session finishes.
func (c *Controller) TimeTaken() int {
	if c.finishedAt.IsZero() {
		return 0
	}
	return int(c.finishedAt.Sub(c.startedAt).Seconds())
}

func (c *Controller) hasQuestion(questionID string) bool {
	for _, q := range c.quiz.Questions {
		if q.ID == questionID {
			return true
		}
	}
	return false
}
