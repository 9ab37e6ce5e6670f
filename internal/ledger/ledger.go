package ledger

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/shiksha/internal/catalog"
)

// ErrInvalidScore is returned for scores outside [0, 100].
var ErrInvalidScore = errors.New("score must be between 0 and 100")

// Ledger holds the progress records and quiz attempts of the running
// instance. Writes for the same (user, lesson) pair are applied in call
// order; the last write wins on score, time and completion timestamp.
//
// The ledger does not enforce that userID references an existing user;
// the app layer always passes the active user's id.
type Ledger struct {
	catalog  *catalog.Store
	progress []UserProgress
	attempts []QuizAttempt
}

// New creates an empty ledger backed by the given catalog for quiz lookups.
func New(cat *catalog.Store) *Ledger {
	return &Ledger{catalog: cat}
}

// CompleteLesson records a lesson completion. If a record for the
// (userID, lessonID) pair exists it is updated in place, otherwise a new
// record is created. Returns the resulting record.
func (l *Ledger) CompleteLesson(userID, lessonID string, score, timeSpent int, now time.Time) (UserProgress, error) {
	if score < 0 || score > 100 {
		return UserProgress{}, fmt.Errorf("complete lesson %q: %w", lessonID, ErrInvalidScore)
	}

	for i := range l.progress {
		p := &l.progress[i]
		if p.UserID == userID && p.LessonID == lessonID {
			p.Completed = true
			p.Score = score
			p.TimeSpent = timeSpent
			completedAt := now
			p.CompletedAt = &completedAt
			p.UpdatedAt = now
			return *p, nil
		}
	}

	completedAt := now
	record := UserProgress{
		ID:          uuid.NewString(),
		UserID:      userID,
		LessonID:    lessonID,
		Completed:   true,
		Score:       score,
		TimeSpent:   timeSpent,
		Mistakes:    []string{},
		CompletedAt: &completedAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	l.progress = append(l.progress, record)
	return record, nil
}

// RecordQuizAttempt appends a new attempt. Passed is computed from the
// quiz's passing score, looked up in the catalog.
func (l *Ledger) RecordQuizAttempt(userID, quizID string, score, timeTaken int, answers []QuizAnswer, now time.Time) (QuizAttempt, error) {
	if score < 0 || score > 100 {
		return QuizAttempt{}, fmt.Errorf("record attempt for quiz %q: %w", quizID, ErrInvalidScore)
	}

	quiz, err := l.catalog.QuizByID(quizID)
	if err != nil {
		return QuizAttempt{}, err
	}

	if answers == nil {
		answers = []QuizAnswer{}
	}
	attempt := QuizAttempt{
		ID:        uuid.NewString(),
		UserID:    userID,
		QuizID:    quizID,
		Score:     score,
		TimeTaken: timeTaken,
		Answers:   answers,
		Passed:    score >= quiz.PassingScore,
		CreatedAt: now,
	}
	l.attempts = append(l.attempts, attempt)
	return attempt, nil
}

// ProgressFor returns the progress record for the (user, lesson) pair.
func (l *Ledger) ProgressFor(userID, lessonID string) (UserProgress, bool) {
	for _, p := range l.progress {
		if p.UserID == userID && p.LessonID == lessonID {
			return p, true
		}
	}
	return UserProgress{}, false
}

// AllProgress returns every progress record for the user, in record
// creation order.
func (l *Ledger) AllProgress(userID string) []UserProgress {
	var out []UserProgress
	for _, p := range l.progress {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out
}

// CompletedLessonIDs returns the user's completed-lesson set, used to
// compute lesson availability against prerequisites.
func (l *Ledger) CompletedLessonIDs(userID string) map[string]bool {
	out := make(map[string]bool)
	for _, p := range l.progress {
		if p.UserID == userID && p.Completed {
			out[p.LessonID] = true
		}
	}
	return out
}

// Attempts returns the user's quiz attempts in append order. A zero
// quizID returns attempts across all quizzes.
func (l *Ledger) Attempts(userID, quizID string) []QuizAttempt {
	var out []QuizAttempt
	for _, a := range l.attempts {
		if a.UserID == userID && (quizID == "" || a.QuizID == quizID) {
			out = append(out, a)
		}
	}
	return out
}

// Reset discards all progress records and quiz attempts.
func (l *Ledger) Reset() {
	l.progress = nil
	l.attempts = nil
}

// Snapshot returns copies of the ledger's contents for persistence.
func (l *Ledger) Snapshot() ([]UserProgress, []QuizAttempt) {
	progress := make([]UserProgress, len(l.progress))
	copy(progress, l.progress)
	attempts := make([]QuizAttempt, len(l.attempts))
	copy(attempts, l.attempts)
	return progress, attempts
}

// Restore replaces the ledger's contents with previously saved records.
func (l *Ledger) Restore(progress []UserProgress, attempts []QuizAttempt) {
	l.progress = make([]UserProgress, len(progress))
	copy(l.progress, progress)
	l.attempts = make([]QuizAttempt, len(attempts))
	copy(l.attempts, attempts)
}
