// Package app wires the stores together and exposes the operations the
// CLI drives. Every collaborator is constructed explicitly and passed in;
// there are no package-level singletons.
package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/shiksha/internal/catalog"
	"github.com/abhisek/shiksha/internal/insights"
	"github.com/abhisek/shiksha/internal/ledger"
	"github.com/abhisek/shiksha/internal/profile"
	"github.com/abhisek/shiksha/internal/session"
	"github.com/abhisek/shiksha/internal/speech"
	"github.com/abhisek/shiksha/internal/store"
)

const defaultSnapshotKeep = 10

// Options configures an App. Catalog is required; the rest default to
// working in-memory collaborators.
type Options struct {
	Catalog      *catalog.Store
	Snapshots    store.SnapshotRepo // nil disables persistence
	Speech       *speech.Service    // nil disables audio
	Logger       *zap.Logger
	SnapshotKeep int
}

// App owns one learner's state for the lifetime of a process.
type App struct {
	catalog   *catalog.Store
	profile   *profile.Store
	ledger    *ledger.Ledger
	insights  *insights.Calculator
	session   *session.Controller
	speech    *speech.Service
	snapshots store.SnapshotRepo
	log       *zap.Logger

	snapshotKeep int
	sequence     int64
}

// New constructs the application container.
func New(opts Options) *App {
	cat := opts.Catalog
	if cat == nil {
		cat = catalog.SeedStore()
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	keep := opts.SnapshotKeep
	if keep <= 0 {
		keep = defaultSnapshotKeep
	}

	led := ledger.New(cat)
	return &App{
		catalog:      cat,
		profile:      profile.NewStore(),
		ledger:       led,
		insights:     insights.NewCalculator(cat, led),
		session:      session.NewController(),
		speech:       opts.Speech,
		snapshots:    opts.Snapshots,
		log:          log,
		snapshotKeep: keep,
	}
}

// Catalog returns the lesson and quiz catalog.
func (a *App) Catalog() *catalog.Store {
	return a.catalog
}

// Profile returns the user profile store.
func (a *App) Profile() *profile.Store {
	return a.profile
}

// Ledger returns the progress ledger.
func (a *App) Ledger() *ledger.Ledger {
	return a.ledger
}

// Session returns the quiz session controller.
func (a *App) Session() *session.Controller {
	return a.session
}

// Onboard creates the active user with the given display name.
func (a *App) Onboard(name string, now time.Time) (profile.User, error) {
	u, err := a.profile.Initialize(name, now)
	if err != nil {
		return profile.User{}, err
	}
	a.log.Info("user onboarded", zap.String("user_id", u.ID), zap.String("name", u.Name))
	return u, nil
}

// SelectLanguage switches the active user's learning language, creating
// a placeholder user when none exists yet.
func (a *App) SelectLanguage(code catalog.LanguageCode, now time.Time) (profile.User, error) {
	u, err := a.profile.SetLanguage(code, now)
	if err != nil {
		return profile.User{}, err
	}
	a.log.Info("language selected", zap.String("language", string(code)))
	return u, nil
}

// AvailableLessons lists the lessons in the active user's language whose
// prerequisites are all completed.
func (a *App) AvailableLessons() ([]catalog.Lesson, error) {
	u, err := a.profile.User()
	if err != nil {
		return nil, err
	}
	completed := a.ledger.CompletedLessonIDs(u.ID)
	return a.catalog.AvailableLessons(u.SelectedLanguage, completed), nil
}

// CompleteLesson records a lesson completion for the active user and
// returns the canonical progress record.
func (a *App) CompleteLesson(lessonID string, score, timeSpent int, now time.Time) (ledger.UserProgress, error) {
	u, err := a.profile.User()
	if err != nil {
		return ledger.UserProgress{}, err
	}
	if _, err := a.catalog.LessonByID(lessonID); err != nil {
		return ledger.UserProgress{}, err
	}

	rec, err := a.ledger.CompleteLesson(u.ID, lessonID, score, timeSpent, now)
	if err != nil {
		return ledger.UserProgress{}, err
	}
	a.profile.TouchLastActive(now)
	a.log.Info("lesson completed",
		zap.String("lesson_id", lessonID),
		zap.Int("score", score),
		zap.Int("time_spent", timeSpent))
	return rec, nil
}

// StartQuiz begins a session over the given quiz. An in-progress session
// must be abandoned or finished first.
func (a *App) StartQuiz(quizID string, now time.Time) (catalog.Quiz, error) {
	if !a.profile.Initialized() {
		return catalog.Quiz{}, profile.ErrNoUser
	}
	quiz, err := a.catalog.QuizByID(quizID)
	if err != nil {
		return catalog.Quiz{}, err
	}
	if err := a.session.Start(quiz, now); err != nil {
		return catalog.Quiz{}, err
	}
	a.log.Info("quiz started", zap.String("quiz_id", quizID))
	return quiz, nil
}

// AbandonQuiz discards the in-progress session without recording anything.
func (a *App) AbandonQuiz() {
	a.session.Abandon()
}

// FinishQuiz ends the session, records the attempt in the ledger, and
// returns it.
func (a *App) FinishQuiz(now time.Time) (ledger.QuizAttempt, error) {
	u, err := a.profile.User()
	if err != nil {
		return ledger.QuizAttempt{}, err
	}

	quiz := a.session.Quiz()
	score, err := a.session.Finish(now)
	if err != nil {
		return ledger.QuizAttempt{}, err
	}

	answers := make([]ledger.QuizAnswer, 0, len(quiz.Questions))
	for _, r := range a.session.Results() {
		answers = append(answers, ledger.QuizAnswer{
			QuestionID:     r.QuestionID,
			SelectedAnswer: r.SelectedAnswer,
			IsCorrect:      r.IsCorrect,
			TimeSpent:      r.TimeSpent,
		})
	}

	attempt, err := a.ledger.RecordQuizAttempt(u.ID, quiz.ID, score, a.session.TimeTaken(), answers, now)
	if err != nil {
		return ledger.QuizAttempt{}, err
	}
	a.profile.TouchLastActive(now)
	a.log.Info("quiz finished",
		zap.String("quiz_id", quiz.ID),
		zap.Int("score", score),
		zap.Bool("passed", attempt.Passed))
	return attempt, nil
}

// Insights computes the active user's learning insights.
func (a *App) Insights(now time.Time) (insights.Insights, error) {
	u, err := a.profile.User()
	if err != nil {
		return insights.Insights{}, err
	}
	return a.insights.For(u, now), nil
}

// LessonAudio loads (or synthesizes) the audio clip for a lesson's text in
// the active user's language.
func (a *App) LessonAudio(ctx context.Context, lessonID string) (speech.AudioFile, error) {
	if a.speech == nil {
		return speech.AudioFile{}, fmt.Errorf("speech synthesis is not configured")
	}
	u, err := a.profile.User()
	if err != nil {
		return speech.AudioFile{}, err
	}
	lesson, err := a.catalog.LessonByID(lessonID)
	if err != nil {
		return speech.AudioFile{}, err
	}
	return a.speech.Load(ctx, lesson.Content.Text, u.SelectedLanguage)
}

// SaveState snapshots the learner state. A no-op without a snapshot repo.
func (a *App) SaveState(ctx context.Context, now time.Time) error {
	if a.snapshots == nil {
		return nil
	}

	var user *profile.User
	if u, err := a.profile.User(); err == nil {
		user = &u
	}
	progress, attempts := a.ledger.Snapshot()
	if user == nil && len(progress) == 0 && len(attempts) == 0 {
		return nil
	}

	a.sequence++
	snap := &store.Snapshot{
		Sequence:  a.sequence,
		Timestamp: now,
		Data: store.SnapshotData{
			Version:  store.SnapshotVersion,
			User:     user,
			Progress: progress,
			Attempts: attempts,
		},
	}
	if err := a.snapshots.Save(ctx, snap); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	if err := a.snapshots.Prune(ctx, a.snapshotKeep); err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	a.log.Debug("state saved", zap.Int64("sequence", a.sequence))
	return nil
}

// LoadState restores the learner state from the most recent snapshot.
// A no-op when no snapshot repo or no snapshot exists.
func (a *App) LoadState(ctx context.Context) error {
	if a.snapshots == nil {
		return nil
	}

	snap, err := a.snapshots.Latest(ctx)
	if err != nil {
		return fmt.Errorf("load state: %w", err)
	}
	if snap == nil {
		return nil
	}

	a.profile.Restore(snap.Data.User)
	a.ledger.Restore(snap.Data.Progress, snap.Data.Attempts)
	a.sequence = snap.Sequence
	a.log.Debug("state restored", zap.Int64("sequence", snap.Sequence))
	return nil
}

// ResetState wipes the user, the ledger, any in-progress session, and all
// stored snapshots.
func (a *App) ResetState(ctx context.Context) error {
	a.profile.Reset()
	a.ledger.Reset()
	a.session.Reset()
	a.sequence = 0

	if a.snapshots != nil {
		if err := a.snapshots.Clear(ctx); err != nil {
			return fmt.Errorf("reset state: %w", err)
		}
	}
	a.log.Info("state reset")
	return nil
}
