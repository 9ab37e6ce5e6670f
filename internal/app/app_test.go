package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/shiksha/internal/catalog"
	"github.com/abhisek/shiksha/internal/profile"
	"github.com/abhisek/shiksha/internal/session"
	"github.com/abhisek/shiksha/internal/speech"
	"github.com/abhisek/shiksha/internal/store"
)

var testNow = time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC)

func newTestApp(t *testing.T) *App {
	t.Helper()
	return New(Options{})
}

func newTestAppWithStore(t *testing.T) (*App, *store.Store) {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return New(Options{Snapshots: s.SnapshotRepo()}), s
}

func TestLearningScenario(t *testing.T) {
	a := newTestApp(t)

	// Asha onboards and picks Hindi.
	u, err := a.Onboard("Asha", testNow)
	if err != nil {
		t.Fatalf("Onboard failed: %v", err)
	}
	if _, err := a.SelectLanguage(catalog.LangHindi, testNow); err != nil {
		t.Fatalf("SelectLanguage failed: %v", err)
	}

	// Only lessons without prerequisites are available at first.
	available, err := a.AvailableLessons()
	if err != nil {
		t.Fatalf("AvailableLessons failed: %v", err)
	}
	for _, l := range available {
		if len(l.Prerequisites) != 0 {
			t.Errorf("lesson %s should be gated by prerequisites", l.ID)
		}
	}

	// She completes hindi-ka with score 90 in 120 seconds.
	rec, err := a.CompleteLesson("hindi-ka", 90, 120, testNow)
	if err != nil {
		t.Fatalf("CompleteLesson failed: %v", err)
	}
	if rec.UserID != u.ID || !rec.Completed {
		t.Errorf("progress record = %+v", rec)
	}

	ins, err := a.Insights(testNow)
	if err != nil {
		t.Fatalf("Insights failed: %v", err)
	}
	if ins.TotalLessonsCompleted != 1 {
		t.Errorf("TotalLessonsCompleted = %d, want 1", ins.TotalLessonsCompleted)
	}
	if ins.AverageScore != 90 {
		t.Errorf("AverageScore = %d, want 90", ins.AverageScore)
	}
	if ins.TotalTimeSpent != 120 {
		t.Errorf("TotalTimeSpent = %d, want 120", ins.TotalTimeSpent)
	}

	// Completing hindi-ka unlocks hindi-kha.
	available, _ = a.AvailableLessons()
	found := false
	for _, l := range available {
		if l.ID == "hindi-kha" {
			found = true
		}
	}
	if !found {
		t.Error("hindi-kha should be available after completing hindi-ka")
	}
}

func TestQuizFlow(t *testing.T) {
	a := newTestApp(t)
	a.Onboard("Asha", testNow)
	a.SelectLanguage(catalog.LangHindi, testNow)

	quiz, err := a.StartQuiz("hindi-alphabet-quiz-1", testNow)
	if err != nil {
		t.Fatalf("StartQuiz failed: %v", err)
	}
	if len(quiz.Questions) != 2 {
		t.Fatalf("expected the seed quiz's 2 questions, got %d", len(quiz.Questions))
	}

	// First answer correct, second wrong: score 50.
	q1, q2 := quiz.Questions[0], quiz.Questions[1]
	if err := a.Session().Answer(q1.ID, q1.CorrectAnswer, 10); err != nil {
		t.Fatalf("Answer failed: %v", err)
	}
	wrong := ""
	for _, o := range q2.Options {
		if o.ID != q2.CorrectAnswer {
			wrong = o.ID
			break
		}
	}
	if err := a.Session().Answer(q2.ID, wrong, 15); err != nil {
		t.Fatalf("Answer failed: %v", err)
	}

	attempt, err := a.FinishQuiz(testNow.Add(30 * time.Second))
	if err != nil {
		t.Fatalf("FinishQuiz failed: %v", err)
	}
	if attempt.Score != 50 {
		t.Errorf("Score = %d, want 50", attempt.Score)
	}
	if attempt.Passed {
		t.Error("50 should not pass a 70 threshold")
	}
	if attempt.TimeTaken != 30 {
		t.Errorf("TimeTaken = %d, want 30", attempt.TimeTaken)
	}
	if len(attempt.Answers) != 2 {
		t.Errorf("answers = %d, want 2", len(attempt.Answers))
	}

	// The attempt landed in the ledger.
	u, _ := a.Profile().User()
	attempts := a.Ledger().Attempts(u.ID, quiz.ID)
	if len(attempts) != 1 {
		t.Fatalf("ledger attempts = %d, want 1", len(attempts))
	}
}

func TestStartQuiz_Errors(t *testing.T) {
	a := newTestApp(t)

	// Quizzes require an onboarded user.
	if _, err := a.StartQuiz("hindi-alphabet-quiz-1", testNow); !errors.Is(err, profile.ErrNoUser) {
		t.Errorf("StartQuiz without user = %v, want ErrNoUser", err)
	}

	a.Onboard("Asha", testNow)
	if _, err := a.StartQuiz("no-such-quiz", testNow); !errors.Is(err, catalog.ErrNotFound) {
		t.Errorf("StartQuiz unknown = %v, want ErrNotFound", err)
	}

	// A second start while one is active is rejected until abandoned.
	if _, err := a.StartQuiz("hindi-alphabet-quiz-1", testNow); err != nil {
		t.Fatalf("StartQuiz failed: %v", err)
	}
	if _, err := a.StartQuiz("hindi-numbers-quiz-1", testNow); !errors.Is(err, session.ErrSessionActive) {
		t.Errorf("re-start = %v, want ErrSessionActive", err)
	}
	a.AbandonQuiz()
	if _, err := a.StartQuiz("hindi-numbers-quiz-1", testNow); err != nil {
		t.Errorf("StartQuiz after abandon = %v", err)
	}
}

func TestCompleteLesson_Errors(t *testing.T) {
	a := newTestApp(t)

	if _, err := a.CompleteLesson("hindi-ka", 90, 120, testNow); !errors.Is(err, profile.ErrNoUser) {
		t.Errorf("CompleteLesson without user = %v, want ErrNoUser", err)
	}

	a.Onboard("Asha", testNow)
	if _, err := a.CompleteLesson("no-such-lesson", 90, 120, testNow); !errors.Is(err, catalog.ErrNotFound) {
		t.Errorf("CompleteLesson unknown lesson = %v, want ErrNotFound", err)
	}
}

func TestSaveAndLoadState(t *testing.T) {
	a, s := newTestAppWithStore(t)
	ctx := context.Background()

	a.Onboard("Asha", testNow)
	a.SelectLanguage(catalog.LangTamil, testNow)
	a.CompleteLesson("tamil-ka", 85, 90, testNow)

	if err := a.SaveState(ctx, testNow); err != nil {
		t.Fatalf("SaveState failed: %v", err)
	}

	// A fresh app over the same database picks the state up.
	b := New(Options{Snapshots: s.SnapshotRepo()})
	if err := b.LoadState(ctx); err != nil {
		t.Fatalf("LoadState failed: %v", err)
	}

	u, err := b.Profile().User()
	if err != nil {
		t.Fatalf("restored profile has no user: %v", err)
	}
	if u.Name != "Asha" || u.SelectedLanguage != catalog.LangTamil {
		t.Errorf("restored user = %+v", u)
	}
	if !b.Ledger().CompletedLessonIDs(u.ID)["tamil-ka"] {
		t.Error("restored ledger should show tamil-ka completed")
	}
}

func TestLoadState_Empty(t *testing.T) {
	a, _ := newTestAppWithStore(t)
	if err := a.LoadState(context.Background()); err != nil {
		t.Fatalf("LoadState on empty store = %v", err)
	}
	if a.Profile().Initialized() {
		t.Error("no snapshot should mean no user")
	}
}

func TestResetState(t *testing.T) {
	a, _ := newTestAppWithStore(t)
	ctx := context.Background()

	a.Onboard("Asha", testNow)
	a.CompleteLesson("hindi-ka", 90, 120, testNow)
	a.SaveState(ctx, testNow)

	if err := a.ResetState(ctx); err != nil {
		t.Fatalf("ResetState failed: %v", err)
	}
	if a.Profile().Initialized() {
		t.Error("user should be gone after reset")
	}
	if err := a.LoadState(ctx); err != nil {
		t.Fatalf("LoadState failed: %v", err)
	}
	if a.Profile().Initialized() {
		t.Error("snapshots should be gone after reset")
	}
}

type fixedSynth struct{}

func (fixedSynth) Synthesize(_ context.Context, text string, language catalog.LanguageCode) (speech.AudioFile, error) {
	return speech.AudioFile{ID: "clip", Text: text, Language: language}, nil
}

func TestLessonAudio(t *testing.T) {
	svc := speech.NewService(speech.NewCache(), fixedSynth{})
	a := New(Options{Speech: svc})
	ctx := context.Background()

	if _, err := a.LessonAudio(ctx, "hindi-ka"); !errors.Is(err, profile.ErrNoUser) {
		t.Errorf("LessonAudio without user = %v, want ErrNoUser", err)
	}

	a.Onboard("Asha", testNow)
	clip, err := a.LessonAudio(ctx, "hindi-ka")
	if err != nil {
		t.Fatalf("LessonAudio failed: %v", err)
	}
	if clip.Language != catalog.LangHindi {
		t.Errorf("clip language = %s, want the user's language", clip.Language)
	}
	if svc.Cache().Len() != 1 {
		t.Error("the clip should be cached")
	}

	// Without a speech service the operation fails cleanly.
	b := New(Options{})
	b.Onboard("Asha", testNow)
	if _, err := b.LessonAudio(ctx, "hindi-ka"); err == nil {
		t.Error("expected an error when speech is not configured")
	}
}

func TestSnapshotPruneKeepsBoundedHistory(t *testing.T) {
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	a := New(Options{Snapshots: s.SnapshotRepo(), SnapshotKeep: 3})
	ctx := context.Background()
	a.Onboard("Asha", testNow)

	for i := 0; i < 6; i++ {
		if err := a.SaveState(ctx, testNow.Add(time.Duration(i)*time.Minute)); err != nil {
			t.Fatalf("SaveState %d failed: %v", i, err)
		}
	}

	var count int
	if err := s.DB().Get(&count, `SELECT COUNT(*) FROM snapshots`); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 3 {
		t.Errorf("snapshot count = %d, want 3", count)
	}
}
