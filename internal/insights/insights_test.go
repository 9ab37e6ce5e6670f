package insights

import (
	"testing"
	"time"

	"github.com/abhisek/shiksha/internal/catalog"
	"github.com/abhisek/shiksha/internal/ledger"
	"github.com/abhisek/shiksha/internal/profile"
)

var testNow = time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)

func completedRecord(lessonID string, score int, completedAt time.Time) ledger.UserProgress {
	return ledger.UserProgress{
		ID:          "p-" + lessonID,
		UserID:      "u-1",
		LessonID:    lessonID,
		Completed:   true,
		Score:       score,
		TimeSpent:   60,
		CompletedAt: &completedAt,
		CreatedAt:   completedAt,
		UpdatedAt:   completedAt,
	}
}

func TestAverageScore(t *testing.T) {
	tests := []struct {
		name   string
		scores []int
		want   int
	}{
		{"empty", nil, 0},
		{"single", []int{80}, 80},
		{"pair", []int{80, 60}, 70},
		{"rounds to nearest", []int{80, 85}, 83}, // 82.5 rounds up
		{"all zero", []int{0, 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var records []ledger.UserProgress
			for _, s := range tt.scores {
				records = append(records, ledger.UserProgress{Score: s})
			}
			if got := AverageScore(records); got != tt.want {
				t.Errorf("AverageScore = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTotalTimeSpent(t *testing.T) {
	records := []ledger.UserProgress{
		{TimeSpent: 120},
		{TimeSpent: 45},
		{TimeSpent: 0},
	}
	if got := TotalTimeSpent(records); got != 165 {
		t.Errorf("TotalTimeSpent = %d, want 165", got)
	}
	if got := TotalTimeSpent(nil); got != 0 {
		t.Errorf("TotalTimeSpent(nil) = %d, want 0", got)
	}
}

func TestLearningStreak_ConsecutiveDays(t *testing.T) {
	day := 24 * time.Hour

	// Completions today, yesterday, and two days before that: the walk
	// counts each gap of at most one day.
	records := []ledger.UserProgress{
		completedRecord("a", 90, testNow.Add(-2*time.Hour)),
		completedRecord("b", 80, testNow.Add(-1*day)),
		completedRecord("c", 70, testNow.Add(-2*day)),
	}
	if got := LearningStreak(records, testNow); got != 3 {
		t.Errorf("streak = %d, want 3", got)
	}
}

func TestLearningStreak_GapTruncates(t *testing.T) {
	day := 24 * time.Hour

	records := []ledger.UserProgress{
		completedRecord("a", 90, testNow.Add(-2*time.Hour)),
		completedRecord("b", 80, testNow.Add(-1*day)),
		// Three days between b and c: streak stops after b.
		completedRecord("c", 70, testNow.Add(-4*day)),
		completedRecord("d", 60, testNow.Add(-5*day)),
	}
	if got := LearningStreak(records, testNow); got != 2 {
		t.Errorf("streak = %d, want 2", got)
	}
}

func TestLearningStreak_Empty(t *testing.T) {
	if got := LearningStreak(nil, testNow); got != 0 {
		t.Errorf("streak of empty list = %d, want 0", got)
	}

	// Incomplete records do not count.
	records := []ledger.UserProgress{
		{LessonID: "a", Completed: false},
	}
	if got := LearningStreak(records, testNow); got != 0 {
		t.Errorf("streak of incomplete records = %d, want 0", got)
	}
}

func TestLearningStreak_StaleHistory(t *testing.T) {
	day := 24 * time.Hour

	// Most recent completion is a week old: no current streak.
	records := []ledger.UserProgress{
		completedRecord("a", 90, testNow.Add(-7*day)),
		completedRecord("b", 80, testNow.Add(-8*day)),
	}
	if got := LearningStreak(records, testNow); got != 0 {
		t.Errorf("streak = %d, want 0", got)
	}
}

func testUser() profile.User {
	return profile.User{
		ID:               "u-1",
		Name:             "Asha",
		SelectedLanguage: catalog.LangHindi,
		Preferences:      profile.DefaultPreferences(),
		CreatedAt:        testNow,
		LastActiveAt:     testNow,
	}
}

func TestFor_SingleCompletion(t *testing.T) {
	cat := catalog.SeedStore()
	led := ledger.New(cat)
	calc := NewCalculator(cat, led)

	led.CompleteLesson("u-1", "hindi-ka", 90, 120, testNow)

	got := calc.For(testUser(), testNow)

	if got.TotalLessonsCompleted != 1 {
		t.Errorf("TotalLessonsCompleted = %d, want 1", got.TotalLessonsCompleted)
	}
	if got.AverageScore != 90 {
		t.Errorf("AverageScore = %d, want 90", got.AverageScore)
	}
	if got.TotalTimeSpent != 120 {
		t.Errorf("TotalTimeSpent = %d, want 120", got.TotalTimeSpent)
	}
	if got.LearningStreak != 1 {
		t.Errorf("LearningStreak = %d, want 1", got.LearningStreak)
	}
	if !got.LastActiveDate.Equal(testNow) {
		t.Error("LastActiveDate should come from the user record")
	}
}

func TestFor_StrengthsAndWeaknesses(t *testing.T) {
	cat := catalog.SeedStore()
	led := ledger.New(cat)
	calc := NewCalculator(cat, led)

	// Alphabet average 90 (strength), numbers average 50 (weakness).
	led.CompleteLesson("u-1", "hindi-ka", 95, 60, testNow)
	led.CompleteLesson("u-1", "hindi-kha", 85, 60, testNow)
	led.CompleteLesson("u-1", "hindi-1", 50, 60, testNow)

	got := calc.For(testUser(), testNow)

	if len(got.Strengths) != 1 || got.Strengths[0] != "Alphabet" {
		t.Errorf("Strengths = %v, want [Alphabet]", got.Strengths)
	}
	if len(got.Weaknesses) != 1 || got.Weaknesses[0] != "Numbers" {
		t.Errorf("Weaknesses = %v, want [Numbers]", got.Weaknesses)
	}
}

func TestFor_Recommendations(t *testing.T) {
	cat := catalog.SeedStore()
	led := ledger.New(cat)
	calc := NewCalculator(cat, led)

	// Nothing completed: only the Hindi root lessons are recommended.
	got := calc.For(testUser(), testNow)
	want := map[string]bool{"hindi-ka": true, "hindi-1": true}
	if len(got.RecommendedLessons) != 2 {
		t.Fatalf("RecommendedLessons = %v, want 2 roots", got.RecommendedLessons)
	}
	for _, id := range got.RecommendedLessons {
		if !want[id] {
			t.Errorf("unexpected recommendation %q", id)
		}
	}

	// Completed lessons drop out and newly unlocked ones appear.
	led.CompleteLesson("u-1", "hindi-ka", 90, 60, testNow)
	got = calc.For(testUser(), testNow)
	for _, id := range got.RecommendedLessons {
		if id == "hindi-ka" {
			t.Error("completed lesson should not be recommended")
		}
	}
}

func TestFor_EstimatedCompletionTime(t *testing.T) {
	cat := catalog.SeedStore()
	led := ledger.New(cat)
	calc := NewCalculator(cat, led)

	// Six Hindi lessons remain, 13 estimated minutes total, 30 min/day goal.
	got := calc.For(testUser(), testNow)
	if got.EstimatedCompletionTime != 1 {
		t.Errorf("EstimatedCompletionTime = %d, want 1", got.EstimatedCompletionTime)
	}

	// Everything completed: nothing left to estimate.
	for _, l := range cat.LessonsByLanguage(catalog.LangHindi) {
		led.CompleteLesson("u-1", l.ID, 90, 60, testNow)
	}
	got = calc.For(testUser(), testNow)
	if got.EstimatedCompletionTime != 0 {
		t.Errorf("EstimatedCompletionTime = %d, want 0", got.EstimatedCompletionTime)
	}
}
