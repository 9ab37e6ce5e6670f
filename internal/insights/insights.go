// Package insights derives aggregate learning metrics from the progress
// ledger. Everything here is recomputed on read; the ledger is the single
// source of truth and nothing is cached.
package insights

import (
	"math"
	"sort"
	"time"

	"github.com/abhisek/shiksha/internal/catalog"
	"github.com/abhisek/shiksha/internal/ledger"
	"github.com/abhisek/shiksha/internal/profile"
)

// Thresholds for classifying per-type performance.
const (
	strengthThreshold = 80
	weaknessThreshold = 60
)

// maxRecommendations caps the recommended-lessons list.
const maxRecommendations = 5

// Insights is a derived summary of a user's learning history.
type Insights struct {
	UserID                  string    `json:"userId"`
	TotalLessonsCompleted   int       `json:"totalLessonsCompleted"`
	TotalTimeSpent          int       `json:"totalTimeSpent"` // seconds
	AverageScore            int       `json:"averageScore"`
	Strengths               []string  `json:"strengths"`
	Weaknesses              []string  `json:"weaknesses"`
	LearningStreak          int       `json:"learningStreak"` // consecutive days
	LastActiveDate          time.Time `json:"lastActiveDate"`
	RecommendedLessons      []string  `json:"recommendedLessons"`
	EstimatedCompletionTime int       `json:"estimatedCompletionTime"` // days
}

// Calculator computes insights over the catalog and ledger.
type Calculator struct {
	catalog *catalog.Store
	ledger  *ledger.Ledger
}

// NewCalculator creates a calculator reading from the given stores.
func NewCalculator(cat *catalog.Store, led *ledger.Ledger) *Calculator {
	return &Calculator{catalog: cat, ledger: led}
}

// AverageScore returns the rounded mean score across all records, or 0
// for an empty list.
func AverageScore(records []ledger.UserProgress) int {
	if len(records) == 0 {
		return 0
	}
	total := 0
	for _, p := range records {
		total += p.Score
	}
	return int(math.Round(float64(total) / float64(len(records))))
}

// TotalTimeSpent returns the summed time across all records, in seconds.
func TotalTimeSpent(records []ledger.UserProgress) int {
	total := 0
	for _, p := range records {
		total += p.TimeSpent
	}
	return total
}

// LearningStreak counts consecutive days with at least one completion,
// walking backward from now. Completed records are sorted by completion
// time descending; each record within one whole day of the cursor extends
// the run and moves the cursor, and the first gap over a day ends it.
func LearningStreak(records []ledger.UserProgress, now time.Time) int {
	var completed []ledger.UserProgress
	for _, p := range records {
		if p.Completed && p.CompletedAt != nil {
			completed = append(completed, p)
		}
	}
	if len(completed) == 0 {
		return 0
	}

	sort.Slice(completed, func(i, j int) bool {
		return completed[i].CompletedAt.After(*completed[j].CompletedAt)
	})

	streak := 0
	cursor := now
	for _, p := range completed {
		gapDays := int(math.Floor(cursor.Sub(*p.CompletedAt).Hours() / 24))
		if gapDays <= 1 {
			streak++
			cursor = *p.CompletedAt
		} else {
			break
		}
	}
	return streak
}

// For composes the full insights for a user.
func (c *Calculator) For(user profile.User, now time.Time) Insights {
	records := c.ledger.AllProgress(user.ID)

	completedCount := 0
	for _, p := range records {
		if p.Completed {
			completedCount++
		}
	}

	strengths, weaknesses := c.classifyByType(records)

	return Insights{
		UserID:                  user.ID,
		TotalLessonsCompleted:   completedCount,
		TotalTimeSpent:          TotalTimeSpent(records),
		AverageScore:            AverageScore(records),
		Strengths:               strengths,
		Weaknesses:              weaknesses,
		LearningStreak:          LearningStreak(records, now),
		LastActiveDate:          user.LastActiveAt,
		RecommendedLessons:      c.recommend(user),
		EstimatedCompletionTime: c.estimateCompletionDays(user),
	}
}

// classifyByType buckets average scores per lesson type. Types averaging
// at or above the strength threshold are strengths; below the weakness
// threshold, weaknesses.
func (c *Calculator) classifyByType(records []ledger.UserProgress) (strengths, weaknesses []string) {
	totals := make(map[catalog.LessonType]int)
	counts := make(map[catalog.LessonType]int)

	for _, p := range records {
		lesson, err := c.catalog.LessonByID(p.LessonID)
		if err != nil {
			continue
		}
		totals[lesson.Type] += p.Score
		counts[lesson.Type]++
	}

	// Stable order: fixed lesson type order, not map iteration order.
	for _, t := range []catalog.LessonType{catalog.TypeAlphabet, catalog.TypeNumber, catalog.TypeWord, catalog.TypeSentence, catalog.TypeStory} {
		n := counts[t]
		if n == 0 {
			continue
		}
		avg := int(math.Round(float64(totals[t]) / float64(n)))
		switch {
		case avg >= strengthThreshold:
			strengths = append(strengths, catalog.TypeDisplayName(t))
		case avg < weaknessThreshold:
			weaknesses = append(weaknesses, catalog.TypeDisplayName(t))
		}
	}
	return strengths, weaknesses
}

// recommend returns available-but-uncompleted lessons in the user's
// language, in catalog order, capped at maxRecommendations.
func (c *Calculator) recommend(user profile.User) []string {
	completed := c.ledger.CompletedLessonIDs(user.ID)

	var out []string
	for _, l := range c.catalog.AvailableLessons(user.SelectedLanguage, completed) {
		if completed[l.ID] {
			continue
		}
		out = append(out, l.ID)
		if len(out) == maxRecommendations {
			break
		}
	}
	return out
}

// estimateCompletionDays estimates days to finish the remaining lessons
// in the user's language at their daily goal.
func (c *Calculator) estimateCompletionDays(user profile.User) int {
	completed := c.ledger.CompletedLessonIDs(user.ID)

	remainingMinutes := 0
	for _, l := range c.catalog.LessonsByLanguage(user.SelectedLanguage) {
		if !completed[l.ID] {
			remainingMinutes += l.EstimatedTime
		}
	}
	if remainingMinutes == 0 {
		return 0
	}

	goal := user.Preferences.DailyGoal
	if goal <= 0 {
		goal = 30
	}
	return int(math.Ceil(float64(remainingMinutes) / float64(goal)))
}
