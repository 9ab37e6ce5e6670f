package catalog

import (
	"fmt"
	"strings"
)

// validateCatalog performs all structural checks on the lesson and quiz
// collections. Returns a combined error describing all problems found,
// or nil if the catalog is valid.
func validateCatalog(lessons []Lesson, quizzes []Quiz) error {
	var errs []string

	idSet := make(map[string]bool, len(lessons))

	// Check for duplicate lesson IDs
	for _, l := range lessons {
		if idSet[l.ID] {
			errs = append(errs, fmt.Sprintf("duplicate lesson ID: %q", l.ID))
		}
		idSet[l.ID] = true
	}

	// Check for dangling prerequisites
	for _, l := range lessons {
		for _, prereqID := range l.Prerequisites {
			if !idSet[prereqID] {
				errs = append(errs, fmt.Sprintf("lesson %q references nonexistent prerequisite %q", l.ID, prereqID))
			}
		}
	}

	// Check for prerequisite cycles using Kahn's algorithm
	inDegree := make(map[string]int, len(lessons))
	adjList := make(map[string][]string)
	for _, l := range lessons {
		inDegree[l.ID] = len(l.Prerequisites)
		for _, prereqID := range l.Prerequisites {
			adjList[prereqID] = append(adjList[prereqID], l.ID)
		}
	}

	var queue []string
	for _, l := range lessons {
		if inDegree[l.ID] == 0 {
			queue = append(queue, l.ID)
		}
	}

	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		for _, depID := range adjList[id] {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}

	if visited < len(lessons) {
		var cycleNodes []string
		for _, l := range lessons {
			if inDegree[l.ID] > 0 {
				cycleNodes = append(cycleNodes, l.ID)
			}
		}
		errs = append(errs, fmt.Sprintf("prerequisite cycle detected involving lessons: %s", strings.Join(cycleNodes, ", ")))
	}

	// Check lesson fields
	for _, l := range lessons {
		if l.Language == "" || !IsValidLanguage(l.Language) {
			errs = append(errs, fmt.Sprintf("lesson %q: unsupported language %q", l.ID, l.Language))
		}
		if l.Content.Text == "" {
			errs = append(errs, fmt.Sprintf("lesson %q: empty content text", l.ID))
		}
		if l.EstimatedTime < 0 {
			errs = append(errs, fmt.Sprintf("lesson %q: EstimatedTime must be >= 0, got %d", l.ID, l.EstimatedTime))
		}
	}

	// Check quizzes
	quizIDSet := make(map[string]bool, len(quizzes))
	for _, q := range quizzes {
		if quizIDSet[q.ID] {
			errs = append(errs, fmt.Sprintf("duplicate quiz ID: %q", q.ID))
		}
		quizIDSet[q.ID] = true

		if !idSet[q.LessonID] {
			errs = append(errs, fmt.Sprintf("quiz %q references nonexistent lesson %q", q.ID, q.LessonID))
		}
		if q.PassingScore < 0 || q.PassingScore > 100 {
			errs = append(errs, fmt.Sprintf("quiz %q: PassingScore must be in [0, 100], got %d", q.ID, q.PassingScore))
		}
		if len(q.Questions) == 0 {
			errs = append(errs, fmt.Sprintf("quiz %q: no questions", q.ID))
		}

		for _, question := range q.Questions {
			prefix := fmt.Sprintf("quiz %q question %q", q.ID, question.ID)
			correct := 0
			correctID := ""
			for _, opt := range question.Options {
				if opt.IsCorrect {
					correct++
					correctID = opt.ID
				}
			}
			if correct != 1 {
				errs = append(errs, fmt.Sprintf("%s: exactly one option must be correct, got %d", prefix, correct))
				continue
			}
			if correctID != question.CorrectAnswer {
				errs = append(errs, fmt.Sprintf("%s: CorrectAnswer %q does not match the correct option %q", prefix, question.CorrectAnswer, correctID))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
