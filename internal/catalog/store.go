package catalog

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a lesson or quiz id is not in the catalog.
var ErrNotFound = errors.New("not found in catalog")

// Store holds the immutable lesson and quiz collections with precomputed
// indices. Queries preserve catalog insertion order.
type Store struct {
	lessons      []Lesson
	quizzes      []Quiz
	lessonByID   map[string]*Lesson
	quizByID     map[string]*Quiz
	quizByLesson map[string][]Quiz
}

// NewStore validates the given collections and builds a store over them.
func NewStore(lessons []Lesson, quizzes []Quiz) (*Store, error) {
	if err := validateCatalog(lessons, quizzes); err != nil {
		return nil, err
	}

	s := &Store{
		lessons:      lessons,
		quizzes:      quizzes,
		lessonByID:   make(map[string]*Lesson, len(lessons)),
		quizByID:     make(map[string]*Quiz, len(quizzes)),
		quizByLesson: make(map[string][]Quiz),
	}
	for i := range s.lessons {
		s.lessonByID[s.lessons[i].ID] = &s.lessons[i]
	}
	for i := range s.quizzes {
		q := s.quizzes[i]
		s.quizByID[q.ID] = &s.quizzes[i]
		s.quizByLesson[q.LessonID] = append(s.quizByLesson[q.LessonID], q)
	}
	return s, nil
}

// Lessons returns every lesson in catalog order.
func (s *Store) Lessons() []Lesson {
	out := make([]Lesson, len(s.lessons))
	copy(out, s.lessons)
	return out
}

// LessonsByLanguage returns lessons for the given language in catalog order.
func (s *Store) LessonsByLanguage(lang LanguageCode) []Lesson {
	var out []Lesson
	for _, l := range s.lessons {
		if l.Language == lang {
			out = append(out, l)
		}
	}
	return out
}

// LessonsByType returns lessons matching both language and type.
func (s *Store) LessonsByType(lang LanguageCode, t LessonType) []Lesson {
	var out []Lesson
	for _, l := range s.lessons {
		if l.Language == lang && l.Type == t {
			out = append(out, l)
		}
	}
	return out
}

// LessonsByDifficulty returns lessons matching both language and difficulty.
func (s *Store) LessonsByDifficulty(lang LanguageCode, d Difficulty) []Lesson {
	var out []Lesson
	for _, l := range s.lessons {
		if l.Language == lang && l.Difficulty == d {
			out = append(out, l)
		}
	}
	return out
}

// LessonByID returns the lesson with the given id.
func (s *Store) LessonByID(id string) (Lesson, error) {
	l, ok := s.lessonByID[id]
	if !ok {
		return Lesson{}, fmt.Errorf("lesson %q: %w", id, ErrNotFound)
	}
	return *l, nil
}

// QuizzesForLesson returns the quizzes attached to a lesson, catalog order.
// A lesson with no quizzes yields an empty slice, not an error.
func (s *Store) QuizzesForLesson(lessonID string) []Quiz {
	out := make([]Quiz, len(s.quizByLesson[lessonID]))
	copy(out, s.quizByLesson[lessonID])
	return out
}

// QuizByID returns the quiz with the given id.
func (s *Store) QuizByID(id string) (Quiz, error) {
	q, ok := s.quizByID[id]
	if !ok {
		return Quiz{}, fmt.Errorf("quiz %q: %w", id, ErrNotFound)
	}
	return *q, nil
}

// Available reports whether every prerequisite of the lesson is in the
// completed set.
func (s *Store) Available(lesson Lesson, completed map[string]bool) bool {
	for _, prereq := range lesson.Prerequisites {
		if !completed[prereq] {
			return false
		}
	}
	return true
}

// AvailableLessons returns the lessons in the given language whose
// prerequisites are all in the completed set, catalog order.
func (s *Store) AvailableLessons(lang LanguageCode, completed map[string]bool) []Lesson {
	var out []Lesson
	for _, l := range s.LessonsByLanguage(lang) {
		if s.Available(l, completed) {
			out = append(out, l)
		}
	}
	return out
}
