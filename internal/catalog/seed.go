package catalog

import "time"

// seedTime is the fixed timestamp stamped on built-in catalog entries.
var seedTime = time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)

// SeedLessons returns the built-in lesson catalog.
func SeedLessons() []Lesson {
	return []Lesson{
		// Hindi alphabet
		{
			ID:       "hindi-ka",
			Type:     TypeAlphabet,
			Language: LangHindi,
			Content: LessonContent{
				Text:          "क",
				Audio:         "ka.mp3",
				Image:         "ka.png",
				Translation:   "Ka",
				Pronunciation: "ka",
			},
			Difficulty:    Beginner,
			Prerequisites: []string{},
			EstimatedTime: 2,
			Tags:          []string{"alphabet", "hindi", "beginner"},
			CreatedAt:     seedTime,
			UpdatedAt:     seedTime,
		},
		{
			ID:       "hindi-kha",
			Type:     TypeAlphabet,
			Language: LangHindi,
			Content: LessonContent{
				Text:          "ख",
				Audio:         "kha.mp3",
				Image:         "kha.png",
				Translation:   "Kha",
				Pronunciation: "kha",
			},
			Difficulty:    Beginner,
			Prerequisites: []string{"hindi-ka"},
			EstimatedTime: 2,
			Tags:          []string{"alphabet", "hindi", "beginner"},
			CreatedAt:     seedTime,
			UpdatedAt:     seedTime,
		},
		{
			ID:       "hindi-ga",
			Type:     TypeAlphabet,
			Language: LangHindi,
			Content: LessonContent{
				Text:          "ग",
				Audio:         "ga.mp3",
				Image:         "ga.png",
				Translation:   "Ga",
				Pronunciation: "ga",
			},
			Difficulty:    Beginner,
			Prerequisites: []string{"hindi-kha"},
			EstimatedTime: 2,
			Tags:          []string{"alphabet", "hindi", "beginner"},
			CreatedAt:     seedTime,
			UpdatedAt:     seedTime,
		},

		// Hindi numbers
		{
			ID:       "hindi-1",
			Type:     TypeNumber,
			Language: LangHindi,
			Content: LessonContent{
				Text:          "१",
				Audio:         "ek.mp3",
				Image:         "1.png",
				Translation:   "One",
				Pronunciation: "ek",
			},
			Difficulty:    Beginner,
			Prerequisites: []string{},
			EstimatedTime: 2,
			Tags:          []string{"number", "hindi", "beginner"},
			CreatedAt:     seedTime,
			UpdatedAt:     seedTime,
		},
		{
			ID:       "hindi-2",
			Type:     TypeNumber,
			Language: LangHindi,
			Content: LessonContent{
				Text:          "२",
				Audio:         "do.mp3",
				Image:         "2.png",
				Translation:   "Two",
				Pronunciation: "do",
			},
			Difficulty:    Beginner,
			Prerequisites: []string{"hindi-1"},
			EstimatedTime: 2,
			Tags:          []string{"number", "hindi", "beginner"},
			CreatedAt:     seedTime,
			UpdatedAt:     seedTime,
		},

		// Hindi words
		{
			ID:       "hindi-apple",
			Type:     TypeWord,
			Language: LangHindi,
			Content: LessonContent{
				Text:          "सेब",
				Audio:         "seb.mp3",
				Image:         "apple.png",
				Translation:   "Apple",
				Pronunciation: "seb",
			},
			Difficulty:    Beginner,
			Prerequisites: []string{"hindi-ka", "hindi-1"},
			EstimatedTime: 3,
			Tags:          []string{"word", "hindi", "beginner", "fruit"},
			CreatedAt:     seedTime,
			UpdatedAt:     seedTime,
		},

		// Tamil alphabet
		{
			ID:       "tamil-ka",
			Type:     TypeAlphabet,
			Language: LangTamil,
			Content: LessonContent{
				Text:          "க",
				Audio:         "ka.mp3",
				Image:         "ka.png",
				Translation:   "Ka",
				Pronunciation: "ka",
			},
			Difficulty:    Beginner,
			Prerequisites: []string{},
			EstimatedTime: 2,
			Tags:          []string{"alphabet", "tamil", "beginner"},
			CreatedAt:     seedTime,
			UpdatedAt:     seedTime,
		},
		{
			ID:       "tamil-nga",
			Type:     TypeAlphabet,
			Language: LangTamil,
			Content: LessonContent{
				Text:          "ங",
				Audio:         "nga.mp3",
				Image:         "nga.png",
				Translation:   "Nga",
				Pronunciation: "nga",
			},
			Difficulty:    Beginner,
			Prerequisites: []string{"tamil-ka"},
			EstimatedTime: 2,
			Tags:          []string{"alphabet", "tamil", "beginner"},
			CreatedAt:     seedTime,
			UpdatedAt:     seedTime,
		},
	}
}

// SeedQuizzes returns the built-in quiz catalog.
func SeedQuizzes() []Quiz {
	return []Quiz{
		{
			ID:          "hindi-alphabet-quiz-1",
			LessonID:    "hindi-ka",
			Title:       "Hindi Alphabet Quiz 1",
			Description: "Test your knowledge of Hindi alphabets",
			Questions: []QuizQuestion{
				{
					ID:       "q1",
					Type:     QuestionMultipleChoice,
					Question: `Which letter makes the "ka" sound?`,
					Audio:    "ka.mp3",
					Options: []QuizOption{
						{ID: "opt1", Text: "क", IsCorrect: true},
						{ID: "opt2", Text: "ख", IsCorrect: false},
						{ID: "opt3", Text: "ग", IsCorrect: false},
						{ID: "opt4", Text: "घ", IsCorrect: false},
					},
					CorrectAnswer: "opt1",
					Explanation:   "क (ka) is the first letter of the Hindi alphabet",
				},
				{
					ID:       "q2",
					Type:     QuestionMultipleChoice,
					Question: `Which letter makes the "kha" sound?`,
					Audio:    "kha.mp3",
					Options: []QuizOption{
						{ID: "opt1", Text: "क", IsCorrect: false},
						{ID: "opt2", Text: "ख", IsCorrect: true},
						{ID: "opt3", Text: "ग", IsCorrect: false},
						{ID: "opt4", Text: "घ", IsCorrect: false},
					},
					CorrectAnswer: "opt2",
					Explanation:   "ख (kha) is the second letter of the Hindi alphabet",
				},
			},
			PassingScore: 70,
			TimeLimit:    5,
			Difficulty:   Beginner,
			CreatedAt:    seedTime,
		},
		{
			ID:          "hindi-numbers-quiz-1",
			LessonID:    "hindi-1",
			Title:       "Hindi Numbers Quiz 1",
			Description: "Test your knowledge of Hindi numbers",
			Questions: []QuizQuestion{
				{
					ID:       "q1",
					Type:     QuestionMultipleChoice,
					Question: `What is the Hindi word for "One"?`,
					Audio:    "ek.mp3",
					Options: []QuizOption{
						{ID: "opt1", Text: "एक", IsCorrect: true},
						{ID: "opt2", Text: "दो", IsCorrect: false},
						{ID: "opt3", Text: "तीन", IsCorrect: false},
						{ID: "opt4", Text: "चार", IsCorrect: false},
					},
					CorrectAnswer: "opt1",
					Explanation:   `एक (ek) means "one" in Hindi`,
				},
			},
			PassingScore: 70,
			TimeLimit:    3,
			Difficulty:   Beginner,
			CreatedAt:    seedTime,
		},
	}
}

// SeedStore builds a store over the built-in catalog. The seed data is
// known-valid, so a validation failure here is a programming error.
func SeedStore() *Store {
	s, err := NewStore(SeedLessons(), SeedQuizzes())
	if err != nil {
		panic(err)
	}
	return s
}
