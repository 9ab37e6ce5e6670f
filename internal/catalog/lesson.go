package catalog

import "time"

// LanguageCode identifies a supported regional language by its BCP-47 tag.
type LanguageCode string

const (
	LangHindi   LanguageCode = "hi-IN"
	LangTamil   LanguageCode = "ta-IN"
	LangMarathi LanguageCode = "mr-IN"
	LangBengali LanguageCode = "bn-IN"
)

// DefaultLanguage is the language selected before the user picks one.
const DefaultLanguage = LangHindi

// Language describes a supported language for display purposes.
type Language struct {
	Code        LanguageCode
	Name        string // native name
	EnglishName string
	Script      string
}

// AllLanguages returns the supported languages in display order.
func AllLanguages() []Language {
	return []Language{
		{Code: LangHindi, Name: "हिंदी", EnglishName: "Hindi", Script: "Devanagari"},
		{Code: LangTamil, Name: "தமிழ்", EnglishName: "Tamil", Script: "Tamil"},
		{Code: LangMarathi, Name: "मराठी", EnglishName: "Marathi", Script: "Devanagari"},
		{Code: LangBengali, Name: "বাংলা", EnglishName: "Bengali", Script: "Bengali"},
	}
}

// LanguageByCode looks up a supported language.
func LanguageByCode(code LanguageCode) (Language, bool) {
	for _, l := range AllLanguages() {
		if l.Code == code {
			return l, true
		}
	}
	return Language{}, false
}

// IsValidLanguage reports whether code names a supported language.
func IsValidLanguage(code LanguageCode) bool {
	_, ok := LanguageByCode(code)
	return ok
}

// LessonType classifies what a lesson teaches.
type LessonType string

const (
	TypeAlphabet LessonType = "alphabet"
	TypeNumber   LessonType = "number"
	TypeWord     LessonType = "word"
	TypeSentence LessonType = "sentence"
	TypeStory    LessonType = "story"
)

// TypeDisplayName returns a human-readable name for a lesson type.
func TypeDisplayName(t LessonType) string {
	switch t {
	case TypeAlphabet:
		return "Alphabet"
	case TypeNumber:
		return "Numbers"
	case TypeWord:
		return "Words"
	case TypeSentence:
		return "Sentences"
	case TypeStory:
		return "Stories"
	default:
		return "Lesson"
	}
}

// Difficulty is a lesson or quiz difficulty level.
type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

// LessonContent holds the material of a single lesson unit.
type LessonContent struct {
	Text          string `json:"text"`
	Audio         string `json:"audio"`
	Image         string `json:"image,omitempty"`
	Translation   string `json:"translation,omitempty"`
	Pronunciation string `json:"pronunciation,omitempty"`
}

// Lesson is an immutable catalog entry teaching one language unit.
type Lesson struct {
	ID            string        `json:"id"`
	Type          LessonType    `json:"type"`
	Language      LanguageCode  `json:"language"`
	Content       LessonContent `json:"content"`
	Difficulty    Difficulty    `json:"difficulty"`
	Prerequisites []string      `json:"prerequisites"`
	EstimatedTime int           `json:"estimatedTime"` // minutes
	Tags          []string      `json:"tags"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}
