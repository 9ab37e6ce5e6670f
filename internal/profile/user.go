// Package profile owns the single active user and their preferences.
package profile

import (
	"time"

	"github.com/abhisek/shiksha/internal/catalog"
)

// Theme selects the app color scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
	ThemeAuto  Theme = "auto"
)

// Preferences holds per-user learning settings.
type Preferences struct {
	AudioEnabled  bool               `json:"audioEnabled"`
	AutoPlay      bool               `json:"autoPlay"`
	Difficulty    catalog.Difficulty `json:"difficulty"`
	DailyGoal     int                `json:"dailyGoal"` // minutes per day
	Notifications bool               `json:"notifications"`
	Theme         Theme              `json:"theme"`
}

// DefaultPreferences returns the preferences assigned to a new user.
func DefaultPreferences() Preferences {
	return Preferences{
		AudioEnabled:  true,
		AutoPlay:      true,
		Difficulty:    catalog.Beginner,
		DailyGoal:     30,
		Notifications: true,
		Theme:         ThemeLight,
	}
}

// PreferencesPatch is a partial preferences update. Nil fields are left
// unchanged by Store.UpdatePreferences.
type PreferencesPatch struct {
	AudioEnabled  *bool
	AutoPlay      *bool
	Difficulty    *catalog.Difficulty
	DailyGoal     *int
	Notifications *bool
	Theme         *Theme
}

// User is the active learner profile. Exactly one exists per running
// instance; it is created on onboarding (or on first language selection)
// and mutated in place afterwards.
type User struct {
	ID               string               `json:"id"`
	Name             string               `json:"name"`
	SelectedLanguage catalog.LanguageCode `json:"selectedLanguage"`
	Preferences      Preferences          `json:"preferences"`
	CreatedAt        time.Time            `json:"createdAt"`
	LastActiveAt     time.Time            `json:"lastActiveAt"`
}
