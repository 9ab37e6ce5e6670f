package profile

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/abhisek/shiksha/internal/catalog"
)

var (
	// ErrInvalidName is returned when a user name is shorter than 2 or
	// longer than 50 characters after trimming.
	ErrInvalidName = errors.New("name must be between 2 and 50 characters")

	// ErrNoUser is returned by operations that require an initialized user.
	ErrNoUser = errors.New("no active user")

	// ErrUnsupportedLanguage is returned for language codes outside the
	// supported set.
	ErrUnsupportedLanguage = errors.New("unsupported language")
)

// placeholderName is assigned when a user is created by selecting a
// language before completing onboarding.
const placeholderName = "User"

// Store owns the single active user. The zero state is Uninitialized;
// the first Initialize or SetLanguage call transitions it to Initialized.
type Store struct {
	user *User
}

// NewStore returns an uninitialized profile store.
func NewStore() *Store {
	return &Store{}
}

// Initialized reports whether an active user exists.
func (s *Store) Initialized() bool {
	return s.user != nil
}

// User returns the active user, or ErrNoUser before initialization.
func (s *Store) User() (User, error) {
	if s.user == nil {
		return User{}, ErrNoUser
	}
	return *s.user, nil
}

// ValidateName reports whether name is acceptable after trimming. Length
// is counted in characters, not bytes, so Indic-script names measure the
// way a user would expect.
func ValidateName(name string) bool {
	n := utf8.RuneCountInString(strings.TrimSpace(name))
	return n >= 2 && n <= 50
}

// Initialize creates the active user with default preferences and the
// default language. Called on onboarding completion. If a placeholder
// user already exists (language was selected first), the name is set on
// that user instead of creating a new one.
func (s *Store) Initialize(name string, now time.Time) (User, error) {
	if !ValidateName(name) {
		return User{}, ErrInvalidName
	}
	name = strings.TrimSpace(name)

	if s.user != nil {
		s.user.Name = name
		s.user.LastActiveAt = now
		return *s.user, nil
	}

	s.user = &User{
		ID:               uuid.NewString(),
		Name:             name,
		SelectedLanguage: catalog.DefaultLanguage,
		Preferences:      DefaultPreferences(),
		CreatedAt:        now,
		LastActiveAt:     now,
	}
	return *s.user, nil
}

// SetLanguage selects the learning language. If no user exists yet (the
// language-select screen precedes onboarding), a placeholder user is
// created with default preferences and the given language. Idempotent.
func (s *Store) SetLanguage(code catalog.LanguageCode, now time.Time) (User, error) {
	if !catalog.IsValidLanguage(code) {
		return User{}, ErrUnsupportedLanguage
	}

	if s.user == nil {
		s.user = &User{
			ID:               uuid.NewString(),
			Name:             placeholderName,
			SelectedLanguage: code,
			Preferences:      DefaultPreferences(),
			CreatedAt:        now,
			LastActiveAt:     now,
		}
		return *s.user, nil
	}

	s.user.SelectedLanguage = code
	return *s.user, nil
}

// UpdatePreferences shallow-merges the patch into the user's preferences.
// No-op before initialization.
func (s *Store) UpdatePreferences(patch PreferencesPatch) {
	if s.user == nil {
		return
	}
	p := &s.user.Preferences
	if patch.AudioEnabled != nil {
		p.AudioEnabled = *patch.AudioEnabled
	}
	if patch.AutoPlay != nil {
		p.AutoPlay = *patch.AutoPlay
	}
	if patch.Difficulty != nil {
		p.Difficulty = *patch.Difficulty
	}
	if patch.DailyGoal != nil {
		p.DailyGoal = *patch.DailyGoal
	}
	if patch.Notifications != nil {
		p.Notifications = *patch.Notifications
	}
	if patch.Theme != nil {
		p.Theme = *patch.Theme
	}
}

// TouchLastActive records user activity. No-op before initialization.
func (s *Store) TouchLastActive(now time.Time) {
	if s.user == nil {
		return
	}
	s.user.LastActiveAt = now
}

// Reset deletes the active user, returning to the Uninitialized state.
func (s *Store) Reset() {
	s.user = nil
}

// Restore replaces the active user with a previously saved one. Used by
// snapshot loading; a nil user leaves the store uninitialized.
func (s *Store) Restore(u *User) {
	if u == nil {
		s.user = nil
		return
	}
	copied := *u
	s.user = &copied
}
