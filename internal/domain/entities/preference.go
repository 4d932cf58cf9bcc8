package entities

import "time"

// LocalePreference is a platform user's stored locale choice. Game modules
// look it up before broadcasting so every player hears messages in their own
// language.
type LocalePreference struct {
	UserID    string
	Locale    string
	UpdatedAt time.Time
}
