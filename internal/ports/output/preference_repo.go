package output

import (
	"context"

	"playpalace-i18n/internal/domain/entities"
)

type LocalePreferenceRepository interface {
	Get(ctx context.Context, userID string) (*entities.LocalePreference, error)
	Set(ctx context.Context, pref *entities.LocalePreference) error
	// CountByLocale reports how many users prefer each locale, for drift
	// reporting against the loaded catalog.
	CountByLocale(ctx context.Context) (map[string]int64, error)
}
