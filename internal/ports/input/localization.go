package input

import (
	"context"

	"playpalace-i18n/internal/domain/entities"
)

// LocalizationUseCase is what game modules consume. It layers user locale
// lookup and the missing-key policy on top of the raw resolver.
type LocalizationUseCase interface {
	Resolve(locale, key string, args entities.RenderArguments) (string, error)

	// ResolveForUser resolves with the user's stored locale preference,
	// falling back to the platform default when none is stored.
	ResolveForUser(ctx context.Context, userID, key string, args entities.RenderArguments) (string, error)

	// ResolvePersonal picks between an actor-facing key ("you rolled ...")
	// and an observer-facing key ("Alice rolled ...") before resolving.
	ResolvePersonal(locale string, actor bool, actorKey, observerKey string, args entities.RenderArguments) (string, error)

	SetUserLocale(ctx context.Context, userID, locale string) error
	ListLocales() []string
	Validate(referenceLocale string) []entities.ValidationIssue
}
