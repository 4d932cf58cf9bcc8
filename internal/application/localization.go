package application

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"playpalace-i18n/internal/domain"
	"playpalace-i18n/internal/domain/entities"
	"playpalace-i18n/internal/ports/input"
	"playpalace-i18n/internal/ports/output"
	"playpalace-i18n/pkg/localetag"
)

// MissingKeyPolicy decides what a caller sees when a key is absent from a
// locale and its whole fallback chain. The resolver itself always errors;
// softening is a caller-side decision made here, once.
type MissingKeyPolicy string

const (
	PolicyPropagate  MissingKeyPolicy = "propagate"   // surface MissingKeyError
	PolicyKeyLiteral MissingKeyPolicy = "key-literal" // show the raw key
	PolicyEmpty      MissingKeyPolicy = "empty"       // show nothing
)

// ParsePolicy validates a policy name from configuration.
func ParsePolicy(name string) (MissingKeyPolicy, error) {
	switch MissingKeyPolicy(name) {
	case PolicyPropagate, PolicyKeyLiteral, PolicyEmpty:
		return MissingKeyPolicy(name), nil
	case "":
		return PolicyPropagate, nil
	}
	return "", fmt.Errorf("unknown missing-key policy %q", name)
}

var _ input.LocalizationUseCase = (*LocalizationService)(nil)

// LocalizationService layers user locale lookup and the missing-key policy
// on top of the catalog resolver. The preference repository may be nil when
// no store is configured.
type LocalizationService struct {
	resolver      output.Resolver
	prefs         output.LocalePreferenceRepository
	defaultLocale string
	policy        MissingKeyPolicy
}

func NewLocalizationService(
	resolver output.Resolver,
	prefs output.LocalePreferenceRepository,
	defaultLocale string,
	policy MissingKeyPolicy,
) *LocalizationService {
	if defaultLocale == "" {
		defaultLocale = "en"
	}
	if policy == "" {
		policy = PolicyPropagate
	}
	return &LocalizationService{
		resolver:      resolver,
		prefs:         prefs,
		defaultLocale: defaultLocale,
		policy:        policy,
	}
}

func (s *LocalizationService) Resolve(locale, key string, args entities.RenderArguments) (string, error) {
	msg, err := s.resolver.Resolve(locale, key, args)
	if err == nil {
		return msg, nil
	}
	var missing *domain.MissingKeyError
	if errors.As(err, &missing) {
		switch s.policy {
		case PolicyKeyLiteral:
			return key, nil
		case PolicyEmpty:
			return "", nil
		}
	}
	return "", err
}

func (s *LocalizationService) ResolveForUser(ctx context.Context, userID, key string, args entities.RenderArguments) (string, error) {
	locale := s.defaultLocale
	if s.prefs != nil {
		pref, err := s.prefs.Get(ctx, userID)
		switch {
		case err == nil:
			locale = pref.Locale
		case errors.Is(err, domain.ErrPreferenceNotFound):
			// default locale
		default:
			return "", err
		}
	}
	return s.Resolve(locale, key, args)
}

func (s *LocalizationService) ResolvePersonal(locale string, actor bool, actorKey, observerKey string, args entities.RenderArguments) (string, error) {
	key := observerKey
	if actor {
		key = actorKey
	}
	return s.Resolve(locale, key, args)
}

// SetUserLocale stores a user's locale choice. The locale must be one the
// catalog actually carries; a preference for an unloadable locale would make
// every later resolve fall back silently.
func (s *LocalizationService) SetUserLocale(ctx context.Context, userID, locale string) error {
	if s.prefs == nil {
		return domain.ErrPreferencesDisabled
	}
	normalized := localetag.Normalize(locale)
	if !slices.Contains(s.resolver.ListLocales(), normalized) {
		return domain.ErrUnknownLocale
	}
	return s.prefs.Set(ctx, &entities.LocalePreference{
		UserID:    userID,
		Locale:    normalized,
		UpdatedAt: time.Now(),
	})
}

func (s *LocalizationService) ListLocales() []string {
	return s.resolver.ListLocales()
}

func (s *LocalizationService) Validate(referenceLocale string) []entities.ValidationIssue {
	return s.resolver.Validate(referenceLocale)
}
