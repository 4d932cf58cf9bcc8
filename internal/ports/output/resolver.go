package output

import (
	"playpalace-i18n/internal/domain/entities"
)

// Resolver is the message-catalog engine contract. Resolve is safe for
// unlimited concurrent use; Load/Reload publish atomically, so in-flight
// resolves see either the fully-old or fully-new table, never a mix.
type Resolver interface {
	// Resolve renders the message identified by key for the given locale,
	// walking the locale's fallback chain when the key is absent.
	Resolve(locale, key string, args entities.RenderArguments) (string, error)

	// Load parses source text and installs it as the table for one
	// locale/namespace pair. A parse failure leaves any previous table
	// untouched.
	Load(locale, namespace, source string) error

	// Reload replaces the module namespace's table for a locale.
	Reload(locale, source string) error

	ListLocales() []string
	Validate(referenceLocale string) []entities.ValidationIssue
	State(locale string) entities.TableState
}
