package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrUnknownLocale       = errors.New("locale is not loaded in the catalog")
	ErrPreferenceNotFound  = errors.New("no locale preference stored for user")
	ErrPreferencesDisabled = errors.New("locale preference store is not configured")
	ErrEmptySource         = errors.New("catalog source is empty")
)

// ParseError reports a malformed line in a catalog source file. A load that
// produces a ParseError is rejected wholesale; the previously published table
// stays in place.
type ParseError struct {
	File   string
	Line   int
	Key    string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("parse %s:%d (key %q): %s", e.File, e.Line, e.Key, e.Reason)
	}
	return fmt.Sprintf("parse %s:%d: %s", e.File, e.Line, e.Reason)
}

// MissingKeyError reports a key absent from the requested locale and its
// entire fallback chain. Whether this reaches the end user is the caller's
// policy, not the resolver's.
type MissingKeyError struct {
	Locale string
	Key    string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("message %q not found for locale %q or its fallbacks", e.Key, e.Locale)
}

// MissingArgumentError reports a template placeholder with no matching render
// argument. It is always surfaced; silently substituting an empty string
// would mask integration bugs.
type MissingArgumentError struct {
	Locale      string
	Key         string
	Placeholder string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("message %q (locale %q) requires argument %q", e.Key, e.Locale, e.Placeholder)
}
