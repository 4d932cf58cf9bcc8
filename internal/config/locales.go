package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// LocaleOptions tunes rendering and fallback for one locale.
type LocaleOptions struct {
	// Fallbacks is the ordered fallback chain consulted when a key is
	// missing. Empty = derive from the locale tag (zh-CN -> zh) plus the
	// default locale.
	Fallbacks []string `toml:"fallbacks"`

	// ListSeparator joins list-valued arguments (default ", ").
	// Chinese catalogs typically set "、".
	ListSeparator string `toml:"list_separator"`

	// ListAnd, when set, joins the final two list items ("Ana, Bo and Cy").
	ListAnd string `toml:"list_and"`

	// GroupedNumbers enables locale-aware digit grouping for integer
	// arguments. Off by default: plain formatting keeps output stable for
	// score strings.
	GroupedNumbers bool `toml:"grouped_numbers"`
}

// Locales is the catalog options file (TOML).
type Locales struct {
	DefaultLocale    string                   `toml:"default_locale"`
	ReferenceLocale  string                   `toml:"reference_locale"`
	MissingKeyPolicy string                   `toml:"missing_key_policy"` // propagate | key-literal | empty
	ModuleNamespace  string                   `toml:"module_namespace"`
	SharedNamespace  string                   `toml:"shared_namespace"`
	Locales          map[string]LocaleOptions `toml:"locales"`
}

// DefaultLocales returns the options used when no file is configured.
func DefaultLocales() Locales {
	return Locales{
		DefaultLocale:    "en",
		ReferenceLocale:  "en",
		MissingKeyPolicy: "propagate",
		ModuleNamespace:  "tossup",
		SharedNamespace:  "shared",
		Locales: map[string]LocaleOptions{
			"zh-CN": {ListSeparator: "、", ListAnd: "和"},
			"pt":    {ListAnd: " e "},
		},
	}
}

// LoadLocales reads a TOML options file, layering it over the defaults.
func LoadLocales(path string) (Locales, error) {
	opts := DefaultLocales()
	if path == "" {
		return opts, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if opts.DefaultLocale == "" {
		opts.DefaultLocale = "en"
	}
	if opts.ReferenceLocale == "" {
		opts.ReferenceLocale = opts.DefaultLocale
	}
	if opts.ModuleNamespace == "" {
		opts.ModuleNamespace = "tossup"
	}
	if opts.SharedNamespace == "" {
		opts.SharedNamespace = "shared"
	}
	return opts, nil
}
