package catalog

import (
	"errors"

	"playpalace-i18n/internal/domain"
	"playpalace-i18n/internal/domain/entities"
	"playpalace-i18n/pkg/localetag"
)

// Resolve renders the message identified by key for a locale. Lookup walks
// the locale's namespace layers, then its fallback chain, first match wins.
// List joins and number formatting follow the requested locale's conventions
// even when the template came from a fallback.
func (c *Catalog) Resolve(locale, key string, args entities.RenderArguments) (string, error) {
	snap := c.snap.Load()
	c.stats.resolves.Add(1)

	for i, candidate := range c.chainFor(locale) {
		tpl := snap.lookup(candidate, key)
		if tpl == nil {
			continue
		}
		if i > 0 {
			c.stats.fallbacks.Add(1)
		}
		msg, err := renderTemplate(tpl, locale, args, c.formatter)
		if err != nil {
			var missing *domain.MissingArgumentError
			if errors.As(err, &missing) {
				c.stats.missingArguments.Add(1)
			}
			return "", err
		}
		return msg, nil
	}

	c.stats.missingKeys.Add(1)
	return "", &domain.MissingKeyError{Locale: locale, Key: key}
}

// chainFor returns the ordered locales to consult: the locale itself, its
// configured or tag-derived fallbacks, then the default locale.
func (c *Catalog) chainFor(locale string) []string {
	chain := []string{locale}
	if explicit, ok := c.opts.Fallbacks[locale]; ok {
		chain = append(chain, explicit...)
	} else {
		chain = append(chain, localetag.ParentChain(locale)...)
	}
	chain = append(chain, c.opts.DefaultLocale)

	seen := make(map[string]bool, len(chain))
	out := chain[:0]
	for _, loc := range chain {
		if loc == "" || seen[loc] {
			continue
		}
		seen[loc] = true
		out = append(out, loc)
	}
	return out
}

func (s *snapshot) lookup(locale, key string) *entities.MessageTemplate {
	tables := s.locales[locale]
	if tables == nil {
		return nil
	}
	for _, namespace := range tables.order {
		if tpl, ok := tables.namespaces[namespace].Messages[key]; ok {
			return tpl
		}
	}
	return nil
}
