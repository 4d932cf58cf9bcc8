package catalog

import (
	"sort"

	"playpalace-i18n/internal/domain/entities"
)

// Validate computes the symmetric key-set difference of every loaded locale
// against the reference locale, per namespace. Findings are warnings: partial
// translation is an accepted state and never blocks resolution.
func (c *Catalog) Validate(referenceLocale string) []entities.ValidationIssue {
	snap := c.snap.Load()
	ref := snap.locales[referenceLocale]
	if ref == nil {
		return nil
	}

	var issues []entities.ValidationIssue
	for locale, tables := range snap.locales {
		if locale == referenceLocale {
			continue
		}
		for _, namespace := range unionNamespaces(ref, tables) {
			refKeys := keySet(ref, namespace)
			locKeys := keySet(tables, namespace)
			for key := range refKeys {
				if !locKeys[key] {
					issues = append(issues, entities.ValidationIssue{
						Severity:  "warning",
						Locale:    locale,
						Namespace: namespace,
						Key:       key,
						Kind:      entities.IssueMissingKey,
					})
				}
			}
			for key := range locKeys {
				if !refKeys[key] {
					issues = append(issues, entities.ValidationIssue{
						Severity:  "warning",
						Locale:    locale,
						Namespace: namespace,
						Key:       key,
						Kind:      entities.IssueExtraKey,
					})
				}
			}
		}
	}

	sort.Slice(issues, func(i, j int) bool {
		a, b := issues[i], issues[j]
		if a.Locale != b.Locale {
			return a.Locale < b.Locale
		}
		if a.Namespace != b.Namespace {
			return a.Namespace < b.Namespace
		}
		return a.Key < b.Key
	})
	return issues
}

func unionNamespaces(a, b *localeTables) []string {
	seen := map[string]bool{}
	var out []string
	for _, tables := range []*localeTables{a, b} {
		for namespace := range tables.namespaces {
			if !seen[namespace] {
				seen[namespace] = true
				out = append(out, namespace)
			}
		}
	}
	sort.Strings(out)
	return out
}

func keySet(tables *localeTables, namespace string) map[string]bool {
	out := map[string]bool{}
	table, ok := tables.namespaces[namespace]
	if !ok {
		return out
	}
	for key := range table.Messages {
		out[key] = true
	}
	return out
}
