package catalog

import (
	"strings"

	"playpalace-i18n/internal/domain"
	"playpalace-i18n/internal/domain/entities"
)

// renderTemplate substitutes every placeholder occurrence from args. Repeated
// names substitute consistently; unknown extra arguments are ignored so
// template edits never force every caller to update in lockstep. A missing
// argument is always an error.
func renderTemplate(tpl *entities.MessageTemplate, locale string, args entities.RenderArguments, f *Formatter) (string, error) {
	var b strings.Builder
	b.Grow(len(tpl.Source))
	for _, seg := range tpl.Segments {
		if seg.Placeholder == "" {
			b.WriteString(seg.Literal)
			continue
		}
		value, ok := args[seg.Placeholder]
		if !ok {
			return "", &domain.MissingArgumentError{Locale: locale, Key: tpl.Key, Placeholder: seg.Placeholder}
		}
		b.WriteString(f.FormatValue(locale, value))
	}
	return b.String(), nil
}
