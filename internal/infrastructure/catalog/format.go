package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// AndList marks a []string argument for and-style joining ("Ana, Bo e Cy")
// instead of the plain separator join used for things like dice results.
type AndList []string

// JoinStyle is one locale's list punctuation.
type JoinStyle struct {
	Separator string // between items; default ", "
	And       string // between the final two items of an AndList; empty = Separator
}

// Formatter stringifies render arguments. The resolver is format-agnostic
// beyond the list join: numeric conventions are injected here, not hardcoded
// in templates.
type Formatter struct {
	joins    map[string]JoinStyle
	grouped  map[string]bool
	printers map[string]*message.Printer
}

// NewFormatter builds a formatter with per-locale join styles and an optional
// set of locales that want digit grouping via x/text.
func NewFormatter(joins map[string]JoinStyle, grouped map[string]bool) *Formatter {
	f := &Formatter{
		joins:    map[string]JoinStyle{},
		grouped:  map[string]bool{},
		printers: map[string]*message.Printer{},
	}
	for locale, style := range joins {
		f.joins[locale] = style
	}
	for locale, on := range grouped {
		if !on {
			continue
		}
		f.grouped[locale] = true
		tag, err := language.Parse(locale)
		if err != nil {
			tag = language.English
		}
		f.printers[locale] = message.NewPrinter(tag)
	}
	return f
}

// FormatValue renders one argument value for a locale.
func (f *Formatter) FormatValue(locale string, v any) string {
	switch val := v.(type) {
	case string:
		return val
	case AndList:
		return f.joinAnd(locale, val)
	case []string:
		return strings.Join(val, f.styleFor(locale).Separator)
	case int:
		return f.formatInt(locale, int64(val))
	case int32:
		return f.formatInt(locale, int64(val))
	case int64:
		return f.formatInt(locale, val)
	case uint:
		return f.formatInt(locale, int64(val))
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}

func (f *Formatter) formatInt(locale string, n int64) string {
	if f.grouped[locale] {
		if p := f.printers[locale]; p != nil {
			return p.Sprintf("%d", n)
		}
	}
	return strconv.FormatInt(n, 10)
}

func (f *Formatter) joinAnd(locale string, items []string) string {
	style := f.styleFor(locale)
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	and := style.And
	if and == "" {
		and = style.Separator
	}
	head := strings.Join(items[:len(items)-1], style.Separator)
	return head + and + items[len(items)-1]
}

func (f *Formatter) styleFor(locale string) JoinStyle {
	if style, ok := f.joins[locale]; ok {
		if style.Separator == "" {
			style.Separator = ", "
		}
		return style
	}
	return JoinStyle{Separator: ", "}
}
