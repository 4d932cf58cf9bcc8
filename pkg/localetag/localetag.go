// Package localetag normalizes locale identifiers and derives fallback
// parents from BCP 47 structure (zh-CN -> zh).
package localetag

import (
	"golang.org/x/text/language"
)

// Normalize parses an identifier and returns its canonical form
// ("zh-cn" -> "zh-CN"). The input is returned unchanged when it does not
// parse: catalog files are the source of truth for which identifiers exist.
func Normalize(id string) string {
	tag, err := language.Parse(id)
	if err != nil {
		return id
	}
	return tag.String()
}

// ParentChain returns the ordered chain of parent tags for an identifier,
// most specific first, excluding the identifier itself and the und root.
func ParentChain(id string) []string {
	tag, err := language.Parse(id)
	if err != nil {
		return nil
	}
	var out []string
	for parent := tag.Parent(); parent != language.Und; parent = parent.Parent() {
		out = append(out, parent.String())
	}
	return out
}
