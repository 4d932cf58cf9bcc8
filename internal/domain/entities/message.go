package entities

// Segment is one piece of a parsed template: either literal text or a named
// placeholder to fill at render time.
type Segment struct {
	Literal     string
	Placeholder string // non-empty means this segment is a placeholder
}

// MessageTemplate is a parsed catalog entry. Segments are produced once at
// load time; rendering never re-scans the source text.
type MessageTemplate struct {
	Key      string
	Source   string
	Segments []Segment
}

// Placeholders returns the distinct placeholder names the template
// references, in first-appearance order.
func (t *MessageTemplate) Placeholders() []string {
	seen := map[string]bool{}
	var out []string
	for _, seg := range t.Segments {
		if seg.Placeholder == "" || seen[seg.Placeholder] {
			continue
		}
		seen[seg.Placeholder] = true
		out = append(out, seg.Placeholder)
	}
	return out
}

// MessageTable maps message keys to parsed templates for one locale and
// namespace. Tables are immutable once published; reloads swap in a fresh
// table instead of mutating.
type MessageTable struct {
	Locale    string
	Namespace string
	Messages  map[string]*MessageTemplate
}

// Keys returns the table's key set (unordered).
func (t *MessageTable) Keys() []string {
	out := make([]string, 0, len(t.Messages))
	for key := range t.Messages {
		out = append(out, key)
	}
	return out
}

// RenderArguments supplies placeholder values for one render call. Values may
// be strings, integers, or string slices (for example dice-roll results).
type RenderArguments map[string]any

// TableState is the observable lifecycle state of a locale's tables.
type TableState string

const (
	TableAbsent  TableState = "absent"
	TableLoading TableState = "loading"
	TableReady   TableState = "ready"
)

// IssueKind classifies a validation finding.
type IssueKind string

const (
	IssueMissingKey IssueKind = "missing-key"
	IssueExtraKey   IssueKind = "extra-key"
)

// ValidationIssue describes key-set drift between a locale and the reference
// locale. Issues are warnings: a partial translation never blocks the
// catalog.
type ValidationIssue struct {
	Severity  string // always "warning" today
	Locale    string
	Namespace string
	Key       string
	Kind      IssueKind
}
