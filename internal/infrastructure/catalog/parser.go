package catalog

import (
	"strconv"
	"strings"

	"playpalace-i18n/internal/domain"
	"playpalace-i18n/internal/domain/entities"
)

// Catalog source grammar, per line:
//
//	# comment          -> ignored
//	(blank)            -> ignored
//	key = template     -> entry
//
// Keys are hyphenated identifiers (tossup-you-bank). Template text is literal
// except for { $name } placeholders: exactly one space after the brace and one
// before the closing brace. Anything that opens like a placeholder but does
// not close like one is a ParseError, not literal text.

const (
	placeholderOpen  = "{ $"
	placeholderClose = " }"
)

// ParseTable parses a full catalog source into a message table. Parsing is
// all-or-nothing: the first malformed line rejects the whole source.
func ParseTable(file, locale, namespace, source string) (*entities.MessageTable, error) {
	table := &entities.MessageTable{
		Locale:    locale,
		Namespace: namespace,
		Messages:  map[string]*entities.MessageTemplate{},
	}

	for i, raw := range strings.Split(source, "\n") {
		lineNo := i + 1
		line := strings.TrimRight(raw, "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		key, text, found := strings.Cut(line, " = ")
		if !found {
			return nil, &domain.ParseError{File: file, Line: lineNo, Reason: `entry must have the form "key = template"`}
		}
		if !validKey(key) {
			return nil, &domain.ParseError{File: file, Line: lineNo, Key: key, Reason: "key must be a hyphenated identifier"}
		}
		if _, exists := table.Messages[key]; exists {
			return nil, &domain.ParseError{File: file, Line: lineNo, Key: key, Reason: "duplicate key"}
		}

		tpl, err := parseTemplate(file, lineNo, key, text)
		if err != nil {
			return nil, err
		}
		table.Messages[key] = tpl
	}

	if len(table.Messages) == 0 {
		return nil, domain.ErrEmptySource
	}
	return table, nil
}

// parseTemplate scans template text left to right, splitting it into literal
// and placeholder segments.
func parseTemplate(file string, line int, key, text string) (*entities.MessageTemplate, error) {
	tpl := &entities.MessageTemplate{Key: key, Source: text}

	rest := text
	for len(rest) > 0 {
		open := strings.Index(rest, placeholderOpen)
		if open < 0 {
			tpl.Segments = append(tpl.Segments, entities.Segment{Literal: rest})
			break
		}
		if open > 0 {
			tpl.Segments = append(tpl.Segments, entities.Segment{Literal: rest[:open]})
		}
		rest = rest[open+len(placeholderOpen):]

		end := strings.Index(rest, placeholderClose)
		if end < 0 {
			return nil, &domain.ParseError{File: file, Line: line, Key: key, Reason: "unterminated placeholder"}
		}
		name := rest[:end]
		if !validPlaceholderName(name) {
			return nil, &domain.ParseError{File: file, Line: line, Key: key, Reason: "invalid placeholder name " + strconv.Quote(name)}
		}
		tpl.Segments = append(tpl.Segments, entities.Segment{Placeholder: name})
		rest = rest[end+len(placeholderClose):]
	}

	return tpl, nil
}

func validKey(key string) bool {
	if key == "" {
		return false
	}
	for i, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9', r == '-', r == '_':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func validPlaceholderName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9', r == '_':
		default:
			return false
		}
	}
	return true
}
