package catalog

import (
	"errors"
	"testing"

	"playpalace-i18n/internal/domain"
)

func TestParseTableEntriesCommentsAndBlanks(t *testing.T) {
	source := "# Toss Up table\n" +
		"\n" +
		"tossup-you-bank = You bank { $points } points. Total: { $total }.\n" +
		"tossup-need-points = You need points before you can bank.\n"

	table, err := ParseTable("tossup.en.ftl", "en", "tossup", source)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(table.Messages) != 2 {
		t.Fatalf("got %d messages, want 2", len(table.Messages))
	}

	tpl := table.Messages["tossup-you-bank"]
	if tpl == nil {
		t.Fatal("missing tossup-you-bank")
	}
	placeholders := tpl.Placeholders()
	if len(placeholders) != 2 || placeholders[0] != "points" || placeholders[1] != "total" {
		t.Fatalf("placeholders = %v, want [points total]", placeholders)
	}
}

func TestParseTableCRLF(t *testing.T) {
	table, err := ParseTable("f", "en", "tossup", "tossup-bank = Bank { $points } points\r\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if table.Messages["tossup-bank"] == nil {
		t.Fatal("missing tossup-bank")
	}
}

func TestParseTableRejectsMalformedEntry(t *testing.T) {
	_, err := ParseTable("f", "en", "tossup", "just some text\n")
	var parseErr *domain.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("err = %v, want ParseError", err)
	}
	if parseErr.Line != 1 {
		t.Fatalf("line = %d, want 1", parseErr.Line)
	}
}

func TestParseTableRejectsDuplicateKey(t *testing.T) {
	source := "tossup-bank = a\ntossup-bank = b\n"
	_, err := ParseTable("f", "en", "tossup", source)
	var parseErr *domain.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("err = %v, want ParseError", err)
	}
	if parseErr.Line != 2 || parseErr.Key != "tossup-bank" {
		t.Fatalf("got line %d key %q, want line 2 key tossup-bank", parseErr.Line, parseErr.Key)
	}
}

func TestParseTableRejectsBadKey(t *testing.T) {
	for _, key := range []string{"-leading", "1-leading", "spaced key", "bad$key"} {
		_, err := ParseTable("f", "en", "tossup", key+" = text\n")
		var parseErr *domain.ParseError
		if !errors.As(err, &parseErr) {
			t.Fatalf("key %q: err = %v, want ParseError", key, err)
		}
	}
}

func TestParseTableRejectsUnterminatedPlaceholder(t *testing.T) {
	_, err := ParseTable("f", "en", "tossup", "k = before { $points after\n")
	var parseErr *domain.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("err = %v, want ParseError", err)
	}
}

func TestParseTableRejectsInvalidPlaceholderName(t *testing.T) {
	for _, tpl := range []string{"{ $ }", "{ $two words }", "{ $dash-name }"} {
		_, err := ParseTable("f", "en", "tossup", "k = "+tpl+"\n")
		var parseErr *domain.ParseError
		if !errors.As(err, &parseErr) {
			t.Fatalf("template %q: err = %v, want ParseError", tpl, err)
		}
	}
}

func TestParseTableBareBraceIsLiteral(t *testing.T) {
	table, err := ParseTable("f", "en", "tossup", "k = set {a, b} and {$x} stay literal\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	tpl := table.Messages["k"]
	if len(tpl.Placeholders()) != 0 {
		t.Fatalf("placeholders = %v, want none", tpl.Placeholders())
	}
}

func TestParseTableEmptySource(t *testing.T) {
	_, err := ParseTable("f", "en", "tossup", "# only a comment\n\n")
	if !errors.Is(err, domain.ErrEmptySource) {
		t.Fatalf("err = %v, want ErrEmptySource", err)
	}
}

func TestParseTemplateSegmentsPreserveText(t *testing.T) {
	table, err := ParseTable("f", "zh-CN", "tossup", "tossup-you-bank = 你存入 { $points } 分。总分：{ $total }。\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	tpl := table.Messages["tossup-you-bank"]
	if tpl.Source != "你存入 { $points } 分。总分：{ $total }。" {
		t.Fatalf("source = %q", tpl.Source)
	}
	if got := len(tpl.Segments); got != 5 {
		t.Fatalf("segments = %d, want 5", got)
	}
}
