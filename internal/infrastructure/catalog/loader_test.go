package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"playpalace-i18n/internal/domain/entities"
)

func mustWriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	mustWriteFile(t, filepath.Join(dir, "tossup.en.ftl"), "tossup-need-points = You need points.\n")
	mustWriteFile(t, filepath.Join(dir, "tossup.pt.ftl"), "tossup-need-points = Você precisa de pontos.\n")
	mustWriteFile(t, filepath.Join(dir, "shared.en.ftl"), "game-final-scores = Final scores:\n")
	mustWriteFile(t, filepath.Join(dir, "notes.txt"), "not a catalog\n")

	c := New(Options{DefaultLocale: "en"})
	if err := c.LoadDir(dir); err != nil {
		t.Fatalf("load dir: %v", err)
	}

	locales := c.ListLocales()
	if len(locales) != 2 {
		t.Fatalf("locales = %v, want [en pt]", locales)
	}
	if c.KeyCount("en") != 2 {
		t.Fatalf("en key count = %d, want 2", c.KeyCount("en"))
	}
}

func TestLoadDirBrokenFileDoesNotBlockOthers(t *testing.T) {
	dir := t.TempDir()
	mustWriteFile(t, filepath.Join(dir, "tossup.en.ftl"), "tossup-need-points = You need points.\n")
	mustWriteFile(t, filepath.Join(dir, "tossup.pt.ftl"), "malformed line without separator\n")

	c := New(Options{DefaultLocale: "en"})
	err := c.LoadDir(dir)
	if err == nil {
		t.Fatal("expected an error for the broken file")
	}
	if !strings.Contains(err.Error(), "tossup.pt.ftl") {
		t.Fatalf("error does not name the broken file: %v", err)
	}

	// en still became Ready.
	if got := c.State("en"); got != entities.TableReady {
		t.Fatalf("en state = %s, want ready", got)
	}
	if got := c.State("pt"); got != entities.TableAbsent {
		t.Fatalf("pt state = %s, want absent", got)
	}
}

func TestLoadDirEmpty(t *testing.T) {
	c := New(Options{DefaultLocale: "en"})
	if err := c.LoadDir(t.TempDir()); err == nil {
		t.Fatal("expected an error for a directory without catalogs")
	}
}

func TestSplitFileName(t *testing.T) {
	cases := []struct {
		base      string
		namespace string
		locale    string
		wantErr   bool
	}{
		{"tossup.zh-CN.ftl", "tossup", "zh-CN", false},
		{"shared.pt.ftl", "shared", "pt", false},
		{"tossup.ftl", "", "", true},
		{"tossup.en.toml", "", "", true},
		{".en.ftl", "", "", true},
	}
	for _, tc := range cases {
		namespace, locale, err := SplitFileName(tc.base)
		if tc.wantErr {
			if err == nil {
				t.Errorf("%s: expected error", tc.base)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: %v", tc.base, err)
			continue
		}
		if namespace != tc.namespace || locale != tc.locale {
			t.Errorf("%s: got %s/%s", tc.base, namespace, locale)
		}
	}
}

func TestLoadEmbeddedDefaults(t *testing.T) {
	c := New(Options{
		DefaultLocale: "en",
		Fallbacks:     map[string][]string{"pt": {"en"}},
	})
	if err := c.LoadEmbedded(); err != nil {
		t.Fatalf("load embedded: %v", err)
	}

	locales := c.ListLocales()
	for _, want := range []string{"en", "pt", "zh-CN"} {
		found := false
		for _, locale := range locales {
			if locale == want {
				found = true
			}
		}
		if !found {
			t.Fatalf("locales = %v, want %s present", locales, want)
		}
	}

	got, err := c.Resolve("zh-CN", "tossup-you-bank", entities.RenderArguments{"points": 5, "total": 120})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != "你存入 5 分。总分：120。" {
		t.Fatalf("got %q", got)
	}

	got, err = c.Resolve("pt", "tossup-winner", entities.RenderArguments{"player": "Ana", "score": 340})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != "Ana vence com 340 pontos!" {
		t.Fatalf("got %q", got)
	}
}
