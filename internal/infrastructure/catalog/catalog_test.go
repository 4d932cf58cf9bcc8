package catalog

import (
	"errors"
	"sync"
	"testing"

	"playpalace-i18n/internal/domain"
	"playpalace-i18n/internal/domain/entities"
)

func TestLoadThenListLocales(t *testing.T) {
	c := New(Options{DefaultLocale: "en", ModuleNamespace: "tossup"})
	mustLoad(t, c, "en", "tossup", "tossup-need-points = You need points.\n")
	mustLoad(t, c, "pt", "tossup", "tossup-need-points = Você precisa de pontos.\n")

	locales := c.ListLocales()
	if len(locales) != 2 || locales[0] != "en" || locales[1] != "pt" {
		t.Fatalf("locales = %v, want [en pt]", locales)
	}
}

func TestStateTransitions(t *testing.T) {
	c := New(Options{DefaultLocale: "en"})
	if got := c.State("en"); got != entities.TableAbsent {
		t.Fatalf("state = %s, want absent", got)
	}
	mustLoad(t, c, "en", "tossup", "k = v\n")
	if got := c.State("en"); got != entities.TableReady {
		t.Fatalf("state = %s, want ready", got)
	}
}

func TestFailedReloadKeepsPreviousTable(t *testing.T) {
	c := New(Options{DefaultLocale: "en", ModuleNamespace: "tossup"})
	mustLoad(t, c, "en", "tossup", "tossup-winner = { $player } wins!\n")

	err := c.Reload("en", "tossup-winner = { $player wins!\n")
	var parseErr *domain.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("err = %v, want ParseError", err)
	}

	got, err := c.Resolve("en", "tossup-winner", entities.RenderArguments{"player": "Ana"})
	if err != nil {
		t.Fatalf("resolve after failed reload: %v", err)
	}
	if got != "Ana wins!" {
		t.Fatalf("got %q, want the pre-reload string", got)
	}
}

func TestReloadTargetsModuleNamespace(t *testing.T) {
	c := New(Options{DefaultLocale: "en", ModuleNamespace: "tossup", SharedNamespace: "shared"})
	mustLoad(t, c, "en", "tossup", "tossup-need-points = old\n")
	mustLoad(t, c, "en", "shared", "game-final-scores = Final scores:\n")

	if err := c.Reload("en", "tossup-need-points = new\n"); err != nil {
		t.Fatalf("reload: %v", err)
	}

	got, err := c.Resolve("en", "tossup-need-points", nil)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != "new" {
		t.Fatalf("got %q, want new", got)
	}

	// The shared layer is untouched by a module reload.
	if _, err := c.Resolve("en", "game-final-scores", nil); err != nil {
		t.Fatalf("shared key lost after reload: %v", err)
	}
}

func TestKeyCountSpansNamespaces(t *testing.T) {
	c := New(Options{DefaultLocale: "en"})
	mustLoad(t, c, "en", "tossup", "a = 1\nb = 2\n")
	mustLoad(t, c, "en", "shared", "c = 3\n")
	if got := c.KeyCount("en"); got != 3 {
		t.Fatalf("key count = %d, want 3", got)
	}
	if got := c.KeyCount("pt"); got != 0 {
		t.Fatalf("key count = %d, want 0", got)
	}
}

// A resolve racing a reload must observe the fully-old or fully-new template,
// never a mix. Run with -race.
func TestResolveReloadAtomicity(t *testing.T) {
	c := New(Options{DefaultLocale: "en", ModuleNamespace: "tossup"})
	oldSrc := "tossup-turn-start = It is { $player }'s turn with { $score } points.\n"
	newSrc := "tossup-turn-start = { $player } is up, sitting on { $score } points.\n"
	mustLoad(t, c, "en", "tossup", oldSrc)

	args := entities.RenderArguments{"player": "Ana", "score": 42}
	oldWant := "It is Ana's turn with 42 points."
	newWant := "Ana is up, sitting on 42 points."

	var wg sync.WaitGroup
	stop := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			src := oldSrc
			if i%2 == 1 {
				src = newSrc
			}
			if err := c.Reload("en", src); err != nil {
				t.Errorf("reload: %v", err)
				return
			}
		}
		close(stop)
	}()

	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				got, err := c.Resolve("en", "tossup-turn-start", args)
				if err != nil {
					t.Errorf("resolve: %v", err)
					return
				}
				if got != oldWant && got != newWant {
					t.Errorf("torn read: %q", got)
					return
				}
			}
		}()
	}

	wg.Wait()
}
