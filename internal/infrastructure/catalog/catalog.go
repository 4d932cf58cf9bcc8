package catalog

import (
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"playpalace-i18n/internal/domain"
	"playpalace-i18n/internal/domain/entities"
	"playpalace-i18n/internal/ports/output"
)

// Ensure Catalog implements the output.Resolver port.
var _ output.Resolver = (*Catalog)(nil)

// Options configures a Catalog.
type Options struct {
	// DefaultLocale terminates every fallback chain.
	DefaultLocale string

	// ModuleNamespace is the table Reload targets (e.g. "tossup").
	ModuleNamespace string

	// SharedNamespace layers beneath every other namespace during lookup.
	SharedNamespace string

	// Fallbacks overrides the derived fallback chain per locale.
	Fallbacks map[string][]string

	// Formatter stringifies render arguments. Nil = plain formatting with
	// default joins.
	Formatter *Formatter
}

// Catalog owns the loaded message tables. Resolve reads an immutable
// snapshot without locking; loads parse off to the side, serialized per
// locale, and publish through a single atomic pointer swap. A resolve that
// races a reload sees either the fully-old or fully-new table.
type Catalog struct {
	opts      Options
	formatter *Formatter

	snap   atomic.Pointer[snapshot]
	swapMu sync.Mutex // guards the copy-on-write publish
	loadMu sync.Map   // locale -> *sync.Mutex, one in-flight load per locale

	loading sync.Map // locale -> *atomic.Int32
	stats   stats
}

type snapshot struct {
	locales map[string]*localeTables
}

type localeTables struct {
	namespaces map[string]*entities.MessageTable
	order      []string // lookup order: module namespaces sorted, shared last
}

// New builds an empty catalog.
func New(opts Options) *Catalog {
	if opts.DefaultLocale == "" {
		opts.DefaultLocale = "en"
	}
	if opts.ModuleNamespace == "" {
		opts.ModuleNamespace = "tossup"
	}
	if opts.SharedNamespace == "" {
		opts.SharedNamespace = "shared"
	}
	if opts.Formatter == nil {
		opts.Formatter = NewFormatter(nil, nil)
	}
	c := &Catalog{opts: opts, formatter: opts.Formatter}
	c.snap.Store(&snapshot{locales: map[string]*localeTables{}})
	return c
}

// Load parses source text and installs it as the table for one
// locale/namespace pair. All-or-nothing: a ParseError leaves any previously
// published table untouched.
func (c *Catalog) Load(locale, namespace, source string) error {
	if strings.TrimSpace(source) == "" {
		return domain.ErrEmptySource
	}

	mu := c.lockFor(locale)
	mu.Lock()
	defer mu.Unlock()

	c.markLoading(locale, 1)
	defer c.markLoading(locale, -1)

	file := namespace + "." + locale + ".ftl"
	table, err := ParseTable(file, locale, namespace, source)
	if err != nil {
		c.stats.loadFailures.Add(1)
		return err
	}

	c.publish(locale, namespace, table)
	c.stats.loads.Add(1)
	return nil
}

// Reload replaces the module namespace's table for a locale.
func (c *Catalog) Reload(locale, source string) error {
	return c.Load(locale, c.opts.ModuleNamespace, source)
}

// ListLocales returns the loaded locale identifiers, sorted.
func (c *Catalog) ListLocales() []string {
	snap := c.snap.Load()
	out := make([]string, 0, len(snap.locales))
	for locale := range snap.locales {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// KeyCount returns the number of distinct keys loaded for a locale across
// all namespace layers.
func (c *Catalog) KeyCount(locale string) int {
	tables := c.snap.Load().locales[locale]
	if tables == nil {
		return 0
	}
	seen := map[string]bool{}
	for _, table := range tables.namespaces {
		for key := range table.Messages {
			seen[key] = true
		}
	}
	return len(seen)
}

// State reports a locale's observable table state.
func (c *Catalog) State(locale string) entities.TableState {
	if v, ok := c.loading.Load(locale); ok {
		if v.(*atomic.Int32).Load() > 0 {
			return entities.TableLoading
		}
	}
	if _, ok := c.snap.Load().locales[locale]; ok {
		return entities.TableReady
	}
	return entities.TableAbsent
}

// publish swaps in a new snapshot containing the fresh table. Old snapshots
// stay valid for in-flight resolves.
func (c *Catalog) publish(locale, namespace string, table *entities.MessageTable) {
	c.swapMu.Lock()
	defer c.swapMu.Unlock()

	old := c.snap.Load()
	next := &snapshot{locales: make(map[string]*localeTables, len(old.locales)+1)}
	for k, v := range old.locales {
		next.locales[k] = v
	}

	namespaces := map[string]*entities.MessageTable{}
	if prev := old.locales[locale]; prev != nil {
		for k, v := range prev.namespaces {
			namespaces[k] = v
		}
	}
	namespaces[namespace] = table

	next.locales[locale] = &localeTables{
		namespaces: namespaces,
		order:      c.namespaceOrder(namespaces),
	}
	c.snap.Store(next)
}

// namespaceOrder keeps lookup deterministic: module namespaces sorted, the
// shared table always last.
func (c *Catalog) namespaceOrder(namespaces map[string]*entities.MessageTable) []string {
	order := make([]string, 0, len(namespaces))
	hasShared := false
	for name := range namespaces {
		if name == c.opts.SharedNamespace {
			hasShared = true
			continue
		}
		order = append(order, name)
	}
	sort.Strings(order)
	if hasShared {
		order = append(order, c.opts.SharedNamespace)
	}
	return order
}

func (c *Catalog) lockFor(locale string) *sync.Mutex {
	mu, _ := c.loadMu.LoadOrStore(locale, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

func (c *Catalog) markLoading(locale string, delta int32) {
	v, _ := c.loading.LoadOrStore(locale, &atomic.Int32{})
	v.(*atomic.Int32).Add(delta)
}
