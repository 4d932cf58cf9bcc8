package catalog

import "sync/atomic"

type stats struct {
	resolves         atomic.Int64
	fallbacks        atomic.Int64
	missingKeys      atomic.Int64
	missingArguments atomic.Int64
	loads            atomic.Int64
	loadFailures     atomic.Int64
}

// StatsSnapshot is a point-in-time copy of the catalog counters, reported by
// the status tool.
type StatsSnapshot struct {
	Resolves         int64
	Fallbacks        int64
	MissingKeys      int64
	MissingArguments int64
	Loads            int64
	LoadFailures     int64
}

// Stats returns the current counter values.
func (c *Catalog) Stats() StatsSnapshot {
	return StatsSnapshot{
		Resolves:         c.stats.resolves.Load(),
		Fallbacks:        c.stats.fallbacks.Load(),
		MissingKeys:      c.stats.missingKeys.Load(),
		MissingArguments: c.stats.missingArguments.Load(),
		Loads:            c.stats.loads.Load(),
		LoadFailures:     c.stats.loadFailures.Load(),
	}
}
