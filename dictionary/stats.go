package dictionary

import (
	"go.uber.org/atomic"

	"github.com/iotaledger/hive.go/stringify"
)

// Stats counts the operations that were executed on a Dictionary. Lookups run under the shared lock, so all counters
// are atomic.
type Stats struct {
	lookups         atomic.Int64
	misses          atomic.Int64
	inserts         atomic.Int64
	rejectedInserts atomic.Int64
	removals        atomic.Int64
}

// StatsSnapshot is a point in time copy of the counters of a Dictionary.
type StatsSnapshot struct {
	Lookups         int64
	Misses          int64
	Inserts         int64
	RejectedInserts int64
	Removals        int64
}

// Snapshot returns the current values of all counters.
func (s *Stats) Snapshot() StatsSnapshot {
	return StatsSnapshot{
		Lookups:         s.lookups.Load(),
		Misses:          s.misses.Load(),
		Inserts:         s.inserts.Load(),
		RejectedInserts: s.rejectedInserts.Load(),
		Removals:        s.removals.Load(),
	}
}

// Hits returns the amount of lookups that found their word.
func (s StatsSnapshot) Hits() int64 {
	return s.Lookups - s.Misses
}

// String returns a human readable version of the StatsSnapshot.
func (s StatsSnapshot) String() string {
	return stringify.Struct("StatsSnapshot",
		stringify.NewStructField("lookups", s.Lookups),
		stringify.NewStructField("misses", s.Misses),
		stringify.NewStructField("inserts", s.Inserts),
		stringify.NewStructField("rejectedInserts", s.RejectedInserts),
		stringify.NewStructField("removals", s.Removals),
	)
}

func (s *Stats) recordLookup(found bool) {
	s.lookups.Inc()
	if !found {
		s.misses.Inc()
	}
}

func (s *Stats) recordInsert(inserted bool) {
	if inserted {
		s.inserts.Inc()
		return
	}

	s.rejectedInserts.Inc()
}
