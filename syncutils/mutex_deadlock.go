//go:build deadlock

package syncutils

import (
	"time"

	"github.com/sasha-s/go-deadlock"
)

// RWMutex is the reader/writer lock that guards shared dictionaries. It reports lock acquisitions that take longer
// than the configured timeout.
type RWMutex = deadlock.RWMutex

func init() {
	deadlock.Opts.DeadlockTimeout = 20 * time.Second
}
