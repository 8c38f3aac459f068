//go:build !deadlock

package syncutils

import (
	"sync"
)

// RWMutex is the reader/writer lock that guards shared dictionaries. Builds with the "deadlock" tag swap it for a
// deadlock detecting implementation.
type RWMutex = sync.RWMutex
