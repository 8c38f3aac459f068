package syncutils_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wordsmith/lexicon/syncutils"
)

func TestRWMutex_ReadersAndWriter(t *testing.T) {
	var (
		mutex   syncutils.RWMutex
		counter int
		wg      sync.WaitGroup
	)

	for i := 0; i < 8; i++ {
		wg.Add(2)

		go func() {
			defer wg.Done()

			mutex.Lock()
			defer mutex.Unlock()

			counter++
		}()

		go func() {
			defer wg.Done()

			mutex.RLock()
			defer mutex.RUnlock()

			_ = counter
		}()
	}

	wg.Wait()

	require.Equal(t, 8, counter)
}
