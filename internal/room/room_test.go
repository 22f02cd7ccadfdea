package room

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoom_ReadersShareTheRoom(t *testing.T) {
	r := New()

	const n = 8

	var inside atomic.Int32
	release := make(chan struct{})

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.RLock()
			inside.Add(1)
			<-release
			r.RUnlock()
		}()
	}

	// All readers must end up inside at the same time. If they were
	// serialized, at most one could enter before release is closed.
	require.Eventually(t, func() bool {
		return inside.Load() == n
	}, time.Second, time.Millisecond)

	close(release)
	wg.Wait()
}

func TestRoom_WriterExcludesReaders(t *testing.T) {
	r := New()

	r.RLock()

	locked := make(chan struct{})
	go func() {
		r.Lock()
		close(locked)
	}()

	select {
	case <-locked:
		t.Fatal("writer entered the room while a reader held it")
	case <-time.After(50 * time.Millisecond):
	}

	r.RUnlock()

	select {
	case <-locked:
	case <-time.After(time.Second):
		t.Fatal("writer never entered after last reader left")
	}

	r.Unlock()
}

func TestRoom_WritersAreMutuallyExclusive(t *testing.T) {
	r := New()

	var current, maxSeen atomic.Int32

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r.Lock()
				if c := current.Add(1); c > maxSeen.Load() {
					maxSeen.Store(c)
				}
				current.Add(-1)
				r.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxSeen.Load())
}

func TestRoom_ReaderBlocksBehindWriter(t *testing.T) {
	r := New()

	r.Lock()

	entered := make(chan struct{})
	go func() {
		r.RLock()
		close(entered)
	}()

	select {
	case <-entered:
		t.Fatal("reader entered the room while a writer held it")
	case <-time.After(50 * time.Millisecond):
	}

	r.Unlock()

	select {
	case <-entered:
	case <-time.After(time.Second):
		t.Fatal("reader never entered after writer left")
	}

	r.RUnlock()
}
