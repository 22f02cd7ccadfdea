// Package room implements the readers-writer discipline behind zero-copy
// windows: a short-held mutex guards the reader count, and a single-slot
// semaphore (the "room") represents the right to touch the mapping. The
// first reader in acquires the room on behalf of the whole group; the
// last reader out releases it. A writer takes the room exclusively, so
// any number of readers run concurrently but a writer excludes everyone.
//
// No fairness is guaranteed between waiting readers and writers: whoever
// gets the room first proceeds, and under sustained contention either
// side can starve. Callers accept this in exchange for the coalesced
// reader group that makes concurrent zero-copy reads possible.
package room

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// Room is the single-slot readers-writer primitive. The zero value is not
// usable; construct with New.
type Room struct {
	mu      sync.Mutex
	readers int
	slot    *semaphore.Weighted
}

// New returns a Room with the slot free and no active readers.
func New() *Room {
	return &Room{slot: semaphore.NewWeighted(1)}
}

// Lock acquires the room exclusively, blocking until no reader group or
// other writer holds it. There is no timeout or cancellation.
func (r *Room) Lock() {
	// Acquire with a background context cannot fail.
	_ = r.slot.Acquire(context.Background(), 1)
}

// Unlock releases exclusive ownership of the room.
func (r *Room) Unlock() {
	r.slot.Release(1)
}

// RLock joins the reader group, blocking while a writer holds the room.
// The first reader acquires the room for the group while still holding
// the counter mutex, so later readers queue behind that acquisition.
func (r *Room) RLock() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.readers++
	if r.readers == 1 {
		_ = r.slot.Acquire(context.Background(), 1)
	}
}

// RUnlock leaves the reader group. The last reader out releases the room.
func (r *Room) RUnlock() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.readers--
	if r.readers == 0 {
		r.slot.Release(1)
	}
}
