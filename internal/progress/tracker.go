// Package progress implements completion tracking for a single learning
// path.
//
// A Tracker owns the set of completed module ids for one path and keeps
// it synchronized with a key-value surface. The tracker is built for a
// UI/CLI front end, so its contract is deliberately forgiving: storage
// availability is probed once at construction, every persistence failure
// after that is swallowed, and the in-memory set stays authoritative for
// the rest of the session. No operation on a Tracker ever returns an
// error.
//
// A Tracker is not safe for concurrent mutation; it expects a single
// caller, the same way its operations are driven from a single command
// invocation or UI thread.
package progress

import (
	"encoding/json"
	"math"
)

const (
	keyPrefix = "progress:"
	probeKey  = "progress:availability-probe"
	probeVal  = "ok"
)

// Snapshot is the state handed to observers after each mutation.
type Snapshot struct {
	// PathID identifies the learning path.
	PathID string

	// Completed holds the completed module ids in the order they were
	// first marked complete.
	Completed []string
}

// Observer receives a snapshot synchronously after each mutation.
type Observer func(Snapshot)

// KV is the persistence surface a Tracker writes through. kv.Store
// satisfies it; tests substitute fakes.
type KV interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// Tracker tracks completed modules for one learning path.
type Tracker struct {
	pathID    string
	store     KV
	available bool

	// completed preserves first-insertion order; members mirrors it for
	// O(1) membership tests.
	completed []string
	members   map[string]bool

	observers []Observer
}

// NewTracker creates a Tracker for the given learning path, probing the
// store once for availability and hydrating from any previously
// persisted progress. A missing or malformed persisted value hydrates an
// empty set; it is never an error.
func NewTracker(pathID string, store KV) *Tracker {
	t := &Tracker{
		pathID:  pathID,
		store:   store,
		members: make(map[string]bool),
	}

	t.available = probe(store)
	if t.available {
		t.hydrate()
	}

	return t
}

// probe checks the store once with a sentinel write + delete. Any
// failure marks the store unavailable for the tracker's lifetime, even
// if later writes would succeed.
func probe(store KV) bool {
	if store == nil {
		return false
	}
	if err := store.Set(probeKey, []byte(probeVal)); err != nil {
		return false
	}
	if err := store.Delete(probeKey); err != nil {
		return false
	}
	return true
}

// hydrate loads persisted progress. The wire format is a JSON array of
// module-id strings; anything else is discarded silently.
func (t *Tracker) hydrate() {
	data, err := t.store.Get(t.key())
	if err != nil {
		return
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return
	}

	for _, id := range ids {
		if !t.members[id] {
			t.members[id] = true
			t.completed = append(t.completed, id)
		}
	}
}

// Available reports whether the availability probe succeeded at
// construction. It never changes afterward.
func (t *Tracker) Available() bool {
	return t.available
}

// PathID returns the learning path this tracker is bound to.
func (t *Tracker) PathID() string {
	return t.pathID
}

// IsComplete reports whether the module has been marked complete.
func (t *Tracker) IsComplete(id string) bool {
	return t.members[id]
}

// Completed returns the completed module ids in first-completion order.
func (t *Tracker) Completed() []string {
	out := make([]string, len(t.completed))
	copy(out, t.completed)
	return out
}

// CompletedCount returns the number of completed modules.
func (t *Tracker) CompletedCount() int {
	return len(t.completed)
}

// ProgressPercentage returns the completed share of total modules as an
// integer percentage, rounded half-up. A total of zero (or less) yields
// 0, and the result is clamped to [0,100] so a stale persisted set
// larger than the current catalog can't report an impossible value.
func (t *Tracker) ProgressPercentage(total int) int {
	if total <= 0 {
		return 0
	}
	pct := int(math.Round(100 * float64(len(t.completed)) / float64(total)))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// MarkComplete adds the module to the completed set. Marking an already
// complete module is a no-op (no persistence, no notification).
func (t *Tracker) MarkComplete(id string) {
	if t.members[id] {
		return
	}
	t.members[id] = true
	t.completed = append(t.completed, id)
	t.persist()
	t.notify()
}

// MarkIncomplete removes the module from the completed set. Removing a
// module that isn't complete is a no-op.
func (t *Tracker) MarkIncomplete(id string) {
	if !t.members[id] {
		return
	}
	delete(t.members, id)
	for i, existing := range t.completed {
		if existing == id {
			t.completed = append(t.completed[:i], t.completed[i+1:]...)
			break
		}
	}
	t.persist()
	t.notify()
}

// Toggle flips the module's completion state.
func (t *Tracker) Toggle(id string) {
	if t.members[id] {
		t.MarkIncomplete(id)
	} else {
		t.MarkComplete(id)
	}
}

// Reset empties the completed set and removes the persisted value.
func (t *Tracker) Reset() {
	t.completed = nil
	t.members = make(map[string]bool)
	if t.available {
		// Best effort, same as every other persistence attempt.
		_ = t.store.Delete(t.key())
	}
	t.notify()
}

// Subscribe registers an observer notified synchronously after each
// mutation completes. Observers cannot be unregistered; a tracker lives
// for one session.
func (t *Tracker) Subscribe(fn Observer) {
	t.observers = append(t.observers, fn)
}

func (t *Tracker) key() string {
	return keyPrefix + t.pathID
}

// persist writes the completed set through the store. Skipped entirely
// when the availability probe failed; write failures are swallowed and
// the in-memory set stays authoritative.
func (t *Tracker) persist() {
	if !t.available {
		return
	}

	data, err := json.Marshal(t.completedOrEmpty())
	if err != nil {
		return
	}
	_ = t.store.Set(t.key(), data)
}

// completedOrEmpty keeps the wire format a JSON array even when the set
// is empty (nil would marshal to "null", which a later hydrate discards).
func (t *Tracker) completedOrEmpty() []string {
	if t.completed == nil {
		return []string{}
	}
	return t.completed
}

func (t *Tracker) notify() {
	if len(t.observers) == 0 {
		return
	}
	snap := Snapshot{
		PathID:    t.pathID,
		Completed: t.Completed(),
	}
	for _, fn := range t.observers {
		fn(snap)
	}
}
