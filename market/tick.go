package market

import (
	"errors"
	"sync"
	"time"
)

// Tick is one price observation for a pair.
type Tick struct {
	Pair  Pair
	Price float64
	Time  time.Time
}

// TickStore keeps the latest tick per pair.
type TickStore struct {
	mu    sync.RWMutex
	ticks map[Pair]Tick
}

func NewTickStore() *TickStore {
	return &TickStore{ticks: make(map[Pair]Tick)}
}

func (ts *TickStore) Set(t Tick) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.ticks[t.Pair] = t
}

func (ts *TickStore) Get(p Pair) (Tick, error) {
	ts.mu.RLock()
	defer ts.mu.RUnlock()
	t, ok := ts.ticks[p]
	if !ok {
		return Tick{}, errors.New("price not found")
	}
	return t, nil
}

// All returns a copy of the latest ticks.
func (ts *TickStore) All() map[Pair]Tick {
	ts.mu.RLock()
	defer ts.mu.RUnlock()
	out := make(map[Pair]Tick, len(ts.ticks))
	for p, t := range ts.ticks {
		out[p] = t
	}
	return out
}
