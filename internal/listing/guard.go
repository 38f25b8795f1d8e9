package listing

import "sync"

// FetchGuard is the staleness guard around view refetches. Each fetch for a
// scope takes a generation number; when a newer fetch for the same scope has
// started before the response lands, the response must be discarded instead
// of overwriting fresher state.
type FetchGuard struct {
	mu   sync.Mutex
	gens map[string]uint64
}

func NewFetchGuard() *FetchGuard {
	return &FetchGuard{gens: make(map[string]uint64)}
}

// Begin registers a new fetch for the scope and returns its generation.
func (g *FetchGuard) Begin(scope string) uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.gens[scope]++
	return g.gens[scope]
}

// Stale reports whether a fetch that started at gen has been superseded.
func (g *FetchGuard) Stale(scope string, gen uint64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.gens[scope] != gen
}
