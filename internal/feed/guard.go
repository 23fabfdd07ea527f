package feed

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint returns the content hash used to detect unchanged input
func Fingerprint(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Guard remembers the last content seen for each input so a caller can skip
// re-running the pipeline on identical data. The zero value is ready to use.
type Guard struct {
	mu   sync.Mutex
	seen map[string]uint64
}

// NewGuard creates an empty Guard
func NewGuard() *Guard {
	return &Guard{seen: make(map[string]uint64)}
}

// Observe records data for key and reports whether it differs from what was
// last observed for the same key. The first observation of a key is always new.
func (g *Guard) Observe(key string, data []byte) bool {
	sum := Fingerprint(data)

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.seen == nil {
		g.seen = make(map[string]uint64)
	}
	if prev, ok := g.seen[key]; ok && prev == sum {
		return false
	}
	g.seen[key] = sum
	return true
}

// Forget drops the record for key so its next observation counts as new
func (g *Guard) Forget(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.seen, key)
}
