package memory

import (
	"sort"
	"sync"
)

// Journal is the site log for a single session: free-form notes keyed by a
// short identifier. Writing an existing key replaces its value.
//
// Each session owns its own Journal; nothing is shared across runs.
type Journal struct {
	mu      sync.RWMutex
	entries map[string]string
}

func NewJournal() *Journal {
	return &Journal{entries: make(map[string]string)}
}

// Set records valeur under cle, overwriting any previous value.
func (j *Journal) Set(cle, valeur string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries[cle] = valeur
}

// Get returns the note stored under cle.
func (j *Journal) Get(cle string) (string, bool) {
	j.mu.RLock()
	defer j.mu.RUnlock()
	v, ok := j.entries[cle]
	return v, ok
}

// Len reports the number of stored notes.
func (j *Journal) Len() int {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return len(j.entries)
}

// Keys returns the stored keys in sorted order.
func (j *Journal) Keys() []string {
	j.mu.RLock()
	defer j.mu.RUnlock()
	keys := make([]string, 0, len(j.entries))
	for k := range j.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Snapshot returns a copy of every note. Callers may mutate the result
// without affecting the journal.
func (j *Journal) Snapshot() map[string]string {
	j.mu.RLock()
	defer j.mu.RUnlock()
	out := make(map[string]string, len(j.entries))
	for k, v := range j.entries {
		out[k] = v
	}
	return out
}
