package tracker

import "sync"

// BusySet holds the ids of entities currently under a mutating operation.
// An id in the set disables that entity's destructive actions. Callers must
// pair every successful Add with a deferred Release so a failed operation
// never leaves the entity locked.
type BusySet struct {
	mu  sync.Mutex
	ids map[string]struct{}
}

func NewBusySet() *BusySet {
	return &BusySet{ids: make(map[string]struct{})}
}

// Add marks the id busy. It reports false when the id is already under an
// operation, in which case the caller must not start another one.
func (b *BusySet) Add(id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, busy := b.ids[id]; busy {
		return false
	}

	b.ids[id] = struct{}{}

	return true
}

func (b *BusySet) Release(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.ids, id)
}

func (b *BusySet) Contains(id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	_, busy := b.ids[id]

	return busy
}

func (b *BusySet) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.ids)
}
