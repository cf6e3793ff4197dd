// Package handles provides a thread-safe handle table for Go objects that are
// referenced from C through opaque, pointer-sized values.
//
// C code cannot hold Go pointers. Instead the object is stored in a Table and
// C receives a Handle: the low half of the word is a 1-based slot index and
// the high half is the slot's generation. Removing an object advances the
// slot generation, so a handle value handed out before the removal never
// resolves again, even after the slot has been reused for a new object.
//
// Thread-safe.
package handles

import (
	"errors"
	"math/bits"
	"sync"
)

// Handle is an opaque reference to an object in a Table.
// The zero Handle is the null handle and never resolves.
type Handle uintptr

var (
	// ErrNullHandle is returned when the null handle is resolved.
	ErrNullHandle = errors.New("egl: null handle")

	// ErrStaleHandle is returned when a handle does not name a live object,
	// either because it was removed or because it was never issued.
	ErrStaleHandle = errors.New("egl: stale or unknown handle")
)

const (
	slotBits = bits.UintSize / 2
	slotMask = 1<<slotBits - 1
	genMask  = 1<<(bits.UintSize-slotBits) - 1
)

type slot[T any] struct {
	value T
	gen   uintptr
	live  bool
}

// Table owns objects of type T on behalf of handle holders.
// The zero value is ready to use.
type Table[T any] struct {
	mu      sync.RWMutex
	slots   []slot[T]
	free    []int
	retired int
}

// New creates an empty table.
func New[T any]() *Table[T] {
	return &Table[T]{
		slots: make([]slot[T], 0, 16),
	}
}

// Insert stores v and returns a fresh handle that owns it.
// Returns the null handle if the table has run out of slots.
func (t *Table[T]) Insert(v T) Handle {
	t.mu.Lock()
	defer t.mu.Unlock()

	var idx int
	if n := len(t.free); n > 0 {
		idx = t.free[n-1]
		t.free = t.free[:n-1]
	} else {
		if len(t.slots) >= slotMask {
			return 0
		}
		t.slots = append(t.slots, slot[T]{gen: 1})
		idx = len(t.slots) - 1
	}

	s := &t.slots[idx]
	s.value = v
	s.live = true
	return makeHandle(idx, s.gen)
}

// Get returns the object owned by h without transferring ownership.
// Returns false for the null handle and for handles that are not live.
func (t *Table[T]) Get(h Handle) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	s := t.lookup(h)
	if s == nil {
		var zero T
		return zero, false
	}
	return s.value, true
}

// Resolve is Get with a reason for failure.
func (t *Table[T]) Resolve(h Handle) (T, error) {
	if h == 0 {
		var zero T
		return zero, ErrNullHandle
	}
	v, ok := t.Get(h)
	if !ok {
		return v, ErrStaleHandle
	}
	return v, nil
}

// Borrow calls fn with the object owned by h while holding the table's read
// lock, so the object cannot be removed until fn returns. fn must not call
// Insert or Remove on the same table.
//
// Returns false, without calling fn, if h is not live.
func (t *Table[T]) Borrow(h Handle, fn func(T)) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	s := t.lookup(h)
	if s == nil {
		return false
	}
	fn(s.value)
	return true
}

// Remove transfers ownership of the object out of the table and invalidates h.
// Removing the same handle twice returns false the second time.
func (t *Table[T]) Remove(h Handle) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var zero T
	s := t.lookup(h)
	if s == nil {
		return zero, false
	}

	value := s.value
	s.value = zero
	s.live = false

	idx := int(uintptr(h)&slotMask) - 1
	next := (s.gen + 1) & genMask
	if next == 0 {
		// The generation space is exhausted; retire the slot instead of
		// letting an old handle value alias a future object.
		s.gen = 0
		t.retired++
		return value, true
	}
	s.gen = next
	t.free = append(t.free, idx)
	return value, true
}

// Len returns the number of live objects.
func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.slots) - len(t.free) - t.retired
}

// Each calls fn for every live object until fn returns false.
func (t *Table[T]) Each(fn func(Handle, T) bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for i := range t.slots {
		s := &t.slots[i]
		if !s.live {
			continue
		}
		if !fn(makeHandle(i, s.gen), s.value) {
			return
		}
	}
}

// lookup returns the live slot named by h. The caller must hold t.mu.
func (t *Table[T]) lookup(h Handle) *slot[T] {
	idx, gen, ok := split(h)
	if !ok || idx >= len(t.slots) {
		return nil
	}
	s := &t.slots[idx]
	if !s.live || s.gen != gen {
		return nil
	}
	return s
}

func makeHandle(idx int, gen uintptr) Handle {
	return Handle(gen<<slotBits | uintptr(idx+1))
}

func split(h Handle) (idx int, gen uintptr, ok bool) {
	low := uintptr(h) & slotMask
	if low == 0 {
		return 0, 0, false
	}
	return int(low - 1), uintptr(h) >> slotBits, true
}
