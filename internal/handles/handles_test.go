package handles

import (
	"errors"
	"sync"
	"testing"
)

type testObject struct {
	Name  string
	Value int
}

func TestInsertAndGet(t *testing.T) {
	tbl := New[*testObject]()

	obj := &testObject{Name: "test", Value: 42}
	h := tbl.Insert(obj)
	if h == 0 {
		t.Fatal("Insert should return non-zero handle")
	}

	got, ok := tbl.Get(h)
	if !ok {
		t.Fatal("Get should resolve a live handle")
	}
	if got != obj {
		t.Errorf("Get returned %p, want %p", got, obj)
	}
}

func TestRemove(t *testing.T) {
	tbl := New[*testObject]()
	obj := &testObject{Name: "test"}
	h := tbl.Insert(obj)

	got, ok := tbl.Remove(h)
	if !ok || got != obj {
		t.Fatalf("Remove = (%v, %v), want (%p, true)", got, ok, obj)
	}

	if _, ok := tbl.Get(h); ok {
		t.Error("Get should fail after Remove")
	}
	if _, ok := tbl.Remove(h); ok {
		t.Error("second Remove of the same handle should fail")
	}
	if tbl.Len() != 0 {
		t.Errorf("Len = %d, want 0", tbl.Len())
	}
}

func TestNullHandle(t *testing.T) {
	tbl := New[*testObject]()

	if _, ok := tbl.Get(0); ok {
		t.Error("null handle should not resolve")
	}
	if _, ok := tbl.Remove(0); ok {
		t.Error("null handle should not be removable")
	}
	if tbl.Borrow(0, func(*testObject) { t.Error("Borrow called fn for null handle") }) {
		t.Error("Borrow of null handle should fail")
	}
	if _, err := tbl.Resolve(0); !errors.Is(err, ErrNullHandle) {
		t.Errorf("Resolve(0) error = %v, want ErrNullHandle", err)
	}
}

func TestUnknownHandle(t *testing.T) {
	tbl := New[*testObject]()
	tbl.Insert(&testObject{})

	for _, h := range []Handle{999999, makeHandle(0, 7), makeHandle(5, 1)} {
		if _, ok := tbl.Get(h); ok {
			t.Errorf("Get(%#x) resolved a handle that was never issued", uintptr(h))
		}
		if _, err := tbl.Resolve(h); !errors.Is(err, ErrStaleHandle) {
			t.Errorf("Resolve(%#x) error = %v, want ErrStaleHandle", uintptr(h), err)
		}
	}
}

func TestStaleHandleDoesNotAliasReusedSlot(t *testing.T) {
	tbl := New[*testObject]()

	first := &testObject{Name: "first"}
	h1 := tbl.Insert(first)
	tbl.Remove(h1)

	second := &testObject{Name: "second"}
	h2 := tbl.Insert(second)

	if h1 == h2 {
		t.Fatalf("reused slot returned the same handle value %#x", uintptr(h1))
	}
	if idx1, _, _ := split(h1); idx1 != 0 {
		t.Fatalf("first handle used slot %d, want 0", idx1)
	}
	if idx2, _, _ := split(h2); idx2 != 0 {
		t.Fatalf("freed slot was not reused: got slot %d", idx2)
	}
	if _, ok := tbl.Get(h1); ok {
		t.Error("stale handle resolved after its slot was reused")
	}
	if _, ok := tbl.Remove(h1); ok {
		t.Error("stale handle removed the object now living in its slot")
	}
	if got, ok := tbl.Get(h2); !ok || got != second {
		t.Error("new handle should still resolve to its own object")
	}
}

func TestGenerationExhaustionRetiresSlot(t *testing.T) {
	tbl := New[*testObject]()
	tbl.Insert(&testObject{})

	// Fast-forward slot 0 to its last generation.
	tbl.slots[0].gen = genMask
	h := makeHandle(0, genMask)

	if _, ok := tbl.Remove(h); !ok {
		t.Fatal("Remove at last generation should succeed")
	}
	if len(tbl.free) != 0 {
		t.Error("exhausted slot should not be returned to the free list")
	}

	h2 := tbl.Insert(&testObject{})
	if idx, _, _ := split(h2); idx != 1 {
		t.Errorf("Insert after retirement used slot %d, want 1", idx)
	}
	if tbl.Len() != 1 {
		t.Errorf("Len = %d, want 1", tbl.Len())
	}
}

func TestBorrowMutatesInPlace(t *testing.T) {
	tbl := New[*testObject]()
	h := tbl.Insert(&testObject{})

	ok := tbl.Borrow(h, func(o *testObject) {
		o.Value = 7
	})
	if !ok {
		t.Fatal("Borrow should succeed on a live handle")
	}

	got, _ := tbl.Get(h)
	if got.Value != 7 {
		t.Errorf("Value = %d, want 7", got.Value)
	}

	tbl.Remove(h)
	if tbl.Borrow(h, func(*testObject) { t.Error("Borrow called fn after Remove") }) {
		t.Error("Borrow should fail after Remove")
	}
}

func TestLenAndEach(t *testing.T) {
	tbl := New[int]()

	h1 := tbl.Insert(1)
	tbl.Insert(2)
	tbl.Insert(3)
	tbl.Remove(h1)

	if tbl.Len() != 2 {
		t.Fatalf("Len = %d, want 2", tbl.Len())
	}

	sum := 0
	tbl.Each(func(h Handle, v int) bool {
		if got, ok := tbl.Get(h); !ok || got != v {
			t.Errorf("Each yielded handle %#x that does not resolve to %d", uintptr(h), v)
		}
		sum += v
		return true
	})
	if sum != 5 {
		t.Errorf("sum = %d, want 5", sum)
	}

	count := 0
	tbl.Each(func(Handle, int) bool {
		count++
		return false
	})
	if count != 1 {
		t.Errorf("Each visited %d items after early stop, want 1", count)
	}
}

func TestZeroValueTable(t *testing.T) {
	var tbl Table[string]
	h := tbl.Insert("x")
	if v, ok := tbl.Get(h); !ok || v != "x" {
		t.Errorf("Get = (%q, %v), want (\"x\", true)", v, ok)
	}
}

func TestConcurrentAccess(t *testing.T) {
	const numGoroutines = 100
	const numOps = 100

	tbl := New[*testObject]()

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < numOps; j++ {
				obj := &testObject{Value: id*numOps + j}
				h := tbl.Insert(obj)
				got, ok := tbl.Get(h)
				if !ok || got != obj {
					t.Errorf("Get(%#x) did not return the inserted object", uintptr(h))
				}
				if _, ok := tbl.Remove(h); !ok {
					t.Errorf("Remove(%#x) failed", uintptr(h))
				}
			}
		}(i)
	}

	wg.Wait()

	if tbl.Len() != 0 {
		t.Errorf("Len = %d after all removals, want 0", tbl.Len())
	}
}

func TestHandlesAreUnique(t *testing.T) {
	tbl := New[int]()
	seen := make(map[Handle]bool)

	for i := 0; i < 1000; i++ {
		h := tbl.Insert(i)
		if seen[h] {
			t.Errorf("Handle %#x was returned twice", uintptr(h))
		}
		seen[h] = true
		if i%3 == 0 {
			tbl.Remove(h)
		}
	}
}
