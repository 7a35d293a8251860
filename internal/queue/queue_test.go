package queue

import (
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/simonhull/ultrastar/internal/library"
)

func entry(id string) library.Entry { return library.Entry{ID: id} }

func ids(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Entry.ID
	}
	return out
}

type fakeLibrary map[string]library.Entry

func (f fakeLibrary) Find(id string) (library.Entry, bool) {
	e, ok := f[library.NormalizeID(id)]
	return e, ok
}

func TestQueue_FIFO(t *testing.T) {
	q := New()
	q.Enqueue(entry("a"))
	q.Enqueue(entry("b"))
	q.Enqueue(entry("c"))

	if q.Len() != 3 {
		t.Fatalf("Len() = %d", q.Len())
	}
	for _, want := range []string{"a", "b", "c"} {
		item, ok := q.Next()
		if !ok || item.Entry.ID != want {
			t.Errorf("Next() = %q, %v; want %q", item.Entry.ID, ok, want)
		}
		if cur, _ := q.Current(); cur.Entry.ID != want {
			t.Errorf("Current() = %q, want %q", cur.Entry.ID, want)
		}
	}

	if _, ok := q.Next(); ok {
		t.Error("Next() on empty queue should report false")
	}
	if _, ok := q.Current(); ok {
		t.Error("Current() should be cleared after draining")
	}
}

func TestQueue_TicketsAreUnique(t *testing.T) {
	q := New()
	first := q.Enqueue(entry("same"))
	second := q.Enqueue(entry("same"))

	if first.Ticket == second.Ticket || first.Ticket == uuid.Nil {
		t.Fatalf("tickets = %v, %v", first.Ticket, second.Ticket)
	}
	if !q.Remove(second.Ticket) {
		t.Fatal("Remove() should find the second copy")
	}
	if snap := q.Snapshot(); len(snap) != 1 || snap[0].Ticket != first.Ticket {
		t.Errorf("Snapshot() = %+v", snap)
	}
	if q.Remove(second.Ticket) {
		t.Error("removing twice should fail")
	}
}

func TestQueue_EnqueueByID(t *testing.T) {
	lib := fakeLibrary{"Artist/Song": entry("Artist/Song")}
	q := New()

	if _, ok := q.EnqueueByID(lib, `Artist\Song`); !ok {
		t.Error("EnqueueByID should normalize separators")
	}
	if _, ok := q.EnqueueByID(lib, "Missing"); ok {
		t.Error("EnqueueByID should fail for unknown ids")
	}
	if q.Len() != 1 {
		t.Errorf("Len() = %d", q.Len())
	}
}

func TestQueue_Reorder(t *testing.T) {
	q := New()
	a := q.Enqueue(entry("a"))
	q.Enqueue(entry("b"))
	c := q.Enqueue(entry("c"))

	if q.MoveUp(a.Ticket) {
		t.Error("head cannot move up")
	}
	if q.MoveDown(c.Ticket) {
		t.Error("tail cannot move down")
	}
	if !q.MoveUp(c.Ticket) || !q.MoveDown(a.Ticket) {
		t.Fatal("moves should succeed")
	}

	got := ids(q.Snapshot())
	want := []string{"c", "a", "b"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
	if q.MoveUp(uuid.New()) {
		t.Error("unknown ticket should not move")
	}
}

func TestQueue_PeekAndClear(t *testing.T) {
	q := New()
	for _, id := range []string{"a", "b", "c"} {
		q.Enqueue(entry(id))
	}

	if got := ids(q.Peek(2)); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("Peek(2) = %v", got)
	}
	if got := q.Peek(10); len(got) != 3 {
		t.Errorf("Peek(10) = %d items", len(got))
	}
	if got := q.Peek(-1); len(got) != 0 {
		t.Errorf("Peek(-1) = %d items", len(got))
	}

	peeked := q.Peek(1)
	peeked[0].Entry.ID = "changed"
	if head := q.Peek(1); head[0].Entry.ID != "a" {
		t.Error("Peek should return a copy")
	}

	q.Next()
	q.Clear()
	if q.Len() != 0 {
		t.Errorf("Len() after Clear = %d", q.Len())
	}
	if cur, ok := q.Current(); !ok || cur.Entry.ID != "a" {
		t.Error("Clear should keep the current song")
	}
}

func TestQueue_Concurrent(t *testing.T) {
	q := New()
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				item := q.Enqueue(entry("x"))
				q.Snapshot()
				q.Remove(item.Ticket)
			}
		}()
	}
	wg.Wait()

	if q.Len() != 0 {
		t.Errorf("Len() = %d, want 0", q.Len())
	}
}
