// Package queue holds the songs waiting to be sung.
//
// The queue is shared between the player, which takes songs off the head,
// and remote controls, which add, remove and reorder them. All methods are
// safe for concurrent use. Every queued song gets a ticket so that the same
// song can be queued twice and each copy addressed on its own.
package queue

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/simonhull/ultrastar/internal/library"
)

// Item is a queued song.
type Item struct {
	Ticket uuid.UUID
	Entry  library.Entry
	Added  time.Time
}

// Finder looks songs up by ID; *library.Library implements it.
type Finder interface {
	Find(id string) (library.Entry, bool)
}

// Queue is a FIFO of songs.
type Queue struct {
	mu      sync.Mutex
	items   []Item
	current *Item

	now func() time.Time
}

// New returns an empty queue.
func New() *Queue {
	return &Queue{now: time.Now}
}

// Enqueue appends a song and returns its queue item.
func (q *Queue) Enqueue(entry library.Entry) Item {
	q.mu.Lock()
	defer q.mu.Unlock()

	item := Item{Ticket: uuid.New(), Entry: entry, Added: q.now()}
	q.items = append(q.items, item)
	return item
}

// EnqueueByID appends the song with the given ID. ok is false when lib
// has no such song.
func (q *Queue) EnqueueByID(lib Finder, id string) (item Item, ok bool) {
	entry, ok := lib.Find(id)
	if !ok {
		return Item{}, false
	}
	return q.Enqueue(entry), true
}

// Next removes the head of the queue and makes it the current song. When
// the queue is empty the current song is cleared and ok is false.
func (q *Queue) Next() (item Item, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 {
		q.current = nil
		return Item{}, false
	}
	item = q.items[0]
	q.items = slices.Delete(q.items, 0, 1)
	q.current = &item
	return item, true
}

// Current returns the song most recently taken with Next.
func (q *Queue) Current() (Item, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.current == nil {
		return Item{}, false
	}
	return *q.current, true
}

// Peek returns up to n items from the head without removing them.
func (q *Queue) Peek(n int) []Item {
	q.mu.Lock()
	defer q.mu.Unlock()

	n = min(max(n, 0), len(q.items))
	return slices.Clone(q.items[:n])
}

// Snapshot returns a copy of the whole queue.
func (q *Queue) Snapshot() []Item {
	q.mu.Lock()
	defer q.mu.Unlock()
	return slices.Clone(q.items)
}

// Remove drops the item with the given ticket.
func (q *Queue) Remove(ticket uuid.UUID) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	i := q.index(ticket)
	if i < 0 {
		return false
	}
	q.items = slices.Delete(q.items, i, i+1)
	return true
}

// MoveUp swaps an item with the one before it.
func (q *Queue) MoveUp(ticket uuid.UUID) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	i := q.index(ticket)
	if i <= 0 {
		return false
	}
	q.items[i-1], q.items[i] = q.items[i], q.items[i-1]
	return true
}

// MoveDown swaps an item with the one after it.
func (q *Queue) MoveDown(ticket uuid.UUID) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	i := q.index(ticket)
	if i < 0 || i >= len(q.items)-1 {
		return false
	}
	q.items[i], q.items[i+1] = q.items[i+1], q.items[i]
	return true
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Clear empties the queue. The current song is kept.
func (q *Queue) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = nil
}

func (q *Queue) index(ticket uuid.UUID) int {
	return slices.IndexFunc(q.items, func(it Item) bool { return it.Ticket == ticket })
}
