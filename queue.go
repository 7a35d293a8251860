package ultrastar

import "github.com/simonhull/ultrastar/internal/queue"

// Queue is an alias to queue.Queue.
type Queue = queue.Queue

// QueueItem is an alias to queue.Item.
type QueueItem = queue.Item

// NewQueue returns an empty song queue.
func NewQueue() *Queue {
	return queue.New()
}
