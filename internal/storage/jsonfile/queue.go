package jsonfile

import "sync"

// writeQueue serialises writes per file path. Tasks enqueued for the
// same path run strictly one at a time in submission order; a failing
// task does not block the tasks queued behind it, because the chain
// advances when a task settles, not when it succeeds.
//
// Serialisation is scoped to this process. Multiple processes sharing
// the same files get no protection here.
type writeQueue struct {
	mu    sync.Mutex
	tails map[string]chan struct{}
}

func newWriteQueue() *writeQueue {
	return &writeQueue{tails: make(map[string]chan struct{})}
}

// enqueue schedules task behind any in-flight work for path and
// returns a channel closed once task has settled.
func (q *writeQueue) enqueue(path string, task func()) <-chan struct{} {
	done := make(chan struct{})

	q.mu.Lock()
	prev := q.tails[path]
	q.tails[path] = done
	q.mu.Unlock()

	go func() {
		if prev != nil {
			<-prev
		}
		defer close(done)
		task()
	}()

	return done
}
