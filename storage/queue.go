package storage

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

type taskKind int

const (
	readTask taskKind = iota
	writeTask
)

type task struct {
	kind taskKind
	run  func()
}

// queue is the per-store coordinator. Tasks start in submission order.
// Read tasks run concurrently on a bounded pool of goroutines; a write task
// waits for every earlier task to finish and holds back every later one
// until it completes.
type queue struct {
	mu      sync.Mutex
	pending []task
	closed  bool
	wake    chan struct{}
	done    chan struct{}

	rw      sync.RWMutex
	workers *semaphore.Weighted
}

func newQueue(workers int) *queue {
	if workers < 1 {
		workers = 1
	}
	q := &queue{
		wake:    make(chan struct{}, 1),
		done:    make(chan struct{}),
		workers: semaphore.NewWeighted(int64(workers)),
	}
	go q.dispatch()
	return q
}

// submit enqueues fn without blocking. It returns false once the queue is closed.
func (q *queue) submit(kind taskKind, fn func()) bool {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return false
	}
	q.pending = append(q.pending, task{kind: kind, run: fn})
	q.mu.Unlock()

	q.signal()
	return true
}

func (q *queue) signal() {
	select {
	case q.wake <- struct{}{}:
	default:
	}
}

// next blocks until a task is pending or the queue is closed and drained.
func (q *queue) next() (task, bool) {
	for {
		q.mu.Lock()
		if len(q.pending) > 0 {
			t := q.pending[0]
			q.pending[0] = task{}
			q.pending = q.pending[1:]
			q.mu.Unlock()
			return t, true
		}
		closed := q.closed
		q.mu.Unlock()

		if closed {
			return task{}, false
		}
		<-q.wake
	}
}

func (q *queue) dispatch() {
	defer close(q.done)
	ctx := context.Background()

	for {
		t, ok := q.next()
		if !ok {
			// Wait out in-flight reads.
			q.rw.Lock()
			q.rw.Unlock()
			return
		}

		if t.kind == writeTask {
			q.runExclusive(t.run)
			continue
		}

		q.rw.RLock()
		// Acquire only fails on a cancelled context.
		_ = q.workers.Acquire(ctx, 1)
		go func(run func()) {
			defer q.rw.RUnlock()
			defer q.workers.Release(1)
			run()
		}(t.run)
	}
}

func (q *queue) runExclusive(run func()) {
	q.rw.Lock()
	defer q.rw.Unlock()
	run()
}

// close stops accepting tasks and blocks until every submitted task has
// finished. It must not be called from inside a task.
func (q *queue) close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()

	q.signal()
	<-q.done
}
