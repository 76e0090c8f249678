// Package parallel runs independent chart building tasks on a fixed set of
// goroutines.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool runs batches of tasks on a fixed number of goroutines.
//
// Tasks of one batch are claimed in order from a shared counter, so a slow
// task never holds back the tasks queued behind it on the same worker.
// A pool with a single worker runs every task on the calling goroutine.
//
// WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers int
	batches chan *batch
	wg      sync.WaitGroup
	running atomic.Bool
	// mu keeps Close from closing batches during a send.
	mu sync.RWMutex
}

type batch struct {
	work []func()
	next atomic.Int64
	done sync.WaitGroup
}

// run claims tasks until the batch is exhausted.
func (b *batch) run() {
	for {
		i := int(b.next.Add(1)) - 1
		if i >= len(b.work) {
			return
		}
		if fn := b.work[i]; fn != nil {
			fn()
		}
		b.done.Done()
	}
}

// NewWorkerPool creates a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	p := &WorkerPool{workers: workers}
	p.running.Store(true)
	if workers == 1 {
		return p
	}
	p.batches = make(chan *batch, workers)
	p.wg.Add(workers)
	for range workers {
		go p.worker()
	}
	return p
}

func (p *WorkerPool) worker() {
	defer p.wg.Done()
	for b := range p.batches {
		b.run()
	}
}

// ExecuteAll runs every task and waits for all of them to complete. The
// calling goroutine takes part in the work. If the pool is closed, the
// tasks run on the calling goroutine.
func (p *WorkerPool) ExecuteAll(work []func()) {
	if len(work) == 0 {
		return
	}
	b := &batch{work: work}
	b.done.Add(len(work))
	p.mu.RLock()
	if p.workers > 1 && p.running.Load() {
		helpers := min(p.workers, len(work)) - 1
		for range helpers {
			select {
			case p.batches <- b:
			default:
			}
		}
	}
	p.mu.RUnlock()
	b.run()
	b.done.Wait()
}

// Close stops the workers after the batches in flight complete.
// Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	p.mu.Lock()
	if !p.running.CompareAndSwap(true, false) {
		p.mu.Unlock()
		return
	}
	if p.batches != nil {
		close(p.batches)
	}
	p.mu.Unlock()
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool still hands work to its workers.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
