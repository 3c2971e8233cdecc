package pool

import (
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/arborist-net/mstnet/internal/logging"
)

// ActiveObject is a bounded FIFO task queue drained by a fixed number of
// worker goroutines, created at construction. Enqueue never blocks: once
// the queue is at capacity, or the pool is not running, submission is
// silently refused. Shutdown is cancel-on-shutdown — workers stop as soon
// as they observe the pool is no longer running, even with tasks still
// queued, matching the production contract (an alternative
// drain-before-stop discipline exists in one variant of the source but is
// not the one this server runs).
type ActiveObject struct {
	mu      sync.Mutex
	cond    *sync.Cond
	queue   []Task
	running bool
	wg      sync.WaitGroup

	// admission bounds the queue depth: one slot is held per queued task
	// and released the moment a worker dequeues it.
	admission *semaphore.Weighted

	logger *logging.Logger
}

// NewActiveObject starts numWorkers goroutines draining a queue bounded to
// capacity pending tasks.
func NewActiveObject(numWorkers, capacity int) *ActiveObject {
	p := &ActiveObject{
		running:   true,
		admission: semaphore.NewWeighted(int64(capacity)),
		logger:    logging.Default("activeobject"),
	}
	p.cond = sync.NewCond(&p.mu)

	for i := 0; i < numWorkers; i++ {
		p.wg.Add(1)
		go p.workerLoop()
	}
	return p
}

// Enqueue submits task for execution. It returns false without enqueueing
// if the pool is not running or the queue is at capacity.
func (p *ActiveObject) Enqueue(task Task) bool {
	if !p.admission.TryAcquire(1) {
		return false
	}

	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		p.admission.Release(1)
		return false
	}
	p.queue = append(p.queue, task)
	p.mu.Unlock()
	p.cond.Signal()
	return true
}

func (p *ActiveObject) workerLoop() {
	defer p.wg.Done()
	for {
		p.mu.Lock()
		for len(p.queue) == 0 && p.running {
			p.cond.Wait()
		}
		if !p.running {
			p.mu.Unlock()
			return
		}
		task := p.queue[0]
		p.queue = p.queue[1:]
		p.mu.Unlock()
		p.admission.Release(1)

		p.runTask(task)
	}
}

// runTask executes task, recovering from a panic so one bad task cannot
// kill its worker goroutine.
func (p *ActiveObject) runTask(task Task) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("task panicked", "recovered", r)
		}
	}()
	task()
}

// QueueLen reports how many tasks are currently queued, waiting for a
// worker.
func (p *ActiveObject) QueueLen() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.queue)
}

// Shutdown transitions the pool to not-running, wakes every worker, and
// waits for them to exit. Queued tasks that have not yet started are
// dropped.
func (p *ActiveObject) Shutdown() {
	p.mu.Lock()
	p.running = false
	p.mu.Unlock()
	p.cond.Broadcast()
	p.wg.Wait()
}
