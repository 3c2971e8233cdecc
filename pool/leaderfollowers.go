package pool

import (
	"sync"
	"sync/atomic"

	"github.com/arborist-net/mstnet/internal/logging"
)

// LeaderFollowers is N worker goroutines sharing one task queue and one
// leader token: at most one worker ever executes a task at a time. A
// worker that dequeues a task holds the token — and keeps holding it,
// without releasing or waking anyone else — until that task returns, then
// releases the token and wakes one follower to compete for leadership.
type LeaderFollowers struct {
	mu           sync.Mutex
	cond         *sync.Cond
	queue        []Task
	running      bool
	leaderActive atomic.Bool
	wg           sync.WaitGroup
	logger       *logging.Logger
}

// NewLeaderFollowers starts numWorkers goroutines racing for the leader
// token. logger may be nil, in which case promotion/execution are not
// logged.
func NewLeaderFollowers(numWorkers int, logger *logging.Logger) *LeaderFollowers {
	if logger == nil {
		logger = logging.Default("leaderfollowers")
	}
	p := &LeaderFollowers{running: true, logger: logger}
	p.cond = sync.NewCond(&p.mu)

	for i := 0; i < numWorkers; i++ {
		p.wg.Add(1)
		go p.workerLoop()
	}
	return p
}

// AddTask submits task for execution. Unlike ActiveObject this queue is
// unbounded, matching the original production path, which never rejects a
// submission while the pool is running.
func (p *LeaderFollowers) AddTask(task Task) {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	p.queue = append(p.queue, task)
	p.mu.Unlock()
	p.cond.Signal()
}

func (p *LeaderFollowers) workerLoop() {
	defer p.wg.Done()
	for {
		p.mu.Lock()
		for p.running && len(p.queue) == 0 {
			p.cond.Wait()
		}
		if !p.running && len(p.queue) == 0 {
			p.mu.Unlock()
			return
		}

		if !p.leaderActive.CompareAndSwap(false, true) {
			// Someone else is already leader; go back to waiting.
			p.mu.Unlock()
			continue
		}

		var task Task
		if len(p.queue) > 0 {
			task = p.queue[0]
			p.queue = p.queue[1:]
		}
		p.mu.Unlock()

		p.logger.Debug("became leader")
		if task != nil {
			p.runTask(task)
		}

		p.leaderActive.Store(false)
		p.cond.Signal()
	}
}

// runTask executes task with the leader token held, recovering from a
// panic so the token is still released by the caller afterward. A task
// that panics does not bring down its worker or strand the pool leaderless.
func (p *LeaderFollowers) runTask(task Task) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("task panicked", "recovered", r)
		}
	}()
	p.logger.Debug("executing task")
	task()
}

// QueueLen reports how many tasks are currently queued, waiting for the
// leader token.
func (p *LeaderFollowers) QueueLen() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.queue)
}

// Stop signals every worker to exit once the queue drains and waits for
// them to return.
func (p *LeaderFollowers) Stop() {
	p.mu.Lock()
	p.running = false
	p.mu.Unlock()
	p.cond.Broadcast()
	p.wg.Wait()
}
