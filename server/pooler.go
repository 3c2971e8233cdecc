package server

import "github.com/arborist-net/mstnet/pool"

// pooler is the common surface both dispatch disciplines offer the accept
// loop: submit a task, report queue depth, shut down. ActiveObject and
// LeaderFollowers differ in submission semantics (bounded/rejecting vs.
// unbounded/always-accepting) and in shutdown discipline (cancel- vs.
// drain-on-shutdown); the accept loop only needs to know whether
// submission succeeded.
type pooler interface {
	submit(task pool.Task) bool
	queueLen() int
	shutdown()
}

type activeObjectPool struct{ *pool.ActiveObject }

func (p activeObjectPool) submit(task pool.Task) bool { return p.Enqueue(task) }
func (p activeObjectPool) queueLen() int              { return p.QueueLen() }
func (p activeObjectPool) shutdown()                  { p.Shutdown() }

type leaderFollowersPool struct{ *pool.LeaderFollowers }

func (p leaderFollowersPool) submit(task pool.Task) bool { p.AddTask(task); return true }
func (p leaderFollowersPool) queueLen() int              { return p.QueueLen() }
func (p leaderFollowersPool) shutdown()                  { p.Stop() }
