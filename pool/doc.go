// Package pool provides the two interchangeable dispatch disciplines the
// server can run session tasks under: ActiveObject (a bounded FIFO queue
// drained by N workers, cancel-on-shutdown) and LeaderFollowers (N workers
// sharing one task queue and one leader token, at most one worker ever
// executing a task at a time). Both accept the same Task type so the
// server's accept loop can be wired to either without changing its code.
package pool

// Task is one unit of pool work: a session handler run, in this server's
// case.
type Task func()
