package pool_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborist-net/mstnet/pool"
)

func TestActiveObjectRunsEnqueuedTasks(t *testing.T) {
	p := pool.NewActiveObject(2, 8)
	defer p.Shutdown()

	var count atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		ok := p.Enqueue(func() {
			count.Add(1)
			wg.Done()
		})
		require.True(t, ok)
	}
	wg.Wait()
	assert.EqualValues(t, 5, count.Load())
}

func TestActiveObjectRejectsOverCapacity(t *testing.T) {
	p := pool.NewActiveObject(0, 1)
	defer p.Shutdown()

	assert.True(t, p.Enqueue(func() {}))
	assert.False(t, p.Enqueue(func() {}), "second submission should exceed the bounded queue with no worker draining it")
}

func TestActiveObjectRejectsAfterShutdown(t *testing.T) {
	p := pool.NewActiveObject(1, 4)
	p.Shutdown()

	assert.False(t, p.Enqueue(func() {}))
}

func TestLeaderFollowersRunsTasksSerially(t *testing.T) {
	p := pool.NewLeaderFollowers(4, nil)
	defer p.Stop()

	var active atomic.Int32
	var maxActive atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		p.AddTask(func() {
			defer wg.Done()
			n := active.Add(1)
			for {
				m := maxActive.Load()
				if n <= m || maxActive.CompareAndSwap(m, n) {
					break
				}
			}
			time.Sleep(2 * time.Millisecond)
			active.Add(-1)
		})
	}
	wg.Wait()
	assert.LessOrEqual(t, maxActive.Load(), int32(1), "at most one leader should execute a task at a time")
}

func TestLeaderFollowersAddTaskAfterStopIsNoOp(t *testing.T) {
	p := pool.NewLeaderFollowers(1, nil)
	p.Stop()

	var ran atomic.Bool
	p.AddTask(func() { ran.Store(true) })
	time.Sleep(5 * time.Millisecond)
	assert.False(t, ran.Load())
}
