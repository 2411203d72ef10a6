/*
Package eventloop implements the single FIFO task queue that every async
host callback (timers, worker-thread completions, I/O callbacks) feeds
into, and the budgeted dispatch loop that drains it on BxScript's single
script thread, per spec.md §4.6.

Ported directly from original_source/evaluator/EventLoop.h: the same
Task{callback, args} queue entry, the same active-task counter deciding
whether the loop should keep spinning after the queue empties (a pending
timer or worker thread keeps the process alive even with no queued task),
and the same budgeted Dispatch that re-prepends whatever didn't run in
time rather than dropping it.
*/
package eventloop

import (
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/burningli/bxscript/value"
	"github.com/fatih/color"
)

// Caller invokes a callback value with the arguments it was enqueued
// with. eval.Interpreter.Call satisfies it, dispatching both
// *value.Function and *value.NativeFunction callbacks.
type Caller interface {
	Call(callback value.Value, args []value.Value) (value.Value, error)
}

// Task is one pending callback invocation.
type Task struct {
	Callback value.Value
	Args     []value.Value
}

var errColor = color.New(color.FgRed)

// Loop is the process-wide async task queue. The zero value is usable.
type Loop struct {
	mu          sync.Mutex
	queue       []Task
	activeTasks int32
}

// New creates an empty Loop.
func New() *Loop {
	return &Loop{}
}

// AddActiveTask marks one more pending asynchronous operation (a timer
// not yet fired, a worker thread not yet joined) that should keep the
// loop alive even while the queue is empty.
func (l *Loop) AddActiveTask() { atomic.AddInt32(&l.activeTasks, 1) }

// RemoveActiveTask undoes AddActiveTask once that operation completes.
func (l *Loop) RemoveActiveTask() { atomic.AddInt32(&l.activeTasks, -1) }

// ShouldKeepAlive reports whether RunLoop should keep spinning: either an
// active task is outstanding, or the queue still has work.
func (l *Loop) ShouldKeepAlive() bool {
	return atomic.LoadInt32(&l.activeTasks) > 0 || l.HasPending()
}

// HasPending reports whether the queue currently holds any task.
func (l *Loop) HasPending() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queue) > 0
}

// Reset clears the queue and active-task counter. Tests use this between
// cases; a long-running host process never needs it.
func (l *Loop) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.queue = nil
	atomic.StoreInt32(&l.activeTasks, 0)
}

// Enqueue appends a task to the back of the queue. Safe to call from any
// goroutine, including a worker thread delivering its result.
func (l *Loop) Enqueue(callback value.Value, args []value.Value) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.queue = append(l.queue, Task{Callback: callback, Args: args})
}

// Dispatch drains the queue, invoking each task's callback via caller on
// the calling goroutine (the script thread). A callback's error is logged
// and swallowed, not propagated, so one misbehaving callback cannot stop
// the rest of the queue or the loop itself.
//
// When maxDurationMs is positive and dispatching overruns it, the
// remaining undispatched tasks are re-prepended to the queue in their
// original order and Dispatch returns true immediately, letting RunLoop
// come back around rather than blocking the process on one slow batch.
// maxDurationMs <= 0 means "run the whole batch with no budget."
//
// The return value reports whether there was any work to do at all.
func (l *Loop) Dispatch(caller Caller, maxDurationMs int) bool {
	start := time.Now()

	l.mu.Lock()
	if len(l.queue) == 0 {
		l.mu.Unlock()
		return false
	}
	batch := l.queue
	l.queue = nil
	l.mu.Unlock()

	for i, task := range batch {
		if _, err := caller.Call(task.Callback, task.Args); err != nil {
			errColor.Fprintf(os.Stderr, "event loop error: %s\n", err)
		}
		if maxDurationMs > 0 && time.Since(start) >= time.Duration(maxDurationMs)*time.Millisecond {
			l.mu.Lock()
			l.queue = append(append([]Task{}, batch[i+1:]...), l.queue...)
			l.mu.Unlock()
			return true
		}
	}
	return true
}

// RunLoop drains the queue via Dispatch until ShouldKeepAlive turns
// false, sleeping briefly between empty polls so an idle loop waiting on
// an active task doesn't spin a CPU core.
func (l *Loop) RunLoop(caller Caller) {
	for l.ShouldKeepAlive() {
		hasWork := l.Dispatch(caller, 0)
		if !hasWork && l.ShouldKeepAlive() {
			time.Sleep(10 * time.Millisecond)
		}
	}
}

// QueueLen reports the current queue length, for diagnostics and tests.
func (l *Loop) QueueLen() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queue)
}
