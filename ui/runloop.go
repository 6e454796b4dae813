package ui

import (
	"sync"
	"time"
)

// RunLoop is a cooperative queue of UI work. Work is posted from anywhere
// and executed only when the owner drains the loop.
type RunLoop struct {
	mu    sync.Mutex
	now   func() time.Time
	seq   uint64
	tasks []task
}

type task struct {
	due time.Time
	seq uint64
	fn  func()
}

// NewRunLoop returns an empty run loop using the wall clock.
func NewRunLoop() *RunLoop {
	return &RunLoop{now: time.Now}
}

// SetClock replaces the loop's time source. Intended for tests.
func (l *RunLoop) SetClock(now func() time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.now = now
}

var (
	mainOnce sync.Once
	mainLoop *RunLoop
)

// MainLoop returns the process-wide run loop that views post work to.
func MainLoop() *RunLoop {
	mainOnce.Do(func() {
		mainLoop = NewRunLoop()
	})
	return mainLoop
}

// Post schedules fn to run on the next drain.
func (l *RunLoop) Post(fn func()) {
	l.PostAfter(0, fn)
}

// PostAfter schedules fn to run on the first drain at least d from now.
func (l *RunLoop) PostAfter(d time.Duration, fn func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.seq++
	l.tasks = append(l.tasks, task{due: l.now().Add(d), seq: l.seq, fn: fn})
}

// Pending returns the number of scheduled tasks, ready or not.
func (l *RunLoop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.tasks)
}

// DrainPending runs tasks that are due, including tasks they post that are
// due immediately, until none are ready. It never waits for future timers.
// It returns false if ready work remained when budget ran out.
func (l *RunLoop) DrainPending(budget time.Duration) bool {
	deadline := l.clock()().Add(budget)
	for {
		fn, ok := l.popReady(deadline)
		if !ok {
			return true
		}
		if fn == nil {
			return false
		}
		fn()
	}
}

func (l *RunLoop) clock() func() time.Time {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.now
}

// popReady removes and returns the earliest due task. It reports ok=false
// when nothing is ready, and returns a nil func with ok=true when something
// is ready but the deadline has passed.
func (l *RunLoop) popReady(deadline time.Time) (func(), bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	best := -1
	for i, t := range l.tasks {
		if t.due.After(now) {
			continue
		}
		if best < 0 || t.due.Before(l.tasks[best].due) ||
			(t.due.Equal(l.tasks[best].due) && t.seq < l.tasks[best].seq) {
			best = i
		}
	}
	if best < 0 {
		return nil, false
	}
	if now.After(deadline) {
		return nil, true
	}
	fn := l.tasks[best].fn
	l.tasks = append(l.tasks[:best], l.tasks[best+1:]...)
	return fn, true
}
