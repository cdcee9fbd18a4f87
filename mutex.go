// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fiber

// Mutex guards a value of type T for threads.
//
// A thread that finds the mutex held leaves its ready queue and waits in the
// mutex's own queue Q until the holder releases it. Wake order is Q's pop
// order: FIFO with a [Ring], most recent first with a [LIFO].
//
// The held flag and wait queue are protected by a spin lock that is never
// held while another thread runs, so a Mutex may be shared by schedulers
// running on different OS threads. A woken thread joins the ready queue of
// the scheduler whose thread released the mutex.
type Mutex[T any, N Node[N, L], L any, Q Queue[N]] struct {
	lock    spinLock
	held    bool
	gen     uint64 // bumped on every acquire; identifies the live guard
	waiters Q
	value   T
}

// NewMutex returns an unlocked mutex guarding value. Blocked threads wait in
// waiters, which must be empty.
func NewMutex[T any, N Node[N, L], L any, Q Queue[N]](value T, waiters Q) *Mutex[T, N, L, Q] {
	return &Mutex[T, N, L, Q]{waiters: waiters, value: value}
}

// TryLock acquires the mutex for t if it is free. It never suspends t and
// never touches the wait queue.
func (m *Mutex[T, N, L, Q]) TryLock(t *Thread[N, L]) (Guard[T, N, L, Q], bool) {
	m.lock.Lock()
	if m.held {
		m.lock.Unlock()
		return Guard[T, N, L, Q]{}, false
	}
	g := m.acquire(t)
	m.lock.Unlock()
	return g, true
}

// Lock acquires the mutex for t, suspending t until it is free.
// t must be the calling thread.
func (m *Mutex[T, N, L, Q]) Lock(t *Thread[N, L]) Guard[T, N, L, Q] {
	for {
		m.lock.Lock()
		if !m.held {
			g := m.acquire(t)
			m.lock.Unlock()
			return g
		}
		// The spin lock stays held across the stage round trip, a channel
		// handoff to this thread's scheduler goroutine and back. That
		// scheduler answers without running another thread, but contenders
		// on other schedulers keep spinning until wait releases it.
		t.Unschedule(m.wait)
	}
}

// acquire marks m held for t. The spin lock must be held.
func (m *Mutex[T, N, L, Q]) acquire(t *Thread[N, L]) Guard[T, N, L, Q] {
	m.held = true
	m.gen++
	return Guard[T, N, L, Q]{m: m, t: t, gen: m.gen}
}

// wait files a staged node in the wait queue and releases the spin lock.
func (m *Mutex[T, N, L, Q]) wait(n N) {
	m.waiters.Push(n)
	m.lock.Unlock()
}

// unlock clears held and hands the next waiter to t's scheduler.
// gen must name the current acquisition.
func (m *Mutex[T, N, L, Q]) unlock(t *Thread[N, L], gen uint64) {
	m.lock.Lock()
	if !m.held || m.gen != gen {
		m.lock.Unlock()
		panic("fiber: guard released twice")
	}
	m.held = false
	n, ok := m.waiters.Pop()
	m.lock.Unlock()
	if ok {
		t.Schedule(n)
	}
}

// Guard is the proof that a thread holds a [Mutex].
// Release it exactly once, normally with defer g.Unlock(). Copies of a guard
// share one acquisition: once any copy is unlocked, unlocking another panics.
type Guard[T any, N Node[N, L], L any, Q Queue[N]] struct {
	m   *Mutex[T, N, L, Q]
	t   *Thread[N, L]
	gen uint64
}

// Value returns the guarded value. The pointer is valid until Unlock.
// Panics if this guard was released or never acquired the mutex.
func (g *Guard[T, N, L, Q]) Value() *T {
	if g.m == nil {
		panic("fiber: guard used after release")
	}
	return &g.m.value
}

// Unlock releases the mutex and wakes one waiter, if any.
// It must run on the thread that acquired the guard.
// Panics if the guard was already released.
func (g *Guard[T, N, L, Q]) Unlock() {
	m := g.m
	if m == nil {
		panic("fiber: guard released twice")
	}
	g.m = nil
	m.unlock(g.t, g.gen)
}

// TaskMutex is a mutex whose waiters are [Task] nodes in a FIFO [Ring].
type TaskMutex[T, L any] = Mutex[T, *Task[L], L, *Ring[*Task[L]]]

// TaskGuard is the guard of a [TaskMutex].
type TaskGuard[T, L any] = Guard[T, *Task[L], L, *Ring[*Task[L]]]

// NewTaskMutex returns a FIFO mutex guarding value for up to capacity
// waiting tasks.
func NewTaskMutex[T, L any](value T, capacity int) *TaskMutex[T, L] {
	return NewMutex[T, *Task[L], L](value, NewRing[*Task[L]](capacity))
}
