// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fiber

// Thread is a cooperatively scheduled unit of execution.
//
// N is the node type that wraps the thread in a queue; L is per-thread local
// data, zero-initialized. A thread is pending until first resumed, runs only
// while it is the front of a scheduler's ready queue, and is finished once its
// body returns. A finished thread is never resumed again.
//
// Thread holds no reference to the scheduler driving it. It can only suspend
// with a [Request] and wait for a [Response].
type Thread[N, L any] struct {
	co    *coroutine[Request[N], Response[N]]
	name  string
	local L
}

// NewThread builds a pending thread that runs f on stack when first resumed.
// f receives the thread itself, which is the handle used to yield and to
// lock a [Mutex].
func NewThread[N, L any](f func(*Thread[N, L]), stack Stack, name string) *Thread[N, L] {
	t := &Thread[N, L]{name: name}
	t.co = newCoroutine[Request[N], Response[N]](func() { f(t) }, stack)
	return t
}

// Name returns the thread's label.
func (t *Thread[N, L]) Name() string { return t.name }

// Local returns the thread's local data.
// The owning scheduler instantiation may write through it; other code
// should only read.
func (t *Thread[N, L]) Local() *L { return &t.local }

// Stack returns the stack the thread runs on.
func (t *Thread[N, L]) Stack() Stack { return t.co.stack }

// Finished reports whether the thread's body has returned.
// Only the thread's current driver may call it.
func (t *Thread[N, L]) Finished() bool { return t.co.done }

// suspend hands req to the thread's driver and blocks until resumed.
// It is the only suspension point. Must be called from t's own body.
func (t *Thread[N, L]) suspend(req Request[N]) Response[N] {
	return t.co.suspend(req)
}

// resume runs t until it suspends or returns.
func (t *Thread[N, L]) resume(resp Response[N]) (Request[N], bool) {
	return t.co.resume(resp)
}

// Yield moves t to the back of its ready queue.
func (t *Thread[N, L]) Yield() {
	t.suspend(yieldRequest[N]())
}

// Schedule makes node ready on t's scheduler. Ownership of node passes to
// that scheduler's queue.
func (t *Thread[N, L]) Schedule(node N) {
	t.suspend(scheduleRequest(node))
}

// Unschedule removes t from its ready queue in two phases.
//
// First the scheduler hands back t's own node while t is still at the front
// of the queue and still on its stack. file takes ownership of that node,
// typically by pushing it onto a wait queue from which it is later passed to
// [Thread.Schedule]. Then the scheduler drops its now stale slot and switches
// to the next ready thread. Unschedule returns once t is scheduled and
// resumed again.
//
// The staged node must not be resumed from inside file.
func (t *Thread[N, L]) Unschedule(file func(N)) {
	resp := t.suspend(Request[N]{Kind: RequestStageUnschedule})
	file(resp.Node)
	t.suspend(Request[N]{Kind: RequestCompleteUnschedule})
}

// Node is the queue-storable wrapper that owns one thread.
// Constraints use it F-bounded, as N Node[N, L].
type Node[N, L any] interface {
	Thread() *Thread[N, L]
}

// Task is the default [Node]: a pointer wrapper around one thread.
type Task[L any] struct {
	thread *Thread[*Task[L], L]
}

// TaskThread is the thread type wrapped by [Task].
type TaskThread[L any] = Thread[*Task[L], L]

// NewTask wraps t in a node.
func NewTask[L any](t *Thread[*Task[L], L]) *Task[L] {
	return &Task[L]{thread: t}
}

// SpawnTask builds a thread and wraps it in a node.
func SpawnTask[L any](f func(*TaskThread[L]), stack Stack, name string) *Task[L] {
	return NewTask(NewThread(f, stack, name))
}

// Thread returns the wrapped thread.
func (n *Task[L]) Thread() *Thread[*Task[L], L] { return n.thread }
