// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fiber

// Queue is an ordered container of nodes.
//
// Pop and Front operate on the same element, the front; for a ready queue
// that is the running thread. On an empty queue both return (zero, false).
// Implementations must not allocate in any method: Push and Pop run inside
// the suspend path of the running thread.
//
// The order Pop imposes is the only fairness guarantee a [Scheduler] or a
// [Mutex] provides. Document it for every implementation.
type Queue[N any] interface {
	Push(n N)
	Pop() (N, bool)
	Front() (N, bool)
}

// Ring is a bounded FIFO queue backed by a circular buffer.
// Nodes are popped in the order they were pushed.
type Ring[N any] struct {
	buf  []N
	head int
	n    int
}

// NewRing returns an empty ring that holds up to capacity nodes.
func NewRing[N any](capacity int) *Ring[N] {
	if capacity < 1 {
		capacity = 1
	}
	return &Ring[N]{buf: make([]N, capacity)}
}

// Push appends n at the back. Panics if the ring is full.
func (r *Ring[N]) Push(n N) {
	if !r.TryPush(n) {
		panic("fiber: ring queue full")
	}
}

// TryPush appends n at the back, or reports false if the ring is full.
func (r *Ring[N]) TryPush(n N) bool {
	if r.n == len(r.buf) {
		return false
	}
	i := r.head + r.n
	if i >= len(r.buf) {
		i -= len(r.buf)
	}
	r.buf[i] = n
	r.n++
	return true
}

// Pop removes and returns the front node.
func (r *Ring[N]) Pop() (N, bool) {
	var zero N
	if r.n == 0 {
		return zero, false
	}
	n := r.buf[r.head]
	r.buf[r.head] = zero
	r.head++
	if r.head == len(r.buf) {
		r.head = 0
	}
	r.n--
	return n, true
}

// Front returns the front node without removing it.
func (r *Ring[N]) Front() (N, bool) {
	if r.n == 0 {
		var zero N
		return zero, false
	}
	return r.buf[r.head], true
}

// Len returns the number of queued nodes.
func (r *Ring[N]) Len() int { return r.n }

// Cap returns the ring's capacity.
func (r *Ring[N]) Cap() int { return len(r.buf) }

// LIFO is a bounded stack of nodes. Front is the most recently pushed node.
//
// LIFO is unfair. As a ready queue, a yielding thread is resumed again at
// once. As a [Mutex] wait queue, the most recent waiter is woken first.
type LIFO[N any] struct {
	buf []N
}

// NewLIFO returns an empty stack that holds up to capacity nodes.
func NewLIFO[N any](capacity int) *LIFO[N] {
	return &LIFO[N]{buf: make([]N, 0, max(capacity, 1))}
}

// Push places n on top. Panics if the stack is full.
func (s *LIFO[N]) Push(n N) {
	if len(s.buf) == cap(s.buf) {
		panic("fiber: lifo queue full")
	}
	s.buf = append(s.buf, n)
}

// Pop removes and returns the top node.
func (s *LIFO[N]) Pop() (N, bool) {
	var zero N
	if len(s.buf) == 0 {
		return zero, false
	}
	i := len(s.buf) - 1
	n := s.buf[i]
	s.buf[i] = zero
	s.buf = s.buf[:i]
	return n, true
}

// Front returns the top node without removing it.
func (s *LIFO[N]) Front() (N, bool) {
	if len(s.buf) == 0 {
		var zero N
		return zero, false
	}
	return s.buf[len(s.buf)-1], true
}

// Len returns the number of queued nodes.
func (s *LIFO[N]) Len() int { return len(s.buf) }
