// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fiber

// DefaultStackSize is the stack size used when [NewStack] is given a
// non-positive size.
const DefaultStackSize = 64 << 10

// Stack is the memory a thread runs on.
//
// Goroutine stacks are owned and grown by the Go runtime, so a Stack only
// carries the requested size. The switch primitive runs each started thread on
// its own goroutine; that goroutine is the thread's stack.
type Stack interface {
	Size() int
}

// GoStack is a [Stack] backed by a goroutine stack.
type GoStack struct {
	size int
}

// NewStack returns a stack for the requested size.
func NewStack(size int) GoStack {
	if size <= 0 {
		size = DefaultStackSize
	}
	return GoStack{size: size}
}

// Size returns the requested stack size in bytes.
func (s GoStack) Size() int { return s.size }

// transfer is what a coroutine hands back to its resumer: a request when
// the body suspended, or completion (and possibly a panic) when it returned.
type transfer[Req any] struct {
	req       Req
	suspended bool
	panicked  bool
	recovered any
}

// coroutine is the switch primitive. Control moves between the resumer and
// the body goroutine through two unbuffered channels, so exactly one side
// runs at a time and every switch carries one typed value per direction.
type coroutine[Req, Resp any] struct {
	in    chan Resp
	out   chan transfer[Req]
	body  func()
	stack Stack
	done  bool
}

// newCoroutine binds f to stack. No goroutine exists until the first resume,
// so a coroutine that is never resumed is reclaimed by the GC. The value
// passed to the first resume is dropped.
func newCoroutine[Req, Resp any](f func(), stack Stack) *coroutine[Req, Resp] {
	return &coroutine[Req, Resp]{
		in:    make(chan Resp),
		out:   make(chan transfer[Req]),
		body:  f,
		stack: stack,
	}
}

func (c *coroutine[Req, Resp]) main(f func()) {
	<-c.in
	var t transfer[Req]
	defer func() {
		if r := recover(); r != nil {
			t.panicked = true
			t.recovered = r
		}
		c.out <- t
	}()
	f()
}

// resume switches into the body with v. It returns (request, true) when the
// body suspended again, or (zero, false) once the body has returned.
// Resuming a finished coroutine does not switch. A panic in the body is
// re-raised here after the coroutine is marked finished.
func (c *coroutine[Req, Resp]) resume(v Resp) (Req, bool) {
	if c.done {
		var zero Req
		return zero, false
	}
	if f := c.body; f != nil {
		c.body = nil
		go c.main(f)
	}
	c.in <- v
	t := <-c.out
	if !t.suspended {
		c.done = true
		if t.panicked {
			panic(t.recovered)
		}
	}
	return t.req, t.suspended
}

// suspend is called from inside the body. It hands r to the resumer and
// blocks until the next resume.
func (c *coroutine[Req, Resp]) suspend(r Req) Resp {
	c.out <- transfer[Req]{req: r, suspended: true}
	return <-c.in
}
