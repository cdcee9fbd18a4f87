// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fiber

import (
	"context"
	"iter"
	"log/slog"
)

// Scheduler drives the threads in one ready queue.
//
// The front of the queue is the thread in control. Every other queued thread
// is suspended. A Scheduler is not safe for concurrent use: it must be run
// from one goroutine, and Schedule must not be called while it runs.
type Scheduler[N Node[N, L], L any, Q Queue[N]] struct {
	queue  Q
	logger *slog.Logger
}

// NewScheduler returns a scheduler that owns queue.
func NewScheduler[N Node[N, L], L any, Q Queue[N]](queue Q, opts ...Option) *Scheduler[N, L, Q] {
	o := buildOptions(opts)
	return &Scheduler[N, L, Q]{queue: queue, logger: o.logger}
}

// Schedule pushes n onto the ready queue from outside the run loop.
func (s *Scheduler[N, L, Q]) Schedule(n N) {
	s.queue.Push(n)
}

// Current returns the front node, the one running while the loop is active.
func (s *Scheduler[N, L, Q]) Current() (N, bool) {
	return s.queue.Front()
}

// Run drives threads until the ready queue is empty.
// Finished nodes are dropped.
func (s *Scheduler[N, L, Q]) Run() {
	for range s.Drain() {
	}
}

// Drain returns the run loop as a sequence of finished nodes.
//
// Each iteration resumes the front thread and applies the request it
// suspends with:
//
//	Yield               pop the front, push it to the back
//	Schedule(n)         push n
//	StageUnschedule     leave the queue as is, answer with the front node
//	CompleteUnschedule  pop the front and drop it
//
// A thread whose body returns is popped and yielded to the caller, who then
// owns it. Every finished node is yielded exactly once. The loop ends when
// the queue is empty. Stopping the range early leaves the remaining threads
// queued; a later Drain or Run continues with them.
//
// A panic in a thread body propagates out of the loop. The panicking thread
// stays at the front, finished, and is yielded by the next Drain.
func (s *Scheduler[N, L, Q]) Drain() iter.Seq[N] {
	return func(yield func(N) bool) {
		resp := nothing[N]()
		for {
			front, ok := s.queue.Front()
			if !ok {
				return
			}
			req, suspended := front.Thread().resume(resp)
			if !suspended {
				n, _ := s.queue.Pop()
				s.logFinished(n)
				if !yield(n) {
					return
				}
				resp = nothing[N]()
				continue
			}
			resp = s.apply(req)
		}
	}
}

// apply performs req on the queue and returns the response for the next
// resume.
func (s *Scheduler[N, L, Q]) apply(req Request[N]) Response[N] {
	switch req.Kind {
	case RequestYield:
		n, _ := s.queue.Pop()
		s.queue.Push(n)
	case RequestSchedule:
		s.queue.Push(req.Node)
	case RequestStageUnschedule:
		// The running thread receives its own node while its slot stays
		// queued, so the thread keeps its stack until it suspends again.
		n, _ := s.queue.Front()
		return unscheduled(n)
	case RequestCompleteUnschedule:
		// Ownership left with the staged node; only the slot goes.
		s.queue.Pop()
	}
	return nothing[N]()
}

func (s *Scheduler[N, L, Q]) logFinished(n N) {
	if s.logger == nil {
		return
	}
	ctx := context.Background()
	if !s.logger.Enabled(ctx, slog.LevelDebug) {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelDebug, "thread finished",
		slog.String("thread", n.Thread().Name()))
}

// TaskScheduler is a scheduler over [Task] nodes in a FIFO [Ring].
type TaskScheduler[L any] = Scheduler[*Task[L], L, *Ring[*Task[L]]]

// NewTaskScheduler returns a FIFO scheduler for up to capacity tasks.
func NewTaskScheduler[L any](capacity int, opts ...Option) *TaskScheduler[L] {
	return NewScheduler[*Task[L], L](NewRing[*Task[L]](capacity), opts...)
}
