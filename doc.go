// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package fiber provides a cooperative scheduler for stackful threads and a
// queue-based mutex built on the scheduler's suspend/resume protocol.
//
// # Design Philosophy
//
// fiber provides:
//   - One suspension point: a thread hands a typed [Request] to whatever
//     drives it and receives a typed [Response] when resumed
//   - Pluggable ready and wait queues through the [Queue] interface,
//     bound at compile time as type parameters
//   - Allocation-free queue operations on the scheduling hot path
//   - Synchronization that never blocks while holding its internal lock
//
// Scheduling policy lives entirely in the [Scheduler]. A [Thread] holds no
// reference to its scheduler, and a [Mutex] only moves nodes around and
// issues requests through the calling thread.
//
// # Threads and Nodes
//
//   - [Thread]: A named unit of execution with its own stack and local data
//   - [NewThread]: Build a pending thread from a body, a [Stack] and a name
//   - [Node]: The queue-storable wrapper that owns one thread
//   - [Task]: The default node; [NewTask] and [SpawnTask] construct it
//   - [Stack], [NewStack]: Stack contract; goroutine-backed in this package
//
// A thread body receives its own *Thread. Within the body:
//
//   - [Thread.Yield]: Move to the back of the ready queue
//   - [Thread.Schedule]: Make another node ready
//   - [Thread.Unschedule]: Leave the ready queue in two phases
//
// # Queues
//
//   - [Queue]: Push, Pop and Front over the front element
//   - [Ring]: Bounded FIFO; fair
//   - [LIFO]: Bounded stack; unfair, documented as such
//
// # Scheduler
//
// [Scheduler] resumes the front of its queue and applies each request:
//
//	Request              Queue                    Response
//	Yield                pop front, push back     Nothing
//	Schedule(n)          push n                   Nothing
//	StageUnschedule      unchanged                Unscheduled(front)
//	CompleteUnschedule   pop front, drop slot     Nothing
//	(body returned)      pop front                node goes to the caller
//
//   - [Scheduler.Run]: Drive until the ready queue is empty
//   - [Scheduler.Drain]: The same loop as a sequence of finished nodes
//   - [RunParallel]: Run several schedulers, one per OS thread
//
// # Two-Phase Unschedule
//
// A scheduler never removes the running thread from its queue in one step,
// since that thread is still executing on its own stack. Instead the thread
// first stages its removal and receives its own node back, files that node
// elsewhere (a mutex wait queue) while still running, and only then suspends
// with the request that drops the ready queue's stale slot. Once staged, the
// node has exactly one owner: the destination it was filed in.
//
// # Mutex
//
//   - [Mutex]: Guard a value; [NewMutex] takes the wait queue
//   - [Mutex.TryLock]: Acquire without suspending
//   - [Mutex.Lock]: Acquire, waiting in the mutex queue while held
//   - [Guard]: Scoped access; [Guard.Value] and [Guard.Unlock]
//
// Mutex fairness is exactly the wait queue's pop order.
//
// # Example
//
//	sched := fiber.NewTaskScheduler[struct{}](8)
//	mu := fiber.NewTaskMutex[int, struct{}](0, 8)
//	for _, name := range []string{"a", "b"} {
//		sched.Schedule(fiber.SpawnTask(func(t *fiber.TaskThread[struct{}]) {
//			g := mu.Lock(t)
//			defer g.Unlock()
//			*g.Value()++
//			t.Yield()
//		}, fiber.NewStack(0), name))
//	}
//	sched.Run()
package fiber
