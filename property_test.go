// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fiber_test

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"

	"code.hybscloud.com/fiber"
	"github.com/google/go-cmp/cmp"
)

const propertyN = 200

// TestPropertyRingMatchesSlice: any Push/Pop sequence within capacity
// behaves like a slice used as a FIFO.
func TestPropertyRingMatchesSlice(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		capacity := rng.IntN(8) + 1
		r := fiber.NewRing[int](capacity)
		var model []int
		for op := range 64 {
			if rng.IntN(2) == 0 && len(model) < capacity {
				r.Push(op)
				model = append(model, op)
				continue
			}
			got, ok := r.Pop()
			if len(model) == 0 {
				if ok {
					t.Fatalf("Pop on empty returned %d", got)
				}
				continue
			}
			if !ok || got != model[0] {
				t.Fatalf("Pop = (%d, %v), want (%d, true)", got, ok, model[0])
			}
			model = model[1:]
		}
		if r.Len() != len(model) {
			t.Fatalf("len=%d, want %d", r.Len(), len(model))
		}
	}
}

// TestPropertyDrainOrder: with FIFO scheduling, a thread that yields k times
// finishes in round k, and threads finishing in the same round keep their
// push order. Every thread is drained exactly once.
func TestPropertyDrainOrder(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 0))
	for range propertyN / 10 {
		n := rng.IntN(8) + 1
		sched := fiber.NewTaskScheduler[unit](n)
		yields := make([]int, n)
		order := make([]int, n)
		for i := range n {
			yields[i] = rng.IntN(5)
			order[i] = i
			k := yields[i]
			sched.Schedule(spawn(fmt.Sprint(i), func(th *thread) {
				for range k {
					th.Yield()
				}
			}))
		}
		slices.SortStableFunc(order, func(a, b int) int { return yields[a] - yields[b] })

		want := make([]string, n)
		for i, idx := range order {
			want[i] = fmt.Sprint(idx)
		}
		var got []string
		for node := range sched.Drain() {
			got = append(got, node.Thread().Name())
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("drain order mismatch for yields %v (-want +got):\n%s", yields, diff)
		}
	}
}

// TestPropertyMutexCounter: random lock/yield interleavings never lose an
// increment and never admit two holders.
func TestPropertyMutexCounter(t *testing.T) {
	rng := rand.New(rand.NewPCG(99, 0))
	for range propertyN / 10 {
		n := rng.IntN(6) + 2
		sched := fiber.NewTaskScheduler[unit](n)
		mu := fiber.NewTaskMutex[int, unit](0, n)
		inside, want := 0, 0
		for i := range n {
			iters := rng.IntN(5) + 1
			holdYields := rng.IntN(3)
			want += iters
			sched.Schedule(spawn(fmt.Sprint(i), func(th *thread) {
				for range iters {
					g := mu.Lock(th)
					inside++
					if inside != 1 {
						t.Errorf("%d threads inside critical section", inside)
					}
					for range holdYields {
						th.Yield()
					}
					*g.Value()++
					inside--
					g.Unlock()
				}
			}))
		}
		sched.Run()
		if got := lockedValue(t, mu); got != want {
			t.Fatalf("counter = %d, want %d", got, want)
		}
	}
}
