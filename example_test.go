// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fiber_test

import (
	"fmt"

	"code.hybscloud.com/fiber"
)

func Example() {
	sched := fiber.NewTaskScheduler[struct{}](3)
	mu := fiber.NewTaskMutex[[]string, struct{}](nil, 3)

	for _, name := range []string{"a", "b", "c"} {
		sched.Schedule(fiber.SpawnTask(func(t *fiber.TaskThread[struct{}]) {
			g := mu.Lock(t)
			defer g.Unlock()
			t.Yield() // others queue up on the mutex
			*g.Value() = append(*g.Value(), t.Name())
		}, fiber.NewStack(0), name))
	}
	for n := range sched.Drain() {
		fmt.Println("finished", n.Thread().Name())
	}

	// Output:
	// finished a
	// finished b
	// finished c
}
