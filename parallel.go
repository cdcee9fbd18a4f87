// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fiber

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// RunParallel runs each scheduler to completion on its own OS thread and
// waits for all of them.
//
// Schedulers share nothing except the mutexes their threads lock. A panic
// escaping one scheduler's loop stops that scheduler only; RunParallel
// returns the first such failure once every scheduler has stopped.
func RunParallel[N Node[N, L], L any, Q Queue[N]](scheds ...*Scheduler[N, L, Q]) error {
	var g errgroup.Group
	for i, s := range scheds {
		g.Go(func() (err error) {
			runtime.LockOSThread()
			defer runtime.UnlockOSThread()
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("fiber: scheduler %d: %v", i, r)
				}
			}()
			s.Run()
			return nil
		})
	}
	return g.Wait()
}
