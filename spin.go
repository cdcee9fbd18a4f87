// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fiber

import (
	"runtime"
	"sync/atomic"
)

// spinTries is the number of failed acquire attempts between yields of the
// OS thread.
const spinTries = 64

// spinLock is a busy-wait lock for critical sections of a few loads and
// stores. It has no fairness. The zero value is unlocked.
type spinLock struct {
	locked atomic.Bool
}

func (l *spinLock) Lock() {
	for i := 1; !l.TryLock(); i++ {
		if i%spinTries == 0 {
			runtime.Gosched()
		}
	}
}

func (l *spinLock) TryLock() bool {
	return !l.locked.Load() && l.locked.CompareAndSwap(false, true)
}

func (l *spinLock) Unlock() {
	l.locked.Store(false)
}
