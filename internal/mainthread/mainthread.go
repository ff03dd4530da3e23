// Package mainthread guards state that must only be touched from the OS
// thread that created it.
package mainthread

import (
	"errors"
	"fmt"
	"runtime"
)

// ErrWrongThread is returned by Check when called from another thread.
var ErrWrongThread = errors.New("mainthread: called off the owning thread")

// Guard remembers the thread that captured it.
type Guard struct {
	tid     int
	checked bool
}

// Capture locks the calling goroutine to its OS thread and returns a guard
// for that thread. Platforms without a thread id get a guard that never
// fails.
func Capture() Guard {
	runtime.LockOSThread()
	tid, ok := currentThread()
	return Guard{tid: tid, checked: ok}
}

// Check returns ErrWrongThread when the caller is not on the captured
// thread.
func (g Guard) Check() error {
	if !g.checked {
		return nil
	}
	if tid, _ := currentThread(); tid != g.tid {
		return fmt.Errorf("%w: owner %d, caller %d", ErrWrongThread, g.tid, tid)
	}
	return nil
}
