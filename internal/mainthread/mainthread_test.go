package mainthread

import (
	"errors"
	"runtime"
	"testing"
)

func TestGuardSameThread(t *testing.T) {
	g := Capture()
	if err := g.Check(); err != nil {
		t.Fatalf("Check on the capturing goroutine: %v", err)
	}
}

func TestGuardOtherThread(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("thread ids are only checked on linux")
	}
	g := Capture()

	errc := make(chan error, 1)
	go func() {
		// The capturing goroutine holds its thread, so this one runs elsewhere.
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		errc <- g.Check()
	}()
	if err := <-errc; !errors.Is(err, ErrWrongThread) {
		t.Fatalf("Check from another thread = %v, want ErrWrongThread", err)
	}
}
