//go:build linux

package mainthread

import "golang.org/x/sys/unix"

func currentThread() (int, bool) {
	return unix.Gettid(), true
}
