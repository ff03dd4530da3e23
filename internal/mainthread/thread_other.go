//go:build !linux

package mainthread

func currentThread() (int, bool) {
	return 0, false
}
