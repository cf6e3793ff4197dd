//go:build !linux && !windows

package threadid

func current() ID {
	return 0
}
