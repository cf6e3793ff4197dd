package threadid

import "golang.org/x/sys/unix"

func current() ID {
	return ID(unix.Gettid())
}
