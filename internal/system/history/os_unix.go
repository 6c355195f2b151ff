// Released under an MIT license. See LICENSE.

//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris
// +build aix darwin dragonfly freebsd linux netbsd openbsd solaris

package history

import (
	"os"

	"golang.org/x/sys/unix"
)

func create(path string) (*os.File, error) {
	omask := unix.Umask(0o077)
	defer unix.Umask(omask)

	return os.Create(path)
}
