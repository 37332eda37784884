//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package rawmode

import "golang.org/x/sys/unix"

const (
	termiosGet      = unix.TIOCGETA
	termiosSet      = unix.TIOCSETA
	termiosSetFlush = unix.TIOCSETAF
)
