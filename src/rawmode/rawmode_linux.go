package rawmode

import "golang.org/x/sys/unix"

const (
	termiosGet      = unix.TCGETS
	termiosSet      = unix.TCSETS
	termiosSetFlush = unix.TCSETSF
)
