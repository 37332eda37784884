//go:build !windows

package rawmode

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// TermSize is the size of the console text window.
type TermSize struct {
	Lines    int
	Columns  int
	PxWidth  int
	PxHeight int
}

// Size queries the window size of the terminal.
func (t *Terminal) Size() (TermSize, error) {
	ws, err := unix.IoctlGetWinsize(t.Fd(), unix.TIOCGWINSZ)
	if err != nil {
		return TermSize{}, errors.Wrap(err, "failed to query window size")
	}
	return TermSize{int(ws.Row), int(ws.Col), int(ws.Xpixel), int(ws.Ypixel)}, nil
}
