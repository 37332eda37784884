//go:build !windows

// Package rawmode switches the terminal line discipline between its cooked
// default and a raw, unechoed mode, and guarantees that the configuration in
// effect before the first switch can always be restored.
package rawmode

import (
	"os"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"

	"rawkey/src/util"
)

// Mode selects how much of the terminal's default behavior is suppressed
// while in raw mode.
type Mode int

const (
	// ImmediateNoEcho turns off echo and canonical (line-buffered) input.
	// Keys are delivered one at a time without being displayed. Signal
	// characters (CTRL-C, CTRL-Z) and output postprocessing keep working.
	ImmediateNoEcho Mode = iota

	// ImmediateNoEchoIgnoreSignals additionally disables CR-to-NL input
	// translation, software flow control (CTRL-S/CTRL-Q), output
	// postprocessing, extended input processing (CTRL-V) and the
	// signal-generating characters.
	ImmediateNoEchoIgnoreSignals
)

// ErrNotTerminal is returned by Open when no terminal device is available.
var ErrNotTerminal = errors.New("not a terminal")

// pollTime is the VTIME read timeout in tenths of a second used when
// entering raw mode without waiting for input.
const pollTime = 1

// Terminal owns the input device and the single saved line-discipline
// snapshot needed to undo every raw-mode transition made through it.
//
// The model is single-threaded: callers that share a Terminal across
// goroutines must serialize Enter/Restore/Read themselves, or interleaved
// transitions would corrupt the snapshot-then-restore invariant.
type Terminal struct {
	in *os.File

	// Attributes captured before the first raw-mode transition.
	// Never overwritten once set.
	saved *unix.Termios
}

// New wraps an already-open terminal device.
func New(in *os.File) *Terminal {
	return &Terminal{in: in}
}

// Open opens the controlling terminal for reading.
func Open() (*Terminal, error) {
	in, err := openTtyIn()
	if err != nil {
		return nil, err
	}
	return &Terminal{in: in}, nil
}

// Fd returns the file descriptor of the input device.
func (t *Terminal) Fd() int {
	return int(t.in.Fd())
}

// Close closes the input device. The saved configuration is kept so that a
// registered restore remains a safe no-op afterwards.
func (t *Terminal) Close() error {
	return t.in.Close()
}

// Enter switches the terminal into raw mode. The first call captures the
// current attributes and registers restoration to run at program exit via
// util.Exit. Every call starts from the live attributes, so settings made
// elsewhere in the process survive a mode transition.
//
// wait selects the read policy committed along with the mode: waiting mode
// blocks until at least one byte is available; non-waiting mode returns
// after at most a tenth of a second even with nothing to read.
func (t *Terminal) Enter(mode Mode, wait bool) error {
	attrs, err := unix.IoctlGetTermios(t.Fd(), termiosGet)
	if err != nil {
		return errors.Wrap(err, "failed to get terminal attributes")
	}
	if t.saved == nil {
		saved := *attrs
		t.saved = &saved
		util.AtExit(func() { t.Restore() })
	}

	raw := *attrs
	switch mode {
	case ImmediateNoEchoIgnoreSignals:
		raw.Iflag &^= unix.ICRNL | unix.IXON
		raw.Oflag &^= unix.OPOST
		raw.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	default:
		raw.Lflag &^= unix.ECHO | unix.ICANON
	}
	if wait {
		raw.Cc[unix.VMIN] = 1
		raw.Cc[unix.VTIME] = 0
	} else {
		raw.Cc[unix.VMIN] = 0
		raw.Cc[unix.VTIME] = pollTime
	}

	// Applied without flushing so that queued escape-sequence bytes stay
	// readable across the re-entry between the first byte and the
	// follow-up poll.
	if err := unix.IoctlSetTermios(t.Fd(), termiosSet, &raw); err != nil {
		return errors.Wrap(err, "failed to set terminal attributes")
	}
	return nil
}

// Restore reapplies the attributes captured before the first Enter,
// flushing pending unread input. Calling it with no captured snapshot is a
// no-op, and calling it repeatedly reapplies the same snapshot, so it is
// safe both from the exit hook and from an earlier manual call.
func (t *Terminal) Restore() error {
	if t.saved == nil {
		return nil
	}
	if err := unix.IoctlSetTermios(t.Fd(), termiosSetFlush, t.saved); err != nil {
		return errors.Wrap(err, "failed to restore terminal attributes")
	}
	return nil
}

// Read enters raw mode with the given mode and wait policy, then performs a
// single read on the device. In non-waiting mode a timeout is reported as
// (0, nil), not as an error.
func (t *Terminal) Read(p []byte, wait bool, mode Mode) (int, error) {
	if err := t.Enter(mode, wait); err != nil {
		return 0, err
	}
	// VMIN/VTIME only govern blocking reads.
	util.SetNonblock(t.in, false)
	n, err := unix.Read(t.Fd(), p)
	if err != nil {
		return 0, errors.Wrap(err, "failed to read from terminal")
	}
	return n, nil
}
