//go:build !windows

package rawmode

import (
	"os"
	"syscall"

	"github.com/pkg/errors"

	"rawkey/src/util"
)

const consoleDevice string = "/dev/tty"

var devPrefixes = [...]string{"/dev/pts/", "/dev/"}

// ttyname scans the usual device directories for the terminal attached to
// stderr, the stream least likely to have been redirected.
func ttyname() string {
	var stderr syscall.Stat_t
	if syscall.Fstat(2, &stderr) != nil {
		return ""
	}

	for _, prefix := range devPrefixes {
		files, err := os.ReadDir(prefix)
		if err != nil {
			continue
		}

		for _, file := range files {
			info, err := file.Info()
			if err != nil {
				continue
			}
			if stat, ok := info.Sys().(*syscall.Stat_t); ok && stat.Rdev == stderr.Rdev {
				return prefix + file.Name()
			}
		}
	}
	return ""
}

// openTtyIn opens the controlling terminal for reading, preferring the
// console device and falling back to stdin when stdin is itself a tty.
func openTtyIn() (*os.File, error) {
	if in, err := os.OpenFile(consoleDevice, syscall.O_RDONLY, 0); err == nil {
		return in, nil
	}
	if tty := ttyname(); len(tty) > 0 {
		if in, err := os.OpenFile(tty, syscall.O_RDONLY, 0); err == nil {
			return in, nil
		}
	}
	if util.IsTty(os.Stdin) {
		return os.Stdin, nil
	}
	return nil, errors.Wrap(ErrNotTerminal, "failed to open "+consoleDevice)
}
