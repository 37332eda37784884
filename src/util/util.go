package util

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsTty returns true if the file refers to a terminal
func IsTty(file *os.File) bool {
	return isatty.IsTerminal(file.Fd())
}
