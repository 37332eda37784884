// Package rawkey wires the terminal mode controller and the key decoder
// into an interactive demonstration loop.
package rawkey

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"golang.org/x/term"

	"rawkey/src/keyboard"
	"rawkey/src/rawmode"
	"rawkey/src/util"
)

func atoi(s string, defaultValue int) int {
	value, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnv(name string, defaultValue int) int {
	env := os.Getenv(name)
	if len(env) == 0 {
		return defaultValue
	}
	return atoi(env, defaultValue)
}

// consoleSize returns the console dimensions, falling back to the COLUMNS
// and LINES environment variables when the terminal refuses the query.
func consoleSize(t *rawmode.Terminal) (width int, height int) {
	width, height, err := term.GetSize(t.Fd())
	if err != nil {
		width = getEnv("COLUMNS", defaultWidth)
		height = getEnv("LINES", defaultHeight)
	}
	return width, height
}

// ruler builds a line of repeating digits spanning width-1 columns,
// terminated by an asterisk.
func ruler(width int) string {
	line := make([]byte, 0, width)
	for i := 0; i < width-1; i++ {
		line = append(line, byte('0'+i%10))
	}
	return string(append(line, '*'))
}

// Run prints the console dimensions and a column ruler, then echoes every
// decoded keystroke until the literal character q is typed. The terminal is
// restored before returning; abnormal exits are covered by the restore hook
// registered on the first raw-mode entry.
func Run() (int, error) {
	t, err := rawmode.Open()
	if err != nil {
		return ExitError, err
	}
	defer t.Restore()

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-intChan
		util.Exit(ExitInterrupt)
	}()

	width, height := consoleSize(t)
	fmt.Printf("text(%d %d)\n", height, width)
	fmt.Println(ruler(width))

	decoder := keyboard.NewDecoder(t)
	for {
		event, err := decoder.Next()
		if err != nil {
			return ExitError, err
		}
		if !event.IsKey() && len(event.Raw) == 1 && event.Raw[0] == 'q' {
			break
		}
		if event.IsKey() {
			fmt.Printf("vk        input - %s\n", event.Key)
		} else {
			fmt.Printf("character input - %q\n", event.Raw)
		}
	}

	if err := t.Restore(); err != nil {
		return ExitError, err
	}
	return ExitOk, nil
}
