package rawkey

const (
	// Exit codes
	ExitOk        = 0
	ExitError     = 2
	ExitInterrupt = 130

	// Fallback console dimensions when the size query fails and the
	// environment provides nothing
	defaultWidth  = 80
	defaultHeight = 24
)
