package vkey

// sequences maps each recognized byte sequence to its virtual key. It is
// initialized once and never mutated. Most terminals send the CSI spellings;
// the SS3 variants (\x1bO...) cover application-keypad mode, tmux and emacs
// shells. Home/End, arrows and the tilde-terminated keys follow xterm.
var sequences = map[string]Key{
	"\x1b": KeyEsc,

	"\x1bOP":   KeyF1,
	"\x1b[OQ":  KeyF2,
	"\x1bOQ":   KeyF2,
	"\x1b[OR":  KeyF3,
	"\x1bOR":   KeyF3,
	"\x1b[OS":  KeyF4,
	"\x1bOS":   KeyF4,
	"\x1b[15~": KeyF5,
	"\x1b[17~": KeyF6,
	"\x1b[18~": KeyF7,
	"\x1b[19~": KeyF8,
	"\x1b[20~": KeyF9,
	"\x1b[21~": KeyF10,
	"\x1b[23~": KeyF11,
	"\x1b[24~": KeyF12,

	"\x1b[H":  KeyHome,
	"\x1b[F":  KeyEnd,
	"\x1b[A":  KeyUp,
	"\x1b[B":  KeyDown,
	"\x1b[C":  KeyRight,
	"\x1b[D":  KeyLeft,
	"\x1b[5~": KeyPageUp,
	"\x1b[6~": KeyPageDown,
	"\x1b[2~": KeyInsert,
	"\x1b[3~": KeyDelete,

	"\x7f": KeyBackspace,
	"\x0a": KeyEnter,
	"\x09": KeyTab,
}

// Lookup classifies a complete byte sequence. The second return value is
// false when the sequence is not a recognized virtual key and should be
// treated as literal character input.
func Lookup(seq []byte) (Key, bool) {
	k, ok := sequences[string(seq)]
	return k, ok
}
