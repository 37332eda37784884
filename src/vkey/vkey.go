// Package vkey defines the virtual keys a terminal can report through
// escape sequences, and the decoded event type produced for each keystroke.
package vkey

import "fmt"

// Key identifies a non-character key decoded from a raw byte sequence.
type Key uint8

const (
	// KeyNone marks an event carrying literal character input.
	KeyNone Key = iota

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	KeyHome
	KeyEnd
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyPageUp
	KeyPageDown
	KeyInsert
	KeyDelete

	KeyEsc
	KeyBackspace
	KeyEnter
	KeyTab
)

var keyNames = map[Key]string{
	KeyF1:        "F1",
	KeyF2:        "F2",
	KeyF3:        "F3",
	KeyF4:        "F4",
	KeyF5:        "F5",
	KeyF6:        "F6",
	KeyF7:        "F7",
	KeyF8:        "F8",
	KeyF9:        "F9",
	KeyF10:       "F10",
	KeyF11:       "F11",
	KeyF12:       "F12",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
	KeyInsert:    "Insert",
	KeyDelete:    "Delete",
	KeyEsc:       "Esc",
	KeyBackspace: "Backspace",
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
}

// String returns a human-readable name for the key.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	if k == KeyNone {
		return "None"
	}
	return fmt.Sprintf("Key(%d)", uint8(k))
}

// IsFunctionKey returns true if this is a function key (F1-F12).
func (k Key) IsFunctionKey() bool {
	return k >= KeyF1 && k <= KeyF12
}

// IsArrowKey returns true if this is an arrow key.
func (k Key) IsArrowKey() bool {
	return k >= KeyUp && k <= KeyRight
}

// Event is the outcome of one decode cycle. Exactly one side is meaningful:
// when Key is not KeyNone the event is a virtual key and Raw is empty;
// otherwise Raw carries the literal byte sequence as it was read.
type Event struct {
	Key Key
	Raw []byte
}

// KeyEvent returns an event classified as the given virtual key.
func KeyEvent(k Key) Event {
	return Event{Key: k}
}

// CharEvent returns an event carrying unclassified literal input.
func CharEvent(raw []byte) Event {
	return Event{Raw: raw}
}

// IsKey returns true if the event is a virtual key rather than literal input.
func (e Event) IsKey() bool {
	return e.Key != KeyNone
}

func (e Event) String() string {
	if e.IsKey() {
		return e.Key.String()
	}
	return fmt.Sprintf("%q", e.Raw)
}
