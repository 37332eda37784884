package vkey

import "testing"

func TestLookup(t *testing.T) {
	assertKey := func(sequence string, key Key) {
		t.Helper()
		got, ok := Lookup([]byte(sequence))
		if !ok {
			t.Errorf("sequence %q not recognized, want %s", sequence, key)
			return
		}
		if got != key {
			t.Errorf("sequence %q decoded as %s, want %s", sequence, got, key)
		}
	}

	assertKey("\x1b", KeyEsc)

	assertKey("\x1bOP", KeyF1)
	assertKey("\x1b[OQ", KeyF2)
	assertKey("\x1bOQ", KeyF2)
	assertKey("\x1b[OR", KeyF3)
	assertKey("\x1bOR", KeyF3)
	assertKey("\x1b[OS", KeyF4)
	assertKey("\x1bOS", KeyF4)
	assertKey("\x1b[15~", KeyF5)
	assertKey("\x1b[17~", KeyF6)
	assertKey("\x1b[18~", KeyF7)
	assertKey("\x1b[19~", KeyF8)
	assertKey("\x1b[20~", KeyF9)
	assertKey("\x1b[21~", KeyF10)
	assertKey("\x1b[23~", KeyF11)
	assertKey("\x1b[24~", KeyF12)

	assertKey("\x1b[H", KeyHome)
	assertKey("\x1b[F", KeyEnd)
	assertKey("\x1b[A", KeyUp)
	assertKey("\x1b[B", KeyDown)
	assertKey("\x1b[C", KeyRight)
	assertKey("\x1b[D", KeyLeft)
	assertKey("\x1b[5~", KeyPageUp)
	assertKey("\x1b[6~", KeyPageDown)
	assertKey("\x1b[2~", KeyInsert)
	assertKey("\x1b[3~", KeyDelete)

	assertKey("\x7f", KeyBackspace)
	assertKey("\x0a", KeyEnter)
	assertKey("\x09", KeyTab)
}

func TestLookupMiss(t *testing.T) {
	for _, sequence := range []string{"", "a", "\x1b[", "\x1b[99~", "\x1b[A\x1b[A"} {
		if key, ok := Lookup([]byte(sequence)); ok {
			t.Errorf("sequence %q unexpectedly decoded as %s", sequence, key)
		}
	}
}

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyNone, "None"},
		{KeyF1, "F1"},
		{KeyF12, "F12"},
		{KeyUp, "Up"},
		{KeyPageDown, "PageDown"},
		{KeyEsc, "Esc"},
		{KeyBackspace, "Backspace"},
		{Key(200), "Key(200)"},
	}
	for _, tc := range tests {
		if got := tc.key.String(); got != tc.want {
			t.Errorf("Key.String() = %q, want %q", got, tc.want)
		}
	}
}

func TestEventClassification(t *testing.T) {
	ev := KeyEvent(KeyUp)
	if !ev.IsKey() || ev.Key != KeyUp || len(ev.Raw) != 0 {
		t.Errorf("KeyEvent(KeyUp) = %+v", ev)
	}
	if ev.String() != "Up" {
		t.Errorf("KeyEvent(KeyUp).String() = %q", ev.String())
	}

	ev = CharEvent([]byte("a"))
	if ev.IsKey() || string(ev.Raw) != "a" {
		t.Errorf("CharEvent(a) = %+v", ev)
	}
	if ev.String() != `"a"` {
		t.Errorf("CharEvent(a).String() = %q", ev.String())
	}
}

func TestKeyPredicates(t *testing.T) {
	if !KeyF5.IsFunctionKey() || KeyUp.IsFunctionKey() {
		t.Error("IsFunctionKey misclassifies")
	}
	if !KeyLeft.IsArrowKey() || KeyHome.IsArrowKey() {
		t.Error("IsArrowKey misclassifies")
	}
}
