// Package keyboard turns raw terminal bytes into classified key events.
//
// A bare Escape keypress and the first byte of an escape sequence are the
// same byte, so after reading 0x1b the decoder polls once with a short
// bounded wait: if nothing arrives within a tenth of a second the byte was
// the Escape key itself, otherwise the rest of the sequence is collected
// and matched against the virtual key table.
package keyboard

import (
	"io"

	"github.com/pkg/errors"

	"rawkey/src/rawmode"
	"rawkey/src/vkey"
)

const escByte = 0x1b

// followUpCapacity bounds the third read of a decode cycle: up to 10 bytes
// after the escape byte and the first follow-up byte, 12 in total. A longer
// sequence is truncated and falls back to literal classification.
const followUpCapacity = 10

// Source supplies raw bytes. Read enters raw mode with the given wait
// policy before reading: waiting mode blocks for at least one byte,
// non-waiting mode returns (0, nil) after a tenth of a second at most.
// *rawmode.Terminal satisfies Source.
type Source interface {
	Read(p []byte, wait bool, mode rawmode.Mode) (int, error)
}

// Decoder reads one keystroke at a time from a Source and classifies it.
type Decoder struct {
	src    Source
	mode   rawmode.Mode
	lookup func([]byte) (vkey.Key, bool)
}

// NewDecoder returns a decoder that acquires bytes in ImmediateNoEcho mode.
func NewDecoder(src Source) *Decoder {
	return NewDecoderMode(src, rawmode.ImmediateNoEcho)
}

// NewDecoderMode returns a decoder using the given raw mode for every read.
func NewDecoderMode(src Source, mode rawmode.Mode) *Decoder {
	return &Decoder{src: src, mode: mode, lookup: vkey.Lookup}
}

// Next blocks until a keystroke is available and returns it as a classified
// event. It returns io.EOF when the source is exhausted.
func (d *Decoder) Next() (vkey.Event, error) {
	var one [1]byte
	n, err := d.src.Read(one[:], true, d.mode)
	if err != nil {
		return vkey.Event{}, errors.Wrap(err, "failed to read input")
	}
	if n == 0 {
		return vkey.Event{}, io.EOF
	}

	seq := append(make([]byte, 0, 2+followUpCapacity), one[0])
	if one[0] == escByte {
		n, err = d.src.Read(one[:], false, d.mode)
		if err != nil {
			return vkey.Event{}, errors.Wrap(err, "failed to read escape sequence")
		}
		if n == 1 {
			// More bytes followed immediately: this is a sequence,
			// not the Escape key. Collect the remainder in one
			// bounded read.
			seq = append(seq, one[0])
			var rest [followUpCapacity]byte
			n, err = d.src.Read(rest[:], false, d.mode)
			if err != nil {
				return vkey.Event{}, errors.Wrap(err, "failed to read escape sequence")
			}
			seq = append(seq, rest[:n]...)
		}
	}

	if key, ok := d.lookup(seq); ok {
		return vkey.KeyEvent(key), nil
	}
	return vkey.CharEvent(seq), nil
}
