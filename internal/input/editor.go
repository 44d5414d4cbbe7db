package input

import (
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultAutoSubmitLength is the digit count at which a scan is submitted
// without Enter.
const DefaultAutoSubmitLength = 6

// Key codes handled by the Editor.
const (
	keyInterrupt = 0x03 // Ctrl+C
	keyEOF       = 0x04 // Ctrl+D
	keyBackspace = 0x08 // Ctrl+H
	keyEscape    = 0x1b
	keyDelete    = 0x7f
)

// Result is the outcome of feeding one rune to the Editor.
type Result int

const (
	// Continue means the line is still being edited.
	Continue Result = iota
	// Submit means the line is complete; call Line to get it.
	Submit
	// Interrupt means the user pressed Ctrl+C.
	Interrupt
	// EndOfInput means the user pressed Ctrl+D.
	EndOfInput
)

// String returns the result name
func (r Result) String() string {
	switch r {
	case Continue:
		return "continue"
	case Submit:
		return "submit"
	case Interrupt:
		return "interrupt"
	case EndOfInput:
		return "end-of-input"
	default:
		return "unknown"
	}
}

type escapeState int

const (
	escNone escapeState = iota
	escStart
	escCSI
	escSS3
)

// Editor is the line-editing state machine used in raw mode. Echo output
// goes to the writer given to NewEditor; the terminal itself echoes nothing
// while raw.
type Editor struct {
	threshold int
	echo      io.Writer
	buf       []rune
	esc       escapeState
}

// NewEditor returns an Editor that auto-submits all-digit input of exactly
// threshold runes. A threshold of zero or less disables auto-submit.
func NewEditor(threshold int, echo io.Writer) *Editor {
	if echo == nil {
		echo = io.Discard
	}
	return &Editor{threshold: threshold, echo: echo}
}

// Feed processes one input rune.
func (e *Editor) Feed(r rune) Result {
	switch r {
	case keyInterrupt:
		e.write("\r\n")
		return Interrupt
	case keyEOF:
		e.write("\r\n")
		return EndOfInput
	}

	if e.esc != escNone {
		e.consumeEscape(r)
		return Continue
	}

	switch r {
	case '\r', '\n':
		e.write("\r\n")
		return Submit
	case keyBackspace, keyDelete:
		if len(e.buf) > 0 {
			e.buf = e.buf[:len(e.buf)-1]
			e.write("\b \b")
		}
		return Continue
	case keyEscape:
		e.esc = escStart
		return Continue
	}

	if r == utf8.RuneError || !unicode.IsPrint(r) {
		return Continue
	}

	e.buf = append(e.buf, r)
	e.write(string(r))

	if e.shouldAutoSubmit() {
		e.write("\r\n")
		return Submit
	}
	return Continue
}

// Line returns the buffer trimmed of surrounding whitespace.
func (e *Editor) Line() string {
	return strings.TrimSpace(string(e.buf))
}

// Reset clears the buffer for the next line.
func (e *Editor) Reset() {
	e.buf = e.buf[:0]
	e.esc = escNone
}

func (e *Editor) shouldAutoSubmit() bool {
	if e.threshold <= 0 || len(e.buf) != e.threshold {
		return false
	}
	for _, r := range e.buf {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// consumeEscape swallows ESC sequences (arrow and function keys) so they
// never reach the buffer.
func (e *Editor) consumeEscape(r rune) {
	switch e.esc {
	case escStart:
		switch r {
		case '[':
			e.esc = escCSI
		case 'O':
			e.esc = escSS3
		default:
			e.esc = escNone
		}
	case escCSI:
		if r >= 0x40 && r <= 0x7e {
			e.esc = escNone
		}
	case escSS3:
		e.esc = escNone
	}
}

func (e *Editor) write(s string) {
	_, _ = io.WriteString(e.echo, s)
}
