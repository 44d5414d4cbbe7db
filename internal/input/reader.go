package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/muurk/devscan/internal/logging"
)

var (
	// ErrCancelled is matched by both ErrInterrupted and ErrEndOfInput.
	ErrCancelled = errors.New("input cancelled")
	// ErrInterrupted is returned when the user presses Ctrl+C.
	ErrInterrupted = fmt.Errorf("%w: interrupted", ErrCancelled)
	// ErrEndOfInput is returned on Ctrl+D or when the input stream ends.
	ErrEndOfInput = fmt.Errorf("%w: end of input", ErrCancelled)
)

// Reader returns one line of user input per call.
type Reader interface {
	ReadLine() (string, error)
}

// New picks the Reader for in: a RawReader when in is an interactive
// terminal, a LineReader otherwise. Echo from the RawReader goes to out.
func New(in io.Reader, out io.Writer, threshold int) Reader {
	if fd, ok := terminalFd(in); ok {
		logging.Debug("stdin is a terminal, using raw input", zap.Int("auto_submit_length", threshold))
		return NewRawReader(fd, in, out, threshold)
	}
	logging.Debug("stdin is not a terminal, using line input")
	return NewLineReader(in)
}

// LineReader reads newline-terminated lines through a buffer.
type LineReader struct {
	in *bufio.Reader
}

// NewLineReader wraps in with a buffered reader.
func NewLineReader(in io.Reader) *LineReader {
	return &LineReader{in: bufio.NewReader(in)}
}

// ReadLine returns the next line trimmed of surrounding whitespace. A final
// line without a newline is returned as-is; after that ErrEndOfInput.
func (r *LineReader) ReadLine() (string, error) {
	line, err := r.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line == "" {
				return "", ErrEndOfInput
			}
			return strings.TrimSpace(line), nil
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// RawReader reads keystrokes from a terminal in raw mode.
type RawReader struct {
	fd     int
	in     *bufio.Reader
	editor *Editor

	// enterRaw is swapped out in tests.
	enterRaw func(fd int) (restore func() error, err error)
}

// NewRawReader returns a RawReader for the terminal fd. in must read from
// the same terminal.
func NewRawReader(fd int, in io.Reader, out io.Writer, threshold int) *RawReader {
	return &RawReader{
		fd:       fd,
		in:       bufio.NewReader(in),
		editor:   NewEditor(threshold, out),
		enterRaw: enterRawMode,
	}
}

// ReadLine reads one line in raw mode. The terminal state is restored before
// it returns. If raw mode cannot be engaged the call falls back to a
// buffered line read.
func (r *RawReader) ReadLine() (string, error) {
	restore, err := r.enterRaw(r.fd)
	if err != nil {
		logging.Warn("raw mode unavailable, falling back to line input", zap.Error(err))
		return (&LineReader{in: r.in}).ReadLine()
	}
	defer func() {
		if err := restore(); err != nil {
			logging.Warn("failed to restore terminal state", zap.Error(err))
		}
	}()

	// Start from an empty buffer even if the last read was cancelled
	editor := r.editor
	editor.Reset()

	for {
		ch, _, err := r.in.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", ErrEndOfInput
			}
			return "", fmt.Errorf("failed to read terminal input: %w", err)
		}

		switch editor.Feed(ch) {
		case Submit:
			return editor.Line(), nil
		case Interrupt:
			return "", ErrInterrupted
		case EndOfInput:
			return "", ErrEndOfInput
		}
	}
}
