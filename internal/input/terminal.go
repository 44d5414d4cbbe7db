package input

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/muurk/devscan/internal/logging"
)

// terminalFd reports the file descriptor of in when it is an interactive
// terminal.
func terminalFd(in io.Reader) (int, bool) {
	f, ok := in.(interface{ Fd() uintptr })
	if !ok {
		return 0, false
	}
	fd := int(f.Fd())
	return fd, term.IsTerminal(fd)
}

// IsTerminal reports whether in is an interactive terminal.
func IsTerminal(in io.Reader) bool {
	_, ok := terminalFd(in)
	return ok
}

// enterRawMode puts fd into raw mode and returns a func that restores the
// state captured beforehand.
func enterRawMode(fd int) (func() error, error) {
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("failed to enter raw mode: %w", err)
	}
	return func() error {
		return term.Restore(fd, state)
	}, nil
}

// SaveTerminalState captures the current mode of in when it is a terminal
// and returns a func that puts it back. A read still blocked in raw mode
// when the session is interrupted cannot run its own restore, so callers
// defer this around the whole session. For non-terminals it is a no-op.
func SaveTerminalState(in io.Reader) func() {
	fd, ok := terminalFd(in)
	if !ok {
		return func() {}
	}

	state, err := term.GetState(fd)
	if err != nil {
		logging.Warn("failed to capture terminal state", zap.Error(err))
		return func() {}
	}

	return func() {
		if err := term.Restore(fd, state); err != nil {
			logging.Warn("failed to restore terminal state", zap.Error(err))
		}
	}
}
