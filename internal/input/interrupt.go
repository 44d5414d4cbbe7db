package input

import (
	"os"
)

type lineResult struct {
	line string
	err  error
}

// InterruptReader wraps a Reader so that a signal on sig ends the current
// or next ReadLine with ErrInterrupted. Without it SIGINT would kill the
// process whenever the terminal is not in raw mode (piped input, the raw
// mode fallback, or between reads).
type InterruptReader struct {
	r   Reader
	sig <-chan os.Signal

	// pending holds a read still blocked after an interrupt, so a later
	// call picks up its result instead of starting a second read.
	pending chan lineResult
}

// NewInterruptReader wraps r. sig is normally fed by signal.Notify.
func NewInterruptReader(r Reader, sig <-chan os.Signal) *InterruptReader {
	return &InterruptReader{r: r, sig: sig}
}

// ReadLine returns the next line from the wrapped Reader, or ErrInterrupted
// if a signal arrives first.
func (r *InterruptReader) ReadLine() (string, error) {
	// A signal delivered between reads wins over new input
	select {
	case <-r.sig:
		return "", ErrInterrupted
	default:
	}

	if r.pending == nil {
		ch := make(chan lineResult, 1)
		go func() {
			line, err := r.r.ReadLine()
			ch <- lineResult{line: line, err: err}
		}()
		r.pending = ch
	}

	select {
	case res := <-r.pending:
		r.pending = nil
		return res.line, res.err
	case <-r.sig:
		return "", ErrInterrupted
	}
}
