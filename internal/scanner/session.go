package scanner

import (
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/muurk/devscan/internal/input"
	"github.com/muurk/devscan/internal/inventory"
	"github.com/muurk/devscan/internal/logging"
	"github.com/muurk/devscan/internal/ui"
)

// Stats holds the session counters.
type Stats struct {
	Scans int
	Found int
}

// NotFound returns the number of scans that missed the inventory.
func (s Stats) NotFound() int {
	return s.Scans - s.Found
}

// Session is one run of the scan loop.
type Session struct {
	source string
	index  *inventory.Index
	reader input.Reader
	view   *ui.Renderer
	stats  Stats
}

// NewSession creates a Session. source is the inventory name shown in the
// header.
func NewSession(source string, index *inventory.Index, reader input.Reader, view *ui.Renderer) *Session {
	return &Session{
		source: source,
		index:  index,
		reader: reader,
		view:   view,
	}
}

// Stats returns the current counters.
func (s *Session) Stats() Stats {
	return s.stats
}

// Start clears the screen and draws the header.
func (s *Session) Start() {
	s.view.ClearScreen()
	s.view.Header(s.source, s.index.Len())
}

// Run reads and processes lines until the user quits or input is cancelled,
// then renders the summary. Cancellation is not an error; any other read
// failure is returned after the summary.
func (s *Session) Run() (Stats, error) {
	reason, err := s.loop()

	s.view.Summary(s.stats.Scans, s.stats.Found)
	logging.LogSessionEnd(reason, s.stats.Scans, s.stats.Found)

	return s.stats, err
}

func (s *Session) loop() (string, error) {
	for {
		s.view.Prompt()

		line, err := s.reader.ReadLine()
		if err != nil {
			switch {
			case errors.Is(err, input.ErrInterrupted):
				s.view.Interrupted()
				return "interrupted", nil
			case errors.Is(err, input.ErrEndOfInput):
				return "end_of_input", nil
			default:
				logging.Error("failed to read input", zap.Error(err))
				return "read_error", err
			}
		}

		if s.Process(line) == CommandQuit {
			return "quit", nil
		}
	}
}

// Process handles one input line and returns how it was classified.
func (s *Session) Process(line string) Command {
	cmd := Classify(line)

	switch cmd {
	case CommandClear:
		s.Start()
	case CommandScan:
		s.scan(strings.TrimSpace(line))
	}

	return cmd
}

func (s *Session) scan(id string) {
	s.stats.Scans++

	rec, found := s.index.Lookup(id)
	if found {
		s.stats.Found++
		s.view.Found(id, rec)
	} else {
		s.view.NotFound(id)
	}

	logging.LogScan(id, found)
}
