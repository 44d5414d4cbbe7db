package scanner

import "strings"

// Command is the classification of one input line.
type Command int

const (
	// CommandScan is a device ID to look up.
	CommandScan Command = iota
	// CommandSkip is an empty line.
	CommandSkip
	// CommandClear clears the screen and redraws the header.
	CommandClear
	// CommandQuit ends the session.
	CommandQuit
)

// String returns the command name
func (c Command) String() string {
	switch c {
	case CommandScan:
		return "scan"
	case CommandSkip:
		return "skip"
	case CommandClear:
		return "clear"
	case CommandQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Classify maps a line to a Command. Commands are matched case-insensitively
// after trimming.
func Classify(line string) Command {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "":
		return CommandSkip
	case "quit", "exit", "q":
		return CommandQuit
	case "clear":
		return CommandClear
	default:
		return CommandScan
	}
}
