// Package input reads scanned identifiers and commands from the user.
//
// Two Reader implementations exist. RawReader is used when stdin is an
// interactive terminal: it switches the terminal to raw mode for the
// duration of each read and feeds keystrokes one at a time through an
// Editor, which handles echo, backspace, Ctrl+C, Ctrl+D and auto-submit.
// LineReader is used for everything else (pipes, redirected files) and
// performs plain buffered line reads.
//
// # Auto-submit
//
// Barcode and RFID scanners type fixed-length numeric codes quickly and
// often without a trailing Enter. When the buffer reaches the configured
// threshold (6 by default) and every character is a digit, the Editor
// submits immediately. Anything else, such as text commands or
// alphanumeric IDs, waits for Enter.
//
// # Escape sequences
//
// Arrow and function keys send escape sequences (ESC [ A, ESC O P). The
// Editor drops the whole sequence, not only the ESC byte, so "[A" never
// lands in the buffer. Any other ESC-prefixed pair (Alt+key) is dropped too.
//
// # Cancellation
//
// Ctrl+C yields ErrInterrupted and Ctrl+D (or end of input) yields
// ErrEndOfInput. Both match ErrCancelled with errors.Is.
//
// Outside raw mode Ctrl+C arrives as SIGINT rather than a keystroke.
// InterruptReader turns a signal into ErrInterrupted for the current or
// next read, and SaveTerminalState puts the terminal back if a raw read was
// still in progress when that happened.
package input
