// Package scanner runs the interactive scan session.
//
// A Session reads one line at a time from an input.Reader, treats it as a
// command or a scanned ID, checks IDs against the inventory and renders the
// result. The session ends on quit/exit/q, Ctrl+C or end of input, and
// always prints a summary of the scan counters.
package scanner
