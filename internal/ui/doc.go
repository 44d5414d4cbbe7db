// Package ui renders the scanner's terminal output.
//
// A Renderer writes styled lines to one io.Writer using Lipgloss. The
// writer's color profile is detected once: terminals get ANSI colors and
// bold text, while pipes and files get the same text with no escape
// sequences, so redirected output stays clean.
//
// The Renderer holds no session state. Each call writes one block:
//
//   - Header: banner with the inventory file, device count and usage hints
//   - Found / NotFound: per-scan result
//   - Summary: totals printed when the session ends
//
// Example:
//
//	view := ui.NewRenderer(os.Stdout)
//	view.Header("hp_laptops.csv", idx.Len())
//	view.Prompt()
package ui
