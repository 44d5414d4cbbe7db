package ui

import (
	"fmt"
	"strings"
)

// AppTitle is shown in the header banner.
const AppTitle = "DEVICE ID SCANNER"

// Loading announces that the inventory is being read.
func (r *Renderer) Loading() {
	r.println(r.theme.Hint.Render("Loading inventory..."))
}

// Header renders the banner shown after loading and after "clear".
func (r *Renderer) Header(source string, count int) {
	t := r.theme
	banner := t.Banner.Render(rule("=", r.width))

	r.println(
		banner,
		t.Banner.Render(strings.Repeat(" ", TitleIndent)+AppTitle),
		banner,
		t.Label.Render("Inventory File:")+" "+source,
		t.Label.Render("Total Devices:")+" "+fmt.Sprint(count),
		t.Hint.Render("Type 'quit' or 'exit' to stop, 'clear' to clear screen"),
		t.Rule.Render(rule("=", r.width)),
		"",
	)
}

// Prompt writes the scan prompt without a trailing newline.
func (r *Renderer) Prompt() {
	r.print(r.theme.Prompt.Render("Scan Device ID:") + " ")
}

// Usage prints the missing-argument error with usage and an example.
func (r *Renderer) Usage(program string) {
	r.println(
		r.theme.ErrorTitle.Render("Error: inventory file path required"),
		r.theme.Hint.Render(fmt.Sprintf("Usage: %s <inventory-file>", program)),
		r.theme.Hint.Render(fmt.Sprintf("Example: %s hp_laptops.csv", program)),
	)
}

// Error prints a fatal error line.
func (r *Renderer) Error(msg string) {
	r.println(r.theme.ErrorTitle.Render("Error: " + msg))
}

// Interrupted notes that the user stopped the session with Ctrl+C.
func (r *Renderer) Interrupted() {
	r.println("", r.theme.Hint.Render("Scanner interrupted by user"))
}
