package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Renderer writes styled output to a single destination.
type Renderer struct {
	out   io.Writer
	lg    *lipgloss.Renderer
	theme Theme
	width int
}

// NewRenderer returns a Renderer for out. Styling is dropped automatically
// when out is not a color-capable terminal.
func NewRenderer(out io.Writer) *Renderer {
	lg := lipgloss.NewRenderer(out)
	return &Renderer{
		out:   out,
		lg:    lg,
		theme: NewTheme(lg),
		width: terminalWidth(out),
	}
}

// Styled reports whether output carries ANSI styling.
func (r *Renderer) Styled() bool {
	return r.lg.ColorProfile() != termenv.Ascii
}

// ClearScreen erases the terminal and homes the cursor. It does nothing when
// output is not a styled terminal, so redirected output keeps only text.
func (r *Renderer) ClearScreen() {
	if !r.Styled() {
		return
	}
	r.lg.Output().ClearScreen()
}

func (r *Renderer) println(lines ...string) {
	for _, line := range lines {
		fmt.Fprintln(r.out, line)
	}
}

func (r *Renderer) print(s string) {
	fmt.Fprint(r.out, s)
}
