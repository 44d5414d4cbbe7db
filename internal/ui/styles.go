package ui

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette, using the 16 standard ANSI colors so output looks the same
// on any terminal theme.
var (
	AccentColor  = lipgloss.Color("14") // Bright cyan - banners, dividers
	LabelColor   = lipgloss.Color("12") // Bright blue - header labels
	HintColor    = lipgloss.Color("11") // Bright yellow - hints, notices
	SuccessColor = lipgloss.Color("10") // Bright green - found
	ErrorColor   = lipgloss.Color("9")  // Bright red - not found, errors
)

// Layout constants
const (
	BannerWidth = 60 // Width of "=" banners and "-" dividers
	TitleIndent = 9  // Leading spaces before the banner title
)

// Result markers
const (
	FoundMarker    = "✓"
	NotFoundMarker = "✗"
	BranchMarker   = "├─"
	LastMarker     = "└─"
)

// Theme holds the styles for one Renderer. It is built once and never
// modified.
type Theme struct {
	Banner      lipgloss.Style // "=" rules and the title
	Rule        lipgloss.Style // plain accent rules
	Label       lipgloss.Style // "Inventory File:" style labels
	Hint        lipgloss.Style // usage hints and notices
	Prompt      lipgloss.Style // "Scan Device ID: "
	ScannedID   lipgloss.Style // "Scanned ID: ..."
	FoundTitle  lipgloss.Style
	FoundDetail lipgloss.Style
	MissTitle   lipgloss.Style
	Heading     lipgloss.Style // summary heading
	FoundCount  lipgloss.Style
	MissCount   lipgloss.Style
	ErrorTitle  lipgloss.Style
}

// NewTheme builds the styles against r so color output follows r's profile.
func NewTheme(r *lipgloss.Renderer) Theme {
	return Theme{
		Banner: r.NewStyle().
			Foreground(AccentColor).
			Bold(true),
		Rule: r.NewStyle().
			Foreground(AccentColor),
		Label: r.NewStyle().
			Foreground(LabelColor),
		Hint: r.NewStyle().
			Foreground(HintColor),
		Prompt: r.NewStyle().
			Bold(true),
		ScannedID: r.NewStyle().
			Bold(true),
		FoundTitle: r.NewStyle().
			Foreground(SuccessColor).
			Bold(true),
		FoundDetail: r.NewStyle().
			Foreground(SuccessColor),
		MissTitle: r.NewStyle().
			Foreground(ErrorColor).
			Bold(true),
		Heading: r.NewStyle().
			Bold(true),
		FoundCount: r.NewStyle().
			Foreground(SuccessColor),
		MissCount: r.NewStyle().
			Foreground(ErrorColor),
		ErrorTitle: r.NewStyle().
			Foreground(ErrorColor).
			Bold(true),
	}
}

// terminalWidth returns the column count of w when it is a terminal, or 0.
func terminalWidth(w io.Writer) int {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return 0
	}
	return width
}

// rule returns char repeated to BannerWidth, clipped to the terminal width
// so it never wraps.
func rule(char string, maxWidth int) string {
	width := BannerWidth
	if maxWidth > 0 && maxWidth < width {
		width = maxWidth
	}
	return strings.Repeat(char, width)
}
