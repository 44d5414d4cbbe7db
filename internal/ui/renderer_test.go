package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"

	"github.com/muurk/devscan/internal/inventory"
)

func newTestRenderer() (*Renderer, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewRenderer(&buf), &buf
}

func TestRenderer_PlainOutputForNonTerminal(t *testing.T) {
	r, buf := newTestRenderer()

	if r.Styled() {
		t.Fatal("bytes.Buffer output should not be styled")
	}

	r.Header("devices.csv", 3)
	r.Found("100200", inventory.Record{ObjectID: "100200"})
	r.NotFound("999999")
	r.Summary(2, 1)

	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("output contains ANSI escapes: %q", buf.String())
	}
}

func TestRenderer_Header(t *testing.T) {
	r, buf := newTestRenderer()
	r.Header("hp_laptops.csv", 412)

	banner := strings.Repeat("=", BannerWidth)
	want := strings.Join([]string{
		banner,
		"         DEVICE ID SCANNER",
		banner,
		"Inventory File: hp_laptops.csv",
		"Total Devices: 412",
		"Type 'quit' or 'exit' to stop, 'clear' to clear screen",
		banner,
		"",
	}, "\n") + "\n"

	if buf.String() != want {
		t.Errorf("Header() =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestRenderer_Found(t *testing.T) {
	r, buf := newTestRenderer()
	r.Found("100200", inventory.Record{
		ObjectID:   "100200",
		Prefix:     "HP",
		Brand:      "HP",
		Type:       "Laptop",
		MACAddress: "AA:BB:CC:DD:EE:FF",
	})

	out := buf.String()
	for _, want := range []string{
		"Scanned ID: 100200",
		"✓ STATUS: DEVICE FOUND IN INVENTORY",
		"├─ Prefix: HP",
		"├─ Brand: HP",
		"├─ Type: Laptop",
		"└─ MAC: AA:BB:CC:DD:EE:FF",
		strings.Repeat("-", BannerWidth),
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Found() output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderer_NotFound(t *testing.T) {
	r, buf := newTestRenderer()
	r.NotFound("999999")

	out := buf.String()
	if !strings.Contains(out, "Scanned ID: 999999") || !strings.Contains(out, "✗ STATUS: DEVICE NOT IN INVENTORY") {
		t.Errorf("NotFound() output:\n%s", out)
	}
	if strings.Contains(out, "MAC:") {
		t.Error("NotFound() should not print detail fields")
	}
}

func TestRenderer_Summary(t *testing.T) {
	r, buf := newTestRenderer()
	r.Summary(5, 3)

	out := buf.String()
	for _, want := range []string{
		"SCAN SESSION SUMMARY",
		"Total Scans: 5\n",
		"Devices Found: 3\n",
		"Devices Not Found: 2\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Summary() output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderer_PromptAndUsage(t *testing.T) {
	r, buf := newTestRenderer()

	r.Prompt()
	if buf.String() != "Scan Device ID: " {
		t.Errorf("Prompt() = %q", buf.String())
	}

	buf.Reset()
	r.Usage("devscan")
	out := buf.String()
	if !strings.Contains(out, "Usage: devscan <inventory-file>") || !strings.Contains(out, "Example: devscan hp_laptops.csv") {
		t.Errorf("Usage() output:\n%s", out)
	}
}

func TestRenderer_ClearScreenSkippedForPlainOutput(t *testing.T) {
	r, buf := newTestRenderer()
	r.ClearScreen()
	if buf.Len() != 0 {
		t.Errorf("ClearScreen() wrote %q to a non-terminal", buf.String())
	}
}

func TestRenderer_ClearScreenStyled(t *testing.T) {
	r, buf := newTestRenderer()
	r.lg.SetColorProfile(termenv.ANSI)

	if !r.Styled() {
		t.Fatal("Styled() = false after forcing the ANSI profile")
	}

	r.ClearScreen()

	out := buf.String()
	if !strings.Contains(out, "\x1b[2J") {
		t.Errorf("ClearScreen() output %q missing erase display", out)
	}
	if !strings.Contains(out, "\x1b[1;1H") {
		t.Errorf("ClearScreen() output %q missing cursor home", out)
	}
}

func TestRenderer_Confirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
	}

	for _, tt := range tests {
		r, _ := newTestRenderer()
		if got := r.Confirm(strings.NewReader(tt.input), "Overwrite?"); got != tt.want {
			t.Errorf("Confirm(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestRule(t *testing.T) {
	if got := rule("=", 0); len(got) != BannerWidth {
		t.Errorf("rule width = %d, want %d", len(got), BannerWidth)
	}
	if got := rule("-", 40); len(got) != 40 {
		t.Errorf("rule clipped width = %d, want 40", len(got))
	}
}
