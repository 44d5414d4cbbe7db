package input

import (
	"bytes"
	"testing"
)

// feed runs input through a fresh Editor and returns the last result, the
// number of runes consumed and the editor.
func feed(threshold int, input string) (Result, int, *Editor, *bytes.Buffer) {
	var echo bytes.Buffer
	e := NewEditor(threshold, &echo)
	result := Continue
	consumed := 0
	for _, r := range input {
		consumed++
		result = e.Feed(r)
		if result != Continue {
			break
		}
	}
	return result, consumed, e, &echo
}

func TestEditor_AutoSubmitDigits(t *testing.T) {
	result, consumed, e, echo := feed(6, "1002009")

	if result != Submit {
		t.Fatalf("result = %v, want submit", result)
	}
	if consumed != 6 {
		t.Errorf("consumed %d runes, want 6", consumed)
	}
	if e.Line() != "100200" {
		t.Errorf("Line() = %q, want 100200", e.Line())
	}
	if echo.String() != "100200\r\n" {
		t.Errorf("echo = %q", echo.String())
	}
}

func TestEditor_NonDigitWaitsForEnter(t *testing.T) {
	tests := []string{"12345A", "A12345", "12 456", "１２３４５６"}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			result, _, e, _ := feed(6, input)
			if result != Continue {
				t.Fatalf("result = %v after %q, want continue", result, input)
			}

			if got := e.Feed('\r'); got != Submit {
				t.Fatalf("Enter result = %v, want submit", got)
			}
			if e.Line() != input {
				t.Errorf("Line() = %q, want %q", e.Line(), input)
			}
		})
	}
}

func TestEditor_ThresholdIsConfigurable(t *testing.T) {
	result, consumed, e, _ := feed(8, "1234567890")
	if result != Submit || consumed != 8 {
		t.Fatalf("result = %v after %d runes, want submit after 8", result, consumed)
	}
	if e.Line() != "12345678" {
		t.Errorf("Line() = %q", e.Line())
	}
}

func TestEditor_ThresholdZeroDisablesAutoSubmit(t *testing.T) {
	result, _, _, _ := feed(0, "123456")
	if result != Continue {
		t.Errorf("result = %v, want continue with auto-submit disabled", result)
	}
}

func TestEditor_Backspace(t *testing.T) {
	result, _, e, echo := feed(6, "12\x7f3\r")

	if result != Submit {
		t.Fatalf("result = %v, want submit", result)
	}
	if e.Line() != "13" {
		t.Errorf("Line() = %q, want 13", e.Line())
	}
	if echo.String() != "12\b \b3\r\n" {
		t.Errorf("echo = %q", echo.String())
	}
}

func TestEditor_BackspaceOnEmptyBuffer(t *testing.T) {
	result, _, e, echo := feed(6, "\x7f\x08ab\n")

	if result != Submit {
		t.Fatalf("result = %v, want submit", result)
	}
	if e.Line() != "ab" {
		t.Errorf("Line() = %q, want ab", e.Line())
	}
	if echo.String() != "ab\r\n" {
		t.Errorf("echo = %q, backspace on empty buffer should not echo", echo.String())
	}
}

func TestEditor_BackspaceThenAutoSubmit(t *testing.T) {
	// "12345A" does not submit; replacing A with 6 does.
	result, _, e, _ := feed(6, "12345A\x7f6")
	if result != Submit {
		t.Fatalf("result = %v, want submit", result)
	}
	if e.Line() != "123456" {
		t.Errorf("Line() = %q", e.Line())
	}
}

func TestEditor_Cancel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Result
	}{
		{"ctrl-c empty", "\x03", Interrupt},
		{"ctrl-c with text", "abc\x03", Interrupt},
		{"ctrl-d empty", "\x04", EndOfInput},
		{"ctrl-d with text", "12\x04", EndOfInput},
		{"ctrl-c inside escape", "\x1b[\x03", Interrupt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, _, _, _ := feed(6, tt.input)
			if result != tt.want {
				t.Errorf("result = %v, want %v", result, tt.want)
			}
		})
	}
}

func TestEditor_IgnoresControlAndEscapeSequences(t *testing.T) {
	// Tab, bell, up arrow (CSI), F1 (SS3), Alt+x, then text.
	result, _, e, echo := feed(6, "\t\a\x1b[A\x1bOP\x1bxquit\r")

	if result != Submit {
		t.Fatalf("result = %v, want submit", result)
	}
	if e.Line() != "quit" {
		t.Errorf("Line() = %q, want quit", e.Line())
	}
	if echo.String() != "quit\r\n" {
		t.Errorf("echo = %q", echo.String())
	}
}

func TestEditor_TrimsAndResets(t *testing.T) {
	result, _, e, _ := feed(6, "  clear  \r")
	if result != Submit {
		t.Fatalf("result = %v", result)
	}
	if e.Line() != "clear" {
		t.Errorf("Line() = %q, want clear", e.Line())
	}

	e.Reset()
	if e.Line() != "" {
		t.Errorf("Line() after Reset = %q", e.Line())
	}
}

func TestResultString(t *testing.T) {
	if Submit.String() != "submit" || EndOfInput.String() != "end-of-input" || Result(9).String() != "unknown" {
		t.Error("unexpected Result names")
	}
}
