package scanner

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		line string
		want Command
	}{
		{"quit", CommandQuit},
		{"EXIT", CommandQuit},
		{" Q ", CommandQuit},
		{"clear", CommandClear},
		{"Clear", CommandClear},
		{"", CommandSkip},
		{"   ", CommandSkip},
		{"100200", CommandScan},
		{"quitter", CommandScan},
		{"ABC123", CommandScan},
	}

	for _, tt := range tests {
		if got := Classify(tt.line); got != tt.want {
			t.Errorf("Classify(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}
