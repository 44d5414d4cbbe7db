package ui

import (
	"bufio"
	"io"
	"strings"
)

// Confirm asks a yes/no question and reads the answer from in. Only "y" or
// "yes" (any case) counts as agreement; EOF or a read error is a no.
func (r *Renderer) Confirm(in io.Reader, question string) bool {
	r.print(r.theme.Hint.Render(question+" [y/N]:") + " ")

	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && answer == "" {
		r.println("")
		return false
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		r.println(r.theme.Hint.Render("Operation cancelled."))
		return false
	}
}
