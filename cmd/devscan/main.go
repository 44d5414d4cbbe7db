// Devscan checks scanned device IDs against an inventory file.
//
// It loads the inventory (a CSV export with an "Object ID" column), then
// prompts for scans. Each scan is reported as found, with the device's
// prefix, brand, type and MAC address, or as not found. Numeric IDs from a
// barcode or RFID scanner are submitted automatically once they reach the
// configured length; text and commands are submitted with Enter.
//
// Usage:
//
//	devscan <inventory-file> [flags]
//
// At the prompt, type 'quit', 'exit' or 'q' to stop and 'clear' to clear
// the screen. A summary of the session is printed on exit. See
// 'devscan --help' for flags and the config subcommands.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/muurk/devscan/internal/logging"
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// execute runs the CLI and returns the process exit code.
func execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args for a nil slice
		args = []string{}
	}

	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	logging.Sync()

	if err == nil {
		return 0
	}

	var reported *reportedError
	if !errors.As(err, &reported) {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return 1
}

// reportedError marks an error that has already been shown to the user.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

func reported(err error) error {
	return &reportedError{err: err}
}
