package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/devscan/internal/config"
	"github.com/muurk/devscan/internal/input"
	"github.com/muurk/devscan/internal/inventory"
	"github.com/muurk/devscan/internal/logging"
	"github.com/muurk/devscan/internal/scanner"
	"github.com/muurk/devscan/internal/ui"
	"github.com/muurk/devscan/internal/version"
)

var errMissingInventory = errors.New("inventory file path required")

// notifyInterrupt subscribes to SIGINT and SIGTERM. Tests replace it.
var notifyInterrupt = func() (<-chan os.Signal, func()) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	return sigChan, func() { signal.Stop(sigChan) }
}

// rootOptions holds flag values for one command tree.
type rootOptions struct {
	configPath string
	logLevel   string
	autoSubmit int
	delimiter  string
	force      bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "devscan <inventory-file>",
		Short: "Check scanned device IDs against an inventory file",
		Long: `Check scanned device IDs against an inventory file.

Loads the inventory, then prompts for device IDs. Each scan shows whether
the device is in the inventory and, if so, its prefix, brand, type and MAC
address. All-digit IDs are submitted automatically once they reach the
auto-submit length, so barcode and RFID scanners need no Enter key.

At the prompt: 'quit', 'exit' or 'q' ends the session, 'clear' clears the
screen. Ctrl+C and Ctrl+D also end the session. A summary is always shown.`,
		Example: `  # Check devices against an asset export
  devscan hp_laptops.csv

  # Semicolon-separated export with 8-digit asset tags
  devscan assets.csv --delimiter ';' --auto-submit 8

  # Scripted run; input is read line by line
  devscan hp_laptops.csv < scans.txt`,
		Version:       version.Full(),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logging.Initialize(opts.logLevel)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, args, opts)
		},
	}

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default is the user config directory)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Diagnostic log level on stderr (debug, info, warn, error)")
	rootCmd.Flags().IntVar(&opts.autoSubmit, "auto-submit", input.DefaultAutoSubmitLength, "Submit all-digit input at this length without Enter (0 disables)")
	rootCmd.Flags().StringVar(&opts.delimiter, "delimiter", ",", "Inventory field delimiter")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(opts))

	return rootCmd
}

func runScan(cmd *cobra.Command, args []string, opts *rootOptions) error {
	out := cmd.OutOrStdout()
	view := ui.NewRenderer(out)

	if len(args) == 0 {
		view.Usage(cmd.Root().Name())
		return reported(errMissingInventory)
	}
	path := args[0]

	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}

	view.Loading()
	idx, err := inventory.Load(path, cfg.InventoryOptions())
	if err != nil {
		logging.Error("failed to load inventory", zap.String("path", path), zap.Error(err))
		view.Error(err.Error())
		return reported(err)
	}
	logging.LogInventoryLoaded(path, idx.Len(), idx.Rows, idx.Skipped, idx.Duplicates)

	// Outside raw mode Ctrl+C is a signal, not a keystroke
	sigChan, stop := notifyInterrupt()
	defer stop()
	defer input.SaveTerminalState(cmd.InOrStdin())()

	reader := input.NewInterruptReader(
		input.New(cmd.InOrStdin(), out, cfg.AutoSubmitLength()),
		sigChan,
	)

	session := scanner.NewSession(path, idx, reader, view)
	session.Start()

	if _, err := session.Run(); err != nil {
		return fmt.Errorf("scan session failed: %w", err)
	}
	return nil
}

// resolveConfig loads the config file and applies flag overrides.
func resolveConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("auto-submit") {
		cfg.Scanner.AutoSubmitLength = opts.autoSubmit
	}
	if flags.Changed("delimiter") {
		cfg.Inventory.Delimiter = opts.delimiter
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "devscan %s\n", version.Full())
		},
	}
}
