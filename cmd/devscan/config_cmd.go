package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/devscan/internal/config"
	"github.com/muurk/devscan/internal/logging"
	"github.com/muurk/devscan/internal/ui"
)

func newConfigCmd(opts *rootOptions) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the devscan configuration file",
		Long: `Manage the devscan configuration file.

The configuration sets the auto-submit length, the inventory delimiter
and the inventory column names. Flags given to devscan override it.`,
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath(opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			data, err := cfg.Marshal()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), string(data))
			return nil
		},
	})

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file with default values",
		Example: `  # Create the default config file
  devscan config init

  # Create or replace a config file at a custom location
  devscan config init --config ./devscan.yaml --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigInit(cmd, opts)
		},
	}
	initCmd.Flags().BoolVar(&opts.force, "force", false, "Overwrite an existing file without asking")
	configCmd.AddCommand(initCmd)

	return configCmd
}

func runConfigInit(cmd *cobra.Command, opts *rootOptions) error {
	path, err := configPath(opts)
	if err != nil {
		return err
	}

	view := ui.NewRenderer(cmd.OutOrStdout())

	if _, err := os.Stat(path); err == nil && !opts.force {
		if !view.Confirm(cmd.InOrStdin(), fmt.Sprintf("%s already exists. Overwrite?", path)) {
			return nil
		}
	}

	if err := config.NewConfig().Save(path); err != nil {
		return err
	}
	logging.Info("config file written", zap.String("path", path))
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

func configPath(opts *rootOptions) (string, error) {
	if opts.configPath != "" {
		return opts.configPath, nil
	}
	return config.GetConfigPath()
}
