// SPDX-License-Identifier: MIT
// Command qnetsim simulates multipartite entanglement distribution over
// quantum network topologies.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/qnetsim/config"
	"github.com/katalvlaran/qnetsim/logging"
)

var version = "0.1.0-dev"

func main() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "qnetsim",
		Short: "Multipath entanglement distribution simulator",
		Long: `qnetsim estimates the rate at which a quantum network distributes
GHZ states to a group of users.

It evolves link-level entanglement with probabilistic generation and
decoherence, then routes with the SP, MPG or MPC protocol.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("config", "", "Experiment YAML file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", "", "Log format: text or json")

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(),
		newGridCmd(),
		newPruneCmd(),
		newRunsCmd(),
		newInspectCmd(),
	)

	return rootCmd
}

// newLogger builds the command logger from the experiment, letting the
// persistent flags win.
func newLogger(cmd *cobra.Command, cfg *config.Experiment) *slog.Logger {
	level, format := cfg.Logging.Level, cfg.Logging.Format
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		level = v
	}
	if v, _ := cmd.Flags().GetString("log-format"); v != "" {
		format = v
	}
	if format == "json" {
		return logging.NewJSONLogger(level, cmd.ErrOrStderr())
	}
	return logging.NewLogger(level, cmd.ErrOrStderr())
}

// loadExperiment reads --config (or the defaults) and applies environment
// overrides; validation is left to the caller after flag overrides.
func loadExperiment(cmd *cobra.Command) (*config.Experiment, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg := config.Default()
	if path != "" {
		fileCfg, err := config.LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg = fileCfg
	}
	if err := cfg.ApplyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "qnetsim version %s\n", version)
		},
	}
}
