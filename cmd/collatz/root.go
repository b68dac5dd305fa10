package main

import (
	"fmt"
	"os"

	"github.com/aretw0/collatz/internal/cli"
	"github.com/aretw0/collatz/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "collatz",
	Short: "collatz evaluates Collatz trajectories",
	Long: `collatz follows the 3n+1 trajectory of integers down to 1.
Without a subcommand it evaluates the fixed-seed sample of 1000 integers in [0, 1000).`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "Config file (YAML or JSON)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Int("max-steps", 0, "Transition budget per input (overrides config)")
	rootCmd.PersistentFlags().String("store", "", "Result store: none, memory, file, redis (overrides config)")
}

// loadConfig reads the config file and applies any flag the user changed.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("max-steps") {
		cfg.MaxSteps, _ = flags.GetInt("max-steps")
	}
	if flags.Changed("store") {
		cfg.Store.Kind, _ = flags.GetString("store")
	}
	if f := flags.Lookup("json"); f != nil && f.Changed {
		cfg.Format = config.FormatText
		if on, _ := flags.GetBool("json"); on {
			cfg.Format = config.FormatJSON
		}
	}
	if f := flags.Lookup("show-result"); f != nil && f.Changed {
		cfg.ShowResult, _ = flags.GetBool("show-result")
	}
	if f := flags.Lookup("summary"); f != nil && f.Changed {
		cfg.Summary, _ = flags.GetBool("summary")
	}
	if f := flags.Lookup("no-color"); f != nil && f.Changed {
		off, _ := flags.GetBool("no-color")
		cfg.Color = !off
	}
	return cfg, cfg.Validate()
}

// newApp loads the config and wires the application, logging to stderr.
func newApp(cmd *cobra.Command) (*cli.App, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	return cli.NewApp(cfg, nil)
}

// addOutputFlags registers the flags shared by run and eval.
func addOutputFlags(cmd *cobra.Command, stepsDefault bool) {
	cmd.Flags().Bool("show-steps", stepsDefault, "Print every trajectory entry")
	cmd.Flags().Bool("show-result", true, "Print the final-number line")
	cmd.Flags().Bool("json", false, "Emit NDJSON records instead of text")
	cmd.Flags().Bool("summary", false, "Print a run summary table")
	cmd.Flags().Bool("no-color", false, "Disable coloured diagnostics")
}
