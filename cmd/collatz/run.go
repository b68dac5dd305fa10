package main

import (
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/aretw0/collatz"
	"github.com/aretw0/collatz/internal/config"
	"github.com/aretw0/collatz/internal/presentation/tui"
	"github.com/aretw0/collatz/pkg/domain"
	"github.com/aretw0/collatz/pkg/sample"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Evaluate the fixed-seed sample",
	Long: `Generates 1000 integers in [0, 1000) from a fixed seed and reports the
trajectory outcome of each one, in generation order.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer app.Close()

		showSteps := app.Config.ShowSteps
		if cmd.Flags().Changed("show-steps") {
			showSteps, _ = cmd.Flags().GetBool("show-steps")
		}
		quiet, _ := cmd.Flags().GetBool("quiet")

		if !quiet && app.Config.Format != config.FormatJSON && tui.IsTerminal(os.Stdout) {
			tui.PrintBanner(os.Stderr, strings.TrimSpace(collatz.Version))
		}

		inputs, err := sample.New(domain.DefaultSeed).Generate(
			domain.DefaultSampleCount, domain.DefaultSampleLow, domain.DefaultSampleHigh)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		_, err = app.RunBatch(ctx, inputs, cmd.OutOrStdout(), showSteps)
		return err
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	addOutputFlags(runCmd, false)
	runCmd.Flags().BoolP("quiet", "q", false, "Do not print the banner")

	// Make 'run' the default if no command is provided
	rootCmd.RunE = runCmd.RunE
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
}
