package main

import (
	"github.com/aretw0/collatz/pkg/domain"
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval <n>...",
	Short: "Evaluate explicit integers",
	Long: `Reports the trajectory of each integer given on the command line.
Steps are shown by default; any argument that is not a non-negative integer aborts the command.`,
	Example: `  collatz eval 6 27
  collatz eval --show-steps=false --json 97`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inputs, err := domain.ParseInputs(args)
		if err != nil {
			return err
		}

		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer app.Close()

		showSteps, _ := cmd.Flags().GetBool("show-steps")
		_, err = app.RunBatch(cmd.Context(), inputs, cmd.OutOrStdout(), showSteps)
		return err
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
	addOutputFlags(evalCmd, true)
}
