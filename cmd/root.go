package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/valerioTomassi/echox/internal/echo"
)

// rootCmd is the base command. Running echox with no subcommand echoes the
// value of --x, which is the tool's whole job as a smoke-test fixture.
var rootCmd = &cobra.Command{
	Use:   "echox",
	Short: "Echo an integer flag",
	Long: `echox prints the value of its --x flag followed by a newline and
exits 0. Build pipelines run it after compiling to verify that flag
parsing, stdout, and exit codes behave as expected.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Ensure the flag doesn't leak between test runs/executions by resetting it at exit.
		defer func() {
			if f := cmd.Flags().Lookup("x"); f != nil {
				f.Changed = false
				_ = f.Value.Set(fmt.Sprintf("%d", echo.DefaultValue))
			}
		}()

		v, err := cmd.Flags().GetInt("x")
		if err != nil {
			return err
		}
		return echo.Fprint(cmd.OutOrStdout(), v)
	},
}

// Execute runs the CLI. Called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Int("x", echo.DefaultValue, "Integer value to echo")
}
