package cmd

import (
	"github.com/spf13/cobra"
	"github.com/valerioTomassi/echox/internal/echo"
)

func init() {
	rootCmd.AddCommand(probeCmd)
}

// probeCmd emits the fixed probe value so external checks can assert on it.
var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Print the fixed probe value",
	Long: `Prints the probe constant followed by a newline. The value never
changes; pipelines compare the output against it to confirm the binary was
built and runs correctly.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return echo.Fprint(cmd.OutOrStdout(), echo.Probe())
	},
}
