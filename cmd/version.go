package cmd

import (
	"fmt"
	"runtime"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var (
	// these will be overridden at build time using -ldflags
	version = "0.0.1"
	commit  = "dev"
	date    = "unknown"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().Bool("build", false, "Show full build metadata as a table")
}

// versionCmd prints echox version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show echox version information",
	Long:  `Displays the current version, git commit, and build date for echox.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Reset the flag at exit so repeated executions start clean.
		defer func() {
			if f := cmd.Flags().Lookup("build"); f != nil {
				f.Changed = false
				_ = f.Value.Set("false")
			}
		}()

		full, _ := cmd.Flags().GetBool("build")
		if !full {
			fmt.Fprintf(cmd.OutOrStdout(), "echox %s (commit %s, built %s)\n", version, commit, date)
			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), color.New(color.FgGreen, color.Bold).Sprint("Build info:"))
		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.SetHeader([]string{"Field", "Value"})
		table.Append([]string{"version", version})
		table.Append([]string{"commit", commit})
		table.Append([]string{"built", date})
		table.Append([]string{"go", runtime.Version()})
		table.Append([]string{"platform", runtime.GOOS + "/" + runtime.GOARCH})
		table.Render()
		return nil
	},
}
