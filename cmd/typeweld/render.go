package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render [flags] <manifest> [name...]",
	Short: "Print the canonical rendering of named types",
	Long:  "Render the [types] entries of a manifest in their canonical string form, without alias expansion.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  renderExecution,
}

func renderExecution(cmd *cobra.Command, args []string) error {
	maxDiagnostics, err := cmd.Flags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}
	s, err := loadSession(args[0], maxDiagnostics)
	if err != nil {
		if s != nil {
			printDiagnostics(cmd.ErrOrStderr(), s.Bag, colorEnabled(cmd))
		}
		return err
	}
	names, err := selectTypeNames(s, args[1:])
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", name, s.In.Label(s.Built.Types[name]))
	}
	return nil
}
