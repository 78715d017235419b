package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"typeweld/internal/alias"
	"typeweld/internal/diag"
)

var expandCmd = &cobra.Command{
	Use:   "expand [flags] <manifest> [name...]",
	Short: "Print named types with aliases fully expanded",
	Long:  "Expand every alias in the [types] entries of a manifest through its [aliases] table and render the result.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  expandExecution,
}

func expandExecution(cmd *cobra.Command, args []string) error {
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
	expander := alias.NewExpander(s.In, s.Built.Table)
	for _, name := range names {
		expanded, err := expander.Expand(s.Built.Types[name])
		if err != nil {
			var cycle *alias.CycleError
			if errors.As(err, &cycle) {
				s.Bag.Add(diag.NewError(diag.ExpandCycle, "types."+name, cycle.Error()))
				printDiagnostics(cmd.ErrOrStderr(), s.Bag, colorEnabled(cmd))
			}
			return fmt.Errorf("%s: expanding %q: %w", s.Path, name, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", name, s.In.Label(expanded))
	}
	return nil
}
