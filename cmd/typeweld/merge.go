package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"typeweld/internal/alias"
	"typeweld/internal/diag"
	"typeweld/internal/merge"
	"typeweld/internal/observ"
	"typeweld/internal/types"
	"typeweld/internal/ui"
	"typeweld/internal/wire"
)

var mergeCmd = &cobra.Command{
	Use:   "merge [flags] <manifest>...",
	Short: "Reconcile every declaration pair in the given manifests",
	Long: "Merge each [[pair]] of the manifests, second toward first, and print the reconciled types. " +
		"Multiple manifests are processed in parallel, each on its own interner.",
	Args: cobra.MinimumNArgs(1),
	RunE: mergeExecution,
}

func init() {
	mergeCmd.Flags().String("out", "", "directory for msgpack-encoded merged types")
}

// mergeOutput is one manifest's finished report, printed after all workers
// complete so output never interleaves.
type mergeOutput struct {
	path    string
	table   string
	bag     *diag.Bag
	timings string
	failed  bool
}

func mergeExecution(cmd *cobra.Command, args []string) error {
	maxDiagnostics, err := cmd.Flags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}
	quiet, err := cmd.Flags().GetBool("quiet")
	if err != nil {
		return err
	}
	showTimings, err := cmd.Flags().GetBool("timings")
	if err != nil {
		return err
	}
	outDir, err := cmd.Flags().GetString("out")
	if err != nil {
		return err
	}
	if outDir != "" {
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	colorize := colorEnabled(cmd)

	outputs := make([]mergeOutput, len(args))
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			outputs[i] = mergeOneManifest(path, maxDiagnostics, showTimings, colorize, outDir)
			return nil
		})
	}
	// Workers record failures in their output instead of aborting the group,
	// so every manifest gets processed.
	_ = g.Wait()

	anyFailed := false
	for _, out := range outputs {
		if out.failed {
			anyFailed = true
		}
		if !quiet && len(outputs) > 1 {
			fmt.Fprintf(cmd.OutOrStdout(), "%s:\n", out.path)
		}
		if out.bag != nil && out.bag.Len() > 0 {
			printDiagnostics(cmd.ErrOrStderr(), out.bag, colorize)
		}
		if out.table != "" {
			fmt.Fprint(cmd.OutOrStdout(), out.table)
		}
		if showTimings && out.timings != "" {
			fmt.Fprint(cmd.OutOrStdout(), out.timings)
		}
	}
	if anyFailed {
		return fmt.Errorf("merge finished with errors")
	}
	return nil
}

func mergeOneManifest(path string, maxDiagnostics int, showTimings, colorize bool, outDir string) mergeOutput {
	out := mergeOutput{path: path}
	timer := observ.NewTimer()

	loadPhase := timer.Begin("load")
	s, err := loadSession(path, maxDiagnostics)
	if err != nil {
		if s != nil {
			out.bag = s.Bag
		}
		out.failed = true
		out.table = err.Error() + "\n"
		return out
	}
	timer.End(loadPhase, fmt.Sprintf("%d pairs", len(s.Built.Pairs)))
	out.bag = s.Bag

	merger := merge.NewMerger(s.In, alias.NewExpander(s.In, s.Built.Table))
	rows := make([]ui.Row, 0, len(s.Built.Pairs))
	mergePhase := timer.Begin("merge")
	for _, pair := range s.Built.Pairs {
		merged, err := merger.Merge(pair.First, pair.Second)
		if err != nil {
			s.Bag.Add(diag.NewError(diag.MergeFailed, "pair."+pair.Name, err.Error()))
			rows = append(rows, ui.Row{Pair: pair.Name, Status: "failed", Result: "-", Failed: true})
			out.failed = true
			continue
		}
		rows = append(rows, ui.Row{Pair: pair.Name, Status: "ok", Result: s.In.Label(merged)})
		if outDir != "" {
			if err := writeMerged(outDir, path, pair.Name, s, merged); err != nil {
				s.Bag.Add(diag.NewError(diag.MergeFailed, "pair."+pair.Name, err.Error()))
				out.failed = true
			}
		}
	}
	timer.End(mergePhase, "")

	out.table = ui.RenderTable(rows, colorize)
	if showTimings {
		out.timings = timer.Summary()
	}
	return out
}

func writeMerged(outDir, manifestPath, pairName string, s *session, merged types.TypeID) error {
	data, err := wire.Encode(s.In, merged)
	if err != nil {
		return err
	}
	base := strings.TrimSuffix(filepath.Base(manifestPath), filepath.Ext(manifestPath))
	target := filepath.Join(outDir, base+"."+pairName+".msgpack")
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", target, err)
	}
	return nil
}
