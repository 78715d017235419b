package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"typeweld/internal/diag"
	"typeweld/internal/manifest"
	"typeweld/internal/types"
)

// session is one manifest materialized onto its own interner. Every command
// (and every parallel worker) gets a fresh session so expanders are never
// shared across goroutines.
type session struct {
	Path  string
	In    *types.Interner
	Built *manifest.Built
	Bag   *diag.Bag
}

// loadSession parses and builds one manifest. Build defects come back in the
// session's bag together with an error.
func loadSession(path string, maxDiagnostics int) (*session, error) {
	doc, err := manifest.Load(path)
	if err != nil {
		return nil, err
	}
	s := &session{
		Path: path,
		In:   types.NewInterner(),
		Bag:  diag.NewBag(maxDiagnostics),
	}
	built, ok := manifest.Build(s.In, doc, diag.BagReporter{Bag: s.Bag})
	s.Built = built
	if !ok {
		return s, fmt.Errorf("%s: manifest has errors", path)
	}
	return s, nil
}

func colorEnabled(cmd *cobra.Command) bool {
	mode, err := cmd.Flags().GetString("color")
	if err != nil {
		mode = "auto"
	}
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(os.Stdout)
	}
}

var (
	errorLabel   = color.New(color.FgRed, color.Bold)
	warningLabel = color.New(color.FgYellow, color.Bold)
	infoLabel    = color.New(color.FgCyan)
)

// printDiagnostics writes a sorted, deduplicated bag in the form
// "CODE SEVERITY subject: message".
func printDiagnostics(w io.Writer, bag *diag.Bag, colorize bool) {
	bag.Sort()
	bag.Dedup()
	for _, d := range bag.Items() {
		label := d.Severity.String()
		if colorize {
			switch d.Severity {
			case diag.SevError:
				label = errorLabel.Sprint(label)
			case diag.SevWarning:
				label = warningLabel.Sprint(label)
			default:
				label = infoLabel.Sprint(label)
			}
		}
		fmt.Fprintf(w, "%s %s %s: %s\n", d.Code, label, d.Subject, d.Message)
		for _, n := range d.Notes {
			fmt.Fprintf(w, "  note %s: %s\n", n.Subject, n.Msg)
		}
	}
}

// selectTypeNames resolves the positional name arguments against the
// manifest's [types] section; no arguments means every name, sorted.
func selectTypeNames(s *session, args []string) ([]string, error) {
	if len(args) > 0 {
		for _, name := range args {
			if _, ok := s.Built.Types[name]; !ok {
				return nil, fmt.Errorf("%s: no type named %q in manifest", s.Path, name)
			}
		}
		return args, nil
	}
	names := make([]string, 0, len(s.Built.Types))
	for name := range s.Built.Types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
