package alias

import (
	"slices"
	"strings"

	"typeweld/internal/seq"
	"typeweld/internal/types"
)

// CycleError reports a self-referential alias table. Chain holds the alias
// names from the first entry down to the re-entered name, e.g. [A B A].
type CycleError struct {
	Chain []string
}

func (e *CycleError) Error() string {
	return "alias expansion cycle: " + strings.Join(e.Chain, " -> ")
}

// Expander substitutes alias names throughout a type expression. The
// in-progress stack is scoped to one top-level Expand call, so an Expander
// must not be shared between concurrent expansions; the underlying table,
// being read-only, may be.
type Expander struct {
	types      *types.Interner
	provider   Provider
	inProgress []string
}

// NewExpander builds an expander over the interner and alias provider.
func NewExpander(in *types.Interner, provider Provider) *Expander {
	return &Expander{types: in, provider: provider}
}

// Expand replaces every nominal leaf name (plain name or generic base name)
// that resolves through the provider with its fully expanded name. Only the
// names are substituted: generic arguments, wrapper chains, and function
// shapes pass through structurally unchanged. A cyclic alias table yields a
// *CycleError carrying the full chain.
func (e *Expander) Expand(id types.TypeID) (types.TypeID, error) {
	e.inProgress = e.inProgress[:0]
	return e.types.Map(id, e.expandNominal)
}

func (e *Expander) expandNominal(id types.TypeID) (types.TypeID, error) {
	info, ok := e.types.NominalInfo(id)
	if !ok {
		return id, nil
	}
	name, err := e.expandName(info.Name)
	if err != nil {
		return types.NoTypeID, err
	}
	if name == info.Name {
		return id, nil
	}
	if !info.IsGeneric() {
		return e.types.RegisterNominal(name), nil
	}
	args, err := seq.OneFromSlice(info.Args)
	if err != nil {
		return types.NoTypeID, err
	}
	return e.types.RegisterGeneric(name, args), nil
}

// expandName follows the alias chain for a single name. Aliases are expanded
// by name, not by structure: the target expression contributes only its own
// outer type name, and any non-nominal target leaves the name as-is.
func (e *Expander) expandName(name string) (string, error) {
	if slices.Contains(e.inProgress, name) {
		chain := append(slices.Clone(e.inProgress), name)
		return "", &CycleError{Chain: chain}
	}
	target, ok := e.provider.Resolve(name)
	if !ok {
		return name, nil
	}
	info, ok := e.types.NominalInfo(target)
	if !ok {
		return name, nil
	}
	e.inProgress = append(e.inProgress, name)
	expanded, err := e.expandName(info.Name)
	e.inProgress = e.inProgress[:len(e.inProgress)-1]
	if err != nil {
		return "", err
	}
	return expanded, nil
}
