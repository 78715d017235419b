// Package merge reconciles two type expressions that are believed to
// describe the same declaration into a single preferred expression.
package merge

import (
	"typeweld/internal/alias"
	"typeweld/internal/types"
)

// Merger unifies pairs of type expressions, reconciling function attribute
// sets and nullability markers and preferring the alias-preserving spelling.
// It shares its callers' interner and expander; like the expander it must
// not be used from concurrent goroutines.
type Merger struct {
	types    *types.Interner
	expander *alias.Expander
}

// NewMerger builds a merger over the interner and expander.
func NewMerger(in *types.Interner, expander *alias.Expander) *Merger {
	return &Merger{types: in, expander: expander}
}

// Merge reconciles t2 toward t1 and returns the new value for t2. Mismatched
// shapes are not an error: every rule that does not apply simply leaves t2
// alone, so the result may equal the input. The only failure source is a
// cyclic alias table encountered during expansion.
func (m *Merger) Merge(t1, t2 types.TypeID) (types.TypeID, error) {
	in := m.types
	t1Expanded, err := m.expander.Expand(t1)
	if err != nil {
		return types.NoTypeID, err
	}
	t2Expanded, err := m.expander.Expand(t2)
	if err != nil {
		return types.NoTypeID, err
	}

	// Function unification: same parameter count on both expanded sides.
	fn1, ok1 := in.FnInfo(in.DeepUnwrap(t1Expanded))
	fn2, ok2 := in.FnInfo(in.DeepUnwrap(t2Expanded))
	if ok1 && ok2 && len(fn1.Params) == len(fn2.Params) {
		params := make([]types.TypeID, len(fn1.Params))
		for i := range fn1.Params {
			params[i], err = m.Merge(fn1.Params[i], fn2.Params[i])
			if err != nil {
				return types.NoTypeID, err
			}
		}
		result, err := m.Merge(fn1.Result, fn2.Result)
		if err != nil {
			return types.NoTypeID, err
		}
		attrs := types.UnionAttrs(fn1.Attrs, fn2.Attrs)
		merged := in.RegisterFn(params, result, attrs)
		// The merged function keeps the optionality chain the original
		// (pre-expansion) t2 carried.
		t2 = in.WithSameOptionalityAs(merged, t2)
		t2Expanded, err = m.expander.Expand(t2)
		if err != nil {
			return types.NoTypeID, err
		}
	}

	// Nullability reconciliation: t1 states its nullability, t2 leaves it
	// unspecified, and both sides agree modulo unspecified markers.
	if !in.IsUnspecified(t1) && in.IsUnspecified(t2) {
		n1 := in.AsNonnullDeep(in.DeepUnwrap(t1Expanded), true)
		n2 := in.AsNonnullDeep(in.DeepUnwrap(t2Expanded), true)
		if n1 == n2 {
			t2 = in.WithSameOptionalityAs(n2, t1)
		}
	}

	// Prefer the aliased spelling when both sides denote the same expansion.
	if t2 == t1Expanded {
		t2 = t1
	}
	return t2, nil
}
