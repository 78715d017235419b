package types

import (
	"fmt"
	"slices"
	"strings"
)

// AttrKind enumerates the function attribute families.
type AttrKind uint8

const (
	AttrAutoclosure AttrKind = iota
	AttrEscaping
	AttrConvention
)

// Convention enumerates calling conventions for AttrConvention.
type Convention uint8

const (
	ConventionBlock Convention = iota
	ConventionC
)

func (c Convention) String() string {
	switch c {
	case ConventionBlock:
		return "block"
	case ConventionC:
		return "c"
	default:
		return fmt.Sprintf("Convention(%d)", c)
	}
}

// Attr is one function attribute. Convention is meaningful only when Kind is
// AttrConvention.
type Attr struct {
	Kind       AttrKind
	Convention Convention
}

// Autoclosure returns the @autoclosure attribute.
func Autoclosure() Attr {
	return Attr{Kind: AttrAutoclosure}
}

// Escaping returns the @escaping attribute.
func Escaping() Attr {
	return Attr{Kind: AttrEscaping}
}

// ConventionAttr returns a @convention(kind) attribute.
func ConventionAttr(c Convention) Attr {
	return Attr{Kind: AttrConvention, Convention: c}
}

// String renders the attribute in its source form.
func (a Attr) String() string {
	switch a.Kind {
	case AttrAutoclosure:
		return "@autoclosure"
	case AttrEscaping:
		return "@escaping"
	case AttrConvention:
		return "@convention(" + a.Convention.String() + ")"
	default:
		return fmt.Sprintf("@attr(%d)", a.Kind)
	}
}

// normalizeAttrs sorts attributes lexicographically by their rendered text
// and drops duplicates, producing the canonical set representation stored in
// FnInfo. The attribute domain is a set; this is its one stored order.
func normalizeAttrs(attrs []Attr) []Attr {
	if len(attrs) == 0 {
		return nil
	}
	out := slices.Clone(attrs)
	slices.SortFunc(out, func(a, b Attr) int {
		return strings.Compare(a.String(), b.String())
	})
	out = slices.CompactFunc(out, func(a, b Attr) bool {
		return a == b
	})
	return out
}

// UnionAttrs returns the canonical union of two attribute sets.
func UnionAttrs(a, b []Attr) []Attr {
	if len(a) == 0 {
		return normalizeAttrs(b)
	}
	if len(b) == 0 {
		return normalizeAttrs(a)
	}
	merged := make([]Attr, 0, len(a)+len(b))
	merged = append(merged, a...)
	merged = append(merged, b...)
	return normalizeAttrs(merged)
}
