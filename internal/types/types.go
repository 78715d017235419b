// Package types implements the type-expression algebra: an interned,
// immutable representation of nominal, tuple, function, and optionality
// types, plus the structural operations the expander and merger build on.
package types

import "fmt"

// TypeID uniquely identifies a type expression inside the interner.
type TypeID uint32

// NoTypeID marks the absence of a type.
const NoTypeID TypeID = 0

// Kind enumerates all supported kinds of type expressions.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindNominal
	KindTuple
	KindFn
	KindOptional
	KindImplicitlyUnwrapped
	KindUnspecified
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindNominal:
		return "nominal"
	case KindTuple:
		return "tuple"
	case KindFn:
		return "function"
	case KindOptional:
		return "optional"
	case KindImplicitlyUnwrapped:
		return "implicitly-unwrapped"
	case KindUnspecified:
		return "unspecified"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// IsWrapper reports whether the kind adds one optionality layer around an
// inner expression.
func (k Kind) IsWrapper() bool {
	switch k {
	case KindOptional, KindImplicitlyUnwrapped, KindUnspecified:
		return true
	default:
		return false
	}
}

// Type is a compact descriptor for any type expression. Wrapper kinds use
// Elem; nominal, tuple, and function kinds use Payload as an index into the
// interner's side tables.
type Type struct {
	Kind    Kind
	Elem    TypeID
	Payload uint32
}
