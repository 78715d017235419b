package types

import (
	"fmt"

	"fortio.org/safecast"
)

// Builtins stores TypeIDs for expressions every session needs.
type Builtins struct {
	Invalid TypeID
	Void    TypeID
}

// Interner provides stable TypeIDs for type expressions. Interning is
// canonical: every constructor dedups, so two structurally equal expressions
// always receive the same TypeID and equality degrades to an integer
// comparison. Descriptors and payload tables are append-only; nothing is
// mutated after registration.
type Interner struct {
	types    []Type
	index    map[typeKey]TypeID
	builtins Builtins
	nominals []NominalInfo
	tuples   []TupleInfo
	fns      []FnInfo
}

// NewInterner constructs an interner seeded with the built-in expressions.
func NewInterner() *Interner {
	in := &Interner{
		index: make(map[typeKey]TypeID, 32),
	}
	in.builtins.Invalid = in.internRaw(Type{Kind: KindInvalid})
	// The empty tuple is the canonical void type; it owns tuple slot 0.
	in.tuples = append(in.tuples, TupleInfo{})
	in.builtins.Void = in.internRaw(Type{Kind: KindTuple, Payload: 0})
	return in
}

// Builtins returns TypeIDs for built-in expressions.
func (in *Interner) Builtins() Builtins {
	return in.builtins
}

// Void returns the empty tuple, the canonical void type.
func (in *Interner) Void() TypeID {
	return in.builtins.Void
}

// Lookup returns the descriptor for a TypeID.
func (in *Interner) Lookup(id TypeID) (Type, bool) {
	if id == NoTypeID || int(id) >= len(in.types) {
		return Type{}, false
	}
	return in.types[id], true
}

// MustLookup panics when id is invalid.
func (in *Interner) MustLookup(id TypeID) Type {
	tt, ok := in.Lookup(id)
	if !ok {
		panic("types: invalid TypeID")
	}
	return tt
}

// RegisterOptional wraps inner in a single optional layer.
func (in *Interner) RegisterOptional(inner TypeID) TypeID {
	return in.internWrapper(KindOptional, inner)
}

// RegisterImplicitlyUnwrapped wraps inner in a single implicitly-unwrapped
// optional layer.
func (in *Interner) RegisterImplicitlyUnwrapped(inner TypeID) TypeID {
	return in.internWrapper(KindImplicitlyUnwrapped, inner)
}

// RegisterUnspecified wraps inner in a single nullability-unspecified layer.
func (in *Interner) RegisterUnspecified(inner TypeID) TypeID {
	return in.internWrapper(KindUnspecified, inner)
}

// RegisterWrapper wraps inner in a single layer of the given wrapper kind.
func (in *Interner) RegisterWrapper(kind Kind, inner TypeID) TypeID {
	if !kind.IsWrapper() {
		panic(fmt.Sprintf("types: %v is not a wrapper kind", kind))
	}
	return in.internWrapper(kind, inner)
}

func (in *Interner) internWrapper(kind Kind, inner TypeID) TypeID {
	t := Type{Kind: kind, Elem: inner}
	key := typeKey(t)
	if id, ok := in.index[key]; ok {
		return id
	}
	return in.internRaw(t)
}

// internRaw adds the descriptor to the storage without consulting the map.
func (in *Interner) internRaw(t Type) TypeID {
	lenTypes, err := safecast.Conv[uint32](len(in.types))
	if err != nil {
		panic(fmt.Errorf("len(types) overflow: %w", err))
	}
	id := TypeID(lenTypes)
	in.types = append(in.types, t)
	in.index[typeKey(t)] = id
	return id
}

type typeKey struct {
	Kind    Kind
	Elem    TypeID
	Payload uint32
}
