package types

import (
	"fmt"
	"slices"

	"fortio.org/safecast"

	"typeweld/internal/seq"
)

// TupleInfo stores the element types for a tuple type. Elems is empty only
// for the void tuple in slot 0; every registered tuple has at least two.
type TupleInfo struct {
	Elems []TypeID
}

// RegisterTuple creates or finds a tuple type. The element list carries its
// at-least-two invariant from construction; a one-element tuple is not
// representable and degenerates to its element at the caller.
func (in *Interner) RegisterTuple(elems seq.AtLeastTwo[TypeID]) TypeID {
	items := elems.Slice()
	if id, ok := in.findTuple(items); ok {
		return id
	}
	slot := in.appendTupleInfo(TupleInfo{Elems: items})
	return in.internRaw(Type{Kind: KindTuple, Payload: slot})
}

func (in *Interner) findTuple(elems []TypeID) (TypeID, bool) {
	for id := TypeID(1); int(id) < len(in.types); id++ {
		tt := in.types[id]
		if tt.Kind != KindTuple {
			continue
		}
		if slices.Equal(in.tuples[tt.Payload].Elems, elems) {
			return id, true
		}
	}
	return NoTypeID, false
}

// TupleInfo returns the element types for a tuple TypeID.
func (in *Interner) TupleInfo(id TypeID) (*TupleInfo, bool) {
	tt, ok := in.Lookup(id)
	if !ok || tt.Kind != KindTuple {
		return nil, false
	}
	if int(tt.Payload) >= len(in.tuples) {
		return nil, false
	}
	return &in.tuples[tt.Payload], true
}

// IsVoid reports whether id is the empty tuple.
func (in *Interner) IsVoid(id TypeID) bool {
	return id == in.builtins.Void
}

func (in *Interner) appendTupleInfo(info TupleInfo) uint32 {
	in.tuples = append(in.tuples, TupleInfo{
		Elems: cloneTypeArgs(info.Elems),
	})
	slot, err := safecast.Conv[uint32](len(in.tuples) - 1)
	if err != nil {
		panic(fmt.Errorf("tuple info overflow: %w", err))
	}
	return slot
}
