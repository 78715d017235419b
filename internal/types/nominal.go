package types

import (
	"fmt"
	"slices"

	"fortio.org/safecast"

	"typeweld/internal/seq"
)

// NominalInfo stores metadata for a named type. Args is nil for a plain
// type name and holds one or more type arguments for a generic.
type NominalInfo struct {
	Name string
	Args []TypeID
}

// IsGeneric reports whether the nominal carries type arguments.
func (n NominalInfo) IsGeneric() bool {
	return len(n.Args) > 0
}

// RegisterNominal creates or finds a plain named type.
func (in *Interner) RegisterNominal(name string) TypeID {
	return in.registerNominal(name, nil)
}

// RegisterGeneric creates or finds a generic named type. The argument list
// carries its at-least-one invariant from construction.
func (in *Interner) RegisterGeneric(name string, args seq.AtLeastOne[TypeID]) TypeID {
	return in.registerNominal(name, args.Slice())
}

func (in *Interner) registerNominal(name string, args []TypeID) TypeID {
	if id, ok := in.findNominal(name, args); ok {
		return id
	}
	slot := in.appendNominalInfo(NominalInfo{Name: name, Args: args})
	return in.internRaw(Type{Kind: KindNominal, Payload: slot})
}

func (in *Interner) findNominal(name string, args []TypeID) (TypeID, bool) {
	for id := TypeID(1); int(id) < len(in.types); id++ {
		tt := in.types[id]
		if tt.Kind != KindNominal {
			continue
		}
		info := in.nominals[tt.Payload]
		if info.Name == name && slices.Equal(info.Args, args) {
			return id, true
		}
	}
	return NoTypeID, false
}

// NominalInfo retrieves nominal metadata by TypeID.
func (in *Interner) NominalInfo(id TypeID) (*NominalInfo, bool) {
	tt, ok := in.Lookup(id)
	if !ok || tt.Kind != KindNominal {
		return nil, false
	}
	if int(tt.Payload) >= len(in.nominals) {
		return nil, false
	}
	return &in.nominals[tt.Payload], true
}

func (in *Interner) appendNominalInfo(info NominalInfo) uint32 {
	in.nominals = append(in.nominals, NominalInfo{
		Name: info.Name,
		Args: cloneTypeArgs(info.Args),
	})
	slot, err := safecast.Conv[uint32](len(in.nominals) - 1)
	if err != nil {
		panic(fmt.Errorf("nominal info overflow: %w", err))
	}
	return slot
}

func cloneTypeArgs(args []TypeID) []TypeID {
	if len(args) == 0 {
		return nil
	}
	return slices.Clone(args)
}
