// Package wire provides a portable binary encoding of type expressions so
// reconciled types can be handed to downstream generators without sharing an
// interner. The payload is msgpack with a schema-versioned envelope.
package wire

import (
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"typeweld/internal/seq"
	"typeweld/internal/types"
)

// Current schema version - increment when the Node format changes.
const schemaVersion uint16 = 1

// ErrSchemaMismatch reports a payload written by an incompatible version.
var ErrSchemaMismatch = errors.New("wire: schema version mismatch")

type envelope struct {
	Schema uint16 `msgpack:"schema"`
	Root   *node  `msgpack:"root"`
}

// node is the self-contained tree form of one type expression.
type node struct {
	Kind   uint8    `msgpack:"kind"`
	Name   string   `msgpack:"name,omitempty"`
	Args   []*node  `msgpack:"args,omitempty"`
	Elems  []*node  `msgpack:"elems,omitempty"`
	Params []*node  `msgpack:"params,omitempty"`
	Result *node    `msgpack:"result,omitempty"`
	Attrs  []string `msgpack:"attrs,omitempty"`
	Inner  *node    `msgpack:"inner,omitempty"`
}

const (
	nodeNominal uint8 = iota + 1
	nodeTuple
	nodeFn
	nodeOptional
	nodeImplicitlyUnwrapped
	nodeUnspecified
)

// Encode serializes the expression identified by id.
func Encode(in *types.Interner, id types.TypeID) ([]byte, error) {
	root, err := toNode(in, id)
	if err != nil {
		return nil, err
	}
	data, err := msgpack.Marshal(envelope{Schema: schemaVersion, Root: root})
	if err != nil {
		return nil, fmt.Errorf("wire: encode: %w", err)
	}
	return data, nil
}

// Decode rebuilds an expression onto the given interner.
func Decode(in *types.Interner, data []byte) (types.TypeID, error) {
	var env envelope
	if err := msgpack.Unmarshal(data, &env); err != nil {
		return types.NoTypeID, fmt.Errorf("wire: decode: %w", err)
	}
	if env.Schema != schemaVersion {
		return types.NoTypeID, fmt.Errorf("%w: got %d, want %d", ErrSchemaMismatch, env.Schema, schemaVersion)
	}
	if env.Root == nil {
		return types.NoTypeID, errors.New("wire: empty payload")
	}
	return fromNode(in, env.Root)
}

func toNode(in *types.Interner, id types.TypeID) (*node, error) {
	tt, ok := in.Lookup(id)
	if !ok {
		return nil, fmt.Errorf("wire: invalid TypeID %d", id)
	}
	switch tt.Kind {
	case types.KindNominal:
		info, _ := in.NominalInfo(id)
		n := &node{Kind: nodeNominal, Name: info.Name}
		for _, arg := range info.Args {
			child, err := toNode(in, arg)
			if err != nil {
				return nil, err
			}
			n.Args = append(n.Args, child)
		}
		return n, nil
	case types.KindTuple:
		info, _ := in.TupleInfo(id)
		n := &node{Kind: nodeTuple}
		for _, elem := range info.Elems {
			child, err := toNode(in, elem)
			if err != nil {
				return nil, err
			}
			n.Elems = append(n.Elems, child)
		}
		return n, nil
	case types.KindFn:
		info, _ := in.FnInfo(id)
		result, err := toNode(in, info.Result)
		if err != nil {
			return nil, err
		}
		n := &node{Kind: nodeFn, Result: result}
		for _, p := range info.Params {
			child, err := toNode(in, p)
			if err != nil {
				return nil, err
			}
			n.Params = append(n.Params, child)
		}
		for _, attr := range info.Attrs {
			n.Attrs = append(n.Attrs, attr.String())
		}
		return n, nil
	case types.KindOptional, types.KindImplicitlyUnwrapped, types.KindUnspecified:
		inner, err := toNode(in, tt.Elem)
		if err != nil {
			return nil, err
		}
		kind := nodeOptional
		switch tt.Kind {
		case types.KindImplicitlyUnwrapped:
			kind = nodeImplicitlyUnwrapped
		case types.KindUnspecified:
			kind = nodeUnspecified
		}
		return &node{Kind: kind, Inner: inner}, nil
	default:
		return nil, fmt.Errorf("wire: cannot encode kind %v", tt.Kind)
	}
}

func fromNode(in *types.Interner, n *node) (types.TypeID, error) {
	switch n.Kind {
	case nodeNominal:
		if n.Name == "" {
			return types.NoTypeID, errors.New("wire: nominal node without name")
		}
		if len(n.Args) == 0 {
			return in.RegisterNominal(n.Name), nil
		}
		ids, err := fromNodes(in, n.Args)
		if err != nil {
			return types.NoTypeID, err
		}
		args, err := seq.OneFromSlice(ids)
		if err != nil {
			return types.NoTypeID, fmt.Errorf("wire: %w", err)
		}
		return in.RegisterGeneric(n.Name, args), nil
	case nodeTuple:
		if len(n.Elems) == 0 {
			return in.Void(), nil
		}
		ids, err := fromNodes(in, n.Elems)
		if err != nil {
			return types.NoTypeID, err
		}
		elems, err := seq.TwoFromSlice(ids)
		if err != nil {
			return types.NoTypeID, fmt.Errorf("wire: %w", err)
		}
		return in.RegisterTuple(elems), nil
	case nodeFn:
		if n.Result == nil {
			return types.NoTypeID, errors.New("wire: function node without result")
		}
		result, err := fromNode(in, n.Result)
		if err != nil {
			return types.NoTypeID, err
		}
		params, err := fromNodes(in, n.Params)
		if err != nil {
			return types.NoTypeID, err
		}
		attrs := make([]types.Attr, 0, len(n.Attrs))
		for _, raw := range n.Attrs {
			attr, ok := parseAttr(raw)
			if !ok {
				return types.NoTypeID, fmt.Errorf("wire: unknown attribute %q", raw)
			}
			attrs = append(attrs, attr)
		}
		return in.RegisterFn(params, result, attrs), nil
	case nodeOptional, nodeImplicitlyUnwrapped, nodeUnspecified:
		if n.Inner == nil {
			return types.NoTypeID, errors.New("wire: wrapper node without inner")
		}
		inner, err := fromNode(in, n.Inner)
		if err != nil {
			return types.NoTypeID, err
		}
		switch n.Kind {
		case nodeOptional:
			return in.RegisterOptional(inner), nil
		case nodeImplicitlyUnwrapped:
			return in.RegisterImplicitlyUnwrapped(inner), nil
		default:
			return in.RegisterUnspecified(inner), nil
		}
	default:
		return types.NoTypeID, fmt.Errorf("wire: unknown node kind %d", n.Kind)
	}
}

func fromNodes(in *types.Interner, nodes []*node) ([]types.TypeID, error) {
	ids := make([]types.TypeID, 0, len(nodes))
	for _, n := range nodes {
		id, err := fromNode(in, n)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func parseAttr(raw string) (types.Attr, bool) {
	switch raw {
	case "@autoclosure":
		return types.Autoclosure(), true
	case "@escaping":
		return types.Escaping(), true
	case "@convention(block)":
		return types.ConventionAttr(types.ConventionBlock), true
	case "@convention(c)":
		return types.ConventionAttr(types.ConventionC), true
	default:
		return types.Attr{}, false
	}
}
