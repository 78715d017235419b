package manifest

import (
	"fmt"
	"sort"

	"typeweld/internal/alias"
	"typeweld/internal/diag"
	"typeweld/internal/seq"
	"typeweld/internal/types"
)

// Built is a document materialized onto an interner.
type Built struct {
	Table alias.Table
	Types map[string]types.TypeID
	Pairs []BuiltPair
}

// BuiltPair is one reconciliation job.
type BuiltPair struct {
	Name   string
	First  types.TypeID
	Second types.TypeID
}

// Build materializes every alias, named type, and pair of the document.
// Defects are reported individually so one pass surfaces all of them; the
// second return is false when any entry failed to build.
func Build(in *types.Interner, doc *Document, r diag.Reporter) (*Built, bool) {
	out := &Built{
		Table: make(alias.Table, len(doc.Aliases)),
		Types: make(map[string]types.TypeID, len(doc.Types)),
	}
	ok := true

	for _, name := range sortedKeys(doc.Aliases) {
		spec := doc.Aliases[name]
		id, built := buildType(in, &spec, "aliases."+name, r)
		if !built {
			ok = false
			continue
		}
		out.Table[name] = id
	}
	for _, name := range sortedKeys(doc.Types) {
		spec := doc.Types[name]
		id, built := buildType(in, &spec, "types."+name, r)
		if !built {
			ok = false
			continue
		}
		out.Types[name] = id
	}

	seen := make(map[string]bool, len(doc.Pairs))
	for i := range doc.Pairs {
		p := &doc.Pairs[i]
		name := p.Name
		if name == "" {
			name = fmt.Sprintf("pair[%d]", i)
		}
		subject := "pair." + name
		if seen[name] {
			r.Report(diag.NewError(diag.ManifestDuplicate, subject, "duplicate pair name"))
			ok = false
			continue
		}
		seen[name] = true
		first, builtFirst := buildType(in, &p.First, subject+".first", r)
		second, builtSecond := buildType(in, &p.Second, subject+".second", r)
		if !builtFirst || !builtSecond {
			ok = false
			continue
		}
		out.Pairs = append(out.Pairs, BuiltPair{Name: name, First: first, Second: second})
	}
	return out, ok
}

func buildType(in *types.Interner, spec *TypeSpec, subject string, r diag.Reporter) (types.TypeID, bool) {
	switch spec.Kind {
	case "nominal":
		return buildNominal(in, spec, subject, r)
	case "void":
		return in.Void(), true
	case "tuple":
		return buildTuple(in, spec, subject, r)
	case "function":
		return buildFn(in, spec, subject, r)
	case "optional", "iuo", "unspecified":
		return buildWrapper(in, spec, subject, r)
	case "":
		r.Report(diag.NewError(diag.ManifestBadKind, subject, "missing kind"))
		return types.NoTypeID, false
	default:
		r.Report(diag.NewError(diag.ManifestBadKind, subject, fmt.Sprintf("unknown kind %q", spec.Kind)))
		return types.NoTypeID, false
	}
}

func buildNominal(in *types.Interner, spec *TypeSpec, subject string, r diag.Reporter) (types.TypeID, bool) {
	if spec.Name == "" {
		r.Report(diag.NewError(diag.ManifestMissingName, subject, "nominal type needs a name"))
		return types.NoTypeID, false
	}
	if len(spec.Args) == 0 {
		return in.RegisterNominal(spec.Name), true
	}
	ids, ok := buildList(in, spec.Args, subject+".args", r)
	if !ok {
		return types.NoTypeID, false
	}
	args, err := seq.OneFromSlice(ids)
	if err != nil {
		r.Report(diag.NewError(diag.ManifestTooFewElems, subject, err.Error()))
		return types.NoTypeID, false
	}
	return in.RegisterGeneric(spec.Name, args), true
}

func buildTuple(in *types.Interner, spec *TypeSpec, subject string, r diag.Reporter) (types.TypeID, bool) {
	ids, ok := buildList(in, spec.Elems, subject+".elems", r)
	if !ok {
		return types.NoTypeID, false
	}
	elems, err := seq.TwoFromSlice(ids)
	if err != nil {
		r.Report(diag.NewError(diag.ManifestTooFewElems, subject,
			fmt.Sprintf("tuple needs at least 2 elements (use kind \"void\" for the empty tuple): %v", err)))
		return types.NoTypeID, false
	}
	return in.RegisterTuple(elems), true
}

func buildFn(in *types.Interner, spec *TypeSpec, subject string, r diag.Reporter) (types.TypeID, bool) {
	if spec.Result == nil {
		r.Report(diag.NewError(diag.ManifestMissingPart, subject, "function needs a result"))
		return types.NoTypeID, false
	}
	result, ok := buildType(in, spec.Result, subject+".result", r)
	if !ok {
		return types.NoTypeID, false
	}
	params, ok := buildList(in, spec.Params, subject+".params", r)
	if !ok {
		return types.NoTypeID, false
	}
	attrs := make([]types.Attr, 0, len(spec.Attrs))
	for _, raw := range spec.Attrs {
		attr, ok := parseAttr(raw)
		if !ok {
			r.Report(diag.NewError(diag.ManifestBadAttr, subject, fmt.Sprintf("unknown attribute %q", raw)))
			return types.NoTypeID, false
		}
		attrs = append(attrs, attr)
	}
	return in.RegisterFn(params, result, attrs), true
}

func buildWrapper(in *types.Interner, spec *TypeSpec, subject string, r diag.Reporter) (types.TypeID, bool) {
	if spec.Inner == nil {
		r.Report(diag.NewError(diag.ManifestMissingPart, subject, spec.Kind+" needs an inner type"))
		return types.NoTypeID, false
	}
	inner, ok := buildType(in, spec.Inner, subject+".inner", r)
	if !ok {
		return types.NoTypeID, false
	}
	switch spec.Kind {
	case "optional":
		return in.RegisterOptional(inner), true
	case "iuo":
		return in.RegisterImplicitlyUnwrapped(inner), true
	default:
		return in.RegisterUnspecified(inner), true
	}
}

func buildList(in *types.Interner, specs []TypeSpec, subject string, r diag.Reporter) ([]types.TypeID, bool) {
	ids := make([]types.TypeID, 0, len(specs))
	ok := true
	for i := range specs {
		id, built := buildType(in, &specs[i], fmt.Sprintf("%s[%d]", subject, i), r)
		if !built {
			ok = false
			continue
		}
		ids = append(ids, id)
	}
	if !ok {
		return nil, false
	}
	return ids, true
}

func parseAttr(raw string) (types.Attr, bool) {
	switch raw {
	case "autoclosure":
		return types.Autoclosure(), true
	case "escaping":
		return types.Escaping(), true
	case "convention(block)":
		return types.ConventionAttr(types.ConventionBlock), true
	case "convention(c)":
		return types.ConventionAttr(types.ConventionC), true
	default:
		return types.Attr{}, false
	}
}

func sortedKeys(m map[string]TypeSpec) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
