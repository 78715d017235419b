package types

import "strings"

// Label renders the canonical string form of a type expression:
//
//	Name, Name<A, B>, Void, (A, B), @attr... (A, B) -> R, T?, T!
//
// Diagnostics and external reporting rely on this form byte-for-byte.
// Implicitly-unwrapped and nullability-unspecified layers both render as "!"
// while remaining distinct structurally.
func (in *Interner) Label(id TypeID) string {
	tt, ok := in.Lookup(id)
	if !ok {
		return "invalid"
	}
	switch tt.Kind {
	case KindNominal:
		info := in.nominals[tt.Payload]
		if !info.IsGeneric() {
			return info.Name
		}
		return info.Name + "<" + in.joinLabels(info.Args) + ">"
	case KindTuple:
		info := in.tuples[tt.Payload]
		if len(info.Elems) == 0 {
			return "Void"
		}
		return "(" + in.joinLabels(info.Elems) + ")"
	case KindFn:
		info := in.fns[tt.Payload]
		var sb strings.Builder
		for i, attr := range info.Attrs {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(attr.String())
		}
		if len(info.Attrs) > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte('(')
		sb.WriteString(in.joinLabels(info.Params))
		sb.WriteString(") -> ")
		sb.WriteString(in.Label(info.Result))
		return sb.String()
	case KindOptional:
		return in.Label(tt.Elem) + "?"
	case KindImplicitlyUnwrapped, KindUnspecified:
		return in.Label(tt.Elem) + "!"
	default:
		return tt.Kind.String()
	}
}

func (in *Interner) joinLabels(ids []TypeID) string {
	labels := make([]string, 0, len(ids))
	for _, id := range ids {
		labels = append(labels, in.Label(id))
	}
	return strings.Join(labels, ", ")
}
