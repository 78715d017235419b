package types

// Structural operations over interned type expressions. All of them are pure:
// each returns a (possibly newly interned) TypeID and never mutates an
// existing node.

// UnwrapOnce strips a single optionality layer. Non-wrapper expressions are
// returned unchanged.
func (in *Interner) UnwrapOnce(id TypeID) TypeID {
	tt, ok := in.Lookup(id)
	if !ok || !tt.Kind.IsWrapper() {
		return id
	}
	return tt.Elem
}

// DeepUnwrap strips all consecutive outer optionality layers down to the
// first non-wrapper expression. Terminates because each step strictly
// reduces structural depth.
func (in *Interner) DeepUnwrap(id TypeID) TypeID {
	for {
		next := in.UnwrapOnce(id)
		if next == id {
			return id
		}
		id = next
	}
}

// IsUnspecified reports whether the outermost variant is the
// nullability-unspecified wrapper.
func (in *Interner) IsUnspecified(id TypeID) bool {
	tt, ok := in.Lookup(id)
	return ok && tt.Kind == KindUnspecified
}

// WrappingOther reproduces self's exact chain of wrapper kinds around other.
// When self is not a wrapper the chain is empty and other is returned as-is,
// discarding self's non-optional shape.
func (in *Interner) WrappingOther(self, other TypeID) TypeID {
	tt, ok := in.Lookup(self)
	if !ok || !tt.Kind.IsWrapper() {
		return other
	}
	return in.internWrapper(tt.Kind, in.WrappingOther(tt.Elem, other))
}

// WithSameOptionalityAs rebuilds self's base shape under ref's optionality
// chain.
func (in *Interner) WithSameOptionalityAs(self, ref TypeID) TypeID {
	return in.WrappingOther(ref, in.DeepUnwrap(self))
}

// Map rewrites the expression bottom-up: wrapper inners and a function's
// result and parameter types are mapped recursively and the wrapper or
// function node is rebuilt around them; every other node (nominal, tuple) is
// handed to transform after that reconstruction. Wrapper and function nodes
// themselves are never passed to transform, which lets a transform rewrite
// nominal leaves without special-casing the surrounding structure.
func (in *Interner) Map(id TypeID, transform func(TypeID) (TypeID, error)) (TypeID, error) {
	tt, ok := in.Lookup(id)
	if !ok {
		return id, nil
	}
	switch {
	case tt.Kind.IsWrapper():
		inner, err := in.Map(tt.Elem, transform)
		if err != nil {
			return NoTypeID, err
		}
		return in.internWrapper(tt.Kind, inner), nil
	case tt.Kind == KindFn:
		info := in.fns[tt.Payload]
		result, err := in.Map(info.Result, transform)
		if err != nil {
			return NoTypeID, err
		}
		params := make([]TypeID, len(info.Params))
		for i, p := range info.Params {
			params[i], err = in.Map(p, transform)
			if err != nil {
				return NoTypeID, err
			}
		}
		return in.RegisterFn(params, result, info.Attrs), nil
	default:
		return transform(id)
	}
}

// AsNonnullDeep strips optionality. With unspecifiedOnly false, all outer
// wrapper layers are removed; with it true, only a single outermost
// nullability-unspecified layer is, leaving deliberate optionals intact.
// Function result and parameter types are recursed with the same rule so two
// signatures can be compared modulo the chosen markers.
func (in *Interner) AsNonnullDeep(id TypeID, unspecifiedOnly bool) TypeID {
	if unspecifiedOnly {
		if in.IsUnspecified(id) {
			id = in.UnwrapOnce(id)
		}
	} else {
		id = in.DeepUnwrap(id)
	}
	tt, ok := in.Lookup(id)
	if !ok || tt.Kind != KindFn {
		return id
	}
	info := in.fns[tt.Payload]
	result := in.AsNonnullDeep(info.Result, unspecifiedOnly)
	params := make([]TypeID, len(info.Params))
	for i, p := range info.Params {
		params[i] = in.AsNonnullDeep(p, unspecifiedOnly)
	}
	return in.RegisterFn(params, result, info.Attrs)
}
