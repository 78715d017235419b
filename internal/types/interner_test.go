package types

import (
	"testing"

	"typeweld/internal/seq"
)

func TestInternerBuiltins(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()
	if b.Void == NoTypeID {
		t.Fatalf("builtins not initialized")
	}
	void, _ := in.Lookup(b.Void)
	if void.Kind != KindTuple {
		t.Fatalf("expected tuple kind for void, got %v", void.Kind)
	}
	if !in.IsVoid(b.Void) {
		t.Fatalf("void builtin not reported as void")
	}
}

func TestNominalDeduplicates(t *testing.T) {
	in := NewInterner()
	a := in.RegisterNominal("Int")
	b := in.RegisterNominal("Int")
	if a != b {
		t.Fatalf("plain nominals should be deduplicated")
	}
	if in.RegisterNominal("String") == a {
		t.Fatalf("distinct names must differ")
	}
}

func TestGenericIdentityIncludesArguments(t *testing.T) {
	in := NewInterner()
	intID := in.RegisterNominal("Int")
	strID := in.RegisterNominal("String")
	arrInt1 := in.RegisterGeneric("Array", seq.One(intID))
	arrInt2 := in.RegisterGeneric("Array", seq.One(intID))
	arrStr := in.RegisterGeneric("Array", seq.One(strID))
	if arrInt1 != arrInt2 {
		t.Fatalf("identical generics should be deduplicated")
	}
	if arrInt1 == arrStr {
		t.Fatalf("generics with different arguments must differ")
	}
	plain := in.RegisterNominal("Array")
	if plain == arrInt1 {
		t.Fatalf("plain nominal and generic of same name must differ")
	}
}

func TestTupleDeduplicates(t *testing.T) {
	in := NewInterner()
	intID := in.RegisterNominal("Int")
	strID := in.RegisterNominal("String")
	t1 := in.RegisterTuple(seq.Two(intID, strID))
	t2 := in.RegisterTuple(seq.Two(intID, strID))
	t3 := in.RegisterTuple(seq.Two(strID, intID))
	if t1 != t2 {
		t.Fatalf("identical tuples should be deduplicated")
	}
	if t1 == t3 {
		t.Fatalf("tuple element order is significant")
	}
}

func TestFnAttributeSetOrderIndependent(t *testing.T) {
	in := NewInterner()
	param := in.RegisterNominal("Int")
	f1 := in.RegisterFn([]TypeID{param}, in.Void(), []Attr{Escaping(), Autoclosure()})
	f2 := in.RegisterFn([]TypeID{param}, in.Void(), []Attr{Autoclosure(), Escaping()})
	if f1 != f2 {
		t.Fatalf("attribute sets must compare order-independently")
	}
	f3 := in.RegisterFn([]TypeID{param}, in.Void(), []Attr{Autoclosure()})
	if f1 == f3 {
		t.Fatalf("different attribute sets must differ")
	}
}

func TestWrapperKindsAreDistinct(t *testing.T) {
	in := NewInterner()
	base := in.RegisterNominal("Int")
	opt := in.RegisterOptional(base)
	iuo := in.RegisterImplicitlyUnwrapped(base)
	unspec := in.RegisterUnspecified(base)
	if opt == iuo || opt == unspec || iuo == unspec {
		t.Fatalf("wrapper kinds must produce distinct expressions")
	}
	if in.RegisterOptional(base) != opt {
		t.Fatalf("wrappers should be deduplicated")
	}
	// Nesting is preserved, never collapsed.
	optOpt := in.RegisterOptional(opt)
	if optOpt == opt {
		t.Fatalf("optional-of-optional must not collapse")
	}
}

func TestTooFewElementsFailAtConstruction(t *testing.T) {
	if _, err := seq.TwoFromSlice([]TypeID{1}); err == nil {
		t.Fatalf("tuple element list below minimum must fail")
	}
	if _, err := seq.OneFromSlice([]TypeID(nil)); err == nil {
		t.Fatalf("empty generic argument list must fail")
	}
}
