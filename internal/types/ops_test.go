package types

import (
	"testing"

	"typeweld/internal/seq"
)

func TestDeepUnwrapIdempotent(t *testing.T) {
	in := NewInterner()
	base := in.RegisterNominal("Int")
	wrapped := in.RegisterOptional(in.RegisterImplicitlyUnwrapped(in.RegisterUnspecified(base)))
	once := in.DeepUnwrap(wrapped)
	if once != base {
		t.Fatalf("expected base after deep unwrap, got %s", in.Label(once))
	}
	if in.DeepUnwrap(once) != once {
		t.Fatalf("deep unwrap must be idempotent")
	}
	if in.DeepUnwrap(base) != base {
		t.Fatalf("deep unwrap of non-wrapper must be identity")
	}
}

func TestUnwrapOnceStripsSingleLayer(t *testing.T) {
	in := NewInterner()
	base := in.RegisterNominal("Int")
	opt := in.RegisterOptional(base)
	if in.UnwrapOnce(opt) != base {
		t.Fatalf("unwrap once should strip one layer")
	}
	if in.UnwrapOnce(base) != base {
		t.Fatalf("unwrap once of non-wrapper must be identity")
	}
}

func TestWrappingOtherReproducesWrapperKinds(t *testing.T) {
	in := NewInterner()
	intID := in.RegisterNominal("Int")
	strID := in.RegisterNominal("String")
	self := in.RegisterOptional(in.RegisterImplicitlyUnwrapped(intID))
	got := in.WrappingOther(self, strID)
	want := in.RegisterOptional(in.RegisterImplicitlyUnwrapped(strID))
	if got != want {
		t.Fatalf("expected %s, got %s", in.Label(want), in.Label(got))
	}
}

func TestWrappingOtherNonWrapperDiscardsSelf(t *testing.T) {
	in := NewInterner()
	intID := in.RegisterNominal("Int")
	strID := in.RegisterNominal("String")
	if in.WrappingOther(intID, strID) != strID {
		t.Fatalf("non-wrapper self must yield other unchanged")
	}
}

func TestWithSameOptionalityAs(t *testing.T) {
	in := NewInterner()
	intID := in.RegisterNominal("Int")
	strID := in.RegisterNominal("String")
	self := in.RegisterUnspecified(strID)
	ref := in.RegisterOptional(intID)
	got := in.WithSameOptionalityAs(self, ref)
	want := in.RegisterOptional(strID)
	if got != want {
		t.Fatalf("expected %s, got %s", in.Label(want), in.Label(got))
	}
}

func TestMapTransformsLeavesOnly(t *testing.T) {
	in := NewInterner()
	intID := in.RegisterNominal("Int")
	fn := in.RegisterOptional(in.RegisterFn([]TypeID{in.RegisterUnspecified(intID)}, intID, nil))
	var seen []Kind
	got, err := in.Map(fn, func(id TypeID) (TypeID, error) {
		seen = append(seen, in.MustLookup(id).Kind)
		return in.RegisterNominal("X"), nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, k := range seen {
		if k.IsWrapper() || k == KindFn {
			t.Fatalf("transform must only see non-wrapper non-function nodes, saw %v", k)
		}
	}
	x := in.RegisterNominal("X")
	want := in.RegisterOptional(in.RegisterFn([]TypeID{in.RegisterUnspecified(x)}, x, nil))
	if got != want {
		t.Fatalf("expected %s, got %s", in.Label(want), in.Label(got))
	}
}

func TestMapDoesNotDescendIntoGenericArguments(t *testing.T) {
	in := NewInterner()
	intID := in.RegisterNominal("Int")
	arr := in.RegisterGeneric("Array", seq.One(intID))
	got, err := in.Map(arr, func(id TypeID) (TypeID, error) {
		if id != arr {
			t.Fatalf("transform should receive the generic node itself")
		}
		return id, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != arr {
		t.Fatalf("identity transform must preserve the expression")
	}
}

func TestAsNonnullDeepStripsEverything(t *testing.T) {
	in := NewInterner()
	intID := in.RegisterNominal("Int")
	param := in.RegisterOptional(intID)
	ret := in.RegisterImplicitlyUnwrapped(intID)
	fn := in.RegisterUnspecified(in.RegisterFn([]TypeID{param}, ret, nil))
	got := in.AsNonnullDeep(fn, false)
	want := in.RegisterFn([]TypeID{intID}, intID, nil)
	if got != want {
		t.Fatalf("expected %s, got %s", in.Label(want), in.Label(got))
	}
}

func TestAsNonnullDeepUnspecifiedOnly(t *testing.T) {
	in := NewInterner()
	intID := in.RegisterNominal("Int")
	optParam := in.RegisterOptional(intID)
	unspecParam := in.RegisterUnspecified(intID)
	fn := in.RegisterUnspecified(in.RegisterFn([]TypeID{optParam, unspecParam}, intID, nil))
	got := in.AsNonnullDeep(fn, true)
	// Deliberate optionals survive; unspecified markers are stripped.
	want := in.RegisterFn([]TypeID{optParam, intID}, intID, nil)
	if got != want {
		t.Fatalf("expected %s, got %s", in.Label(want), in.Label(got))
	}
	// A non-unspecified outer wrapper is left alone entirely.
	optFn := in.RegisterOptional(in.RegisterFn([]TypeID{unspecParam}, intID, nil))
	if in.AsNonnullDeep(optFn, true) != optFn {
		t.Fatalf("optional outer layer must block the unspecified-only strip")
	}
}
