package types

import (
	"testing"

	"typeweld/internal/seq"
)

func TestLabelCanonicalForms(t *testing.T) {
	in := NewInterner()
	intID := in.RegisterNominal("Int")
	strID := in.RegisterNominal("String")

	cases := []struct {
		name string
		id   TypeID
		want string
	}{
		{"plain nominal", intID, "Int"},
		{"generic", in.RegisterGeneric("Dictionary", seq.One(strID, intID)), "Dictionary<String, Int>"},
		{"void", in.Void(), "Void"},
		{"tuple", in.RegisterTuple(seq.Two(intID, strID)), "(Int, String)"},
		{"optional", in.RegisterOptional(intID), "Int?"},
		{"implicitly unwrapped", in.RegisterImplicitlyUnwrapped(intID), "Int!"},
		{"unspecified", in.RegisterUnspecified(intID), "Int!"},
		{"nested optionality", in.RegisterOptional(in.RegisterImplicitlyUnwrapped(intID)), "Int!?"},
		{
			"bare function",
			in.RegisterFn(nil, in.Void(), nil),
			"() -> Void",
		},
		{
			"function with attributes",
			in.RegisterFn([]TypeID{in.RegisterNominal("NSURLRequest")}, in.Void(), []Attr{Autoclosure()}),
			"@autoclosure (NSURLRequest) -> Void",
		},
		{
			"attributes sort lexicographically",
			in.RegisterFn([]TypeID{intID}, strID, []Attr{Escaping(), ConventionAttr(ConventionBlock), Autoclosure()}),
			"@autoclosure @convention(block) @escaping (Int) -> String",
		},
		{
			"convention c",
			in.RegisterFn([]TypeID{intID, intID}, intID, []Attr{ConventionAttr(ConventionC)}),
			"@convention(c) (Int, Int) -> Int",
		},
	}
	for _, tc := range cases {
		if got := in.Label(tc.id); got != tc.want {
			t.Fatalf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
}

func TestAttrStringForms(t *testing.T) {
	if Autoclosure().String() != "@autoclosure" {
		t.Fatalf("autoclosure render mismatch")
	}
	if Escaping().String() != "@escaping" {
		t.Fatalf("escaping render mismatch")
	}
	if ConventionAttr(ConventionBlock).String() != "@convention(block)" {
		t.Fatalf("convention(block) render mismatch")
	}
	if ConventionAttr(ConventionC).String() != "@convention(c)" {
		t.Fatalf("convention(c) render mismatch")
	}
}

func TestUnionAttrs(t *testing.T) {
	got := UnionAttrs([]Attr{Autoclosure()}, []Attr{Escaping(), Autoclosure()})
	if len(got) != 2 || got[0] != Autoclosure() || got[1] != Escaping() {
		t.Fatalf("unexpected union: %v", got)
	}
}
