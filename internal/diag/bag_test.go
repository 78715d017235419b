package diag

import "testing"

func TestBagRespectsLimit(t *testing.T) {
	b := NewBag(2)
	if !b.Add(NewError(ManifestBadKind, "a", "x")) {
		t.Fatalf("first add should succeed")
	}
	if !b.Add(NewError(ManifestBadKind, "b", "x")) {
		t.Fatalf("second add should succeed")
	}
	if b.Add(NewError(ManifestBadKind, "c", "x")) {
		t.Fatalf("add beyond limit should be dropped")
	}
	if b.Len() != 2 {
		t.Fatalf("expected 2 items, got %d", b.Len())
	}
}

func TestBagHasErrors(t *testing.T) {
	b := NewBag(4)
	b.Add(New(SevWarning, ManifestInfo, "a", "warn"))
	if b.HasErrors() {
		t.Fatalf("warnings must not count as errors")
	}
	b.Add(NewError(ExpandCycle, "b", "cycle"))
	if !b.HasErrors() {
		t.Fatalf("expected errors after adding one")
	}
}

func TestBagSortAndDedup(t *testing.T) {
	b := NewBag(8)
	b.Add(NewError(MergeFailed, "pair.z", "boom"))
	b.Add(NewError(ManifestBadKind, "pair.a", "bad"))
	b.Add(NewError(ManifestBadKind, "pair.a", "bad again"))
	b.Sort()
	b.Dedup()
	items := b.Items()
	if len(items) != 2 {
		t.Fatalf("expected dedup to 2 items, got %d", len(items))
	}
	if items[0].Subject != "pair.a" || items[1].Subject != "pair.z" {
		t.Fatalf("unexpected order: %v", items)
	}
}

func TestCodeString(t *testing.T) {
	if ManifestBadKind.String() != "MAN1002" {
		t.Fatalf("unexpected code string: %s", ManifestBadKind.String())
	}
	if ExpandCycle.String() != "EXP2001" {
		t.Fatalf("unexpected code string: %s", ExpandCycle.String())
	}
	if MergeFailed.String() != "MRG3001" {
		t.Fatalf("unexpected code string: %s", MergeFailed.String())
	}
}
