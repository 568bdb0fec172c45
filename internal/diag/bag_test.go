package diag

import "testing"

func rec(path string, offset uint32, rule string) Record {
	return Record{Path: path, Offset: offset, RuleID: rule, Severity: SevWarning}
}

func TestBagCap(t *testing.T) {
	b := NewBag(2)
	if !b.Add(rec("a.sg", 0, "r1")) {
		t.Fatal("first add must succeed")
	}
	if !b.Add(rec("a.sg", 1, "r2")) {
		t.Fatal("second add must succeed")
	}
	if b.Add(rec("a.sg", 2, "r3")) {
		t.Fatal("add past cap must fail")
	}
	if b.Len() != 2 {
		t.Errorf("expected 2 items, got %d", b.Len())
	}
	if b.Dropped() != 1 {
		t.Errorf("expected 1 dropped, got %d", b.Dropped())
	}
}

func TestBagSortCanonicalOrder(t *testing.T) {
	b := NewBag(16)
	b.Add(rec("b.sg", 5, "zz-rule"))
	b.Add(rec("a.sg", 9, "mm-rule"))
	b.Add(rec("a.sg", 2, "zz-rule"))
	b.Add(rec("a.sg", 2, "aa-rule"))
	b.Sort()

	want := []struct {
		path   string
		offset uint32
		rule   string
	}{
		{"a.sg", 2, "aa-rule"},
		{"a.sg", 2, "zz-rule"},
		{"a.sg", 9, "mm-rule"},
		{"b.sg", 5, "zz-rule"},
	}
	items := b.Items()
	if len(items) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(items))
	}
	for i, w := range want {
		got := items[i]
		if got.Path != w.path || got.Offset != w.offset || got.RuleID != w.rule {
			t.Errorf("position %d: expected %s:%d %s, got %s:%d %s",
				i, w.path, w.offset, w.rule, got.Path, got.Offset, got.RuleID)
		}
	}
}

func TestBagMergeGrowsCap(t *testing.T) {
	a := NewBag(2)
	a.Add(rec("a.sg", 0, "r1"))
	a.Add(rec("a.sg", 1, "r2"))

	b := NewBag(2)
	b.Add(rec("b.sg", 0, "r1"))
	b.Add(rec("b.sg", 1, "r2"))

	a.Merge(b)
	if a.Len() != 4 {
		t.Fatalf("expected 4 items after merge, got %d", a.Len())
	}
	if a.Cap() < 4 {
		t.Errorf("cap must grow to fit merged items, got %d", a.Cap())
	}
}

func TestBagHasErrors(t *testing.T) {
	b := NewBag(8)
	b.Add(Record{Path: "a.sg", RuleID: "r", Severity: SevWarning})
	if b.HasErrors() {
		t.Error("warnings alone must not count as errors")
	}
	b.Add(Record{Path: "a.sg", RuleID: "r", Severity: SevError})
	if !b.HasErrors() {
		t.Error("expected HasErrors after adding an error record")
	}
}
