package core

import "testing"

func TestFullDomainCoversOneToN(t *testing.T) {
	d := FullDomain(4)
	for v := 1; v <= 4; v++ {
		if !d.Contains(v) {
			t.Fatalf("expected %d in full domain", v)
		}
	}
	if d.Contains(0) || d.Contains(5) {
		t.Fatalf("full domain should not contain 0 or n+1")
	}
	if d.Count() != 4 {
		t.Fatalf("expected count 4, got %d", d.Count())
	}
}

func TestInsertRemoveNeverTouchBitZero(t *testing.T) {
	d := EmptyDomain().Insert(0).Insert(-1)
	if d != 0 {
		t.Fatalf("inserting out-of-range values should be a no-op, got %v", d)
	}
	full := FullDomain(4)
	if got := full.Remove(0).Remove(-1); got != full {
		t.Fatalf("removing out-of-range values should be a no-op, got %v", got)
	}
}

func TestMinMax(t *testing.T) {
	d := EmptyDomain().Insert(3).Insert(7).Insert(2)
	if d.Min() != 2 {
		t.Fatalf("expected min 2, got %d", d.Min())
	}
	if d.Max() != 7 {
		t.Fatalf("expected max 7, got %d", d.Max())
	}
	if EmptyDomain().Min() != 0 || EmptyDomain().Max() != 0 {
		t.Fatalf("empty domain min/max should be 0")
	}
}

func TestAndOrXorComplement(t *testing.T) {
	a := EmptyDomain().Insert(1).Insert(2).Insert(3)
	b := EmptyDomain().Insert(2).Insert(3).Insert(4)

	if got := a.And(b); got != EmptyDomain().Insert(2).Insert(3) {
		t.Fatalf("And mismatch: %v", got.Values())
	}
	if got := a.Or(b); got != EmptyDomain().Insert(1).Insert(2).Insert(3).Insert(4) {
		t.Fatalf("Or mismatch: %v", got.Values())
	}
	if got := a.Xor(b); got != EmptyDomain().Insert(1).Insert(4) {
		t.Fatalf("Xor mismatch: %v", got.Values())
	}
	if got := a.Complement(4); got != EmptyDomain().Insert(4) {
		t.Fatalf("Complement mismatch: %v", got.Values())
	}
}

func TestValuesAscending(t *testing.T) {
	d := EmptyDomain().Insert(5).Insert(1).Insert(3)
	vals := d.Values()
	want := []int{1, 3, 5}
	if len(vals) != len(want) {
		t.Fatalf("expected %v, got %v", want, vals)
	}
	for i := range want {
		if vals[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, vals)
		}
	}
}

func TestOnly(t *testing.T) {
	d := EmptyDomain().Insert(5)
	if !d.Only(5) {
		t.Fatalf("expected Only(5) to hold")
	}
	if d.Only(4) {
		t.Fatalf("did not expect Only(4) to hold")
	}
}
