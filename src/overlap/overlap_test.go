package overlap

import "testing"

func TestMinOverlapLength(t *testing.T) {
	m := Match{
		CoordA: Interval{Start: 10, End: 59}, // 50
		CoordB: Interval{Start: 0, End: 49},  // 50
	}
	if got := m.MinOverlapLength(); got != 50 {
		t.Errorf("expected 50, got %d", got)
	}
}

func TestIsContainment(t *testing.T) {
	// read B is entirely covered by the alignment
	o := Overlap{
		IDs: [2]string{"A", "B"},
		Match: Match{
			CoordA:  Interval{Start: 0, End: 29},
			CoordB:  Interval{Start: 0, End: 29},
			LengthA: 100,
			LengthB: 30,
		},
	}
	if !o.IsContainment() {
		t.Fatalf("expected containment")
	}
	idx, ok := o.ContainedIdx()
	if !ok || idx != 1 {
		t.Errorf("expected contained idx 1, got %d (ok=%v)", idx, ok)
	}
}

func TestIsNotContainment(t *testing.T) {
	o := Overlap{
		Match: Match{
			CoordA:  Interval{Start: 50, End: 99},
			CoordB:  Interval{Start: 0, End: 49},
			LengthA: 100,
			LengthB: 100,
		},
	}
	if o.IsContainment() {
		t.Fatalf("did not expect containment")
	}
}

func TestFlip(t *testing.T) {
	o := Overlap{
		IDs: [2]string{"A", "B"},
		Match: Match{
			CoordA:  Interval{Start: 50, End: 99},
			CoordB:  Interval{Start: 0, End: 49},
			LengthA: 100,
			LengthB: 50,
		},
	}
	f := o.Flip()
	if f.IDs[0] != "B" || f.IDs[1] != "A" {
		t.Errorf("flip did not swap IDs: %+v", f.IDs)
	}
	if f.Match.CoordA != o.Match.CoordB || f.Match.CoordB != o.Match.CoordA {
		t.Errorf("flip did not swap coordinates")
	}
}
