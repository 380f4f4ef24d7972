package examcfg

import "testing"

// Ranges must tile [1..TotalQuestions] without gaps or overlap for every
// configured layout.
func TestRanges_ContiguousForAllLayouts(t *testing.T) {
	for _, l := range All() {
		t.Run(l.ID, func(t *testing.T) {
			ranges := Ranges(l)
			if len(ranges) != len(l.Subjects) {
				t.Fatalf("got %d ranges for %d subjects", len(ranges), len(l.Subjects))
			}
			next := 1
			total := 0
			for i, r := range ranges {
				if r.Start != next {
					t.Errorf("range %d starts at %d, want %d", i, r.Start, next)
				}
				if r.End < r.Start {
					t.Errorf("range %d is empty: [%d,%d]", i, r.Start, r.End)
				}
				total += r.End - r.Start + 1
				next = r.End + 1
			}
			if total != l.TotalQuestions {
				t.Errorf("ranges cover %d questions, layout declares %d", total, l.TotalQuestions)
			}
		})
	}
}

func TestRanges_KnownBounds(t *testing.T) {
	l, ok := Lookup("SSC_CGL_MAINS")
	if !ok {
		t.Fatal("SSC_CGL_MAINS missing from catalog")
	}
	ranges := Ranges(l)
	want := []struct {
		part       string
		start, end int
		qualifying bool
	}{
		{"A", 1, 30, false},
		{"B", 31, 60, false},
		{"C", 61, 105, false},
		{"D", 106, 130, false},
		{"E", 131, 150, true},
	}
	if len(ranges) != len(want) {
		t.Fatalf("got %d ranges, want %d", len(ranges), len(want))
	}
	for i, w := range want {
		r := ranges[i]
		if r.Part != w.part || r.Start != w.start || r.End != w.end || r.Qualifying != w.qualifying {
			t.Errorf("range %d = {%s %d %d q=%v}, want {%s %d %d q=%v}",
				i, r.Part, r.Start, r.End, r.Qualifying, w.part, w.start, w.end, w.qualifying)
		}
	}
}

func TestLookup_UnknownID(t *testing.T) {
	if _, ok := Lookup("SSC_DOES_NOT_EXIST"); ok {
		t.Fatal("unknown id must report !ok, not a zero layout")
	}
}

func TestDefault(t *testing.T) {
	d := Default()
	if d.ID != DefaultLayoutID {
		t.Fatalf("Default() = %q, want %q", d.ID, DefaultLayoutID)
	}
	if len(d.Subjects) == 0 {
		t.Fatal("default layout has no subjects")
	}
}

func TestByCategory(t *testing.T) {
	for _, c := range Categories() {
		if len(ByCategory(c.ID)) == 0 {
			t.Errorf("category %s has no layouts", c.ID)
		}
	}
	if got := ByCategory("NOPE"); got != nil {
		t.Errorf("unknown category returned %d layouts", len(got))
	}
}
