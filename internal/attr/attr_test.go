package attr

import "testing"

func TestColorPair_DefaultReserved(t *testing.T) {
	// red on black must not collide with the reserved default pair 0.
	if p := ColorPair(1, 0); p == 0 {
		t.Errorf("ColorPair(1,0) = 0, want nonzero (red on black must not collide with default pair)")
	}
}

func TestColorPair_SGRCompound(t *testing.T) {
	// ESC[1;31;44m -> fg=red(1), bg=blue(4); pair = ((1+1) mod 8)*8 + 4 = 20.
	if p := ColorPair(1, 4); p != 20 {
		t.Errorf("ColorPair(1,4) = %d, want 20", p)
	}
}

func TestColorPair_FGRotation(t *testing.T) {
	cases := []struct {
		fg, bg, want int
	}{
		{0, 0, 8},
		{7, 0, 0}, // fg=7 (default-mapped), bg=0 -> reserved pair
		{7, 3, 3},
	}
	for _, c := range cases {
		if got := ColorPair(c.fg, c.bg); got != c.want {
			t.Errorf("ColorPair(%d,%d) = %d, want %d", c.fg, c.bg, got, c.want)
		}
	}
}

func TestEnumeratePairs_CountAndUniqueness(t *testing.T) {
	pairs := EnumeratePairs()
	if len(pairs) != NumPairs {
		t.Fatalf("EnumeratePairs() returned %d entries, want %d", len(pairs), NumPairs)
	}
	seen := make(map[int]bool, len(pairs))
	for _, p := range pairs {
		if p.Pair == 0 {
			t.Errorf("EnumeratePairs() yielded reserved pair 0")
		}
		if seen[p.Pair] {
			t.Errorf("EnumeratePairs() yielded duplicate pair %d", p.Pair)
		}
		seen[p.Pair] = true
	}
}

func TestMask_WithPairRoundTrips(t *testing.T) {
	m := Bold.WithPair(20)
	if m.Pair() != 20 {
		t.Fatalf("Pair() = %d, want 20", m.Pair())
	}
	if m&Bold == 0 {
		t.Fatalf("WithPair() cleared unrelated attribute bits")
	}
	m = m.WithPair(5)
	if m.Pair() != 5 || m&Bold == 0 {
		t.Fatalf("WithPair() second call = %v, want Pair=5 with Bold preserved", m)
	}
}

func TestMask_On(t *testing.T) {
	m := Mask(0)
	m = m.On(Bold)
	m = m.On(Underline)
	if m&Bold == 0 || m&Underline == 0 {
		t.Errorf("On() = %v, want Bold|Underline set", m)
	}
	if m&Reverse != 0 {
		t.Errorf("On() set unexpected bit Reverse in %v", m)
	}
}
