package life

import "testing"

func checkBalanced(t *testing.T, s Snapshot) {
	t.Helper()
	if s.Live+s.Dead != s.Total {
		t.Fatalf("live %d + dead %d != total %d", s.Live, s.Dead, s.Total)
	}
}

func TestStatsInitial(t *testing.T) {
	s := NewStats(12).Snapshot()
	if s.Total != 12 || s.Live != 0 || s.Dead != 12 {
		t.Fatalf("unexpected initial stats %+v", s)
	}
	if s.Elapsed.Kind != MarkerUnset || s.Elapsed.String() != "-" {
		t.Fatalf("initial marker = %+v (%q), want unset", s.Elapsed, s.Elapsed.String())
	}
}

func TestStatsToggleMarksManual(t *testing.T) {
	st := NewStats(9)
	st.OnToggle(true)
	st.OnToggle(true)
	st.OnToggle(false)
	s := st.Snapshot()
	checkBalanced(t, s)
	if s.Live != 1 {
		t.Fatalf("live = %d, want 1", s.Live)
	}
	if s.Elapsed.Kind != MarkerManual {
		t.Fatalf("marker kind = %v, want manual", s.Elapsed.Kind)
	}
	if s.Elapsed.String() != "-" {
		t.Fatalf("manual marker renders %q, want -", s.Elapsed.String())
	}
}

func TestStatsGenerationApplied(t *testing.T) {
	st := NewStats(25)
	for i := 0; i < 3; i++ {
		st.OnToggle(true)
	}
	st.OnGenerationApplied(2, 2, 4)
	s := st.Snapshot()
	checkBalanced(t, s)
	if s.Live != 3 {
		t.Fatalf("live = %d, want 3", s.Live)
	}
	if s.Elapsed != (TimeMarker{Kind: MarkerElapsed, Seconds: 4}) || s.Elapsed.String() != "4" {
		t.Fatalf("marker = %+v, want elapsed 4", s.Elapsed)
	}

	st.OnGenerationApplied(0, 3, 7)
	s = st.Snapshot()
	checkBalanced(t, s)
	if s.Live != 0 || s.Elapsed.Seconds != 7 {
		t.Fatalf("after die-off: %+v", s)
	}
}

func TestStatsReset(t *testing.T) {
	st := NewStats(4)
	st.OnToggle(true)
	st.OnGenerationApplied(1, 0, 2)
	st.Reset()
	if got, want := st.Snapshot(), NewStats(4).Snapshot(); got != want {
		t.Fatalf("Reset = %+v, want %+v", got, want)
	}
}
