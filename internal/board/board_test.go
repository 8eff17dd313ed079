package board

import "testing"

func TestCellKeyRoundTrip(t *testing.T) {
	for x := 0; x < 50; x++ {
		for y := 0; y < 50; y++ {
			key := CellKey(x, y)
			dx, dy := DecodeKey(key)
			if dx != x || dy != y {
				t.Fatalf("roundtrip mismatch: got (%d,%d), want (%d,%d)", dx, dy, x, y)
			}
		}
	}
}

func TestGridGetSet(t *testing.T) {
	g := NewGrid(10, 8)
	g.Set(3, 5, 7)
	if g.Get(3, 5) != 7 {
		t.Fatalf("got %d, want 7", g.Get(3, 5))
	}
	if g.Get(0, 0) != 0 {
		t.Fatalf("got %d, want 0", g.Get(0, 0))
	}
}

func TestNeighborCacheCounts(t *testing.T) {
	nc := NewNeighborCache(5, 5)
	if n := len(nc.Get(0, 0)); n != 3 {
		t.Fatalf("corner: got %d neighbors, want 3", n)
	}
	if n := len(nc.Get(0, 2)); n != 5 {
		t.Fatalf("edge: got %d neighbors, want 5", n)
	}
	if n := len(nc.Get(2, 2)); n != 8 {
		t.Fatalf("center: got %d neighbors, want 8", n)
	}
}

func TestNeighborCacheInBoundsAndAdjacent(t *testing.T) {
	nc := NewNeighborCache(10, 10)
	for _, c := range nc.Get(5, 5) {
		if c.X < 0 || c.X >= 10 || c.Y < 0 || c.Y >= 10 {
			t.Fatalf("out of bounds neighbor: %+v", c)
		}
		dx, dy := c.X-5, c.Y-5
		if dx < -1 || dx > 1 || dy < -1 || dy > 1 {
			t.Fatalf("not chebyshev-1: %+v", c)
		}
		if dx == 0 && dy == 0 {
			t.Fatalf("neighbor cache returned self")
		}
	}
}

func TestMinesCount(t *testing.T) {
	m := NewMines(5, 5)
	m.Set(0, 0, true)
	m.Set(2, 3, true)
	m.Set(4, 4, true)
	if m.Count() != 3 {
		t.Fatalf("got %d, want 3", m.Count())
	}
}

func TestFlagsCountTracksSet(t *testing.T) {
	f := NewFlags(4, 4)
	f.Set(0, 0, true)
	f.Set(1, 1, true)
	if f.Count() != 2 {
		t.Fatalf("got %d, want 2", f.Count())
	}
	f.Set(0, 0, false)
	if f.Count() != 1 {
		t.Fatalf("got %d, want 1", f.Count())
	}
	// Setting the same value twice must not double-count.
	f.Set(1, 1, true)
	if f.Count() != 1 {
		t.Fatalf("got %d, want 1 (idempotent set)", f.Count())
	}
}

func TestVisibleHiddenDefault(t *testing.T) {
	v := NewVisible(3, 3)
	if !v.IsHidden(1, 1) {
		t.Fatalf("expected fresh grid to be hidden")
	}
	v.Set(1, 1, 0)
	if v.IsHidden(1, 1) {
		t.Fatalf("expected revealed cell to not be hidden")
	}
	if v.RevealedCount() != 1 {
		t.Fatalf("got %d, want 1", v.RevealedCount())
	}
}

func TestWithin(t *testing.T) {
	if !Within(2, 2, 4, 4, 2) {
		t.Fatalf("expected (4,4) within chebyshev 2 of (2,2)")
	}
	if Within(2, 2, 5, 2, 2) {
		t.Fatalf("expected (5,2) outside chebyshev 2 of (2,2)")
	}
}
