package bitset

import "testing"

func TestAllocateFillsLowestFirst(t *testing.T) {
	s := New(4)
	for i := uint32(0); i < 4; i++ {
		idx, ok := s.Allocate()
		if !ok || idx != i {
			t.Fatalf("expected index %d, got %d (ok=%v)", i, idx, ok)
		}
	}
	if _, ok := s.Allocate(); ok {
		t.Fatalf("expected allocation to fail once full")
	}
}

func TestReleaseThenReallocate(t *testing.T) {
	s := New(8)
	a, _ := s.Allocate()
	b, _ := s.Allocate()
	s.Release(a)
	c, ok := s.Allocate()
	if !ok || c != a {
		t.Fatalf("expected freed slot %d to be reused, got %d", a, c)
	}
	_ = b
}

func TestAllocateFreeNTimesPreservesFreeCount(t *testing.T) {
	s := New(1024)
	initialFree := s.Free()
	for i := 0; i < 100; i++ {
		idx, ok := s.Allocate()
		if !ok {
			t.Fatalf("unexpected allocation failure at iteration %d", i)
		}
		s.Release(idx)
	}
	if s.Free() != initialFree {
		t.Fatalf("expected free count unchanged, got %d want %d", s.Free(), initialFree)
	}
}

func TestReleaseUnsetIsNoop(t *testing.T) {
	s := New(16)
	before := s.Count()
	s.Release(5)
	if s.Count() != before {
		t.Fatalf("releasing a free slot changed count")
	}
}

func TestCrossesWordBoundary(t *testing.T) {
	s := New(130)
	for i := uint32(0); i < 130; i++ {
		idx, ok := s.Allocate()
		if !ok || idx != i {
			t.Fatalf("expected %d got %d ok=%v", i, idx, ok)
		}
	}
	if _, ok := s.Allocate(); ok {
		t.Fatalf("expected full set to reject allocation")
	}
}
