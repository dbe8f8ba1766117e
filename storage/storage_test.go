package storage

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func setup(t *testing.T) func() {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	return teardown
}

func roundTrip(t *testing.T, s Storage, n int) {
	t.Helper()
	h, err := s.Alloc()
	if err != nil {
		t.Fatal(err)
	}
	if !h.IsValid() {
		t.Fatalf("Alloc returned invalid handle %d", h)
	}
	for i := 0; i < n; i++ {
		if err := s.Append(h, uint32(i*7)); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}
	if s.Len(h) != n {
		t.Errorf("Len = %d, want %d", s.Len(h), n)
	}
	i := 0
	err = s.Each(h, func(w uint32) error {
		if w != uint32(i*7) {
			t.Fatalf("word %d read back as %d", i, w)
		}
		i++
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if i != n {
		t.Errorf("walked %d words, want %d", i, n)
	}
	s.Free(h)
}

func TestArenaRoundTrip(t *testing.T) {
	teardown := setup(t)
	defer teardown()
	//
	roundTrip(t, NewArena(0), 5)
	roundTrip(t, NewArena(0), 3*blockWords+17) // spans several blocks
}

func TestArenaExhaustion(t *testing.T) {
	teardown := setup(t)
	defer teardown()
	//
	a := NewArena(1)
	h, err := a.Alloc()
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < blockWords; i++ {
		if err := a.Append(h, 1); err != nil {
			t.Fatalf("append within budget failed: %v", err)
		}
	}
	if err := a.Append(h, 1); err != ErrExhausted {
		t.Errorf("expected ErrExhausted past the budget, got %v", err)
	}
	a.Free(h)
	if _, err := a.Alloc(); err != nil {
		t.Errorf("freed blocks not reusable: %v", err)
	}
}

func TestSpillRoundTrip(t *testing.T) {
	teardown := setup(t)
	defer teardown()
	//
	s, err := NewSpill(t.TempDir(), 16)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	roundTrip(t, s, 5)
	roundTrip(t, s, 3*blockWords+17)
}

func TestSpillInterleavedBuffers(t *testing.T) {
	teardown := setup(t)
	defer teardown()
	//
	s, err := NewSpill(t.TempDir(), 16)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	h1, _ := s.Alloc()
	h2, _ := s.Alloc()
	for i := 0; i < 2*blockWords; i++ {
		if err := s.Append(h1, uint32(i)); err != nil {
			t.Fatal(err)
		}
		if err := s.Append(h2, uint32(1000+i)); err != nil {
			t.Fatal(err)
		}
	}
	check := func(h Handle, base int) {
		i := 0
		err := s.Each(h, func(w uint32) error {
			if w != uint32(base+i) {
				t.Fatalf("handle %d word %d is %d", h, i, w)
			}
			i++
			return nil
		})
		if err != nil {
			t.Fatal(err)
		}
	}
	check(h1, 0)
	check(h2, 1000)
}

func TestSpillExhaustion(t *testing.T) {
	teardown := setup(t)
	defer teardown()
	//
	s, err := NewSpill(t.TempDir(), 2)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	h, _ := s.Alloc() // block 1 of 2
	for i := 0; i < blockWords; i++ {
		if err := s.Append(h, 1); err != nil {
			t.Fatal(err)
		}
	}
	for i := 0; i < blockWords; i++ { // block 2 of 2
		if err := s.Append(h, 1); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.Append(h, 1); err != ErrExhausted {
		t.Errorf("expected ErrExhausted, got %v", err)
	}
	s.Free(h)
	if _, err := s.Alloc(); err != nil {
		t.Errorf("freed chain not reusable: %v", err)
	}
}

func TestBadHandle(t *testing.T) {
	teardown := setup(t)
	defer teardown()
	//
	a := NewArena(0)
	if err := a.Append(Handle(42), 1); err != ErrBadHandle {
		t.Errorf("expected ErrBadHandle, got %v", err)
	}
	if err := a.Each(Handle(42), func(uint32) error { return nil }); err != ErrBadHandle {
		t.Errorf("expected ErrBadHandle, got %v", err)
	}
}
