package rng

import "testing"

func TestSameSeedSameSequence(t *testing.T) {
	a := New(99)
	b := New(99)
	for i := 0; i < 1000; i++ {
		if a.Roll() != b.Roll() {
			t.Fatalf("sequences diverged at draw %d", i)
		}
	}
}

func TestReseedRestartsSequence(t *testing.T) {
	s := New(5)
	first := s.Roll()
	s.Roll()
	s.Roll()
	s.Reseed(5)
	if got := s.Roll(); got != first {
		t.Errorf("after Reseed first draw = %v, want %v", got, first)
	}
}

func TestZeroSeedRemapped(t *testing.T) {
	if got := New(0).Seed(); got != 1 {
		t.Errorf("Seed() = %d, want 1", got)
	}
	a := New(0)
	b := New(1)
	if a.Roll() != b.Roll() {
		t.Error("seed 0 and seed 1 should produce the same sequence")
	}
}

func TestChanceDegenerateCasesConsumeNoRoll(t *testing.T) {
	s := New(7)
	ref := New(7)

	if s.Chance(0) {
		t.Error("Chance(0) should fail")
	}
	if s.Chance(-0.5) {
		t.Error("Chance(-0.5) should fail")
	}
	if !s.Chance(1) {
		t.Error("Chance(1) should succeed")
	}
	if !s.Chance(1.5) {
		t.Error("Chance(1.5) should succeed")
	}
	if s.Roll() != ref.Roll() {
		t.Error("degenerate Chance calls consumed a roll")
	}
}

func TestIntBetweenBounds(t *testing.T) {
	s := New(3)
	for i := 0; i < 1000; i++ {
		got := s.IntBetween(2, 5)
		if got < 2 || got > 5 {
			t.Fatalf("IntBetween(2,5) = %d", got)
		}
	}
	if got := s.IntBetween(4, 4); got != 4 {
		t.Errorf("IntBetween(4,4) = %d", got)
	}
	// Swapped bounds are tolerated.
	if got := s.IntBetween(5, 2); got < 2 || got > 5 {
		t.Errorf("IntBetween(5,2) = %d", got)
	}
}

func TestChoiceIndexPanicsOnEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("ChoiceIndex(0) should panic")
		}
	}()
	New(1).ChoiceIndex(0)
}
