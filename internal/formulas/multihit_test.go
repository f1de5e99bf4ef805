package formulas

import (
	"math"
	"testing"

	"github.com/grimward/arena9/internal/rng"
)

func TestExtraHitsIntegerPartGuaranteed(t *testing.T) {
	r := rng.New(7)
	for i := 0; i < 100; i++ {
		if got := ExtraHits(300, r); got != 3 {
			t.Fatalf("ExtraHits(300) = %d, want exactly 3", got)
		}
	}
}

func TestExtraHitsNonPositive(t *testing.T) {
	r := rng.New(7)
	before := r.Roll()
	_ = before
	r.Reseed(7)
	if got := ExtraHits(0, r); got != 0 {
		t.Fatalf("ExtraHits(0) = %d, want 0", got)
	}
	if got := ExtraHits(-50, r); got != 0 {
		t.Fatalf("ExtraHits(-50) = %d, want 0", got)
	}
	// no rolls were consumed above
	if got := r.Roll(); got != before {
		t.Fatalf("non-positive MHR consumed a roll: %v != %v", got, before)
	}
}

// countingRoller counts draws so tests can pin the per-action roll budget.
type countingRoller struct {
	n int
}

func (c *countingRoller) Roll() float64 {
	c.n++
	return 0.5
}

func TestExtraHitsDrawCountDependsOnRatingOnly(t *testing.T) {
	tests := []struct {
		mhr       float64
		wantRolls int
	}{
		{0, 0},
		{-50, 0},
		{100, 0},
		{300, 0},
		{150, 1},
		{250, 1},
	}
	for _, tt := range tests {
		r := &countingRoller{}
		ExtraHits(tt.mhr, r)
		if r.n != tt.wantRolls {
			t.Errorf("ExtraHits(%v) consumed %d rolls, want %d", tt.mhr, r.n, tt.wantRolls)
		}
	}
}

func TestExtraHitsConvergesToExpectation(t *testing.T) {
	const (
		mhr    = 250.0
		draws  = 100_000
		expect = 2.5
	)
	r := rng.New(12345)
	sum := 0
	for i := 0; i < draws; i++ {
		n := ExtraHits(mhr, r)
		if n != 2 && n != 3 {
			t.Fatalf("ExtraHits(250) = %d, want 2 or 3", n)
		}
		sum += n
	}
	mean := float64(sum) / draws
	if math.Abs(mean-expect) > 0.01 {
		t.Fatalf("mean extra hits over %d draws = %v, want %v +/- 0.01", draws, mean, expect)
	}
}

func TestTotalHits(t *testing.T) {
	r := rng.New(1)
	if got := TotalHits(0, r); got != 1 {
		t.Fatalf("TotalHits(0) = %d, want 1 (main hit always lands)", got)
	}
	if got := TotalHits(200, r); got != 3 {
		t.Fatalf("TotalHits(200) = %d, want 3", got)
	}
}

func TestAPGain(t *testing.T) {
	tests := []struct {
		name string
		mods []Modifier
		want int
	}{
		{"no mods", nil, 100},
		{"sword flat penalty", []Modifier{{Stat: StatAPGain, Tag: TagBase, Value: -20}}, 80},
		{"gun more", []Modifier{{Stat: StatAPGain, Tag: TagMore, Value: 35}}, 135},
		{"axe less", []Modifier{{Stat: StatAPGain, Tag: TagLess, Value: 30}}, 70},
		{"floor at zero", []Modifier{{Stat: StatAPGain, Tag: TagBase, Value: -500}}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := APGain(tt.mods); got != tt.want {
				t.Fatalf("APGain = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDeriveAttributes(t *testing.T) {
	d := DeriveAttributes(40, 60, 20, 30, 1012)
	if d.Attack != 40 {
		t.Errorf("Attack = %v, want 40", d.Attack)
	}
	if d.MultiHit != 3 {
		t.Errorf("MultiHit = %v, want 3", d.MultiHit)
	}
	if d.MP != 2000 {
		t.Errorf("MP = %v, want 2000", d.MP)
	}
	if d.MR != 20 {
		t.Errorf("MR = %v, want 20", d.MR)
	}
	if d.HP != 1500 {
		t.Errorf("HP = %v, want 1500", d.HP)
	}
	want := 20 * 1012 * 0.000005125
	if math.Abs(d.SpellPower-want) > 1e-12 {
		t.Errorf("SpellPower = %v, want %v", d.SpellPower, want)
	}
}
