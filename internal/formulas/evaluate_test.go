package formulas

import (
	"math"
	"testing"
)

func TestEvaluateNoMatchingModsReturnsBase(t *testing.T) {
	mods := []Modifier{
		{Stat: "attack", Tag: TagBase, Value: 50},
		{Stat: "attack", Tag: TagInc, Value: 10},
	}
	got := Evaluate("hp", 1200, mods, NoMin, NoMax)
	if got != 1200 {
		t.Fatalf("Evaluate(hp) = %v, want base 1200 untouched", got)
	}
}

func TestEvaluatePipelineOrder(t *testing.T) {
	// (100 + 50) * (1 + (10+20)/100) * (1 + 50/100) * (1 - 20/100)
	mods := []Modifier{
		{Stat: "attack", Tag: TagBase, Value: 50},
		{Stat: "attack", Tag: TagInc, Value: 10},
		{Stat: "attack", Tag: TagInc, Value: 20},
		{Stat: "attack", Tag: TagMore, Value: 50},
		{Stat: "attack", Tag: TagLess, Value: 20},
	}
	got := Evaluate("attack", 100, mods, NoMin, NoMax)
	want := 150 * 1.3 * 1.5 * 0.8
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("Evaluate(attack) = %v, want %v", got, want)
	}
}

func TestEvaluateLessNormalization(t *testing.T) {
	pos := Evaluate("mhr", 100, []Modifier{{Stat: "mhr", Tag: TagLess, Value: 30}}, NoMin, NoMax)
	neg := Evaluate("mhr", 100, []Modifier{{Stat: "mhr", Tag: TagLess, Value: -30}}, NoMin, NoMax)
	if pos != neg {
		t.Fatalf("less +30 gave %v, less -30 gave %v; both must mean 30%% less", pos, neg)
	}
	if math.Abs(pos-70) > 1e-9 {
		t.Fatalf("30%% less of 100 = %v, want 70", pos)
	}
}

func TestEvaluateSkipsSpecialAndUnknownTags(t *testing.T) {
	mods := []Modifier{
		{Stat: "attack", Tag: TagSpecial, Value: 999},
		{Stat: "attack", Tag: Tag("proc"), Value: 999},
	}
	if got := Evaluate("attack", 100, mods, NoMin, NoMax); got != 100 {
		t.Fatalf("Evaluate with only special/unknown tags = %v, want 100", got)
	}
}

func TestEvaluateClamps(t *testing.T) {
	mods := []Modifier{{Stat: "ap_gain", Tag: TagLess, Value: 200}}
	if got := Evaluate("ap_gain", 100, mods, 0, NoMax); got != 0 {
		t.Fatalf("clamped Evaluate = %v, want 0", got)
	}
	if got := Evaluate("crit_chance", 80, []Modifier{{Stat: "crit_chance", Tag: TagBase, Value: 80}}, 0, 100); got != 100 {
		t.Fatalf("clamped Evaluate = %v, want 100", got)
	}
}

func TestModifierValidate(t *testing.T) {
	tests := []struct {
		name    string
		mod     Modifier
		wantErr bool
	}{
		{"valid base", Modifier{Stat: "hp", Tag: TagBase, Value: 10}, false},
		{"empty stat", Modifier{Tag: TagBase, Value: 10}, true},
		{"nan value", Modifier{Stat: "hp", Tag: TagBase, Value: math.NaN()}, true},
		{"inf value", Modifier{Stat: "hp", Tag: TagInc, Value: math.Inf(1)}, true},
		{"unknown tag accepted", Modifier{Stat: "hp", Tag: Tag("future"), Value: 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.mod.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
