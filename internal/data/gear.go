package data

import (
	"fmt"

	"github.com/grimward/arena9/internal/formulas"
)

// GearSlot names an equipment slot.
type GearSlot string

const (
	SlotHelmet   GearSlot = "helmet"
	SlotArmor    GearSlot = "armor"
	SlotGloves   GearSlot = "gloves"
	SlotBoots    GearSlot = "boots"
	SlotRing     GearSlot = "ring"
	SlotNecklace GearSlot = "necklace"
	SlotBelt     GearSlot = "belt"
	SlotMisc     GearSlot = "misc"
)

// GearItem is a named bundle of modifier lines occupying one slot.
type GearItem struct {
	Name string
	Slot GearSlot
	Mods []formulas.Modifier
}

// GearSet is everything a unit has equipped, one item per slot.
type GearSet struct {
	Items map[GearSlot]GearItem
}

// Equip places item into its slot, replacing any previous item there.
func (g *GearSet) Equip(item GearItem) {
	if g.Items == nil {
		g.Items = make(map[GearSlot]GearItem)
	}
	g.Items[item.Slot] = item
}

// AllMods collects every modifier line across equipped items. Order is
// made deterministic by iterating slots in a fixed sequence.
func (g *GearSet) AllMods() []formulas.Modifier {
	var out []formulas.Modifier
	for _, slot := range []GearSlot{
		SlotHelmet, SlotArmor, SlotGloves, SlotBoots,
		SlotRing, SlotNecklace, SlotBelt, SlotMisc,
	} {
		if it, ok := g.Items[slot]; ok {
			out = append(out, it.Mods...)
		}
	}
	return out
}

// PrototypeGearSpec describes "X%K base" prototype gear: each non-zero
// field contributes a flat base line of field*K to its stat.
type PrototypeGearSpec struct {
	Name string

	ArmourPctK float64
	MRPctK     float64
	HPPctK     float64
	MPPctK     float64
	AttackPctK float64

	APBaseFlat float64
}

// BuildPrototypeGear constructs a one-item GearSet from a prototype spec
// at level constant k.
func BuildPrototypeGear(spec PrototypeGearSpec, k float64) GearSet {
	name := spec.Name
	if name == "" {
		name = "Prototype Gear"
	}

	var mods []formulas.Modifier
	add := func(stat string, pctK float64) {
		if pctK == 0 {
			return
		}
		mods = append(mods, formulas.Modifier{
			Stat:   stat,
			Tag:    formulas.TagBase,
			Value:  pctK * k,
			Source: fmt.Sprintf("%s: %s %vK", name, stat, pctK),
		})
	}

	add(formulas.StatArmour, spec.ArmourPctK)
	add(formulas.StatMR, spec.MRPctK)
	add(formulas.StatHP, spec.HPPctK)
	add(formulas.StatMP, spec.MPPctK)
	add(formulas.StatAttack, spec.AttackPctK)

	if spec.APBaseFlat != 0 {
		mods = append(mods, formulas.Modifier{
			Stat:   formulas.StatAPGain,
			Tag:    formulas.TagBase,
			Value:  spec.APBaseFlat,
			Source: name + ": ap flat",
		})
	}

	gs := GearSet{}
	gs.Equip(GearItem{Name: name, Slot: SlotArmor, Mods: mods})
	return gs
}
