package formulas

// Derived holds the stat contributions of the four primary attributes at
// a given level-scaling constant K.
type Derived struct {
	HP         float64
	MP         float64
	Attack     float64
	MR         float64
	MultiHit   float64 // mhr, percent points
	SpellPower float64
}

// DeriveAttributes converts the primary attributes into stat contributions:
// one STR is +1 attack, one DEX is +0.05 multi-hit rating, one INT is
// +100 MP, +1 magic resist and INT*K*0.000005125 spell power, one VIT is
// +50 HP.
func DeriveAttributes(str, dex, intl, vit float64, k float64) Derived {
	return Derived{
		HP:         vit * 50,
		MP:         intl * 100,
		Attack:     str,
		MR:         intl,
		MultiHit:   dex * 0.05,
		SpellPower: intl * k * 0.000005125,
	}
}
