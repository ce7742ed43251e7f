package eval

// Weights scales each evaluation term. A zero weight switches its term
// off, so the weaker tiers simply leave the expensive terms at zero.
type Weights struct {
	Positional    float64
	KingSafety    float64
	PawnStructure float64
	CenterControl float64
	Coordination  float64
	Hanging       float64

	// Scale multiplies the whole score.
	Scale float64

	// CheckBonus is awarded for giving check, MateBonus for checkmate.
	CheckBonus int
	MateBonus  int
}

// Tier presets, weakest first.
var (
	EasyWeights = Weights{Scale: 1}

	MediumWeights = Weights{
		Positional: 1,
		Scale:      1,
	}

	HardWeights = Weights{
		Positional:    1,
		KingSafety:    1,
		PawnStructure: 1,
		CenterControl: 1,
		Coordination:  0.5,
		Hanging:       0.5,
		Scale:         1,
		CheckBonus:    100,
		MateBonus:     10000,
	}

	NightmareWeights = Weights{
		Positional:    1.2,
		KingSafety:    1.3,
		PawnStructure: 1.2,
		CenterControl: 1.2,
		Coordination:  1,
		Hanging:       1,
		Scale:         1,
		CheckBonus:    300,
		MateBonus:     15000,
	}

	ImpossibleWeights = Weights{
		Positional:    1.5,
		KingSafety:    1.5,
		PawnStructure: 1.5,
		CenterControl: 1.5,
		Coordination:  1.2,
		Hanging:       1.5,
		Scale:         1.25,
		CheckBonus:    500,
		MateBonus:     20000,
	}
)

// needsTerms reports whether any positional term is switched on.
func (w Weights) needsTerms() bool {
	return w.Positional != 0 || w.KingSafety != 0 || w.PawnStructure != 0 ||
		w.CenterControl != 0 || w.Coordination != 0 || w.Hanging != 0
}

// scale returns the overall multiplier, treating zero as one.
func (w Weights) scale() float64 {
	if w.Scale == 0 {
		return 1
	}
	return w.Scale
}
