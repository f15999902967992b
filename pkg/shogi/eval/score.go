// Package eval computes a static position score as a sum of independent
// tapered evaluators, composed once per position via phase interpolation.
package eval

import "fmt"

// Score is the final, interpolated position score from the side-to-move's
// perspective, in centipawn-like units (a Pawn is worth 100). Must stay
// within +/-1,000,000 the way the teacher's pawn-unit Score does, even
// though the unit here is finer grained.
type Score int32

const (
	NegInf         = MinScore - 1
	MinScore Score = -1000000
	MaxScore Score = 1000000
	Inf            = MaxScore + 1
)

func (s Score) String() string {
	return fmt.Sprintf("%d", s)
}

// Crop clamps s into [MinScore, MaxScore].
func Crop(s Score) Score {
	switch {
	case s > MaxScore:
		return MaxScore
	case s < MinScore:
		return MinScore
	default:
		return s
	}
}

// TaperedScore is a pair of midgame/endgame scores, summed and interpolated
// by game phase once at the top of the evaluation pipeline (§4.4.6).
type TaperedScore struct {
	MG, EG Score
}

// Add returns the elementwise sum of t and o.
func (t TaperedScore) Add(o TaperedScore) TaperedScore {
	return TaperedScore{MG: t.MG + o.MG, EG: t.EG + o.EG}
}

// Sub returns the elementwise difference of t and o.
func (t TaperedScore) Sub(o TaperedScore) TaperedScore {
	return TaperedScore{MG: t.MG - o.MG, EG: t.EG - o.EG}
}

// Negate flips the sign of both components, used to fold an opponent-side
// bonus (e.g. a skewer hazard) into the side-to-move's score.
func (t TaperedScore) Negate() TaperedScore {
	return TaperedScore{MG: -t.MG, EG: -t.EG}
}

// Scale multiplies both components by n, used for symmetric own-minus-
// opponent accumulation.
func (t TaperedScore) Scale(n int) TaperedScore {
	return TaperedScore{MG: t.MG * Score(n), EG: t.EG * Score(n)}
}

// Sum folds a list of TaperedScores into one.
func Sum(scores ...TaperedScore) TaperedScore {
	var total TaperedScore
	for _, s := range scores {
		total = total.Add(s)
	}
	return total
}

// MaxPhase is the fully-midgame phase value; 0 is fully endgame.
const MaxPhase = 256

// Interpolate blends t's midgame and endgame components by phase, where
// phase == MaxPhase is pure midgame and phase == 0 is pure endgame.
func Interpolate(t TaperedScore, phase int) Score {
	if phase < 0 {
		phase = 0
	}
	if phase > MaxPhase {
		phase = MaxPhase
	}
	return Score((int(t.MG)*phase + int(t.EG)*(MaxPhase-phase)) / MaxPhase)
}
