// Package scoring implements the reputation arithmetic of the Merit
// protocol: bounds checking, the evaluation-weighted running average and
// the temporal decay of stale scores.
//
// All functions are pure and operate on plain integers with truncating
// division, multiplying before dividing. The order matters: it must stay
// stable between contract versions so that replayed evaluation streams
// produce identical scores.
package scoring

import "github.com/meritledger/merit-contract/common"

// AccuracyScale is the denominator of evaluator accuracy: accuracy 100
// means the evaluation is folded into the score with full weight.
const AccuracyScale = 100

// ValidBounds reports whether score lies within [min, max].
func ValidBounds(score, min, max int) bool {
	return score >= min && score <= max
}

// Clamp forces score into [min, max].
func Clamp(score, min, max int) int {
	if score < min {
		return min
	}
	if score > max {
		return max
	}
	return score
}

// Blend folds a new evaluation into the current running score. The weight
// of the incoming score shrinks as priorCount grows and is scaled by the
// submitting evaluator's accuracy, so low-accuracy evaluators move the
// score less. Panics instead of wrapping if the intermediate products
// overflow.
func Blend(current, incoming, priorCount, accuracy int) int {
	base := mul(current, priorCount) / (priorCount + 1)
	increment := mul(incoming, accuracy) / mul(AccuracyScale, priorCount+1)

	return base + increment
}

// Decay returns the score reduced by rate for every full interval of epochs
// elapsed since lastActive. A current epoch behind lastActive counts as no
// elapsed time. The result never goes below floor.
func Decay(score, lastActive, current, interval, rate, floor int) int {
	elapsed := current - lastActive
	if elapsed < 0 {
		elapsed = 0
	}

	decayed := score - mul(elapsed/interval, rate)
	if decayed < floor {
		return floor
	}

	return decayed
}

// mul multiplies two non-negative ints and panics on overflow.
func mul(a, b int) int {
	if a == 0 {
		return 0
	}

	p := a * b
	if p/a != b {
		panic(common.ErrValidationFailed + ": score arithmetic overflow")
	}

	return p
}
