package escape

import "strconv"

// Result is the iteration at which an orbit escaped, or Bounded.
type Result int

// Bounded marks an orbit that stayed within the threshold for the whole budget.
const Bounded Result = -1

const (
	// Threshold is the escape radius.
	Threshold = 2.0

	// DefaultBudget is the iteration budget used when none is configured.
	DefaultBudget = 20
)

// thresholdSq is compared against re^2+im^2 to avoid a square root per step.
const thresholdSq = Threshold * Threshold

func (r Result) Bounded() bool {
	return r == Bounded
}

// Escaped reports the escape iteration and whether the orbit escaped at all.
func (r Result) Escaped() (int, bool) {
	if r == Bounded {
		return 0, false
	}
	return int(r), true
}

func (r Result) String() string {
	if r == Bounded {
		return "bounded"
	}
	return strconv.Itoa(int(r))
}
