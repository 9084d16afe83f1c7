// Package dice provides the randomness abstraction and percentile checks used
// by the combat resolver.
package dice

import "fmt"

// Percent is the exclusive upper bound of a percentile roll.
const Percent = 100

// CheckResult holds the audit trail for a single percentile check.
//
// Postcondition: Success() == (Roll < Chance).
type CheckResult struct {
	Label  string // what was checked, e.g. "player hit"
	Roll   int    // value drawn from [0, Percent)
	Chance int    // success threshold in percent
}

// Success reports whether the roll fell under the threshold.
func (r CheckResult) Success() bool {
	return r.Roll < r.Chance
}

// String returns a human-readable audit string in the format:
//
//	"player hit: 42 < 90 → success"
func (r CheckResult) String() string {
	if r.Success() {
		return fmt.Sprintf("%s: %d < %d → success", r.Label, r.Roll, r.Chance)
	}
	return fmt.Sprintf("%s: %d >= %d → failure", r.Label, r.Roll, r.Chance)
}

// Source is the randomness provider for checks.
//
// Implementations MUST be safe for concurrent use.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}
