package dice

import "go.uber.org/zap"

// Roller wraps a Source and logger to provide logged percentile checks.
// All checks are logged at debug level with label, roll, chance, and outcome.
type Roller struct {
	src    Source
	logger *zap.Logger
}

// NewLoggedRoller creates a Roller that rolls with src and logs each check to logger.
//
// Precondition: src and logger must be non-nil.
func NewLoggedRoller(src Source, logger *zap.Logger) *Roller {
	return &Roller{src: src, logger: logger}
}

// Check draws a value in [0, Percent) and compares it against chance.
// A chance <= 0 never succeeds; a chance >= Percent always succeeds. The
// draw happens in both cases so the consumed sequence does not depend on
// the threshold.
//
// Postcondition: result logged; result.Roll is in [0, Percent).
func (r *Roller) Check(label string, chance int) CheckResult {
	result := CheckResult{
		Label:  label,
		Roll:   r.src.Intn(Percent),
		Chance: chance,
	}
	r.logger.Debug("dice check",
		zap.String("label", result.Label),
		zap.Int("roll", result.Roll),
		zap.Int("chance", result.Chance),
		zap.Bool("success", result.Success()),
	)
	return result
}
