package plan

import (
	"math"

	domain "github.com/nutriforge/v1/internal/domain/plan"
	"go.uber.org/zap"
)

// adjustmentEpsilon guards the no-op fast path: drift below this is left
// untouched rather than rescaled by a factor indistinguishable from 1.
const adjustmentEpsilon = 1e-9

// PortionAdjuster closes the calorie gap between a validated plan and the
// user's target by uniform rescaling. Scaling every quantity and macro by
// the same factor preserves macro ratios exactly and lands total calories
// within floating rounding of the target.
type PortionAdjuster struct {
	logger *zap.Logger
}

// NewPortionAdjuster creates a portion adjuster
func NewPortionAdjuster(logger *zap.Logger) *PortionAdjuster {
	return &PortionAdjuster{logger: logger.Named("portion-adjuster")}
}

// Adjust returns a new plan whose quantities are rescaled so that total
// calories match targetCalories. The input plan is never mutated. Plans
// already at the target are returned as an identical copy (scale = 1), which
// makes adjustment idempotent. Callers must only pass plans that survived
// validation; extreme drift is rejected upstream and never reaches here.
func (a *PortionAdjuster) Adjust(p *domain.GeneratedMealPlan, targetCalories float64) (*domain.GeneratedMealPlan, error) {
	if targetCalories <= 0 {
		return nil, domain.ErrZeroTargetCalories
	}
	actual := p.TotalCalories()
	if actual <= 0 {
		return nil, domain.ErrZeroActualCalories
	}

	scale := targetCalories / actual
	if math.Abs(scale-1) < adjustmentEpsilon {
		return p.Scaled(1), nil
	}

	adjusted := p.Scaled(scale)
	a.logger.Debug("Portions rescaled",
		zap.Float64("scale", scale),
		zap.Float64("calories_before", actual),
		zap.Float64("calories_after", adjusted.TotalCalories()),
		zap.Float64("target", targetCalories),
	)
	return adjusted, nil
}
