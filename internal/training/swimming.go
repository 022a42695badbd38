package training

// Calorie formula constants for swimming. A stroke covers more ground
// than a step, so the step length is overridden.
const (
	swimmingLenStep                  = 1.38
	swimmingCaloriesMeanSpeedShift   = 1.1
	swimmingCaloriesWeightMultiplier = 2.0
)

// Swimming is a pool workout. Distance still comes from the stroke count,
// but mean speed is derived from the pool length and lap count.
type Swimming struct {
	base
	lengthPool float64 // pool length in meters
	countPool  int     // laps swum
}

// NewSwimming builds a swimming record from a raw sample: stroke count,
// duration in hours, weight in kg, pool length in meters and lap count.
func NewSwimming(action int, duration, weight, lengthPool float64, countPool int) Swimming {
	return Swimming{
		base: base{
			name:     "Swimming",
			action:   action,
			duration: duration,
			weight:   weight,
			lenStep:  swimmingLenStep,
		},
		lengthPool: lengthPool,
		countPool:  countPool,
	}
}

// MeanSpeed uses the pool length and lap count instead of the stroke count.
func (s Swimming) MeanSpeed() float64 {
	return s.lengthPool * float64(s.countPool) / mInKm / s.duration
}

// SpentCalories applies the swimming formula.
func (s Swimming) SpentCalories() (float64, error) {
	return (s.MeanSpeed() + swimmingCaloriesMeanSpeedShift) *
		swimmingCaloriesWeightMultiplier * s.weight * s.duration, nil
}
