package training

import "math"

// Calorie formula constants for sports walking.
const (
	walkingCaloriesWeightMultiplier = 0.035
	walkingSpeedHeightMultiplier    = 0.029
	kmhInMsec                       = 0.278 // km/h to m/s
	cmInM                           = 100.0
	meanSpeedPower                  = 2.0
)

// SportsWalking is a walking workout; its calorie formula additionally
// depends on the athlete's height.
type SportsWalking struct {
	base
	height float64 // cm
}

// NewSportsWalking builds a walking record from a raw sample: step count,
// duration in hours, weight in kg and height in cm.
func NewSportsWalking(action int, duration, weight, height float64) SportsWalking {
	return SportsWalking{
		base: base{
			name:     "SportsWalking",
			action:   action,
			duration: duration,
			weight:   weight,
			lenStep:  lenStep,
		},
		height: height,
	}
}

// SpentCalories applies the walking formula. Mean speed is converted to
// m/s and height to meters before the multipliers.
func (w SportsWalking) SpentCalories() (float64, error) {
	speedMsec := w.MeanSpeed() * kmhInMsec
	heightM := w.height / cmInM
	return (walkingCaloriesWeightMultiplier*w.weight +
		math.Pow(speedMsec, meanSpeedPower)/heightM*walkingSpeedHeightMultiplier*w.weight) *
		w.duration * minInH, nil
}
