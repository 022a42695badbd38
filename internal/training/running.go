package training

// Calorie formula constants for running.
const (
	runningCaloriesMeanSpeedMultiplier = 18.0
	runningCaloriesMeanSpeedShift      = 1.79
)

// Running is a workout recorded by a step sensor.
type Running struct {
	base
}

// NewRunning builds a running record from a raw sample: step count,
// duration in hours and athlete weight in kg.
func NewRunning(action int, duration, weight float64) Running {
	return Running{base{
		name:     "Running",
		action:   action,
		duration: duration,
		weight:   weight,
		lenStep:  lenStep,
	}}
}

// SpentCalories applies the running formula: a linear function of mean
// speed scaled by weight and duration in minutes.
func (r Running) SpentCalories() (float64, error) {
	speed := r.MeanSpeed()
	return (runningCaloriesMeanSpeedMultiplier*speed + runningCaloriesMeanSpeedShift) *
		r.weight / mInKm * r.duration * minInH, nil
}
