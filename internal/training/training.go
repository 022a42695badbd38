// Package training models workout records and the metrics derived from
// raw sensor samples: distance, mean speed and spent calories.
package training

import (
	"errors"
	"fmt"
)

const (
	lenStep = 0.65   // meters covered by a single step
	mInKm   = 1000.0 // meters in a kilometer
	minInH  = 60.0   // minutes in an hour
)

// ErrCaloriesNotImplemented is returned when a workout variant does not
// define its own calorie formula. Reaching it means a caller bypassed the
// variant constructors, not that the input was bad.
var ErrCaloriesNotImplemented = errors.New("spent calories are not implemented")

// Training is the metric set every workout variant provides.
type Training interface {
	// Name returns the display name used in the summary message.
	Name() string
	// Duration returns the workout duration in hours.
	Duration() float64
	// Distance returns the covered distance in kilometers.
	Distance() float64
	// MeanSpeed returns the mean speed in km/h.
	MeanSpeed() float64
	// SpentCalories returns the burned calories in kcal.
	SpentCalories() (float64, error)
}

// base carries the raw sensor sample shared by every workout variant and
// provides the default metric formulas. Variants embed it and override
// only what their formula set changes.
type base struct {
	name     string
	action   int     // steps or strokes counted by the sensor
	duration float64 // hours
	weight   float64 // kg
	lenStep  float64 // meters covered by a single action
}

func (b base) Name() string      { return b.name }
func (b base) Duration() float64 { return b.duration }

// Distance converts the action count to kilometers.
func (b base) Distance() float64 {
	return float64(b.action) * b.lenStep / mInKm
}

// MeanSpeed is distance over duration, in km/h.
func (b base) MeanSpeed() float64 {
	return b.Distance() / b.duration
}

// SpentCalories has no default formula; every variant must define its own.
func (b base) SpentCalories() (float64, error) {
	return 0, fmt.Errorf("%w in %s", ErrCaloriesNotImplemented, b.name)
}
