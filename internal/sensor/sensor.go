// Package sensor decodes raw sensor packages into workout records.
package sensor

import (
	"errors"
	"fmt"

	"ftracker/internal/training"
)

// ErrInvalidInput is the single category covering every malformed sensor
// package: an unknown workout type, a wrong element count, or a
// non-numeric element. Match with errors.Is.
var ErrInvalidInput = errors.New("invalid workout input")

// Workout type tags sent by the sensor.
const (
	TypeSwimming = "SWM"
	TypeRunning  = "RUN"
	TypeWalking  = "WLK"
)

// packageLen is the required element count per workout type.
var packageLen = map[string]int{
	TypeSwimming: 5,
	TypeRunning:  3,
	TypeWalking:  4,
}

// constructors binds a validated package positionally to its variant:
// action, duration, weight, then the variant-specific tail.
var constructors = map[string]func([]float64) training.Training{
	TypeSwimming: func(v []float64) training.Training {
		return training.NewSwimming(int(v[0]), v[1], v[2], v[3], int(v[4]))
	},
	TypeRunning: func(v []float64) training.Training {
		return training.NewRunning(int(v[0]), v[1], v[2])
	},
	TypeWalking: func(v []float64) training.Training {
		return training.NewSportsWalking(int(v[0]), v[1], v[2], v[3])
	},
}

// ReadPackage validates a raw sensor package and constructs the matching
// workout record. The variants' formula methods assume pre-validated
// input, so every check happens here.
func ReadPackage(workoutType string, data []any) (training.Training, error) {
	wantLen, ok := packageLen[workoutType]
	if !ok {
		return nil, fmt.Errorf("%w: unknown workout type %q", ErrInvalidInput, workoutType)
	}
	if len(data) != wantLen {
		return nil, fmt.Errorf("%w: %s expects %d values, got %d",
			ErrInvalidInput, workoutType, wantLen, len(data))
	}
	values := make([]float64, len(data))
	for i, raw := range data {
		v, ok := asFloat(raw)
		if !ok {
			return nil, fmt.Errorf("%w: element %d has non-numeric type %T",
				ErrInvalidInput, i, raw)
		}
		values[i] = v
	}
	return constructors[workoutType](values), nil
}

// asFloat accepts the numeric types a raw package may carry.
func asFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	default:
		return 0, false
	}
}
