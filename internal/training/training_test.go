package training

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const delta = 1e-2

func TestRunningMetrics(t *testing.T) {
	r := NewRunning(15000, 1, 75)

	assert.InDelta(t, 9.75, r.Distance(), delta)
	assert.InDelta(t, 9.75, r.MeanSpeed(), delta)

	calories, err := r.SpentCalories()
	require.NoError(t, err)
	assert.InDelta(t, 797.805, calories, delta)
}

func TestSportsWalkingMetrics(t *testing.T) {
	w := NewSportsWalking(9000, 1, 75, 180)

	assert.InDelta(t, 5.85, w.Distance(), delta)
	assert.InDelta(t, 5.85, w.MeanSpeed(), delta)

	calories, err := w.SpentCalories()
	require.NoError(t, err)
	assert.InDelta(t, 349.252, calories, delta)
}

func TestSwimmingMetrics(t *testing.T) {
	s := NewSwimming(720, 1, 80, 25, 40)

	// Distance uses the stroke count with the swimming step length,
	// mean speed uses the pool length and lap count.
	assert.InDelta(t, 0.9936, s.Distance(), delta)
	assert.InDelta(t, 1.0, s.MeanSpeed(), delta)

	calories, err := s.SpentCalories()
	require.NoError(t, err)
	assert.InDelta(t, 336.0, calories, delta)
}

func TestInfoTagsVariantName(t *testing.T) {
	tests := []struct {
		name     string
		training Training
	}{
		{"Running", NewRunning(15000, 1, 75)},
		{"SportsWalking", NewSportsWalking(9000, 1, 75, 180)},
		{"Swimming", NewSwimming(720, 1, 80, 25, 40)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := Info(tt.training)
			require.NoError(t, err)
			assert.Equal(t, tt.name, info.TrainingType)
			assert.InDelta(t, 1.0, info.Duration, delta)
		})
	}
}

func TestInfoIsIdempotent(t *testing.T) {
	s := NewSwimming(720, 1, 80, 25, 40)

	first, err := Info(s)
	require.NoError(t, err)
	second, err := Info(s)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// crawling never defines its own calorie formula, so the base default
// must report it by name.
type crawling struct {
	base
}

func TestSpentCaloriesNotImplemented(t *testing.T) {
	c := crawling{base{name: "Crawling", action: 100, duration: 1, weight: 70, lenStep: lenStep}}

	_, err := c.SpentCalories()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCaloriesNotImplemented)
	assert.Contains(t, err.Error(), "Crawling")

	_, err = Info(c)
	assert.ErrorIs(t, err, ErrCaloriesNotImplemented)
}
