package training

import "fmt"

// All numeric fields render to exactly three decimal places.
const infoMessageFormat = "Тип тренировки: %s; " +
	"Длительность: %.3f ч.; " +
	"Дистанция: %.3f км; " +
	"Ср. скорость: %.3f км/ч; " +
	"Потрачено ккал: %.3f."

// InfoMessage bundles the computed metrics of a single workout record,
// ready for rendering.
type InfoMessage struct {
	TrainingType string
	Duration     float64 // hours
	Distance     float64 // km
	Speed        float64 // km/h
	Calories     float64 // kcal
}

// Message renders the summary line.
func (m InfoMessage) Message() string {
	return fmt.Sprintf(infoMessageFormat,
		m.TrainingType, m.Duration, m.Distance, m.Speed, m.Calories)
}

// Info evaluates all derived metrics of a workout record and tags the
// result with the variant's display name.
func Info(t Training) (InfoMessage, error) {
	distance := t.Distance()
	speed := t.MeanSpeed()
	calories, err := t.SpentCalories()
	if err != nil {
		return InfoMessage{}, err
	}
	return InfoMessage{
		TrainingType: t.Name(),
		Duration:     t.Duration(),
		Distance:     distance,
		Speed:        speed,
		Calories:     calories,
	}, nil
}
