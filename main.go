package main

import (
	"fmt"

	"ftracker/internal/sensor"
	"ftracker/internal/training"
)

// sensorPackage is one raw record as received from the fitness sensor.
type sensorPackage struct {
	workoutType string
	data        []any
}

func main() {
	packages := []sensorPackage{
		{"SWM", []any{720, 1.0, 80.0, 25.0, 40}},
		{"RUN", []any{15000, 1.0, 75.0}},
		{"WLK", []any{9000, 1.0, 75.0, 180.0}},
		{"ВWQ", []any{1, 2, 3}},
		{"SWM", []any{720, 1.0, 80.0, 40.0, "21"}},
	}

	// A malformed package must not stop the rest of the batch.
	for _, p := range packages {
		if err := show(p.workoutType, p.data); err != nil {
			fmt.Printf("Ошибка: %v\n", err)
		}
	}
}

func show(workoutType string, data []any) error {
	t, err := sensor.ReadPackage(workoutType, data)
	if err != nil {
		return err
	}
	info, err := training.Info(t)
	if err != nil {
		return err
	}
	fmt.Println(info.Message())
	return nil
}
