package ftracker

import (
	"fmt"
	"math"
)

// InfoMessage is the result of a single training.
type InfoMessage struct {
	TrainingType string
	Duration     float64 // ч
	Distance     float64 // км
	Speed        float64 // км/ч
	Calories     float64 // ккал
}

// Message renders m as a one-line report with three decimal places per value.
func (m InfoMessage) Message() string {
	return fmt.Sprintf(
		"Training type: %s; Duration: %.3f h.; Distance: %.3f km; Avg speed: %.3f km/h; Calories burned: %.3f.",
		m.TrainingType, m.Duration, m.Distance, m.Speed, m.Calories,
	)
}

func (m InfoMessage) finite() bool {
	for _, v := range []float64{m.Duration, m.Distance, m.Speed, m.Calories} {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return false
		}
	}
	return true
}
