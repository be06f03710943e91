// Package ftracker computes workout statistics from raw sensor readings.
package ftracker

import "fmt"

const (
	lenStep = 0.65 // средняя длина шага, м
	mInKm   = 1000 // метров в километре
	minInH  = 60   // минут в часе
)

// Training is implemented by every supported activity kind.
type Training interface {
	// Distance returns the distance covered, km
	Distance() float64
	// MeanSpeed returns the mean speed over the whole session, km/h
	MeanSpeed() float64
	// SpentCalories returns the energy spent, kcal
	SpentCalories() float64
	// TrainingInfo packs the derived values into a message
	TrainingInfo() InfoMessage
}

// Base holds the readings every training has.
type Base struct {
	Action   int     // шаги или гребки
	Duration float64 // длительность, ч
	Weight   float64 // вес, кг
}

func (b Base) distance(stepLen float64) float64 {
	return float64(b.Action) * stepLen / mInKm
}

func (b Base) meanSpeed(distance float64) float64 {
	return distance / b.Duration
}

// info collects derived values in the order distance, speed, calories.
func (b Base) info(trainingType string, t Training) InfoMessage {
	return InfoMessage{
		TrainingType: trainingType,
		Duration:     b.Duration,
		Distance:     t.Distance(),
		Speed:        t.MeanSpeed(),
		Calories:     t.SpentCalories(),
	}
}

// ShowTrainingInfo computes the message for t.
// Zero duration or height leave non-finite values behind; those are reported as ErrDivisionByZero.
func ShowTrainingInfo(t Training) (InfoMessage, error) {
	msg := t.TrainingInfo()
	if !msg.finite() {
		return InfoMessage{}, fmt.Errorf("%s: %w", msg.TrainingType, ErrDivisionByZero)
	}
	return msg, nil
}
