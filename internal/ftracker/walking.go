package ftracker

import "math"

const (
	walkingCaloriesWeightMultiplier = 0.035
	walkingSpeedHeightMultiplier    = 0.029
)

// SportsWalking is a walk counted in steps; calories depend on the walker's height.
type SportsWalking struct {
	Base
	Height float64 // рост, см
}

func (w SportsWalking) Distance() float64 {
	return w.distance(lenStep)
}

func (w SportsWalking) MeanSpeed() float64 {
	return w.meanSpeed(w.Distance())
}

// SpentCalories floors speed²/height before it is weighted.
func (w SportsWalking) SpentCalories() float64 {
	speed := w.MeanSpeed()
	return (walkingCaloriesWeightMultiplier*w.Weight +
		math.Floor(speed*speed/w.Height)*walkingSpeedHeightMultiplier*w.Weight) *
		w.Duration * minInH
}

func (w SportsWalking) TrainingInfo() InfoMessage {
	return w.info("SportsWalking", w)
}
