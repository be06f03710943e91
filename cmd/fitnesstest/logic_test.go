package main

import (
	"fmt"
	"math"
)

// Эталонные формулы, независимые от проверяемого кода
const (
	lenStep = 0.65
	mInKm   = 1000
	minInH  = 60

	walkingCaloriesWeightMultiplier = 0.035
	walkingSpeedHeightMultiplier    = 0.029

	runningCaloriesMeanSpeedMultiplier = 18
	runningCaloriesMeanSpeedShift      = 20

	swimmingLenStep                  = 1.38
	swimmingCaloriesMeanSpeedShift   = 1.1
	swimmingCaloriesWeightMultiplier = 2
)

func distance(action float64, step float64) float64 {
	return action * step / mInKm
}

func meanSpeed(action, duration float64) float64 {
	return distance(action, lenStep) / duration
}

func swimmingMeanSpeed(lengthPool, countPool, duration float64) float64 {
	return lengthPool * countPool / mInKm / duration
}

// expectedMessage returns the report line for a package or false for an unknown kind.
func expectedMessage(kind string, data []float64) (string, bool) {
	var (
		name                     string
		dist, speed, calories    float64
		action, duration, weight = data[0], data[1], data[2]
	)

	switch kind {
	case "RUN":
		name = "Running"
		dist = distance(action, lenStep)
		speed = meanSpeed(action, duration)
		calories = (runningCaloriesMeanSpeedMultiplier*speed - runningCaloriesMeanSpeedShift) * weight / mInKm * duration * minInH
	case "WLK":
		name = "SportsWalking"
		dist = distance(action, lenStep)
		speed = meanSpeed(action, duration)
		calories = (walkingCaloriesWeightMultiplier*weight +
			math.Floor(speed*speed/data[3])*walkingSpeedHeightMultiplier*weight) * duration * minInH
	case "SWM":
		name = "Swimming"
		dist = distance(action, swimmingLenStep)
		speed = swimmingMeanSpeed(data[3], data[4], duration)
		calories = (speed + swimmingCaloriesMeanSpeedShift) * swimmingCaloriesWeightMultiplier * weight
	default:
		return "", false
	}

	return fmt.Sprintf("Training type: %s; Duration: %.3f h.; Distance: %.3f km; Avg speed: %.3f km/h; Calories burned: %.3f.",
		name, duration, dist, speed, calories), true
}
