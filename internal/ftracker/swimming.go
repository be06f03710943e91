package ftracker

const (
	swimmingLenStep                  = 1.38 // длина гребка, м
	swimmingCaloriesMeanSpeedShift   = 1.1
	swimmingCaloriesWeightMultiplier = 2
)

// Swimming is a pool session counted in strokes.
type Swimming struct {
	Base
	LengthPool float64 // длина бассейна, м
	CountPool  float64 // сколько раз переплыт бассейн
}

func (s Swimming) Distance() float64 {
	return s.distance(swimmingLenStep)
}

// MeanSpeed is derived from the pool, not from the stroke count.
func (s Swimming) MeanSpeed() float64 {
	return s.LengthPool * s.CountPool / mInKm / s.Duration
}

func (s Swimming) SpentCalories() float64 {
	return (s.MeanSpeed() + swimmingCaloriesMeanSpeedShift) * swimmingCaloriesWeightMultiplier * s.Weight
}

func (s Swimming) TrainingInfo() InfoMessage {
	return s.info("Swimming", s)
}
