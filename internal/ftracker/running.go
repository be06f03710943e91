package ftracker

const (
	runningCaloriesMeanSpeedMultiplier = 18
	runningCaloriesMeanSpeedShift      = 20
)

// Running is a run counted in steps.
type Running struct {
	Base
}

func (r Running) Distance() float64 {
	return r.distance(lenStep)
}

func (r Running) MeanSpeed() float64 {
	return r.meanSpeed(r.Distance())
}

func (r Running) SpentCalories() float64 {
	return (runningCaloriesMeanSpeedMultiplier*r.MeanSpeed() - runningCaloriesMeanSpeedShift) *
		r.Weight / mInKm * r.Duration * minInH
}

func (r Running) TrainingInfo() InfoMessage {
	return r.info("Running", r)
}
