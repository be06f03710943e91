package random

import (
	"math"

	"github.com/Yandex-Practicum/go-ftracker/internal/ftracker"
	"github.com/Yandex-Practicum/go-ftracker/internal/sensor"
)

// Kind returns one of the supported training kind codes
func Kind() string {
	kinds := ftracker.Kinds()
	return kinds[rnd.Intn(len(kinds))]
}

// Package returns a valid sensor package of given kind filled with plausible readings
func Package(kind string) (sensor.Package, error) {
	count, err := ftracker.ParamCount(kind)
	if err != nil {
		return sensor.Package{}, err
	}

	data := []float64{
		float64(between(1000, 10000)),                                      // шаги или гребки
		math.Round((float64(rnd.Int63n(3))+rnd.Float64())*1000)/1000 + 0.1, // длительность, ч
		float64(between(80, 140)),                                          // вес, кг
	}

	switch kind {
	case ftracker.KindWalking:
		data = append(data, float64(between(150, 220))) // рост, см
	case ftracker.KindSwimming:
		data = append(data,
			float64(between(10, 50)), // длина бассейна, м
			float64(between(1, 10)),  // количество бассейнов
		)
	}

	return sensor.Package{Kind: kind, Data: data[:count]}, nil
}

func between(from, to int64) int64 {
	return rnd.Int63n(to-from) + from
}
