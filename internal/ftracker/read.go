package ftracker

import (
	"fmt"
	"math"
	"sort"
)

// Коды тренировок в пакетах от датчиков
const (
	KindSwimming = "SWM"
	KindRunning  = "RUN"
	KindWalking  = "WLK"
)

type constructor struct {
	params int
	build  func(base Base, extra []float64) Training
}

var constructors = map[string]constructor{
	KindSwimming: {
		params: 5,
		build: func(base Base, extra []float64) Training {
			return Swimming{Base: base, LengthPool: extra[0], CountPool: extra[1]}
		},
	},
	KindRunning: {
		params: 3,
		build: func(base Base, _ []float64) Training {
			return Running{Base: base}
		},
	},
	KindWalking: {
		params: 4,
		build: func(base Base, extra []float64) Training {
			return SportsWalking{Base: base, Height: extra[0]}
		},
	},
}

// Kinds returns the supported kind codes in lexical order.
func Kinds() []string {
	kinds := make([]string, 0, len(constructors))
	for kind := range constructors {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

// ParamCount returns how many readings a package of the given kind carries.
func ParamCount(kind string) (int, error) {
	c, ok := constructors[kind]
	if !ok {
		return 0, &UnknownKindError{Kind: kind}
	}
	return c.params, nil
}

// ReadPackage builds a training from a sensor package.
// Readings are assigned positionally: action, duration, weight, then kind-specific fields.
func ReadPackage(kind string, data []float64) (Training, error) {
	c, ok := constructors[kind]
	if !ok {
		return nil, &UnknownKindError{Kind: kind}
	}
	if len(data) != c.params {
		return nil, &ParamCountError{Kind: kind, Want: c.params, Got: len(data)}
	}

	for i, v := range data {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return nil, fmt.Errorf("%w: reading %d is %v", ErrInvalidParam, i+1, v)
		}
	}

	action := data[0]
	if action != math.Trunc(action) {
		return nil, fmt.Errorf("%w: action count %v is not an integer", ErrInvalidParam, action)
	}
	if action < 0 || action >= math.MaxInt {
		return nil, fmt.Errorf("%w: action count %v is out of range", ErrInvalidParam, action)
	}

	base := Base{
		Action:   int(action),
		Duration: data[1],
		Weight:   data[2],
	}
	return c.build(base, data[3:]), nil
}

// Summary reads a package and renders its report line.
func Summary(kind string, data []float64) (string, error) {
	training, err := ReadPackage(kind, data)
	if err != nil {
		return "", err
	}
	msg, err := ShowTrainingInfo(training)
	if err != nil {
		return "", err
	}
	return msg.Message(), nil
}
