// Package sensor describes raw packages received from fitness sensors.
package sensor

import (
	"strconv"
	"strings"
)

// Package is one training session as reported by a sensor:
// a kind code followed by readings in the order the kind defines.
type Package struct {
	Kind string
	Data []float64
}

// String returns p in the line form understood by Reader.
func (p Package) String() string {
	var b strings.Builder
	b.WriteString(p.Kind)
	for _, v := range p.Data {
		b.WriteByte(' ')
		b.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
	}
	return b.String()
}

// Demo returns the packages the tracker ships with.
func Demo() []Package {
	return []Package{
		{Kind: "SWM", Data: []float64{720, 1, 80, 25, 40}},
		{Kind: "RUN", Data: []float64{15000, 1, 75}},
		{Kind: "WLK", Data: []float64{9000, 1, 75, 180}},
	}
}
