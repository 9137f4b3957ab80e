package handtrack

import (
	"math"

	"hand-showreel/internal/gesture"
)

// Synthesize builds a demo trace sampled at rate Hz over duration seconds:
// no hand for the first and last 15%, and in between a hand that pinches
// open and closed once while sweeping across the frame.
func Synthesize(duration, rate float64) *Trace {
	if duration <= 0 || rate <= 0 {
		return &Trace{}
	}
	n := int(math.Floor(duration*rate)) + 1
	samples := make([]Timed, n)
	for k := range samples {
		t := float64(k) / rate
		u := t / duration
		samples[k] = Timed{T: t}
		if u < 0.15 || u > 0.85 {
			continue
		}
		v := (u - 0.15) / 0.7
		samples[k].HandSample = gesture.HandSample{
			Present:  true,
			Distance: gesture.PinchMin + gesture.PinchRange*(0.5-0.5*math.Cos(2*math.Pi*v)),
			Position: gesture.Point2{
				X: 0.5 + 0.35*math.Sin(3*math.Pi*v),
				Y: 0.5 + 0.25*math.Sin(2*math.Pi*v),
			},
		}
	}
	return &Trace{Samples: samples}
}
