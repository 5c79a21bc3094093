package sampler

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"solar-panel-backend/internal/model"
)

// Strategy names accepted by New.
const (
	StrategyDiurnal = "diurnal"
	StrategyFlat    = "flat"
)

// Sampler produces a simulated energy reading in kWh for a panel at a given instant.
// Implementations must return exactly 0 for defective panels.
type Sampler interface {
	Sample(p model.Panel, now time.Time) float64
}

// JitterFunc returns a value in [0, 1).
type JitterFunc func() float64

// New returns the sampler registered under strategy. loc is the location used to
// read the hour of day; nil keeps the location carried by the sampled instant.
func New(strategy string, loc *time.Location) (Sampler, error) {
	switch strategy {
	case StrategyDiurnal:
		return NewDiurnal(loc, nil), nil
	case StrategyFlat:
		return NewFlat(nil), nil
	default:
		return nil, fmt.Errorf("unknown sampler strategy %q", strategy)
	}
}

// Round rounds v to the given number of decimal places.
func Round(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}

func jitterOrDefault(j JitterFunc) JitterFunc {
	if j == nil {
		return rand.Float64
	}
	return j
}
