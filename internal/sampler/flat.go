package sampler

import (
	"time"

	"solar-panel-backend/internal/model"
)

const (
	flatBase   = 0.0075
	flatPerID  = 0.5
	flatJitter = 0.002
	flatPlaces = 5
)

// Flat ignores the time of day and returns a per-panel baseline plus a small jitter.
type Flat struct {
	jitter JitterFunc
}

// NewFlat builds a Flat sampler. A nil jitter uses math/rand/v2.
func NewFlat(jitter JitterFunc) *Flat {
	return &Flat{jitter: jitterOrDefault(jitter)}
}

// Sample returns base+jitter rounded to 5 decimals, or 0 for defective panels.
func (f *Flat) Sample(p model.Panel, _ time.Time) float64 {
	if p.Defective {
		return 0
	}
	base := flatBase + flatPerID*float64(p.ID)
	return Round(base+f.jitter()*flatJitter, flatPlaces)
}
