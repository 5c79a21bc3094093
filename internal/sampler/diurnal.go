package sampler

import (
	"math"
	"time"

	"solar-panel-backend/internal/model"
)

const (
	sunrise       = 6.0
	sunset        = 18.0
	diurnalBase   = 2.0
	diurnalPerID  = 0.5
	diurnalJitter = 0.3
	diurnalPlaces = 2
)

// Diurnal follows a sine-shaped daylight curve between 06:00 and 18:00.
type Diurnal struct {
	loc    *time.Location
	jitter JitterFunc
}

// NewDiurnal builds a Diurnal sampler. A nil jitter uses math/rand/v2.
func NewDiurnal(loc *time.Location, jitter JitterFunc) *Diurnal {
	return &Diurnal{loc: loc, jitter: jitterOrDefault(jitter)}
}

// Factor returns the production factor in [0, 1] for the hour of day of now.
func (d *Diurnal) Factor(now time.Time) float64 {
	if d.loc != nil {
		now = now.In(d.loc)
	}
	h := float64(now.Hour()) + float64(now.Minute())/60
	if h < sunrise || h > sunset {
		return 0
	}
	return math.Sin((h - sunrise) / (sunset - sunrise) * math.Pi)
}

// Sample returns factor·(base+jitter) rounded to 2 decimals, or 0 for defective panels.
func (d *Diurnal) Sample(p model.Panel, now time.Time) float64 {
	if p.Defective {
		return 0
	}
	factor := d.Factor(now)
	if factor <= 0 {
		return 0
	}
	base := diurnalBase + diurnalPerID*float64(p.ID)
	return Round(factor*(base+d.jitter()*diurnalJitter), diurnalPlaces)
}
