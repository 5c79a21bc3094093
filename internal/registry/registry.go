package registry

import (
	"errors"
	"fmt"

	"solar-panel-backend/internal/model"
)

// ErrNotFound is returned when no panel matches a lookup.
var ErrNotFound = errors.New("panel not found")

// Registry holds the fixed fleet of panels. It is read-only after New returns.
type Registry struct {
	panels []model.Panel
	byCode map[string]int
}

// New builds count panels with ids 1..count. The panel whose id equals defectiveID is
// marked defective; an out-of-range defectiveID leaves every panel active.
func New(count, defectiveID int) (*Registry, error) {
	if count < 1 {
		return nil, fmt.Errorf("panel count must be at least 1, got %d", count)
	}

	r := &Registry{
		panels: make([]model.Panel, 0, count),
		byCode: make(map[string]int, count),
	}
	for id := 1; id <= count; id++ {
		p := model.Panel{
			ID:        id,
			Code:      model.PanelCode(id),
			Defective: id == defectiveID,
		}
		r.byCode[p.Code] = len(r.panels)
		r.panels = append(r.panels, p)
	}
	return r, nil
}

// Len returns the number of panels.
func (r *Registry) Len() int {
	return len(r.panels)
}

// Panels returns the panels ordered by id.
func (r *Registry) Panels() []model.Panel {
	out := make([]model.Panel, len(r.panels))
	copy(out, r.panels)
	return out
}

// ByID looks a panel up by its numeric id.
func (r *Registry) ByID(id int) (model.Panel, error) {
	if id < 1 || id > len(r.panels) {
		return model.Panel{}, ErrNotFound
	}
	return r.panels[id-1], nil
}

// ByCode looks a panel up by exact code match.
func (r *Registry) ByCode(code string) (model.Panel, error) {
	i, ok := r.byCode[code]
	if !ok {
		return model.Panel{}, ErrNotFound
	}
	return r.panels[i], nil
}
