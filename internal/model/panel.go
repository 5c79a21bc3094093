package model

import "fmt"

// PanelStatus is the status label reported for a panel.
type PanelStatus string

const (
	PanelStatusActive    PanelStatus = "ativa"
	PanelStatusDefective PanelStatus = "defeituosa"
)

// Panel describes one simulated solar panel. Panels are built once at startup and never change.
type Panel struct {
	ID        int
	Code      string
	Defective bool
}

// PanelCode returns the human-readable code for a panel id.
func PanelCode(id int) string {
	return fmt.Sprintf("PANEL-%d", id)
}

// Status returns the label that matches the panel's defect flag.
func (p Panel) Status() PanelStatus {
	if p.Defective {
		return PanelStatusDefective
	}
	return PanelStatusActive
}
