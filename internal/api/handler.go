package api

import (
	"time"

	"solar-panel-backend/internal/registry"
	"solar-panel-backend/internal/sampler"
)

const (
	messageDiurnal = "API de Simulação de Energia Solar (curva diária)"
	messageFlat    = "API de Simulação de Energia Solar"

	errPanelNotFound = "Placa não encontrada"
	errRouteNotFound = "Rota não encontrada"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	registry *registry.Registry
	sampler  sampler.Sampler
	message  string
	now      func() time.Time
}

// NewHandler creates a new API handler.
func NewHandler(reg *registry.Registry, s sampler.Sampler, message string) *Handler {
	return &Handler{
		registry: reg,
		sampler:  s,
		message:  message,
		now:      time.Now,
	}
}

// ListingMessage returns the banner shown on GET / for a sampler strategy.
func ListingMessage(strategy string) string {
	if strategy == sampler.StrategyFlat {
		return messageFlat
	}
	return messageDiurnal
}
