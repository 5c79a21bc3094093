package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"solar-panel-backend/internal/model"
)

// PanelSummary is one entry of the GET / listing.
type PanelSummary struct {
	ID       int               `json:"id"`
	Code     string            `json:"code"`
	Link     string            `json:"link"`
	CodeLink string            `json:"code_link"`
	Status   model.PanelStatus `json:"status"`
}

// ListResponse is the body of GET /.
type ListResponse struct {
	Message string         `json:"message"`
	Panels  []PanelSummary `json:"panels"`
}

// ListPanels handles GET /.
func (h *Handler) ListPanels(c *gin.Context) {
	panels := h.registry.Panels()
	resp := ListResponse{
		Message: h.message,
		Panels:  make([]PanelSummary, 0, len(panels)),
	}
	for _, p := range panels {
		resp.Panels = append(resp.Panels, PanelSummary{
			ID:       p.ID,
			Code:     p.Code,
			Link:     panelLink(p),
			CodeLink: "/panel/code/" + p.Code,
			Status:   p.Status(),
		})
	}
	c.JSON(http.StatusOK, resp)
}

// Health handles GET /healthz.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// NotFound is the fallback for unknown routes.
func (h *Handler) NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": errRouteNotFound})
}
