package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"solar-panel-backend/internal/model"
	"solar-panel-backend/internal/registry"
)

// GetPanelByID handles GET /panel/:id. Non-numeric and out-of-range ids are both 404.
func (h *Handler) GetPanelByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.panelNotFound(c)
		return
	}
	p, err := h.registry.ByID(id)
	h.respondReading(c, p, err)
}

// GetPanelByCode handles GET /panel/code/:code and, when enabled, GET /:code.
func (h *Handler) GetPanelByCode(c *gin.Context) {
	p, err := h.registry.ByCode(c.Param("code"))
	h.respondReading(c, p, err)
}

func (h *Handler) respondReading(c *gin.Context, p model.Panel, err error) {
	if errors.Is(err, registry.ErrNotFound) {
		h.panelNotFound(c)
		return
	}
	if err != nil {
		c.Error(err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	now := h.now()
	c.JSON(http.StatusOK, model.NewReading(p, h.sampler.Sample(p, now), now))
}

func (h *Handler) panelNotFound(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": errPanelNotFound})
}

func panelLink(p model.Panel) string {
	return "/panel/" + strconv.Itoa(p.ID)
}
