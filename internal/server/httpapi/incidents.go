package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mdrrmo4516/mobile2026/internal/server/incidents"
)

type incidentUpdateRequest struct {
	Status        *string `json:"status"`
	InternalNotes *string `json:"internal_notes"`
}

func (h *Handler) submitIncident(c *gin.Context) {
	var raw incidents.RawIncident
	if err := c.ShouldBindJSON(&raw); err != nil {
		badRequest(c, err)
		return
	}

	incident, err := h.svc.Incidents.Submit(c.Request.Context(), &raw, principal(c))
	if err != nil {
		h.fail(c, err, "")
		return
	}
	c.JSON(http.StatusOK, incident)
}

func (h *Handler) listIncidents(c *gin.Context) {
	list, err := h.svc.Incidents.ListRecent(c.Request.Context())
	if err != nil {
		h.fail(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"incidents": list})
}

func (h *Handler) adminListIncidents(c *gin.Context) {
	list, err := h.svc.Incidents.AdminList(c.Request.Context(), c.Query("status"), c.Query("q"))
	if err != nil {
		h.fail(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"incidents": list})
}

func (h *Handler) adminGetIncident(c *gin.Context) {
	incident, err := h.svc.Incidents.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "Incident")
		return
	}
	c.JSON(http.StatusOK, gin.H{"incident": incident})
}

func (h *Handler) adminUpdateIncident(c *gin.Context) {
	var req incidentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	incident, err := h.svc.Incidents.Update(c.Request.Context(), c.Param("id"), req.Status, req.InternalNotes)
	if err != nil {
		h.fail(c, err, "Incident")
		return
	}
	c.JSON(http.StatusOK, gin.H{"incident": incident})
}

func (h *Handler) adminDeleteIncident(c *gin.Context) {
	if err := h.svc.Incidents.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err, "Incident")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
