package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mdrrmo4516/mobile2026/internal/server/services"
)

type statusCheckRequest struct {
	ClientName string `json:"client_name" binding:"required"`
}

type planRequest struct {
	PlanData json.RawMessage `json:"plan_data" binding:"required"`
}

type checklistRequest struct {
	ChecklistData json.RawMessage `json:"checklist_data" binding:"required"`
}

func (h *Handler) createStatusCheck(c *gin.Context) {
	var req statusCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	check, err := h.svc.Status.Record(c.Request.Context(), req.ClientName)
	if err != nil {
		h.fail(c, err, "")
		return
	}
	c.JSON(http.StatusOK, check)
}

func (h *Handler) listStatusChecks(c *gin.Context) {
	list, err := h.svc.Status.List(c.Request.Context())
	if err != nil {
		h.fail(c, err, "")
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) goBagChecklist(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"checklist": services.GoBagChecklist()})
}

func (h *Handler) savePlan(c *gin.Context) {
	var req planRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	plan, err := h.svc.UserData.SavePlan(c.Request.Context(), principal(c).ID, req.PlanData)
	if err != nil {
		h.fail(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Emergency plan saved successfully", "plan": plan})
}

func (h *Handler) getPlan(c *gin.Context) {
	plan, err := h.svc.UserData.GetPlan(c.Request.Context(), principal(c).ID)
	if err != nil {
		h.fail(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"plan": plan})
}

func (h *Handler) saveChecklist(c *gin.Context) {
	var req checklistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	list, err := h.svc.UserData.SaveChecklist(c.Request.Context(), principal(c).ID, req.ChecklistData)
	if err != nil {
		h.fail(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Checklist saved successfully", "checklist": list})
}

func (h *Handler) getChecklist(c *gin.Context) {
	list, err := h.svc.UserData.GetChecklist(c.Request.Context(), principal(c).ID)
	if err != nil {
		h.fail(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"checklist": list})
}
