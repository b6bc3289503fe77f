package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mdrrmo4516/mobile2026/internal/common"
	"github.com/mdrrmo4516/mobile2026/internal/server/models"
	"github.com/mdrrmo4516/mobile2026/internal/server/services"
)

func (h *Handler) listHotlines(c *gin.Context) {
	list, err := h.svc.Hotlines.List(c.Request.Context())
	if err != nil {
		h.fail(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"hotlines": list})
}

func (h *Handler) adminCreateHotline(c *gin.Context) {
	var in services.HotlineInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}

	hotline, err := h.svc.Hotlines.Create(c.Request.Context(), in)
	if err != nil {
		h.fail(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"hotline": hotline})
}

func (h *Handler) adminUpdateHotline(c *gin.Context) {
	var in services.HotlineInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}

	hotline, err := h.svc.Hotlines.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		h.fail(c, err, "Hotline")
		return
	}
	c.JSON(http.StatusOK, gin.H{"hotline": hotline})
}

func (h *Handler) adminDeleteHotline(c *gin.Context) {
	if err := h.svc.Hotlines.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err, "Hotline")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) listLocations(c *gin.Context) {
	list, err := h.svc.Locations.List(c.Request.Context(), c.Query("location_type"))
	if err != nil {
		h.fail(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"locations": list})
}

func (h *Handler) adminCreateLocation(c *gin.Context) {
	var in services.LocationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}

	loc, err := h.svc.Locations.Create(c.Request.Context(), in)
	if err != nil {
		h.fail(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"location": loc})
}

func (h *Handler) adminUpdateLocation(c *gin.Context) {
	id, ok := h.locationID(c)
	if !ok {
		return
	}
	var upd models.LocationUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		badRequest(c, err)
		return
	}

	loc, err := h.svc.Locations.Update(c.Request.Context(), id, upd)
	if err != nil {
		h.fail(c, err, "Location")
		return
	}
	c.JSON(http.StatusOK, gin.H{"location": loc})
}

func (h *Handler) adminDeleteLocation(c *gin.Context) {
	id, ok := h.locationID(c)
	if !ok {
		return
	}
	if err := h.svc.Locations.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err, "Location")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) locationID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.fail(c, common.NewValidationError("id", common.ErrInvalidInput), "")
		return 0, false
	}
	return id, true
}
