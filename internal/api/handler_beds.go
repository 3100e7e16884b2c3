package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hostel-admin-backend/internal/model"
)

// bedDetail is a bed row joined with its room and hostel for display.
type bedDetail struct {
	model.Bed
	RoomNumber string `json:"room_number"`
	HostelName string `json:"hostel_name"`
}

// ListBeds handles GET /api/v1/beds.
func (h *Handler) ListBeds(c *gin.Context) {
	var beds []bedDetail
	if err := h.store.DB().WithContext(c.Request.Context()).
		Table("beds AS b").
		Select("b.*, r.room_number, h.name AS hostel_name").
		Joins("JOIN rooms r ON b.room_id = r.id").
		Joins("JOIN hostels h ON r.hostel_id = h.id").
		Order("h.name, r.room_number, b.bed_number").
		Scan(&beds).Error; err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, beds)
}

// AvailableBeds handles GET /api/v1/beds/available with an optional
// ?hostel_id= filter.
func (h *Handler) AvailableBeds(c *gin.Context) {
	q := h.store.DB().WithContext(c.Request.Context()).
		Table("beds AS b").
		Select("b.*, r.room_number, h.name AS hostel_name").
		Joins("JOIN rooms r ON b.room_id = r.id").
		Joins("JOIN hostels h ON r.hostel_id = h.id").
		Where("b.status = ?", model.BedAvailable).
		Order("h.name, r.room_number, b.bed_number")
	if v := c.Query("hostel_id"); v != "" {
		id, err := parseInt64(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hostel_id"})
			return
		}
		q = q.Where("h.id = ?", id)
	}

	var beds []bedDetail
	if err := q.Scan(&beds).Error; err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, beds)
}

// GetBed handles GET /api/v1/beds/:id.
func (h *Handler) GetBed(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var bed model.Bed
	if !h.firstOr404(c, &bed, id) {
		return
	}
	c.JSON(http.StatusOK, bed)
}

// DeleteBed handles DELETE /api/v1/beds/:id.
func (h *Handler) DeleteBed(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.store.DeleteBed(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
