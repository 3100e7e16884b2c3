package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hostel-admin-backend/internal/model"
)

type hostelRequest struct {
	Name          string `json:"name" binding:"required"`
	Type          string `json:"type" binding:"required,oneof=boys girls pg"`
	Address       string `json:"address"`
	WardenName    string `json:"warden_name"`
	WardenContact string `json:"warden_contact"`
	TotalRooms    int    `json:"total_rooms"`
}

// CreateHostel handles POST /api/v1/hostels.
func (h *Handler) CreateHostel(c *gin.Context) {
	var req hostelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	hostel := model.Hostel{
		Name:          req.Name,
		Type:          req.Type,
		Address:       req.Address,
		WardenName:    req.WardenName,
		WardenContact: req.WardenContact,
		TotalRooms:    req.TotalRooms,
	}
	if err := h.store.DB().WithContext(c.Request.Context()).Create(&hostel).Error; err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, hostel)
}

// ListHostels handles GET /api/v1/hostels.
func (h *Handler) ListHostels(c *gin.Context) {
	var hostels []model.Hostel
	if err := h.store.DB().WithContext(c.Request.Context()).
		Order("name").Find(&hostels).Error; err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, hostels)
}

// HostelsByType handles GET /api/v1/hostels/type/:type.
func (h *Handler) HostelsByType(c *gin.Context) {
	var hostels []model.Hostel
	if err := h.store.DB().WithContext(c.Request.Context()).
		Where("type = ?", c.Param("type")).
		Order("name").Find(&hostels).Error; err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, hostels)
}

// GetHostel handles GET /api/v1/hostels/:id.
func (h *Handler) GetHostel(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var hostel model.Hostel
	if !h.firstOr404(c, &hostel, id) {
		return
	}
	c.JSON(http.StatusOK, hostel)
}

// roomWithOccupancy is a room row joined with its bed rollup.
type roomWithOccupancy struct {
	model.Room
	TotalBeds    int64 `json:"total_beds"`
	OccupiedBeds int64 `json:"occupied_beds"`
}

// HostelRooms handles GET /api/v1/hostels/:id/rooms.
func (h *Handler) HostelRooms(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var hostel model.Hostel
	if !h.firstOr404(c, &hostel, id) {
		return
	}

	var rooms []roomWithOccupancy
	if err := h.store.DB().WithContext(c.Request.Context()).
		Table("rooms AS r").
		Select("r.*, COUNT(b.id) AS total_beds, " +
			"COUNT(CASE WHEN b.status = 'occupied' THEN 1 END) AS occupied_beds").
		Joins("LEFT JOIN beds b ON r.id = b.room_id").
		Where("r.hostel_id = ?", id).
		Group("r.id").
		Order("r.room_number").
		Scan(&rooms).Error; err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"hostel": hostel, "rooms": rooms})
}

// UpdateHostel handles PUT /api/v1/hostels/:id.
func (h *Handler) UpdateHostel(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req hostelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var hostel model.Hostel
	if !h.firstOr404(c, &hostel, id) {
		return
	}

	hostel.Name = req.Name
	hostel.Type = req.Type
	hostel.Address = req.Address
	hostel.WardenName = req.WardenName
	hostel.WardenContact = req.WardenContact
	hostel.TotalRooms = req.TotalRooms
	hostel.UpdatedAt = time.Now().UTC()
	if err := h.store.DB().WithContext(c.Request.Context()).Save(&hostel).Error; err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, hostel)
}

// DeleteHostel handles DELETE /api/v1/hostels/:id.
func (h *Handler) DeleteHostel(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var hostel model.Hostel
	if !h.firstOr404(c, &hostel, id) {
		return
	}
	if err := h.store.DB().WithContext(c.Request.Context()).Delete(&hostel).Error; err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
