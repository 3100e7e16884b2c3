package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hostel-admin-backend/internal/model"
)

type createRoomRequest struct {
	HostelID   int64   `json:"hostel_id" binding:"required"`
	RoomNumber string  `json:"room_number" binding:"required"`
	Capacity   int     `json:"capacity" binding:"required,min=1,max=12"`
	Floor      int     `json:"floor"`
	Rent       float64 `json:"rent"`
}

// CreateRoom handles POST /api/v1/rooms. Beds 1..capacity are provisioned
// with the room.
func (h *Handler) CreateRoom(c *gin.Context) {
	var req createRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var hostel model.Hostel
	if !h.firstOr404(c, &hostel, req.HostelID) {
		return
	}

	room := model.Room{
		HostelID:   req.HostelID,
		RoomNumber: req.RoomNumber,
		Capacity:   req.Capacity,
		Floor:      req.Floor,
		Rent:       req.Rent,
	}
	if err := h.store.CreateRoom(c.Request.Context(), &room); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, room)
}

// ListRooms handles GET /api/v1/rooms with optional ?status= filter.
func (h *Handler) ListRooms(c *gin.Context) {
	q := h.store.DB().WithContext(c.Request.Context()).Order("hostel_id, room_number")
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	var rooms []model.Room
	if err := q.Find(&rooms).Error; err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// GetRoom handles GET /api/v1/rooms/:id.
func (h *Handler) GetRoom(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var room model.Room
	if !h.firstOr404(c, &room, id) {
		return
	}
	c.JSON(http.StatusOK, room)
}

type updateRoomRequest struct {
	RoomNumber string  `json:"room_number" binding:"required"`
	Floor      int     `json:"floor"`
	Rent       float64 `json:"rent"`
}

// UpdateRoom handles PUT /api/v1/rooms/:id. Capacity and status are not
// editable here: capacity is fixed by the provisioned beds, status is
// derived (or toggled via the maintenance endpoint).
func (h *Handler) UpdateRoom(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req updateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var room model.Room
	if !h.firstOr404(c, &room, id) {
		return
	}

	room.RoomNumber = req.RoomNumber
	room.Floor = req.Floor
	room.Rent = req.Rent
	room.UpdatedAt = time.Now().UTC()
	if err := h.store.DB().WithContext(c.Request.Context()).Save(&room).Error; err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

type roomMaintenanceRequest struct {
	Maintenance *bool `json:"maintenance" binding:"required"`
}

// SetRoomStatus handles PATCH /api/v1/rooms/:id/status.
func (h *Handler) SetRoomStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req roomMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	room, err := h.store.SetRoomMaintenance(c.Request.Context(), id, *req.Maintenance)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// DeleteRoom handles DELETE /api/v1/rooms/:id.
func (h *Handler) DeleteRoom(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.store.DeleteRoom(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RoomBeds handles GET /api/v1/rooms/:id/beds.
func (h *Handler) RoomBeds(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var room model.Room
	if !h.firstOr404(c, &room, id) {
		return
	}
	var beds []model.Bed
	if err := h.store.DB().WithContext(c.Request.Context()).
		Where("room_id = ?", id).Order("bed_number").Find(&beds).Error; err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, beds)
}
