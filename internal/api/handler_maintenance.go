package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hostel-admin-backend/internal/model"
)

type maintenanceRequest struct {
	RoomID      int64  `json:"room_id" binding:"required"`
	Issue       string `json:"issue" binding:"required"`
	Description string `json:"description"`
	Priority    string `json:"priority" binding:"omitempty,oneof=low medium high"`
}

// CreateMaintenanceTicket handles POST /api/v1/maintenance. The room moves
// to maintenance status as part of the same transaction.
func (h *Handler) CreateMaintenanceTicket(c *gin.Context) {
	var req maintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	t := model.MaintenanceTicket{
		RoomID:       req.RoomID,
		Issue:        req.Issue,
		Description:  req.Description,
		Priority:     req.Priority,
		Status:       model.MaintenancePending,
		ReportedDate: todayUTC(),
	}
	if t.Priority == "" {
		t.Priority = "medium"
	}
	if err := h.store.CreateMaintenanceTicket(c.Request.Context(), &t); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

// ListMaintenanceTickets handles GET /api/v1/maintenance with optional
// ?status= and ?room_id= filters.
func (h *Handler) ListMaintenanceTickets(c *gin.Context) {
	q := h.store.DB().WithContext(c.Request.Context()).Model(&model.MaintenanceTicket{})
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if roomID := c.Query("room_id"); roomID != "" {
		id, err := parseInt64(roomID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room_id"})
			return
		}
		q = q.Where("room_id = ?", id)
	}
	var rows []model.MaintenanceTicket
	if err := q.Order("created_at DESC").Find(&rows).Error; err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GetMaintenanceTicket handles GET /api/v1/maintenance/:id.
func (h *Handler) GetMaintenanceTicket(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var row model.MaintenanceTicket
	if !h.firstOr404(c, &row, id) {
		return
	}
	c.JSON(http.StatusOK, row)
}

type maintenanceAssignRequest struct {
	AssignedTo string `json:"assigned_to" binding:"required"`
}

// AssignMaintenanceTicket handles POST /api/v1/maintenance/:id/assign.
func (h *Handler) AssignMaintenanceTicket(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req maintenanceAssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	row, err := h.store.AssignMaintenanceTicket(c.Request.Context(), id, req.AssignedTo)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

// CompleteMaintenanceTicket handles POST /api/v1/maintenance/:id/complete.
// Completing the last open ticket for a room releases its maintenance hold.
func (h *Handler) CompleteMaintenanceTicket(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	row, err := h.store.CompleteMaintenanceTicket(c.Request.Context(), id, time.Now().UTC())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}
