package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hostel-admin-backend/internal/store"
)

type allocateRequest struct {
	StudentID      int64  `json:"student_id" binding:"required"`
	RoomID         int64  `json:"room_id" binding:"required"`
	BedID          int64  `json:"bed_id" binding:"required"`
	AllocationDate string `json:"allocation_date" binding:"required"`
}

// Allocate handles POST /api/v1/allocations/allocate.
func (h *Handler) Allocate(c *gin.Context) {
	var req allocateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := parseDate(req.AllocationDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "allocation_date must be YYYY-MM-DD"})
		return
	}

	alloc, err := h.store.Allocate(c.Request.Context(), store.AllocateParams{
		StudentID:      req.StudentID,
		RoomID:         req.RoomID,
		BedID:          req.BedID,
		AllocationDate: date,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, alloc)
}

type vacateRequest struct {
	VacateDate string `json:"vacate_date" binding:"required"`
}

// Vacate handles PUT /api/v1/allocations/:id/vacate.
func (h *Handler) Vacate(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req vacateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := parseDate(req.VacateDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "vacate_date must be YYYY-MM-DD"})
		return
	}

	alloc, err := h.store.Vacate(c.Request.Context(), id, date)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, alloc)
}

type reassignRequest struct {
	RoomID int64 `json:"room_id" binding:"required"`
	BedID  int64 `json:"bed_id" binding:"required"`
}

// Reassign handles PUT /api/v1/allocations/:id.
func (h *Handler) Reassign(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reassignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	alloc, err := h.store.Reassign(c.Request.Context(), id, req.RoomID, req.BedID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, alloc)
}

// ListAllocations handles GET /api/v1/allocations.
func (h *Handler) ListAllocations(c *gin.Context) {
	rows, err := h.store.ListAllocations(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GetAllocation handles GET /api/v1/allocations/:id.
func (h *Handler) GetAllocation(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	row, err := h.store.GetAllocation(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

// AllocationByStudent handles GET /api/v1/allocations/student/:student_id.
func (h *Handler) AllocationByStudent(c *gin.Context) {
	id, ok := pathID(c, "student_id")
	if !ok {
		return
	}
	row, err := h.store.ActiveAllocationByStudent(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

// AllocationsByRoom handles GET /api/v1/allocations/room/:room_id.
func (h *Handler) AllocationsByRoom(c *gin.Context) {
	id, ok := pathID(c, "room_id")
	if !ok {
		return
	}
	rows, err := h.store.AllocationsByRoom(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// AllocationsByHostel handles GET /api/v1/allocations/hostel/:hostel_id.
func (h *Handler) AllocationsByHostel(c *gin.Context) {
	id, ok := pathID(c, "hostel_id")
	if !ok {
		return
	}
	rows, err := h.store.AllocationsByHostel(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// AllocationHistory handles GET /api/v1/allocations/history with an
// optional ?student_id= filter.
func (h *Handler) AllocationHistory(c *gin.Context) {
	var studentID *int64
	if v := c.Query("student_id"); v != "" {
		id, err := parseInt64(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid student_id"})
			return
		}
		studentID = &id
	}
	rows, err := h.store.AllocationHistory(c.Request.Context(), studentID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// OccupancyStats handles GET /api/v1/allocations/stats.
func (h *Handler) OccupancyStats(c *gin.Context) {
	rows, err := h.store.OccupancyStats(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
