package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hostel-admin-backend/internal/model"
)

type gateEntryRequest struct {
	StudentID int64  `json:"student_id" binding:"required"`
	Purpose   string `json:"purpose"`
}

// CreateGateEntry handles POST /api/v1/gate. The student is marked out as
// of now; the entry stays open until the return endpoint closes it.
func (h *Handler) CreateGateEntry(c *gin.Context) {
	var req gateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var student model.Student
	if !h.firstOr404(c, &student, req.StudentID) {
		return
	}
	row := model.GateEntry{
		StudentID: req.StudentID,
		Date:      todayUTC(),
		OutTime:   time.Now().UTC(),
		Purpose:   req.Purpose,
	}
	if err := h.store.DB().WithContext(c.Request.Context()).Create(&row).Error; err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, row)
}

// ListGateEntries handles GET /api/v1/gate with an optional ?date= filter.
func (h *Handler) ListGateEntries(c *gin.Context) {
	q := h.store.DB().WithContext(c.Request.Context()).Model(&model.GateEntry{})
	if dateStr := c.Query("date"); dateStr != "" {
		date, err := parseDate(dateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		q = q.Where("date = ?", date)
	}
	var rows []model.GateEntry
	if err := q.Order("out_time DESC").Find(&rows).Error; err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// StudentsOut handles GET /api/v1/gate/out, the students currently outside
// (entries with no in-time).
func (h *Handler) StudentsOut(c *gin.Context) {
	var rows []model.GateEntry
	if err := h.store.DB().WithContext(c.Request.Context()).
		Where("in_time IS NULL").Order("out_time").Find(&rows).Error; err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GateEntriesByStudent handles GET /api/v1/gate/student/:student_id.
func (h *Handler) GateEntriesByStudent(c *gin.Context) {
	id, ok := pathID(c, "student_id")
	if !ok {
		return
	}
	var rows []model.GateEntry
	if err := h.store.DB().WithContext(c.Request.Context()).
		Where("student_id = ?", id).Order("out_time DESC").Find(&rows).Error; err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// ReturnGateEntry handles POST /api/v1/gate/:id/return.
func (h *Handler) ReturnGateEntry(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	row, err := h.store.ReturnGateEntry(c.Request.Context(), id, time.Now().UTC())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}
