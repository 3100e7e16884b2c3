package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hostel-admin-backend/internal/model"
	"hostel-admin-backend/internal/mw"
)

type leaveRequest struct {
	StudentID int64  `json:"student_id" binding:"required"`
	FromDate  string `json:"from_date" binding:"required"`
	ToDate    string `json:"to_date" binding:"required"`
	Reason    string `json:"reason" binding:"required"`
}

// CreateLeave handles POST /api/v1/leaves.
func (h *Handler) CreateLeave(c *gin.Context) {
	var req leaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	from, err := parseDate(req.FromDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from_date must be YYYY-MM-DD"})
		return
	}
	to, err := parseDate(req.ToDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "to_date must be YYYY-MM-DD"})
		return
	}
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "to_date before from_date"})
		return
	}
	var student model.Student
	if !h.firstOr404(c, &student, req.StudentID) {
		return
	}
	row := model.LeaveRequest{
		StudentID: req.StudentID,
		FromDate:  from,
		ToDate:    to,
		Reason:    req.Reason,
		Status:    model.LeavePending,
	}
	if err := h.store.DB().WithContext(c.Request.Context()).Create(&row).Error; err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, row)
}

// ListLeaves handles GET /api/v1/leaves with an optional ?status= filter.
func (h *Handler) ListLeaves(c *gin.Context) {
	q := h.store.DB().WithContext(c.Request.Context()).Model(&model.LeaveRequest{})
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	var rows []model.LeaveRequest
	if err := q.Order("created_at DESC").Find(&rows).Error; err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GetLeave handles GET /api/v1/leaves/:id.
func (h *Handler) GetLeave(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var row model.LeaveRequest
	if !h.firstOr404(c, &row, id) {
		return
	}
	c.JSON(http.StatusOK, row)
}

// LeavesByStudent handles GET /api/v1/leaves/student/:student_id.
func (h *Handler) LeavesByStudent(c *gin.Context) {
	id, ok := pathID(c, "student_id")
	if !ok {
		return
	}
	var rows []model.LeaveRequest
	if err := h.store.DB().WithContext(c.Request.Context()).
		Where("student_id = ?", id).Order("created_at DESC").Find(&rows).Error; err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// ApproveLeave handles POST /api/v1/leaves/:id/approve.
func (h *Handler) ApproveLeave(c *gin.Context) {
	h.decideLeave(c, true)
}

// RejectLeave handles POST /api/v1/leaves/:id/reject.
func (h *Handler) RejectLeave(c *gin.Context) {
	h.decideLeave(c, false)
}

func (h *Handler) decideLeave(c *gin.Context, approve bool) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	row, err := h.store.DecideLeave(c.Request.Context(), id, approve, c.GetInt64(mw.CtxUserID))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}
