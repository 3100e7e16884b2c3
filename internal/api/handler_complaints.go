package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hostel-admin-backend/internal/model"
)

type complaintRequest struct {
	StudentID     int64  `json:"student_id" binding:"required"`
	ComplaintType string `json:"complaint_type" binding:"required"`
	Description   string `json:"description" binding:"required"`
	Priority      string `json:"priority" binding:"omitempty,oneof=low medium high"`
}

// CreateComplaint handles POST /api/v1/complaints.
func (h *Handler) CreateComplaint(c *gin.Context) {
	var req complaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var student model.Student
	if !h.firstOr404(c, &student, req.StudentID) {
		return
	}
	row := model.Complaint{
		StudentID:     req.StudentID,
		ComplaintType: req.ComplaintType,
		Description:   req.Description,
		Priority:      req.Priority,
		Status:        model.ComplaintOpen,
	}
	if row.Priority == "" {
		row.Priority = "medium"
	}
	if err := h.store.DB().WithContext(c.Request.Context()).Create(&row).Error; err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, row)
}

// ListComplaints handles GET /api/v1/complaints with optional ?status= and
// ?priority= filters.
func (h *Handler) ListComplaints(c *gin.Context) {
	q := h.store.DB().WithContext(c.Request.Context()).Model(&model.Complaint{})
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if priority := c.Query("priority"); priority != "" {
		q = q.Where("priority = ?", priority)
	}
	var rows []model.Complaint
	if err := q.Order("created_at DESC").Find(&rows).Error; err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GetComplaint handles GET /api/v1/complaints/:id.
func (h *Handler) GetComplaint(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var row model.Complaint
	if !h.firstOr404(c, &row, id) {
		return
	}
	c.JSON(http.StatusOK, row)
}

// ComplaintsByStudent handles GET /api/v1/complaints/student/:student_id.
func (h *Handler) ComplaintsByStudent(c *gin.Context) {
	id, ok := pathID(c, "student_id")
	if !ok {
		return
	}
	var rows []model.Complaint
	if err := h.store.DB().WithContext(c.Request.Context()).
		Where("student_id = ?", id).Order("created_at DESC").Find(&rows).Error; err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

type complaintStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=open in_progress"`
}

// UpdateComplaintStatus handles PATCH /api/v1/complaints/:id/status for the
// non-terminal transitions. Resolution goes through the resolve endpoint.
func (h *Handler) UpdateComplaintStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req complaintStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var row model.Complaint
	if !h.firstOr404(c, &row, id) {
		return
	}
	if row.Status == model.ComplaintResolved {
		c.JSON(http.StatusConflict, gin.H{"error": "complaint already resolved"})
		return
	}
	if err := h.store.DB().WithContext(c.Request.Context()).
		Model(&row).Update("status", req.Status).Error; err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

type complaintResolveRequest struct {
	Resolution string `json:"resolution" binding:"required"`
}

// ResolveComplaint handles POST /api/v1/complaints/:id/resolve.
func (h *Handler) ResolveComplaint(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req complaintResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	row, err := h.store.ResolveComplaint(c.Request.Context(), id, req.Resolution)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}
