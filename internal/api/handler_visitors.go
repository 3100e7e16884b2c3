package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hostel-admin-backend/internal/model"
)

type visitorRequest struct {
	StudentID   int64  `json:"student_id" binding:"required"`
	VisitorName string `json:"visitor_name" binding:"required"`
	Relation    string `json:"relation"`
	Purpose     string `json:"purpose"`
}

// CreateVisitor handles POST /api/v1/visitors. The entry opens with the
// current time as in-time and no out-time.
func (h *Handler) CreateVisitor(c *gin.Context) {
	var req visitorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var student model.Student
	if !h.firstOr404(c, &student, req.StudentID) {
		return
	}
	now := time.Now().UTC()
	row := model.Visitor{
		StudentID:   req.StudentID,
		VisitorName: req.VisitorName,
		Relation:    req.Relation,
		Purpose:     req.Purpose,
		VisitDate:   todayUTC(),
		InTime:      now,
	}
	if err := h.store.DB().WithContext(c.Request.Context()).Create(&row).Error; err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, row)
}

// ListVisitors handles GET /api/v1/visitors with an optional ?date= filter.
func (h *Handler) ListVisitors(c *gin.Context) {
	q := h.store.DB().WithContext(c.Request.Context()).Model(&model.Visitor{})
	if dateStr := c.Query("date"); dateStr != "" {
		date, err := parseDate(dateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		q = q.Where("visit_date = ?", date)
	}
	var rows []model.Visitor
	if err := q.Order("in_time DESC").Find(&rows).Error; err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// CurrentVisitors handles GET /api/v1/visitors/current, the set still on
// premises (no out-time yet).
func (h *Handler) CurrentVisitors(c *gin.Context) {
	var rows []model.Visitor
	if err := h.store.DB().WithContext(c.Request.Context()).
		Where("out_time IS NULL").Order("in_time").Find(&rows).Error; err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// VisitorsByStudent handles GET /api/v1/visitors/student/:student_id.
func (h *Handler) VisitorsByStudent(c *gin.Context) {
	id, ok := pathID(c, "student_id")
	if !ok {
		return
	}
	var rows []model.Visitor
	if err := h.store.DB().WithContext(c.Request.Context()).
		Where("student_id = ?", id).Order("in_time DESC").Find(&rows).Error; err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// CheckoutVisitor handles POST /api/v1/visitors/:id/checkout.
func (h *Handler) CheckoutVisitor(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	row, err := h.store.CheckoutVisitor(c.Request.Context(), id, time.Now().UTC())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}
