package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hostel-admin-backend/internal/model"
	"hostel-admin-backend/internal/mw"
)

type messAttendanceRequest struct {
	StudentID int64  `json:"student_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	MealType  string `json:"meal_type" binding:"required,oneof=breakfast lunch dinner"`
	Status    string `json:"status" binding:"required,oneof=present absent"`
}

func (r *messAttendanceRequest) toModel() (*model.MessAttendance, error) {
	date, err := parseDate(r.Date)
	if err != nil {
		return nil, err
	}
	return &model.MessAttendance{
		StudentID: r.StudentID,
		Date:      date,
		MealType:  r.MealType,
		Status:    r.Status,
	}, nil
}

// CreateMessAttendance handles POST /api/v1/mess-attendance.
func (h *Handler) CreateMessAttendance(c *gin.Context) {
	var req messAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	row, err := req.toModel()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}
	if err := h.store.BulkMessAttendance(c.Request.Context(), []model.MessAttendance{*row}); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, row)
}

// BulkMessAttendance handles POST /api/v1/mess-attendance/bulk. The batch
// is atomic: one duplicate rejects it all.
func (h *Handler) BulkMessAttendance(c *gin.Context) {
	var reqs []messAttendanceRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rows := make([]model.MessAttendance, 0, len(reqs))
	for _, r := range reqs {
		row, err := r.toModel()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		rows = append(rows, *row)
	}
	if err := h.store.BulkMessAttendance(c.Request.Context(), rows); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"inserted": len(rows)})
}

// MessAttendanceByDate handles GET /api/v1/mess-attendance/date/:date.
func (h *Handler) MessAttendanceByDate(c *gin.Context) {
	date, err := parseDate(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}
	var rows []model.MessAttendance
	if err := h.store.DB().WithContext(c.Request.Context()).
		Where("date = ?", date).Order("meal_type, student_id").Find(&rows).Error; err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// MessAttendanceByStudent handles GET /api/v1/mess-attendance/student/:student_id.
func (h *Handler) MessAttendanceByStudent(c *gin.Context) {
	id, ok := pathID(c, "student_id")
	if !ok {
		return
	}
	var rows []model.MessAttendance
	if err := h.store.DB().WithContext(c.Request.Context()).
		Where("student_id = ?", id).Order("date DESC").Find(&rows).Error; err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

type studentAttendanceRequest struct {
	StudentID int64  `json:"student_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Status    string `json:"status" binding:"required,oneof=present absent leave"`
	Remarks   string `json:"remarks"`
}

func (r *studentAttendanceRequest) toModel(markedBy int64) (*model.StudentAttendance, error) {
	date, err := parseDate(r.Date)
	if err != nil {
		return nil, err
	}
	return &model.StudentAttendance{
		StudentID: r.StudentID,
		Date:      date,
		Status:    r.Status,
		MarkedBy:  markedBy,
		Remarks:   r.Remarks,
	}, nil
}

// CreateStudentAttendance handles POST /api/v1/attendance.
func (h *Handler) CreateStudentAttendance(c *gin.Context) {
	var req studentAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	row, err := req.toModel(c.GetInt64(mw.CtxUserID))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}
	if err := h.store.BulkStudentAttendance(c.Request.Context(), []model.StudentAttendance{*row}); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, row)
}

// BulkStudentAttendance handles POST /api/v1/attendance/bulk.
func (h *Handler) BulkStudentAttendance(c *gin.Context) {
	var reqs []studentAttendanceRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	markedBy := c.GetInt64(mw.CtxUserID)
	rows := make([]model.StudentAttendance, 0, len(reqs))
	for _, r := range reqs {
		row, err := r.toModel(markedBy)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		rows = append(rows, *row)
	}
	if err := h.store.BulkStudentAttendance(c.Request.Context(), rows); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"inserted": len(rows)})
}

// StudentAttendanceByDate handles GET /api/v1/attendance/date/:date.
func (h *Handler) StudentAttendanceByDate(c *gin.Context) {
	date, err := parseDate(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}
	var rows []model.StudentAttendance
	if err := h.store.DB().WithContext(c.Request.Context()).
		Where("date = ?", date).Order("student_id").Find(&rows).Error; err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// AbsentStudents handles GET /api/v1/attendance/absent with an optional
// ?date= filter (defaults to today).
func (h *Handler) AbsentStudents(c *gin.Context) {
	dateStr := c.Query("date")
	var date interface{}
	if dateStr != "" {
		d, err := parseDate(dateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		date = d
	} else {
		date = todayUTC()
	}

	var rows []model.StudentAttendance
	if err := h.store.DB().WithContext(c.Request.Context()).
		Where("date = ? AND status = ?", date, "absent").
		Order("student_id").Find(&rows).Error; err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// StudentAttendanceByStudent handles GET /api/v1/attendance/student/:student_id.
func (h *Handler) StudentAttendanceByStudent(c *gin.Context) {
	id, ok := pathID(c, "student_id")
	if !ok {
		return
	}
	var rows []model.StudentAttendance
	if err := h.store.DB().WithContext(c.Request.Context()).
		Where("student_id = ?", id).Order("date DESC").Find(&rows).Error; err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
