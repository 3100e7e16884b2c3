package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hostel-admin-backend/internal/model"
	"hostel-admin-backend/internal/store"
)

type studentRequest struct {
	FirstName     string `json:"first_name" binding:"required"`
	LastName      string `json:"last_name" binding:"required"`
	Gender        string `json:"gender"`
	DateOfBirth   string `json:"date_of_birth"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	Course        string `json:"course"`
	Year          int    `json:"year"`
	GuardianName  string `json:"guardian_name"`
	GuardianPhone string `json:"guardian_phone"`
	UserID        *int64 `json:"user_id"`
}

func (r *studentRequest) toModel() (*model.Student, error) {
	s := &model.Student{
		UserID:        r.UserID,
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Gender:        r.Gender,
		Phone:         r.Phone,
		Email:         r.Email,
		Address:       r.Address,
		Course:        r.Course,
		Year:          r.Year,
		GuardianName:  r.GuardianName,
		GuardianPhone: r.GuardianPhone,
	}
	if r.DateOfBirth != "" {
		dob, err := parseDate(r.DateOfBirth)
		if err != nil {
			return nil, err
		}
		s.DateOfBirth = &dob
	}
	return s, nil
}

// CreateStudent handles POST /api/v1/students.
func (h *Handler) CreateStudent(c *gin.Context) {
	var req studentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	student, err := req.toModel()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date_of_birth must be YYYY-MM-DD"})
		return
	}
	if err := h.store.DB().WithContext(c.Request.Context()).Create(student).Error; err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, student)
}

// ListStudents handles GET /api/v1/students.
func (h *Handler) ListStudents(c *gin.Context) {
	var students []model.Student
	if err := h.store.DB().WithContext(c.Request.Context()).
		Order("created_at DESC").Find(&students).Error; err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, students)
}

// StudentsByCourse handles GET /api/v1/students/course/:course.
func (h *Handler) StudentsByCourse(c *gin.Context) {
	var students []model.Student
	if err := h.store.DB().WithContext(c.Request.Context()).
		Where("course = ?", c.Param("course")).
		Order("year, last_name").Find(&students).Error; err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, students)
}

// GetStudent handles GET /api/v1/students/:id.
func (h *Handler) GetStudent(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var student model.Student
	if err := h.store.DB().WithContext(c.Request.Context()).First(&student, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(c, store.ErrNotFound)
			return
		}
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, student)
}

// UpdateStudent handles PUT /api/v1/students/:id.
func (h *Handler) UpdateStudent(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req studentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := req.toModel()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date_of_birth must be YYYY-MM-DD"})
		return
	}

	db := h.store.DB().WithContext(c.Request.Context())
	var student model.Student
	if err := db.First(&student, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(c, store.ErrNotFound)
			return
		}
		writeError(c, err)
		return
	}

	updated.ID = id
	updated.CreatedAt = student.CreatedAt
	updated.UpdatedAt = time.Now().UTC()
	if err := db.Save(updated).Error; err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteStudent handles DELETE /api/v1/students/:id.
func (h *Handler) DeleteStudent(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	res := h.store.DB().WithContext(c.Request.Context()).Delete(&model.Student{}, id)
	if res.Error != nil {
		writeError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		writeError(c, store.ErrNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}
