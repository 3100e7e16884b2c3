package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hostel-admin-backend/internal/model"
)

type guestRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
	Phone    string `json:"phone"`
	Gender   string `json:"gender"`
	RoomID   int64  `json:"room_id" binding:"required"`
	CheckIn  string `json:"check_in" binding:"required"`
	CheckOut string `json:"check_out" binding:"required"`
}

// stayDates validates and parses the booking window; a check-out before
// the check-in is rejected.
func stayDates(c *gin.Context, req *guestRequest) (in, out time.Time, ok bool) {
	in, err := parseDate(req.CheckIn)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "check_in must be YYYY-MM-DD"})
		return in, out, false
	}
	out, err = parseDate(req.CheckOut)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "check_out must be YYYY-MM-DD"})
		return in, out, false
	}
	if out.Before(in) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "check_out before check_in"})
		return in, out, false
	}
	return in, out, true
}

// CreateGuest handles POST /api/v1/guests. Guest bookings reference the
// room registry but live outside the allocation ledger.
func (h *Handler) CreateGuest(c *gin.Context) {
	var req guestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	in, out, ok := stayDates(c, &req)
	if !ok {
		return
	}
	var room model.Room
	if !h.firstOr404(c, &room, req.RoomID) {
		return
	}
	row := model.Guest{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Gender:   req.Gender,
		RoomID:   req.RoomID,
		CheckIn:  in,
		CheckOut: out,
	}
	if err := h.store.DB().WithContext(c.Request.Context()).Create(&row).Error; err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, row)
}

// ListGuests handles GET /api/v1/guests with an optional ?room_id= filter.
func (h *Handler) ListGuests(c *gin.Context) {
	q := h.store.DB().WithContext(c.Request.Context()).Model(&model.Guest{})
	if roomStr := c.Query("room_id"); roomStr != "" {
		roomID, err := parseInt64(roomStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room_id"})
			return
		}
		q = q.Where("room_id = ?", roomID)
	}
	var rows []model.Guest
	if err := q.Order("check_in DESC, id DESC").Find(&rows).Error; err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GetGuest handles GET /api/v1/guests/:id.
func (h *Handler) GetGuest(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var row model.Guest
	if !h.firstOr404(c, &row, id) {
		return
	}
	c.JSON(http.StatusOK, row)
}

// UpdateGuest handles PUT /api/v1/guests/:id.
func (h *Handler) UpdateGuest(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req guestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	in, out, ok := stayDates(c, &req)
	if !ok {
		return
	}
	var row model.Guest
	if !h.firstOr404(c, &row, id) {
		return
	}
	var room model.Room
	if !h.firstOr404(c, &room, req.RoomID) {
		return
	}

	row.FullName = req.FullName
	row.Email = req.Email
	row.Phone = req.Phone
	row.Gender = req.Gender
	row.RoomID = req.RoomID
	row.CheckIn = in
	row.CheckOut = out
	row.UpdatedAt = time.Now().UTC()
	if err := h.store.DB().WithContext(c.Request.Context()).Save(&row).Error; err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

// DeleteGuest handles DELETE /api/v1/guests/:id.
func (h *Handler) DeleteGuest(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var row model.Guest
	if !h.firstOr404(c, &row, id) {
		return
	}
	if err := h.store.DB().WithContext(c.Request.Context()).Delete(&row).Error; err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
