package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"hostel-admin-backend/internal/model"
)

type messRequest struct {
	HostelID   int64   `json:"hostel_id" binding:"required"`
	Name       string  `json:"name" binding:"required"`
	Type       string  `json:"type"`
	MonthlyFee float64 `json:"monthly_fee"`
}

// CreateMess handles POST /api/v1/messes.
func (h *Handler) CreateMess(c *gin.Context) {
	var req messRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var hostel model.Hostel
	if !h.firstOr404(c, &hostel, req.HostelID) {
		return
	}

	mess := model.Mess{
		HostelID:   req.HostelID,
		Name:       req.Name,
		Type:       req.Type,
		MonthlyFee: req.MonthlyFee,
		IsActive:   true,
	}
	if err := h.store.DB().WithContext(c.Request.Context()).Create(&mess).Error; err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, mess)
}

// ListMesses handles GET /api/v1/messes.
func (h *Handler) ListMesses(c *gin.Context) {
	var messes []model.Mess
	if err := h.store.DB().WithContext(c.Request.Context()).
		Order("hostel_id, name").Find(&messes).Error; err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, messes)
}

var weekDays = map[string]bool{
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
}

type menuRequest struct {
	MessID    int64  `json:"mess_id" binding:"required"`
	Day       string `json:"day" binding:"required"`
	Breakfast string `json:"breakfast"`
	Lunch     string `json:"lunch"`
	Dinner    string `json:"dinner"`
}

// CreateMenu handles POST /api/v1/menus. One row per mess+day.
func (h *Handler) CreateMenu(c *gin.Context) {
	var req menuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	day := strings.ToLower(req.Day)
	if !weekDays[day] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "day must be a weekday name"})
		return
	}
	var mess model.Mess
	if !h.firstOr404(c, &mess, req.MessID) {
		return
	}

	menu := model.Menu{
		MessID:    req.MessID,
		Day:       day,
		Breakfast: req.Breakfast,
		Lunch:     req.Lunch,
		Dinner:    req.Dinner,
		IsActive:  true,
	}
	if err := h.store.DB().WithContext(c.Request.Context()).Create(&menu).Error; err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, menu)
}

// ListMenus handles GET /api/v1/menus.
func (h *Handler) ListMenus(c *gin.Context) {
	var menus []model.Menu
	if err := h.store.DB().WithContext(c.Request.Context()).
		Order("mess_id, day").Find(&menus).Error; err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, menus)
}

// WeeklyMenu handles GET /api/v1/menus/mess/:mess_id/weekly.
func (h *Handler) WeeklyMenu(c *gin.Context) {
	id, ok := pathID(c, "mess_id")
	if !ok {
		return
	}
	var menus []model.Menu
	if err := h.store.DB().WithContext(c.Request.Context()).
		Where("mess_id = ? AND is_active = ?", id, true).
		Find(&menus).Error; err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, menus)
}

// TodaysMenu handles GET /api/v1/menus/mess/:mess_id/today.
func (h *Handler) TodaysMenu(c *gin.Context) {
	id, ok := pathID(c, "mess_id")
	if !ok {
		return
	}
	day := strings.ToLower(time.Now().Weekday().String())
	var menu model.Menu
	if err := h.store.DB().WithContext(c.Request.Context()).
		Where("mess_id = ? AND day = ? AND is_active = ?", id, day, true).
		First(&menu).Error; err != nil {
		writeError(c, notFoundIfMissing(err))
		return
	}
	c.JSON(http.StatusOK, menu)
}

type menuUpdateRequest struct {
	Breakfast string `json:"breakfast"`
	Lunch     string `json:"lunch"`
	Dinner    string `json:"dinner"`
	IsActive  *bool  `json:"is_active"`
}

// UpdateMenu handles PUT /api/v1/menus/:id.
func (h *Handler) UpdateMenu(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req menuUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var menu model.Menu
	if !h.firstOr404(c, &menu, id) {
		return
	}

	menu.Breakfast = req.Breakfast
	menu.Lunch = req.Lunch
	menu.Dinner = req.Dinner
	if req.IsActive != nil {
		menu.IsActive = *req.IsActive
	}
	menu.UpdatedAt = time.Now().UTC()
	if err := h.store.DB().WithContext(c.Request.Context()).Save(&menu).Error; err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, menu)
}

// DeleteMenu handles DELETE /api/v1/menus/:id.
func (h *Handler) DeleteMenu(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var menu model.Menu
	if !h.firstOr404(c, &menu, id) {
		return
	}
	if err := h.store.DB().WithContext(c.Request.Context()).Delete(&menu).Error; err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
