package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hostel-admin-backend/internal/model"
)

// ListAuditLogs handles GET /api/v1/audit with optional ?entity=, ?user_id=
// and ?limit= filters. Newest first, capped at 500 rows.
func (h *Handler) ListAuditLogs(c *gin.Context) {
	q := h.store.DB().WithContext(c.Request.Context()).Model(&model.AuditLog{})
	if entity := c.Query("entity"); entity != "" {
		q = q.Where("entity = ?", entity)
	}
	if userID := c.Query("user_id"); userID != "" {
		id, err := parseInt64(userID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user_id"})
			return
		}
		q = q.Where("user_id = ?", id)
	}
	limit := 100
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 500 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be 1..500"})
			return
		}
		limit = n
	}
	var rows []model.AuditLog
	if err := q.Order("created_at DESC").Limit(limit).Find(&rows).Error; err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
