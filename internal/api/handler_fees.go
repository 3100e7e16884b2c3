package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hostel-admin-backend/internal/model"
)

type feeRequest struct {
	FeeType     string  `json:"fee_type" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Frequency   string  `json:"frequency" binding:"required,oneof=monthly quarterly yearly one_time"`
	Description string  `json:"description"`
}

// CreateFee handles POST /api/v1/fees.
func (h *Handler) CreateFee(c *gin.Context) {
	var req feeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	fee := model.Fee{
		FeeType:     req.FeeType,
		Amount:      req.Amount,
		Frequency:   req.Frequency,
		Description: req.Description,
		IsActive:    true,
	}
	if err := h.store.DB().WithContext(c.Request.Context()).Create(&fee).Error; err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, fee)
}

// ListFees handles GET /api/v1/fees.
func (h *Handler) ListFees(c *gin.Context) {
	var fees []model.Fee
	if err := h.store.DB().WithContext(c.Request.Context()).
		Order("fee_type").Find(&fees).Error; err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, fees)
}

// ActiveFees handles GET /api/v1/fees/active.
func (h *Handler) ActiveFees(c *gin.Context) {
	var fees []model.Fee
	if err := h.store.DB().WithContext(c.Request.Context()).
		Where("is_active = ?", true).Order("fee_type").Find(&fees).Error; err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, fees)
}

// GetFee handles GET /api/v1/fees/:id.
func (h *Handler) GetFee(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var fee model.Fee
	if !h.firstOr404(c, &fee, id) {
		return
	}
	c.JSON(http.StatusOK, fee)
}

// UpdateFee handles PUT /api/v1/fees/:id.
func (h *Handler) UpdateFee(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req feeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var fee model.Fee
	if !h.firstOr404(c, &fee, id) {
		return
	}

	fee.FeeType = req.FeeType
	fee.Amount = req.Amount
	fee.Frequency = req.Frequency
	fee.Description = req.Description
	fee.UpdatedAt = time.Now().UTC()
	if err := h.store.DB().WithContext(c.Request.Context()).Save(&fee).Error; err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, fee)
}

// SetFeeActive flips a fee head's active flag; used by both the activate
// and deactivate routes.
func (h *Handler) SetFeeActive(active bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		var fee model.Fee
		if !h.firstOr404(c, &fee, id) {
			return
		}
		if err := h.store.DB().WithContext(c.Request.Context()).
			Model(&fee).Update("is_active", active).Error; err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, fee)
	}
}

// DeleteFee handles DELETE /api/v1/fees/:id.
func (h *Handler) DeleteFee(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var fee model.Fee
	if !h.firstOr404(c, &fee, id) {
		return
	}
	if err := h.store.DB().WithContext(c.Request.Context()).Delete(&fee).Error; err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type paymentRequest struct {
	StudentID   int64   `json:"student_id" binding:"required"`
	FeeID       int64   `json:"fee_id" binding:"required"`
	AmountPaid  float64 `json:"amount_paid" binding:"required,gt=0"`
	PaymentDate string  `json:"payment_date" binding:"required"`
	PaymentMode string  `json:"payment_mode" binding:"required,oneof=cash card upi bank_transfer"`
	Remarks     string  `json:"remarks"`
}

// CreatePayment handles POST /api/v1/payments.
func (h *Handler) CreatePayment(c *gin.Context) {
	var req paymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := parseDate(req.PaymentDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "payment_date must be YYYY-MM-DD"})
		return
	}

	payment := model.Payment{
		StudentID:   req.StudentID,
		FeeID:       req.FeeID,
		AmountPaid:  req.AmountPaid,
		PaymentDate: date,
		PaymentMode: req.PaymentMode,
		Remarks:     req.Remarks,
	}
	if err := h.store.CreatePayment(c.Request.Context(), &payment); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, payment)
}

// ListPayments handles GET /api/v1/payments.
func (h *Handler) ListPayments(c *gin.Context) {
	var payments []model.Payment
	if err := h.store.DB().WithContext(c.Request.Context()).
		Order("payment_date DESC, id DESC").Find(&payments).Error; err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

// PaymentsByStudent handles GET /api/v1/payments/student/:student_id.
func (h *Handler) PaymentsByStudent(c *gin.Context) {
	id, ok := pathID(c, "student_id")
	if !ok {
		return
	}
	var payments []model.Payment
	if err := h.store.DB().WithContext(c.Request.Context()).
		Where("student_id = ?", id).
		Order("payment_date DESC").Find(&payments).Error; err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

// PaymentSummary handles GET /api/v1/payments/summary.
func (h *Handler) PaymentSummary(c *gin.Context) {
	rows, err := h.store.PaymentSummary(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
