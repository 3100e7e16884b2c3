package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hostel-admin-backend/internal/model"
	"hostel-admin-backend/internal/mw"
)

type registerRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=8"`
}

// Register handles POST /api/v1/auth/register. Self-registration always
// creates a student account; warden and admin accounts come from the
// admin-only POST /api/v1/users route.
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.store.RegisterUser(c.Request.Context(), req.Username, req.Password, model.RoleStudent)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

type createUserRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=student warden admin"`
}

// CreateUser handles POST /api/v1/users. Admin-only; this is the path
// that mints warden and admin accounts.
func (h *Handler) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.store.RegisterUser(c.Request.Context(), req.Username, req.Password, req.Role)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /api/v1/auth/login.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.store.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	token, err := mw.IssueToken(h.auth.JWTSecret, h.auth.TokenTTL, user)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// Me handles GET /api/v1/auth/me.
func (h *Handler) Me(c *gin.Context) {
	var user model.User
	if err := h.store.DB().WithContext(c.Request.Context()).
		First(&user, c.GetInt64(mw.CtxUserID)).Error; err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
