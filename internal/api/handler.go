package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hostel-admin-backend/config"
	"hostel-admin-backend/internal/store"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	store store.Store
	auth  *config.AuthConfig
}

// NewHandler creates a new API handler.
func NewHandler(s store.Store, auth *config.AuthConfig) *Handler {
	return &Handler{store: s, auth: auth}
}

// writeError translates store errors to HTTP status codes. This is the
// only place business errors meet status codes; handlers themselves never
// pick a code for a store failure.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrBedUnavailable),
		errors.Is(err, store.ErrStudentAlreadyAllocated),
		errors.Is(err, store.ErrAlreadyVacated),
		errors.Is(err, store.ErrInUse),
		errors.Is(err, store.ErrDuplicate),
		errors.Is(err, store.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrBedRoomMismatch),
		errors.Is(err, store.ErrFeeInactive):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case store.IsUniqueViolation(err):
		c.JSON(http.StatusConflict, gin.H{"error": store.ErrDuplicate.Error()})
	default:
		log.Printf("internal error on %s %s: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// pathID parses a numeric path parameter; a malformed one aborts with 400.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}

// notFoundIfMissing converts gorm's record-not-found to the store sentinel.
func notFoundIfMissing(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return store.ErrNotFound
	}
	return err
}

// firstOr404 loads one record by primary key, mapping a missing row to 404.
func (h *Handler) firstOr404(c *gin.Context, dest any, id int64) bool {
	if err := h.store.DB().WithContext(c.Request.Context()).First(dest, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(c, store.ErrNotFound)
		} else {
			writeError(c, err)
		}
		return false
	}
	return true
}

func parseInt64(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

const dateLayout = "2006-01-02"

// parseDate parses a calendar date in YYYY-MM-DD form.
func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// todayUTC returns the current calendar date truncated to midnight UTC,
// matching how attendance dates are stored.
func todayUTC() time.Time {
	y, m, d := time.Now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
