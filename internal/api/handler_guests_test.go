package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostel-admin-backend/internal/model"
)

func TestGuestEndpoints(t *testing.T) {
	a := newTestAPI(t)
	warden := a.login(t, "warden1", model.RoleWarden)
	_, roomID, _, _ := a.seedInventory(t, warden, 1)

	w := a.do(t, http.MethodPost, "/api/v1/guests", warden, gin.H{
		"full_name": "R. Iyer", "phone": "9876500001", "gender": "male",
		"room_id": roomID, "check_in": "2026-09-05", "check_out": "2026-09-10",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	guestID := decodeID(t, w)

	// Booking windows cannot run backwards.
	w = a.do(t, http.MethodPost, "/api/v1/guests", warden, gin.H{
		"full_name": "K. Rao", "room_id": roomID,
		"check_in": "2026-09-10", "check_out": "2026-09-05",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = a.do(t, http.MethodPost, "/api/v1/guests", warden, gin.H{
		"full_name": "K. Rao", "room_id": 9999,
		"check_in": "2026-09-05", "check_out": "2026-09-10",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = a.do(t, http.MethodGet, fmt.Sprintf("/api/v1/guests/%d", guestID), warden, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var guest model.Guest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &guest))
	assert.Equal(t, "R. Iyer", guest.FullName)
	assert.Equal(t, roomID, guest.RoomID)

	w = a.do(t, http.MethodPut, fmt.Sprintf("/api/v1/guests/%d", guestID), warden, gin.H{
		"full_name": "R. Iyer", "phone": "9876500002", "gender": "male",
		"room_id": roomID, "check_in": "2026-09-05", "check_out": "2026-09-12",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &guest))
	assert.Equal(t, "9876500002", guest.Phone)

	w = a.do(t, http.MethodGet, fmt.Sprintf("/api/v1/guests?room_id=%d", roomID), warden, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var guests []model.Guest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &guests))
	assert.Len(t, guests, 1)

	// Removal is admin territory.
	w = a.do(t, http.MethodDelete, fmt.Sprintf("/api/v1/guests/%d", guestID), warden, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	admin := a.login(t, "admin1", model.RoleAdmin)
	w = a.do(t, http.MethodDelete, fmt.Sprintf("/api/v1/guests/%d", guestID), admin, nil)
	require.Equal(t, http.StatusNoContent, w.Code)
	w = a.do(t, http.MethodGet, fmt.Sprintf("/api/v1/guests/%d", guestID), warden, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
