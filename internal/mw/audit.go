package mw

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"hostel-admin-backend/internal/model"
	"hostel-admin-backend/internal/store"
)

// Audit records every completed mutating request. The write happens after
// the response with a detached context so a slow or failing audit insert
// never affects the request it describes.
func Audit(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		default:
			return
		}

		entry := model.AuditLog{
			Action:    c.Request.Method + " " + c.FullPath(),
			Entity:    entityFromPath(c.FullPath()),
			RecordID:  c.Param("id"),
			Detail:    fmt.Sprintf("status=%d", c.Writer.Status()),
			IPAddress: c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
		}
		if id, ok := c.Get(CtxUserID); ok {
			uid := id.(int64)
			entry.UserID = &uid
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.AppendAudit(ctx, &entry); err != nil {
			log.Printf("audit append failed for %s: %v", entry.Action, err)
		}
	}
}

// entityFromPath extracts the first path segment after the API prefix,
// e.g. "allocations" from "/api/v1/allocations/:id/vacate".
func entityFromPath(path string) string {
	parts := strings.Split(strings.TrimPrefix(path, "/"), "/")
	for i, p := range parts {
		if p == "v1" && i+1 < len(parts) {
			return parts[i+1]
		}
	}
	if len(parts) > 0 {
		return parts[len(parts)-1]
	}
	return ""
}
