package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"tradejournal/internal/auth"
)

// ownerFrom pulls the verified owner id off the request context. The auth
// middleware put it there; a missing owner means the route was reached
// without authentication.
func ownerFrom(c *gin.Context) (string, bool) {
	owner, ok := auth.OwnerFromContext(c.Request.Context())
	if !ok {
		Error(c, http.StatusUnauthorized, "owner not resolved", nil)
		return "", false
	}
	return owner, true
}

func uint64Param(c *gin.Context, key string) uint64 {
	val := strings.TrimSpace(c.Param(key))
	if val == "" {
		return 0
	}
	id, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// timeQueryPtr accepts RFC3339 or a bare calendar date.
func timeQueryPtr(c *gin.Context, key string) *time.Time {
	val := strings.TrimSpace(c.Query(key))
	if val == "" {
		return nil
	}
	if ts, err := time.Parse(time.RFC3339, val); err == nil {
		t := ts.UTC()
		return &t
	}
	if ts, err := time.Parse("2006-01-02", val); err == nil {
		t := ts.UTC()
		return &t
	}
	return nil
}
