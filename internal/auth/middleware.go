package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tradejournal/internal/config"
)

// Middleware verifies the bearer token on /api/* routes and stores the owner
// id in the request context. Infra and docs endpoints stay open.
func Middleware(cfg config.AuthConfig) gin.HandlerFunc {
	verifier := NewVerifier(cfg)

	return func(c *gin.Context) {
		if cfg.Disabled {
			setOwner(c, cfg.DevOwner)
			c.Next()
			return
		}
		p := c.Request.URL.Path
		if p == "/healthz" || p == "/readyz" || p == "/docs" || strings.HasPrefix(p, "/swagger") {
			c.Next()
			return
		}
		if !strings.HasPrefix(p, "/api/") {
			c.Next()
			return
		}
		tok := bearerToken(c.GetHeader("Authorization"))
		if tok == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		owner, err := verifier.Verify(tok)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		setOwner(c, owner)
		c.Next()
	}
}

func setOwner(c *gin.Context, owner string) {
	c.Request = c.Request.WithContext(WithOwner(c.Request.Context(), owner))
}
