package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func RegisterDocs(r *gin.Engine) {
	r.GET("/docs", func(c *gin.Context) {
		c.Header("Content-Type", "text/markdown; charset=utf-8")
		c.String(http.StatusOK, `# Trade Journal Service

Personal trading journal backend. All /api/* routes require a Bearer token
issued by the identity provider; the token subject scopes every query.

## Auth

Authorization: Bearer <jwt>

Health endpoints are public.

## Routes

- GET /healthz
- GET /readyz
- GET /swagger/index.html
- GET /api/trades
- POST /api/trades
- GET /api/trades/:id
- PUT /api/trades/:id
- DELETE /api/trades/:id
- GET /api/strategies
- POST /api/strategies
- DELETE /api/strategies/:id
- GET /api/analytics?range=30&strategy=all&side=all
- GET /api/analytics?from=2026-01-01&to=2026-01-31

## Analytics result

data.hasData is false when no trade matches the filter. Otherwise data carries
summary, byStrategy[] and equityCurve[] (cumulative PnL over the filtered set,
oldest trade first).
`)
	})
}
