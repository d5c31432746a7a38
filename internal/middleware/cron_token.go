package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-turnos/internal/httperr"
)

// CronTokenMiddleware protege o gatilho agendado com um segredo compartilhado.
// Segredo vazio desliga a rota.
func CronTokenMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			httperr.Forbidden(c, "cron_disabled", "scheduled trigger is not configured")
			c.Abort()
			return
		}

		token, ok := bearerToken(c)
		if !ok || subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
			httperr.Unauthorized(c, "invalid_cron_token", "invalid scheduled trigger token")
			c.Abort()
			return
		}

		c.Next()
	}
}
