package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/barber-turnos/internal/domain/reservation"
	"github.com/BruksfildServices01/barber-turnos/internal/httperr"
)

const ContextPrincipal = "principal"

// AuthMiddleware valida o JWT (HS256) e coloca o reservation.Principal no contexto.
// Claims: sub, role e, para barbearias, barbershopId.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			httperr.Unauthorized(c, "invalid_authorization_header", "expected Bearer token")
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			httperr.Unauthorized(c, "invalid_token", "invalid or expired token")
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			httperr.Unauthorized(c, "invalid_token_claims", "invalid token claims")
			c.Abort()
			return
		}

		p, ok := principalFromClaims(claims)
		if !ok {
			httperr.Unauthorized(c, "invalid_token_payload", "invalid token payload")
			c.Abort()
			return
		}

		c.Set(ContextPrincipal, p)
		c.Next()
	}
}

func principalFromClaims(claims jwt.MapClaims) (reservation.Principal, bool) {
	userID, ok := claims["sub"].(float64)
	if !ok || userID <= 0 {
		return reservation.Principal{}, false
	}

	role, _ := claims["role"].(string)
	kind := reservation.Kind(strings.ToLower(role))
	switch kind {
	case reservation.KindClient, reservation.KindBarbershop, reservation.KindAdmin:
	case "":
		kind = reservation.KindClient
	default:
		return reservation.Principal{}, false
	}

	p := reservation.Principal{UserID: uint(userID), Kind: kind}
	if kind == reservation.KindBarbershop {
		shopID, ok := claims["barbershopId"].(float64)
		if !ok || shopID <= 0 {
			return reservation.Principal{}, false
		}
		p.BarbershopID = uint(shopID)
	}
	return p, true
}

// PrincipalFrom lê o principal gravado pelo AuthMiddleware.
func PrincipalFrom(c *gin.Context) (reservation.Principal, bool) {
	v, ok := c.Get(ContextPrincipal)
	if !ok {
		return reservation.Principal{}, false
	}
	p, ok := v.(reservation.Principal)
	return p, ok
}

func bearerToken(c *gin.Context) (string, bool) {
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}
