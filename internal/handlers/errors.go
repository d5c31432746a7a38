package handlers

import (
	"log"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-turnos/internal/domain/reservation"
	"github.com/BruksfildServices01/barber-turnos/internal/httperr"
	"github.com/BruksfildServices01/barber-turnos/internal/middleware"
)

// writeError responde erros de negócio com o envelope padrão e
// qualquer outro erro como 500.
func writeError(c *gin.Context, err error) {
	if be, ok := httperr.AsBusiness(err); ok {
		httperr.WriteBusiness(c, be)
		return
	}

	log.Printf("[handlers] %s %s request_id=%s: %v",
		c.Request.Method, c.FullPath(), middleware.RequestID(c), err)
	httperr.Internal(c, "internal_error", "Erro interno.")
}

// principal devolve quem está autenticado ou responde 401.
func principal(c *gin.Context) (reservation.Principal, bool) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		httperr.Unauthorized(c, "unauthenticated", "Autenticação necessária.")
		return reservation.Principal{}, false
	}
	return p, true
}

// shopPrincipal exige uma barbearia autenticada.
func shopPrincipal(c *gin.Context) (reservation.Principal, bool) {
	p, ok := principal(c)
	if !ok {
		return p, false
	}
	if !p.IsBarbershop() {
		httperr.Forbidden(c, "forbidden", "Apenas barbearias podem acessar este recurso.")
		return p, false
	}
	return p, true
}

func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}
