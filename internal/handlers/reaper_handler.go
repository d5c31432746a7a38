package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-turnos/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-turnos/internal/httperr"
	"github.com/BruksfildServices01/barber-turnos/internal/timezone"
	ucReservation "github.com/BruksfildServices01/barber-turnos/internal/usecase/reservation"
)

// ReaperHandler é o gatilho HTTP do reaper, chamado pelo agendador externo.
type ReaperHandler struct {
	reap  *ucReservation.Reap
	clock timezone.Clock
	loc   *time.Location
}

// reapFailure é o envelope de erro acrescido do resultado da execução,
// que numa falha sempre informa zero apagadas.
type reapFailure struct {
	httperr.HTTPError
	ucReservation.ReapResult
}

func NewReaperHandler(reap *ucReservation.Reap, clock timezone.Clock, loc *time.Location) *ReaperHandler {
	return &ReaperHandler{reap: reap, clock: clock, loc: loc}
}

// Run apaga reservas com data anterior a as_of (padrão: hoje no fuso padrão).
func (h *ReaperHandler) Run(c *gin.Context) {
	asOf := schedule.DateOf(h.clock.Now().In(h.loc))

	if raw := c.Query("as_of"); raw != "" {
		d, err := schedule.ParseDate(raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Use o formato YYYY-MM-DD.")
			return
		}
		asOf = d
	}

	res, err := h.reap.Execute(c.Request.Context(), asOf)
	if err != nil {
		log.Printf("[reaper] run %s failed: %v", res.RunID, err)
		res.Deleted = 0
		c.JSON(http.StatusInternalServerError, reapFailure{
			HTTPError: httperr.HTTPError{
				Code:      "reaper_failed",
				Message:   "Falha ao limpar reservas antigas.",
				RequestID: c.GetString(httperr.ContextRequestID),
			},
			ReapResult: res,
		})
		return
	}

	c.JSON(http.StatusOK, res)
}
