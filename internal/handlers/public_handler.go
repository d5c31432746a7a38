package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-turnos/internal/domain/barbershop"
	"github.com/BruksfildServices01/barber-turnos/internal/domain/reservation"
	"github.com/BruksfildServices01/barber-turnos/internal/httpresp"
	ucComment "github.com/BruksfildServices01/barber-turnos/internal/usecase/comment"
	ucReservation "github.com/BruksfildServices01/barber-turnos/internal/usecase/reservation"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

// PublicHandler atende as rotas sem autenticação de uma barbearia.
type PublicHandler struct {
	availability *ucReservation.ListAvailability
	comments     *ucComment.List
	shops        barbershop.Repository
}

func NewPublicHandler(
	availability *ucReservation.ListAvailability,
	comments *ucComment.List,
	shops barbershop.Repository,
) *PublicHandler {
	return &PublicHandler{
		availability: availability,
		comments:     comments,
		shops:        shops,
	}
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	days, err := h.availability.Execute(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"barbershop_id": id,
		"days":          days,
	})
}

////////////////////////////////////////////////////////
// SERVICES
////////////////////////////////////////////////////////

func (h *PublicHandler) Services(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	shop, err := h.shops.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	if !shop.Active {
		writeError(c, reservation.ErrBarbershopNotFound)
		return
	}

	services, err := h.shops.ListServices(c.Request.Context(), id, true)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, services)
}

////////////////////////////////////////////////////////
// COMMENTS
////////////////////////////////////////////////////////

func (h *PublicHandler) Comments(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	comments, err := h.comments.Execute(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, comments)
}
