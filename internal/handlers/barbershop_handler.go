package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-turnos/internal/audit"
	"github.com/BruksfildServices01/barber-turnos/internal/domain/barbershop"
	"github.com/BruksfildServices01/barber-turnos/internal/httperr"
)

type BarbershopHandler struct {
	shops barbershop.Repository
	audit *audit.Dispatcher
}

func NewBarbershopHandler(shops barbershop.Repository, audit *audit.Dispatcher) *BarbershopHandler {
	return &BarbershopHandler{shops: shops, audit: audit}
}

func (h *BarbershopHandler) GetMeBarbershop(c *gin.Context) {
	p, ok := shopPrincipal(c)
	if !ok {
		return
	}

	shop, err := h.shops.GetByID(c.Request.Context(), p.BarbershopID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, shop)
}

// UpdateMeBarbershop altera nome, telefone, endereço e fuso.
// Horário e capacidade só mudam por /me/schedule.
func (h *BarbershopHandler) UpdateMeBarbershop(c *gin.Context) {
	p, ok := shopPrincipal(c)
	if !ok {
		return
	}

	var req barbershop.ProfilePatch
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}

	shop, err := h.shops.GetByID(c.Request.Context(), p.BarbershopID)
	if err != nil {
		writeError(c, err)
		return
	}

	if err := barbershop.ApplyProfile(shop, req); err != nil {
		writeError(c, err)
		return
	}

	if err := h.shops.SaveProfile(c.Request.Context(), shop); err != nil {
		writeError(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		BarbershopID: shop.ID,
		UserID:       &p.UserID,
		Action:       "profile_updated",
		Entity:       "barbershop",
		EntityID:     &shop.ID,
	})

	c.JSON(http.StatusOK, shop)
}
