package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-turnos/internal/httperr"
	"github.com/BruksfildServices01/barber-turnos/internal/httpresp"
	"github.com/BruksfildServices01/barber-turnos/internal/usecase/reservation"
)

// ======================================================
// HANDLER
// ======================================================

type ReservationHandler struct {
	book     *reservation.Book
	update   *reservation.Update
	cancel   *reservation.Cancel
	delete   *reservation.Delete
	listMine *reservation.ListMine
}

func NewReservationHandler(
	book *reservation.Book,
	update *reservation.Update,
	cancel *reservation.Cancel,
	del *reservation.Delete,
	listMine *reservation.ListMine,
) *ReservationHandler {
	return &ReservationHandler{
		book:     book,
		update:   update,
		cancel:   cancel,
		delete:   del,
		listMine: listMine,
	}
}

// ======================================================
// REQUESTS
// ======================================================

// Os campos são validados pelo caso de uso, que devolve o código certo
// (barbershop_not_found, invalid_weekday, slot_out_of_range).
type BookReservationRequest struct {
	BarbershopID uint   `json:"barbershop_id"`
	Weekday      string `json:"weekday"`
	SlotNumber   int    `json:"slot_number"`
}

type UpdateReservationRequest struct {
	BarbershopID *uint   `json:"barbershop_id"`
	ClientID     *uint   `json:"client_id"`
	SlotNumber   *int    `json:"slot_number"`
	Weekday      *string `json:"weekday"`
	Status       *string `json:"status"`
}

// ======================================================
// BOOK
// ======================================================

func (h *ReservationHandler) Book(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req BookReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	r, err := h.book.Execute(c.Request.Context(), reservation.BookInput{
		Principal:    p,
		BarbershopID: req.BarbershopID,
		Weekday:      canonicalWeekday(req.Weekday),
		SlotNumber:   req.SlotNumber,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.Created(c, r)
}

// ======================================================
// LIST
// ======================================================

func (h *ReservationHandler) List(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	views, err := h.listMine.Execute(c.Request.Context(), p)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, views)
}

// ======================================================
// UPDATE
// ======================================================

func (h *ReservationHandler) Update(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}
	if req.Weekday != nil {
		w := canonicalWeekday(*req.Weekday)
		req.Weekday = &w
	}

	r, err := h.update.Execute(c.Request.Context(), reservation.UpdateInput{
		Principal:     p,
		ReservationID: id,
		BarbershopID:  req.BarbershopID,
		ClientID:      req.ClientID,
		SlotNumber:    req.SlotNumber,
		Weekday:       req.Weekday,
		Status:        req.Status,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, r)
}

// ======================================================
// CANCEL
// ======================================================

func (h *ReservationHandler) Cancel(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	r, err := h.cancel.Execute(c.Request.Context(), p, id)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, r)
}

// ======================================================
// DELETE
// ======================================================

func (h *ReservationHandler) Delete(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.delete.Execute(c.Request.Context(), p, id); err != nil {
		writeError(c, err)
		return
	}

	httpresp.NoContent(c)
}
