package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-turnos/internal/httperr"
	"github.com/BruksfildServices01/barber-turnos/internal/httpresp"
	ucComment "github.com/BruksfildServices01/barber-turnos/internal/usecase/comment"
)

type CommentHandler struct {
	create *ucComment.Create
	update *ucComment.Update
}

func NewCommentHandler(create *ucComment.Create, update *ucComment.Update) *CommentHandler {
	return &CommentHandler{create: create, update: update}
}

type CreateCommentRequest struct {
	BarbershopID uint   `json:"barbershop_id" binding:"required"`
	Rating       int    `json:"rating"`
	Description  string `json:"description"`
}

type UpdateCommentRequest struct {
	BarbershopID *uint   `json:"barbershop_id"`
	Rating       *int    `json:"rating"`
	Description  *string `json:"description"`
}

func (h *CommentHandler) Create(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	comment, err := h.create.Execute(c.Request.Context(), ucComment.CreateInput{
		Principal:    p,
		BarbershopID: req.BarbershopID,
		Rating:       req.Rating,
		Description:  req.Description,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.Created(c, comment)
}

func (h *CommentHandler) Update(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	comment, err := h.update.Execute(c.Request.Context(), ucComment.UpdateInput{
		Principal:    p,
		CommentID:    id,
		BarbershopID: req.BarbershopID,
		Rating:       req.Rating,
		Description:  req.Description,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, comment)
}
