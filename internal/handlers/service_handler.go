package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-turnos/internal/domain/barbershop"
	"github.com/BruksfildServices01/barber-turnos/internal/httperr"
	"github.com/BruksfildServices01/barber-turnos/internal/httpresp"
	"github.com/BruksfildServices01/barber-turnos/internal/models"
)

type ServiceHandler struct {
	shops barbershop.Repository
}

func NewServiceHandler(shops barbershop.Repository) *ServiceHandler {
	return &ServiceHandler{shops: shops}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Currency    *string  `json:"currency,omitempty"`
	Active      *bool    `json:"active,omitempty"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	p, ok := shopPrincipal(c)
	if !ok {
		return
	}

	// "true" lista só os ativos; vazio ou outro valor lista todos
	onlyActive := strings.TrimSpace(c.Query("active")) == "true"

	services, err := h.shops.ListServices(c.Request.Context(), p.BarbershopID, onlyActive)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	p, ok := shopPrincipal(c)
	if !ok {
		return
	}

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	svc := models.Service{
		BarbershopID: p.BarbershopID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Currency:     req.Currency,
		Active:       true,
	}
	if err := barbershop.NormalizeService(&svc); err != nil {
		writeError(c, err)
		return
	}

	if err := h.shops.CreateService(c.Request.Context(), &svc); err != nil {
		writeError(c, err)
		return
	}

	httpresp.Created(c, svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	p, ok := shopPrincipal(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	svc, err := h.shops.GetService(c.Request.Context(), p.BarbershopID, id)
	if err != nil {
		writeError(c, err)
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name != nil {
		svc.Name = *req.Name
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.Price != nil {
		svc.Price = *req.Price
	}
	if req.Currency != nil {
		svc.Currency = *req.Currency
	}
	if req.Active != nil {
		svc.Active = *req.Active
	}

	if err := barbershop.NormalizeService(svc); err != nil {
		writeError(c, err)
		return
	}

	if err := h.shops.SaveService(c.Request.Context(), svc); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, svc)
}
