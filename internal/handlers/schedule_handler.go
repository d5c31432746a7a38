package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-turnos/internal/audit"
	"github.com/BruksfildServices01/barber-turnos/internal/domain/barbershop"
	"github.com/BruksfildServices01/barber-turnos/internal/domain/reservation"
	"github.com/BruksfildServices01/barber-turnos/internal/httperr"
)

// ScheduleHandler lê e substitui o horário de funcionamento da barbearia logada.
type ScheduleHandler struct {
	shops barbershop.Repository
	audit *audit.Dispatcher
}

func NewScheduleHandler(shops barbershop.Repository, audit *audit.Dispatcher) *ScheduleHandler {
	return &ScheduleHandler{shops: shops, audit: audit}
}

type ScheduleResponse struct {
	WorkingDays    []string `json:"working_days"`
	OpeningTime    string   `json:"opening_time"`
	ClosingTime    string   `json:"closing_time"`
	MaxSlotsPerDay int      `json:"max_slots_per_day"`
}

func (h *ScheduleHandler) Get(c *gin.Context) {
	p, ok := shopPrincipal(c)
	if !ok {
		return
	}

	shop, err := h.shops.GetByID(c.Request.Context(), p.BarbershopID)
	if err != nil {
		writeError(c, err)
		return
	}

	resp := ScheduleResponse{
		WorkingDays:    []string{},
		OpeningTime:    shop.OpeningTime,
		ClosingTime:    shop.ClosingTime,
		MaxSlotsPerDay: shop.MaxSlotsPerDay,
	}
	if cfg, err := reservation.ScheduleFromShop(shop); err == nil {
		for _, d := range cfg.WorkingDays() {
			resp.WorkingDays = append(resp.WorkingDays, d.String())
		}
	}

	c.JSON(http.StatusOK, resp)
}

// Replace aceita JSON ou formulário com chaves indexadas.
// O horário anterior é descartado por inteiro.
func (h *ScheduleHandler) Replace(c *gin.Context) {
	p, ok := shopPrincipal(c)
	if !ok {
		return
	}

	req, ok := bindSchedule(c)
	if !ok {
		return
	}

	cfg, err := req.toConfig()
	if err != nil {
		writeError(c, err)
		return
	}

	shop, err := h.shops.GetByID(c.Request.Context(), p.BarbershopID)
	if err != nil {
		writeError(c, err)
		return
	}

	reservation.ApplySchedule(shop, cfg)
	if err := h.shops.ReplaceSchedule(c.Request.Context(), shop); err != nil {
		writeError(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		BarbershopID: shop.ID,
		UserID:       &p.UserID,
		Action:       "schedule_replaced",
		Entity:       "barbershop",
		EntityID:     &shop.ID,
		Metadata: map[string]any{
			"working_days":      req.WorkingDays,
			"opening_time":      shop.OpeningTime,
			"closing_time":      shop.ClosingTime,
			"max_slots_per_day": shop.MaxSlotsPerDay,
		},
	})

	days := make([]string, 0, len(shop.WorkingDays))
	for _, wd := range shop.WorkingDays {
		days = append(days, wd.Weekday)
	}
	c.JSON(http.StatusOK, ScheduleResponse{
		WorkingDays:    days,
		OpeningTime:    shop.OpeningTime,
		ClosingTime:    shop.ClosingTime,
		MaxSlotsPerDay: shop.MaxSlotsPerDay,
	})
}

func bindSchedule(c *gin.Context) (ScheduleRequest, bool) {
	ct := c.ContentType()

	if strings.HasPrefix(ct, "multipart/") || ct == "application/x-www-form-urlencoded" {
		var err error
		if strings.HasPrefix(ct, "multipart/") {
			err = c.Request.ParseMultipartForm(1 << 20)
		} else {
			err = c.Request.ParseForm()
		}
		if err != nil {
			httperr.BadRequest(c, "invalid_request", "Formulário inválido.")
			return ScheduleRequest{}, false
		}

		req, err := parseScheduleForm(c.Request.PostForm)
		if err != nil {
			writeError(c, err)
			return ScheduleRequest{}, false
		}
		return req, true
	}

	var req ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return ScheduleRequest{}, false
	}
	return req, true
}
