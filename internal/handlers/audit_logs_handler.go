package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-turnos/internal/domain/reservation"
	"github.com/BruksfildServices01/barber-turnos/internal/httperr"
	"github.com/BruksfildServices01/barber-turnos/internal/httpresp"
	"github.com/BruksfildServices01/barber-turnos/internal/models"
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

// auditFilter são os filtros de ?action, ?entity, ?source, ?from e ?to.
// Datas inválidas são ignoradas.
type auditFilter struct {
	BarbershopID uint
	Action       string
	Entity       string
	Source       string
	From         *time.Time
	To           *time.Time
}

// readAuditFilter resolve de qual barbearia é a trilha. Barbearia vê a
// própria; admin escolhe por ?barbershop_id= e, sem ele, vê os eventos
// sem barbearia (os do reaper).
func readAuditFilter(c *gin.Context, p reservation.Principal) (auditFilter, bool) {
	var f auditFilter

	switch {
	case p.IsBarbershop():
		f.BarbershopID = p.BarbershopID
	case p.IsAdmin():
		if v, err := strconv.ParseUint(c.Query("barbershop_id"), 10, 64); err == nil {
			f.BarbershopID = uint(v)
		}
	default:
		return f, false
	}

	f.Action = c.Query("action")
	f.Entity = c.Query("entity")
	f.Source = c.Query("source")

	if from, err := time.Parse("2006-01-02", c.Query("from")); err == nil {
		f.From = &from
	}
	if to, err := time.Parse("2006-01-02", c.Query("to")); err == nil {
		end := to.AddDate(0, 0, 1)
		f.To = &end
	}

	return f, true
}

func (f auditFilter) apply(q *gorm.DB) *gorm.DB {
	q = q.Where("barbershop_id = ?", f.BarbershopID)

	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	if f.Entity != "" {
		q = q.Where("entity = ?", f.Entity)
	}
	if f.Source != "" {
		q = q.Where("source = ?", f.Source)
	}
	if f.From != nil {
		q = q.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("created_at < ?", *f.To)
	}
	return q
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	filter, ok := readAuditFilter(c, p)
	if !ok {
		httperr.Forbidden(c, "forbidden", "Sem acesso à auditoria.")
		return
	}
	page := httpresp.ReadPage(c, 50, 200)

	q := filter.apply(
		h.db.WithContext(c.Request.Context()).Model(&models.AuditLog{}),
	)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "audit_count_failed", "Erro ao contar logs.")
		return
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Limit(page.Limit).
		Offset(page.Offset()).
		Find(&logs).Error; err != nil {

		httperr.Internal(c, "audit_list_failed", "Erro ao listar logs.")
		return
	}

	httpresp.Page(c, page, total, logs)
}
