package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-turnos/internal/httperr"
	"github.com/BruksfildServices01/barber-turnos/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var user models.User
	if err := h.db.WithContext(c.Request.Context()).First(&user, p.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Write(c, http.StatusNotFound, "user_not_found", "Usuário não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_user", "Erro ao buscar usuário.")
		return
	}

	resp := gin.H{
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"phone": user.Phone,
			"role":  p.Kind,
		},
	}

	if p.IsBarbershop() {
		var shop models.Barbershop
		if err := h.db.WithContext(c.Request.Context()).First(&shop, p.BarbershopID).Error; err == nil {
			resp["barbershop"] = gin.H{
				"id":       shop.ID,
				"name":     shop.Name,
				"phone":    shop.Phone,
				"address":  shop.Address,
				"timezone": shop.Timezone,
				"rating":   shop.Rating,
			}
		}
	}

	c.JSON(http.StatusOK, resp)
}
