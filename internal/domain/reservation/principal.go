package reservation

import "github.com/BruksfildServices01/barber-turnos/internal/models"

type Kind string

const (
	KindClient     Kind = models.RoleClient
	KindBarbershop Kind = models.RoleBarbershop
	KindAdmin      Kind = models.RoleAdmin
)

// Principal é quem age na requisição, já autenticado.
// BarbershopID só é preenchido para KindBarbershop.
type Principal struct {
	UserID       uint
	Kind         Kind
	BarbershopID uint
}

func (p Principal) IsAdmin() bool      { return p.Kind == KindAdmin }
func (p Principal) IsBarbershop() bool { return p.Kind == KindBarbershop }
func (p Principal) IsClient() bool     { return p.Kind == KindClient }

// CanManage: admin, o cliente dono ou a barbearia dona da reserva.
func (p Principal) CanManage(r *models.Reservation) bool {
	switch p.Kind {
	case KindAdmin:
		return true
	case KindClient:
		return r.ClientID == p.UserID
	case KindBarbershop:
		return p.BarbershopID != 0 && r.BarbershopID == p.BarbershopID
	}
	return false
}
