// Package barbershop reúne as regras do perfil e do catálogo de serviços
// da barbearia. O horário de funcionamento fica em domain/schedule.
package barbershop

import (
	"context"
	"strings"
	"time"
	"unicode"

	"github.com/BruksfildServices01/barber-turnos/internal/httperr"
	"github.com/BruksfildServices01/barber-turnos/internal/models"
)

const DefaultCurrency = "ARS"

var (
	ErrInvalidName = httperr.ErrBusinessField(
		"invalid_name",
		"name",
		"O nome da barbearia deve ter pelo menos 4 caracteres.",
	)
	ErrInvalidTimezone = httperr.ErrBusinessField(
		"invalid_timezone",
		"timezone",
		"Fuso horário inválido.",
	)
	ErrInvalidService = httperr.ErrBusinessField(
		"invalid_service",
		"name",
		"O serviço precisa de um nome.",
	)
	ErrInvalidPrice = httperr.ErrBusinessField(
		"invalid_price",
		"price",
		"O preço não pode ser negativo.",
	)
	ErrInvalidCurrency = httperr.ErrBusinessField(
		"invalid_currency",
		"currency",
		"Use um código de moeda ISO de 3 letras.",
	)
	ErrServiceNotFound = httperr.ErrBusinessField(
		"service_not_found",
		"",
		"Serviço não encontrado.",
	)
	ErrNotBarbershop = httperr.ErrBusinessField(
		"forbidden",
		"",
		"Apenas barbearias podem gerenciar este recurso.",
	)
)

// Repository guarda perfil, horário e serviços. GetByID não filtra
// barbearias inativas: o dono continua vendo a própria.
type Repository interface {
	GetByID(ctx context.Context, id uint) (*models.Barbershop, error)
	SaveProfile(ctx context.Context, shop *models.Barbershop) error
	ReplaceSchedule(ctx context.Context, shop *models.Barbershop) error

	ListServices(ctx context.Context, barbershopID uint, onlyActive bool) ([]models.Service, error)
	CreateService(ctx context.Context, s *models.Service) error
	GetService(ctx context.Context, barbershopID, id uint) (*models.Service, error)
	SaveService(ctx context.Context, s *models.Service) error
}

// ======================================================
// PROFILE
// ======================================================

// ProfilePatch: campos nil ficam como estão.
type ProfilePatch struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
	Timezone *string `json:"timezone"`
}

func ApplyProfile(shop *models.Barbershop, p ProfilePatch) error {
	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		if len([]rune(name)) < 4 {
			return ErrInvalidName
		}
		shop.Name = name
	}
	if p.Phone != nil {
		shop.Phone = strings.TrimSpace(*p.Phone)
	}
	if p.Address != nil {
		shop.Address = strings.TrimSpace(*p.Address)
	}
	if p.Timezone != nil {
		tz := strings.TrimSpace(*p.Timezone)
		if err := ValidateTimezone(tz); err != nil {
			return err
		}
		shop.Timezone = tz
	}
	return nil
}

func ValidateTimezone(tz string) error {
	if tz == "" {
		return ErrInvalidTimezone
	}
	if _, err := time.LoadLocation(tz); err != nil {
		return ErrInvalidTimezone
	}
	return nil
}

// ======================================================
// SERVICES
// ======================================================

// NormalizeService limpa e valida um serviço antes de gravar.
func NormalizeService(s *models.Service) error {
	s.Name = strings.TrimSpace(s.Name)
	s.Description = strings.TrimSpace(s.Description)
	if s.Name == "" {
		return ErrInvalidService
	}
	if s.Price < 0 {
		return ErrInvalidPrice
	}

	cur := strings.ToUpper(strings.TrimSpace(s.Currency))
	if cur == "" {
		cur = DefaultCurrency
	}
	if len(cur) != 3 {
		return ErrInvalidCurrency
	}
	for _, r := range cur {
		if r > unicode.MaxASCII || !unicode.IsUpper(r) {
			return ErrInvalidCurrency
		}
	}
	s.Currency = cur
	return nil
}
