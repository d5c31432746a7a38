// Package memory guarda barbearias, reservas e comentários em memória, com a
// mesma regra de unicidade do índice parcial do Postgres. Usado pelos testes
// de casos de uso e handlers; os binários sempre rodam sobre o Postgres.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/BruksfildServices01/barber-turnos/internal/domain/barbershop"
	"github.com/BruksfildServices01/barber-turnos/internal/domain/comment"
	"github.com/BruksfildServices01/barber-turnos/internal/domain/reservation"
	"github.com/BruksfildServices01/barber-turnos/internal/models"
)

type Store struct {
	mu sync.Mutex

	shops        map[uint]models.Barbershop
	reservations map[uint]models.Reservation
	comments     map[uint]models.Comment
	services     map[uint]models.Service
	nextID       uint
}

func New() *Store {
	return &Store{
		shops:        make(map[uint]models.Barbershop),
		reservations: make(map[uint]models.Reservation),
		comments:     make(map[uint]models.Comment),
		services:     make(map[uint]models.Service),
	}
}

func (s *Store) id() uint {
	s.nextID++
	return s.nextID
}

// --------------------------------------------------
// Barbershop
// --------------------------------------------------

// PutBarbershop cria ou substitui a barbearia. ID zero gera um novo.
func (s *Store) PutBarbershop(shop models.Barbershop) models.Barbershop {
	s.mu.Lock()
	defer s.mu.Unlock()

	if shop.ID == 0 {
		shop.ID = s.id()
	}
	shop.WorkingDays = append([]models.WorkingDay(nil), shop.WorkingDays...)
	s.shops[shop.ID] = shop
	return shop
}

func (s *Store) GetBarbershop(_ context.Context, id uint) (*models.Barbershop, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	shop, ok := s.shops[id]
	if !ok || !shop.Active {
		return nil, reservation.ErrBarbershopNotFound
	}
	shop.WorkingDays = append([]models.WorkingDay(nil), shop.WorkingDays...)
	return &shop, nil
}

// GetByID devolve a barbearia mesmo inativa.
func (s *Store) GetByID(_ context.Context, id uint) (*models.Barbershop, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	shop, ok := s.shops[id]
	if !ok {
		return nil, reservation.ErrBarbershopNotFound
	}
	shop.WorkingDays = append([]models.WorkingDay(nil), shop.WorkingDays...)
	return &shop, nil
}

func (s *Store) SaveProfile(_ context.Context, shop *models.Barbershop) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.shops[shop.ID]
	if !ok {
		return reservation.ErrBarbershopNotFound
	}
	cur.Name = shop.Name
	cur.Phone = shop.Phone
	cur.Address = shop.Address
	cur.Timezone = shop.Timezone
	cur.UpdatedAt = time.Now()
	s.shops[shop.ID] = cur
	return nil
}

func (s *Store) ReplaceSchedule(_ context.Context, shop *models.Barbershop) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.shops[shop.ID]
	if !ok {
		return reservation.ErrBarbershopNotFound
	}
	cur.OpeningTime = shop.OpeningTime
	cur.ClosingTime = shop.ClosingTime
	cur.MaxSlotsPerDay = shop.MaxSlotsPerDay
	cur.WorkingDays = make([]models.WorkingDay, len(shop.WorkingDays))
	for i, wd := range shop.WorkingDays {
		wd.ID = s.id()
		wd.BarbershopID = shop.ID
		cur.WorkingDays[i] = wd
	}
	cur.UpdatedAt = time.Now()
	s.shops[shop.ID] = cur
	return nil
}

func (s *Store) BarbershopExists(_ context.Context, id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	shop, ok := s.shops[id]
	return ok && shop.Active, nil
}

func (s *Store) SetBarbershopRating(_ context.Context, id uint, rating float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	shop, ok := s.shops[id]
	if !ok {
		return reservation.ErrBarbershopNotFound
	}
	shop.Rating = rating
	s.shops[id] = shop
	return nil
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (s *Store) ListServices(_ context.Context, barbershopID uint, onlyActive bool) ([]models.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.Service{}
	for _, svc := range s.services {
		if svc.BarbershopID != barbershopID || (onlyActive && !svc.Active) {
			continue
		}
		out = append(out, svc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Store) CreateService(_ context.Context, svc *models.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	svc.ID = s.id()
	svc.CreatedAt = now
	svc.UpdatedAt = now
	s.services[svc.ID] = *svc
	return nil
}

func (s *Store) GetService(_ context.Context, barbershopID, id uint) (*models.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	svc, ok := s.services[id]
	if !ok || svc.BarbershopID != barbershopID {
		return nil, barbershop.ErrServiceNotFound
	}
	return &svc, nil
}

func (s *Store) SaveService(_ context.Context, svc *models.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.services[svc.ID]; !ok {
		return barbershop.ErrServiceNotFound
	}
	svc.UpdatedAt = time.Now()
	s.services[svc.ID] = *svc
	return nil
}

// --------------------------------------------------
// Slots
// --------------------------------------------------

func (s *Store) ReservedSlots(_ context.Context, barbershopID uint, date time.Time) ([]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []int
	for _, r := range s.reservations {
		if r.BarbershopID == barbershopID && r.Date.Equal(date) && r.Status == string(reservation.StatusReserved) {
			out = append(out, r.SlotNumber)
		}
	}
	sort.Ints(out)
	return out, nil
}

func (s *Store) IsSlotReserved(
	_ context.Context,
	barbershopID uint,
	date time.Time,
	slotNumber int,
	excludeID uint,
) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.conflicts(models.Reservation{
		ID:           excludeID,
		BarbershopID: barbershopID,
		Date:         date,
		SlotNumber:   slotNumber,
		Status:       string(reservation.StatusReserved),
	}), nil
}

// conflicts: outra reserva ativa ocupa o turno de r. Chamar com mu travado.
func (s *Store) conflicts(r models.Reservation) bool {
	if r.Status != string(reservation.StatusReserved) {
		return false
	}
	for id, other := range s.reservations {
		if id == r.ID {
			continue
		}
		if other.BarbershopID == r.BarbershopID &&
			other.Date.Equal(r.Date) &&
			other.SlotNumber == r.SlotNumber &&
			other.Status == string(reservation.StatusReserved) {
			return true
		}
	}
	return false
}

// --------------------------------------------------
// Reservation
// --------------------------------------------------

func (s *Store) CreateReservation(_ context.Context, r *models.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conflicts(*r) {
		return reservation.ErrStoreConflict
	}

	now := time.Now()
	r.ID = s.id()
	r.CreatedAt = now
	r.UpdatedAt = now
	s.reservations[r.ID] = *r
	return nil
}

func (s *Store) GetReservation(_ context.Context, id uint) (*models.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.reservations[id]
	if !ok {
		return nil, reservation.ErrReservationNotFound
	}
	return &r, nil
}

func (s *Store) UpdateReservation(_ context.Context, r *models.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.reservations[r.ID]; !ok {
		return reservation.ErrReservationNotFound
	}
	if s.conflicts(*r) {
		return reservation.ErrStoreConflict
	}

	r.UpdatedAt = time.Now()
	s.reservations[r.ID] = *r
	return nil
}

func (s *Store) DeleteReservation(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.reservations[id]; !ok {
		return reservation.ErrReservationNotFound
	}
	delete(s.reservations, id)
	return nil
}

func (s *Store) ListReservations(_ context.Context, filter reservation.ListFilter) ([]models.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.Reservation{}
	for _, r := range s.reservations {
		if filter.BarbershopID != nil && r.BarbershopID != *filter.BarbershopID {
			continue
		}
		if filter.ClientID != nil && r.ClientID != *filter.ClientID {
			continue
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// --------------------------------------------------
// Stale
// --------------------------------------------------

func (s *Store) ListStale(_ context.Context, asOf time.Time) ([]models.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Reservation
	for _, r := range s.reservations {
		if r.Date.Before(asOf) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) DeleteStale(_ context.Context, asOf time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for id, r := range s.reservations {
		if r.Date.Before(asOf) {
			delete(s.reservations, id)
			n++
		}
	}
	return n, nil
}

// --------------------------------------------------
// Comment
// --------------------------------------------------

func (s *Store) FindByShopAndClient(_ context.Context, barbershopID, clientID uint) (*models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.comments {
		if c.BarbershopID == barbershopID && c.ClientID == clientID {
			return &c, nil
		}
	}
	return nil, nil
}

func (s *Store) GetComment(_ context.Context, id uint) (*models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.comments[id]
	if !ok {
		return nil, comment.ErrCommentNotFound
	}
	return &c, nil
}

func (s *Store) CreateComment(_ context.Context, c *models.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, other := range s.comments {
		if other.BarbershopID == c.BarbershopID && other.ClientID == c.ClientID {
			return comment.ErrCommentExists
		}
	}
	now := time.Now()
	c.ID = s.id()
	c.CreatedAt = now
	c.UpdatedAt = now
	s.comments[c.ID] = *c
	return nil
}

func (s *Store) UpdateComment(_ context.Context, c *models.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.comments[c.ID]; !ok {
		return comment.ErrCommentNotFound
	}
	c.UpdatedAt = time.Now()
	s.comments[c.ID] = *c
	return nil
}

func (s *Store) ListComments(_ context.Context, barbershopID uint) ([]models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.Comment{}
	for _, c := range s.comments {
		if c.BarbershopID == barbershopID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) ListRatings(_ context.Context, barbershopID uint) ([]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []int
	for _, c := range s.comments {
		if c.BarbershopID == barbershopID {
			out = append(out, c.Rating)
		}
	}
	return out, nil
}

// Compile-time check
var (
	_ reservation.Repository = (*Store)(nil)
	_ reservation.StaleStore = (*Store)(nil)
	_ comment.Repository     = (*Store)(nil)
	_ barbershop.Repository  = (*Store)(nil)
)
