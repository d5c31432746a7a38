package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barber-turnos/internal/domain/reservation"
	"github.com/BruksfildServices01/barber-turnos/internal/models"
)

type ReservationGormRepository struct {
	db *gorm.DB
}

func NewReservationGormRepository(db *gorm.DB) *ReservationGormRepository {
	return &ReservationGormRepository{db: db}
}

// day formata a data como literal; o Postgres infere o tipo date.
func day(t time.Time) string {
	return t.Format("2006-01-02")
}

// --------------------------------------------------
// Barbershop
// --------------------------------------------------

func (r *ReservationGormRepository) GetBarbershop(
	ctx context.Context,
	id uint,
) (*models.Barbershop, error) {

	var shop models.Barbershop
	err := r.db.WithContext(ctx).
		Preload("WorkingDays", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("id = ? AND active = ?", id, true).
		First(&shop).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrBarbershopNotFound
	}
	if err != nil {
		return nil, err
	}
	return &shop, nil
}

// --------------------------------------------------
// Slots
// --------------------------------------------------

func (r *ReservationGormRepository) ReservedSlots(
	ctx context.Context,
	barbershopID uint,
	date time.Time,
) ([]int, error) {

	var slots []int
	if err := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("barbershop_id = ? AND date = ? AND status = ?",
			barbershopID, day(date), string(domain.StatusReserved)).
		Order("slot_number ASC").
		Pluck("slot_number", &slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *ReservationGormRepository) IsSlotReserved(
	ctx context.Context,
	barbershopID uint,
	date time.Time,
	slotNumber int,
	excludeID uint,
) (bool, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("barbershop_id = ? AND date = ? AND slot_number = ? AND status = ?",
			barbershopID, day(date), slotNumber, string(domain.StatusReserved))
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// --------------------------------------------------
// Reservation
// --------------------------------------------------

func (r *ReservationGormRepository) CreateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {
	if err := r.db.WithContext(ctx).Create(res).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrStoreConflict
		}
		return err
	}
	return nil
}

func (r *ReservationGormRepository) GetReservation(
	ctx context.Context,
	id uint,
) (*models.Reservation, error) {

	var res models.Reservation
	err := r.db.WithContext(ctx).First(&res, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrReservationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *ReservationGormRepository) UpdateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {
	err := r.db.WithContext(ctx).
		Model(res).
		Select("slot_number", "date", "status", "cancelled_at", "updated_at").
		Updates(res).Error
	if isUniqueViolation(err) {
		return domain.ErrStoreConflict
	}
	return err
}

func (r *ReservationGormRepository) DeleteReservation(
	ctx context.Context,
	id uint,
) error {
	result := r.db.WithContext(ctx).Delete(&models.Reservation{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrReservationNotFound
	}
	return nil
}

func (r *ReservationGormRepository) ListReservations(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Reservation, error) {

	q := r.db.WithContext(ctx).Model(&models.Reservation{})
	if filter.BarbershopID != nil {
		q = q.Where("barbershop_id = ?", *filter.BarbershopID)
	}
	if filter.ClientID != nil {
		q = q.Where("client_id = ?", *filter.ClientID)
	}

	var rows []models.Reservation
	if err := q.Order("date ASC, slot_number ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// --------------------------------------------------
// Stale
// --------------------------------------------------

func (r *ReservationGormRepository) ListStale(
	ctx context.Context,
	asOf time.Time,
) ([]models.Reservation, error) {

	var rows []models.Reservation
	if err := r.db.WithContext(ctx).
		Where("date < ?", day(asOf)).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ReservationGormRepository) DeleteStale(
	ctx context.Context,
	asOf time.Time,
) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("date < ?", day(asOf)).
		Delete(&models.Reservation{})
	return result.RowsAffected, result.Error
}

// Compile-time check
var (
	_ domain.Repository = (*ReservationGormRepository)(nil)
	_ domain.StaleStore = (*ReservationGormRepository)(nil)
)
