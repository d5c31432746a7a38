package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-turnos/internal/domain/barbershop"
	domain "github.com/BruksfildServices01/barber-turnos/internal/domain/reservation"
	"github.com/BruksfildServices01/barber-turnos/internal/models"
)

// BarbershopGormRepository cuida do perfil e do horário da barbearia do usuário logado.
type BarbershopGormRepository struct {
	db *gorm.DB
}

func NewBarbershopGormRepository(db *gorm.DB) *BarbershopGormRepository {
	return &BarbershopGormRepository{db: db}
}

func (r *BarbershopGormRepository) GetByID(ctx context.Context, id uint) (*models.Barbershop, error) {
	var shop models.Barbershop
	err := r.db.WithContext(ctx).
		Preload("WorkingDays", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&shop, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrBarbershopNotFound
	}
	if err != nil {
		return nil, err
	}
	return &shop, nil
}

// SaveProfile grava só os campos de perfil; horário tem ReplaceSchedule.
func (r *BarbershopGormRepository) SaveProfile(ctx context.Context, shop *models.Barbershop) error {
	return r.db.WithContext(ctx).
		Model(shop).
		Select("name", "phone", "address", "timezone", "updated_at").
		Updates(shop).Error
}

// ReplaceSchedule troca horário, capacidade e dias de uma vez, numa transação.
func (r *BarbershopGormRepository) ReplaceSchedule(ctx context.Context, shop *models.Barbershop) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(shop).
			Select("opening_time", "closing_time", "max_slots_per_day", "updated_at").
			Updates(shop).Error; err != nil {
			return err
		}

		if err := tx.Where("barbershop_id = ?", shop.ID).
			Delete(&models.WorkingDay{}).Error; err != nil {
			return err
		}

		for i := range shop.WorkingDays {
			shop.WorkingDays[i].ID = 0
			shop.WorkingDays[i].BarbershopID = shop.ID
		}
		if len(shop.WorkingDays) > 0 {
			if err := tx.Create(&shop.WorkingDays).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (r *BarbershopGormRepository) ListServices(ctx context.Context, barbershopID uint, onlyActive bool) ([]models.Service, error) {
	q := r.db.WithContext(ctx).Where("barbershop_id = ?", barbershopID)
	if onlyActive {
		q = q.Where("active = ?", true)
	}

	var out []models.Service
	if err := q.Order("name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *BarbershopGormRepository) CreateService(ctx context.Context, s *models.Service) error {
	return r.db.WithContext(ctx).Create(s).Error
}

// GetService só encontra serviços da própria barbearia.
func (r *BarbershopGormRepository) GetService(ctx context.Context, barbershopID, id uint) (*models.Service, error) {
	var s models.Service
	err := r.db.WithContext(ctx).
		Where("id = ? AND barbershop_id = ?", id, barbershopID).
		First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, barbershop.ErrServiceNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *BarbershopGormRepository) SaveService(ctx context.Context, s *models.Service) error {
	return r.db.WithContext(ctx).Save(s).Error
}

var _ barbershop.Repository = (*BarbershopGormRepository)(nil)
