package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barber-turnos/internal/domain/comment"
	"github.com/BruksfildServices01/barber-turnos/internal/models"
)

type CommentGormRepository struct {
	db *gorm.DB
}

func NewCommentGormRepository(db *gorm.DB) *CommentGormRepository {
	return &CommentGormRepository{db: db}
}

func (r *CommentGormRepository) BarbershopExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Barbershop{}).
		Where("id = ? AND active = ?", id, true).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *CommentGormRepository) FindByShopAndClient(
	ctx context.Context,
	barbershopID, clientID uint,
) (*models.Comment, error) {

	var c models.Comment
	err := r.db.WithContext(ctx).
		Where("barbershop_id = ? AND client_id = ?", barbershopID, clientID).
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CommentGormRepository) GetComment(ctx context.Context, id uint) (*models.Comment, error) {
	var c models.Comment
	err := r.db.WithContext(ctx).First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrCommentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CommentGormRepository) CreateComment(ctx context.Context, c *models.Comment) error {
	err := r.db.WithContext(ctx).Create(c).Error
	if isUniqueViolation(err) {
		return domain.ErrCommentExists
	}
	return err
}

func (r *CommentGormRepository) UpdateComment(ctx context.Context, c *models.Comment) error {
	return r.db.WithContext(ctx).
		Model(c).
		Select("rating", "description", "updated_at").
		Updates(c).Error
}

func (r *CommentGormRepository) ListComments(ctx context.Context, barbershopID uint) ([]models.Comment, error) {
	var out []models.Comment
	if err := r.db.WithContext(ctx).
		Where("barbershop_id = ?", barbershopID).
		Order("created_at DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CommentGormRepository) ListRatings(ctx context.Context, barbershopID uint) ([]int, error) {
	var ratings []int
	if err := r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("barbershop_id = ?", barbershopID).
		Pluck("rating", &ratings).Error; err != nil {
		return nil, err
	}
	return ratings, nil
}

func (r *CommentGormRepository) SetBarbershopRating(ctx context.Context, barbershopID uint, rating float64) error {
	return r.db.WithContext(ctx).
		Model(&models.Barbershop{}).
		Where("id = ?", barbershopID).
		Update("rating", rating).Error
}

// Compile-time check
var _ domain.Repository = (*CommentGormRepository)(nil)
