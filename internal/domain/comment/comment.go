package comment

import (
	"context"
	"math"

	"github.com/BruksfildServices01/barber-turnos/internal/httperr"
	"github.com/BruksfildServices01/barber-turnos/internal/models"
)

const (
	MinRating = 1
	MaxRating = 5
)

var (
	ErrInvalidRating = httperr.ErrBusinessField(
		"invalid_rating",
		"rating",
		"A nota deve estar entre 1 e 5.",
	)
	ErrCommentExists = httperr.ErrBusinessField(
		"comment_exists",
		"barbershop_id",
		"Você já comentou esta barbearia.",
	)
	ErrCommentNotFound = httperr.ErrBusinessField(
		"comment_not_found",
		"",
		"Comentário não encontrado.",
	)
	ErrCannotComment = httperr.ErrBusinessField(
		"forbidden",
		"",
		"Apenas clientes podem comentar.",
	)
)

func ValidateRating(r int) error {
	if r < MinRating || r > MaxRating {
		return ErrInvalidRating
	}
	return nil
}

// Mean é a nota média com duas casas. Sem notas, zero.
func Mean(ratings []int) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	avg := float64(sum) / float64(len(ratings))
	return math.Round(avg*100) / 100
}

type Repository interface {
	BarbershopExists(ctx context.Context, id uint) (bool, error)

	// FindByShopAndClient devolve (nil, nil) quando não existe.
	FindByShopAndClient(ctx context.Context, barbershopID, clientID uint) (*models.Comment, error)

	// GetComment devolve ErrCommentNotFound.
	GetComment(ctx context.Context, id uint) (*models.Comment, error)
	CreateComment(ctx context.Context, c *models.Comment) error
	UpdateComment(ctx context.Context, c *models.Comment) error
	ListComments(ctx context.Context, barbershopID uint) ([]models.Comment, error)

	ListRatings(ctx context.Context, barbershopID uint) ([]int, error)
	SetBarbershopRating(ctx context.Context, barbershopID uint, rating float64) error
}
