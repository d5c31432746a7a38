package comment

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/barber-turnos/internal/audit"
	domain "github.com/BruksfildServices01/barber-turnos/internal/domain/comment"
	"github.com/BruksfildServices01/barber-turnos/internal/domain/reservation"
	"github.com/BruksfildServices01/barber-turnos/internal/httperr"
	"github.com/BruksfildServices01/barber-turnos/internal/models"
)

// ======================================================
// CREATE
// ======================================================

type CreateInput struct {
	Principal    reservation.Principal
	BarbershopID uint
	Rating       int
	Description  string
}

type Create struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreate(repo domain.Repository, audit *audit.Dispatcher) *Create {
	return &Create{repo: repo, audit: audit}
}

func (uc *Create) Execute(ctx context.Context, in CreateInput) (*models.Comment, error) {
	if !in.Principal.IsClient() {
		return nil, domain.ErrCannotComment
	}

	if err := domain.ValidateRating(in.Rating); err != nil {
		return nil, err
	}

	ok, err := uc.repo.BarbershopExists(ctx, in.BarbershopID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, reservation.ErrBarbershopNotFound
	}

	existing, err := uc.repo.FindByShopAndClient(ctx, in.BarbershopID, in.Principal.UserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrCommentExists
	}

	c := &models.Comment{
		BarbershopID: in.BarbershopID,
		ClientID:     in.Principal.UserID,
		Rating:       in.Rating,
		Description:  strings.TrimSpace(in.Description),
	}
	if err := uc.repo.CreateComment(ctx, c); err != nil {
		return nil, err
	}

	if err := recomputeRating(ctx, uc.repo, c.BarbershopID); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: c.BarbershopID,
		UserID:       &in.Principal.UserID,
		Action:       "comment_created",
		Entity:       "comment",
		EntityID:     &c.ID,
	})

	return c, nil
}

// ======================================================
// UPDATE
// ======================================================

type UpdateInput struct {
	Principal    reservation.Principal
	CommentID    uint
	BarbershopID *uint
	Rating       *int
	Description  *string
}

type Update struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdate(repo domain.Repository, audit *audit.Dispatcher) *Update {
	return &Update{repo: repo, audit: audit}
}

func (uc *Update) Execute(ctx context.Context, in UpdateInput) (*models.Comment, error) {
	c, err := uc.repo.GetComment(ctx, in.CommentID)
	if err != nil {
		return nil, err
	}

	if !in.Principal.IsAdmin() && c.ClientID != in.Principal.UserID {
		return nil, reservation.ErrForbidden
	}

	if in.BarbershopID != nil && *in.BarbershopID != c.BarbershopID {
		return nil, httperr.ErrBusinessField(
			reservation.ErrImmutableField.Code,
			"barbershop_id",
			"A barbearia de um comentário não pode ser alterada.",
		)
	}

	oldRating := c.Rating
	if in.Rating != nil {
		if err := domain.ValidateRating(*in.Rating); err != nil {
			return nil, err
		}
		c.Rating = *in.Rating
	}
	if in.Description != nil {
		c.Description = strings.TrimSpace(*in.Description)
	}

	if err := uc.repo.UpdateComment(ctx, c); err != nil {
		return nil, err
	}

	if c.Rating != oldRating {
		if err := recomputeRating(ctx, uc.repo, c.BarbershopID); err != nil {
			return nil, err
		}
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: c.BarbershopID,
		UserID:       &in.Principal.UserID,
		Action:       "comment_updated",
		Entity:       "comment",
		EntityID:     &c.ID,
	})

	return c, nil
}

// ======================================================
// LIST
// ======================================================

type List struct {
	repo domain.Repository
}

func NewList(repo domain.Repository) *List {
	return &List{repo: repo}
}

func (uc *List) Execute(ctx context.Context, barbershopID uint) ([]models.Comment, error) {
	ok, err := uc.repo.BarbershopExists(ctx, barbershopID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, reservation.ErrBarbershopNotFound
	}
	return uc.repo.ListComments(ctx, barbershopID)
}

func recomputeRating(ctx context.Context, repo domain.Repository, barbershopID uint) error {
	ratings, err := repo.ListRatings(ctx, barbershopID)
	if err != nil {
		return err
	}
	return repo.SetBarbershopRating(ctx, barbershopID, domain.Mean(ratings))
}
