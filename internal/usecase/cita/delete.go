package cita

import (
	"context"

	"github.com/valkirianails/salon-api/internal/audit"
	domain "github.com/valkirianails/salon-api/internal/domain/cita"
	"github.com/valkirianails/salon-api/internal/httperr"
)

type DeleteCita struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteCita(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteCita {
	return &DeleteCita{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteCita) Execute(
	ctx context.Context,
	userID uint,
	id uint,
) error {

	affected, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return httperr.ErrBusiness(httperr.CodeNotFound)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "cita_eliminada",
		Entity:   "cita",
		EntityID: &id,
	})

	return nil
}
