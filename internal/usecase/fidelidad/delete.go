package fidelidad

import (
	"context"

	"github.com/valkirianails/salon-api/internal/audit"
	domain "github.com/valkirianails/salon-api/internal/domain/fidelidad"
	"github.com/valkirianails/salon-api/internal/httperr"
)

type EliminarTarjeta struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewEliminarTarjeta(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *EliminarTarjeta {
	return &EliminarTarjeta{
		repo:  repo,
		audit: audit,
	}
}

func (uc *EliminarTarjeta) Execute(
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
		Action:   "tarjeta_eliminada",
		Entity:   "tarjeta_fidelidad",
		EntityID: &id,
	})

	return nil
}
