package fidelidad

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/valkirianails/salon-api/internal/audit"
	domain "github.com/valkirianails/salon-api/internal/domain/fidelidad"
	"github.com/valkirianails/salon-api/internal/httperr"
)

type CanjearTarjeta struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCanjearTarjeta(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CanjearTarjeta {
	return &CanjearTarjeta{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CanjearTarjeta) Execute(
	ctx context.Context,
	userID uint,
	id uint,
) error {

	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.ErrBusiness(httperr.CodeNotFound)
		}
		return err
	}

	if !t.CanjeDisponible {
		return httperr.ErrBusiness(httperr.CodeNoRedemptionAvailable)
	}

	if err := uc.repo.Canjear(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "premio_canjeado",
		Entity:   "tarjeta_fidelidad",
		EntityID: &id,
	})

	return nil
}
