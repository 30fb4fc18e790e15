package fidelidad

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/valkirianails/salon-api/internal/audit"
	domain "github.com/valkirianails/salon-api/internal/domain/fidelidad"
	"github.com/valkirianails/salon-api/internal/httperr"
	"github.com/valkirianails/salon-api/internal/models"
)

type EditarVisitas struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewEditarVisitas(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *EditarVisitas {
	return &EditarVisitas{
		repo:  repo,
		audit: audit,
	}
}

// Execute fija el contador absoluto de visitas (no incrementa). El
// historial se reconstruye completo: borrar e insertar 1..visitas, de
// modo que bajar y volver a subir produce sellos de tiempo nuevos.
func (uc *EditarVisitas) Execute(
	ctx context.Context,
	userID uint,
	id uint,
	visitas int,
) (*models.TarjetaFidelidad, error) {

	if !domain.VisitasEnRango(visitas) {
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}

	actual, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeNotFound)
		}
		return nil, err
	}

	// Con un canje pendiente no se puede bajar el contador: primero se
	// canjea el premio.
	if actual.CanjeDisponible && visitas < domain.MaxVisitas {
		return nil, httperr.ErrBusiness(httperr.CodeRedemptionPending)
	}

	canje := domain.CanjePara(visitas)
	stamp := visitas > actual.VisitasAcumuladas

	if err := uc.repo.SetVisitas(ctx, id, visitas, canje, stamp); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "visitas_editadas",
		Entity:   "tarjeta_fidelidad",
		EntityID: &id,
		Metadata: map[string]int{"visitas": visitas},
	})

	return uc.repo.GetByID(ctx, id)
}
