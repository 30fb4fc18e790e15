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

type ActualizarTarjeta struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewActualizarTarjeta(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ActualizarTarjeta {
	return &ActualizarTarjeta{
		repo:  repo,
		audit: audit,
	}
}

func (uc *ActualizarTarjeta) Execute(
	ctx context.Context,
	userID uint,
	id uint,
	nombre string,
	telefono string,
) (*models.TarjetaFidelidad, error) {

	if nombre == "" || telefono == "" {
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}

	if _, err := uc.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeNotFound)
		}
		return nil, err
	}

	if err := uc.repo.UpdateDatos(ctx, id, nombre, telefono); err != nil {
		// El teléfono chocó con la tarjeta de otra clienta.
		if httperr.IsUniqueViolation(err) {
			return nil, httperr.ErrBusiness(httperr.CodeDuplicatePhone)
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "tarjeta_actualizada",
		Entity:   "tarjeta_fidelidad",
		EntityID: &id,
	})

	return uc.repo.GetByID(ctx, id)
}
