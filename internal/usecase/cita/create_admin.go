package cita

import (
	"context"

	"github.com/valkirianails/salon-api/internal/audit"
	domain "github.com/valkirianails/salon-api/internal/domain/cita"
	"github.com/valkirianails/salon-api/internal/models"
)

// CreateCitaAdmin es la variante del panel: la cita nace confirmada y
// aceptada porque la registra la propia administradora.
type CreateCitaAdmin struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateCitaAdmin(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateCitaAdmin {
	return &CreateCitaAdmin{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateCitaAdmin) Execute(
	ctx context.Context,
	userID uint,
	in CreateCitaInput,
) (*models.Cita, error) {

	if err := validar(ctx, uc.repo, in); err != nil {
		return nil, err
	}

	c := &models.Cita{
		NombreCliente:   in.NombreCliente,
		TelefonoCliente: in.TelefonoCliente,
		FechaCita:       in.FechaCita,
		HoraCita:        in.HoraCita,
		Notas:           in.Notas,
		Estado:          string(domain.EstadoConfirmada),
		Aceptada:        true,
	}

	if err := uc.repo.Create(ctx, c, in.ServicioIDs); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "cita_creada_admin",
		Entity:   "cita",
		EntityID: &c.ID,
	})

	return uc.repo.GetByID(ctx, c.ID)
}
