package cita

import (
	"context"

	domain "github.com/valkirianails/salon-api/internal/domain/cita"
	"github.com/valkirianails/salon-api/internal/httperr"
	"github.com/valkirianails/salon-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateCitaInput struct {
	NombreCliente   string
	TelefonoCliente string

	FechaCita string
	HoraCita  string

	ServicioIDs []uint
	Notas       *string
}

// ======================================================
// USE CASE
// ======================================================

type CreateCita struct {
	repo domain.Repository
}

func NewCreateCita(repo domain.Repository) *CreateCita {
	return &CreateCita{repo: repo}
}

// validar chequea los campos obligatorios y que TODOS los servicios
// referidos existan y estén activos: validez parcial se rechaza, no se
// filtra.
func validar(
	ctx context.Context,
	repo domain.Repository,
	in CreateCitaInput,
) error {

	if in.NombreCliente == "" ||
		in.TelefonoCliente == "" ||
		in.FechaCita == "" ||
		in.HoraCita == "" ||
		len(in.ServicioIDs) == 0 {
		return httperr.ErrBusiness(httperr.CodeValidation)
	}

	activos, err := repo.CountServiciosActivos(ctx, in.ServicioIDs)
	if err != nil {
		return err
	}
	if activos != int64(len(in.ServicioIDs)) {
		return httperr.ErrBusiness(httperr.CodeInvalidService)
	}

	return nil
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateCita) Execute(
	ctx context.Context,
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
		Estado:          string(domain.EstadoPendiente),
		Aceptada:        false,
	}

	if err := uc.repo.Create(ctx, c, in.ServicioIDs); err != nil {
		return nil, err
	}

	return c, nil
}
