package fidelidad

import (
	"context"
	"errors"

	"github.com/valkirianails/salon-api/internal/audit"
	domain "github.com/valkirianails/salon-api/internal/domain/fidelidad"
	"github.com/valkirianails/salon-api/internal/httperr"
	"github.com/valkirianails/salon-api/internal/models"
)

// ErrCodigosAgotados se devuelve si el sorteo de códigos agota el tope
// de intentos; en la práctica solo pasa con la tabla saturada.
var ErrCodigosAgotados = errors.New("no se pudo generar un código único de tarjeta")

type RegistrarTarjeta struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRegistrarTarjeta(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *RegistrarTarjeta {
	return &RegistrarTarjeta{
		repo:  repo,
		audit: audit,
	}
}

func (uc *RegistrarTarjeta) Execute(
	ctx context.Context,
	userID uint,
	nombre string,
	telefono string,
) (*models.TarjetaFidelidad, error) {

	if nombre == "" || telefono == "" {
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}

	// Chequeo explícito antes del insert; la restricción de unicidad en
	// la base queda como segunda línea de defensa ante registros
	// concurrentes.
	existe, err := uc.repo.ExistsTelefono(ctx, telefono)
	if err != nil {
		return nil, err
	}
	if existe {
		return nil, httperr.ErrBusiness(httperr.CodeDuplicatePhone)
	}

	codigo, err := uc.generarCodigoUnico(ctx)
	if err != nil {
		return nil, err
	}

	t := &models.TarjetaFidelidad{
		Codigo:          codigo,
		NombreCliente:   nombre,
		TelefonoCliente: telefono,
	}

	if err := uc.repo.Create(ctx, t); err != nil {
		if httperr.IsUniqueViolation(err) {
			return nil, httperr.ErrBusiness(httperr.CodeDuplicatePhone)
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "tarjeta_registrada",
		Entity:   "tarjeta_fidelidad",
		EntityID: &t.ID,
	})

	return t, nil
}

func (uc *RegistrarTarjeta) generarCodigoUnico(ctx context.Context) (string, error) {
	for i := 0; i < domain.MaxIntentosCodigo; i++ {
		codigo := domain.NuevoCodigo()

		existe, err := uc.repo.ExistsCodigo(ctx, codigo)
		if err != nil {
			return "", err
		}
		if !existe {
			return codigo, nil
		}
	}
	return "", ErrCodigosAgotados
}
