package cita

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/valkirianails/salon-api/internal/audit"
	domain "github.com/valkirianails/salon-api/internal/domain/cita"
	"github.com/valkirianails/salon-api/internal/httperr"
	"github.com/valkirianails/salon-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

// Todos los campos son opcionales: nil / vacío significa "no tocar".
type UpdateCitaInput struct {
	NombreCliente   *string
	TelefonoCliente *string
	FechaCita       *string
	HoraCita        *string
	Notas           *string

	ServicioIDs []uint

	Aceptada *bool
	Estado   string
}

// ======================================================
// USE CASE
// ======================================================

type UpdateCita struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateCita(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateCita {
	return &UpdateCita{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateCita) Execute(
	ctx context.Context,
	userID uint,
	id uint,
	in UpdateCitaInput,
) (*models.Cita, error) {

	existente, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeNotFound)
		}
		return nil, err
	}

	campos := camposDeUpdate(existente.Estado, in)

	var servicioIDs []uint
	if len(in.ServicioIDs) > 0 {
		servicioIDs = in.ServicioIDs
	}

	if len(campos) == 0 && servicioIDs == nil {
		return nil, httperr.ErrBusiness(httperr.CodeNoChanges)
	}

	campos["updated_at"] = time.Now()

	if err := uc.repo.Update(ctx, id, campos, servicioIDs); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "cita_actualizada",
		Entity:   "cita",
		EntityID: &id,
	})

	return uc.repo.GetByID(ctx, id)
}

// camposDeUpdate mapea el esquema fijo de campos opcionales a pares
// (columna, valor); nunca se concatena valor de usuario en el SQL.
func camposDeUpdate(estadoActual string, in UpdateCitaInput) map[string]any {
	campos := map[string]any{}

	if in.NombreCliente != nil && *in.NombreCliente != "" {
		campos["nombre_cliente"] = *in.NombreCliente
	}
	if in.TelefonoCliente != nil && *in.TelefonoCliente != "" {
		campos["telefono_cliente"] = *in.TelefonoCliente
	}
	if in.FechaCita != nil && *in.FechaCita != "" {
		campos["fecha_cita"] = *in.FechaCita
	}
	if in.HoraCita != nil && *in.HoraCita != "" {
		campos["hora_cita"] = *in.HoraCita
	}
	if in.Notas != nil {
		campos["notas"] = *in.Notas
	}

	if in.Aceptada != nil {
		campos["aceptada"] = *in.Aceptada
		campos["estado"] = domain.DeriveEstado(estadoActual, in.Aceptada, in.Estado)
	} else if domain.EsEstadoValido(in.Estado) {
		campos["estado"] = in.Estado
	}

	return campos
}
