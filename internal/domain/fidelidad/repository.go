package fidelidad

import (
	"context"

	"github.com/valkirianails/salon-api/internal/models"
)

type Repository interface {
	// -------- Tarjeta --------
	Create(
		ctx context.Context,
		t *models.TarjetaFidelidad,
	) error

	GetByID(
		ctx context.Context,
		id uint,
	) (*models.TarjetaFidelidad, error)

	GetByCodigo(
		ctx context.Context,
		codigo string,
	) (*models.TarjetaFidelidad, error)

	GetByTelefono(
		ctx context.Context,
		telefono string,
	) (*models.TarjetaFidelidad, error)

	ExistsTelefono(
		ctx context.Context,
		telefono string,
	) (bool, error)

	ExistsCodigo(
		ctx context.Context,
		codigo string,
	) (bool, error)

	Search(
		ctx context.Context,
		term string,
		offset int,
		limit int,
	) ([]models.TarjetaFidelidad, int64, error)

	UpdateDatos(
		ctx context.Context,
		id uint,
		nombre string,
		telefono string,
	) error

	Delete(
		ctx context.Context,
		id uint,
	) (int64, error)

	// -------- Visitas --------
	// Fija el contador y reconstruye las filas de visita (borrar y
	// reinsertar 1..visitas) en una transacción.
	SetVisitas(
		ctx context.Context,
		id uint,
		visitas int,
		canje bool,
		stampUltimaVisita bool,
	) error

	// Canjear reinicia el ciclo: visitas a 0, canje apagado, ciclo
	// completado +1, y borra el historial de visitas, atómicamente.
	Canjear(
		ctx context.Context,
		id uint,
	) error

	ListVisitas(
		ctx context.Context,
		id uint,
	) ([]models.VisitaFidelidad, error)
}
