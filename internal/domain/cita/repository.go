package cita

import (
	"context"

	"github.com/valkirianails/salon-api/internal/models"
)

type Repository interface {
	// -------- Servicios (subcategorías) --------
	CountServiciosActivos(
		ctx context.Context,
		ids []uint,
	) (int64, error)

	// -------- Cita (create) --------
	// Inserta la cita y sus asociaciones de servicio en una sola
	// transacción: o entra todo, o no entra nada.
	Create(
		ctx context.Context,
		c *models.Cita,
		servicioIDs []uint,
	) error

	// -------- Cita (read) --------
	GetByID(
		ctx context.Context,
		id uint,
	) (*models.Cita, error)

	ListPorFecha(
		ctx context.Context,
		fecha string,
	) ([]models.Cita, error)

	// Rango [desde, hastaExcl) sobre fecha_cita; las fechas ISO
	// comparan bien como texto.
	ListPorRango(
		ctx context.Context,
		desde string,
		hastaExcl string,
	) ([]models.Cita, error)

	// -------- Cita (update / delete) --------
	// Aplica los campos y, si servicioIDs no es nil, reemplaza el
	// conjunto completo de asociaciones, todo en una transacción.
	Update(
		ctx context.Context,
		id uint,
		campos map[string]any,
		servicioIDs []uint,
	) error

	Delete(
		ctx context.Context,
		id uint,
	) (int64, error)
}
