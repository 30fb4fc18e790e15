package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/valkirianails/salon-api/internal/domain/cita"
	"github.com/valkirianails/salon-api/internal/models"
)

type CitaGormRepository struct {
	db *gorm.DB
}

func NewCitaGormRepository(db *gorm.DB) *CitaGormRepository {
	return &CitaGormRepository{db: db}
}

// citaServicio es la fila de la tabla de asociación many2many que GORM
// genera para Cita.Servicios. La manejamos a mano para conservar la
// semántica de reemplazo completo (borrar e insertar).
type citaServicio struct {
	CitaID         uint `gorm:"column:cita_id"`
	SubcategoriaID uint `gorm:"column:subcategoria_id"`
}

func (citaServicio) TableName() string { return "cita_servicios" }

// --------------------------------------------------
// Servicios
// --------------------------------------------------

func (r *CitaGormRepository) CountServiciosActivos(
	ctx context.Context,
	ids []uint,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Subcategoria{}).
		Where("id IN ? AND activo = ?", ids, true).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// --------------------------------------------------
// Cita
// --------------------------------------------------

func (r *CitaGormRepository) Create(
	ctx context.Context,
	c *models.Cita,
	servicioIDs []uint,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Servicios").Create(c).Error; err != nil {
			return err
		}

		filas := make([]citaServicio, 0, len(servicioIDs))
		for _, sid := range servicioIDs {
			filas = append(filas, citaServicio{
				CitaID:         c.ID,
				SubcategoriaID: sid,
			})
		}

		return tx.Create(&filas).Error
	})
}

func (r *CitaGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Cita, error) {

	var c models.Cita
	if err := r.db.WithContext(ctx).
		Preload("Servicios").
		Preload("Servicios.CategoriaPadre").
		First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CitaGormRepository) ListPorFecha(
	ctx context.Context,
	fecha string,
) ([]models.Cita, error) {

	var citas []models.Cita
	if err := r.db.WithContext(ctx).
		Preload("Servicios").
		Preload("Servicios.CategoriaPadre").
		Where("fecha_cita = ?", fecha).
		Order("fecha_cita ASC, hora_cita ASC").
		Find(&citas).Error; err != nil {
		return nil, err
	}
	return citas, nil
}

func (r *CitaGormRepository) ListPorRango(
	ctx context.Context,
	desde string,
	hastaExcl string,
) ([]models.Cita, error) {

	var citas []models.Cita
	if err := r.db.WithContext(ctx).
		Preload("Servicios").
		Preload("Servicios.CategoriaPadre").
		Where("fecha_cita >= ? AND fecha_cita < ?", desde, hastaExcl).
		Order("fecha_cita ASC, hora_cita ASC").
		Find(&citas).Error; err != nil {
		return nil, err
	}
	return citas, nil
}

func (r *CitaGormRepository) Update(
	ctx context.Context,
	id uint,
	campos map[string]any,
	servicioIDs []uint,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(campos) > 0 {
			if err := tx.Model(&models.Cita{}).
				Where("id = ?", id).
				Updates(campos).Error; err != nil {
				return err
			}
		}

		if servicioIDs == nil {
			return nil
		}

		if err := tx.
			Where("cita_id = ?", id).
			Delete(&citaServicio{}).Error; err != nil {
			return err
		}

		filas := make([]citaServicio, 0, len(servicioIDs))
		for _, sid := range servicioIDs {
			filas = append(filas, citaServicio{
				CitaID:         id,
				SubcategoriaID: sid,
			})
		}

		return tx.Create(&filas).Error
	})
}

func (r *CitaGormRepository) Delete(
	ctx context.Context,
	id uint,
) (int64, error) {

	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("cita_id = ?", id).
			Delete(&citaServicio{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&models.Cita{}, id)
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected
		return nil
	})

	return affected, err
}

// Compile-time check
var _ domain.Repository = (*CitaGormRepository)(nil)
