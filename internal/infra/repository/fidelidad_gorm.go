package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/valkirianails/salon-api/internal/domain/fidelidad"
	"github.com/valkirianails/salon-api/internal/models"
)

type FidelidadGormRepository struct {
	db *gorm.DB
}

func NewFidelidadGormRepository(db *gorm.DB) *FidelidadGormRepository {
	return &FidelidadGormRepository{db: db}
}

// --------------------------------------------------
// Tarjeta
// --------------------------------------------------

func (r *FidelidadGormRepository) Create(
	ctx context.Context,
	t *models.TarjetaFidelidad,
) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *FidelidadGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.TarjetaFidelidad, error) {

	var t models.TarjetaFidelidad
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *FidelidadGormRepository) GetByCodigo(
	ctx context.Context,
	codigo string,
) (*models.TarjetaFidelidad, error) {

	var t models.TarjetaFidelidad
	if err := r.db.WithContext(ctx).
		Where("codigo = ?", codigo).
		First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *FidelidadGormRepository) GetByTelefono(
	ctx context.Context,
	telefono string,
) (*models.TarjetaFidelidad, error) {

	var t models.TarjetaFidelidad
	if err := r.db.WithContext(ctx).
		Where("telefono_cliente = ?", telefono).
		First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *FidelidadGormRepository) ExistsTelefono(
	ctx context.Context,
	telefono string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.TarjetaFidelidad{}).
		Where("telefono_cliente = ?", telefono).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *FidelidadGormRepository) ExistsCodigo(
	ctx context.Context,
	codigo string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.TarjetaFidelidad{}).
		Where("codigo = ?", codigo).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *FidelidadGormRepository) Search(
	ctx context.Context,
	term string,
	offset int,
	limit int,
) ([]models.TarjetaFidelidad, int64, error) {

	q := r.db.WithContext(ctx).Model(&models.TarjetaFidelidad{})

	if term != "" {
		like := "%" + term + "%"
		q = q.Where("nombre_cliente LIKE ? OR telefono_cliente LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tarjetas []models.TarjetaFidelidad
	if err := q.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&tarjetas).Error; err != nil {
		return nil, 0, err
	}

	return tarjetas, total, nil
}

func (r *FidelidadGormRepository) UpdateDatos(
	ctx context.Context,
	id uint,
	nombre string,
	telefono string,
) error {

	return r.db.WithContext(ctx).
		Model(&models.TarjetaFidelidad{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"nombre_cliente":   nombre,
			"telefono_cliente": telefono,
		}).Error
}

func (r *FidelidadGormRepository) Delete(
	ctx context.Context,
	id uint,
) (int64, error) {

	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("tarjeta_id = ?", id).
			Delete(&models.VisitaFidelidad{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&models.TarjetaFidelidad{}, id)
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected
		return nil
	})

	return affected, err
}

// --------------------------------------------------
// Visitas
// --------------------------------------------------

func (r *FidelidadGormRepository) SetVisitas(
	ctx context.Context,
	id uint,
	visitas int,
	canje bool,
	stampUltimaVisita bool,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		campos := map[string]any{
			"visitas_acumuladas": visitas,
			"canje_disponible":   canje,
		}
		if stampUltimaVisita {
			campos["ultima_visita"] = time.Now()
		}

		if err := tx.Model(&models.TarjetaFidelidad{}).
			Where("id = ?", id).
			Updates(campos).Error; err != nil {
			return err
		}

		if err := tx.
			Where("tarjeta_id = ?", id).
			Delete(&models.VisitaFidelidad{}).Error; err != nil {
			return err
		}

		if visitas == 0 {
			return nil
		}

		filas := make([]models.VisitaFidelidad, 0, visitas)
		for i := 1; i <= visitas; i++ {
			filas = append(filas, models.VisitaFidelidad{
				TarjetaID:    id,
				NumeroVisita: i,
			})
		}

		return tx.Create(&filas).Error
	})
}

func (r *FidelidadGormRepository) Canjear(
	ctx context.Context,
	id uint,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.TarjetaFidelidad{}).
			Where("id = ?", id).
			Updates(map[string]any{
				"visitas_acumuladas": 0,
				"canje_disponible":   false,
				"ciclos_completados": gorm.Expr("ciclos_completados + 1"),
				"ultima_visita":      time.Now(),
			}).Error; err != nil {
			return err
		}

		return tx.
			Where("tarjeta_id = ?", id).
			Delete(&models.VisitaFidelidad{}).Error
	})
}

func (r *FidelidadGormRepository) ListVisitas(
	ctx context.Context,
	id uint,
) ([]models.VisitaFidelidad, error) {

	var visitas []models.VisitaFidelidad
	if err := r.db.WithContext(ctx).
		Where("tarjeta_id = ?", id).
		Order("created_at DESC, numero_visita DESC").
		Find(&visitas).Error; err != nil {
		return nil, err
	}
	return visitas, nil
}

// Compile-time check
var _ domain.Repository = (*FidelidadGormRepository)(nil)
