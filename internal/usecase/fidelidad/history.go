package fidelidad

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/valkirianails/salon-api/internal/domain/fidelidad"
	"github.com/valkirianails/salon-api/internal/httperr"
	"github.com/valkirianails/salon-api/internal/models"
)

type HistorialVisitas struct {
	repo domain.Repository
}

func NewHistorialVisitas(repo domain.Repository) *HistorialVisitas {
	return &HistorialVisitas{repo: repo}
}

// Execute devuelve las visitas del ciclo vigente, la más reciente primero.
func (uc *HistorialVisitas) Execute(
	ctx context.Context,
	id uint,
) ([]models.VisitaFidelidad, error) {

	if _, err := uc.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeNotFound)
		}
		return nil, err
	}

	return uc.repo.ListVisitas(ctx, id)
}
