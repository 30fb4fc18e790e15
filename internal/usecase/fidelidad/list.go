package fidelidad

import (
	"context"

	domain "github.com/valkirianails/salon-api/internal/domain/fidelidad"
	"github.com/valkirianails/salon-api/internal/models"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

type ListResult struct {
	Tarjetas   []models.TarjetaFidelidad
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

type ListTarjetas struct {
	repo domain.Repository
}

func NewListTarjetas(repo domain.Repository) *ListTarjetas {
	return &ListTarjetas{repo: repo}
}

// Execute busca por substring (sensible a mayúsculas, semántica LIKE de
// la base) sobre nombre o teléfono. page es 1-based; total de páginas
// nunca baja de 1, incluso sin resultados.
func (uc *ListTarjetas) Execute(
	ctx context.Context,
	search string,
	page int,
	limit int,
) (*ListResult, error) {

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	offset := (page - 1) * limit

	tarjetas, total, err := uc.repo.Search(ctx, search, offset, limit)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	if totalPages < 1 {
		totalPages = 1
	}

	return &ListResult{
		Tarjetas:   tarjetas,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}
