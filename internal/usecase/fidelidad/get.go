package fidelidad

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	domain "github.com/valkirianails/salon-api/internal/domain/fidelidad"
	"github.com/valkirianails/salon-api/internal/httperr"
	"github.com/valkirianails/salon-api/internal/models"
)

type GetTarjeta struct {
	repo domain.Repository
}

func NewGetTarjeta(repo domain.Repository) *GetTarjeta {
	return &GetTarjeta{repo: repo}
}

// PorCodigo busca sin distinguir mayúsculas: el código siempre se
// normaliza a mayúsculas antes de comparar.
func (uc *GetTarjeta) PorCodigo(
	ctx context.Context,
	codigo string,
) (*models.TarjetaFidelidad, error) {

	t, err := uc.repo.GetByCodigo(ctx, strings.ToUpper(codigo))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeNotFound)
		}
		return nil, err
	}
	return t, nil
}

func (uc *GetTarjeta) PorTelefono(
	ctx context.Context,
	telefono string,
) (*models.TarjetaFidelidad, error) {

	if telefono == "" {
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}

	t, err := uc.repo.GetByTelefono(ctx, telefono)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeNotFound)
		}
		return nil, err
	}
	return t, nil
}
