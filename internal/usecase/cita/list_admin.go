package cita

import (
	"context"
	"fmt"

	domain "github.com/valkirianails/salon-api/internal/domain/cita"
	"github.com/valkirianails/salon-api/internal/dto"
	"github.com/valkirianails/salon-api/internal/models"
	"github.com/valkirianails/salon-api/internal/timezone"
)

// ======================================================
// FILTRO
// ======================================================

// Exactamente un modo aplica, con precedencia:
// fecha exacta > mes+año > mes actual.
type ListFilter struct {
	Fecha string // "2006-01-02"
	Mes   int    // 1..12, junto con Anio
	Anio  int
}

// ======================================================
// USE CASE
// ======================================================

type ListCitasAdmin struct {
	repo domain.Repository
}

func NewListCitasAdmin(repo domain.Repository) *ListCitasAdmin {
	return &ListCitasAdmin{repo: repo}
}

func (uc *ListCitasAdmin) Execute(
	ctx context.Context,
	f ListFilter,
) ([]dto.CitaAdminDTO, error) {

	var citas []models.Cita
	var err error

	switch {
	case f.Fecha != "":
		citas, err = uc.repo.ListPorFecha(ctx, f.Fecha)

	case f.Mes >= 1 && f.Mes <= 12 && f.Anio > 0:
		desde, hasta := rangoMes(f.Anio, f.Mes)
		citas, err = uc.repo.ListPorRango(ctx, desde, hasta)

	default:
		now := timezone.Now()
		desde, hasta := rangoMes(now.Year(), int(now.Month()))
		citas, err = uc.repo.ListPorRango(ctx, desde, hasta)
	}

	if err != nil {
		return nil, err
	}

	out := make([]dto.CitaAdminDTO, 0, len(citas))
	for _, c := range citas {
		out = append(out, aDTO(c))
	}
	return out, nil
}

// rangoMes devuelve [primer día del mes, primer día del mes siguiente)
// como fechas ISO; comparan bien como texto.
func rangoMes(anio, mes int) (string, string) {
	desde := fmt.Sprintf("%04d-%02d-01", anio, mes)

	mes++
	if mes > 12 {
		mes = 1
		anio++
	}
	hasta := fmt.Sprintf("%04d-%02d-01", anio, mes)

	return desde, hasta
}

func aDTO(c models.Cita) dto.CitaAdminDTO {
	d := dto.CitaAdminDTO{
		ID:              c.ID,
		NombreCliente:   c.NombreCliente,
		TelefonoCliente: c.TelefonoCliente,
		FechaCita:       c.FechaCita,
		HoraCita:        c.HoraCita,
		Notas:           c.Notas,
		Estado:          c.Estado,
		Aceptada:        c.Aceptada,
		ServicioIDs:     make([]uint, 0, len(c.Servicios)),
		Servicios:       make([]string, 0, len(c.Servicios)),
		CategoriasPadre: make([]string, 0, len(c.Servicios)),
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}

	for _, s := range c.Servicios {
		d.ServicioIDs = append(d.ServicioIDs, s.ID)
		d.Servicios = append(d.Servicios, s.Nombre)
		d.CategoriasPadre = append(d.CategoriasPadre, s.CategoriaPadre.Nombre)
	}

	return d
}
