package cita

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/valkirianails/salon-api/internal/httperr"
	"github.com/valkirianails/salon-api/internal/models"
	"github.com/valkirianails/salon-api/internal/timezone"
)

// ======================================================
// FAKE REPOSITORY
// ======================================================

type fakeCitaRepo struct {
	serviciosActivos map[uint]bool

	citas     map[uint]*models.Cita
	servicios map[uint][]uint
	nextID    uint

	ultimoRango [2]string
	ultimaFecha string
}

func newFakeCitaRepo(activos ...uint) *fakeCitaRepo {
	r := &fakeCitaRepo{
		serviciosActivos: map[uint]bool{},
		citas:            map[uint]*models.Cita{},
		servicios:        map[uint][]uint{},
	}
	for _, id := range activos {
		r.serviciosActivos[id] = true
	}
	return r
}

func (r *fakeCitaRepo) CountServiciosActivos(_ context.Context, ids []uint) (int64, error) {
	var n int64
	for _, id := range ids {
		if r.serviciosActivos[id] {
			n++
		}
	}
	return n, nil
}

func (r *fakeCitaRepo) Create(_ context.Context, c *models.Cita, servicioIDs []uint) error {
	r.nextID++
	c.ID = r.nextID

	copia := *c
	r.citas[c.ID] = &copia
	r.servicios[c.ID] = append([]uint(nil), servicioIDs...)
	return nil
}

func (r *fakeCitaRepo) GetByID(_ context.Context, id uint) (*models.Cita, error) {
	c, ok := r.citas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copia := *c
	return &copia, nil
}

func (r *fakeCitaRepo) ListPorFecha(_ context.Context, fecha string) ([]models.Cita, error) {
	r.ultimaFecha = fecha

	var out []models.Cita
	for _, c := range r.citas {
		if c.FechaCita == fecha {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeCitaRepo) ListPorRango(_ context.Context, desde, hastaExcl string) ([]models.Cita, error) {
	r.ultimoRango = [2]string{desde, hastaExcl}

	var out []models.Cita
	for _, c := range r.citas {
		if c.FechaCita >= desde && c.FechaCita < hastaExcl {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeCitaRepo) Update(_ context.Context, id uint, campos map[string]any, servicioIDs []uint) error {
	c, ok := r.citas[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}

	for col, v := range campos {
		switch col {
		case "nombre_cliente":
			c.NombreCliente = v.(string)
		case "telefono_cliente":
			c.TelefonoCliente = v.(string)
		case "fecha_cita":
			c.FechaCita = v.(string)
		case "hora_cita":
			c.HoraCita = v.(string)
		case "notas":
			s := v.(string)
			c.Notas = &s
		case "estado":
			c.Estado = v.(string)
		case "aceptada":
			c.Aceptada = v.(bool)
		}
	}

	if servicioIDs != nil {
		r.servicios[id] = append([]uint(nil), servicioIDs...)
	}
	return nil
}

func (r *fakeCitaRepo) Delete(_ context.Context, id uint) (int64, error) {
	if _, ok := r.citas[id]; !ok {
		return 0, nil
	}
	delete(r.citas, id)
	delete(r.servicios, id)
	return 1, nil
}

func strPtr(s string) *string { return &s }

// ======================================================
// CREATE
// ======================================================

func TestCreateCita_Publica(t *testing.T) {
	repo := newFakeCitaRepo(1, 2)
	uc := NewCreateCita(repo)

	c, err := uc.Execute(context.Background(), CreateCitaInput{
		NombreCliente:   "Lucía",
		TelefonoCliente: "55512345",
		FechaCita:       "2026-09-10",
		HoraCita:        "14:30",
		ServicioIDs:     []uint{1, 2},
	})

	require.NoError(t, err)
	assert.Equal(t, "pendiente", c.Estado)
	assert.False(t, c.Aceptada)
	assert.Equal(t, []uint{1, 2}, repo.servicios[c.ID])
}

func TestCreateCita_CamposObligatorios(t *testing.T) {
	repo := newFakeCitaRepo(1)
	uc := NewCreateCita(repo)

	_, err := uc.Execute(context.Background(), CreateCitaInput{
		NombreCliente: "Lucía",
		FechaCita:     "2026-09-10",
		HoraCita:      "14:30",
		ServicioIDs:   []uint{1},
	})

	assert.True(t, httperr.IsBusiness(err, httperr.CodeValidation))
	assert.Empty(t, repo.citas)
}

func TestCreateCita_ServicioInactivoRechazaTodo(t *testing.T) {
	repo := newFakeCitaRepo(1, 2)
	uc := NewCreateCita(repo)

	// El 99 no existe: no se filtra, se rechaza la cita completa.
	_, err := uc.Execute(context.Background(), CreateCitaInput{
		NombreCliente:   "Lucía",
		TelefonoCliente: "55512345",
		FechaCita:       "2026-09-10",
		HoraCita:        "14:30",
		ServicioIDs:     []uint{1, 2, 99},
	})

	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidService))
	assert.Empty(t, repo.citas)
}

func TestCreateCitaAdmin_NaceConfirmada(t *testing.T) {
	repo := newFakeCitaRepo(3)
	uc := NewCreateCitaAdmin(repo, nil)

	c, err := uc.Execute(context.Background(), 7, CreateCitaInput{
		NombreCliente:   "Marta",
		TelefonoCliente: "55598765",
		FechaCita:       "2026-09-11",
		HoraCita:        "10:00",
		ServicioIDs:     []uint{3},
	})

	require.NoError(t, err)
	assert.Equal(t, "confirmada", c.Estado)
	assert.True(t, c.Aceptada)
}

// ======================================================
// LIST
// ======================================================

func TestListCitas_PrecedenciaFecha(t *testing.T) {
	repo := newFakeCitaRepo()
	uc := NewListCitasAdmin(repo)

	_, err := uc.Execute(context.Background(), ListFilter{
		Fecha: "2026-09-10",
		Mes:   3, // se ignora: la fecha exacta gana
		Anio:  2026,
	})

	require.NoError(t, err)
	assert.Equal(t, "2026-09-10", repo.ultimaFecha)
	assert.Zero(t, repo.ultimoRango[0])
}

func TestListCitas_PorMesYAnio(t *testing.T) {
	repo := newFakeCitaRepo()
	uc := NewListCitasAdmin(repo)

	_, err := uc.Execute(context.Background(), ListFilter{Mes: 12, Anio: 2026})

	require.NoError(t, err)
	assert.Equal(t, "2026-12-01", repo.ultimoRango[0])
	assert.Equal(t, "2027-01-01", repo.ultimoRango[1])
}

func TestListCitas_DefaultMesActual(t *testing.T) {
	repo := newFakeCitaRepo()
	uc := NewListCitasAdmin(repo)

	_, err := uc.Execute(context.Background(), ListFilter{})
	require.NoError(t, err)

	hoy := timezone.Now().Format("2006-01-02")
	assert.Regexp(t, `^\d{4}-\d{2}-01$`, repo.ultimoRango[0])
	assert.Regexp(t, `^\d{4}-\d{2}-01$`, repo.ultimoRango[1])
	assert.GreaterOrEqual(t, hoy, repo.ultimoRango[0])
	assert.Less(t, hoy, repo.ultimoRango[1])
}

func TestRangoMes(t *testing.T) {
	desde, hasta := rangoMes(2026, 2)
	assert.Equal(t, "2026-02-01", desde)
	assert.Equal(t, "2026-03-01", hasta)

	desde, hasta = rangoMes(2026, 12)
	assert.Equal(t, "2026-12-01", desde)
	assert.Equal(t, "2027-01-01", hasta)
}

func TestListCitas_FiltraPorRango(t *testing.T) {
	repo := newFakeCitaRepo(1)
	crear := NewCreateCita(repo)

	for _, fecha := range []string{"2026-11-30", "2026-12-01", "2026-12-31", "2027-01-01"} {
		_, err := crear.Execute(context.Background(), CreateCitaInput{
			NombreCliente:   "Cliente",
			TelefonoCliente: "555",
			FechaCita:       fecha,
			HoraCita:        "09:00",
			ServicioIDs:     []uint{1},
		})
		require.NoError(t, err)
	}

	uc := NewListCitasAdmin(repo)
	out, err := uc.Execute(context.Background(), ListFilter{Mes: 12, Anio: 2026})

	require.NoError(t, err)
	assert.Len(t, out, 2)
	for _, c := range out {
		assert.GreaterOrEqual(t, c.FechaCita, "2026-12-01")
		assert.Less(t, c.FechaCita, "2027-01-01")
	}
}

// ======================================================
// UPDATE
// ======================================================

func crearCitaDePrueba(t *testing.T, repo *fakeCitaRepo) *models.Cita {
	t.Helper()

	c, err := NewCreateCita(repo).Execute(context.Background(), CreateCitaInput{
		NombreCliente:   "Lucía",
		TelefonoCliente: "55512345",
		FechaCita:       "2026-09-10",
		HoraCita:        "14:30",
		ServicioIDs:     []uint{1},
	})
	require.NoError(t, err)
	return c
}

func TestUpdateCita_AceptadaDerivaEstado(t *testing.T) {
	repo := newFakeCitaRepo(1, 2)
	existente := crearCitaDePrueba(t, repo)

	uc := NewUpdateCita(repo, nil)

	aceptada := true
	c, err := uc.Execute(context.Background(), 1, existente.ID, UpdateCitaInput{
		Aceptada: &aceptada,
	})

	require.NoError(t, err)
	assert.True(t, c.Aceptada)
	assert.Equal(t, "confirmada", c.Estado)
}

func TestUpdateCita_EstadoExplicitoGana(t *testing.T) {
	repo := newFakeCitaRepo(1)
	existente := crearCitaDePrueba(t, repo)

	uc := NewUpdateCita(repo, nil)

	aceptada := true
	c, err := uc.Execute(context.Background(), 1, existente.ID, UpdateCitaInput{
		Aceptada: &aceptada,
		Estado:   "cancelada",
	})

	require.NoError(t, err)
	assert.Equal(t, "cancelada", c.Estado)
	assert.True(t, c.Aceptada)
}

func TestUpdateCita_ReemplazaServicios(t *testing.T) {
	repo := newFakeCitaRepo(1, 2, 3)
	existente := crearCitaDePrueba(t, repo)

	uc := NewUpdateCita(repo, nil)

	_, err := uc.Execute(context.Background(), 1, existente.ID, UpdateCitaInput{
		ServicioIDs: []uint{2, 3},
	})

	require.NoError(t, err)
	assert.Equal(t, []uint{2, 3}, repo.servicios[existente.ID])
}

func TestUpdateCita_SinCambios(t *testing.T) {
	repo := newFakeCitaRepo(1)
	existente := crearCitaDePrueba(t, repo)

	uc := NewUpdateCita(repo, nil)

	_, err := uc.Execute(context.Background(), 1, existente.ID, UpdateCitaInput{})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNoChanges))

	// Un estado inválido solo tampoco cuenta como cambio.
	_, err = uc.Execute(context.Background(), 1, existente.ID, UpdateCitaInput{
		Estado: "agendada",
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNoChanges))
}

func TestUpdateCita_NoExiste(t *testing.T) {
	repo := newFakeCitaRepo(1)
	uc := NewUpdateCita(repo, nil)

	_, err := uc.Execute(context.Background(), 1, 999, UpdateCitaInput{
		Notas: strPtr("hola"),
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))
}

// ======================================================
// DELETE
// ======================================================

func TestDeleteCita(t *testing.T) {
	repo := newFakeCitaRepo(1)
	existente := crearCitaDePrueba(t, repo)

	uc := NewDeleteCita(repo, nil)

	require.NoError(t, uc.Execute(context.Background(), 1, existente.ID))
	assert.Empty(t, repo.citas)
	assert.Empty(t, repo.servicios)

	err := uc.Execute(context.Background(), 1, existente.ID)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))
}
