package fidelidad

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	domain "github.com/valkirianails/salon-api/internal/domain/fidelidad"
	"github.com/valkirianails/salon-api/internal/httperr"
	"github.com/valkirianails/salon-api/internal/models"
)

// ======================================================
// FAKE REPOSITORY
// ======================================================

type fakeFidelidadRepo struct {
	tarjetas map[uint]*models.TarjetaFidelidad
	visitas  map[uint][]models.VisitaFidelidad
	nextID   uint

	// todosLosCodigosExisten fuerza el agotamiento del sorteo.
	todosLosCodigosExisten bool
}

func newFakeFidelidadRepo() *fakeFidelidadRepo {
	return &fakeFidelidadRepo{
		tarjetas: map[uint]*models.TarjetaFidelidad{},
		visitas:  map[uint][]models.VisitaFidelidad{},
	}
}

func (r *fakeFidelidadRepo) Create(_ context.Context, t *models.TarjetaFidelidad) error {
	r.nextID++
	t.ID = r.nextID
	t.CreatedAt = time.Now()

	copia := *t
	r.tarjetas[t.ID] = &copia
	return nil
}

func (r *fakeFidelidadRepo) GetByID(_ context.Context, id uint) (*models.TarjetaFidelidad, error) {
	t, ok := r.tarjetas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copia := *t
	return &copia, nil
}

func (r *fakeFidelidadRepo) GetByCodigo(_ context.Context, codigo string) (*models.TarjetaFidelidad, error) {
	for _, t := range r.tarjetas {
		if t.Codigo == codigo {
			copia := *t
			return &copia, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeFidelidadRepo) GetByTelefono(_ context.Context, telefono string) (*models.TarjetaFidelidad, error) {
	for _, t := range r.tarjetas {
		if t.TelefonoCliente == telefono {
			copia := *t
			return &copia, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeFidelidadRepo) ExistsTelefono(_ context.Context, telefono string) (bool, error) {
	for _, t := range r.tarjetas {
		if t.TelefonoCliente == telefono {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeFidelidadRepo) ExistsCodigo(_ context.Context, codigo string) (bool, error) {
	if r.todosLosCodigosExisten {
		return true, nil
	}
	for _, t := range r.tarjetas {
		if t.Codigo == codigo {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeFidelidadRepo) Search(_ context.Context, term string, offset, limit int) ([]models.TarjetaFidelidad, int64, error) {
	var todas []models.TarjetaFidelidad
	for _, t := range r.tarjetas {
		if term == "" ||
			strings.Contains(t.NombreCliente, term) ||
			strings.Contains(t.TelefonoCliente, term) {
			todas = append(todas, *t)
		}
	}

	total := int64(len(todas))
	if offset >= len(todas) {
		return nil, total, nil
	}
	fin := offset + limit
	if fin > len(todas) {
		fin = len(todas)
	}
	return todas[offset:fin], total, nil
}

func (r *fakeFidelidadRepo) UpdateDatos(_ context.Context, id uint, nombre, telefono string) error {
	for otherID, t := range r.tarjetas {
		if otherID != id && t.TelefonoCliente == telefono {
			return &pgconn.PgError{Code: "23505"}
		}
	}

	t, ok := r.tarjetas[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	t.NombreCliente = nombre
	t.TelefonoCliente = telefono
	return nil
}

func (r *fakeFidelidadRepo) Delete(_ context.Context, id uint) (int64, error) {
	if _, ok := r.tarjetas[id]; !ok {
		return 0, nil
	}
	delete(r.tarjetas, id)
	delete(r.visitas, id)
	return 1, nil
}

func (r *fakeFidelidadRepo) SetVisitas(_ context.Context, id uint, visitas int, canje, stampUltimaVisita bool) error {
	t, ok := r.tarjetas[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}

	t.VisitasAcumuladas = visitas
	t.CanjeDisponible = canje
	if stampUltimaVisita {
		now := time.Now()
		t.UltimaVisita = &now
	}

	filas := make([]models.VisitaFidelidad, 0, visitas)
	for i := 1; i <= visitas; i++ {
		filas = append(filas, models.VisitaFidelidad{
			TarjetaID:    id,
			NumeroVisita: i,
			CreatedAt:    time.Now(),
		})
	}
	r.visitas[id] = filas
	return nil
}

func (r *fakeFidelidadRepo) Canjear(_ context.Context, id uint) error {
	t, ok := r.tarjetas[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}

	t.VisitasAcumuladas = 0
	t.CanjeDisponible = false
	t.CiclosCompletados++
	now := time.Now()
	t.UltimaVisita = &now

	delete(r.visitas, id)
	return nil
}

func (r *fakeFidelidadRepo) ListVisitas(_ context.Context, id uint) ([]models.VisitaFidelidad, error) {
	out := append([]models.VisitaFidelidad(nil), r.visitas[id]...)
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

func registrarDePrueba(t *testing.T, repo *fakeFidelidadRepo, nombre, telefono string) *models.TarjetaFidelidad {
	t.Helper()

	tarjeta, err := NewRegistrarTarjeta(repo, nil).
		Execute(context.Background(), 1, nombre, telefono)
	require.NoError(t, err)
	return tarjeta
}

// ======================================================
// REGISTRO
// ======================================================

func TestRegistrarTarjeta(t *testing.T) {
	repo := newFakeFidelidadRepo()

	tarjeta := registrarDePrueba(t, repo, "Ana", "55511111")

	assert.Len(t, tarjeta.Codigo, domain.CodigoLen)
	assert.Equal(t, 0, tarjeta.VisitasAcumuladas)
	assert.False(t, tarjeta.CanjeDisponible)
	assert.Equal(t, 0, tarjeta.CiclosCompletados)
	assert.Nil(t, tarjeta.UltimaVisita)
}

func TestRegistrarTarjeta_TelefonoDuplicado(t *testing.T) {
	repo := newFakeFidelidadRepo()
	registrarDePrueba(t, repo, "Ana", "55511111")

	uc := NewRegistrarTarjeta(repo, nil)
	_, err := uc.Execute(context.Background(), 1, "Otra Ana", "55511111")

	assert.True(t, httperr.IsBusiness(err, httperr.CodeDuplicatePhone))
	assert.Len(t, repo.tarjetas, 1)
}

func TestRegistrarTarjeta_SorteoAgotado(t *testing.T) {
	repo := newFakeFidelidadRepo()
	repo.todosLosCodigosExisten = true

	uc := NewRegistrarTarjeta(repo, nil)
	_, err := uc.Execute(context.Background(), 1, "Ana", "55511111")

	assert.ErrorIs(t, err, ErrCodigosAgotados)
	assert.Empty(t, repo.tarjetas)
}

// ======================================================
// CONSULTA
// ======================================================

func TestGetTarjeta_PorCodigoEsCaseInsensitive(t *testing.T) {
	repo := newFakeFidelidadRepo()
	tarjeta := registrarDePrueba(t, repo, "Ana", "55511111")

	uc := NewGetTarjeta(repo)

	found, err := uc.PorCodigo(context.Background(), strings.ToLower(tarjeta.Codigo))
	require.NoError(t, err)
	assert.Equal(t, tarjeta.ID, found.ID)

	_, err = uc.PorCodigo(context.Background(), "ZZZZ")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))
}

func TestGetTarjeta_PorTelefono(t *testing.T) {
	repo := newFakeFidelidadRepo()
	registrarDePrueba(t, repo, "Ana", "55511111")

	uc := NewGetTarjeta(repo)

	found, err := uc.PorTelefono(context.Background(), "55511111")
	require.NoError(t, err)
	assert.Equal(t, "Ana", found.NombreCliente)

	_, err = uc.PorTelefono(context.Background(), "")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeValidation))
}

// ======================================================
// VISITAS
// ======================================================

func TestEditarVisitas(t *testing.T) {
	repo := newFakeFidelidadRepo()
	tarjeta := registrarDePrueba(t, repo, "Ana", "55511111")

	uc := NewEditarVisitas(repo, nil)

	out, err := uc.Execute(context.Background(), 1, tarjeta.ID, 3)
	require.NoError(t, err)

	assert.Equal(t, 3, out.VisitasAcumuladas)
	assert.False(t, out.CanjeDisponible)
	assert.NotNil(t, out.UltimaVisita)
	assert.Len(t, repo.visitas[tarjeta.ID], 3)
}

func TestEditarVisitas_CuartaVisitaHabilitaCanje(t *testing.T) {
	repo := newFakeFidelidadRepo()
	tarjeta := registrarDePrueba(t, repo, "Ana", "55511111")

	uc := NewEditarVisitas(repo, nil)

	out, err := uc.Execute(context.Background(), 1, tarjeta.ID, domain.MaxVisitas)
	require.NoError(t, err)
	assert.True(t, out.CanjeDisponible)
}

func TestEditarVisitas_FueraDeRango(t *testing.T) {
	repo := newFakeFidelidadRepo()
	tarjeta := registrarDePrueba(t, repo, "Ana", "55511111")

	uc := NewEditarVisitas(repo, nil)

	_, err := uc.Execute(context.Background(), 1, tarjeta.ID, domain.MaxVisitas+1)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeValidation))

	_, err = uc.Execute(context.Background(), 1, tarjeta.ID, -1)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeValidation))
}

func TestEditarVisitas_CanjePendienteBloqueaReduccion(t *testing.T) {
	repo := newFakeFidelidadRepo()
	tarjeta := registrarDePrueba(t, repo, "Ana", "55511111")

	uc := NewEditarVisitas(repo, nil)

	_, err := uc.Execute(context.Background(), 1, tarjeta.ID, domain.MaxVisitas)
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), 1, tarjeta.ID, 2)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeRedemptionPending))

	// Y el estado no cambió.
	actual, err := repo.GetByID(context.Background(), tarjeta.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.MaxVisitas, actual.VisitasAcumuladas)
	assert.True(t, actual.CanjeDisponible)
}

func TestEditarVisitas_NoEstampaAlBajar(t *testing.T) {
	repo := newFakeFidelidadRepo()
	tarjeta := registrarDePrueba(t, repo, "Ana", "55511111")

	uc := NewEditarVisitas(repo, nil)

	out, err := uc.Execute(context.Background(), 1, tarjeta.ID, 3)
	require.NoError(t, err)
	estampaOriginal := out.UltimaVisita

	out, err = uc.Execute(context.Background(), 1, tarjeta.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, estampaOriginal, out.UltimaVisita)
	assert.Len(t, repo.visitas[tarjeta.ID], 2)
}

func TestHistorialVisitas(t *testing.T) {
	repo := newFakeFidelidadRepo()
	tarjeta := registrarDePrueba(t, repo, "Ana", "55511111")

	_, err := NewEditarVisitas(repo, nil).Execute(context.Background(), 1, tarjeta.ID, 3)
	require.NoError(t, err)

	visitas, err := NewHistorialVisitas(repo).Execute(context.Background(), tarjeta.ID)
	require.NoError(t, err)
	require.Len(t, visitas, 3)
	assert.Equal(t, 3, visitas[0].NumeroVisita)

	_, err = NewHistorialVisitas(repo).Execute(context.Background(), 999)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))
}

// ======================================================
// CANJE
// ======================================================

func TestCanjearTarjeta(t *testing.T) {
	repo := newFakeFidelidadRepo()
	tarjeta := registrarDePrueba(t, repo, "Ana", "55511111")

	_, err := NewEditarVisitas(repo, nil).
		Execute(context.Background(), 1, tarjeta.ID, domain.MaxVisitas)
	require.NoError(t, err)

	require.NoError(t, NewCanjearTarjeta(repo, nil).
		Execute(context.Background(), 1, tarjeta.ID))

	actual, err := repo.GetByID(context.Background(), tarjeta.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, actual.VisitasAcumuladas)
	assert.False(t, actual.CanjeDisponible)
	assert.Equal(t, 1, actual.CiclosCompletados)
	assert.Empty(t, repo.visitas[tarjeta.ID])
}

func TestCanjearTarjeta_SinCanjeDisponible(t *testing.T) {
	repo := newFakeFidelidadRepo()
	tarjeta := registrarDePrueba(t, repo, "Ana", "55511111")

	err := NewCanjearTarjeta(repo, nil).
		Execute(context.Background(), 1, tarjeta.ID)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNoRedemptionAvailable))

	err = NewCanjearTarjeta(repo, nil).Execute(context.Background(), 1, 999)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))
}

// ======================================================
// ACTUALIZAR / ELIMINAR
// ======================================================

func TestActualizarTarjeta(t *testing.T) {
	repo := newFakeFidelidadRepo()
	tarjeta := registrarDePrueba(t, repo, "Ana", "55511111")

	uc := NewActualizarTarjeta(repo, nil)

	out, err := uc.Execute(context.Background(), 1, tarjeta.ID, "Ana María", "55522222")
	require.NoError(t, err)
	assert.Equal(t, "Ana María", out.NombreCliente)
	assert.Equal(t, "55522222", out.TelefonoCliente)

	_, err = uc.Execute(context.Background(), 1, tarjeta.ID, "", "55522222")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeValidation))
}

func TestActualizarTarjeta_TelefonoDeOtraClienta(t *testing.T) {
	repo := newFakeFidelidadRepo()
	registrarDePrueba(t, repo, "Ana", "55511111")
	otra := registrarDePrueba(t, repo, "Marta", "55522222")

	uc := NewActualizarTarjeta(repo, nil)

	_, err := uc.Execute(context.Background(), 1, otra.ID, "Marta", "55511111")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeDuplicatePhone))
}

func TestEliminarTarjeta_BorraHistorial(t *testing.T) {
	repo := newFakeFidelidadRepo()
	tarjeta := registrarDePrueba(t, repo, "Ana", "55511111")

	_, err := NewEditarVisitas(repo, nil).Execute(context.Background(), 1, tarjeta.ID, 2)
	require.NoError(t, err)

	uc := NewEliminarTarjeta(repo, nil)
	require.NoError(t, uc.Execute(context.Background(), 1, tarjeta.ID))

	assert.Empty(t, repo.tarjetas)
	assert.Empty(t, repo.visitas)

	err = uc.Execute(context.Background(), 1, tarjeta.ID)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))
}

// ======================================================
// LISTADO
// ======================================================

func TestListTarjetas_Paginacion(t *testing.T) {
	repo := newFakeFidelidadRepo()
	for i := 0; i < 25; i++ {
		registrarDePrueba(t, repo, "Cliente", "555"+string(rune('a'+i)))
	}

	uc := NewListTarjetas(repo)

	res, err := uc.Execute(context.Background(), "", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(25), res.Total)
	assert.Equal(t, 3, res.TotalPages)
	assert.Len(t, res.Tarjetas, 10)

	res, err = uc.Execute(context.Background(), "", 3, 10)
	require.NoError(t, err)
	assert.Len(t, res.Tarjetas, 5)
}

func TestListTarjetas_Defaults(t *testing.T) {
	repo := newFakeFidelidadRepo()

	res, err := NewListTarjetas(repo).Execute(context.Background(), "", 0, 0)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Page)
	assert.Equal(t, 10, res.Limit)
	assert.Equal(t, 1, res.TotalPages)
	assert.Empty(t, res.Tarjetas)
}

func TestListTarjetas_LimiteMaximo(t *testing.T) {
	repo := newFakeFidelidadRepo()

	res, err := NewListTarjetas(repo).Execute(context.Background(), "", 1, 1000)
	require.NoError(t, err)
	assert.Equal(t, 100, res.Limit)
}

func TestListTarjetas_Busqueda(t *testing.T) {
	repo := newFakeFidelidadRepo()
	registrarDePrueba(t, repo, "Ana López", "55511111")
	registrarDePrueba(t, repo, "Marta Ruiz", "55522222")

	res, err := NewListTarjetas(repo).Execute(context.Background(), "López", 1, 10)
	require.NoError(t, err)
	require.Len(t, res.Tarjetas, 1)
	assert.Equal(t, "Ana López", res.Tarjetas[0].NombreCliente)
}
