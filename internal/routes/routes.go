package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/valkirianails/salon-api/internal/audit"
	"github.com/valkirianails/salon-api/internal/cache"
	"github.com/valkirianails/salon-api/internal/config"
	"github.com/valkirianails/salon-api/internal/handlers"
	infraRepo "github.com/valkirianails/salon-api/internal/infra/repository"
	"github.com/valkirianails/salon-api/internal/middleware"
	"github.com/valkirianails/salon-api/internal/storage"
	ucCita "github.com/valkirianails/salon-api/internal/usecase/cita"
	ucFidelidad "github.com/valkirianails/salon-api/internal/usecase/fidelidad"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	citaRepo := infraRepo.NewCitaGormRepository(db)
	fidelidadRepo := infraRepo.NewFidelidadGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	ch := cache.New(cfg.RedisAddr, cfg.RedisPassword)

	uploader, err := storage.NewUploader(cfg)
	if err != nil {
		log.Printf("subida de imágenes deshabilitada: %v", err)
	}

	// ======================================================
	// 🧠 USE CASES — CITAS
	// ======================================================
	createCitaUC := ucCita.NewCreateCita(citaRepo)

	createCitaAdminUC := ucCita.NewCreateCitaAdmin(
		citaRepo,
		auditDispatcher,
	)

	listCitasUC := ucCita.NewListCitasAdmin(citaRepo)

	updateCitaUC := ucCita.NewUpdateCita(
		citaRepo,
		auditDispatcher,
	)

	deleteCitaUC := ucCita.NewDeleteCita(
		citaRepo,
		auditDispatcher,
	)

	// ======================================================
	// 🧠 USE CASES — FIDELIDAD
	// ======================================================
	registrarTarjetaUC := ucFidelidad.NewRegistrarTarjeta(
		fidelidadRepo,
		auditDispatcher,
	)

	listTarjetasUC := ucFidelidad.NewListTarjetas(fidelidadRepo)
	getTarjetaUC := ucFidelidad.NewGetTarjeta(fidelidadRepo)

	editarVisitasUC := ucFidelidad.NewEditarVisitas(
		fidelidadRepo,
		auditDispatcher,
	)

	canjearTarjetaUC := ucFidelidad.NewCanjearTarjeta(
		fidelidadRepo,
		auditDispatcher,
	)

	historialVisitasUC := ucFidelidad.NewHistorialVisitas(fidelidadRepo)

	actualizarTarjetaUC := ucFidelidad.NewActualizarTarjeta(
		fidelidadRepo,
		auditDispatcher,
	)

	eliminarTarjetaUC := ucFidelidad.NewEliminarTarjeta(
		fidelidadRepo,
		auditDispatcher,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	usuarioHandler := handlers.NewUsuarioHandler(db)

	citaHandler := handlers.NewCitaHandler(
		createCitaUC,
		createCitaAdminUC,
		listCitasUC,
		updateCitaUC,
		deleteCitaUC,
	)

	fidelidadHandler := handlers.NewFidelidadHandler(
		registrarTarjetaUC,
		listTarjetasUC,
		getTarjetaUC,
		editarVisitasUC,
		canjearTarjetaUC,
		historialVisitasUC,
		actualizarTarjetaUC,
		eliminarTarjetaUC,
	)

	categoriaHandler := handlers.NewCategoriaHandler(db)
	disenioHandler := handlers.NewDisenioHandler(db, ch, uploader)
	configuracionHandler := handlers.NewConfiguracionHandler(db, ch)
	visitaHandler := handlers.NewVisitaHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)
	previewHandler := handlers.NewPreviewHandler(db)

	// ======================================================
	// 🌍 VISTA PREVIA (HTML)
	// ======================================================
	r.GET("/preview", previewHandler.Generate)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		api.POST("/citas", citaHandler.Create)

		api.GET("/categorias", categoriaHandler.List)
		api.GET("/disenios", disenioHandler.ListPublic)
		api.GET("/configuraciones", configuracionHandler.List)

		api.GET("/fidelidad/public/codigo/:codigo", fidelidadHandler.GetPorCodigo)
		api.GET("/fidelidad/public/telefono", fidelidadHandler.GetPorTelefono)

		api.POST("/visitas", visitaHandler.Registrar)
		api.POST("/visitas/track-time", visitaHandler.TrackTime)

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", usuarioHandler.GetMe)
			secured.PATCH("/me/nombre", usuarioHandler.UpdateMyNombre)
			secured.PATCH("/me/password", usuarioHandler.UpdateMyPassword)

			// ------------------------------
			// CITAS
			// ------------------------------
			secured.POST("/admin/citas", citaHandler.CreateAdmin)
			secured.GET("/admin/citas", citaHandler.ListAdmin)
			secured.PATCH("/admin/citas/:id", citaHandler.Update)
			secured.DELETE("/admin/citas/:id", citaHandler.Delete)

			// ------------------------------
			// FIDELIDAD
			// ------------------------------
			secured.POST("/fidelidad", fidelidadHandler.Registrar)
			secured.GET("/fidelidad", fidelidadHandler.List)
			secured.PATCH("/fidelidad/:id/visitas", fidelidadHandler.EditarVisitas)
			secured.POST("/fidelidad/:id/canjear", fidelidadHandler.Canjear)
			secured.GET("/fidelidad/:id/historial", fidelidadHandler.Historial)
			secured.PATCH("/fidelidad/:id", fidelidadHandler.Actualizar)
			secured.DELETE("/fidelidad/:id", fidelidadHandler.Eliminar)

			// ------------------------------
			// CATÁLOGO
			// ------------------------------
			secured.POST("/categorias", categoriaHandler.CreatePadre)
			secured.PATCH("/categorias/:id", categoriaHandler.UpdatePadre)
			secured.DELETE("/categorias/:id", categoriaHandler.DeletePadre)
			secured.POST("/categorias/:id/subcategorias", categoriaHandler.CreateSubcategoria)
			secured.PATCH("/subcategorias/:id", categoriaHandler.UpdateSubcategoria)
			secured.DELETE("/subcategorias/:id", categoriaHandler.DeleteSubcategoria)

			secured.GET("/admin/disenios", disenioHandler.ListAdmin)
			secured.POST("/disenios", disenioHandler.Create)
			secured.PATCH("/disenios/:id", disenioHandler.Update)
			secured.DELETE("/disenios/:id", disenioHandler.Delete)
			secured.POST("/disenios/imagen", disenioHandler.UploadImagen)

			// ------------------------------
			// SITIO Y ANALÍTICA
			// ------------------------------
			secured.PUT("/configuraciones", configuracionHandler.Upsert)

			secured.GET("/dashboard", visitaHandler.Dashboard)
			secured.GET("/analytics/sessions/:sessionId", visitaHandler.SessionDetails)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
