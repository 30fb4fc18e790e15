package handlers

import (
	"log"
	"math"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/valkirianails/salon-api/internal/httperr"
	"github.com/valkirianails/salon-api/internal/models"
	"github.com/valkirianails/salon-api/internal/timezone"
	"github.com/valkirianails/salon-api/internal/useragent"
)

type VisitaHandler struct {
	db *gorm.DB
}

func NewVisitaHandler(db *gorm.DB) *VisitaHandler {
	return &VisitaHandler{db: db}
}

// ======================================================
// REGISTRO DE VISITAS
// ======================================================

type RegistrarVisitaRequest struct {
	SessionID string `json:"session_id"`
	PagePath  string `json:"page_path"`
	Referrer  string `json:"referrer"`
}

// Registrar guarda una vista de página. Siempre responde 204: el
// tracking nunca debe romper la navegación del sitio público.
func (h *VisitaHandler) Registrar(c *gin.Context) {
	var req RegistrarVisitaRequest
	_ = c.ShouldBindJSON(&req)

	ua := c.Request.UserAgent()
	info := useragent.Parse(ua)

	visita := models.VisitaSitio{
		SessionID:   req.SessionID,
		PagePath:    req.PagePath,
		IPAddress:   c.ClientIP(),
		UserAgent:   ua,
		BrowserName: info.Browser,
		OSName:      info.OS,
		DeviceType:  info.Device,
		Referrer:    req.Referrer,
	}
	if visita.IPAddress == "" {
		visita.IPAddress = "Desconocida"
	}
	if visita.UserAgent == "" {
		visita.UserAgent = "Desconocido"
	}

	if err := h.db.Create(&visita).Error; err != nil {
		log.Printf("registro de visita falló: %v", err)
	}

	c.Status(204)
}

type TrackTimeRequest struct {
	SessionID string   `json:"sessionId"`
	Path      string   `json:"path"`
	Duration  *float64 `json:"duration"`
}

// TrackTime guarda el tiempo que una sesión pasó en una página.
func (h *VisitaHandler) TrackTime(c *gin.Context) {
	var req TrackTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil ||
		req.SessionID == "" || req.Path == "" || req.Duration == nil {
		httperr.BadRequest(c, httperr.CodeValidation,
			"sessionId, path y duration son requeridos.")
		return
	}

	timing := models.PageTiming{
		SessionID:       req.SessionID,
		PagePath:        req.Path,
		DurationSeconds: int(math.Round(*req.Duration)),
	}
	if err := h.db.Create(&timing).Error; err != nil {
		log.Printf("registro de tiempo en página falló: %v", err)
	}

	c.Status(204)
}

// ======================================================
// DETALLE DE SESIÓN
// ======================================================

type sesionPaginaRow struct {
	PagePath         string    `json:"page_path"`
	Views            int64     `json:"views"`
	FirstVisitToPage time.Time `json:"first_visit_to_page"`
}

func (h *VisitaHandler) SessionDetails(c *gin.Context) {
	sessionID := strings.TrimSpace(c.Param("sessionId"))
	if sessionID == "" {
		httperr.BadRequest(c, httperr.CodeValidation, "Session ID es requerido.")
		return
	}

	var rows []sesionPaginaRow
	err := h.db.Model(&models.VisitaSitio{}).
		Select("page_path, COUNT(*) as views, MIN(created_at) as first_visit_to_page").
		Where("session_id = ?", sessionID).
		Group("page_path").
		Order("first_visit_to_page ASC").
		Scan(&rows).Error
	if err != nil {
		httperr.Internal(c, "failed_to_get_session",
			"Error interno del servidor.")
		return
	}
	if len(rows) == 0 {
		httperr.NotFound(c, httperr.CodeNotFound,
			"No se encontraron detalles para esta sesión.")
		return
	}

	c.JSON(200, rows)
}

// ======================================================
// DASHBOARD
// ======================================================

type conteoRow struct {
	Etiqueta string `json:"etiqueta"`
	Total    int64  `json:"total"`
}

type servicioSolicitadoRow struct {
	NombreSubcategoria   string `json:"nombre_subcategoria"`
	NombreCategoriaPadre string `json:"nombre_categoria_padre"`
	TotalCitas           int64  `json:"total_citas"`
}

// Dashboard agrega las métricas del panel administrativo: catálogo,
// agenda próxima y tráfico del mes en curso.
func (h *VisitaHandler) Dashboard(c *gin.Context) {
	ahora := timezone.Now()
	hoy := ahora.Format("2006-01-02")
	hace30 := ahora.AddDate(0, 0, -30).Format("2006-01-02")
	inicioMes := time.Date(ahora.Year(), ahora.Month(), 1, 0, 0, 0, 0, ahora.Location())

	var totalDisenios int64
	if err := h.db.Model(&models.Disenio{}).
		Where("activo = ?", true).
		Count(&totalDisenios).Error; err != nil {
		httperr.Internal(c, "failed_to_get_stats",
			"Error interno del servidor al obtener estadísticas.")
		return
	}

	var citasProximas int64
	h.db.Model(&models.Cita{}).
		Where("estado IN ? AND fecha_cita >= ?",
			[]string{"pendiente", "confirmada"}, hoy).
		Count(&citasProximas)

	var visitantesUnicosMes int64
	h.db.Model(&models.VisitaSitio{}).
		Where("created_at >= ?", inicioMes).
		Distinct("session_id").
		Count(&visitantesUnicosMes)

	var totalPageViewsMes int64
	h.db.Model(&models.VisitaSitio{}).
		Where("created_at >= ?", inicioMes).
		Count(&totalPageViewsMes)

	var topPaginas []conteoRow
	h.db.Model(&models.VisitaSitio{}).
		Select("page_path as etiqueta, COUNT(id) as total").
		Where("created_at >= ?", inicioMes).
		Group("page_path").
		Order("total DESC").
		Limit(5).
		Scan(&topPaginas)

	var porDispositivo []conteoRow
	h.db.Model(&models.VisitaSitio{}).
		Select("device_type as etiqueta, COUNT(DISTINCT session_id) as total").
		Where("created_at >= ?", inicioMes).
		Group("device_type").
		Order("total DESC").
		Scan(&porDispositivo)

	var topReferrers []conteoRow
	h.db.Model(&models.VisitaSitio{}).
		Select("referrer as etiqueta, COUNT(id) as total").
		Where("referrer <> '' AND created_at >= ?", inicioMes).
		Group("referrer").
		Order("total DESC").
		Limit(5).
		Scan(&topReferrers)

	var citasPorEstado []conteoRow
	h.db.Model(&models.Cita{}).
		Select("estado as etiqueta, COUNT(*) as total").
		Where("fecha_cita BETWEEN ? AND ?", hace30, hoy).
		Group("estado").
		Order("total DESC").
		Scan(&citasPorEstado)

	var serviciosMasSolicitados []servicioSolicitadoRow
	h.db.Raw(`
		SELECT s.nombre AS nombre_subcategoria,
		       cp.nombre AS nombre_categoria_padre,
		       COUNT(c.id) AS total_citas
		FROM citas c
		JOIN cita_servicios cs ON c.id = cs.cita_id
		JOIN subcategorias s ON cs.subcategoria_id = s.id
		JOIN categoria_padres cp ON s.categoria_padre_id = cp.id
		WHERE c.fecha_cita BETWEEN ? AND ?
		GROUP BY s.id, s.nombre, cp.nombre
		ORDER BY total_citas DESC
		LIMIT 5
	`, hace30, hoy).Scan(&serviciosMasSolicitados)

	c.JSON(200, gin.H{
		"totalDisenios":            totalDisenios,
		"citasProximas":            citasProximas,
		"visitantesUnicosMes":      visitantesUnicosMes,
		"totalPageViewsMes":        totalPageViewsMes,
		"topPaginas":               topPaginas,
		"visitantesPorDispositivo": porDispositivo,
		"topReferrers":             topReferrers,
		"citasPorEstado":           citasPorEstado,
		"serviciosMasSolicitados":  serviciosMasSolicitados,
	})
}
