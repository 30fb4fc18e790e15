package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/valkirianails/salon-api/internal/cache"
	"github.com/valkirianails/salon-api/internal/httperr"
	"github.com/valkirianails/salon-api/internal/models"
)

const cacheKeyConfiguraciones = "configuraciones:all"

type ConfiguracionHandler struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewConfiguracionHandler(db *gorm.DB, ch *cache.Cache) *ConfiguracionHandler {
	return &ConfiguracionHandler{db: db, cache: ch}
}

type UpsertConfiguracionRequest struct {
	Clave string `json:"clave" binding:"required"`
	Valor string `json:"valor" binding:"required"`
}

// List devuelve todas las configuraciones como mapa clave -> valor.
func (h *ConfiguracionHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var cached map[string]string
	if h.cache.GetJSON(ctx, cacheKeyConfiguraciones, &cached) {
		c.JSON(200, cached)
		return
	}

	var configs []models.ConfiguracionSitio
	if err := h.db.Find(&configs).Error; err != nil {
		httperr.Internal(c, "failed_to_list_config",
			"Error interno del servidor.")
		return
	}

	out := make(map[string]string, len(configs))
	for _, cfg := range configs {
		out[cfg.Clave] = cfg.Valor
	}

	h.cache.SetJSON(ctx, cacheKeyConfiguraciones, out)
	c.JSON(200, out)
}

// Upsert crea o reemplaza el valor de una clave de configuración.
func (h *ConfiguracionHandler) Upsert(c *gin.Context) {
	var req UpsertConfiguracionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeValidation,
			"Clave y valor son obligatorios.")
		return
	}

	clave := strings.TrimSpace(req.Clave)
	if clave == "" {
		httperr.BadRequest(c, httperr.CodeValidation,
			"Clave y valor son obligatorios.")
		return
	}

	cfg := models.ConfiguracionSitio{Clave: clave, Valor: req.Valor}
	if err := h.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "clave"}},
		DoUpdates: clause.AssignmentColumns([]string{"valor", "updated_at"}),
	}).Create(&cfg).Error; err != nil {
		httperr.Internal(c, "failed_to_save_config",
			"Error interno del servidor.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), cacheKeyConfiguraciones)
	c.JSON(200, gin.H{
		"message": "Configuración guardada exitosamente.",
		"clave":   clave,
		"valor":   req.Valor,
	})
}
