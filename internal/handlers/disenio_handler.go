package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/valkirianails/salon-api/internal/cache"
	"github.com/valkirianails/salon-api/internal/httperr"
	"github.com/valkirianails/salon-api/internal/models"
	"github.com/valkirianails/salon-api/internal/storage"
	"github.com/valkirianails/salon-api/internal/textutil"
)

const cacheKeyDiseniosPublic = "disenios:public"

// ======================================================
// HANDLER
// ======================================================

type DisenioHandler struct {
	db       *gorm.DB
	cache    *cache.Cache
	uploader *storage.Uploader
}

func NewDisenioHandler(db *gorm.DB, ch *cache.Cache, up *storage.Uploader) *DisenioHandler {
	return &DisenioHandler{
		db:       db,
		cache:    ch,
		uploader: up,
	}
}

// --------- Requests / DTOs ---------

type CreateDisenioRequest struct {
	Nombre        string   `json:"nombre" binding:"required"`
	Descripcion   *string  `json:"descripcion"`
	ImagenURL     string   `json:"imagen_url" binding:"required"`
	Precio        *float64 `json:"precio"`
	Oferta        *float64 `json:"oferta"`
	Duracion      *string  `json:"duracion"`
	Subcategorias []uint   `json:"subcategorias" binding:"required,min=1"`
}

type UpdateDisenioRequest struct {
	Nombre        *string  `json:"nombre,omitempty"`
	Descripcion   *string  `json:"descripcion,omitempty"`
	ImagenURL     *string  `json:"imagen_url,omitempty"`
	Precio        *float64 `json:"precio,omitempty"`
	Oferta        *float64 `json:"oferta,omitempty"`
	Duracion      *string  `json:"duracion,omitempty"`
	Activo        *bool    `json:"activo,omitempty"`
	Subcategorias []uint   `json:"subcategorias,omitempty"`
}

// DisenioPublicoDTO agrupa las subcategorías activas del diseño por el
// slug de su categoría padre, como lo consume la galería del sitio.
type DisenioPublicoDTO struct {
	ID          uint                `json:"id"`
	Nombre      string              `json:"nombre"`
	Descripcion *string             `json:"descripcion"`
	ImagenURL   string              `json:"imagen_url"`
	Precio      *float64            `json:"precio"`
	Oferta      *float64            `json:"oferta"`
	Duracion    *string             `json:"duracion"`
	Categorias  map[string][]string `json:"categorias"`
}

// ======================================================
// LIST (pública, cacheada)
// ======================================================

func (h *DisenioHandler) ListPublic(c *gin.Context) {
	ctx := c.Request.Context()

	var cached []DisenioPublicoDTO
	if h.cache.GetJSON(ctx, cacheKeyDiseniosPublic, &cached) {
		c.JSON(200, cached)
		return
	}

	var disenios []models.Disenio
	if err := h.db.
		Preload("Subcategorias", "activo = ?", true).
		Preload("Subcategorias.CategoriaPadre", "activo = ?", true).
		Where("activo = ?", true).
		Order("nombre ASC").
		Find(&disenios).Error; err != nil {

		httperr.Internal(c, "failed_to_list_designs",
			"Error interno del servidor.")
		return
	}

	out := make([]DisenioPublicoDTO, 0, len(disenios))
	for _, d := range disenios {
		dto := DisenioPublicoDTO{
			ID:          d.ID,
			Nombre:      d.Nombre,
			Descripcion: d.Descripcion,
			ImagenURL:   d.ImagenURL,
			Precio:      d.Precio,
			Oferta:      d.Oferta,
			Duracion:    d.Duracion,
			Categorias:  map[string][]string{},
		}

		for _, s := range d.Subcategorias {
			if s.CategoriaPadre.ID == 0 {
				continue
			}
			padre := textutil.ToSlug(s.CategoriaPadre.Nombre)
			dto.Categorias[padre] = append(dto.Categorias[padre], textutil.ToSlug(s.Nombre))
		}

		out = append(out, dto)
	}

	h.cache.SetJSON(ctx, cacheKeyDiseniosPublic, out)
	c.JSON(200, out)
}

// ======================================================
// LIST (admin)
// ======================================================

func (h *DisenioHandler) ListAdmin(c *gin.Context) {
	var disenios []models.Disenio
	if err := h.db.
		Preload("Subcategorias").
		Order("created_at DESC").
		Find(&disenios).Error; err != nil {

		httperr.Internal(c, "failed_to_list_designs",
			"Error interno del servidor.")
		return
	}

	c.JSON(200, disenios)
}

// ======================================================
// CREATE
// ======================================================

func (h *DisenioHandler) Create(c *gin.Context) {
	var req CreateDisenioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeValidation,
			"Nombre, imagen y al menos una subcategoría son obligatorios.")
		return
	}

	var activos int64
	if err := h.db.Model(&models.Subcategoria{}).
		Where("id IN ?", req.Subcategorias).
		Count(&activos).Error; err != nil {
		httperr.Internal(c, "failed_to_create_design", "Error interno del servidor.")
		return
	}
	if activos != int64(len(req.Subcategorias)) {
		httperr.BadRequest(c, "invalid_subcategories",
			"Formato de subcategorías inválido.")
		return
	}

	d := models.Disenio{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		ImagenURL:   req.ImagenURL,
		Precio:      req.Precio,
		Oferta:      req.Oferta,
		Duracion:    req.Duracion,
		Activo:      true,
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Subcategorias").Create(&d).Error; err != nil {
			return err
		}
		return h.relacionar(tx, d.ID, req.Subcategorias)
	})
	if err != nil {
		httperr.Internal(c, "failed_to_create_design", "Error interno del servidor.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), cacheKeyDiseniosPublic)
	c.JSON(201, d)
}

// ======================================================
// UPDATE
// ======================================================

func (h *DisenioHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var req UpdateDisenioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeValidation, "Datos inválidos.")
		return
	}

	campos := map[string]any{}
	if req.Nombre != nil && *req.Nombre != "" {
		campos["nombre"] = *req.Nombre
	}
	if req.Descripcion != nil {
		campos["descripcion"] = *req.Descripcion
	}
	if req.ImagenURL != nil && *req.ImagenURL != "" {
		campos["imagen_url"] = *req.ImagenURL
	}
	if req.Precio != nil {
		campos["precio"] = *req.Precio
	}
	if req.Oferta != nil {
		campos["oferta"] = *req.Oferta
	}
	if req.Duracion != nil {
		campos["duracion"] = *req.Duracion
	}
	if req.Activo != nil {
		campos["activo"] = *req.Activo
	}

	if len(campos) == 0 && len(req.Subcategorias) == 0 {
		httperr.BadRequest(c, httperr.CodeNoChanges,
			"No se proporcionaron datos para actualizar.")
		return
	}

	var existe models.Disenio
	if err := h.db.First(&existe, id).Error; err != nil {
		httperr.NotFound(c, httperr.CodeNotFound, "Diseño no encontrado.")
		return
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if len(campos) > 0 {
			if err := tx.Model(&models.Disenio{}).
				Where("id = ?", id).
				Updates(campos).Error; err != nil {
				return err
			}
		}

		if len(req.Subcategorias) == 0 {
			return nil
		}

		if err := tx.Exec(
			"DELETE FROM disenio_subcategorias WHERE disenio_id = ?", id,
		).Error; err != nil {
			return err
		}
		return h.relacionar(tx, uint(id), req.Subcategorias)
	})
	if err != nil {
		httperr.Internal(c, "failed_to_update_design", "Error interno del servidor.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), cacheKeyDiseniosPublic)

	var d models.Disenio
	h.db.Preload("Subcategorias").First(&d, id)
	c.JSON(200, d)
}

// ======================================================
// DELETE
// ======================================================

func (h *DisenioHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var affected int64
	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			"DELETE FROM disenio_subcategorias WHERE disenio_id = ?", id,
		).Error; err != nil {
			return err
		}

		res := tx.Delete(&models.Disenio{}, id)
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected
		return nil
	})
	if err != nil {
		httperr.Internal(c, "failed_to_delete_design", "Error interno del servidor.")
		return
	}
	if affected == 0 {
		httperr.NotFound(c, httperr.CodeNotFound, "Diseño no encontrado.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), cacheKeyDiseniosPublic)
	c.JSON(200, gin.H{"message": "Diseño eliminado exitosamente."})
}

// ======================================================
// UPLOAD DE IMAGEN
// ======================================================

func (h *DisenioHandler) UploadImagen(c *gin.Context) {
	if h.uploader == nil {
		httperr.Unavailable(c, "uploads_disabled",
			"La subida de imágenes no está configurada.")
		return
	}

	file, _, err := c.Request.FormFile("imagen")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "No se subió ninguna imagen.")
		return
	}
	url, err := h.uploader.Upload(c.Request.Context(), file)
	if err != nil {
		httperr.Internal(c, "upload_failed", "Error al subir la imagen.")
		return
	}

	c.JSON(200, gin.H{
		"message":    "Imagen subida exitosamente.",
		"imagen_url": url,
	})
}

func (h *DisenioHandler) relacionar(tx *gorm.DB, disenioID uint, subIDs []uint) error {
	for _, sid := range subIDs {
		if err := tx.Exec(
			"INSERT INTO disenio_subcategorias (disenio_id, subcategoria_id) VALUES (?, ?)",
			disenioID, sid,
		).Error; err != nil {
			return err
		}
	}
	return nil
}
