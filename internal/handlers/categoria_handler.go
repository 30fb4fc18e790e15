package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/valkirianails/salon-api/internal/httperr"
	"github.com/valkirianails/salon-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type CategoriaHandler struct {
	db *gorm.DB
}

func NewCategoriaHandler(db *gorm.DB) *CategoriaHandler {
	return &CategoriaHandler{db: db}
}

// --------- Requests ---------

type CreateCategoriaRequest struct {
	Nombre string  `json:"nombre" binding:"required"`
	Icono  *string `json:"icono"`
}

type UpdateCategoriaRequest struct {
	Nombre *string `json:"nombre,omitempty"`
	Icono  *string `json:"icono,omitempty"`
	Activo *bool   `json:"activo,omitempty"`
}

type CreateSubcategoriaRequest struct {
	CategoriaPadreID uint    `json:"id_categoria_padre" binding:"required"`
	Nombre           string  `json:"nombre" binding:"required"`
	Icono            *string `json:"icono"`
}

// ======================================================
// LIST (pública, anidada)
// ======================================================

func (h *CategoriaHandler) List(c *gin.Context) {
	var padres []models.CategoriaPadre
	if err := h.db.
		Preload("Subcategorias", func(db *gorm.DB) *gorm.DB {
			return db.Order("nombre ASC")
		}).
		Order("nombre ASC").
		Find(&padres).Error; err != nil {

		httperr.Internal(c, "failed_to_list_categories",
			"Error interno del servidor al obtener categorías.")
		return
	}

	c.JSON(200, padres)
}

// ======================================================
// CATEGORÍA PADRE
// ======================================================

func (h *CategoriaHandler) CreatePadre(c *gin.Context) {
	var req CreateCategoriaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeValidation,
			"El nombre de la categoría padre es obligatorio.")
		return
	}

	padre := models.CategoriaPadre{
		Nombre: req.Nombre,
		Icono:  req.Icono,
		Activo: true,
	}

	if err := h.db.Create(&padre).Error; err != nil {
		httperr.Internal(c, "failed_to_create_category",
			"Error interno del servidor.")
		return
	}

	c.JSON(201, padre)
}

func (h *CategoriaHandler) UpdatePadre(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var req UpdateCategoriaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeValidation, "Datos inválidos.")
		return
	}

	campos := map[string]any{}
	if req.Nombre != nil && *req.Nombre != "" {
		campos["nombre"] = *req.Nombre
	}
	if req.Icono != nil {
		campos["icono"] = *req.Icono
	}
	if req.Activo != nil {
		campos["activo"] = *req.Activo
	}

	if len(campos) == 0 {
		httperr.BadRequest(c, httperr.CodeNoChanges,
			"No se proporcionaron datos para actualizar.")
		return
	}

	res := h.db.Model(&models.CategoriaPadre{}).
		Where("id = ?", id).
		Updates(campos)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_update_category",
			"Error interno del servidor.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, httperr.CodeNotFound, "Categoría no encontrada.")
		return
	}

	var padre models.CategoriaPadre
	h.db.First(&padre, id)
	c.JSON(200, padre)
}

func (h *CategoriaHandler) DeletePadre(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var affected int64
	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("categoria_padre_id = ?", id).
			Delete(&models.Subcategoria{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&models.CategoriaPadre{}, id)
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected
		return nil
	})
	if err != nil {
		httperr.Internal(c, "failed_to_delete_category",
			"Error interno del servidor.")
		return
	}
	if affected == 0 {
		httperr.NotFound(c, httperr.CodeNotFound, "Categoría no encontrada.")
		return
	}

	c.JSON(200, gin.H{"message": "Categoría eliminada exitosamente."})
}

// ======================================================
// SUBCATEGORÍAS
// ======================================================

func (h *CategoriaHandler) CreateSubcategoria(c *gin.Context) {
	var req CreateSubcategoriaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeValidation,
			"El nombre y la categoría padre son obligatorios.")
		return
	}

	var padre models.CategoriaPadre
	if err := h.db.First(&padre, req.CategoriaPadreID).Error; err != nil {
		httperr.BadRequest(c, "parent_not_found",
			"La categoría padre no existe.")
		return
	}

	sub := models.Subcategoria{
		CategoriaPadreID: req.CategoriaPadreID,
		Nombre:           req.Nombre,
		Icono:            req.Icono,
		Activo:           true,
	}

	if err := h.db.Create(&sub).Error; err != nil {
		httperr.Internal(c, "failed_to_create_subcategory",
			"Error interno del servidor.")
		return
	}

	c.JSON(201, sub)
}

func (h *CategoriaHandler) UpdateSubcategoria(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var req UpdateCategoriaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeValidation, "Datos inválidos.")
		return
	}

	campos := map[string]any{}
	if req.Nombre != nil && *req.Nombre != "" {
		campos["nombre"] = *req.Nombre
	}
	if req.Icono != nil {
		campos["icono"] = *req.Icono
	}
	if req.Activo != nil {
		campos["activo"] = *req.Activo
	}

	if len(campos) == 0 {
		httperr.BadRequest(c, httperr.CodeNoChanges,
			"No se proporcionaron datos para actualizar.")
		return
	}

	res := h.db.Model(&models.Subcategoria{}).
		Where("id = ?", id).
		Updates(campos)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_update_subcategory",
			"Error interno del servidor.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, httperr.CodeNotFound, "Subcategoría no encontrada.")
		return
	}

	var sub models.Subcategoria
	h.db.First(&sub, id)
	c.JSON(200, sub)
}

func (h *CategoriaHandler) DeleteSubcategoria(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	res := h.db.Delete(&models.Subcategoria{}, id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_subcategory",
			"Error interno del servidor.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, httperr.CodeNotFound, "Subcategoría no encontrada.")
		return
	}

	c.JSON(200, gin.H{"message": "Subcategoría eliminada exitosamente."})
}
