package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/valkirianails/salon-api/internal/httperr"
	"github.com/valkirianails/salon-api/internal/middleware"
	"github.com/valkirianails/salon-api/internal/models"
)

type UsuarioHandler struct {
	db *gorm.DB
}

func NewUsuarioHandler(db *gorm.DB) *UsuarioHandler {
	return &UsuarioHandler{db: db}
}

func (h *UsuarioHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.Usuario
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.Internal(c, "user_not_found", "Usuario no encontrado.")
		return
	}

	c.JSON(200, gin.H{
		"id":           user.ID,
		"username":     user.Username,
		"nombre":       user.Nombre,
		"apellido":     user.Apellido,
		"ultimo_login": user.UltimoLogin,
	})
}

type UpdateNombreRequest struct {
	Nombre string `json:"nombre" binding:"required,max=100"`
}

func (h *UsuarioHandler) UpdateMyNombre(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req UpdateNombreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeValidation,
			"El nombre debe tener entre 1 y 100 caracteres.")
		return
	}

	nombre := strings.TrimSpace(req.Nombre)
	if nombre == "" {
		httperr.BadRequest(c, httperr.CodeValidation,
			"El nombre debe tener entre 1 y 100 caracteres.")
		return
	}

	if err := h.db.Model(&models.Usuario{}).
		Where("id = ?", userID).
		Update("nombre", nombre).Error; err != nil {
		httperr.Internal(c, "failed_to_update_name", "Error interno del servidor.")
		return
	}

	c.JSON(200, gin.H{"message": "Nombre actualizado correctamente."})
}

type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}

func (h *UsuarioHandler) UpdateMyPassword(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeValidation,
			"La nueva contraseña debe tener al menos 6 caracteres.")
		return
	}

	var user models.Usuario
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.Internal(c, "user_not_found", "Usuario no encontrado.")
		return
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(user.PasswordHash),
		[]byte(req.CurrentPassword),
	); err != nil {
		httperr.Unauthorized(c, "invalid_credentials",
			"La contraseña actual es incorrecta.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Error interno del servidor.")
		return
	}

	if err := h.db.Model(&user).
		Update("password_hash", string(hashed)).Error; err != nil {
		httperr.Internal(c, "failed_to_update_password", "Error interno del servidor.")
		return
	}

	c.JSON(200, gin.H{"message": "Contraseña actualizada correctamente."})
}
