package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/valkirianails/salon-api/internal/config"
	"github.com/valkirianails/salon-api/internal/httperr"
	"github.com/valkirianails/salon-api/internal/models"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, config: cfg}
}

// --------- Requests ---------

type RegisterRequest struct {
	Username string  `json:"username" binding:"required"`
	Password string  `json:"password" binding:"required,min=6"`
	Nombre   *string `json:"nombre"`
	Apellido *string `json:"apellido"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeValidation,
			"Nombre de usuario y contraseña son obligatorios.")
		return
	}

	username := strings.ToLower(strings.TrimSpace(req.Username))

	var count int64
	h.db.Model(&models.Usuario{}).Where("username = ?", username).Count(&count)
	if count > 0 {
		httperr.Conflict(c, httperr.CodeDuplicateName, "Usuario ya existe.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Error interno del servidor.")
		return
	}

	user := models.Usuario{
		Username:     username,
		PasswordHash: string(hashed),
		Nombre:       req.Nombre,
		Apellido:     req.Apellido,
		Activo:       true,
	}

	if err := h.db.Create(&user).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.Conflict(c, httperr.CodeDuplicateName, "Usuario ya existe.")
			return
		}
		httperr.Internal(c, "failed_to_create_user", "Error interno del servidor.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Usuario registrado exitosamente.",
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"nombre":   user.Nombre,
			"apellido": user.Apellido,
		},
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeValidation,
			"Nombre de usuario y contraseña son obligatorios.")
		return
	}

	username := strings.ToLower(strings.TrimSpace(req.Username))

	var user models.Usuario
	if err := h.db.
		Where("username = ? AND activo = ?", username, true).
		First(&user).Error; err != nil {
		httperr.Unauthorized(c, "invalid_credentials",
			"Credenciales inválidas o usuario inactivo.")
		return
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(user.PasswordHash),
		[]byte(req.Password),
	); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Credenciales inválidas.")
		return
	}

	now := time.Now()
	h.db.Model(&user).Update("ultimo_login", now)

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Error interno del servidor.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login exitoso.",
		"token":   token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"nombre":   user.Nombre,
			"apellido": user.Apellido,
		},
	})
}

func (h *AuthHandler) generateToken(user *models.Usuario) (string, error) {
	claims := jwt.MapClaims{
		"sub":      float64(user.ID),
		"username": user.Username,
		"exp":      time.Now().Add(7 * 24 * time.Hour).Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
