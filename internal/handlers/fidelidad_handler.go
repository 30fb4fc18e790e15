package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/valkirianails/salon-api/internal/httperr"
	"github.com/valkirianails/salon-api/internal/httpresp"
	"github.com/valkirianails/salon-api/internal/middleware"
	ucFidelidad "github.com/valkirianails/salon-api/internal/usecase/fidelidad"
)

// ======================================================
// HANDLER
// ======================================================

type FidelidadHandler struct {
	registrar  *ucFidelidad.RegistrarTarjeta
	list       *ucFidelidad.ListTarjetas
	get        *ucFidelidad.GetTarjeta
	editar     *ucFidelidad.EditarVisitas
	canjear    *ucFidelidad.CanjearTarjeta
	historial  *ucFidelidad.HistorialVisitas
	actualizar *ucFidelidad.ActualizarTarjeta
	eliminar   *ucFidelidad.EliminarTarjeta
}

func NewFidelidadHandler(
	registrar *ucFidelidad.RegistrarTarjeta,
	list *ucFidelidad.ListTarjetas,
	get *ucFidelidad.GetTarjeta,
	editar *ucFidelidad.EditarVisitas,
	canjear *ucFidelidad.CanjearTarjeta,
	historial *ucFidelidad.HistorialVisitas,
	actualizar *ucFidelidad.ActualizarTarjeta,
	eliminar *ucFidelidad.EliminarTarjeta,
) *FidelidadHandler {
	return &FidelidadHandler{
		registrar:  registrar,
		list:       list,
		get:        get,
		editar:     editar,
		canjear:    canjear,
		historial:  historial,
		actualizar: actualizar,
		eliminar:   eliminar,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type RegistrarTarjetaRequest struct {
	NombreCliente   string `json:"nombre_cliente" binding:"required"`
	TelefonoCliente string `json:"telefono_cliente" binding:"required"`
}

type EditarVisitasRequest struct {
	Visitas *int `json:"visitas" binding:"required"`
}

// ======================================================
// REGISTRO
// ======================================================

func (h *FidelidadHandler) Registrar(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req RegistrarTarjetaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeValidation,
			"El nombre y el teléfono son obligatorios.")
		return
	}

	tarjeta, err := h.registrar.Execute(c.Request.Context(), userID,
		req.NombreCliente, req.TelefonoCliente)
	if err != nil {
		if errors.Is(err, ucFidelidad.ErrCodigosAgotados) {
			httperr.Unavailable(c, httperr.CodeStorageUnavailable,
				"No se pudo generar un código de tarjeta. Intente de nuevo.")
			return
		}
		writeEngineError(c, err, "failed_to_register_card",
			"Error interno del servidor.")
		return
	}

	c.JSON(201, gin.H{
		"message": "Tarjeta de fidelidad creada exitosamente.",
		"tarjeta": tarjeta,
	})
}

// ======================================================
// LIST
// ======================================================

func (h *FidelidadHandler) List(c *gin.Context) {
	search := c.Query("search")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	res, err := h.list.Execute(c.Request.Context(), search, page, limit)
	if err != nil {
		writeEngineError(c, err, "failed_to_list_cards",
			"Error interno del servidor.")
		return
	}

	httpresp.Page(c, res.Tarjetas, res.Total, res.Page, res.Limit, res.TotalPages)
}

// ======================================================
// CONSULTAS PÚBLICAS
// ======================================================

func (h *FidelidadHandler) GetPorCodigo(c *gin.Context) {
	tarjeta, err := h.get.PorCodigo(c.Request.Context(), c.Param("codigo"))
	if err != nil {
		writeEngineError(c, err, "failed_to_get_card", "Error interno del servidor.")
		return
	}

	httpresp.OK(c, tarjeta)
}

func (h *FidelidadHandler) GetPorTelefono(c *gin.Context) {
	tarjeta, err := h.get.PorTelefono(c.Request.Context(), c.Query("telefono"))
	if err != nil {
		writeEngineError(c, err, "failed_to_get_card", "Error interno del servidor.")
		return
	}

	httpresp.OK(c, tarjeta)
}

// ======================================================
// VISITAS
// ======================================================

func (h *FidelidadHandler) EditarVisitas(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var req EditarVisitasRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Visitas == nil {
		httperr.BadRequest(c, httperr.CodeValidation,
			"El número de visitas debe ser entre 0 y 4.")
		return
	}

	tarjeta, err := h.editar.Execute(c.Request.Context(), userID, uint(id), *req.Visitas)
	if err != nil {
		writeEngineError(c, err, "failed_to_edit_visits",
			"Error interno del servidor.")
		return
	}

	c.JSON(200, gin.H{
		"message": "Visitas actualizadas correctamente.",
		"tarjeta": tarjeta,
	})
}

func (h *FidelidadHandler) Canjear(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	if err := h.canjear.Execute(c.Request.Context(), userID, uint(id)); err != nil {
		writeEngineError(c, err, "failed_to_redeem", "Error interno del servidor.")
		return
	}

	c.JSON(200, gin.H{
		"message": "Premio canjeado y tarjeta reiniciada exitosamente.",
	})
}

func (h *FidelidadHandler) Historial(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	visitas, err := h.historial.Execute(c.Request.Context(), uint(id))
	if err != nil {
		writeEngineError(c, err, "failed_to_get_history",
			"Error interno del servidor.")
		return
	}

	httpresp.List(c, visitas)
}

// ======================================================
// UPDATE / DELETE
// ======================================================

func (h *FidelidadHandler) Actualizar(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var req RegistrarTarjetaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeValidation,
			"El nombre y el teléfono son obligatorios.")
		return
	}

	tarjeta, err := h.actualizar.Execute(c.Request.Context(), userID, uint(id),
		req.NombreCliente, req.TelefonoCliente)
	if err != nil {
		writeEngineError(c, err, "failed_to_update_card",
			"Error interno del servidor.")
		return
	}

	c.JSON(200, gin.H{
		"message": "Tarjeta actualizada exitosamente.",
		"tarjeta": tarjeta,
	})
}

func (h *FidelidadHandler) Eliminar(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	if err := h.eliminar.Execute(c.Request.Context(), userID, uint(id)); err != nil {
		writeEngineError(c, err, "failed_to_delete_card",
			"Error interno del servidor.")
		return
	}

	c.JSON(200, gin.H{"message": "Tarjeta eliminada exitosamente."})
}
