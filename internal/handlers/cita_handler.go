package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/valkirianails/salon-api/internal/httperr"
	"github.com/valkirianails/salon-api/internal/middleware"
	ucCita "github.com/valkirianails/salon-api/internal/usecase/cita"
)

// ======================================================
// HANDLER
// ======================================================

type CitaHandler struct {
	create      *ucCita.CreateCita
	createAdmin *ucCita.CreateCitaAdmin
	list        *ucCita.ListCitasAdmin
	update      *ucCita.UpdateCita
	delete      *ucCita.DeleteCita
}

func NewCitaHandler(
	create *ucCita.CreateCita,
	createAdmin *ucCita.CreateCitaAdmin,
	list *ucCita.ListCitasAdmin,
	update *ucCita.UpdateCita,
	delete_ *ucCita.DeleteCita,
) *CitaHandler {
	return &CitaHandler{
		create:      create,
		createAdmin: createAdmin,
		list:        list,
		update:      update,
		delete:      delete_,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateCitaRequest struct {
	NombreCliente   string  `json:"nombre_cliente" binding:"required"`
	TelefonoCliente string  `json:"telefono_cliente" binding:"required"`
	FechaCita       string  `json:"fecha_cita" binding:"required"`
	HoraCita        string  `json:"hora_cita" binding:"required"`
	Servicios       []uint  `json:"servicios" binding:"required,min=1"`
	Notas           *string `json:"notas"`
}

type UpdateCitaRequest struct {
	NombreCliente   *string `json:"nombre_cliente"`
	TelefonoCliente *string `json:"telefono_cliente"`
	FechaCita       *string `json:"fecha_cita"`
	HoraCita        *string `json:"hora_cita"`
	Servicios       []uint  `json:"servicios"`
	Notas           *string `json:"notas"`
	Aceptada        *bool   `json:"aceptada"`
	Estado          string  `json:"estado"`
}

func (r CreateCitaRequest) toInput() ucCita.CreateCitaInput {
	return ucCita.CreateCitaInput{
		NombreCliente:   r.NombreCliente,
		TelefonoCliente: r.TelefonoCliente,
		FechaCita:       r.FechaCita,
		HoraCita:        r.HoraCita,
		ServicioIDs:     r.Servicios,
		Notas:           r.Notas,
	}
}

// ======================================================
// CREATE (pública)
// ======================================================

func (h *CitaHandler) Create(c *gin.Context) {
	var req CreateCitaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeValidation,
			"Todos los campos marcados con * son obligatorios.")
		return
	}

	if !esFechaValida(req.FechaCita) || !esHoraValida(req.HoraCita) {
		httperr.BadRequest(c, "invalid_date_or_time", "Fecha u hora inválida.")
		return
	}

	cita, err := h.create.Execute(c.Request.Context(), req.toInput())
	if err != nil {
		writeEngineError(c, err, "failed_to_create_cita",
			"Error interno del servidor al crear la cita.")
		return
	}

	c.JSON(201, gin.H{
		"message": "Cita creada exitosamente.",
		"cita_id": cita.ID,
	})
}

// ======================================================
// CREATE (admin)
// ======================================================

func (h *CitaHandler) CreateAdmin(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateCitaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeValidation,
			"Todos los campos son obligatorios.")
		return
	}

	if !esFechaValida(req.FechaCita) || !esHoraValida(req.HoraCita) {
		httperr.BadRequest(c, "invalid_date_or_time", "Fecha u hora inválida.")
		return
	}

	cita, err := h.createAdmin.Execute(c.Request.Context(), userID, req.toInput())
	if err != nil {
		writeEngineError(c, err, "failed_to_create_cita",
			"Error interno del servidor al crear la cita.")
		return
	}

	c.JSON(201, gin.H{
		"message": "Cita creada exitosamente por el administrador.",
		"cita":    cita,
	})
}

// ======================================================
// LIST (admin)
// ======================================================

func (h *CitaHandler) ListAdmin(c *gin.Context) {
	var f ucCita.ListFilter

	f.Fecha = c.Query("fecha")
	if f.Fecha != "" && !esFechaValida(f.Fecha) {
		httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
		return
	}

	f.Mes, _ = strconv.Atoi(c.Query("mes"))
	f.Anio, _ = strconv.Atoi(c.Query("anio"))

	citas, err := h.list.Execute(c.Request.Context(), f)
	if err != nil {
		writeEngineError(c, err, "failed_to_list_citas",
			"Error interno del servidor al obtener citas.")
		return
	}

	c.JSON(200, citas)
}

// ======================================================
// UPDATE
// ======================================================

func (h *CitaHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var req UpdateCitaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeValidation, "Datos inválidos.")
		return
	}

	if req.FechaCita != nil && !esFechaValida(*req.FechaCita) {
		httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
		return
	}
	if req.HoraCita != nil && !esHoraValida(*req.HoraCita) {
		httperr.BadRequest(c, "invalid_time", "Hora inválida.")
		return
	}

	cita, err := h.update.Execute(c.Request.Context(), userID, uint(id),
		ucCita.UpdateCitaInput{
			NombreCliente:   req.NombreCliente,
			TelefonoCliente: req.TelefonoCliente,
			FechaCita:       req.FechaCita,
			HoraCita:        req.HoraCita,
			Notas:           req.Notas,
			ServicioIDs:     req.Servicios,
			Aceptada:        req.Aceptada,
			Estado:          req.Estado,
		})
	if err != nil {
		writeEngineError(c, err, "failed_to_update_cita",
			"Error interno del servidor al actualizar la cita.")
		return
	}

	c.JSON(200, gin.H{
		"message": "Cita actualizada exitosamente.",
		"cita":    cita,
	})
}

// ======================================================
// DELETE
// ======================================================

func (h *CitaHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	if err := h.delete.Execute(c.Request.Context(), userID, uint(id)); err != nil {
		writeEngineError(c, err, "failed_to_delete_cita",
			"Error interno del servidor al eliminar la cita.")
		return
	}

	c.JSON(200, gin.H{"message": "Cita eliminada exitosamente."})
}
