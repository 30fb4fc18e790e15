package dto

import "time"

// CitaAdminDTO es la fila que ve el panel de administración: la cita más
// los nombres de sus servicios y de las categorías padre, agregados.
type CitaAdminDTO struct {
	ID              uint      `json:"id"`
	NombreCliente   string    `json:"nombre_cliente"`
	TelefonoCliente string    `json:"telefono_cliente"`
	FechaCita       string    `json:"fecha_cita"`
	HoraCita        string    `json:"hora_cita"`
	Notas           *string   `json:"notas"`
	Estado          string    `json:"estado"`
	Aceptada        bool      `json:"aceptada"`
	ServicioIDs     []uint    `json:"servicio_ids"`
	Servicios       []string  `json:"servicios"`
	CategoriasPadre []string  `json:"categorias_padre"`
	CreatedAt       time.Time `json:"fecha_creacion"`
	UpdatedAt       time.Time `json:"fecha_actualizacion"`
}
