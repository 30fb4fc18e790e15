package models

import "time"

type Cita struct {
	ID uint `gorm:"primaryKey" json:"id"`

	NombreCliente   string `gorm:"size:100;not null" json:"nombre_cliente"`
	TelefonoCliente string `gorm:"size:20;not null" json:"telefono_cliente"`

	// Fecha "2006-01-02" y hora "15:04" tal como llegan del frontend
	FechaCita string `gorm:"size:10;not null;index" json:"fecha_cita"`
	HoraCita  string `gorm:"size:5;not null" json:"hora_cita"`

	Notas *string `gorm:"size:500" json:"notas"`

	Estado   string `gorm:"size:20;default:'pendiente'" json:"estado"`
	Aceptada bool   `gorm:"default:false" json:"aceptada"`

	Servicios []Subcategoria `gorm:"many2many:cita_servicios;" json:"servicios,omitempty"`

	CreatedAt time.Time `json:"fecha_creacion"`
	UpdatedAt time.Time `json:"fecha_actualizacion"`
}
