package models

import "time"

type Disenio struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Nombre      string   `gorm:"size:100;not null" json:"nombre"`
	Descripcion *string  `gorm:"size:500" json:"descripcion"`
	ImagenURL   string   `gorm:"size:500;not null" json:"imagen_url"`
	Precio      *float64 `json:"precio"`
	Oferta      *float64 `json:"oferta"`
	Duracion    *string  `gorm:"size:50" json:"duracion"`
	Activo      bool     `gorm:"default:true" json:"activo"`

	Subcategorias []Subcategoria `gorm:"many2many:disenio_subcategorias;" json:"subcategorias,omitempty"`

	CreatedAt time.Time `json:"fecha_creacion"`
	UpdatedAt time.Time `json:"fecha_actualizacion"`
}
