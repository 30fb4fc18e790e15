package models

import "time"

type CategoriaPadre struct {
	ID     uint    `gorm:"primaryKey" json:"id"`
	Nombre string  `gorm:"size:100;not null" json:"nombre"`
	Icono  *string `gorm:"size:100" json:"icono"`
	Activo bool    `gorm:"default:true" json:"activo"`

	Subcategorias []Subcategoria `gorm:"foreignKey:CategoriaPadreID" json:"subcategorias,omitempty"`

	CreatedAt time.Time `json:"fecha_creacion"`
	UpdatedAt time.Time `json:"fecha_actualizacion"`
}

type Subcategoria struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	CategoriaPadreID uint           `gorm:"not null;index" json:"id_categoria_padre"`
	CategoriaPadre   CategoriaPadre `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"categoria_padre,omitempty"`

	Nombre string  `gorm:"size:100;not null" json:"nombre"`
	Icono  *string `gorm:"size:100" json:"icono"`
	Activo bool    `gorm:"default:true" json:"activo"`

	CreatedAt time.Time `json:"fecha_creacion"`
	UpdatedAt time.Time `json:"fecha_actualizacion"`
}
