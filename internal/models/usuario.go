package models

import "time"

type Usuario struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Username     string `gorm:"size:50;uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	Nombre   *string `gorm:"size:100" json:"nombre"`
	Apellido *string `gorm:"size:100" json:"apellido"`
	Activo   bool    `gorm:"default:true" json:"activo"`

	UltimoLogin *time.Time `json:"ultimo_login"`

	CreatedAt time.Time `json:"fecha_creacion"`
	UpdatedAt time.Time `json:"fecha_actualizacion"`
}
