package models

import "time"

// ConfiguracionSitio guarda pares clave/valor para textos, colores y
// ajustes del sitio público. El valor es un string opaco (puede ser JSON).
type ConfiguracionSitio struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Clave string `gorm:"size:100;uniqueIndex;not null" json:"clave"`
	Valor string `gorm:"type:text" json:"valor"`

	UpdatedAt time.Time `json:"fecha_actualizacion"`
}
