package models

import "time"

type TarjetaFidelidad struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Codigo          string `gorm:"size:4;uniqueIndex;not null" json:"codigo"`
	NombreCliente   string `gorm:"size:100;not null" json:"nombre_cliente"`
	TelefonoCliente string `gorm:"size:20;uniqueIndex;not null" json:"telefono_cliente"`

	VisitasAcumuladas int  `gorm:"default:0" json:"visitas_acumuladas"`
	CanjeDisponible   bool `gorm:"default:false" json:"canje_disponible"`
	CiclosCompletados int  `gorm:"default:0" json:"ciclos_completados"`

	UltimaVisita *time.Time `json:"ultima_visita"`

	CreatedAt time.Time `json:"fecha_creacion"`
}

type VisitaFidelidad struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	TarjetaID uint `gorm:"not null;index" json:"id_tarjeta"`

	NumeroVisita int `gorm:"not null" json:"numero_visita"`

	CreatedAt time.Time `json:"fecha_visita"`
}
