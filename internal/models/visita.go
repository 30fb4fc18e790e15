package models

import "time"

// VisitaSitio registra una vista de página del sitio público.
type VisitaSitio struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SessionID string `gorm:"size:64;index" json:"session_id"`
	PagePath  string `gorm:"size:255" json:"page_path"`

	IPAddress string `gorm:"size:45" json:"ip_address"`
	UserAgent string `gorm:"size:500" json:"user_agent"`

	BrowserName string `gorm:"size:50" json:"browser_name"`
	OSName      string `gorm:"size:50" json:"os_name"`
	DeviceType  string `gorm:"size:20" json:"device_type"`

	Referrer string `gorm:"size:500" json:"referrer"`

	CreatedAt time.Time `gorm:"index" json:"event_timestamp"`
}

// PageTiming registra cuánto tiempo pasó una sesión en una página.
type PageTiming struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SessionID       string `gorm:"size:64;index" json:"session_id"`
	PagePath        string `gorm:"size:255" json:"page_path"`
	DurationSeconds int    `json:"duration_seconds"`

	CreatedAt time.Time `json:"fecha_creacion"`
}
