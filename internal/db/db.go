package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/valkirianails/salon-api/internal/config"
	"github.com/valkirianails/salon-api/internal/models"
)

// NewDB abre la conexión con reintentos acotados. Si tras agotar los
// intentos la base sigue inaccesible, el proceso termina: sin base de
// datos no hay nada que servir.
func NewDB(cfg *config.Config) *gorm.DB {
	var db *gorm.DB
	var err error

	for attempt := 1; attempt <= cfg.DBConnectRetries; attempt++ {
		db, err = gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
			PrepareStmt: true,
		})
		if err == nil {
			break
		}

		log.Printf("fallo al conectar a la BD (intento %d de %d): %v",
			attempt, cfg.DBConnectRetries, err)

		if attempt < cfg.DBConnectRetries {
			time.Sleep(cfg.DBConnectBackoff)
		}
	}
	if err != nil {
		log.Fatalf("no se pudo conectar a la base de datos: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Usuario{},
		&models.CategoriaPadre{},
		&models.Subcategoria{},
		&models.Cita{},
		&models.Disenio{},
		&models.TarjetaFidelidad{},
		&models.VisitaFidelidad{},
		&models.ConfiguracionSitio{},
		&models.VisitaSitio{},
		&models.PageTiming{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}
