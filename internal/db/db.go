package db

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-turnos/internal/config"
	"github.com/BruksfildServices01/barber-turnos/internal/models"
)

// Índice parcial: no máximo uma reserva ativa por (barbearia, data, turno).
// Reservas canceladas não ocupam o turno.
const reservedSlotIndex = `
	CREATE UNIQUE INDEX IF NOT EXISTS idx_reservation_reserved_slot
	ON reservations (barbershop_id, date, slot_number)
	WHERE status = 'reserved'
`

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db, cfg.DefaultTimezone); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}

func Migrate(db *gorm.DB, defaultTimezone string) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Barbershop{},
		&models.WorkingDay{},
		&models.Reservation{},
		&models.Service{},
		&models.Comment{},
		&models.AuditLog{},
	); err != nil {
		return err
	}

	if err := db.Exec(reservedSlotIndex).Error; err != nil {
		return fmt.Errorf("create reserved slot index: %w", err)
	}

	if err := db.Exec(`
        UPDATE barbershops
        SET timezone = ?
        WHERE timezone IS NULL OR timezone = ''
    `, defaultTimezone).Error; err != nil {
		return fmt.Errorf("backfill timezone: %w", err)
	}

	return nil
}
