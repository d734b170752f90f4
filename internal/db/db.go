package db

import (
	"log"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"github.com/glamora/salon-scheduler/internal/config"
	"github.com/glamora/salon-scheduler/internal/models"
)

// Connect opens Postgres for postgres:// DSNs, SQLite otherwise
// (local development and tests).
func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{
			PrepareStmt: true,
		})
	}

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Service{},
		&models.Booking{},
		&models.User{},
		&models.AuditLog{},
	); err != nil {
		return err
	}

	// At most one non-rejected booking per slot instant. The admission
	// transaction checks first; this index is the hard guarantee.
	return db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS uq_bookings_active_slot
        ON bookings (slot_start)
        WHERE status <> 'rejected'
    `).Error
}

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := Connect(cfg.DBUrl)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	if db.Dialector.Name() == "postgres" {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
		sqlDB.SetConnMaxIdleTime(10 * time.Minute)
	} else {
		// In-memory SQLite: every pooled connection is a separate database.
		sqlDB.SetMaxOpenConns(1)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}
