package db

import (
	"log/slog"
	"time"

	"github.com/cockroachdb/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/shop-booking/internal/config"
	"github.com/BruksfildServices01/shop-booking/internal/models"
)

// activeSlotIndex keeps two live bookings off the same provider slot.
const activeSlotIndex = `
	CREATE UNIQUE INDEX IF NOT EXISTS idx_bookings_active_provider_slot
	ON bookings (provider_id, appointment_date, appointment_time)
	WHERE status IN ('pending', 'confirmed') AND provider_id IS NOT NULL
`

func NewDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "connect database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "get sql.DB")
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Shop{},
		&models.ShopStaff{},
		&models.Booking{},
		&models.Rating{},
		&models.Notification{},
		&models.AuditLog{},
		&models.WorkingHours{},
	); err != nil {
		return errors.Wrap(err, "migrate")
	}

	if err := db.Exec(activeSlotIndex).Error; err != nil {
		return errors.Wrap(err, "create active slot index")
	}

	res := db.Exec(`
		UPDATE shops
		SET timezone = 'America/Sao_Paulo'
		WHERE timezone IS NULL OR timezone = ''
	`)
	if res.Error != nil {
		return errors.Wrap(res.Error, "backfill shop timezone")
	}
	if res.RowsAffected > 0 {
		slog.Info("backfilled shop timezones", "rows", res.RowsAffected)
	}

	return nil
}
