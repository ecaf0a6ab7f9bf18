package db

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/OurVoiceOurRights/OVR-Backend/internal/config"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the configured backend: Postgres when DATABASE_URL is set,
// a local sqlite file otherwise. Both sit behind the same store contract,
// so the choice changes nothing above this package. The handle is returned
// to the caller; nothing here keeps package-level state.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	// Verbose logger to surface slow queries in hosted logs.
	lg := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             100 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	if cfg.DatabaseURL == "" {
		gdb, err := gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{Logger: lg})
		if err != nil {
			return nil, fmt.Errorf("open sqlite %s: %w", cfg.SQLitePath, err)
		}
		log.Printf("[db] connected to sqlite at %s", cfg.SQLitePath)
		return gdb, nil
	}

	gdb, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{Logger: lg})
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	// Reasonable pool defaults for small hosted Postgres instances.
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(20)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	log.Println("[db] connected to postgres")
	return gdb, nil
}
