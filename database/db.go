package database

import (
	"fmt"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"go.uber.org/zap"

	"github.com/ken-eddy/bakeryApp/config"
	"github.com/ken-eddy/bakeryApp/models"
)

// gormLogger routes the ORM's SQL log to zap.
type gormLogger struct {
	log *zap.Logger
}

func (l gormLogger) Print(v ...interface{}) {
	l.log.Debug(fmt.Sprint(gorm.LogFormatter(v...)...))
}

// Connect opens the configured store and migrates the schema.
func Connect(cfg config.DatabaseConfig, log *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(cfg.Driver, cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetLogger(gormLogger{log: log.Named("gorm")})
	db.LogMode(cfg.Debug)

	if cfg.Driver == "sqlite3" {
		// one connection: sqlite has a single writer and ":memory:" is per-connection
		db.DB().SetMaxOpenConns(1)
	}

	if err := Migrate(db); err != nil {
		db.Close()
		return nil, err
	}

	if cfg.Seed {
		if err := Seed(db); err != nil {
			db.Close()
			return nil, err
		}
	}

	log.Info("Database ready",
		zap.String("driver", cfg.Driver),
		zap.Bool("seed", cfg.Seed))
	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Bakery{}, &models.BakedGood{}).Error; err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
