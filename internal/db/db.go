package db

import (
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/marketops/backoffice/internal/config"
	"github.com/marketops/backoffice/internal/logger"
	"github.com/marketops/backoffice/internal/models"
)

// AllModels is the migration set shared by the server and the test fixtures.
var AllModels = []any{
	&models.Staff{},
	&models.Region{},
	&models.City{},
	&models.Category{},
	&models.Product{},
	&models.Image{},
	&models.Contact{},
	&models.Order{},
}

func NewDB(cfg *config.Config, log *logger.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
		// Surfaces unique/foreign-key violations as gorm.ErrDuplicatedKey
		// and gorm.ErrForeignKeyViolated.
		TranslateError: true,
	})
	if err != nil {
		log.Fatalw("failed to connect database", "error", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalw("failed to get sql.DB", "error", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(AllModels...); err != nil {
		log.Fatalw("failed to migrate", "error", err)
	}

	return db
}
