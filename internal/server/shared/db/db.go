// Package db opens the gorm-managed database and keeps its schema current.
// The dialect is chosen from the DSN: postgres URLs go through the pgx-based
// postgres driver, anything else is treated as a sqlite path.
package db

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/userbook/internal/server/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the database described by dsn and runs auto-migration for
// the user and address tables. The unique e-mail constraint created here is
// the real backstop for concurrent registrations.
func Open(dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		dialector = postgres.Open(dsn)
	} else {
		dialector = sqlite.Open(dsn)
	}

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	if err := gormDB.AutoMigrate(&models.User{}, &models.Address{}); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return gormDB, nil
}
