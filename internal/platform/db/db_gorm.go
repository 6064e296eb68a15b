// Package db opens the durable store and owns schema migration.
package db

import (
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	authadapters "github.com/Mark1william11/FlavorFind/internal/feature/auth/adapters"
	authentity "github.com/Mark1william11/FlavorFind/internal/feature/auth/domain/entity"
	recipeadapters "github.com/Mark1william11/FlavorFind/internal/feature/recipes/adapters"
)

// OpenDB connects to Postgres, retrying until the database becomes
// reachable. TranslateError is on so unique-index violations surface as
// gorm.ErrDuplicatedKey regardless of driver.
func OpenDB(dsn string) *gorm.DB {
	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		if err := Migrate(db); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}

// Migrate creates or updates the users, recipes and sessions tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&authentity.User{},
		&recipeadapters.RecipeModel{},
		&authadapters.SessionModel{},
	)
}
