package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestMigrate(t *testing.T) {
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to open test database")

	err = Migrate(gdb)
	require.NoError(t, err, "migration failed")

	for _, table := range []string{"users", "recipes", "sessions"} {
		assert.True(t, gdb.Migrator().HasTable(table), "table %s should exist", table)
	}

	// Running the migration twice must be safe
	assert.NoError(t, Migrate(gdb), "migration is not idempotent")
}
