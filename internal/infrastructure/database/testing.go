// Test database support for packages that need a real gorm connection
package database

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/Aidin1998/apiregistry/internal/infrastructure/config"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// TestConfig returns a configuration for a private in-memory SQLite database.
// A single connection keeps every query on the same shared-cache database.
func TestConfig(name string) config.DatabaseConfig {
	name = strings.NewReplacer("/", "_", " ", "_").Replace(name)
	return config.DatabaseConfig{
		Driver:       "sqlite",
		DSN:          fmt.Sprintf("file:%s_%s?mode=memory&cache=shared", name, uuid.NewString()),
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		AutoMigrate:  true,
		LogLevel:     "silent",
	}
}

// NewTestDB opens a migrated in-memory database that is closed when the test ends.
func NewTestDB(tb testing.TB) *gorm.DB {
	tb.Helper()

	db, err := Open(context.Background(), TestConfig(tb.Name()), zap.NewNop())
	if err != nil {
		tb.Fatalf("failed to create test database: %v", err)
	}
	tb.Cleanup(func() {
		_ = Close(db)
	})
	return db
}
